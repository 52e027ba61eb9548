// /home/krylon/go/src/github.com/blicero/herald/store/queue.go
// -*- mode: go; coding: utf-8; -*-
// Created on 04. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-08 18:10:26 krylon>

package store

import "github.com/blicero/herald/objects"

// item is an Event's slot in the queue. idx is maintained by the
// heap.Interface methods so an item can be removed from the middle
// of the queue.
type item struct {
	ev  objects.Event
	seq uint64
	idx int
}

func (it *item) less(other *item) bool {
	if it.ev.Less(&other.ev) {
		return true
	} else if other.ev.Less(&it.ev) {
		return false
	}

	return it.seq < other.seq
} // func (it *item) less(other *item) bool

// eventQueue implements heap.Interface, the root is the earliest Event.
type eventQueue []*item

func (q eventQueue) Len() int           { return len(q) }
func (q eventQueue) Less(i, j int) bool { return q[i].less(q[j]) }

func (q eventQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].idx = i
	q[j].idx = j
}

func (q *eventQueue) Push(x any) {
	var it = x.(*item)
	it.idx = len(*q)
	*q = append(*q, it)
}

func (q *eventQueue) Pop() any {
	var (
		old = *q
		n   = len(old)
		it  = old[n-1]
	)

	old[n-1] = nil
	it.idx = -1
	*q = old[:n-1]
	return it
}
