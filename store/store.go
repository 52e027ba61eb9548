// /home/krylon/go/src/github.com/blicero/herald/store/store.go
// -*- mode: go; coding: utf-8; -*-
// Created on 04. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-13 18:22:47 krylon>

// Package store provides the in-memory collection of Events.
//
// The Store keeps two structures: a heap ordered by time and priority,
// and an index by ID. Both are only ever touched while holding the
// Store's lock, and every change is written through to the backing
// Gateway before the lock is released.
package store

import (
	"container/heap"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"

	"github.com/blicero/herald/common"
	"github.com/blicero/herald/logdomain"
	"github.com/blicero/herald/objects"
	"github.com/blicero/herald/persist"
)

// CategoryAll is the category name that matches every Event.
const CategoryAll = "all"

// ErrValidation is wrapped by every ValidationError.
var ErrValidation = errors.New("Validation failed")

// ValidationError is returned when an Event is rejected before it is stored.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s",
		ErrValidation.Error(),
		e.Field,
		e.Reason)
} // func (e *ValidationError) Error() string

// Unwrap allows errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
} // func (e *ValidationError) Unwrap() error

// Store is the authoritative collection of Events.
type Store struct {
	log   *log.Logger
	lock  sync.Mutex
	gw    persist.Gateway
	queue eventQueue
	index map[string]*item
	seq   uint64
}

// New creates a Store and fills it with the Events from the Gateway.
// If loading fails, the Store starts out empty. gw may be nil, in which
// case nothing is persisted.
func New(gw persist.Gateway) (*Store, error) {
	var (
		err    error
		events []objects.Event
		s      = &Store{
			gw:    gw,
			index: make(map[string]*item),
		}
	)

	if s.log, err = common.GetLogger(logdomain.Store); err != nil {
		return nil, err
	} else if gw == nil {
		s.log.Println("[WARN] No Gateway was given, Events will not be persisted")
		return s, nil
	}

	if events, err = gw.Load(); err != nil {
		s.log.Printf("[ERROR] Cannot load Events, starting with an empty Store: %s\n",
			err.Error())
		return s, nil
	}

	s.queue = make(eventQueue, 0, len(events))

	for _, ev := range events {
		if err = validate(&ev); err != nil {
			s.log.Printf("[WARN] Skipping stored Event %q: %s\n",
				ev.ID,
				err.Error())
			continue
		} else if _, dup := s.index[ev.ID]; dup {
			s.log.Printf("[WARN] Skipping stored Event %q: duplicate ID\n",
				ev.ID)
			continue
		}

		var it = &item{ev: ev, seq: s.nextSeq(), idx: len(s.queue)}
		s.queue = append(s.queue, it)
		s.index[ev.ID] = it
	}

	heap.Init(&s.queue)

	s.log.Printf("[INFO] Store holds %d Events\n", len(s.queue))

	return s, nil
} // func New(gw persist.Gateway) (*Store, error)

func validate(ev *objects.Event) error {
	if ev == nil {
		return &ValidationError{Field: "event", Reason: "is missing"}
	} else if strings.TrimSpace(ev.Title) == "" {
		return &ValidationError{Field: "title", Reason: "is empty"}
	} else if ev.ID == "" {
		return &ValidationError{Field: "id", Reason: "is empty"}
	} else if !objects.TimeInRange(ev.Time) {
		return &ValidationError{
			Field: "eventTime",
			Reason: fmt.Sprintf("must be within the years %d to %d",
				objects.MinYear,
				objects.MaxYear),
		}
	} else if !ev.Priority.Valid() {
		return &ValidationError{
			Field:  "priority",
			Reason: fmt.Sprintf("%d is not a valid priority", ev.Priority),
		}
	}

	return nil
} // func validate(ev *objects.Event) error

func (s *Store) nextSeq() uint64 {
	s.seq++
	return s.seq
} // func (s *Store) nextSeq() uint64

// Add inserts a new Event and persists the Store.
// It returns a copy of the stored Event.
func (s *Store) Add(ev *objects.Event) (objects.Event, error) {
	var err error

	if err = validate(ev); err != nil {
		return objects.Event{}, err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	if _, dup := s.index[ev.ID]; dup {
		return objects.Event{}, &ValidationError{Field: "id", Reason: "already exists"}
	}

	var it = &item{ev: *ev, seq: s.nextSeq()}

	heap.Push(&s.queue, it)
	s.index[ev.ID] = it

	s.writeThrough()

	return it.ev, nil
} // func (s *Store) Add(ev *objects.Event) (objects.Event, error)

// Remove deletes the Event with the given ID. It returns true if such
// an Event existed.
func (s *Store) Remove(id string) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	var it, ok = s.index[id]

	if !ok {
		return false
	}

	heap.Remove(&s.queue, it.idx)
	delete(s.index, id)

	s.writeThrough()

	return true
} // func (s *Store) Remove(id string) bool

// MarkNotified sets the Notified flag of the Event with the given ID.
func (s *Store) MarkNotified(id string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	var it, ok = s.index[id]

	if !ok {
		s.log.Printf("[DEBUG] Cannot mark unknown Event %q as notified\n",
			id)
		return
	} else if it.ev.Notified {
		return
	}

	it.ev.Notified = true

	s.writeThrough()
} // func (s *Store) MarkNotified(id string)

// ListAll returns a copy of all Events, ordered by time and priority.
func (s *Store) ListAll() []objects.Event {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.snapshot()
} // func (s *Store) ListAll() []objects.Event

// ListByCategory returns the Events whose category matches, ignoring case.
// The category "all" matches every Event.
func (s *Store) ListByCategory(category string) []objects.Event {
	if strings.EqualFold(category, CategoryAll) {
		return s.ListAll()
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	var events = s.snapshot()

	return slices.DeleteFunc(events, func(ev objects.Event) bool {
		return !strings.EqualFold(ev.Category, category)
	})
} // func (s *Store) ListByCategory(category string) []objects.Event

// PeekEarliest returns the Event that is due first, without removing it.
// The second return value is false if the Store is empty.
func (s *Store) PeekEarliest() (objects.Event, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if len(s.queue) == 0 {
		return objects.Event{}, false
	}

	return s.queue[0].ev, true
} // func (s *Store) PeekEarliest() (objects.Event, bool)

// Get returns the Event with the given ID.
func (s *Store) Get(id string) (objects.Event, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if it, ok := s.index[id]; ok {
		return it.ev, true
	}

	return objects.Event{}, false
} // func (s *Store) Get(id string) (objects.Event, bool)

// Len returns the number of Events in the Store.
func (s *Store) Len() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return len(s.queue)
} // func (s *Store) Len() int

// snapshot returns an ordered copy of the queue. The caller must hold the lock.
func (s *Store) snapshot() []objects.Event {
	var items = slices.Clone(s.queue)

	slices.SortFunc(items, func(a, b *item) int {
		if a.less(b) {
			return -1
		} else if b.less(a) {
			return 1
		}
		return 0
	})

	var events = make([]objects.Event, len(items))

	for idx, it := range items {
		events[idx] = it.ev
	}

	return events
} // func (s *Store) snapshot() []objects.Event

// writeThrough writes the whole Store to the Gateway. Failures are logged,
// the in-memory state stays as it is. The caller must hold the lock.
func (s *Store) writeThrough() {
	if s.gw == nil {
		return
	}

	if err := s.gw.Save(s.snapshot()); err != nil {
		s.log.Printf("[ERROR] Cannot persist %d Events, memory and disk have diverged: %s\n",
			len(s.queue),
			err.Error())
	}
} // func (s *Store) writeThrough()
