// /home/krylon/go/src/github.com/blicero/herald/notify/sink.go
// -*- mode: go; coding: utf-8; -*-
// Created on 07. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-13 19:15:22 krylon>

// Package notify provides the ways a due Event can be brought to the
// user's attention.
package notify

import (
	"errors"
	"fmt"

	"github.com/blicero/herald/objects"
)

// Sink receives due Events. Implementations should return quickly or
// apply their own timeout, the caller does not impose one.
type Sink interface {
	Notify(ev *objects.Event) error
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(ev *objects.Event) error

// Notify calls f(ev).
func (f SinkFunc) Notify(ev *objects.Event) error {
	return f(ev)
} // func (f SinkFunc) Notify(ev *objects.Event) error

// Multi passes each Event to all of its Sinks. A failing Sink does not
// keep the others from being called, all errors are joined.
type Multi []Sink

// Notify delivers ev to every Sink.
func (m Multi) Notify(ev *objects.Event) error {
	var errs []error

	for idx, s := range m {
		if err := s.Notify(ev); err != nil {
			errs = append(errs, fmt.Errorf("sink #%d: %w", idx, err))
		}
	}

	return errors.Join(errs...)
} // func (m Multi) Notify(ev *objects.Event) error
