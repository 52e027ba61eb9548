// /home/krylon/go/src/github.com/blicero/herald/scheduler/scheduler.go
// -*- mode: go; coding: utf-8; -*-
// Created on 08. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-15 20:11:48 krylon>

// Package scheduler periodically looks for Events that are about to
// come up and hands them to a notify.Sink.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/blicero/herald/common"
	"github.com/blicero/herald/logdomain"
	"github.com/blicero/herald/notify"
	"github.com/blicero/herald/objects"
)

//go:generate stringer -type=State

// State describes what the Scheduler is doing right now.
type State uint8

// Idle means the Scheduler is waiting for the next tick,
// Scanning that a tick is being processed.
// A Stopped Scheduler cannot be started again.
const (
	Idle State = iota
	Scanning
	Stopped
)

// ErrStopped is returned when Start is called on a Scheduler that
// has been stopped.
var ErrStopped = errors.New("Scheduler has been stopped")

// ErrRunning is returned when Start is called twice.
var ErrRunning = errors.New("Scheduler is already running")

// Source is where the Scheduler gets its Events from.
// *store.Store satisfies it.
type Source interface {
	ListAll() []objects.Event
	MarkNotified(id string)
}

// Scheduler checks its Source at a fixed interval.
type Scheduler struct {
	log       *log.Logger
	src       Source
	sink      notify.Sink
	interval  time.Duration
	lookahead time.Duration
	clock     func() time.Time
	scanLock  sync.Mutex
	lock      sync.RWMutex
	state     State
	running   bool
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// New creates a Scheduler. A zero interval or lookahead is replaced by
// the default value.
func New(src Source, sink notify.Sink, interval, lookahead time.Duration) (*Scheduler, error) {
	var (
		err error
		s   = &Scheduler{
			src:       src,
			sink:      sink,
			interval:  interval,
			lookahead: lookahead,
			clock:     time.Now,
		}
	)

	if src == nil {
		return nil, errors.New("Source must not be nil")
	} else if sink == nil {
		return nil, errors.New("Sink must not be nil")
	} else if interval < 0 || lookahead < 0 {
		return nil, fmt.Errorf("Invalid interval (%s) or lookahead (%s)",
			interval,
			lookahead)
	} else if s.log, err = common.GetLogger(logdomain.Scheduler); err != nil {
		return nil, err
	}

	if s.interval == 0 {
		s.interval = common.DefaultInterval
	}

	if s.lookahead == 0 {
		s.lookahead = common.DefaultLookahead
	}

	return s, nil
} // func New(src Source, sink notify.Sink, interval, lookahead time.Duration) (*Scheduler, error)

// Interval returns the time between two scans.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
} // func (s *Scheduler) Interval() time.Duration

// Lookahead returns how far into the future the Scheduler looks.
func (s *Scheduler) Lookahead() time.Duration {
	return s.lookahead
} // func (s *Scheduler) Lookahead() time.Duration

// State returns the current State.
func (s *Scheduler) State() State {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.state
} // func (s *Scheduler) State() State

func (s *Scheduler) setState(st State) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.state == Stopped {
		return false
	}

	s.state = st
	return true
} // func (s *Scheduler) setState(st State) bool

// Start launches the scan loop. The first scan happens right away.
func (s *Scheduler) Start(ctx context.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.state == Stopped {
		return ErrStopped
	} else if s.running {
		return ErrRunning
	}

	var loopCtx context.Context

	loopCtx, s.cancel = context.WithCancel(ctx)
	s.running = true
	s.wg.Add(1)

	lifecycle.Go(loopCtx, func(ctx context.Context) error {
		defer s.wg.Done()
		s.loop(ctx)
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		s.log.Printf("[CRITICAL] Scan loop died: %s\n",
			err.Error())
	}))

	s.log.Printf("[INFO] Scheduler started, interval %s, lookahead %s\n",
		s.interval,
		s.lookahead)

	return nil
} // func (s *Scheduler) Start(ctx context.Context) error

// Stop ends the scan loop and waits for a running scan to finish.
// Calling Stop more than once is harmless.
func (s *Scheduler) Stop() {
	s.lock.Lock()
	var cancel = s.cancel
	s.lock.Unlock()

	if cancel != nil {
		cancel()
	}

	s.wg.Wait()

	// Wait for a Scan that was called directly.
	s.scanLock.Lock()
	var prev = s.halt()
	s.scanLock.Unlock()

	if prev != Stopped {
		s.log.Println("[INFO] Scheduler stopped")
	}
} // func (s *Scheduler) Stop()

// halt moves the Scheduler into its final State and returns the
// previous one.
func (s *Scheduler) halt() State {
	s.lock.Lock()
	defer s.lock.Unlock()

	var prev = s.state
	s.state = Stopped
	s.running = false
	return prev
} // func (s *Scheduler) halt() State

func (s *Scheduler) loop(ctx context.Context) {
	var ticker = time.NewTicker(s.interval)
	defer ticker.Stop()

	s.tick()

	for {
		select {
		case <-ctx.Done():
			s.log.Printf("[DEBUG] Scan loop is quitting: %s\n",
				ctx.Err())
			s.halt()
			return
		case <-ticker.C:
			s.tick()
		}
	}
} // func (s *Scheduler) loop(ctx context.Context)

func (s *Scheduler) tick() {
	defer func() {
		if x := recover(); x != nil {
			s.log.Printf("[CRITICAL] Panic during scan: %v\n", x)
		}
	}()

	s.Scan(s.clock())
} // func (s *Scheduler) tick()

// Scan hands every Event due before now+lookahead that has not been
// notified yet to the Sink, and marks it as notified. An Event the Sink
// fails on stays unmarked and is tried again on the next scan.
// Scan returns the number of Events delivered.
func (s *Scheduler) Scan(now time.Time) int {
	s.scanLock.Lock()
	defer s.scanLock.Unlock()

	if !s.setState(Scanning) {
		return 0
	}

	defer s.setState(Idle)

	var (
		cnt      int
		deadline = now.Add(s.lookahead)
		events   = s.src.ListAll()
	)

	for idx := range events {
		var ev = &events[idx]

		if ev.Notified || !ev.Time.Before(deadline) {
			continue
		} else if err := s.deliver(ev); err != nil {
			s.log.Printf("[ERROR] Cannot deliver Event %s (%q): %s\n",
				ev.ID,
				ev.Title,
				err.Error())
			continue
		}

		s.src.MarkNotified(ev.ID)
		cnt++
	}

	if cnt > 0 {
		s.log.Printf("[DEBUG] Delivered %d Events\n", cnt)
	}

	return cnt
} // func (s *Scheduler) Scan(now time.Time) int

func (s *Scheduler) deliver(ev *objects.Event) (err error) {
	defer func() {
		if x := recover(); x != nil {
			err = fmt.Errorf("Sink panicked: %v", x)
		}
	}()

	return s.sink.Notify(ev)
} // func (s *Scheduler) deliver(ev *objects.Event) (err error)
