// /home/krylon/go/src/github.com/blicero/herald/scheduler/01_scheduler_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-15 20:30:02 krylon>

package scheduler

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/blicero/herald/common"
	"github.com/blicero/herald/notify"
	"github.com/blicero/herald/objects"
	"github.com/blicero/herald/objects/priority"
	"github.com/blicero/herald/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	var (
		err     error
		baseDir string
	)

	if baseDir, err = os.MkdirTemp("", "herald_scheduler_test"); err != nil {
		panic(err)
	} else if err = common.SetBaseDir(baseDir); err != nil {
		panic(err)
	}

	var result = m.Run()
	os.RemoveAll(baseDir) // nolint: errcheck
	os.Exit(result)
} // func TestMain(m *testing.M)

type recorder struct {
	lock sync.Mutex
	seen []string
	fail map[string]error
}

func (r *recorder) Notify(ev *objects.Event) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if err := r.fail[ev.Title]; err != nil {
		return err
	}

	r.seen = append(r.seen, ev.Title)
	return nil
} // func (r *recorder) Notify(ev *objects.Event) error

func (r *recorder) titles() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]string(nil), r.seen...)
} // func (r *recorder) titles() []string

var ten = time.Date(2026, 10, 17, 10, 0, 0, 0, time.Local)

func populate(t *testing.T, s *store.Store, specs map[string]time.Time) {
	for title, when := range specs {
		var ev, err = objects.NewEvent(title, "", when, priority.Medium, false, "")
		require.NoError(t, err)
		_, err = s.Add(ev)
		require.NoError(t, err)
	}
} // func populate(t *testing.T, s *store.Store, specs map[string]time.Time)

func notified(s *store.Store) map[string]bool {
	var m = make(map[string]bool)
	for _, ev := range s.ListAll() {
		m[ev.Title] = ev.Notified
	}
	return m
} // func notified(s *store.Store) map[string]bool

func TestNewDefaults(t *testing.T) {
	var (
		err   error
		sched *Scheduler
		st    *store.Store
	)

	st, err = store.New(nil)
	require.NoError(t, err)

	sched, err = New(st, &recorder{}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, common.DefaultInterval, sched.Interval())
	assert.Equal(t, common.DefaultLookahead, sched.Lookahead())
	assert.Equal(t, Idle, sched.State())

	_, err = New(nil, &recorder{}, 0, 0)
	assert.Error(t, err)
	_, err = New(st, nil, 0, 0)
	assert.Error(t, err)
	_, err = New(st, &recorder{}, -time.Second, 0)
	assert.Error(t, err)
} // func TestNewDefaults(t *testing.T)

func TestScanWindow(t *testing.T) {
	var (
		err   error
		sched *Scheduler
		st    *store.Store
		rec   = &recorder{}
	)

	st, err = store.New(nil)
	require.NoError(t, err)

	populate(t, st, map[string]time.Time{
		"Soon":     ten.Add(10 * time.Minute),
		"Overdue":  ten.Add(-time.Hour),
		"Later":    ten.Add(16 * time.Minute),
		"Boundary": ten.Add(15 * time.Minute),
	})

	sched, err = New(st, rec, time.Minute, 15*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, 2, sched.Scan(ten))
	assert.Equal(t, []string{"Overdue", "Soon"}, rec.titles())

	var flags = notified(st)
	assert.True(t, flags["Soon"])
	assert.True(t, flags["Overdue"])
	assert.False(t, flags["Later"])
	assert.False(t, flags["Boundary"])

	// Nothing is delivered twice.
	assert.Equal(t, 0, sched.Scan(ten))

	assert.Equal(t, 2, sched.Scan(ten.Add(5*time.Minute)))
	assert.Equal(t, []string{"Overdue", "Soon", "Boundary", "Later"}, rec.titles())
	assert.Equal(t, Idle, sched.State())
} // func TestScanWindow(t *testing.T)

func TestScanSinkFailure(t *testing.T) {
	var (
		err   error
		sched *Scheduler
		st    *store.Store
		rec   = &recorder{
			fail: map[string]error{"Broken": errors.New("sink is down")},
		}
	)

	st, err = store.New(nil)
	require.NoError(t, err)

	populate(t, st, map[string]time.Time{
		"Broken": ten.Add(time.Minute),
		"Fine":   ten.Add(2 * time.Minute),
	})

	sched, err = New(st, rec, time.Minute, 15*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, 1, sched.Scan(ten))
	assert.Equal(t, []string{"Fine"}, rec.titles())
	assert.False(t, notified(st)["Broken"])

	// Once the sink recovers, the Event is delivered.
	rec.lock.Lock()
	rec.fail = nil
	rec.lock.Unlock()

	assert.Equal(t, 1, sched.Scan(ten))
	assert.True(t, notified(st)["Broken"])
} // func TestScanSinkFailure(t *testing.T)

func TestScanSinkPanic(t *testing.T) {
	var (
		err   error
		sched *Scheduler
		st    *store.Store
		calls int
		sink  = notify.SinkFunc(func(ev *objects.Event) error {
			calls++
			if ev.Title == "Bomb" {
				panic("boom")
			}
			return nil
		})
	)

	st, err = store.New(nil)
	require.NoError(t, err)

	populate(t, st, map[string]time.Time{
		"Bomb": ten,
		"Safe": ten.Add(time.Minute),
	})

	sched, err = New(st, sink, time.Minute, 15*time.Minute)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		assert.Equal(t, 1, sched.Scan(ten))
	})
	assert.Equal(t, 2, calls)

	var flags = notified(st)
	assert.False(t, flags["Bomb"])
	assert.True(t, flags["Safe"])
	assert.Equal(t, Idle, sched.State())
} // func TestScanSinkPanic(t *testing.T)

func TestStartStop(t *testing.T) {
	var (
		err   error
		sched *Scheduler
		st    *store.Store
		rec   = &recorder{}
	)

	st, err = store.New(nil)
	require.NoError(t, err)

	populate(t, st, map[string]time.Time{
		"Immediate": ten.Add(10 * time.Minute),
	})

	sched, err = New(st, rec, 10*time.Millisecond, 15*time.Minute)
	require.NoError(t, err)
	sched.clock = func() time.Time { return ten }

	require.NoError(t, sched.Start(context.Background()))
	assert.ErrorIs(t, sched.Start(context.Background()), ErrRunning)

	assert.Eventually(t, func() bool {
		return len(rec.titles()) == 1
	}, time.Second, 5*time.Millisecond)

	sched.Stop()
	assert.Equal(t, Stopped, sched.State())

	populate(t, st, map[string]time.Time{
		"TooLate": ten,
	})

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, []string{"Immediate"}, rec.titles())
	assert.Equal(t, 0, sched.Scan(ten))
	assert.ErrorIs(t, sched.Start(context.Background()), ErrStopped)

	// Stopping twice is fine.
	sched.Stop()
} // func TestStartStop(t *testing.T)

func TestStopOnCancel(t *testing.T) {
	var (
		err    error
		sched  *Scheduler
		st     *store.Store
		ctx    context.Context
		cancel context.CancelFunc
	)

	st, err = store.New(nil)
	require.NoError(t, err)

	sched, err = New(st, &recorder{}, 10*time.Millisecond, time.Minute)
	require.NoError(t, err)

	ctx, cancel = context.WithCancel(context.Background())
	require.NoError(t, sched.Start(ctx))
	cancel()

	assert.Eventually(t, func() bool {
		return sched.State() == Stopped
	}, time.Second, 5*time.Millisecond,
		"Scheduler must stop when its context is cancelled")
	assert.ErrorIs(t, sched.Start(context.Background()), ErrStopped)

	var done = make(chan struct{})
	go func() {
		sched.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after the context was cancelled")
	}

	assert.Equal(t, Stopped, sched.State())
} // func TestStopOnCancel(t *testing.T)

func TestStopWaitsForScan(t *testing.T) {
	var (
		err     error
		sched   *Scheduler
		st      *store.Store
		once    sync.Once
		entered = make(chan struct{})
		release = make(chan struct{})
		done    = make(chan struct{})
		sink    = notify.SinkFunc(func(ev *objects.Event) error {
			once.Do(func() { close(entered) })
			<-release
			return nil
		})
	)

	st, err = store.New(nil)
	require.NoError(t, err)

	populate(t, st, map[string]time.Time{
		"Slow": ten,
	})

	sched, err = New(st, sink, 10*time.Millisecond, 15*time.Minute)
	require.NoError(t, err)
	sched.clock = func() time.Time { return ten }

	require.NoError(t, sched.Start(context.Background()))

	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("Sink was never called")
	}

	go func() {
		sched.Stop()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Stop returned while a scan was still running")
	case <-time.After(100 * time.Millisecond):
	}

	assert.Equal(t, Scanning, sched.State())

	close(release)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after the scan finished")
	}

	assert.True(t, notified(st)["Slow"], "the running scan must complete")
	assert.Equal(t, Stopped, sched.State())
} // func TestStopWaitsForScan(t *testing.T)
