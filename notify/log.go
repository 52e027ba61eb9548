// /home/krylon/go/src/github.com/blicero/herald/notify/log.go
// -*- mode: go; coding: utf-8; -*-
// Created on 07. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-07 20:41:09 krylon>

package notify

import (
	"log"

	"github.com/blicero/herald/common"
	"github.com/blicero/herald/logdomain"
	"github.com/blicero/herald/objects"
)

// LogSink writes a line for each Event to the log.
type LogSink struct {
	log *log.Logger
}

// NewLogSink creates a LogSink.
func NewLogSink() (*LogSink, error) {
	var (
		err error
		s   = new(LogSink)
	)

	if s.log, err = common.GetLogger(logdomain.Notify); err != nil {
		return nil, err
	}

	return s, nil
} // func NewLogSink() (*LogSink, error)

// Notify logs the Event's title and time.
func (s *LogSink) Notify(ev *objects.Event) error {
	s.log.Printf("[INFO] NOTIFICATION: %s is coming up at %s\n",
		ev.Title,
		ev.FormattedTime())
	return nil
} // func (s *LogSink) Notify(ev *objects.Event) error
