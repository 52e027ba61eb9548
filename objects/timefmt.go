// /home/krylon/go/src/github.com/blicero/herald/objects/timefmt.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-05 21:09:54 krylon>

package objects

import (
	"fmt"
	"strings"
	"time"
)

// EventTimeFormat is the ISO-8601 local date-time used on the wire and on disk.
// Fractional seconds are only written if they are non-zero.
const EventTimeFormat = "2006-01-02T15:04:05.999999999"

// The range of years EventTimeFormat can write and read back.
const (
	MinYear = 1
	MaxYear = 9999
)

// Browsers send datetime-local input values without seconds.
var localLayouts = []string{
	EventTimeFormat,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// FormatTime renders t as local date-time without a zone.
func FormatTime(t time.Time) string {
	return t.In(time.Local).Format(EventTimeFormat)
} // func FormatTime(t time.Time) string

// TimeInRange returns true if t, in local time, falls into the years
// between MinYear and MaxYear.
func TimeInRange(t time.Time) bool {
	var year = t.In(time.Local).Year()
	return year >= MinYear && year <= MaxYear
} // func TimeInRange(t time.Time) bool

// ParseTime parses a time stamp as sent by clients or stored on disk.
// Time stamps with a zone offset are converted to local time, time stamps
// without one are taken to be local already.
func ParseTime(s string) (time.Time, error) {
	var (
		err error
		t   time.Time
	)

	s = strings.TrimSpace(s)

	if s == "" {
		return t, fmt.Errorf("%w: empty time stamp", ErrInvalidRequest)
	} else if t, err = time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(time.Local), nil
	}

	for _, layout := range localLayouts {
		if t, err = time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	return t, fmt.Errorf("%w: cannot parse time stamp %q", ErrInvalidRequest, s)
} // func ParseTime(s string) (time.Time, error)
