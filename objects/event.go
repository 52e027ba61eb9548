// /home/krylon/go/src/github.com/blicero/herald/objects/event.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-12 17:48:30 krylon>

package objects

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blicero/herald/common"
	"github.com/blicero/herald/objects/priority"
)

// IDPrefix is prepended to the UUID of every Event.
const IDPrefix = "EVT-"

// ErrEmptyTitle is returned when an Event is created without a Title.
var ErrEmptyTitle = errors.New("Title cannot be empty")

// Event is a titled, timestamped and prioritized reminder.
// Only the Notified flag may change after an Event has been stored.
type Event struct {
	ID          string
	Title       string
	Description string
	Time        time.Time
	Priority    priority.Priority
	Recurring   bool
	Category    string
	Notified    bool
}

// NewEvent creates a new Event with a fresh ID.
func NewEvent(title, description string, t time.Time, p priority.Priority, recurring bool, category string) (*Event, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	} else if !p.Valid() {
		return nil, fmt.Errorf("Invalid priority %d", p)
	}

	var ev = &Event{
		ID:          IDPrefix + common.GetUUID(),
		Title:       title,
		Description: description,
		Time:        t,
		Priority:    p,
		Recurring:   recurring,
		Category:    category,
	}

	return ev, nil
} // func NewEvent(...) (*Event, error)

// Less returns true if the receiver should be notified about before other.
// Events are ordered by their Time, Events with the same Time by Priority.
func (e *Event) Less(other *Event) bool {
	if !e.Time.Equal(other.Time) {
		return e.Time.Before(other.Time)
	}

	return e.Priority < other.Priority
} // func (e *Event) Less(other *Event) bool

// FormattedTime returns the Event's Time with minute resolution,
// suitable for display.
func (e *Event) FormattedTime() string {
	return e.Time.Format(common.TimestampFormatMinute)
} // func (e *Event) FormattedTime() string

// Due returns the Event's scheduled time.
func (e *Event) Due() time.Time {
	return e.Time
} // func (e *Event) Due() time.Time

// IsDue returns true if the Event's scheduled time has passed.
func (e *Event) IsDue() bool {
	return e.Time.Before(time.Now())
} // func (e *Event) IsDue() bool

// Payload returns the Event's Title and a body mentioning when it is due.
func (e *Event) Payload() (string, string) {
	var body = fmt.Sprintf("coming up at %s", e.FormattedTime())

	if e.Description != "" {
		body += "\n" + e.Description
	}

	return e.Title, body
} // func (e *Event) Payload() (string, string)

func (e *Event) String() string {
	return fmt.Sprintf("%s (Priority: %s, Time: %s)",
		e.Title,
		e.Priority,
		e.FormattedTime())
} // func (e *Event) String() string

// eventRecord is the serialized form of an Event.
type eventRecord struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	EventTime   string             `json:"eventTime"`
	Priority    *priority.Priority `json:"priority"`
	IsRecurring bool               `json:"isRecurring"`
	Category    string             `json:"category"`
	IsNotified  bool               `json:"isNotified"`
}

// MarshalJSON implements json.Marshaler.
func (e Event) MarshalJSON() ([]byte, error) {
	var rec = eventRecord{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		EventTime:   FormatTime(e.Time),
		Priority:    &e.Priority,
		IsRecurring: e.Recurring,
		Category:    e.Category,
		IsNotified:  e.Notified,
	}

	return json.Marshal(&rec)
} // func (e Event) MarshalJSON() ([]byte, error)

// UnmarshalJSON implements json.Unmarshaler.
func (e *Event) UnmarshalJSON(buf []byte) error {
	var (
		err error
		rec eventRecord
		t   time.Time
	)

	if err = json.Unmarshal(buf, &rec); err != nil {
		return err
	} else if t, err = ParseTime(rec.EventTime); err != nil {
		return err
	}

	// Records without a priority get the same default as new requests.
	var prio = priority.Medium
	if rec.Priority != nil {
		prio = *rec.Priority
	}

	*e = Event{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Time:        t,
		Priority:    prio,
		Recurring:   rec.IsRecurring,
		Category:    rec.Category,
		Notified:    rec.IsNotified,
	}

	return nil
} // func (e *Event) UnmarshalJSON(buf []byte) error
