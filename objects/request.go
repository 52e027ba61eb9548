// /home/krylon/go/src/github.com/blicero/herald/objects/request.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-09 18:27:16 krylon>

package objects

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blicero/herald/objects/priority"
)

//go:generate ffjson request.go

// ErrInvalidRequest is wrapped by all errors caused by malformed client input.
var ErrInvalidRequest = errors.New("Invalid request")

// EventRequest is what a client sends to create a new Event.
type EventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	EventTime   string `json:"eventTime"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	IsRecurring bool   `json:"isRecurring"`
}

// Build validates the request and creates a new Event from it.
// A missing priority defaults to Medium.
func (r *EventRequest) Build() (*Event, error) {
	var (
		err error
		t   time.Time
		p   = priority.Medium
	)

	if strings.TrimSpace(r.Title) == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, ErrEmptyTitle.Error())
	} else if t, err = ParseTime(r.EventTime); err != nil {
		return nil, err
	} else if r.Priority != "" {
		if p, err = priority.Parse(r.Priority); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, err.Error())
		}
	}

	return NewEvent(r.Title, r.Description, t, p, r.IsRecurring, r.Category)
} // func (r *EventRequest) Build() (*Event, error)
