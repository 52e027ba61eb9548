// /home/krylon/go/src/github.com/blicero/herald/objects/priority/priority.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-05 19:41:22 krylon>

//go:generate stringer -type=Priority

// Package priority contains symbolic constants for the urgency of an Event.
// Lower values sort first, so High comes before Medium comes before Low.
package priority

import (
	"fmt"
	"strings"
)

// Priority describes how urgent an Event is.
type Priority uint8

// High, Medium and Low are the known priorities, ordered as they sort.
const (
	High Priority = iota
	Medium
	Low
)

// Valid returns true if p is one of the known priorities.
func (p Priority) Valid() bool {
	return p <= Low
} // func (p Priority) Valid() bool

// Parse returns the Priority matching the given name, ignoring case.
func Parse(s string) (Priority, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HIGH":
		return High, nil
	case "MEDIUM":
		return Medium, nil
	case "LOW":
		return Low, nil
	default:
		return Medium, fmt.Errorf("Invalid priority %q", s)
	}
} // func Parse(s string) (Priority, error)

// MarshalText encodes the Priority as HIGH, MEDIUM or LOW.
func (p Priority) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("Invalid priority %d", p)
	}

	return []byte(strings.ToUpper(p.String())), nil
} // func (p Priority) MarshalText() ([]byte, error)

// UnmarshalText decodes a Priority, ignoring case.
func (p *Priority) UnmarshalText(b []byte) error {
	var (
		err error
		val Priority
	)

	if val, err = Parse(string(b)); err != nil {
		return err
	}

	*p = val
	return nil
} // func (p *Priority) UnmarshalText(b []byte) error
