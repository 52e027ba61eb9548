// /home/krylon/go/src/github.com/blicero/herald/logdomain/logdomain.go
// -*- mode: go; coding: utf-8; -*-
// Created on 03. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-03 18:02:11 krylon>

// Package logdomain provides constants for log sources.
package logdomain

//go:generate stringer -type=ID

// ID represents an area of concern.
type ID uint8

// These constants identify the various logging domains.
const (
	Common ID = iota
	Backend
	Web
	Store
	Persist
	Database
	Scheduler
	Notify
	Client
)

// AllDomains returns a slice of all the known log sources.
func AllDomains() []ID {
	return []ID{
		Common,
		Backend,
		Web,
		Store,
		Persist,
		Database,
		Scheduler,
		Notify,
		Client,
	}
} // func AllDomains() []ID
