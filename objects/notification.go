// /home/krylon/go/src/github.com/blicero/herald/objects/notification.go
// -*- mode: go; coding: utf-8; -*-
// Created on 30. 06. 2022 by Benjamin Walkenhorst
// (c) 2022 Benjamin Walkenhorst
// Time-stamp: <2026-10-04 17:55:12 krylon>

// Package objects provides the data types used by the application.
package objects

import "time"

// Notification is the common interface for items the user should be
// notified about. The title and body returned by Payload are what
// ends up on the user's screen.
type Notification interface {
	Due() time.Time
	IsDue() bool
	Payload() (string, string)
}
