// /home/krylon/go/src/github.com/blicero/herald/persist/gateway.go
// -*- mode: go; coding: utf-8; -*-
// Created on 04. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-10 18:36:44 krylon>

// Package persist provides the durable backing stores for Events.
// Every Save overwrites the complete collection, there is no
// incremental or partial persistence.
package persist

import (
	"fmt"

	"github.com/blicero/herald/common"
	"github.com/blicero/herald/database"
	"github.com/blicero/herald/objects"
)

// Gateway loads and saves the full collection of Events.
type Gateway interface {
	// Load returns the stored Events. A missing or empty backing store
	// yields no Events and no error.
	Load() ([]objects.Event, error)
	// Save replaces the stored Events with the given ones in a single
	// operation.
	Save(events []objects.Event) error
	Close() error
}

// Open returns the Gateway for the given backend kind.
func Open(kind, path string) (Gateway, error) {
	switch kind {
	case common.BackendJSON:
		var gw, err = NewFileGateway(path)
		if err != nil {
			return nil, err
		}
		return gw, nil
	case common.BackendSQLite:
		var db, err = database.Open(path)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("Unknown store backend %q", kind)
	}
} // func Open(kind, path string) (Gateway, error)
