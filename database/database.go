// /home/krylon/go/src/github.com/blicero/herald/database/database.go
// -*- mode: go; coding: utf-8; -*-
// Created on 30. 06. 2022 by Benjamin Walkenhorst
// (c) 2022 Benjamin Walkenhorst
// Time-stamp: <2026-10-12 19:40:17 krylon>

// Package database provides a SQLite backed store for Events.
// It satisfies the same contract as the JSON file: every Save replaces
// the complete collection, inside a single transaction.
package database

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/blicero/herald/common"
	"github.com/blicero/herald/database/query"
	"github.com/blicero/herald/logdomain"
	"github.com/blicero/herald/objects"
	"github.com/blicero/herald/objects/priority"
	"github.com/blicero/krylib"
	_ "github.com/mattn/go-sqlite3" // Import the database driver
)

// Database wraps the connection to the SQLite file.
type Database struct {
	db      *sql.DB
	lock    sync.Mutex
	log     *log.Logger
	path    string
	queries map[query.ID]*sql.Stmt
}

// Open opens the database at path. If the file does not exist yet,
// it is created and the schema is initialized.
func Open(path string) (*Database, error) {
	var (
		err      error
		dbExists bool
		db       = &Database{
			path:    path,
			queries: make(map[query.ID]*sql.Stmt),
		}
	)

	if db.log, err = common.GetLogger(logdomain.Database); err != nil {
		return nil, err
	} else if common.Debug {
		db.log.Printf("[DEBUG] Open database %s\n", path)
	}

	var connstring = fmt.Sprintf("%s?_locking=NORMAL&_journal=WAL&_fk=1&recursive_triggers=0",
		path)

	if dbExists, err = krylib.Fexists(path); err != nil {
		db.log.Printf("[ERROR] Failed to check if %s already exists: %s\n",
			path,
			err.Error())
		return nil, err
	} else if db.db, err = sql.Open("sqlite3", connstring); err != nil {
		db.log.Printf("[ERROR] Failed to open %s: %s\n",
			path,
			err.Error())
		return nil, err
	}

	db.db.SetMaxOpenConns(1)

	if !dbExists {
		if err = db.initialize(); err != nil {
			var e2 error
			if e2 = db.db.Close(); e2 != nil {
				db.log.Printf("[CRITICAL] Failed to close database: %s\n",
					e2.Error())
				return nil, e2
			}
			return nil, err
		}
		db.log.Println("[INFO] Database has been initialized")
	}

	return db, nil
} // func Open(path string) (*Database, error)

func (db *Database) initialize() error {
	var (
		err error
		tx  *sql.Tx
	)

	if tx, err = db.db.Begin(); err != nil {
		db.log.Printf("[ERROR] Cannot begin transaction: %s\n",
			err.Error())
		return err
	}

	for _, q := range initQueries {
		db.log.Printf("[TRACE] Execute init query:\n%s\n", q)
		if _, err = tx.Exec(q); err != nil {
			db.log.Printf("[ERROR] Cannot execute init query: %s\n%s\n",
				err.Error(),
				q)
			if rbErr := tx.Rollback(); rbErr != nil {
				db.log.Printf("[CANTHAPPEN] Cannot rollback transaction: %s\n",
					rbErr.Error())
				return rbErr
			}
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		db.log.Printf("[CANTHAPPEN] Failed to commit init transaction: %s\n",
			err.Error())
		return err
	}

	return nil
} // func (db *Database) initialize() error

// Close closes the database and releases all prepared statements.
func (db *Database) Close() error {
	db.lock.Lock()
	defer db.lock.Unlock()

	for key, stmt := range db.queries {
		stmt.Close() // nolint: errcheck
		delete(db.queries, key)
	}

	if err := db.db.Close(); err != nil {
		db.log.Printf("[ERROR] Cannot close database: %s\n",
			err.Error())
		return err
	}

	db.db = nil
	return nil
} // func (db *Database) Close() error

func (db *Database) getQuery(id query.ID) (*sql.Stmt, error) {
	var (
		stmt  *sql.Stmt
		found bool
		err   error
	)

	if stmt, found = db.queries[id]; found {
		return stmt, nil
	} else if _, found = dbQueries[id]; !found {
		return nil, fmt.Errorf("Unknown Query %d",
			id)
	}

	db.log.Printf("[TRACE] Prepare query %s\n", id)

	if stmt, err = db.db.Prepare(dbQueries[id]); err != nil {
		db.log.Printf("[ERROR] Cannot parse query %s: %s\n%s\n",
			id,
			err.Error(),
			dbQueries[id])
		return nil, err
	}

	db.queries[id] = stmt
	return stmt, nil
} // func (db *Database) getQuery(query.ID) (*sql.Stmt, error)

// Load returns all Events stored in the database, in the order
// they were saved in.
func (db *Database) Load() ([]objects.Event, error) {
	const qid query.ID = query.EventGetAll
	var (
		err  error
		stmt *sql.Stmt
		rows *sql.Rows
	)

	db.lock.Lock()
	defer db.lock.Unlock()

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid,
			err.Error())
		return nil, err
	} else if rows, err = stmt.Query(); err != nil {
		db.log.Printf("[ERROR] Cannot query Events: %s\n",
			err.Error())
		return nil, err
	}

	defer rows.Close() // nolint: errcheck

	var events = make([]objects.Event, 0, 16)

	for rows.Next() {
		var (
			ev   objects.Event
			sec  int64
			nsec int64
			prio uint8
		)

		if err = rows.Scan(
			&ev.ID,
			&ev.Title,
			&ev.Description,
			&sec,
			&nsec,
			&prio,
			&ev.Recurring,
			&ev.Category,
			&ev.Notified); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n",
				err.Error())
			return nil, err
		}

		ev.Time = time.Unix(sec, nsec)
		ev.Priority = priority.Priority(prio)
		events = append(events, ev)
	}

	if err = rows.Err(); err != nil {
		db.log.Printf("[ERROR] Error iterating Events: %s\n",
			err.Error())
		return nil, err
	}

	return events, nil
} // func (db *Database) Load() ([]objects.Event, error)

// Save replaces all Events in the database with the given ones.
// Either all of them are written, or none at all.
func (db *Database) Save(events []objects.Event) (err error) {
	var (
		tx           *sql.Tx
		purge, store *sql.Stmt
		status       bool
	)

	db.lock.Lock()
	defer db.lock.Unlock()

	if purge, err = db.getQuery(query.EventDeleteAll); err != nil {
		return err
	} else if store, err = db.getQuery(query.EventInsert); err != nil {
		return err
	} else if tx, err = db.db.Begin(); err != nil {
		db.log.Printf("[ERROR] Cannot begin transaction: %s\n",
			err.Error())
		return err
	}

	defer func() {
		var e2 error
		if status {
			if e2 = tx.Commit(); e2 != nil {
				db.log.Printf("[ERROR] Cannot commit transaction: %s\n",
					e2.Error())
				err = e2
			}
		} else if e2 = tx.Rollback(); e2 != nil {
			db.log.Printf("[ERROR] Cannot roll back transaction: %s\n",
				e2.Error())
		}
	}()

	if _, err = tx.Stmt(purge).Exec(); err != nil {
		db.log.Printf("[ERROR] Cannot delete old Events: %s\n",
			err.Error())
		return err
	}

	var insert = tx.Stmt(store)

	for idx := range events {
		var ev = &events[idx]

		if _, err = insert.Exec(
			ev.ID,
			idx,
			ev.Title,
			ev.Description,
			ev.Time.Unix(),
			ev.Time.Nanosecond(),
			uint8(ev.Priority),
			ev.Recurring,
			ev.Category,
			ev.Notified); err != nil {
			db.log.Printf("[ERROR] Cannot insert Event %s (%q): %s\n",
				ev.ID,
				ev.Title,
				err.Error())
			return err
		}
	}

	status = true
	return nil
} // func (db *Database) Save(events []objects.Event) (err error)
