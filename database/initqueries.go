// /home/krylon/go/src/github.com/blicero/herald/database/initqueries.go
// -*- mode: go; coding: utf-8; -*-
// Created on 30. 06. 2022 by Benjamin Walkenhorst
// (c) 2022 Benjamin Walkenhorst
// Time-stamp: <2026-10-06 20:09:58 krylon>

package database

var initQueries = []string{
	`
CREATE TABLE event (
    id          TEXT PRIMARY KEY,
    position    INTEGER NOT NULL,
    title       TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    event_sec   INTEGER NOT NULL,
    event_nsec  INTEGER NOT NULL DEFAULT 0,
    priority    INTEGER NOT NULL DEFAULT 1,
    recurring   INTEGER NOT NULL DEFAULT 0,
    category    TEXT NOT NULL DEFAULT '',
    notified    INTEGER NOT NULL DEFAULT 0,
    CHECK (trim(title) <> ''),
    CHECK (priority BETWEEN 0 AND 2),
    CHECK (event_nsec BETWEEN 0 AND 999999999)
)
`,
	"CREATE INDEX event_time_idx ON event (event_sec, event_nsec, priority)",
	"CREATE INDEX event_category_idx ON event (category COLLATE NOCASE)",
}
