// /home/krylon/go/src/github.com/blicero/herald/database/dbqueries.go
// -*- mode: go; coding: utf-8; -*-
// Created on 01. 07. 2022 by Benjamin Walkenhorst
// (c) 2022 Benjamin Walkenhorst
// Time-stamp: <2026-10-06 20:10:33 krylon>

package database

import "github.com/blicero/herald/database/query"

var dbQueries = map[query.ID]string{
	query.EventInsert: `
INSERT INTO event (id, position, title, description, event_sec, event_nsec, priority, recurring, category, notified)
VALUES            ( ?,        ?,     ?,           ?,         ?,          ?,        ?,         ?,        ?,        ?)
`,
	query.EventDeleteAll: "DELETE FROM event",
	query.EventGetAll: `
SELECT
    id,
    title,
    description,
    event_sec,
    event_nsec,
    priority,
    recurring,
    category,
    notified
FROM event
ORDER BY position
`,
}
