// /home/krylon/go/src/github.com/blicero/herald/database/query/query.go
// -*- mode: go; coding: utf-8; -*-
// Created on 30. 06. 2022 by Benjamin Walkenhorst
// (c) 2022 Benjamin Walkenhorst
// Time-stamp: <2026-10-06 20:11:45 krylon>

// Package query provides symbolic constants for identifying SQL queries.
package query

//go:generate stringer -type=ID

// ID identifies a prepared SQL statement.
type ID uint8

// These are the queries the database uses.
const (
	EventInsert ID = iota
	EventDeleteAll
	EventGetAll
)
