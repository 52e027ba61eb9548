// /home/krylon/go/src/github.com/blicero/herald/objects/response.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 07. 2022 by Benjamin Walkenhorst
// (c) 2022 Benjamin Walkenhorst
// Time-stamp: <2026-10-06 19:03:40 krylon>

package objects

//go:generate ffjson response.go

// Response is what the backend sends to a client when a request does not
// produce an Event, e.g. because it was rejected.
type Response struct {
	ID      int64  `json:"id"`
	Status  bool   `json:"status"`
	Message string `json:"message"`
}
