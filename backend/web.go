// /home/krylon/go/src/github.com/blicero/herald/backend/web.go
// -*- mode: go; coding: utf-8; -*-
// Created on 04. 07. 2022 by Benjamin Walkenhorst
// (c) 2022 Benjamin Walkenhorst
// Time-stamp: <2026-10-15 21:40:12 krylon>

package backend

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/blicero/herald/objects"
	"github.com/blicero/herald/store"
	"github.com/gorilla/mux"
	"github.com/pquerna/ffjson/ffjson"
)

const maxBodySize = 1 << 20

func (d *Daemon) initWebHandlers() error {
	d.router.Use(d.corsMiddleware)

	d.router.HandleFunc("/api/events", d.handleEventList).Methods(http.MethodGet)
	d.router.HandleFunc("/api/events", d.handleEventAdd).Methods(http.MethodPost)
	d.router.HandleFunc("/api/events/next", d.handleEventNext).Methods(http.MethodGet)
	d.router.HandleFunc("/api/events/{id}", d.handleEventGet).Methods(http.MethodGet)
	d.router.HandleFunc("/api/events/{id}", d.handleEventDelete).Methods(http.MethodDelete)
	d.router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(d.handleOptions)

	if d.hub != nil {
		d.router.Handle("/ws/notifications", d.hub)
	}

	return nil
} // func (d *Daemon) initWebHandlers() error

func (d *Daemon) serveHTTP() {
	var err error

	defer d.log.Println("[INFO] Web server is shutting down")

	d.log.Printf("[INFO] Web frontend is going online at %s\n", d.web.Addr)

	if err = d.web.Serve(d.listener); err != nil {
		if err != http.ErrServerClosed {
			d.log.Printf("[ERROR] Serve returned an error: %s\n",
				err.Error())
		} else {
			d.log.Println("[INFO] HTTP Server has shut down.")
		}
	}
} // func (d *Daemon) serveHTTP()

func (d *Daemon) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var hdr = w.Header()
		hdr.Set("Access-Control-Allow-Origin", "*")
		hdr.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		hdr.Set("Access-Control-Allow-Headers", "Content-Type")
		next.ServeHTTP(w, r)
	})
} // func (d *Daemon) corsMiddleware(next http.Handler) http.Handler

func (d *Daemon) handleOptions(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
} // func (d *Daemon) handleOptions(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleEventList(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		events   []objects.Event
		category = r.URL.Query().Get("category")
	)

	if category == "" {
		events = d.store.ListAll()
	} else {
		events = d.store.ListByCategory(category)
	}

	d.sendJSON(w, http.StatusOK, events)
} // func (d *Daemon) handleEventList(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleEventNext(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var ev, ok = d.store.PeekEarliest()

	if !ok {
		d.sendResponseJSON(w, http.StatusNotFound, &objects.Response{
			ID:      d.getID(),
			Message: "No Events are scheduled",
		})
		return
	}

	d.sendJSON(w, http.StatusOK, &ev)
} // func (d *Daemon) handleEventNext(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleEventGet(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		id     = mux.Vars(r)["id"]
		ev, ok = d.store.Get(id)
	)

	if !ok {
		d.sendResponseJSON(w, http.StatusNotFound, &objects.Response{
			ID:      d.getID(),
			Message: fmt.Sprintf("Event %s was not found", id),
		})
		return
	}

	d.sendJSON(w, http.StatusOK, &ev)
} // func (d *Daemon) handleEventGet(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleEventAdd(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var (
		err      error
		msg      string
		body     []byte
		req      objects.EventRequest
		ev       *objects.Event
		stored   objects.Event
		status   = http.StatusBadRequest
		response = objects.Response{ID: d.getID()}
	)

	if body, err = io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize)); err != nil {
		msg = fmt.Sprintf("Cannot read request body: %s", err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	} else if err = ffjson.Unmarshal(body, &req); err != nil {
		msg = fmt.Sprintf("Cannot parse request: %s", err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	} else if ev, err = req.Build(); err != nil {
		msg = fmt.Sprintf("Invalid Event: %s", err.Error())
		d.log.Printf("[INFO] %s\n", msg)
		response.Message = msg
		goto SEND_RESPONSE
	} else if stored, err = d.store.Add(ev); err != nil {
		msg = fmt.Sprintf("Cannot add Event %q: %s",
			ev.Title,
			err.Error())
		d.log.Printf("[ERROR] %s\n", msg)
		response.Message = msg
		if !errors.Is(err, store.ErrValidation) {
			status = http.StatusInternalServerError
		}
		goto SEND_RESPONSE
	}

	d.log.Printf("[INFO] Added Event %s (%q) at %s\n",
		stored.ID,
		stored.Title,
		stored.FormattedTime())

	d.sendJSON(w, http.StatusCreated, &stored)
	return

SEND_RESPONSE:
	d.sendResponseJSON(w, status, &response)
} // func (d *Daemon) handleEventAdd(w http.ResponseWriter, r *http.Request)

func (d *Daemon) handleEventDelete(w http.ResponseWriter, r *http.Request) {
	d.log.Printf("[TRACE] Handle %s from %s\n",
		r.URL,
		r.RemoteAddr)

	var id = mux.Vars(r)["id"]

	if !d.store.Remove(id) {
		d.sendResponseJSON(w, http.StatusNotFound, &objects.Response{
			ID:      d.getID(),
			Message: fmt.Sprintf("Event %s was not found", id),
		})
		return
	}

	d.log.Printf("[INFO] Removed Event %s\n", id)
	w.WriteHeader(http.StatusNoContent)
} // func (d *Daemon) handleEventDelete(w http.ResponseWriter, r *http.Request)
