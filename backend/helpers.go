// /home/krylon/go/src/github.com/blicero/herald/backend/helpers.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 07. 2022 by Benjamin Walkenhorst
// (c) 2022 Benjamin Walkenhorst
// Time-stamp: <2026-10-15 21:37:58 krylon>

package backend

import (
	"net/http"

	"github.com/blicero/herald/objects"
	"github.com/pquerna/ffjson/ffjson"
)

func (d *Daemon) sendJSON(w http.ResponseWriter, status int, payload any) {
	var (
		err error
		buf []byte
	)

	if buf, err = ffjson.Marshal(payload); err != nil {
		d.log.Printf("[ERROR] Cannot serialize %T: %s\n",
			payload,
			err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	defer ffjson.Pool(buf)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf) // nolint: errcheck
} // func (d *Daemon) sendJSON(w http.ResponseWriter, status int, payload any)

func (d *Daemon) sendResponseJSON(w http.ResponseWriter, status int, res *objects.Response) {
	res.Status = status < http.StatusBadRequest
	d.sendJSON(w, status, res)
} // func (d *Daemon) sendResponseJSON(w http.ResponseWriter, status int, res *objects.Response)

func (d *Daemon) getID() int64 {
	d.idLock.Lock()
	d.idCnt++
	var id = d.idCnt
	d.idLock.Unlock()
	return id
} // func (d *Daemon) getID() int64
