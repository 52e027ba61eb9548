// /home/krylon/go/src/github.com/blicero/herald/notify/dbus.go
// -*- mode: go; coding: utf-8; -*-
// Created on 01. 07. 2022 by Benjamin Walkenhorst
// (c) 2022 Benjamin Walkenhorst
// Time-stamp: <2026-10-13 19:20:51 krylon>

package notify

import (
	"fmt"
	"log"

	"github.com/blicero/herald/common"
	"github.com/blicero/herald/logdomain"
	"github.com/blicero/herald/objects"
	"github.com/godbus/dbus/v5"
)

const (
	notifyObj    = "org.freedesktop.Notifications"
	notifyPath   = "/org/freedesktop/Notifications"
	notifyMethod = "org.freedesktop.Notifications.Notify"
	// The notification server picks the timeout.
	notifyExpire int32 = -1
)

// DBusSink posts Notifications to the desktop via the session bus.
type DBusSink struct {
	log *log.Logger
	bus *dbus.Conn
}

// NewDBusSink connects to the session bus.
func NewDBusSink() (*DBusSink, error) {
	var (
		err error
		s   = new(DBusSink)
	)

	if s.log, err = common.GetLogger(logdomain.Notify); err != nil {
		return nil, err
	} else if s.bus, err = dbus.ConnectSessionBus(); err != nil {
		s.log.Printf("[ERROR] Failed to connect to DBus Session bus: %s\n",
			err.Error())
		return nil, err
	}

	return s, nil
} // func NewDBusSink() (*DBusSink, error)

// Notify posts the Event.
func (s *DBusSink) Notify(ev *objects.Event) error {
	return s.post(ev)
} // func (s *DBusSink) Notify(ev *objects.Event) error

func (s *DBusSink) post(n objects.Notification) error {
	var (
		err        error
		obj        = s.bus.Object(notifyObj, notifyPath)
		head, body string
	)

	if obj == nil {
		err = fmt.Errorf("Did not find object %s (%s) on session bus",
			notifyObj,
			notifyPath)
		s.log.Printf("[ERROR] %s\n", err.Error())
		return err
	}

	head, body = n.Payload()

	var res = obj.Call(
		notifyMethod,
		0,
		common.AppName,
		uint32(0),
		"",
		head,
		body,
		[]string{},
		map[string]dbus.Variant{},
		notifyExpire,
	)

	if res.Err != nil {
		s.log.Printf("[ERROR] Cannot send Notification %q: %s\n",
			head,
			res.Err.Error())
		return res.Err
	}

	return nil
} // func (s *DBusSink) post(n objects.Notification) error

// Close closes the connection to the session bus.
func (s *DBusSink) Close() error {
	return s.bus.Close()
} // func (s *DBusSink) Close() error
