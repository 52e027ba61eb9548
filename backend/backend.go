// /home/krylon/go/src/github.com/blicero/herald/backend/backend.go
// -*- mode: go; coding: utf-8; -*-
// Created on 01. 07. 2022 by Benjamin Walkenhorst
// (c) 2022 Benjamin Walkenhorst
// Time-stamp: <2026-10-15 21:02:31 krylon>

// Package backend implements the daemon that ties the Store, the
// Scheduler and the notification sinks together and exposes them via HTTP.
package backend

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/blicero/herald/common"
	"github.com/blicero/herald/logdomain"
	"github.com/blicero/herald/notify"
	"github.com/blicero/herald/persist"
	"github.com/blicero/herald/scheduler"
	"github.com/blicero/herald/store"
	"github.com/gorilla/mux"
	"github.com/grandcat/zeroconf"
)

const shutdownTimeout = time.Second * 3

// Daemon is the centerpiece of the backend, coordinating between the Store,
// the Scheduler, the clients, etc.
type Daemon struct {
	log      *log.Logger
	cfg      *common.Config
	gw       persist.Gateway
	store    *store.Store
	sched    *scheduler.Scheduler
	hub      *notify.Hub
	bus      *notify.DBusSink
	lock     sync.RWMutex
	active   bool
	web      http.Server
	router   *mux.Router
	listener net.Listener
	dnssd    *zeroconf.Server
	hostname string
	idLock   sync.Mutex
	idCnt    int64
}

// Summon summons a Daemon and returns it. No sacrifice or idolatry is required.
func Summon(cfg *common.Config) (*Daemon, error) {
	var (
		err error
		d   *Daemon
	)

	if d, err = create(cfg); err != nil {
		return nil, err
	} else if d.listener, err = net.Listen("tcp", cfg.Listen); err != nil {
		d.log.Printf("[ERROR] Cannot listen on %s: %s\n",
			cfg.Listen,
			err.Error())
		d.release()
		return nil, err
	}

	d.web.Addr = d.listener.Addr().String()

	go d.serveHTTP()

	if err = d.sched.Start(context.Background()); err != nil {
		d.log.Printf("[ERROR] Cannot start Scheduler: %s\n",
			err.Error())
		d.Banish() // nolint: errcheck
		return nil, err
	}

	if cfg.Advertise {
		if err = d.initDNSSd(); err != nil {
			d.log.Printf("[ERROR] Cannot advertise service, continuing without: %s\n",
				err.Error())
		}
	}

	d.lock.Lock()
	d.active = true
	d.lock.Unlock()

	return d, nil
} // func Summon(cfg *common.Config) (*Daemon, error)

// create builds a Daemon without starting any of its goroutines.
func create(cfg *common.Config) (*Daemon, error) {
	var (
		err   error
		sinks notify.Multi
		d     = &Daemon{
			cfg:    cfg,
			router: mux.NewRouter(),
		}
	)

	if d.log, err = common.GetLogger(logdomain.Backend); err != nil {
		fmt.Printf("ERROR initializing Logger: %s\n",
			err.Error())
		return nil, err
	} else if err = cfg.Validate(); err != nil {
		d.log.Printf("[ERROR] Invalid configuration: %s\n",
			err.Error())
		return nil, err
	}

	if d.hostname, err = os.Hostname(); err != nil {
		d.log.Printf("[ERROR] Cannot query hostname: %s\n",
			err.Error())
		d.hostname = "localhost"
	}

	if d.gw, err = persist.Open(cfg.Store.Backend, cfg.Store.Path); err != nil {
		d.log.Printf("[ERROR] Cannot open %s store at %s: %s\n",
			cfg.Store.Backend,
			cfg.Store.Path,
			err.Error())
		return nil, err
	} else if d.store, err = store.New(d.gw); err != nil {
		d.log.Printf("[ERROR] Cannot create Store: %s\n",
			err.Error())
		d.release()
		return nil, err
	}

	if cfg.Notify.LogEnabled() {
		var ls *notify.LogSink
		if ls, err = notify.NewLogSink(); err != nil {
			d.release()
			return nil, err
		}
		sinks = append(sinks, ls)
	}

	if cfg.Notify.DBusEnabled() {
		if d.bus, err = notify.NewDBusSink(); err != nil {
			d.log.Printf("[WARN] DBus notifications are not available: %s\n",
				err.Error())
		} else {
			sinks = append(sinks, d.bus)
		}
	}

	if cfg.Notify.WebsocketEnabled() {
		if d.hub, err = notify.NewHub(); err != nil {
			d.release()
			return nil, err
		}
		sinks = append(sinks, d.hub)
	}

	if d.sched, err = scheduler.New(
		d.store,
		sinks,
		cfg.Scheduler.Interval,
		cfg.Scheduler.Lookahead); err != nil {
		d.log.Printf("[ERROR] Cannot create Scheduler: %s\n",
			err.Error())
		d.release()
		return nil, err
	}

	d.web.ErrorLog = d.log
	d.web.Handler = d.router

	if err = d.initWebHandlers(); err != nil {
		d.log.Printf("[ERROR] Failed to initialize web server: %s\n",
			err.Error())
		d.release()
		return nil, err
	}

	return d, nil
} // func create(cfg *common.Config) (*Daemon, error)

// Addr returns the address the web server listens on.
func (d *Daemon) Addr() string {
	if d.listener != nil {
		return d.listener.Addr().String()
	}
	return d.cfg.Listen
} // func (d *Daemon) Addr() string

// Store returns the Daemon's Store.
func (d *Daemon) Store() *store.Store {
	return d.store
} // func (d *Daemon) Store() *store.Store

// IsAlive returns true if the Daemon's active flag is set.
func (d *Daemon) IsAlive() bool {
	d.lock.RLock()
	var alive = d.active
	d.lock.RUnlock()

	return alive
} // func (d *Daemon) IsAlive() bool

// Banish shuts down the web server and the Scheduler and closes the Store's
// backing Gateway.
func (d *Daemon) Banish() error {
	var (
		err         error
		ctx, cancel = context.WithTimeout(context.Background(), shutdownTimeout)
	)
	defer cancel()

	if err = d.web.Shutdown(ctx); err != nil {
		d.log.Printf("[ERROR] Failed to shutdown web server: %s\n",
			err.Error())
	}

	if ctx.Err() != nil {
		err = ctx.Err()
		d.log.Printf("[ERROR] Failed to gracefully shut down web server: %s\n",
			ctx.Err().Error())
		d.web.Close() // nolint: errcheck
	}

	d.sched.Stop()

	if d.dnssd != nil {
		d.dnssd.Shutdown()
		d.dnssd = nil
	}

	d.release()

	d.lock.Lock()
	d.active = false
	d.lock.Unlock()
	return err
} // func (d *Daemon) Banish() error

// release closes the notification sinks and the Gateway.
func (d *Daemon) release() {
	if d.hub != nil {
		d.hub.Close() // nolint: errcheck
	}

	if d.bus != nil {
		if err := d.bus.Close(); err != nil {
			d.log.Printf("[ERROR] Cannot close DBus connection: %s\n",
				err.Error())
		}
		d.bus = nil
	}

	if d.gw != nil {
		if err := d.gw.Close(); err != nil {
			d.log.Printf("[ERROR] Cannot close %s store: %s\n",
				d.cfg.Store.Backend,
				err.Error())
		}
		d.gw = nil
	}
} // func (d *Daemon) release()
