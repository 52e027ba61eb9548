// /home/krylon/go/src/github.com/blicero/herald/backend/dnssd.go
// -*- mode: go; coding: utf-8; -*-
// Created on 24. 08. 2022 by Benjamin Walkenhorst
// (c) 2022 Benjamin Walkenhorst
// Time-stamp: <2026-10-14 21:15:17 krylon>

package backend

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/blicero/herald/common"
	"github.com/grandcat/zeroconf"
)

const (
	srvService = "_http._tcp"
	srvDomain  = "local."
)

var addrPat = regexp.MustCompile(`:(\d+)$`)

func (d *Daemon) instanceName() string {
	return fmt.Sprintf("%s@%s",
		common.AppName,
		d.hostname)
} // func (d *Daemon) instanceName() string

func parsePort(addr string) (int, error) {
	var match = addrPat.FindStringSubmatch(addr)

	if match == nil {
		return 0, fmt.Errorf("Cannot find port in address %q", addr)
	}

	var port, err = strconv.ParseUint(match[1], 10, 16)
	if err != nil {
		return 0, err
	}

	return int(port), nil
} // func parsePort(addr string) (int, error)

func (d *Daemon) initDNSSd() error {
	var (
		err  error
		port int
		srv  *zeroconf.Server
	)

	if port, err = parsePort(d.Addr()); err != nil {
		d.log.Printf("[ERROR] Cannot parse HTTP port from server address %q: %s\n",
			d.Addr(),
			err.Error())
		return err
	}

	var txt = []string{
		"txtv=0",
		fmt.Sprintf("version=%s", common.Version),
		"path=/api/events",
	}

	if srv, err = zeroconf.Register(d.instanceName(), srvService, srvDomain, port, txt, nil); err != nil {
		d.log.Printf("[ERROR] Cannot register service with DNS-SD: %s\n",
			err.Error())
		return err
	}

	d.log.Printf("[INFO] Advertising %s on port %d\n",
		d.instanceName(),
		port)

	d.dnssd = srv
	return nil
} // func (d *Daemon) initDNSSd() error
