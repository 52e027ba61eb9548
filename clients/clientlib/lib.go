// /home/krylon/go/src/github.com/blicero/herald/clients/clientlib/lib.go
// -*- mode: go; coding: utf-8; -*-
// Created on 14. 08. 2022 by Benjamin Walkenhorst
// (c) 2022 Benjamin Walkenhorst
// Time-stamp: <2026-10-16 18:22:41 krylon>

// Package clientlib provides the basic framework for
// building clients that talk to a running Herald daemon.
package clientlib

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/blicero/herald/common"
	"github.com/blicero/herald/logdomain"
	"github.com/blicero/herald/objects"
	"github.com/pquerna/ffjson/ffjson"
)

const (
	eventPath   = "/api/events"
	nextPath    = "/api/events/next"
	contentType = "application/json"
)

// ErrNotFound is returned when the server does not know the requested Event.
var ErrNotFound = errors.New("Event was not found")

// Client is the basic implementation of a Herald client,
// it implements the fundamental communication with the Server.
type Client struct {
	Server *url.URL
	Client http.Client
	log    *log.Logger
}

// NewClient creates a new Client. srv may be a bare host:port.
func NewClient(srv string) (*Client, error) {
	var (
		err error
		c   = &Client{
			Client: http.Client{
				Timeout: time.Second * 10,
			},
		}
	)

	if c.log, err = common.GetLogger(logdomain.Client); err != nil {
		fmt.Fprintf(
			os.Stderr,
			"Cannot create Logger: %s\n",
			err.Error())
		return nil, err
	} else if c.Server, err = url.Parse("http://" + srv); err != nil {
		c.log.Printf("[ERROR] Cannot parse URL %q: %s\n",
			srv,
			err.Error())
		return nil, err
	}

	return c, nil
} // func NewClient(srv string) (*Client, error)

// GetLogger returns the Client's Logger.
func (c *Client) GetLogger() *log.Logger {
	return c.log
} // func (c *Client) GetLogger() *log.Logger

func (c *Client) endpoint(path string, query url.Values) string {
	var u = *c.Server
	u.Path = path
	u.RawQuery = query.Encode()
	return u.String()
} // func (c *Client) endpoint(path string, query url.Values) string

// eventURL returns the URL of a single Event. The ID is escaped exactly
// once, including any slashes in it.
func (c *Client) eventURL(id string) string {
	var u = *c.Server
	u.Path = eventPath + "/" + id
	u.RawPath = eventPath + "/" + url.PathEscape(id)
	return u.String()
} // func (c *Client) eventURL(id string) string

// do performs the request and reads the response body. If the status is
// not the expected one, the server's Response message is turned into
// an error.
func (c *Client) do(method, addr string, body []byte, expect int) ([]byte, error) {
	var (
		err    error
		req    *http.Request
		hres   *http.Response
		rcvBuf bytes.Buffer
	)

	if req, err = http.NewRequest(method, addr, bytes.NewReader(body)); err != nil {
		c.log.Printf("[ERROR] Cannot create %s request for %s: %s\n",
			method,
			addr,
			err.Error())
		return nil, err
	} else if body != nil {
		req.Header.Set("Content-Type", contentType)
	}

	if hres, err = c.Client.Do(req); err != nil {
		c.log.Printf("[ERROR] %s %s failed: %s\n",
			method,
			addr,
			err.Error())
		return nil, err
	}

	defer hres.Body.Close() // nolint: errcheck

	if _, err = io.Copy(&rcvBuf, hres.Body); err != nil {
		c.log.Printf("[ERROR] Failed to read Response body from %s: %s\n",
			addr,
			err.Error())
		return nil, err
	}

	if hres.StatusCode == expect {
		return rcvBuf.Bytes(), nil
	} else if hres.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}

	var ores objects.Response

	if err = ffjson.Unmarshal(rcvBuf.Bytes(), &ores); err != nil || ores.Message == "" {
		err = fmt.Errorf("Unexpected status from %s: %s",
			addr,
			hres.Status)
	} else {
		err = fmt.Errorf("Request to %s failed (%s): %s",
			addr,
			hres.Status,
			ores.Message)
	}

	c.log.Printf("[ERROR] %s\n", err.Error())
	return nil, err
} // func (c *Client) do(method, addr string, body []byte, expect int) ([]byte, error)

// SubmitEvent asks the server to create a new Event and returns it.
func (c *Client) SubmitEvent(r *objects.EventRequest) (*objects.Event, error) {
	var (
		err     error
		sendBuf []byte
		rcvBuf  []byte
		ev      objects.Event
	)

	if sendBuf, err = ffjson.Marshal(r); err != nil {
		c.log.Printf("[ERROR] Cannot serialize EventRequest: %s\n",
			err.Error())
		return nil, err
	}

	defer ffjson.Pool(sendBuf)

	if rcvBuf, err = c.do(http.MethodPost, c.endpoint(eventPath, nil), sendBuf, http.StatusCreated); err != nil {
		return nil, err
	} else if err = ffjson.Unmarshal(rcvBuf, &ev); err != nil {
		c.log.Printf("[ERROR] Cannot de-serialize Event from %s: %s\n",
			c.Server,
			err.Error())
		return nil, err
	}

	c.log.Printf("[DEBUG] Server created Event %s\n", ev.ID)

	return &ev, nil
} // func (c *Client) SubmitEvent(r *objects.EventRequest) (*objects.Event, error)

// ListEvents fetches all Events from the server. If category is not
// empty, only Events in that category are returned.
func (c *Client) ListEvents(category string) ([]objects.Event, error) {
	var (
		err    error
		rcvBuf []byte
		events []objects.Event
		query  url.Values
	)

	if category != "" {
		query = url.Values{"category": []string{category}}
	}

	if rcvBuf, err = c.do(http.MethodGet, c.endpoint(eventPath, query), nil, http.StatusOK); err != nil {
		return nil, err
	} else if err = ffjson.Unmarshal(rcvBuf, &events); err != nil {
		c.log.Printf("[ERROR] Cannot de-serialize Event list from %s: %s\n",
			c.Server,
			err.Error())
		return nil, err
	}

	return events, nil
} // func (c *Client) ListEvents(category string) ([]objects.Event, error)

// NextEvent fetches the Event that comes up first. If the server has no
// Events, the Event is nil and so is the error.
func (c *Client) NextEvent() (*objects.Event, error) {
	var (
		err    error
		rcvBuf []byte
		ev     objects.Event
	)

	if rcvBuf, err = c.do(http.MethodGet, c.endpoint(nextPath, nil), nil, http.StatusOK); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	} else if err = ffjson.Unmarshal(rcvBuf, &ev); err != nil {
		c.log.Printf("[ERROR] Cannot de-serialize Event from %s: %s\n",
			c.Server,
			err.Error())
		return nil, err
	}

	return &ev, nil
} // func (c *Client) NextEvent() (*objects.Event, error)

// DeleteEvent asks the server to remove the Event with the given ID.
// It returns ErrNotFound if the server does not know the Event.
func (c *Client) DeleteEvent(id string) error {
	var _, err = c.do(http.MethodDelete, c.eventURL(id), nil, http.StatusNoContent)
	return err
} // func (c *Client) DeleteEvent(id string) error
