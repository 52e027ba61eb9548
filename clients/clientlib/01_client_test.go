// /home/krylon/go/src/github.com/blicero/herald/clients/clientlib/01_client_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 16. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-16 18:50:31 krylon>

package clientlib

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/blicero/herald/common"
	"github.com/blicero/herald/objects"
	"github.com/blicero/herald/objects/priority"
	"github.com/pquerna/ffjson/ffjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	var (
		err     error
		baseDir string
	)

	if baseDir, err = os.MkdirTemp("", "herald_client_test"); err != nil {
		panic(err)
	} else if err = common.SetBaseDir(baseDir); err != nil {
		panic(err)
	}

	var result = m.Run()
	os.RemoveAll(baseDir) // nolint: errcheck
	os.Exit(result)
} // func TestMain(m *testing.M)

// fakeServer answers like the daemon would, for a single known Event.
func fakeServer(t *testing.T) (*httptest.Server, *objects.Event) {
	var ev, err = objects.NewEvent(
		"Dentist",
		"",
		time.Date(2026, 10, 17, 14, 30, 0, 0, time.Local),
		priority.High,
		false,
		"Health")
	require.NoError(t, err)

	var reply = func(w http.ResponseWriter, status int, payload any) {
		var buf, err = ffjson.Marshal(payload)
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write(buf) // nolint: errcheck
	}

	var handler = func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == eventPath:
			var (
				req  objects.EventRequest
				body []byte
			)
			body, _ = io.ReadAll(r.Body)
			require.NoError(t, ffjson.Unmarshal(body, &req))
			if req.Title == "" {
				reply(w, http.StatusBadRequest, &objects.Response{ID: 1, Message: "title is empty"})
				return
			}
			reply(w, http.StatusCreated, ev)
		case r.Method == http.MethodGet && r.URL.Path == eventPath:
			var events = []objects.Event{*ev}
			if c := r.URL.Query().Get("category"); c != "" && !strings.EqualFold(c, ev.Category) {
				events = []objects.Event{}
			}
			reply(w, http.StatusOK, events)
		case r.Method == http.MethodGet && r.URL.Path == nextPath:
			reply(w, http.StatusOK, ev)
		case r.Method == http.MethodDelete && r.URL.Path == eventPath+"/"+ev.ID:
			w.WriteHeader(http.StatusNoContent)
		default:
			reply(w, http.StatusNotFound, &objects.Response{ID: 2, Message: "not found"})
		}
	}

	var srv = httptest.NewServer(http.HandlerFunc(handler))
	t.Cleanup(srv.Close)

	return srv, ev
} // func fakeServer(t *testing.T) (*httptest.Server, *objects.Event)

func newClient(t *testing.T, srv *httptest.Server) *Client {
	var c, err = NewClient(strings.TrimPrefix(srv.URL, "http://"))
	require.NoError(t, err)
	return c
} // func newClient(t *testing.T, srv *httptest.Server) *Client

func TestSubmitEvent(t *testing.T) {
	var (
		srv, ev = fakeServer(t)
		c       = newClient(t, srv)
	)

	var created, err = c.SubmitEvent(&objects.EventRequest{
		Title:     "Dentist",
		EventTime: "2026-10-17T14:30",
		Priority:  "HIGH",
	})
	require.NoError(t, err)
	assert.Equal(t, ev.ID, created.ID)
	assert.True(t, ev.Time.Equal(created.Time))

	_, err = c.SubmitEvent(&objects.EventRequest{EventTime: "2026-10-17T14:30"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is empty")
} // func TestSubmitEvent(t *testing.T)

func TestListEvents(t *testing.T) {
	var (
		srv, ev = fakeServer(t)
		c       = newClient(t, srv)
	)

	var events, err = c.ListEvents("")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, ev.ID, events[0].ID)

	events, err = c.ListEvents("health")
	require.NoError(t, err)
	assert.Len(t, events, 1)

	events, err = c.ListEvents("Work")
	require.NoError(t, err)
	assert.Empty(t, events)
} // func TestListEvents(t *testing.T)

func TestNextAndDelete(t *testing.T) {
	var (
		srv, ev = fakeServer(t)
		c       = newClient(t, srv)
	)

	var next, err = c.NextEvent()
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, ev.Title, next.Title)

	assert.NoError(t, c.DeleteEvent(ev.ID))
	assert.True(t, errors.Is(c.DeleteEvent("EVT-unknown"), ErrNotFound))
} // func TestNextAndDelete(t *testing.T)

func TestDeleteEventEscaping(t *testing.T) {
	var (
		paths    []string
		rawPaths []string
		srv      = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.URL.Path)
			rawPaths = append(rawPaths, r.URL.EscapedPath())
			w.WriteHeader(http.StatusNoContent)
		}))
	)
	defer srv.Close()

	var (
		c   = newClient(t, srv)
		ids = []string{"EVT-plain", "EVT-with space", "EVT-100%", "EVT-a/b"}
	)

	for _, id := range ids {
		require.NoError(t, c.DeleteEvent(id))
	}

	require.Len(t, paths, len(ids))
	for idx, id := range ids {
		assert.Equal(t, eventPath+"/"+id, paths[idx])
	}

	assert.Equal(t, eventPath+"/EVT-with%20space", rawPaths[1])
	assert.Equal(t, eventPath+"/EVT-100%25", rawPaths[2])
	assert.Equal(t, eventPath+"/EVT-a%2Fb", rawPaths[3])
} // func TestDeleteEventEscaping(t *testing.T)
