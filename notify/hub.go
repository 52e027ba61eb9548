// /home/krylon/go/src/github.com/blicero/herald/notify/hub.go
// -*- mode: go; coding: utf-8; -*-
// Created on 08. 10. 2026 by Benjamin Walkenhorst
// (c) 2026 Benjamin Walkenhorst
// Time-stamp: <2026-10-14 18:03:37 krylon>

package notify

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/blicero/herald/common"
	"github.com/blicero/herald/logdomain"
	"github.com/blicero/herald/objects"
	"github.com/gorilla/websocket"
	"github.com/pquerna/ffjson/ffjson"
)

const (
	writeWait  = 5 * time.Second
	hubBufSize = 4096
)

// Hub pushes due Events to all connected websocket clients.
type Hub struct {
	log      *log.Logger
	upgrader websocket.Upgrader
	lock     sync.Mutex
	clients  map[*websocket.Conn]bool
}

// NewHub creates a Hub without any clients.
func NewHub() (*Hub, error) {
	var (
		err error
		h   = &Hub{
			upgrader: websocket.Upgrader{
				ReadBufferSize:  hubBufSize,
				WriteBufferSize: hubBufSize,
				CheckOrigin:     func(r *http.Request) bool { return true },
			},
			clients: make(map[*websocket.Conn]bool),
		}
	)

	if h.log, err = common.GetLogger(logdomain.Notify); err != nil {
		return nil, err
	}

	return h, nil
} // func NewHub() (*Hub, error)

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.lock.Lock()
	defer h.lock.Unlock()
	return len(h.clients)
} // func (h *Hub) ClientCount() int

// ServeHTTP upgrades the request to a websocket connection and registers
// the client. Messages from the client are read and discarded, a failed
// read unregisters the client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var (
		err  error
		conn *websocket.Conn
	)

	if conn, err = h.upgrader.Upgrade(w, r, nil); err != nil {
		h.log.Printf("[ERROR] Cannot upgrade connection from %s: %s\n",
			r.RemoteAddr,
			err.Error())
		return
	}

	h.lock.Lock()
	h.clients[conn] = true
	h.lock.Unlock()

	h.log.Printf("[DEBUG] Websocket client %s connected\n", r.RemoteAddr)

	go h.readLoop(conn)
} // func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request)

func (h *Hub) readLoop(conn *websocket.Conn) {
	defer h.drop(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Printf("[INFO] Websocket client %s went away: %s\n",
					conn.RemoteAddr(),
					err.Error())
			}
			return
		}
	}
} // func (h *Hub) readLoop(conn *websocket.Conn)

func (h *Hub) drop(conn *websocket.Conn) {
	h.lock.Lock()
	delete(h.clients, conn)
	h.lock.Unlock()
	conn.Close() // nolint: errcheck
} // func (h *Hub) drop(conn *websocket.Conn)

// Notify sends the Event as JSON to every connected client.
// Clients that cannot be written to are dropped.
func (h *Hub) Notify(ev *objects.Event) error {
	var (
		err  error
		buf  []byte
		dead []*websocket.Conn
	)

	if buf, err = ffjson.Marshal(ev); err != nil {
		h.log.Printf("[ERROR] Cannot serialize Event %s: %s\n",
			ev.ID,
			err.Error())
		return err
	}

	defer ffjson.Pool(buf)

	// gorilla/websocket allows only one concurrent writer per connection,
	// the lock is held for the whole broadcast.
	h.lock.Lock()
	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeWait)) // nolint: errcheck
		if err = conn.WriteMessage(websocket.TextMessage, buf); err != nil {
			h.log.Printf("[ERROR] Cannot send Event to %s: %s\n",
				conn.RemoteAddr(),
				err.Error())
			dead = append(dead, conn)
		}
	}
	h.lock.Unlock()

	for _, conn := range dead {
		h.drop(conn)
	}

	return nil
} // func (h *Hub) Notify(ev *objects.Event) error

// Close disconnects all clients.
func (h *Hub) Close() error {
	h.lock.Lock()
	defer h.lock.Unlock()

	for conn := range h.clients {
		conn.WriteControl( // nolint: errcheck
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(writeWait))
		conn.Close() // nolint: errcheck
		delete(h.clients, conn)
	}

	return nil
} // func (h *Hub) Close() error
