// Package sync shares board ops between peers. One board hosts: it accepts
// websocket connections, applies incoming ops to its store and relays them
// to every other peer. Joining boards dial the host and mirror the op
// stream both ways.
package sync

import (
	"fmt"
	"net/http"
	gosync "sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"inkboard/internal/store"
)

const wsPath = "/ws"

// Host relays ops between all connected boards.
type Host struct {
	store  *store.Store
	logger *log.Logger
	// OnChange is called after a remote op changed the store, so the
	// surface can redraw. Called from connection goroutines.
	OnChange func()
	// ImageScale reports the camera's current image scale so remote
	// strokes are flattened at the same resolution as local ones. Nil
	// means scale 1.0.
	ImageScale func() float64

	upgrader websocket.Upgrader

	mu    gosync.RWMutex
	conns map[*websocket.Conn]bool
}

// NewHost wires a host to its store: local ops are broadcast to every
// peer. If logger is nil the default logger is used.
func NewHost(s *store.Store, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.Default()
	}
	h := &Host{
		store:  s,
		logger: logger,
		conns:  make(map[*websocket.Conn]bool),
	}
	s.OnLocalOp = func(op store.Op) { h.broadcast(op, nil) }
	return h
}

// ListenAndServe serves the websocket endpoint. Blocks; run it in a
// goroutine.
func (h *Host) ListenAndServe(port int) error {
	mux := http.NewServeMux()
	mux.HandleFunc(wsPath, h.handleWS)
	h.logger.Info("sync host listening", "port", port)
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}

func (h *Host) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	h.add(conn)
	defer h.remove(conn)

	for {
		var op store.Op
		if err := conn.ReadJSON(&op); err != nil {
			h.logger.Info("peer disconnected", "remote", conn.RemoteAddr(), "err", err)
			return
		}
		h.applyRemote(op)
		// Relay to everyone but the sender.
		h.broadcast(op, conn)
	}
}

func (h *Host) applyRemote(op store.Op) {
	if h.store.ApplyRemoteOp(op, imageScale(h.ImageScale)) && h.OnChange != nil {
		h.OnChange()
	}
}

func imageScale(f func() float64) float64 {
	if f == nil {
		return 1.0
	}
	return f()
}

func (h *Host) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = true
	h.logger.Info("peer connected", "remote", conn.RemoteAddr())
}

func (h *Host) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
	conn.Close()
}

// broadcast sends op to every connection except exclude. The full lock
// serializes writers; gorilla connections allow only one writer at a time.
func (h *Host) broadcast(op store.Op, exclude *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if conn == exclude {
			continue
		}
		if err := conn.WriteJSON(op); err != nil {
			h.logger.Error("sending op failed", "remote", conn.RemoteAddr(), "err", err)
		}
	}
}

// Client mirrors ops with a host.
type Client struct {
	store  *store.Store
	logger *log.Logger
	// OnChange is called after a remote op changed the store.
	OnChange func()
	// ImageScale reports the camera's current image scale. Nil means 1.0.
	ImageScale func() float64

	mu   gosync.Mutex
	conn *websocket.Conn
}

// NewClient wires a client to its store: local ops are sent to the host
// once connected.
func NewClient(s *store.Store, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Default()
	}
	c := &Client{store: s, logger: logger}
	s.OnLocalOp = c.send
	return c
}

// Connect dials the host and starts mirroring. Blocks reading the op
// stream until the connection drops; run it in a goroutine.
func (c *Client) Connect(addr string) error {
	url := fmt.Sprintf("ws://%s%s", addr, wsPath)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("dialing host %s: %w", addr, err)
	}
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	c.logger.Info("connected to host", "addr", addr)

	for {
		var op store.Op
		if err := conn.ReadJSON(&op); err != nil {
			c.logger.Info("disconnected from host", "err", err)
			return nil
		}
		c.applyRemote(op)
	}
}

func (c *Client) applyRemote(op store.Op) {
	if c.store.ApplyRemoteOp(op, imageScale(c.ImageScale)) && c.OnChange != nil {
		c.OnChange()
	}
}

func (c *Client) send(op store.Op) {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		// Not connected yet; the op stays local.
		return
	}
	if err := conn.WriteJSON(op); err != nil {
		c.logger.Error("sending op to host failed", "err", err)
	}
}
