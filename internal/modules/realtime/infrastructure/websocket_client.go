package infrastructure

import (
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"negociosHorarios/internal/modules/realtime/domain"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	readLimit  = 1 << 12
)

type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	send       chan []byte
	id         string
	listingID  string
	lang       string
	commands   *CommandProcessor
	subscribed map[string]struct{}

	mu     sync.Mutex
	closed bool
}

// NewClient creates a websocket client for one badge viewer with a bounded send buffer. lang is
// the display language of every badge topic the client subscribes to.
func NewClient(hub *Hub, conn *websocket.Conn, id, listingID, lang string, buf int, commandFn CommandHandler) *Client {
	if buf <= 0 {
		buf = 8
	}
	client := &Client{
		hub:        hub,
		conn:       conn,
		send:       make(chan []byte, buf),
		id:         strings.TrimSpace(id),
		listingID:  strings.TrimSpace(listingID),
		lang:       strings.ToLower(strings.TrimSpace(lang)),
		subscribed: make(map[string]struct{}),
	}
	client.commands = NewCommandProcessor(hub, commandFn)
	return client
}

func (c *Client) ID() string        { return c.id }
func (c *Client) ListingID() string { return c.listingID }
func (c *Client) Lang() string      { return c.lang }

func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// enqueue queues data without blocking. It reports false when the buffer is full or the client
// is already closed.
func (c *Client) enqueue(data []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// SendDomainMessage queues msg for this client only.
func (c *Client) SendDomainMessage(msg *domain.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("websocket marshal error", slog.Any("error", err))
		return
	}
	if !c.enqueue(data) {
		slog.Warn("websocket send dropped", slog.String("clientId", c.id), slog.String("listingId", c.listingID))
		go c.hub.detachClient(c)
	}
}

func (c *Client) WritePump() {
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				slog.Warn("websocket write error", slog.String("clientId", c.id), slog.Any("error", err))
				return
			}
		case <-ping.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				slog.Warn("websocket ping error", slog.String("clientId", c.id), slog.Any("error", err))
				return
			}
		}
	}
}

func (c *Client) ReadPump() {
	c.conn.SetReadLimit(readLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	defer c.hub.detachClient(c)
	for {
		var cmd Command
		if err := c.conn.ReadJSON(&cmd); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("websocket read error", slog.String("clientId", c.id), slog.String("listingId", c.listingID), slog.Any("error", err))
			}
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		c.commands.Process(c, cmd)
	}
}
