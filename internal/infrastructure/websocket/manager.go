package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"gebeya/internal/session"
	"gebeya/pkg/logger"
)

// Client is one live view (an open tab or panel) of a browser context.
type Client struct {
	ContextID string
	Conn      *websocket.Conn
	Send      chan []byte
}

// Manager fans session events out to the live views of each context, so a
// profile edited in one view shows up in the navigation bar of another
// without a reload. Events are not replayed: views opened later read the
// session store on mount.
type Manager struct {
	clients    map[*Client]struct{}
	byContext  map[string]map[*Client]struct{}
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[*Client]struct{}),
		byContext:  make(map[string]map[*Client]struct{}),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the manager's main loop in a goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client] = struct{}{}
				if m.byContext[client.ContextID] == nil {
					m.byContext[client.ContextID] = make(map[*Client]struct{})
				}
				m.byContext[client.ContextID][client] = struct{}{}
				m.mutex.Unlock()
				logger.Debug("view connected for context %s", client.ContextID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client]; ok {
					delete(m.clients, client)
					delete(m.byContext[client.ContextID], client)
					if len(m.byContext[client.ContextID]) == 0 {
						delete(m.byContext, client.ContextID)
					}
					close(client.Send)
				}
				m.mutex.Unlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

// Forward bridges the session bus onto connected views: every published
// event is pushed to the live views of its context.
func (m *Manager) Forward(ctx context.Context, bus *session.Bus) {
	go func() {
		events, cancel := bus.SubscribeAll()
		defer cancel()

		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return
				}
				m.SendToContext(ev.ContextID, ev)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// SendToContext pushes an event to every live view of one context.
func (m *Manager) SendToContext(contextID string, payload interface{}) {
	message, err := json.Marshal(payload)
	if err != nil {
		logger.Error("failed to encode event: %v", err)
		return
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for client := range m.byContext[contextID] {
		select {
		case client.Send <- message:
		default:
		}
	}
}

// ReadPump drains the connection until the view goes away.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("websocket read: %v", err)
			}
			break
		}
	}
}

// WritePump sends queued events to the view.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}
