// Package ws pushes live game updates over websockets. One room per
// game; every accepted action fans a fresh state projection out to the
// room, and clients may submit actions on the same connection.
package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"glory-to-rome-backend/internal/delivery/dto"
	"glory-to-rome-backend/internal/events"
	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/logger"
	"glory-to-rome-backend/internal/session"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	done   chan struct{}
	gameID string
}

// Hub tracks connected clients per game and relays bus events to them.
type Hub struct {
	mu      sync.RWMutex
	rooms   map[string]map[*client]bool
	manager *session.Manager
	log     *zap.Logger
}

// NewHub builds a hub and subscribes it to the event bus.
func NewHub(manager *session.Manager, bus *events.EventBusImpl) *Hub {
	h := &Hub{
		rooms:   make(map[string]map[*client]bool),
		manager: manager,
		log:     logger.Get().Named("ws"),
	}
	events.Subscribe(bus, func(e events.ActionAppliedEvent) {
		h.pushState(e.GameID)
	})
	events.Subscribe(bus, func(e events.GameEndedEvent) {
		h.broadcast(e.GameID, dto.Envelope{
			Type:   dto.TypeGameEnded,
			GameID: e.GameID,
			Payload: map[string]any{
				"reason":  e.Reason,
				"winners": e.Winners,
				"scores":  e.Scores,
			},
		})
	})
	return h
}

// ServeWS upgrades the request and joins the client to its game room.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, gameID string) {
	if _, ok := h.manager.Get(gameID); !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("❌ Websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, 256),
		done:   make(chan struct{}),
		gameID: gameID,
	}
	h.register(c)
	h.log.Info("🔌 Client joined", zap.String("game_id", gameID))

	go c.writePump()
	go c.readPump()

	// Late joiners get the current state right away.
	h.pushState(gameID)
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[c.gameID] == nil {
		h.rooms[c.gameID] = make(map[*client]bool)
	}
	h.rooms[c.gameID][c] = true
}

// unregister drops the client. The send channel stays open: broadcasts
// racing a disconnect may still write into its buffer, so the write
// pump is stopped through done instead of a close.
func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[c.gameID]
	if !ok || !room[c] {
		return
	}
	delete(room, c)
	close(c.done)
	if len(room) == 0 {
		delete(h.rooms, c.gameID)
	}
}

func (h *Hub) pushState(gameID string) {
	sess, ok := h.manager.Get(gameID)
	if !ok {
		return
	}
	h.broadcast(gameID, dto.Envelope{
		Type:    dto.TypeGameUpdated,
		GameID:  gameID,
		Payload: dto.FromState(sess.Snapshot()),
	})
}

func (h *Hub) broadcast(gameID string, env dto.Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		h.log.Error("Marshal failed", zap.Error(err))
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.rooms[gameID]))
	for c := range h.rooms[gameID] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		select {
		case c.send <- data:
		default:
			h.unregister(c)
		}
	}
}

// handleInbound runs one client message: submit-action envelopes feed
// the session, errors go back to the sender only.
func (h *Hub) handleInbound(c *client, raw []byte) {
	var env dto.Envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Type != dto.TypeSubmitAction {
		return
	}
	payload, err := json.Marshal(env.Payload)
	if err != nil {
		return
	}
	a, err := action.Decode(payload)
	if err != nil {
		c.sendError(err)
		return
	}
	sess, ok := h.manager.Get(c.gameID)
	if !ok {
		return
	}
	if err := sess.Submit(a); err != nil {
		c.sendError(err)
	}
}

func (c *client) sendError(err error) {
	data, merr := json.Marshal(dto.Envelope{
		Type:    dto.TypeActionError,
		GameID:  c.gameID,
		Payload: map[string]string{"error": err.Error()},
	})
	if merr != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

func (c *client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.Warn("Websocket read failed", zap.Error(err))
			}
			return
		}
		c.hub.handleInbound(c, raw)
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
