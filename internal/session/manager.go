package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"glory-to-rome-backend/internal/events"
	"glory-to-rome-backend/internal/game"
	"glory-to-rome-backend/internal/logger"
	"glory-to-rome-backend/internal/replay"
)

// Manager creates and tracks sessions by id.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	bus      *events.EventBusImpl
	log      *zap.Logger
}

// NewManager creates an empty manager publishing on the given bus.
func NewManager(bus *events.EventBusImpl) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		bus:      bus,
		log:      logger.Get().Named("sessions"),
	}
}

// Create starts a new game session.
func (m *Manager) Create(settings game.Settings) (*Session, error) {
	if settings.InfluenceGoal == 0 {
		settings.InfluenceGoal = game.DefaultInfluenceGoal
	}
	g, err := game.NewGame(settings)
	if err != nil {
		return nil, fmt.Errorf("creating game: %w", err)
	}

	id := uuid.NewString()
	s := newSession(id, g, m.bus)

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	m.log.Info("🎮 Session created",
		zap.String("game_id", id),
		zap.Strings("players", settings.Players),
		zap.Int64("seed", settings.Seed),
	)
	events.Publish(m.bus, events.GameCreatedEvent{
		GameID:  id,
		Players: settings.Players,
		Seed:    settings.Seed,
	})
	return s, nil
}

// Restore loads a persisted document into a new session.
func (m *Manager) Restore(doc replay.Document) (*Session, error) {
	g, err := doc.Rebuild()
	if err != nil {
		return nil, err
	}
	id := uuid.NewString()
	s := newSession(id, g, m.bus)
	s.history = append(s.history, doc.History...)

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()
	return s, nil
}

// Get finds a session by id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Remove closes and forgets a session.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		s.Close()
	}
}
