// Package session hosts running games. Each session owns one game and
// a single consumer goroutine, so Handle calls and snapshots are
// serialized no matter how many transports feed it.
package session

import (
	"fmt"

	"go.uber.org/zap"

	"glory-to-rome-backend/internal/events"
	"glory-to-rome-backend/internal/game"
	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/logger"
	"glory-to-rome-backend/internal/replay"
)

// Session is one running game behind a command loop.
type Session struct {
	id      string
	game    *game.Game
	history []action.GameAction
	bus     *events.EventBusImpl
	cmds    chan func()
	done    chan struct{}
	log     *zap.Logger
}

func newSession(id string, g *game.Game, bus *events.EventBusImpl) *Session {
	s := &Session{
		id:   id,
		game: g,
		bus:  bus,
		cmds: make(chan func()),
		done: make(chan struct{}),
		log:  logger.Get().Named("session").With(zap.String("game_id", id)),
	}
	go s.run()
	return s
}

func (s *Session) run() {
	for {
		select {
		case cmd := <-s.cmds:
			cmd()
		case <-s.done:
			return
		}
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Submit applies one action on the session's loop and waits for the
// result. Calls from any number of goroutines are safe.
func (s *Session) Submit(a action.GameAction) error {
	errCh := make(chan error, 1)
	select {
	case s.cmds <- func() { errCh <- s.apply(a) }:
		return <-errCh
	case <-s.done:
		return fmt.Errorf("session %s is closed", s.id)
	}
}

func (s *Session) apply(a action.GameAction) error {
	if err := s.game.Handle(a); err != nil {
		events.Publish(s.bus, events.ActionRejectedEvent{
			GameID: s.id,
			Kind:   string(a.Kind),
			Player: a.Player,
			Reason: err.Error(),
		})
		return err
	}
	s.history = append(s.history, a)
	events.Publish(s.bus, events.ActionAppliedEvent{
		GameID: s.id,
		Kind:   string(a.Kind),
		Player: a.Player,
	})
	if s.game.Finished() {
		snap := s.game.Snapshot()
		events.Publish(s.bus, events.GameEndedEvent{
			GameID:  s.id,
			Reason:  snap.EndReason,
			Winners: snap.Winners,
			Scores:  snap.Scores,
		})
	}
	return nil
}

// Snapshot returns a copy of the state, serialized with Submit calls.
func (s *Session) Snapshot() *game.State {
	ch := make(chan *game.State, 1)
	select {
	case s.cmds <- func() { ch <- s.game.Snapshot() }:
		return <-ch
	case <-s.done:
		return s.game.Snapshot()
	}
}

// Document captures the session for persistence.
func (s *Session) Document() replay.Document {
	ch := make(chan replay.Document, 1)
	select {
	case s.cmds <- func() { ch <- replay.Record(s.game, s.history) }:
		return <-ch
	case <-s.done:
		return replay.Record(s.game, s.history)
	}
}

// Close stops the loop. Pending Submit calls fail afterwards.
func (s *Session) Close() {
	close(s.done)
}
