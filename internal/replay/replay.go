// Package replay persists a game as settings plus the full action
// history. Because setup and every rule are deterministic in the seed,
// replaying the history reproduces the exact state.
package replay

import (
	"encoding/json"
	"fmt"
	"reflect"

	"glory-to-rome-backend/internal/game"
	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/card"
)

// Version is the current document layout version.
const Version = 1

// Document is the persisted form of a game: the inputs that rebuild it
// and a snapshot of the shared piles for integrity checking.
type Document struct {
	Version  int               `json:"version"`
	Seed     int64             `json:"seed"`
	Players  []string          `json:"players"`
	Settings game.Settings     `json:"settings"`
	History  []action.GameAction `json:"history"`

	Library     []card.ID             `json:"library"`
	Jacks       int                   `json:"jacks"`
	Pool        []card.ID             `json:"pool"`
	Foundations map[card.Material]int `json:"foundations"`
	Expected    []game.Frame          `json:"expected"`
}

// Record captures a game into a document.
func Record(g *game.Game, history []action.GameAction) Document {
	s := g.Snapshot()
	return Document{
		Version:     Version,
		Seed:        s.Settings.Seed,
		Players:     s.Settings.Players,
		Settings:    s.Settings,
		History:     history,
		Library:     s.Library.Cards(),
		Jacks:       s.JackPile.Len(),
		Pool:        s.Pool.Cards(),
		Foundations: s.Foundations,
		Expected:    s.Pending,
	}
}

// Rebuild replays the document's history on a fresh game. Every
// historical action must apply cleanly; a rejection means the document
// is corrupt or from an incompatible version.
func (d Document) Rebuild() (*game.Game, error) {
	if d.Version != Version {
		return nil, fmt.Errorf("unsupported document version %d", d.Version)
	}
	g, err := game.NewGame(d.Settings)
	if err != nil {
		return nil, fmt.Errorf("rebuilding game: %w", err)
	}
	for i, a := range d.History {
		if err := g.Handle(a); err != nil {
			return nil, fmt.Errorf("replaying action %d (%s): %w", i, a.Kind, err)
		}
	}
	return g, nil
}

// Verify rebuilds the document and checks the shared piles against the
// recorded snapshot.
func (d Document) Verify() error {
	g, err := d.Rebuild()
	if err != nil {
		return err
	}
	s := g.Snapshot()
	if !reflect.DeepEqual(s.Library.Cards(), d.Library) {
		return fmt.Errorf("library mismatch after replay")
	}
	if s.JackPile.Len() != d.Jacks {
		return fmt.Errorf("jack pile mismatch after replay: %d != %d", s.JackPile.Len(), d.Jacks)
	}
	if !reflect.DeepEqual(s.Pool.Cards(), d.Pool) {
		return fmt.Errorf("pool mismatch after replay")
	}
	if !reflect.DeepEqual(s.Foundations, d.Foundations) {
		return fmt.Errorf("foundations mismatch after replay")
	}
	if !reflect.DeepEqual(s.Pending, d.Expected) {
		return fmt.Errorf("expected-action stack mismatch after replay")
	}
	return nil
}

// Marshal renders the document as JSON.
func (d Document) Marshal() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Unmarshal parses a persisted document.
func Unmarshal(raw []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(raw, &d); err != nil {
		return Document{}, fmt.Errorf("malformed save document: %w", err)
	}
	return d, nil
}
