// Package dto defines the wire projections of game state. The
// projection is full-information: concealment is a client concern.
package dto

import (
	"glory-to-rome-backend/internal/game"
	"glory-to-rome-backend/internal/game/card"
)

// Envelope wraps every websocket message.
type Envelope struct {
	Type    string `json:"type"`
	GameID  string `json:"game_id,omitempty"`
	Payload any    `json:"payload,omitempty"`
}

const (
	TypeGameUpdated  = "game-updated"
	TypeGameEnded    = "game-ended"
	TypeActionError  = "action-error"
	TypeSubmitAction = "submit-action"
)

// BuildingDTO is one building with its progress.
type BuildingDTO struct {
	Foundation string   `json:"foundation"`
	Site       string   `json:"site"`
	Materials  []string `json:"materials"`
	Complete   bool     `json:"complete"`
	Shared     bool     `json:"shared,omitempty"`
}

// PlayerDTO is one seat's full zones.
type PlayerDTO struct {
	Name      string        `json:"name"`
	Hand      []string      `json:"hand"`
	Stockpile []string      `json:"stockpile"`
	Vault     []string      `json:"vault"`
	Clientele []string      `json:"clientele"`
	Camp      []string      `json:"camp"`
	Revealed  []string      `json:"revealed"`
	Influence int           `json:"influence"`
	Buildings []BuildingDTO `json:"buildings"`
}

// FrameDTO is one pending expected action.
type FrameDTO struct {
	Kind   string `json:"kind"`
	Player int    `json:"player"`
}

// StateDTO is the full game projection sent to clients.
type StateDTO struct {
	Turn        int            `json:"turn"`
	Leader      int            `json:"leader"`
	RoleLed     string         `json:"role_led,omitempty"`
	LibrarySize int            `json:"library_size"`
	JackPile    int            `json:"jack_pile"`
	Pool        []string       `json:"pool"`
	Foundations map[string]int `json:"foundations"`
	Players     []PlayerDTO    `json:"players"`
	Expected    []FrameDTO     `json:"expected"`
	Finished    bool           `json:"finished"`
	EndReason   string         `json:"end_reason,omitempty"`
	Scores      []int          `json:"scores,omitempty"`
	Winners     []int          `json:"winners,omitempty"`
}

// FromState projects a snapshot into its wire form.
func FromState(s *game.State) StateDTO {
	out := StateDTO{
		Turn:        s.Turn,
		Leader:      s.Leader,
		RoleLed:     string(s.RoleLed),
		LibrarySize: s.Library.Len(),
		JackPile:    s.JackPile.Len(),
		Pool:        cardStrings(s.Pool.Cards()),
		Foundations: make(map[string]int, len(s.Foundations)),
		Players:     make([]PlayerDTO, len(s.Players)),
		Expected:    make([]FrameDTO, len(s.Pending)),
		Finished:    s.Finished,
		EndReason:   s.EndReason,
		Scores:      s.Scores,
		Winners:     s.Winners,
	}
	for m, n := range s.Foundations {
		out.Foundations[string(m)] = n
	}
	for i, p := range s.Players {
		buildings := make([]BuildingDTO, len(p.Buildings))
		for j, b := range p.Buildings {
			buildings[j] = BuildingDTO{
				Foundation: b.Foundation.String(),
				Site:       string(b.Site),
				Materials:  cardStrings(b.Materials.Cards()),
				Complete:   b.Complete,
				Shared:     b.SharedByStairway,
			}
		}
		out.Players[i] = PlayerDTO{
			Name:      p.Name,
			Hand:      cardStrings(p.Hand.Cards()),
			Stockpile: cardStrings(p.Stockpile.Cards()),
			Vault:     cardStrings(p.Vault.Cards()),
			Clientele: cardStrings(p.Clientele.Cards()),
			Camp:      cardStrings(p.Camp.Cards()),
			Revealed:  cardStrings(p.Revealed.Cards()),
			Influence: p.InfluencePoints(),
			Buildings: buildings,
		}
	}
	for i, f := range s.Pending {
		out.Expected[i] = FrameDTO{Kind: string(f.Kind), Player: f.Player}
	}
	return out
}

func cardStrings(ids []card.ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
