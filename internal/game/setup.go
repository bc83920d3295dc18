package game

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/card"
	"glory-to-rome-backend/internal/game/player"
	"glory-to-rome-backend/internal/logger"
)

const (
	minPlayers   = 2
	maxPlayers   = 5
	poolSeedSize = 5
)

// NewGame deals a fresh game from the settings. The same settings
// always produce the same starting state: the seed drives the only
// shuffle.
func NewGame(settings Settings) (*Game, error) {
	if len(settings.Players) < minPlayers || len(settings.Players) > maxPlayers {
		return nil, fmt.Errorf("player count %d out of range [%d,%d]", len(settings.Players), minPlayers, maxPlayers)
	}
	for i, name := range settings.Players {
		if name == "" {
			return nil, fmt.Errorf("player %d has an empty name", i)
		}
	}
	if settings.InfluenceGoal < 0 {
		return nil, fmt.Errorf("negative influence goal %d", settings.InfluenceGoal)
	}

	deck := card.Deck()
	rng := rand.New(rand.NewSource(settings.Seed))
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	s := &State{
		Settings:    settings,
		Turn:        1,
		Leader:      0,
		Foundations: make(map[card.Material]int, 6),
		Players:     make([]*player.Player, len(settings.Players)),
	}
	s.Library.SetContent(deck)
	s.JackPile.SetContent(card.Jacks())
	for i := 0; i < poolSeedSize; i++ {
		id, err := s.Library.RemoveFront()
		if err != nil {
			return nil, fmt.Errorf("seeding pool: %w", err)
		}
		s.Pool.Add(id)
	}
	// One in-town site per material per player.
	for _, m := range card.Materials() {
		s.Foundations[m] = len(settings.Players)
	}
	for i, name := range settings.Players {
		s.Players[i] = player.New(name)
	}
	s.push(Frame{Kind: action.ThinkerOrLead, Player: s.Leader})

	g := &Game{
		state: s,
		log:   logger.Get().Named("game"),
	}
	g.log.Info("🎮 Game created",
		zap.Int64("seed", settings.Seed),
		zap.Strings("players", settings.Players),
	)
	return g, nil
}
