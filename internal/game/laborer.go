package game

import (
	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/zone"
)

// handleLaborer moves up to one pool card — and, with a completed
// Dock, one hand card — into the stockpile. Naming nothing wastes the
// action.
func (g *Game) handleLaborer(a action.GameAction) error {
	p, err := a.Laborer()
	if err != nil {
		return illegalPayload("%v", err)
	}
	s := g.state
	pl := s.Players[a.Player]

	if p.FromPool != nil && !s.Pool.Contains(*p.FromPool) {
		return illegalPayload("card %s is not in the pool", *p.FromPool)
	}
	if p.FromHand != nil {
		if !s.hasPower(a.Player, "Dock") {
			return ruleViolation("taking from hand requires a completed Dock")
		}
		if !pl.Hand.Contains(*p.FromHand) {
			return illegalPayload("card %s is not in hand", *p.FromHand)
		}
	}

	s.pop()
	if p.FromPool != nil {
		_ = zone.Move(&s.Pool, &pl.Stockpile, *p.FromPool)
	}
	if p.FromHand != nil {
		_ = zone.Move(&pl.Hand, &pl.Stockpile, *p.FromHand)
	}
	if s.Settings.PoolDrainEnds && s.Pool.Len() == 0 {
		g.finishGame("pool drained")
	}
	return nil
}
