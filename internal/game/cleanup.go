package game

import (
	"go.uber.org/zap"

	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/card"
	"glory-to-rome-backend/internal/game/zone"
)

// scheduleCleanup queues the end-of-turn prompts: Academy's optional
// thinker for players who performed a craftsman action, and Sewer's
// choice of camp cards to keep. Runs once per turn, after the last
// role action.
func (g *Game) scheduleCleanup() {
	s := g.state
	s.CleanupStarted = true

	var frames []Frame
	for i := 0; i < len(s.Players); i++ {
		idx := (s.Leader + i) % len(s.Players)
		pl := s.Players[idx]
		if pl.PerformedCraftsman && s.hasPower(idx, "Academy") {
			frames = append(frames, Frame{Kind: action.ThinkerType, Player: idx, Optional: true})
		}
		if s.hasPower(idx, "Sewer") && campHasOrders(pl.Camp) {
			frames = append(frames, Frame{Kind: action.UseSewer, Player: idx})
		}
	}
	s.pushAll(frames)
}

func campHasOrders(camp zone.Zone) bool {
	for _, c := range camp.Cards() {
		if !c.IsJack() {
			return true
		}
	}
	return false
}

// handleUseSewer moves chosen camp orders cards to the stockpile
// instead of losing them to the pool at turn end.
func (g *Game) handleUseSewer(a action.GameAction) error {
	p, err := a.UseSewer()
	if err != nil {
		return illegalPayload("%v", err)
	}
	pl := g.state.Players[a.Player]
	seen := make(map[card.ID]bool, len(p.Cards))
	for _, c := range p.Cards {
		if seen[c] {
			return illegalPayload("card %s named twice", c)
		}
		seen[c] = true
		if c.IsJack() {
			return ruleViolation("Jacks return to the jack pile, not the stockpile")
		}
		if !pl.Camp.Contains(c) {
			return illegalPayload("card %s is not in the camp", c)
		}
	}

	g.state.pop()
	_ = zone.Move(&pl.Camp, &pl.Stockpile, p.Cards...)
	return nil
}

// finishTurn flushes the camps (orders cards to the pool, Jacks back
// to the jack pile), resets the turn counters and hands the lead to
// the next player.
func (g *Game) finishTurn() {
	s := g.state

	for _, pl := range s.Players {
		for _, c := range pl.Camp.Cards() {
			if c.IsJack() {
				s.JackPile.Add(c)
			} else {
				s.Pool.Add(c)
			}
		}
		pl.Camp.SetContent(nil)
		pl.CampActions = 0
		pl.PerformedCraftsman = false
	}

	s.RoleLed = ""
	s.RolesScheduled = false
	s.CleanupStarted = false
	s.Leader = (s.Leader + 1) % len(s.Players)
	s.Turn++
	s.push(Frame{Kind: action.ThinkerOrLead, Player: s.Leader})

	g.log.Debug("Turn advanced",
		zap.Int("turn", s.Turn),
		zap.Int("leader", s.Leader),
	)
}
