package game

import (
	"glory-to-rome-backend/internal/game/action"
)

// handleArchitect spends one architect action: the craftsman moves
// with the material drawn from the stockpile (or the pool with
// Archway), plus the Stairway variant that shares an opponent's
// completed building.
func (g *Game) handleArchitect(a action.GameAction) error {
	p, err := a.Architect()
	if err != nil {
		return illegalPayload("%v", err)
	}
	if p.TargetPlayer >= 0 {
		if err := g.stairwayAdd(a.Player, p); err != nil {
			return err
		}
		g.state.pop()
		return nil
	}
	if p.IsPass() {
		g.state.pop()
		return nil
	}
	if err := g.performBuild(a.Player, p.CraftsmanPayload, true); err != nil {
		return err
	}
	// A completion can end the game and clear the stack.
	if !g.state.Finished {
		g.state.pop()
	}
	return nil
}

// stairwayAdd puts a stockpile material onto an opponent's completed
// building and marks it shared, so its power benefits every player.
func (g *Game) stairwayAdd(idx int, p action.ArchitectPayload) error {
	s := g.state

	if !s.hasPower(idx, "Stairway") {
		return ruleViolation("adding to an opponent's building requires a completed Stairway")
	}
	if p.TargetPlayer >= len(s.Players) {
		return illegalPayload("no player %d", p.TargetPlayer)
	}
	if p.TargetPlayer == idx {
		return ruleViolation("Stairway targets an opponent's building")
	}
	if p.Building == nil || p.Material == nil {
		return illegalPayload("Stairway names a building and a material")
	}

	target := s.Players[p.TargetPlayer]
	b, ok := target.GetBuilding(*p.Building)
	if !ok {
		return illegalPayload("player %d has no building on foundation %s", p.TargetPlayer, *p.Building)
	}
	if !b.Complete {
		return ruleViolation("%s is not complete", b.Name())
	}
	source, err := g.materialSource(idx, *p.Material, true)
	if err != nil {
		return err
	}
	if !g.materialAllowed(idx, b.Site, *p.Material) {
		return ruleViolation("%s does not match the %s site of %s", *p.Material, b.Site, b.Name())
	}

	_ = source.Remove(*p.Material)
	b.Materials.Add(*p.Material)
	b.SharedByStairway = true
	return nil
}
