package game

import (
	"go.uber.org/zap"

	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/building"
	"glory-to-rome-backend/internal/game/card"
	"glory-to-rome-backend/internal/game/zone"
)

// handleCraftsman spends one craftsman action: lay a foundation from
// hand, add a hand (or, with Crane, pool) material to an in-progress
// building, or pass.
func (g *Game) handleCraftsman(a action.GameAction) error {
	p, err := a.Craftsman()
	if err != nil {
		return illegalPayload("%v", err)
	}
	if p.IsPass() {
		g.state.pop()
		return nil
	}
	if err := g.performBuild(a.Player, p, false); err != nil {
		return err
	}
	// A completion can end the game and clear the stack.
	if !g.state.Finished {
		g.state.pop()
		g.state.Players[a.Player].PerformedCraftsman = true
	}
	return nil
}

// handleUseFountain answers a pending craftsman action by drawing the
// top library card into hand; the craftsman action itself remains
// owed and can then use the drawn card. One draw per action.
func (g *Game) handleUseFountain(a action.GameAction) error {
	s := g.state
	frame := s.top()
	if frame.FountainUsed {
		return ruleViolation("the Fountain was already used for this action")
	}
	if !s.hasPower(a.Player, "Fountain") {
		return ruleViolation("drawing into a craftsman action requires a completed Fountain")
	}
	if s.Library.Len() == 0 {
		return emptySource("the library is empty")
	}
	frame.FountainUsed = true
	id, _ := s.Library.RemoveFront()
	s.Players[a.Player].Hand.Add(id)
	g.log.Debug("Fountain draw", zap.Int("player", a.Player))
	if s.Library.Len() == 0 {
		g.finishGame("library exhausted")
	}
	return nil
}

// performBuild validates and applies the shared craftsman/architect
// build payload. The architect flag switches the material source from
// hand to stockpile (and Crane to Archway for the pool variant).
func (g *Game) performBuild(idx int, p action.CraftsmanPayload, architect bool) error {
	if p.Site != nil {
		return g.layFoundation(idx, *p.Building, *p.Site)
	}
	return g.addMaterial(idx, *p.Building, *p.Material, architect)
}

// layFoundation starts a new building: the named hand card goes onto
// an in-town site of the payload material.
func (g *Game) layFoundation(idx int, foundation card.ID, site card.Material) error {
	s := g.state
	pl := s.Players[idx]

	if foundation.IsJack() {
		return ruleViolation("a Jack cannot be a foundation")
	}
	if !pl.Hand.Contains(foundation) {
		return illegalPayload("card %s is not in hand", foundation)
	}
	if foundation.Material() != site && foundation.Name != "Statue" {
		return ruleViolation("%s cannot be laid on a %s site", foundation, site)
	}
	if s.Foundations[site] <= 0 {
		return ruleViolation("no in-town %s sites remain", site)
	}
	if _, ok := findBuilding(pl.Buildings, foundation.Name); ok {
		return ruleViolation("%s is already under construction", foundation.Name)
	}

	_ = pl.Hand.Remove(foundation)
	pl.Buildings = append(pl.Buildings, building.New(foundation, site))
	s.Foundations[site]--

	g.log.Debug("Foundation laid",
		zap.Int("player", idx),
		zap.String("building", foundation.Name),
		zap.String("site", string(site)),
	)
	return nil
}

// addMaterial places one material under the player's own in-progress
// building, honoring the Road, Tower and Scriptorium relaxations.
func (g *Game) addMaterial(idx int, foundation, material card.ID, architect bool) error {
	s := g.state
	pl := s.Players[idx]

	b, ok := pl.GetBuilding(foundation)
	if !ok {
		return illegalPayload("no building on foundation %s", foundation)
	}
	if b.Complete {
		return ruleViolation("%s is already complete", b.Name())
	}
	source, err := g.materialSource(idx, material, architect)
	if err != nil {
		return err
	}

	scriptorium := material.Material() == card.Marble && s.hasPower(idx, "Scriptorium")
	if !g.materialAllowed(idx, b.Site, material) && !scriptorium {
		return ruleViolation("%s does not match the %s site of %s", material, b.Site, b.Name())
	}

	_ = source.Remove(material)
	_ = b.AddMaterial(material, true)
	if scriptorium {
		b.ForceFinish()
	}
	if architect && b.Name() == "Villa" {
		b.ForceFinish()
	}
	if b.Complete {
		g.onCompleted(idx, b)
	}
	return nil
}

// materialSource locates the payload material: the role's own zone, or
// the pool when the matching pool power stands.
func (g *Game) materialSource(idx int, material card.ID, architect bool) (*zone.Zone, error) {
	s := g.state
	pl := s.Players[idx]

	primary, poolPower := &pl.Hand, "Crane"
	if architect {
		primary, poolPower = &pl.Stockpile, "Archway"
	}
	if primary.Contains(material) {
		return primary, nil
	}
	if s.hasPower(idx, poolPower) && s.Pool.Contains(material) {
		return &s.Pool, nil
	}
	return nil, illegalPayload("card %s is not available as a material", material)
}

// materialAllowed applies the site-match rule with the Road and Tower
// relaxations.
func (g *Game) materialAllowed(idx int, site card.Material, material card.ID) bool {
	if material.Material() == site {
		return true
	}
	if site == card.Stone && g.state.hasPower(idx, "Road") {
		return true
	}
	if material.Material() == card.Rubble && g.state.hasPower(idx, "Tower") {
		return true
	}
	return false
}

// onCompleted claims the site as influence and checks the victory
// threshold.
func (g *Game) onCompleted(idx int, b *building.Building) {
	s := g.state
	pl := s.Players[idx]
	pl.Influence = append(pl.Influence, b.Site)

	g.log.Info("🏛️ Building completed",
		zap.Int("player", idx),
		zap.String("building", b.Name()),
		zap.Int("influence", pl.InfluencePoints()),
	)

	if goal := s.Settings.InfluenceGoal; goal > 0 && pl.InfluencePoints() >= goal {
		g.finishGame("influence goal reached")
	}
}

func findBuilding(buildings []*building.Building, name string) (*building.Building, bool) {
	for _, b := range buildings {
		if b.Name() == name {
			return b, true
		}
	}
	return nil, false
}
