package player

import (
	"glory-to-rome-backend/internal/game/building"
	"glory-to-rome-backend/internal/game/card"
	"glory-to-rome-backend/internal/game/zone"
)

// Player holds everything one seat owns: zones, influence, buildings
// and the per-turn counters the scheduler reads.
type Player struct {
	Name string

	Hand      zone.Zone
	Stockpile zone.Zone
	Vault     zone.Zone
	Clientele zone.Zone
	Camp      zone.Zone
	Revealed  zone.Zone

	// Influence is the pile of site materials earned by completing
	// buildings; points are the sum of their values.
	Influence []card.Material

	Buildings []*building.Building

	// CampActions is how many camp cards the player committed this
	// turn (the leader's palace plays, or a follower's single card).
	CampActions int

	// PerformedCraftsman marks that at least one craftsman action
	// resolved this turn; Academy reads it at turn end.
	PerformedCraftsman bool
}

// New creates a player with empty zones.
func New(name string) *Player {
	return &Player{Name: name}
}

// InfluencePoints sums the values of the influence pile.
func (p *Player) InfluencePoints() int {
	total := 0
	for _, m := range p.Influence {
		total += m.Value()
	}
	return total
}

// HandLimit is the refill target when thinking: 5, +2 with a completed
// Shrine, +4 with a completed Temple.
func (p *Player) HandLimit() int {
	limit := 5
	if p.HasCompleted("Shrine") {
		limit += 2
	}
	if p.HasCompleted("Temple") {
		limit += 4
	}
	return limit
}

// VaultLimit caps merchant takes: 2 + influence, +2 with a completed
// Atrium.
func (p *Player) VaultLimit() int {
	limit := 2 + p.InfluencePoints()
	if p.HasCompleted("Atrium") {
		limit += 2
	}
	return limit
}

// ClienteleLimit caps patron hires: 2 + influence, +2 with a completed
// Insula, doubled with a completed Aqueduct.
func (p *Player) ClienteleLimit() int {
	limit := 2 + p.InfluencePoints()
	if p.HasCompleted("Insula") {
		limit += 2
	}
	if p.HasCompleted("Aqueduct") {
		limit *= 2
	}
	return limit
}

// HasCompleted reports whether the player's own building of the given
// name stands complete. Stairway sharing is resolved above this, where
// all players are visible.
func (p *Player) HasCompleted(name string) bool {
	for _, b := range p.Buildings {
		if b.Name() == name && b.Complete {
			return true
		}
	}
	return false
}

// GetBuilding finds the building laid on the given foundation card.
func (p *Player) GetBuilding(foundation card.ID) (*building.Building, bool) {
	for _, b := range p.Buildings {
		if b.Foundation == foundation {
			return b, true
		}
	}
	return nil, false
}

// ClientCount counts clientele cards of the given role. Ludus Magna
// and Storeroom adjustments live in the scheduler, which sees powers.
func (p *Player) ClientCount(role card.Role) int {
	n := 0
	for _, c := range p.Clientele.Cards() {
		if c.Role() == role {
			n++
		}
	}
	return n
}

// DeepCopy returns a fully independent copy of the player.
func (p *Player) DeepCopy() *Player {
	cp := &Player{
		Name:               p.Name,
		Hand:               p.Hand.DeepCopy(),
		Stockpile:          p.Stockpile.DeepCopy(),
		Vault:              p.Vault.DeepCopy(),
		Clientele:          p.Clientele.DeepCopy(),
		Camp:               p.Camp.DeepCopy(),
		Revealed:           p.Revealed.DeepCopy(),
		Influence:          make([]card.Material, len(p.Influence)),
		Buildings:          make([]*building.Building, len(p.Buildings)),
		CampActions:        p.CampActions,
		PerformedCraftsman: p.PerformedCraftsman,
	}
	copy(cp.Influence, p.Influence)
	for i, b := range p.Buildings {
		cp.Buildings[i] = b.DeepCopy()
	}
	return cp
}
