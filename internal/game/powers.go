package game

import (
	"glory-to-rome-backend/internal/game/card"
)

// completedOrShared reports whether the named building stands complete
// for the player: their own, or anyone's copy shared via Stairway.
func (s *State) completedOrShared(idx int, name string) bool {
	if s.Players[idx].HasCompleted(name) {
		return true
	}
	for _, other := range s.Players {
		for _, b := range other.Buildings {
			if b.Name() == name && b.Complete && b.SharedByStairway {
				return true
			}
		}
	}
	return false
}

// hasPower reports whether the named building's power is active for
// the player. A completed Gate makes the player's incomplete Marble
// buildings grant their power too.
func (s *State) hasPower(idx int, name string) bool {
	if s.completedOrShared(idx, name) {
		return true
	}
	if info, ok := card.Lookup(name); ok && info.Material == card.Marble {
		if s.completedOrShared(idx, "Gate") {
			for _, b := range s.Players[idx].Buildings {
				if b.Name() == name {
					return true
				}
			}
		}
	}
	return false
}

// isImmune reports whether a legionary target ignores the mandatory
// give: Wall always, Palisade unless the demander's Bridge pierces it.
func (s *State) isImmune(target, demander int) bool {
	if s.hasPower(target, "Wall") {
		return true
	}
	if s.hasPower(target, "Palisade") && !s.hasPower(demander, "Bridge") {
		return true
	}
	return false
}

// clientActions counts how many bonus actions the player's clientele
// grant for the led role. Ludus Magna lets Merchant clients chip in on
// any role; Storeroom puts every client to work as a Laborer.
func (s *State) clientActions(idx int, role card.Role) int {
	p := s.Players[idx]
	if role == card.Laborer && s.hasPower(idx, "Storeroom") {
		return p.Clientele.Len()
	}
	n := p.ClientCount(role)
	if role != card.Merchant && s.hasPower(idx, "Ludus Magna") {
		n += p.ClientCount(card.Merchant)
	}
	return n
}
