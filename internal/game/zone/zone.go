package zone

import (
	"fmt"

	"glory-to-rome-backend/internal/game/card"
)

// Zone is an ordered collection of card identities: a hand, a
// stockpile, the pool, the library. Order is insertion order and is
// part of game state (the library draws from the front; some powers
// pick the first matching card).
type Zone struct {
	cards []card.ID
}

// New creates a zone holding the given cards, in order.
func New(cards ...card.ID) Zone {
	z := Zone{cards: make([]card.ID, len(cards))}
	copy(z.cards, cards)
	return z
}

// Add appends one card.
func (z *Zone) Add(id card.ID) {
	z.cards = append(z.cards, id)
}

// AddAll appends cards preserving their order.
func (z *Zone) AddAll(ids []card.ID) {
	z.cards = append(z.cards, ids...)
}

// Remove takes out the first occurrence of id. It fails without
// modifying the zone when the card is not present.
func (z *Zone) Remove(id card.ID) error {
	for i, c := range z.cards {
		if c == id {
			z.cards = append(z.cards[:i], z.cards[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("card %s not in zone", id)
}

// RemoveFront pops the first card. Drawing from the library uses this.
func (z *Zone) RemoveFront() (card.ID, error) {
	if len(z.cards) == 0 {
		return card.ID{}, fmt.Errorf("zone is empty")
	}
	id := z.cards[0]
	z.cards = z.cards[1:]
	return id, nil
}

// Contains reports whether id is present.
func (z *Zone) Contains(id card.ID) bool {
	for _, c := range z.cards {
		if c == id {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every id is present, respecting
// multiplicity (two equal IDs cannot exist, but the check still walks
// a copy so callers can pass overlapping slices safely).
func (z *Zone) ContainsAll(ids []card.ID) bool {
	for _, id := range ids {
		if !z.Contains(id) {
			return false
		}
	}
	return true
}

// Len returns the number of cards.
func (z *Zone) Len() int {
	return len(z.cards)
}

// CountByName counts cards with the given catalog name.
func (z *Zone) CountByName(name string) int {
	n := 0
	for _, c := range z.cards {
		if c.Name == name {
			n++
		}
	}
	return n
}

// FirstByName returns the first card with the given name, in zone
// order.
func (z *Zone) FirstByName(name string) (card.ID, bool) {
	for _, c := range z.cards {
		if c.Name == name {
			return c, true
		}
	}
	return card.ID{}, false
}

// Cards returns a copy of the zone's contents in order.
func (z *Zone) Cards() []card.ID {
	out := make([]card.ID, len(z.cards))
	copy(out, z.cards)
	return out
}

// SetContent replaces the zone's contents. Used by replay loading.
func (z *Zone) SetContent(ids []card.ID) {
	z.cards = make([]card.ID, len(ids))
	copy(z.cards, ids)
}

// DeepCopy returns an independent copy of the zone.
func (z *Zone) DeepCopy() Zone {
	return New(z.cards...)
}

// Move transfers the given cards from one zone to another as a unit:
// either every card moves or neither zone changes.
func Move(from, to *Zone, ids ...card.ID) error {
	seen := make(map[card.ID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return fmt.Errorf("card %s named twice", id)
		}
		seen[id] = true
		if !from.Contains(id) {
			return fmt.Errorf("card %s not in source zone", id)
		}
	}
	for _, id := range ids {
		if err := from.Remove(id); err != nil {
			return err
		}
		to.Add(id)
	}
	return nil
}
