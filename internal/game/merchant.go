package game

import (
	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/zone"
)

// handleMerchant banks cards into the vault: one from the stockpile or
// (with Atrium) the top of the library sight-unseen, plus one from
// hand with Basilica. The vault limit gates the whole take.
func (g *Game) handleMerchant(a action.GameAction) error {
	p, err := a.Merchant()
	if err != nil {
		return illegalPayload("%v", err)
	}
	s := g.state
	pl := s.Players[a.Player]

	if p.FromStockpile != nil && p.FromDeck {
		return ruleViolation("cannot take from both stockpile and deck in one action")
	}
	if p.FromStockpile != nil && !pl.Stockpile.Contains(*p.FromStockpile) {
		return illegalPayload("card %s is not in the stockpile", *p.FromStockpile)
	}
	if p.FromDeck {
		if !s.hasPower(a.Player, "Atrium") {
			return ruleViolation("taking from the deck requires a completed Atrium")
		}
		if s.Library.Len() == 0 {
			return emptySource("the library is empty")
		}
	}
	if p.FromHand != nil {
		if !s.hasPower(a.Player, "Basilica") {
			return ruleViolation("banking from hand requires a completed Basilica")
		}
		if !pl.Hand.Contains(*p.FromHand) {
			return illegalPayload("card %s is not in hand", *p.FromHand)
		}
	}

	incoming := 0
	if p.FromStockpile != nil {
		incoming++
	}
	if p.FromDeck {
		incoming++
	}
	if p.FromHand != nil {
		incoming++
	}
	if incoming > 0 && pl.Vault.Len()+incoming > pl.VaultLimit() {
		return ruleViolation("vault limit %d would be exceeded", pl.VaultLimit())
	}

	s.pop()
	if p.FromStockpile != nil {
		_ = zone.Move(&pl.Stockpile, &pl.Vault, *p.FromStockpile)
	}
	if p.FromDeck {
		id, _ := s.Library.RemoveFront()
		pl.Vault.Add(id)
	}
	if p.FromHand != nil {
		_ = zone.Move(&pl.Hand, &pl.Vault, *p.FromHand)
	}
	if p.FromDeck && s.Library.Len() == 0 {
		g.finishGame("library exhausted")
	}
	return nil
}
