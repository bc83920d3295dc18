package game

import (
	"go.uber.org/zap"

	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/card"
	"glory-to-rome-backend/internal/game/zone"
)

func (s *State) checkClienteleRoom(idx int) error {
	pl := s.Players[idx]
	if pl.Clientele.Len()+1 > pl.ClienteleLimit() {
		return ruleViolation("clientele limit %d would be exceeded", pl.ClienteleLimit())
	}
	return nil
}

// handlePatron hires one client: from the pool, from hand with a
// completed Bar, or sight-unseen from the deck with a completed
// Aqueduct. An empty pool payload declines, wasting the action. With
// Bath the new client performs its action at once.
func (g *Game) handlePatron(a action.GameAction) error {
	s := g.state
	pl := s.Players[a.Player]

	var hired card.ID
	switch a.Kind {
	case action.PatronFromPool:
		p, err := a.Patron()
		if err != nil {
			return illegalPayload("%v", err)
		}
		if p.Card == nil {
			s.pop()
			return nil
		}
		if err := s.checkClienteleRoom(a.Player); err != nil {
			return err
		}
		if !s.Pool.Contains(*p.Card) {
			return illegalPayload("card %s is not in the pool", *p.Card)
		}
		if p.Card.IsJack() {
			return ruleViolation("a Jack cannot be hired as a client")
		}
		s.pop()
		_ = zone.Move(&s.Pool, &pl.Clientele, *p.Card)
		hired = *p.Card

	case action.PatronFromHand:
		p, err := a.Patron()
		if err != nil {
			return illegalPayload("%v", err)
		}
		if p.Card == nil {
			return illegalPayload("hiring from hand names a card")
		}
		if err := s.checkClienteleRoom(a.Player); err != nil {
			return err
		}
		if !s.hasPower(a.Player, "Bar") {
			return ruleViolation("hiring from hand requires a completed Bar")
		}
		if !pl.Hand.Contains(*p.Card) {
			return illegalPayload("card %s is not in hand", *p.Card)
		}
		if p.Card.IsJack() {
			return ruleViolation("a Jack cannot be hired as a client")
		}
		s.pop()
		_ = zone.Move(&pl.Hand, &pl.Clientele, *p.Card)
		hired = *p.Card

	case action.PatronFromDeck:
		if err := s.checkClienteleRoom(a.Player); err != nil {
			return err
		}
		if !s.hasPower(a.Player, "Aqueduct") {
			return ruleViolation("hiring from the deck requires a completed Aqueduct")
		}
		if s.Library.Len() == 0 {
			return emptySource("the library is empty")
		}
		s.pop()
		id, _ := s.Library.RemoveFront()
		pl.Clientele.Add(id)
		hired = id
		if s.Library.Len() == 0 {
			g.finishGame("library exhausted")
			return nil
		}

	default:
		return unexpected("unknown patron kind %s", a.Kind)
	}

	g.log.Debug("Client hired",
		zap.Int("player", a.Player),
		zap.String("card", hired.String()),
	)

	// Bath: the fresh client takes its role action immediately.
	if s.hasPower(a.Player, "Bath") && !s.Finished {
		if k := roleKind(hired.Role()); k != "" {
			if k == action.Legionary {
				s.push(Frame{Kind: k, Player: a.Player, N: 1})
			} else {
				s.push(Frame{Kind: k, Player: a.Player})
			}
		}
	}
	return nil
}
