package game

import (
	"go.uber.org/zap"

	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/card"
	"glory-to-rome-backend/internal/game/zone"
)

// handleLegionary reveals demand cards from hand, up to the frame's
// allowance (all legionary actions of the turn merged). The pool pays
// each demand it can at once; every opponent then owes a GIVECARDS
// answer, clockwise from the demander. Revealing nothing wastes the
// actions, so an empty hand never strands the frame.
func (g *Game) handleLegionary(a action.GameAction) error {
	s := g.state
	frame := *s.top()

	p, err := a.Legionary()
	if err != nil {
		return illegalPayload("%v", err)
	}
	if len(p.Cards) == 0 {
		s.pop()
		return nil
	}
	if len(p.Cards) > frame.N {
		return ruleViolation("%d demands exceed the %d earned legionary actions", len(p.Cards), frame.N)
	}
	pl := s.Players[a.Player]
	seen := make(map[card.ID]bool, len(p.Cards))
	for _, c := range p.Cards {
		if seen[c] {
			return illegalPayload("card %s named twice", c)
		}
		seen[c] = true
		if c.IsJack() {
			return ruleViolation("a Jack cannot be revealed as a demand")
		}
		if !pl.Hand.Contains(c) {
			return illegalPayload("card %s is not in hand", c)
		}
	}

	s.pop()
	s.LegionaryCount = len(p.Cards)
	_ = zone.Move(&pl.Hand, &pl.Revealed, p.Cards...)

	// The pool answers immediately, one card per demand.
	for _, demand := range p.Cards {
		for _, poolCard := range s.Pool.Cards() {
			if poolCard.Material() == demand.Material() {
				_ = zone.Move(&s.Pool, &pl.Stockpile, poolCard)
				break
			}
		}
	}

	frames := make([]Frame, 0, len(s.Players)-1)
	for i := 1; i < len(s.Players); i++ {
		opp := (a.Player + i) % len(s.Players)
		frames = append(frames, Frame{Kind: action.GiveCards, Player: opp, Demander: a.Player})
	}
	s.pushAll(frames)

	g.log.Debug("Legionary demands revealed",
		zap.Int("player", a.Player),
		zap.Int("demands", len(p.Cards)),
	)
	return nil
}

// handleGiveCards resolves one opponent's answer to the standing
// demands. Matching hand cards are mandatory unless the target is
// immune; immunity still allows voluntary gives. Bridge and Coliseum
// then take from stockpile and clientele.
func (g *Game) handleGiveCards(a action.GameAction) error {
	s := g.state
	frame := *s.top()
	demander := s.Players[frame.Demander]
	target := s.Players[a.Player]

	p, err := a.GiveCards()
	if err != nil {
		return illegalPayload("%v", err)
	}

	demands := materialCounts(demander.Revealed.Cards())
	given := make(map[card.Material]int)
	seen := make(map[card.ID]bool, len(p.Cards))
	for _, c := range p.Cards {
		if seen[c] {
			return illegalPayload("card %s named twice", c)
		}
		seen[c] = true
		if !target.Hand.Contains(c) {
			return illegalPayload("card %s is not in hand", c)
		}
		given[c.Material()]++
		if given[c.Material()] > demands[c.Material()] {
			return ruleViolation("%s does not answer an unsatisfied demand", c)
		}
	}

	immune := s.isImmune(a.Player, frame.Demander)
	if !immune {
		for m := range demands {
			if given[m] > 0 {
				continue
			}
			if handHolds(&target.Hand, m) {
				return ruleViolation("a %s card must be surrendered", m)
			}
		}
	}

	s.pop()
	_ = zone.Move(&target.Hand, &demander.Stockpile, p.Cards...)

	if !immune && s.hasPower(frame.Demander, "Bridge") {
		if id, ok := firstOfMaterials(&target.Stockpile, demands); ok {
			_ = zone.Move(&target.Stockpile, &demander.Stockpile, id)
		}
	}
	if !immune && s.hasPower(frame.Demander, "Coliseum") {
		if id, ok := firstOfMaterials(&target.Clientele, demands); ok {
			// Not a Merchant take: the vault limit does not apply.
			_ = zone.Move(&target.Clientele, &demander.Vault, id)
		}
	}

	// Once the last opponent has answered, the revealed cards return
	// to the demander's hand; they were never at stake.
	if !g.demandsOutstanding(frame.Demander) {
		demander.Hand.AddAll(demander.Revealed.Cards())
		demander.Revealed.SetContent(nil)
		s.LegionaryCount = 0
	}
	return nil
}

func (g *Game) demandsOutstanding(demander int) bool {
	for _, f := range g.state.Pending {
		if f.Kind == action.GiveCards && f.Demander == demander {
			return true
		}
	}
	return false
}

func materialCounts(ids []card.ID) map[card.Material]int {
	counts := make(map[card.Material]int, len(ids))
	for _, id := range ids {
		counts[id.Material()]++
	}
	return counts
}

func handHolds(z *zone.Zone, m card.Material) bool {
	for _, c := range z.Cards() {
		if c.Material() == m {
			return true
		}
	}
	return false
}

// firstOfMaterials picks the first card, in zone order, whose material
// is demanded. Deterministic, so replays reproduce the same take.
func firstOfMaterials(z *zone.Zone, demands map[card.Material]int) (card.ID, bool) {
	for _, c := range z.Cards() {
		if demands[c.Material()] > 0 {
			return c, true
		}
	}
	return card.ID{}, false
}
