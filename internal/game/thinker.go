package game

import (
	"go.uber.org/zap"

	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/zone"
)

// handleThinkerOrLead resolves the turn-start choice. Thinking pushes
// the thinker chain (optional Vomitorium and Latrine prompts first);
// declining pushes LEADROLE for the same player.
func (g *Game) handleThinkerOrLead(a action.GameAction) error {
	p, err := a.ThinkerOrLead()
	if err != nil {
		return illegalPayload("%v", err)
	}
	// Leading needs at least one card, so an empty hand must think;
	// otherwise the LEADROLE frame could never be satisfied.
	if !p.Think && g.state.Players[a.Player].Hand.Len() == 0 {
		return ruleViolation("cannot lead with an empty hand")
	}

	g.state.pop()
	if p.Think {
		g.pushThinkerChain(a.Player, false)
	} else {
		g.state.push(Frame{Kind: action.LeadRole, Player: a.Player})
	}
	return nil
}

// pushThinkerChain queues the discard prompts a thinker is entitled to
// before the THINKERTYPE choice itself.
func (g *Game) pushThinkerChain(idx int, optional bool) {
	frames := []Frame{}
	if g.state.hasPower(idx, "Vomitorium") {
		frames = append(frames, Frame{Kind: action.UseVomitorium, Player: idx})
	}
	if g.state.hasPower(idx, "Latrine") {
		frames = append(frames, Frame{Kind: action.UseLatrine, Player: idx})
	}
	frames = append(frames, Frame{Kind: action.ThinkerType, Player: idx, Optional: optional})
	g.state.pushAll(frames)
}

// handleThinkerType draws: one Jack from the jack pile, or orders
// cards up to the hand limit (exactly one when already at or above
// it). Draining the library ends the game.
func (g *Game) handleThinkerType(a action.GameAction) error {
	p, err := a.ThinkerType()
	if err != nil {
		return illegalPayload("%v", err)
	}
	pl := g.state.Players[a.Player]

	if p.ForJack {
		if g.state.JackPile.Len() == 0 {
			return emptySource("the jack pile is empty")
		}
		g.state.pop()
		jack, _ := g.state.JackPile.RemoveFront()
		pl.Hand.Add(jack)
		g.log.Debug("Thinker drew a Jack", zap.Int("player", a.Player))
		return nil
	}

	g.state.pop()
	limit := pl.HandLimit()
	want := limit - pl.Hand.Len()
	if want < 1 {
		want = 1
	}
	drawn := 0
	for i := 0; i < want; i++ {
		id, err := g.state.Library.RemoveFront()
		if err != nil {
			break // incomplete refill is legal; the empty library ends the game below
		}
		pl.Hand.Add(id)
		drawn++
	}
	g.log.Debug("Thinker drew cards",
		zap.Int("player", a.Player),
		zap.Int("drawn", drawn),
		zap.Int("hand", pl.Hand.Len()),
	)
	if g.state.Library.Len() == 0 {
		g.finishGame("library exhausted")
	}
	return nil
}

// handleSkipThinker declines an optional end-of-turn thinker. The
// dispatcher only routes it here for an Optional THINKERTYPE frame.
func (g *Game) handleSkipThinker(a action.GameAction) error {
	g.state.pop()
	return nil
}

// handleUseVomitorium optionally dumps the whole hand to the pool
// before thinking.
func (g *Game) handleUseVomitorium(a action.GameAction) error {
	p, err := a.UseVomitorium()
	if err != nil {
		return illegalPayload("%v", err)
	}

	g.state.pop()
	if p.Use {
		pl := g.state.Players[a.Player]
		dumped := pl.Hand.Len()
		pl.Hand, g.state.Pool = flushInto(pl.Hand, g.state.Pool)
		g.log.Debug("Vomitorium emptied hand", zap.Int("player", a.Player), zap.Int("cards", dumped))
	}
	return nil
}

// handleUseLatrine optionally discards one hand card to the pool
// before thinking.
func (g *Game) handleUseLatrine(a action.GameAction) error {
	p, err := a.UseLatrine()
	if err != nil {
		return illegalPayload("%v", err)
	}
	pl := g.state.Players[a.Player]
	if p.Card != nil && !pl.Hand.Contains(*p.Card) {
		return illegalPayload("card %s is not in hand", *p.Card)
	}

	g.state.pop()
	if p.Card != nil {
		_ = zone.Move(&pl.Hand, &g.state.Pool, *p.Card)
	}
	return nil
}

// flushInto moves every card of src to the end of dst.
func flushInto(src, dst zone.Zone) (zone.Zone, zone.Zone) {
	dst.AddAll(src.Cards())
	src.SetContent(nil)
	return src, dst
}
