package game

import (
	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/card"
	"glory-to-rome-backend/internal/game/zone"
)

// LegalActions suggests actions the player could submit right now. It
// is a best-effort hint for UIs and playout tests, not an exhaustive
// enumeration: petitions, Palace multi-plays and most power variants
// are left out.
func (g *Game) LegalActions(idx int) []action.GameAction {
	s := g.state
	top := s.top()
	if top == nil || top.Player != idx {
		return nil
	}
	pl := s.Players[idx]

	var out []action.GameAction
	add := func(kind action.Kind, args ...any) {
		out = append(out, action.New(kind, idx, args...))
	}

	switch top.Kind {
	case action.ThinkerOrLead:
		add(action.ThinkerOrLead, true)
		if leads := g.legalLeads(idx); len(leads) > 0 {
			out = append(out, leads...)
		}

	case action.LeadRole:
		out = append(out, g.legalLeads(idx)...)

	case action.ThinkerType:
		add(action.ThinkerType, false)
		if s.JackPile.Len() > 0 {
			add(action.ThinkerType, true)
		}
		if top.Optional {
			add(action.SkipThinker)
		}

	case action.FollowRole:
		add(action.FollowRole, true)
		for _, c := range pl.Hand.Cards() {
			if c.IsJack() || c.Role() == s.RoleLed {
				add(action.FollowRole, false, 1, c.String())
			}
		}

	case action.Laborer:
		add(action.Laborer)
		for _, c := range s.Pool.Cards() {
			add(action.Laborer, c.String())
		}

	case action.Craftsman:
		add(action.Craftsman)
		out = append(out, g.legalBuilds(idx, action.Craftsman, &pl.Hand)...)

	case action.Architect:
		add(action.Architect)
		out = append(out, g.legalBuilds(idx, action.Architect, &pl.Stockpile)...)

	case action.Merchant:
		add(action.Merchant)
		if pl.Vault.Len() < pl.VaultLimit() {
			for _, c := range pl.Stockpile.Cards() {
				add(action.Merchant, c.String())
			}
		}

	case action.Legionary:
		add(action.Legionary)
		for _, c := range pl.Hand.Cards() {
			if !c.IsJack() {
				add(action.Legionary, c.String())
			}
		}

	case action.GiveCards:
		out = append(out, g.legalGive(idx, top.Demander))

	case action.PatronFromPool:
		add(action.PatronFromPool)
		if pl.Clientele.Len() < pl.ClienteleLimit() {
			for _, c := range s.Pool.Cards() {
				if !c.IsJack() {
					add(action.PatronFromPool, c.String())
				}
			}
		}

	case action.UseLatrine:
		add(action.UseLatrine)
		for _, c := range pl.Hand.Cards() {
			add(action.UseLatrine, c.String())
		}

	case action.UseVomitorium:
		add(action.UseVomitorium, false)
		add(action.UseVomitorium, true)

	case action.UseSewer:
		add(action.UseSewer)
		for _, c := range pl.Camp.Cards() {
			if !c.IsJack() {
				add(action.UseSewer, c.String())
			}
		}
	}
	return out
}

// legalLeads lists single-card leads: each hand card for its own role,
// a Jack for every role.
func (g *Game) legalLeads(idx int) []action.GameAction {
	pl := g.state.Players[idx]
	var out []action.GameAction
	for _, c := range pl.Hand.Cards() {
		if c.IsJack() {
			for _, r := range card.Roles() {
				out = append(out, action.New(action.LeadRole, idx, string(r), 1, c.String()))
			}
			continue
		}
		out = append(out, action.New(action.LeadRole, idx, string(c.Role()), 1, c.String()))
	}
	return out
}

// legalBuilds lists foundation lays from hand and site-matching
// material adds from the given source zone.
func (g *Game) legalBuilds(idx int, kind action.Kind, source *zone.Zone) []action.GameAction {
	s := g.state
	pl := s.Players[idx]
	var out []action.GameAction

	for _, c := range pl.Hand.Cards() {
		if c.IsJack() {
			continue
		}
		if s.Foundations[c.Material()] <= 0 {
			continue
		}
		if _, ok := findBuilding(pl.Buildings, c.Name); ok {
			continue
		}
		out = append(out, action.New(kind, idx, c.String(), "", string(c.Material())))
	}
	for _, b := range pl.Buildings {
		if b.Complete {
			continue
		}
		for _, c := range source.Cards() {
			if c.Material() == b.Site {
				out = append(out, action.New(kind, idx, b.Foundation.String(), c.String(), ""))
			}
		}
	}
	return out
}

// legalGive builds the minimal legal answer to standing demands: one
// matching hand card per demanded material, or nothing when immune or
// out of matches.
func (g *Game) legalGive(idx, demander int) action.GameAction {
	s := g.state
	pl := s.Players[idx]
	demands := materialCounts(s.Players[demander].Revealed.Cards())

	var args []any
	for _, c := range pl.Hand.Cards() {
		if demands[c.Material()] > 0 {
			demands[c.Material()] = 0
			args = append(args, c.String())
		}
	}
	if s.isImmune(idx, demander) {
		// Immunity makes the empty answer legal too; prefer keeping cards.
		return action.New(action.GiveCards, idx)
	}
	return action.New(action.GiveCards, idx, args...)
}
