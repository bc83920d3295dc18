package game

import (
	"go.uber.org/zap"

	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/card"
	"glory-to-rome-backend/internal/game/zone"
)

// handleLeadRole commits the leader to a role: one matching card or
// Jack, or a petition, or (with Palace) several such groups for extra
// actions. Followers are then queued clockwise.
func (g *Game) handleLeadRole(a action.GameAction) error {
	p, err := a.LeadRole()
	if err != nil {
		return illegalPayload("%v", err)
	}
	s := g.state
	if err := s.validateCommit(a.Player, p.Role, p.Cards, p.NActions); err != nil {
		return err
	}

	s.pop()
	pl := s.Players[a.Player]
	// hand membership validated above; the move cannot fail
	_ = zone.Move(&pl.Hand, &pl.Camp, p.Cards...)
	pl.CampActions = p.NActions
	s.RoleLed = p.Role

	frames := make([]Frame, 0, len(s.Players)-1)
	for i := 1; i < len(s.Players); i++ {
		frames = append(frames, Frame{Kind: action.FollowRole, Player: (a.Player + i) % len(s.Players)})
	}
	s.pushAll(frames)

	g.log.Debug("Role led",
		zap.Int("leader", a.Player),
		zap.String("role", string(p.Role)),
		zap.Int("actions", p.NActions),
	)
	return nil
}

// handleFollowRole lets an opponent either think instead or commit
// cards under the same rules as the leader, with the role fixed.
func (g *Game) handleFollowRole(a action.GameAction) error {
	p, err := a.FollowRole()
	if err != nil {
		return illegalPayload("%v", err)
	}
	s := g.state

	if p.Think {
		s.pop()
		g.pushThinkerChain(a.Player, false)
		return nil
	}

	if err := s.validateCommit(a.Player, s.RoleLed, p.Cards, p.NActions); err != nil {
		return err
	}
	s.pop()
	pl := s.Players[a.Player]
	_ = zone.Move(&pl.Hand, &pl.Camp, p.Cards...)
	pl.CampActions = p.NActions
	return nil
}

// validateCommit checks a lead or follow play: every card must sit in
// the player's hand and the cards must partition into groups that each
// stand for one action — a Jack, a single card of the led role, or a
// petition (three cards of one role, two with Circus). nActions must
// equal the group count; without Palace the only legal play is a
// single group.
func (s *State) validateCommit(idx int, role card.Role, cards []card.ID, nActions int) error {
	pl := s.Players[idx]

	seen := make(map[card.ID]bool, len(cards))
	for _, c := range cards {
		if seen[c] {
			return illegalPayload("card %s named twice", c)
		}
		seen[c] = true
		if !pl.Hand.Contains(c) {
			return illegalPayload("card %s is not in hand", c)
		}
	}

	petSize := 3
	if s.hasPower(idx, "Circus") {
		petSize = 2
	}

	jacks := 0
	counts := make(map[card.Role]int)
	for _, c := range cards {
		if c.IsJack() {
			jacks++
		} else {
			counts[c.Role()]++
		}
	}

	// Off-role cards can only arrive bundled as whole petitions.
	otherGroups := 0
	for r, c := range counts {
		if r == role {
			continue
		}
		if c%petSize != 0 {
			return ruleViolation("%d %s cards do not form whole petitions of %d", c, r, petSize)
		}
		otherGroups += c / petSize
	}

	// Led-role cards split freely between singles and petitions, so
	// several group counts can be legal; nActions picks one.
	feasible := make(map[int]bool)
	led := counts[role]
	for singles := 0; singles <= led; singles++ {
		if (led-singles)%petSize != 0 {
			continue
		}
		groups := jacks + otherGroups + singles + (led-singles)/petSize
		feasible[groups] = true
	}

	if !s.hasPower(idx, "Palace") {
		if !feasible[1] {
			return ruleViolation("cards do not form a single action for %s", role)
		}
		if nActions != 1 {
			return ruleViolation("%d actions requires a completed Palace", nActions)
		}
		return nil
	}
	if !feasible[nActions] {
		return ruleViolation("cards cannot be grouped into %d actions for %s", nActions, role)
	}
	return nil
}

// scheduleRoleActions queues the earned role actions once every
// follower has resolved: the leader first, then each committed
// follower clockwise, each with one action per camp play plus one per
// contributing client. Legionary actions collapse into a single frame
// carrying the demand allowance.
func (g *Game) scheduleRoleActions() {
	s := g.state
	s.RolesScheduled = true

	var frames []Frame
	for i := 0; i < len(s.Players); i++ {
		idx := (s.Leader + i) % len(s.Players)
		pl := s.Players[idx]
		if pl.CampActions == 0 {
			continue
		}
		total := pl.CampActions + s.clientActions(idx, s.RoleLed)
		if s.RoleLed == card.Legionary {
			frames = append(frames, Frame{Kind: action.Legionary, Player: idx, N: total})
			continue
		}
		for j := 0; j < total; j++ {
			frames = append(frames, Frame{Kind: roleKind(s.RoleLed), Player: idx})
		}
	}
	s.pushAll(frames)

	g.log.Debug("Role actions scheduled",
		zap.String("role", string(s.RoleLed)),
		zap.Int("frames", len(frames)),
	)
}

func roleKind(r card.Role) action.Kind {
	switch r {
	case card.Laborer:
		return action.Laborer
	case card.Craftsman:
		return action.Craftsman
	case card.Architect:
		return action.Architect
	case card.Merchant:
		return action.Merchant
	case card.Legionary:
		return action.Legionary
	case card.Patron:
		return action.PatronFromPool
	}
	return ""
}
