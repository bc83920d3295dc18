package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/card"
)

func TestLeadSingleMatchingCard(t *testing.T) {
	g := rig(t)
	g.state.Players[0].Hand.SetContent([]card.ID{cid("Dock", 0)})

	require.NoError(t, g.Handle(action.New(action.LeadRole, 0, "Craftsman", 1, "Dock#0")))
	assert.Equal(t, card.Craftsman, g.state.RoleLed)
	assert.Equal(t, 1, g.state.Players[0].CampActions)
}

func TestEmptyHandMustThink(t *testing.T) {
	g := rig(t)
	require.Equal(t, 0, g.state.Players[0].Hand.Len())

	// Declining the thinker with nothing to lead would strand the turn.
	requireRejected(t, g, action.New(action.ThinkerOrLead, 0, false), ErrRuleViolation)
	require.NoError(t, g.Handle(action.New(action.ThinkerOrLead, 0, true)))
}

func TestLeadWithJackPicksAnyRole(t *testing.T) {
	g := rig(t)
	g.state.Players[0].Hand.SetContent([]card.ID{cid(card.JackName, 0)})

	require.NoError(t, g.Handle(action.New(action.LeadRole, 0, "Merchant", 1, "Jack#0")))
	assert.Equal(t, card.Merchant, g.state.RoleLed)
}

func TestLeadRejectsMismatchedSingle(t *testing.T) {
	g := rig(t)
	g.state.Players[0].Hand.SetContent([]card.ID{cid("Dock", 0)})

	// Dock is a Craftsman card; it cannot lead Laborer on its own.
	requireRejected(t, g, action.New(action.LeadRole, 0, "Laborer", 1, "Dock#0"), ErrRuleViolation)
}

func TestLeadRejectsCardsNotInHand(t *testing.T) {
	g := rig(t)
	g.state.Players[0].Hand.SetContent([]card.ID{cid("Dock", 0)})

	requireRejected(t, g, action.New(action.LeadRole, 0, "Craftsman", 1, "Dock#1"), ErrIllegalPayload)
	requireRejected(t, g, action.New(action.LeadRole, 0, "Craftsman", 1, "Dock#0", "Dock#0"), ErrIllegalPayload)
}

func TestPetitionOfTwoRequiresCircus(t *testing.T) {
	g := rig(t)
	g.state.Players[0].Hand.SetContent([]card.ID{cid("Road", 0), cid("Road", 1)})

	requireRejected(t, g, action.New(action.LeadRole, 0, "Craftsman", 1, "Road#0", "Road#1"), ErrRuleViolation)

	giveCompleted(g, 0, "Circus")
	require.NoError(t, g.Handle(action.New(action.LeadRole, 0, "Craftsman", 1, "Road#0", "Road#1")))
}

func TestMultipleActionsRequirePalace(t *testing.T) {
	g := rig(t)
	g.state.Players[0].Hand.SetContent([]card.ID{cid("Dock", 0), cid("Dock", 1)})

	requireRejected(t, g, action.New(action.LeadRole, 0, "Craftsman", 2, "Dock#0", "Dock#1"), ErrRuleViolation)
}

func TestPalacePartitionCounts(t *testing.T) {
	// 3 Roads (one off-role petition) plus 6 Craftsman cards (singles
	// or petitions) lead Craftsman for exactly 3, 5 or 7 actions.
	hand := []card.ID{cid("Road", 0), cid("Road", 1), cid("Road", 2)}
	for i := 0; i < 3; i++ {
		hand = append(hand, cid("Dock", i))
	}
	for i := 0; i < 3; i++ {
		hand = append(hand, cid("Palisade", i))
	}
	args := make([]any, 0, 11)
	args = append(args, "Craftsman", 0)
	for _, c := range hand {
		args = append(args, c.String())
	}

	for n := 1; n <= 9; n++ {
		g := rig(t)
		giveCompleted(g, 0, "Palace")
		g.state.Players[0].Hand.SetContent(hand)
		args[1] = n

		err := g.Handle(action.GameAction{Kind: action.LeadRole, Player: 0, Args: args})
		if n == 3 || n == 5 || n == 7 {
			require.NoError(t, err, "n=%d must be legal", n)
			assert.Equal(t, n, g.state.Players[0].CampActions)
		} else {
			require.Error(t, err, "n=%d must be rejected", n)
			assert.Equal(t, ErrRuleViolation, KindOf(err))
		}
	}
}

func TestFollowCommitsOrThinks(t *testing.T) {
	g := rig(t)
	g.state.Players[0].Hand.SetContent([]card.ID{cid("Road", 0)})
	g.state.Players[1].Hand.SetContent([]card.ID{cid("Bar", 0), cid("Dock", 0)})

	require.NoError(t, g.Handle(action.New(action.LeadRole, 0, "Laborer", 1, "Road#0")))

	// Following with an off-role card is rejected.
	requireRejected(t, g, action.New(action.FollowRole, 1, false, 1, "Dock#0"), ErrRuleViolation)

	require.NoError(t, g.Handle(action.New(action.FollowRole, 1, false, 1, "Bar#0")))
	assert.Equal(t, 1, g.state.Players[1].CampActions)

	// Both committed: leader acts first, then the follower.
	kind, player, _ := g.ExpectedAction()
	assert.Equal(t, action.Laborer, kind)
	assert.Equal(t, 0, player)
}

func TestFollowerThinkerDrawsAndRoleActionsProceed(t *testing.T) {
	g := rig(t)
	g.state.Players[0].Hand.SetContent([]card.ID{cid("Road", 0)})

	require.NoError(t, g.Handle(action.New(action.LeadRole, 0, "Laborer", 1, "Road#0")))
	require.NoError(t, g.Handle(action.New(action.FollowRole, 1, true)))

	kind, player, _ := g.ExpectedAction()
	require.Equal(t, action.ThinkerType, kind)
	require.Equal(t, 1, player)
	require.NoError(t, g.Handle(action.New(action.ThinkerType, 1, false)))
	assert.Equal(t, 5, g.state.Players[1].Hand.Len())

	// Only the leader earned a Laborer action.
	kind, player, _ = g.ExpectedAction()
	assert.Equal(t, action.Laborer, kind)
	assert.Equal(t, 0, player)
}

func TestClienteleGrantExtraActions(t *testing.T) {
	g := rig(t)
	g.state.Players[0].Clientele.SetContent([]card.ID{cid("Bar", 0)}) // Laborer client

	leadAndThink(t, g, card.Laborer, cid("Road", 0))

	laborers := 0
	for _, f := range g.state.Pending {
		if f.Kind == action.Laborer && f.Player == 0 {
			laborers++
		}
	}
	assert.Equal(t, 2, laborers, "camp action plus one client action")
}

func TestStoreroomCountsAllClientsForLaborer(t *testing.T) {
	g := rig(t)
	giveCompleted(g, 0, "Storeroom")
	g.state.Players[0].Clientele.SetContent([]card.ID{cid("Dock", 0), cid("Temple", 0)})

	leadAndThink(t, g, card.Laborer, cid("Road", 0))

	laborers := 0
	for _, f := range g.state.Pending {
		if f.Kind == action.Laborer && f.Player == 0 {
			laborers++
		}
	}
	assert.Equal(t, 3, laborers)
}

func TestLudusMagnaMakesMerchantsWild(t *testing.T) {
	g := rig(t)
	giveCompleted(g, 0, "Ludus Magna")
	g.state.Players[0].Clientele.SetContent([]card.ID{cid("Villa", 0)}) // Merchant client

	leadAndThink(t, g, card.Craftsman, cid("Dock", 0))

	crafts := 0
	for _, f := range g.state.Pending {
		if f.Kind == action.Craftsman && f.Player == 0 {
			crafts++
		}
	}
	assert.Equal(t, 2, crafts, "the Merchant client chips in on Craftsman")
}
