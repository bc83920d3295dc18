package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/card"
)

func TestLaborerTakesFromPool(t *testing.T) {
	g := rig(t)
	g.state.Pool.SetContent([]card.ID{cid("Road", 0), cid("Dock", 0)})
	setFrames(g, Frame{Kind: action.Laborer, Player: 0})

	require.NoError(t, g.Handle(action.New(action.Laborer, 0, "Road#0")))
	assert.True(t, g.state.Players[0].Stockpile.Contains(cid("Road", 0)))
	assert.Equal(t, 1, g.state.Pool.Len())
}

func TestLaborerFromHandNeedsDock(t *testing.T) {
	g := rig(t)
	g.state.Players[0].Hand.SetContent([]card.ID{cid("Bar", 0)})
	g.state.Pool.SetContent([]card.ID{cid("Road", 0)})
	setFrames(g, Frame{Kind: action.Laborer, Player: 0})

	requireRejected(t, g, action.New(action.Laborer, 0, "Road#0", "Bar#0"), ErrRuleViolation)

	giveCompleted(g, 0, "Dock")
	require.NoError(t, g.Handle(action.New(action.Laborer, 0, "Road#0", "Bar#0")))
	assert.Equal(t, 2, g.state.Players[0].Stockpile.Len())
}

func TestPoolDrainVariantEndsGame(t *testing.T) {
	g, err := NewGame(Settings{Players: []string{"alice", "bob"}, Seed: 7, PoolDrainEnds: true})
	require.NoError(t, err)
	g.state.Pool.SetContent([]card.ID{cid("Road", 0)})
	setFrames(g, Frame{Kind: action.Laborer, Player: 0})

	require.NoError(t, g.Handle(action.New(action.Laborer, 0, "Road#0")))
	assert.True(t, g.Finished())
	assert.Equal(t, "pool drained", g.state.EndReason)
}

func TestMerchantBanksFromStockpile(t *testing.T) {
	g := rig(t)
	p0 := g.state.Players[0]
	p0.Stockpile.SetContent([]card.ID{cid("Villa", 0)})
	setFrames(g, Frame{Kind: action.Merchant, Player: 0})

	require.NoError(t, g.Handle(action.New(action.Merchant, 0, "Villa#0")))
	assert.True(t, p0.Vault.Contains(cid("Villa", 0)))
}

func TestMerchantVaultLimitScalesWithInfluence(t *testing.T) {
	g := rig(t)
	p0 := g.state.Players[0]
	p0.Stockpile.SetContent([]card.ID{cid("Villa", 0)})
	p0.Vault.SetContent([]card.ID{cid("Insula", 0), cid("Dock", 0)})
	p0.Influence = []card.Material{card.Rubble}
	setFrames(g, Frame{Kind: action.Merchant, Player: 0})

	// Limit 3 with one influence: the take fits exactly.
	require.NoError(t, g.Handle(action.New(action.Merchant, 0, "Villa#0")))
	assert.Equal(t, 3, p0.Vault.Len())
}

func TestMerchantFromDeckNeedsAtrium(t *testing.T) {
	g := rig(t)
	setFrames(g, Frame{Kind: action.Merchant, Player: 0})
	requireRejected(t, g, action.New(action.Merchant, 0, "", "", true), ErrRuleViolation)

	giveCompleted(g, 0, "Atrium")
	libBefore := g.state.Library.Len()
	require.NoError(t, g.Handle(action.New(action.Merchant, 0, "", "", true)))
	assert.Equal(t, 1, g.state.Players[0].Vault.Len())
	assert.Equal(t, libBefore-1, g.state.Library.Len())
}

func TestMerchantFromHandNeedsBasilica(t *testing.T) {
	g := rig(t)
	p0 := g.state.Players[0]
	p0.Hand.SetContent([]card.ID{cid("Villa", 0)})
	setFrames(g, Frame{Kind: action.Merchant, Player: 0})

	requireRejected(t, g, action.New(action.Merchant, 0, "", "Villa#0"), ErrRuleViolation)

	giveCompleted(g, 0, "Basilica")
	require.NoError(t, g.Handle(action.New(action.Merchant, 0, "", "Villa#0")))
	assert.True(t, p0.Vault.Contains(cid("Villa", 0)))
}

func TestPatronHiresFromPool(t *testing.T) {
	g := rig(t)
	g.state.Pool.SetContent([]card.ID{cid("Villa", 0)})
	setFrames(g, Frame{Kind: action.PatronFromPool, Player: 0})

	require.NoError(t, g.Handle(action.New(action.PatronFromPool, 0, "Villa#0")))
	assert.True(t, g.state.Players[0].Clientele.Contains(cid("Villa", 0)))
}

func TestPatronClienteleLimit(t *testing.T) {
	g := rig(t)
	p0 := g.state.Players[0]
	p0.Clientele.SetContent([]card.ID{cid("Bar", 0), cid("Dock", 0)})
	g.state.Pool.SetContent([]card.ID{cid("Villa", 0)})
	setFrames(g, Frame{Kind: action.PatronFromPool, Player: 0})

	requireRejected(t, g, action.New(action.PatronFromPool, 0, "Villa#0"), ErrRuleViolation)
}

func TestPatronDeclinesWithEmptyPool(t *testing.T) {
	g := rig(t)
	g.state.Pool.SetContent(nil)
	setFrames(g, Frame{Kind: action.PatronFromPool, Player: 0}, Frame{Kind: action.Merchant, Player: 0})

	// No pool card and no Bar or Aqueduct: declining must be legal.
	legal := g.LegalActions(0)
	require.NotEmpty(t, legal, "an empty pool must still leave a legal move")

	require.NoError(t, g.Handle(action.New(action.PatronFromPool, 0)))
	assert.Equal(t, 0, g.state.Players[0].Clientele.Len())
	kind, _, _ := g.ExpectedAction()
	assert.Equal(t, action.Merchant, kind, "the declined hire is consumed")
}

func TestPatronDeclineLegalAtClienteleLimit(t *testing.T) {
	g := rig(t)
	p0 := g.state.Players[0]
	p0.Clientele.SetContent([]card.ID{cid("Bar", 0), cid("Dock", 0)})
	g.state.Pool.SetContent([]card.ID{cid("Villa", 0)})
	setFrames(g, Frame{Kind: action.PatronFromPool, Player: 0})

	requireRejected(t, g, action.New(action.PatronFromPool, 0, "Villa#0"), ErrRuleViolation)
	require.NoError(t, g.Handle(action.New(action.PatronFromPool, 0)))
	assert.Equal(t, 2, p0.Clientele.Len())
}

func TestPatronFromHandNeedsBar(t *testing.T) {
	g := rig(t)
	p0 := g.state.Players[0]
	p0.Hand.SetContent([]card.ID{cid("Villa", 0)})
	setFrames(g, Frame{Kind: action.PatronFromPool, Player: 0})

	requireRejected(t, g, action.New(action.PatronFromHand, 0, "Villa#0"), ErrRuleViolation)

	giveCompleted(g, 0, "Bar")
	setFrames(g, Frame{Kind: action.PatronFromPool, Player: 0})
	require.NoError(t, g.Handle(action.New(action.PatronFromHand, 0, "Villa#0")))
	assert.True(t, p0.Clientele.Contains(cid("Villa", 0)))
}

func TestPatronFromDeckNeedsAqueduct(t *testing.T) {
	g := rig(t)
	setFrames(g, Frame{Kind: action.PatronFromPool, Player: 0})
	requireRejected(t, g, action.New(action.PatronFromDeck, 0), ErrRuleViolation)

	giveCompleted(g, 0, "Aqueduct")
	require.NoError(t, g.Handle(action.New(action.PatronFromDeck, 0)))
	assert.Equal(t, 1, g.state.Players[0].Clientele.Len())
}

func TestBathClientActsImmediately(t *testing.T) {
	g := rig(t)
	giveCompleted(g, 0, "Bath")
	g.state.Pool.SetContent([]card.ID{cid("Villa", 0)}) // Merchant client
	setFrames(g, Frame{Kind: action.PatronFromPool, Player: 0})

	require.NoError(t, g.Handle(action.New(action.PatronFromPool, 0, "Villa#0")))

	kind, player, ok := g.ExpectedAction()
	require.True(t, ok)
	assert.Equal(t, action.Merchant, kind)
	assert.Equal(t, 0, player)
}
