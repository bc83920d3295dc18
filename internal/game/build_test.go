package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/card"
)

func craftsmanFrame(g *Game, idx int) {
	setFrames(g, Frame{Kind: action.Craftsman, Player: idx})
}

func architectFrame(g *Game, idx int) {
	setFrames(g, Frame{Kind: action.Architect, Player: idx})
}

func TestCraftsmanLaysFoundation(t *testing.T) {
	g := rig(t)
	p0 := g.state.Players[0]
	p0.Hand.SetContent([]card.ID{cid("Wall", 0)})
	craftsmanFrame(g, 0)
	sitesBefore := g.state.Foundations[card.Concrete]

	require.NoError(t, g.Handle(action.New(action.Craftsman, 0, "Wall#0", "", "Concrete")))

	b, ok := p0.GetBuilding(cid("Wall", 0))
	require.True(t, ok)
	assert.False(t, b.Complete)
	assert.Equal(t, sitesBefore-1, g.state.Foundations[card.Concrete])
	assert.Equal(t, 0, p0.Hand.Len())
}

func TestCraftsmanFoundationRejections(t *testing.T) {
	g := rig(t)
	p0 := g.state.Players[0]
	p0.Hand.SetContent([]card.ID{cid("Wall", 0), cid("Wall", 1), cid("Dock", 0), cid(card.JackName, 0)})
	craftsmanFrame(g, 0)

	// Site mismatch.
	requireRejected(t, g, action.New(action.Craftsman, 0, "Wall#0", "", "Rubble"), ErrRuleViolation)
	// Jack as foundation.
	requireRejected(t, g, action.New(action.Craftsman, 0, "Jack#0", "", "Rubble"), ErrRuleViolation)
	// Exhausted site pile.
	g.state.Foundations[card.Wood] = 0
	requireRejected(t, g, action.New(action.Craftsman, 0, "Dock#0", "", "Wood"), ErrRuleViolation)

	// Duplicate building.
	require.NoError(t, g.Handle(action.New(action.Craftsman, 0, "Wall#0", "", "Concrete")))
	craftsmanFrame(g, 0)
	requireRejected(t, g, action.New(action.Craftsman, 0, "Wall#1", "", "Concrete"), ErrRuleViolation)
}

func TestCraftsmanAddsMaterialAndCompletes(t *testing.T) {
	g := rig(t)
	p0 := g.state.Players[0]
	p0.Hand.SetContent([]card.ID{cid("Palisade", 0), cid("Dock", 0)})
	craftsmanFrame(g, 0)

	require.NoError(t, g.Handle(action.New(action.Craftsman, 0, "Palisade#0", "", "Wood")))
	craftsmanFrame(g, 0)
	// Wood site: threshold 1, one material completes.
	require.NoError(t, g.Handle(action.New(action.Craftsman, 0, "Palisade#0", "Dock#0", "")))

	b, _ := p0.GetBuilding(cid("Palisade", 0))
	assert.True(t, b.Complete)
	assert.Equal(t, []card.Material{card.Wood}, p0.Influence)
	assert.True(t, p0.PerformedCraftsman)
}

func TestCraftsmanRejectsMismatchedMaterial(t *testing.T) {
	g := rig(t)
	p0 := g.state.Players[0]
	p0.Hand.SetContent([]card.ID{cid("Wall", 0), cid("Dock", 0)})
	craftsmanFrame(g, 0)
	require.NoError(t, g.Handle(action.New(action.Craftsman, 0, "Wall#0", "", "Concrete")))

	craftsmanFrame(g, 0)
	requireRejected(t, g, action.New(action.Craftsman, 0, "Wall#0", "Dock#0", ""), ErrRuleViolation)
}

func TestStatueLaysOnAnySite(t *testing.T) {
	g := rig(t)
	g.state.Players[0].Hand.SetContent([]card.ID{cid("Statue", 0)})
	craftsmanFrame(g, 0)

	require.NoError(t, g.Handle(action.New(action.Craftsman, 0, "Statue#0", "", "Rubble")))
	b, ok := g.state.Players[0].GetBuilding(cid("Statue", 0))
	require.True(t, ok)
	assert.Equal(t, card.Rubble, b.Site)
	assert.Equal(t, 1, b.Threshold())
}

func TestRoadAllowsAnyMaterialOnStoneSite(t *testing.T) {
	g := rig(t)
	giveCompleted(g, 0, "Road")
	p0 := g.state.Players[0]
	p0.Hand.SetContent([]card.ID{cid("Villa", 0), cid("Dock", 0)})
	craftsmanFrame(g, 0)
	require.NoError(t, g.Handle(action.New(action.Craftsman, 0, "Villa#0", "", "Stone")))

	craftsmanFrame(g, 0)
	require.NoError(t, g.Handle(action.New(action.Craftsman, 0, "Villa#0", "Dock#0", "")))

	b, _ := p0.GetBuilding(cid("Villa", 0))
	assert.Equal(t, 1, b.Materials.Len())
}

func TestTowerAllowsRubbleAnywhere(t *testing.T) {
	g := rig(t)
	giveCompleted(g, 0, "Tower")
	p0 := g.state.Players[0]
	p0.Hand.SetContent([]card.ID{cid("Villa", 0), cid("Road", 0)})
	craftsmanFrame(g, 0)
	require.NoError(t, g.Handle(action.New(action.Craftsman, 0, "Villa#0", "", "Stone")))

	craftsmanFrame(g, 0)
	require.NoError(t, g.Handle(action.New(action.Craftsman, 0, "Villa#0", "Road#0", "")))
}

func TestScriptoriumMarbleCompletesAnything(t *testing.T) {
	g := rig(t)
	giveCompleted(g, 0, "Scriptorium")
	p0 := g.state.Players[0]
	p0.Hand.SetContent([]card.ID{cid("Villa", 0), cid("Temple", 0)})
	craftsmanFrame(g, 0)
	require.NoError(t, g.Handle(action.New(action.Craftsman, 0, "Villa#0", "", "Stone")))

	craftsmanFrame(g, 0)
	require.NoError(t, g.Handle(action.New(action.Craftsman, 0, "Villa#0", "Temple#0", "")))

	b, _ := p0.GetBuilding(cid("Villa", 0))
	assert.True(t, b.Complete, "one Marble completes via Scriptorium")
}

func TestCraneAddsMaterialFromPool(t *testing.T) {
	g := rig(t)
	giveCompleted(g, 0, "Crane")
	p0 := g.state.Players[0]
	p0.Hand.SetContent([]card.ID{cid("Palisade", 0)})
	g.state.Pool.SetContent([]card.ID{cid("Dock", 0)})
	craftsmanFrame(g, 0)
	require.NoError(t, g.Handle(action.New(action.Craftsman, 0, "Palisade#0", "", "Wood")))

	craftsmanFrame(g, 0)
	require.NoError(t, g.Handle(action.New(action.Craftsman, 0, "Palisade#0", "Dock#0", "")))
	assert.Equal(t, 0, g.state.Pool.Len())
}

func TestFountainDrawsIntoCraftsman(t *testing.T) {
	g := rig(t)
	giveCompleted(g, 0, "Fountain")
	p0 := g.state.Players[0]
	top := g.state.Library.Cards()[0]
	craftsmanFrame(g, 0)

	require.NoError(t, g.Handle(action.New(action.UseFountain, 0)))
	assert.True(t, p0.Hand.Contains(top))

	// The craftsman action is still owed.
	kind, player, _ := g.ExpectedAction()
	assert.Equal(t, action.Craftsman, kind)
	assert.Equal(t, 0, player)
}

func TestFountainRequiresThePower(t *testing.T) {
	g := rig(t)
	craftsmanFrame(g, 0)
	requireRejected(t, g, action.New(action.UseFountain, 0), ErrRuleViolation)
}

func TestFountainDrawsOncePerCraftsmanAction(t *testing.T) {
	g := rig(t)
	giveCompleted(g, 0, "Fountain")
	p0 := g.state.Players[0]
	craftsmanFrame(g, 0)

	require.NoError(t, g.Handle(action.New(action.UseFountain, 0)))
	require.Equal(t, 1, p0.Hand.Len())

	// The same pending action grants no further draws.
	requireRejected(t, g, action.New(action.UseFountain, 0), ErrRuleViolation)
	assert.Equal(t, 1, p0.Hand.Len())

	// A fresh craftsman action draws again.
	require.NoError(t, g.Handle(action.New(action.Craftsman, 0)))
	craftsmanFrame(g, 0)
	require.NoError(t, g.Handle(action.New(action.UseFountain, 0)))
	assert.Equal(t, 2, p0.Hand.Len())
}

func TestArchitectUsesStockpile(t *testing.T) {
	g := rig(t)
	p0 := g.state.Players[0]
	p0.Hand.SetContent([]card.ID{cid("Palisade", 0)})
	p0.Stockpile.SetContent([]card.ID{cid("Dock", 0)})
	architectFrame(g, 0)
	require.NoError(t, g.Handle(action.New(action.Architect, 0, "Palisade#0", "", "Wood")))

	architectFrame(g, 0)
	require.NoError(t, g.Handle(action.New(action.Architect, 0, "Palisade#0", "Dock#0", "")))

	b, _ := p0.GetBuilding(cid("Palisade", 0))
	assert.True(t, b.Complete)
	assert.Equal(t, 0, p0.Stockpile.Len())
}

func TestArchitectRejectsHandMaterial(t *testing.T) {
	g := rig(t)
	p0 := g.state.Players[0]
	p0.Hand.SetContent([]card.ID{cid("Palisade", 0), cid("Dock", 0)})
	architectFrame(g, 0)
	require.NoError(t, g.Handle(action.New(action.Architect, 0, "Palisade#0", "", "Wood")))

	architectFrame(g, 0)
	requireRejected(t, g, action.New(action.Architect, 0, "Palisade#0", "Dock#0", ""), ErrIllegalPayload)
}

func TestVillaCompletesWithOneArchitectMaterial(t *testing.T) {
	g := rig(t)
	p0 := g.state.Players[0]
	p0.Hand.SetContent([]card.ID{cid("Villa", 0)})
	p0.Stockpile.SetContent([]card.ID{cid("Garden", 0)})
	architectFrame(g, 0)
	require.NoError(t, g.Handle(action.New(action.Architect, 0, "Villa#0", "", "Stone")))

	architectFrame(g, 0)
	require.NoError(t, g.Handle(action.New(action.Architect, 0, "Villa#0", "Garden#0", "")))

	b, _ := p0.GetBuilding(cid("Villa", 0))
	assert.True(t, b.Complete, "Villa completes on the first architect material")
}

func TestStairwaySharesOpponentBuilding(t *testing.T) {
	g := rig(t)
	giveCompleted(g, 0, "Stairway")
	giveCompleted(g, 1, "Sewer")
	g.state.Players[0].Stockpile.SetContent([]card.ID{cid("Villa", 0)})
	architectFrame(g, 0)

	require.False(t, g.state.hasPower(0, "Sewer"))
	require.NoError(t, g.Handle(action.New(action.Architect, 0, "Sewer#0", "Villa#0", "", 1)))

	assert.True(t, g.state.hasPower(0, "Sewer"), "shared building benefits everyone")
	b, _ := g.state.Players[1].GetBuilding(cid("Sewer", 0))
	assert.True(t, b.SharedByStairway)
}

func TestStairwayRejectsOwnOrIncompleteTargets(t *testing.T) {
	g := rig(t)
	giveCompleted(g, 0, "Stairway")
	g.state.Players[0].Stockpile.SetContent([]card.ID{cid("Villa", 0)})
	architectFrame(g, 0)

	requireRejected(t, g, action.New(action.Architect, 0, "Sewer#0", "Villa#0", "", 0), ErrRuleViolation)
}

func TestInfluenceGoalEndsGame(t *testing.T) {
	g, err := NewGame(Settings{Players: []string{"alice", "bob"}, Seed: 7, InfluenceGoal: 1})
	require.NoError(t, err)
	p0 := g.state.Players[0]
	p0.Hand.SetContent([]card.ID{cid("Palisade", 0), cid("Dock", 0)})
	craftsmanFrame(g, 0)
	require.NoError(t, g.Handle(action.New(action.Craftsman, 0, "Palisade#0", "", "Wood")))
	craftsmanFrame(g, 0)

	require.NoError(t, g.Handle(action.New(action.Craftsman, 0, "Palisade#0", "Dock#0", "")))
	assert.True(t, g.Finished())
	assert.Equal(t, "influence goal reached", g.state.EndReason)
}
