package game

import (
	"go.uber.org/zap"

	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/logger"
)

// Game is the action state machine: it owns a State and mutates it
// only through Handle. It is not safe for concurrent use; transports
// serialize calls (see internal/session).
type Game struct {
	state *State
	log   *zap.Logger
}

// Resume wraps an existing state, typically one rebuilt by replay.
func Resume(s *State) *Game {
	return &Game{state: s, log: logger.Get().Named("game")}
}

// Handle applies one action. It returns nil and mutates the state, or
// a typed *Error and leaves the state exactly as it was.
func (g *Game) Handle(a action.GameAction) error {
	if g.state.Finished {
		return gameOver("the game has ended (%s)", g.state.EndReason)
	}

	// 1. Gate on the expected-action stack.
	top := g.state.top()
	if top == nil {
		return gameOver("no pending action")
	}
	if !frameAccepts(*top, a.Kind) {
		return unexpected("expected %s, got %s", top.Kind, a.Kind)
	}
	if a.Player != top.Player {
		return unexpected("expected player %d to act, got %d", top.Player, a.Player)
	}

	// 2. Run the kind handler; each validates fully before mutating.
	if err := g.dispatch(a); err != nil {
		g.log.Debug("❌ Action rejected",
			zap.String("kind", string(a.Kind)),
			zap.Int("player", a.Player),
			zap.Error(err),
		)
		return err
	}

	g.log.Info("✅ Action applied",
		zap.String("kind", string(a.Kind)),
		zap.Int("player", a.Player),
		zap.Int("turn", g.state.Turn),
	)

	// 3. Advance turn phases until someone owes an action again.
	g.advance()
	return nil
}

// frameAccepts widens exact kind matching for the few frames that
// admit alternative responses.
func frameAccepts(f Frame, kind action.Kind) bool {
	if f.Kind == kind {
		return true
	}
	switch f.Kind {
	case action.ThinkerOrLead:
		// Leading directly answers the turn-start choice.
		return kind == action.LeadRole
	case action.PatronFromPool:
		return kind == action.PatronFromHand || kind == action.PatronFromDeck
	case action.ThinkerType:
		return kind == action.SkipThinker && f.Optional
	case action.Craftsman:
		return kind == action.UseFountain
	}
	return false
}

func (g *Game) dispatch(a action.GameAction) error {
	switch a.Kind {
	case action.ThinkerOrLead:
		return g.handleThinkerOrLead(a)
	case action.ThinkerType:
		return g.handleThinkerType(a)
	case action.SkipThinker:
		return g.handleSkipThinker(a)
	case action.UseLatrine:
		return g.handleUseLatrine(a)
	case action.UseVomitorium:
		return g.handleUseVomitorium(a)
	case action.LeadRole:
		return g.handleLeadRole(a)
	case action.FollowRole:
		return g.handleFollowRole(a)
	case action.Laborer:
		return g.handleLaborer(a)
	case action.Craftsman:
		return g.handleCraftsman(a)
	case action.UseFountain:
		return g.handleUseFountain(a)
	case action.Architect:
		return g.handleArchitect(a)
	case action.Merchant:
		return g.handleMerchant(a)
	case action.Legionary:
		return g.handleLegionary(a)
	case action.GiveCards:
		return g.handleGiveCards(a)
	case action.PatronFromPool, action.PatronFromHand, action.PatronFromDeck:
		return g.handlePatron(a)
	case action.UseSewer:
		return g.handleUseSewer(a)
	}
	return unexpected("unknown action kind %s", a.Kind)
}

// advance drives the turn lifecycle whenever the stack drains: first
// the role actions earned this turn, then the cleanup prompts, then
// the hand-over to the next leader.
func (g *Game) advance() {
	s := g.state
	for !s.Finished && len(s.Pending) == 0 {
		switch {
		case s.RoleLed != "" && !s.RolesScheduled:
			g.scheduleRoleActions()
		case !s.CleanupStarted:
			g.scheduleCleanup()
		default:
			g.finishTurn()
		}
	}
}

// ================== read-only queries ==================

// ExpectedAction returns the kind and actor on top of the stack.
func (g *Game) ExpectedAction() (action.Kind, int, bool) {
	top := g.state.top()
	if top == nil {
		return "", 0, false
	}
	return top.Kind, top.Player, true
}

// ExpectedPlayer returns whose move it is.
func (g *Game) ExpectedPlayer() (int, bool) {
	top := g.state.top()
	if top == nil {
		return 0, false
	}
	return top.Player, true
}

// Snapshot returns a structurally independent copy of the state.
// Mutating it never affects the game.
func (g *Game) Snapshot() *State {
	return g.state.DeepCopy()
}

// Finished reports whether the game has ended.
func (g *Game) Finished() bool {
	return g.state.Finished
}
