package game

import (
	"glory-to-rome-backend/internal/game/action"
	"glory-to-rome-backend/internal/game/card"
	"glory-to-rome-backend/internal/game/player"
	"glory-to-rome-backend/internal/game/zone"
)

// DefaultInfluenceGoal is the victory threshold binaries use when the
// caller leaves Settings.InfluenceGoal unset.
const DefaultInfluenceGoal = 15

// Settings fixes everything about a game that is chosen before the
// first action.
type Settings struct {
	Players []string `json:"players"`
	Seed    int64    `json:"seed"`
	// InfluenceGoal ends the game when a player's influence reaches
	// it; 0 disables the threshold.
	InfluenceGoal int `json:"influence_goal"`
	// PoolDrainEnds enables the variant that ends the game when the
	// pool is empty after a Laborer action.
	PoolDrainEnds bool `json:"pool_drain_ends,omitempty"`
}

// Frame is one pending entry of the expected-action stack: which kind
// of action is owed, and by whom.
type Frame struct {
	Kind   action.Kind `json:"kind"`
	Player int         `json:"player"`
	// N is the demand allowance of a LEGIONARY frame.
	N int `json:"n,omitempty"`
	// Demander is the player whose demands a GIVECARDS frame answers.
	Demander int `json:"demander,omitempty"`
	// Optional marks a declinable THINKERTYPE (Academy's end-of-turn
	// thinker), satisfied by SKIPTHINKER.
	Optional bool `json:"optional,omitempty"`
	// FountainUsed marks a CRAFTSMAN frame whose one Fountain draw has
	// been taken.
	FountainUsed bool `json:"fountain_used,omitempty"`
}

// State is the authoritative game state. Handle is its only mutator.
type State struct {
	Settings Settings

	Turn    int
	Leader  int
	RoleLed card.Role

	Library  zone.Zone
	JackPile zone.Zone
	Pool     zone.Zone

	// Foundations counts the remaining in-town sites per material.
	Foundations map[card.Material]int

	Players []*player.Player

	// Pending is the expected-action stack; the last element is the
	// top. It is never empty while the game is ongoing.
	Pending []Frame

	// LegionaryCount is the demand allowance of the legionary frame
	// currently resolving, kept while demands are outstanding.
	LegionaryCount int

	// rolesScheduled and cleanupStarted track the turn phase so the
	// scheduler runs each stage exactly once per turn.
	RolesScheduled bool
	CleanupStarted bool

	Finished  bool
	EndReason string
	Scores    []int
	Winners   []int
}

func (s *State) top() *Frame {
	if len(s.Pending) == 0 {
		return nil
	}
	return &s.Pending[len(s.Pending)-1]
}

func (s *State) push(f Frame) {
	s.Pending = append(s.Pending, f)
}

func (s *State) pop() Frame {
	f := s.Pending[len(s.Pending)-1]
	s.Pending = s.Pending[:len(s.Pending)-1]
	return f
}

// pushAll pushes frames so that frames[0] ends up on top: callers list
// frames in execution order.
func (s *State) pushAll(frames []Frame) {
	for i := len(frames) - 1; i >= 0; i-- {
		s.push(frames[i])
	}
}

// DeepCopy returns a fully independent copy of the state.
func (s *State) DeepCopy() *State {
	cp := &State{
		Settings:       s.Settings,
		Turn:           s.Turn,
		Leader:         s.Leader,
		RoleLed:        s.RoleLed,
		Library:        s.Library.DeepCopy(),
		JackPile:       s.JackPile.DeepCopy(),
		Pool:           s.Pool.DeepCopy(),
		Foundations:    make(map[card.Material]int, len(s.Foundations)),
		Players:        make([]*player.Player, len(s.Players)),
		Pending:        make([]Frame, len(s.Pending)),
		LegionaryCount: s.LegionaryCount,
		RolesScheduled: s.RolesScheduled,
		CleanupStarted: s.CleanupStarted,
		Finished:       s.Finished,
		EndReason:      s.EndReason,
	}
	cp.Settings.Players = make([]string, len(s.Settings.Players))
	copy(cp.Settings.Players, s.Settings.Players)
	for m, n := range s.Foundations {
		cp.Foundations[m] = n
	}
	for i, p := range s.Players {
		cp.Players[i] = p.DeepCopy()
	}
	copy(cp.Pending, s.Pending)
	if s.Scores != nil {
		cp.Scores = make([]int, len(s.Scores))
		copy(cp.Scores, s.Scores)
	}
	if s.Winners != nil {
		cp.Winners = make([]int, len(s.Winners))
		copy(cp.Winners, s.Winners)
	}
	return cp
}
