package events

// GameCreatedEvent is published when a new game session is created.
type GameCreatedEvent struct {
	GameID  string
	Players []string
	Seed    int64
}

// ActionAppliedEvent is published after Handle accepts an action.
type ActionAppliedEvent struct {
	GameID string
	Kind   string
	Player int
}

// ActionRejectedEvent is published after Handle rejects an action.
type ActionRejectedEvent struct {
	GameID string
	Kind   string
	Player int
	Reason string
}

// GameEndedEvent is published when end-of-game evaluation runs.
type GameEndedEvent struct {
	GameID  string
	Reason  string
	Winners []int
	Scores  []int
}
