package action

import (
	"encoding/json"
	"fmt"

	"glory-to-rome-backend/internal/game/card"
)

// Kind is the wire token naming what a GameAction does.
type Kind string

const (
	ThinkerOrLead  Kind = "THINKERORLEAD"
	ThinkerType    Kind = "THINKERTYPE"
	SkipThinker    Kind = "SKIPTHINKER"
	LeadRole       Kind = "LEADROLE"
	FollowRole     Kind = "FOLLOWROLE"
	Laborer        Kind = "LABORER"
	Craftsman      Kind = "CRAFTSMAN"
	Architect      Kind = "ARCHITECT"
	Merchant       Kind = "MERCHANT"
	Legionary      Kind = "LEGIONARY"
	PatronFromPool Kind = "PATRONFROMPOOL"
	PatronFromHand Kind = "PATRONFROMHAND"
	PatronFromDeck Kind = "PATRONFROMDECK"
	GiveCards      Kind = "GIVECARDS"
	UseLatrine     Kind = "USELATRINE"
	UseVomitorium  Kind = "USEVOMITORIUM"
	UseSewer       Kind = "USESEWER"
	UseFountain    Kind = "USEFOUNTAIN"
)

// GameAction is the single message type the engine consumes. Args are
// kind-specific: booleans and integers as native JSON scalars, card
// identities as "Name#N" strings, absent optionals as "".
type GameAction struct {
	Kind   Kind  `json:"kind"`
	Player int   `json:"player"`
	Args   []any `json:"args"`
}

// New builds an action in memory. Args take the same scalar types the
// JSON decoder would produce.
func New(kind Kind, player int, args ...any) GameAction {
	return GameAction{Kind: kind, Player: player, Args: args}
}

// Decode parses an action from its wire form.
func Decode(raw []byte) (GameAction, error) {
	var a GameAction
	if err := json.Unmarshal(raw, &a); err != nil {
		return GameAction{}, fmt.Errorf("malformed action: %w", err)
	}
	if a.Kind == "" {
		return GameAction{}, fmt.Errorf("malformed action: missing kind")
	}
	if a.Player < 0 {
		return GameAction{}, fmt.Errorf("malformed action: negative player index")
	}
	return a, nil
}

// Encode renders the wire form.
func (a GameAction) Encode() ([]byte, error) {
	return json.Marshal(a)
}

func (a GameAction) String() string {
	return fmt.Sprintf("%s(player=%d, args=%v)", a.Kind, a.Player, a.Args)
}

// ================== arg accessors ==================
//
// JSON numbers arrive as float64 and in-memory constructors pass int;
// the accessors absorb both so handlers never type-switch.

func (a GameAction) str(i int) (string, error) {
	if i >= len(a.Args) {
		return "", fmt.Errorf("arg %d missing", i)
	}
	s, ok := a.Args[i].(string)
	if !ok {
		return "", fmt.Errorf("arg %d: expected string, got %T", i, a.Args[i])
	}
	return s, nil
}

func (a GameAction) boolean(i int) (bool, error) {
	if i >= len(a.Args) {
		return false, fmt.Errorf("arg %d missing", i)
	}
	b, ok := a.Args[i].(bool)
	if !ok {
		return false, fmt.Errorf("arg %d: expected bool, got %T", i, a.Args[i])
	}
	return b, nil
}

func (a GameAction) integer(i int) (int, error) {
	if i >= len(a.Args) {
		return 0, fmt.Errorf("arg %d missing", i)
	}
	switch v := a.Args[i].(type) {
	case int:
		return v, nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("arg %d: expected integer, got %v", i, v)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("arg %d: expected integer, got %T", i, a.Args[i])
	}
}

func (a GameAction) cardAt(i int) (card.ID, error) {
	s, err := a.str(i)
	if err != nil {
		return card.ID{}, err
	}
	return card.Parse(s)
}

// optionalCardAt treats "" and a missing trailing arg as absent.
func (a GameAction) optionalCardAt(i int) (*card.ID, error) {
	if i >= len(a.Args) {
		return nil, nil
	}
	s, err := a.str(i)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	id, err := card.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// cardsFrom parses every arg from index i to the end as a card.
func (a GameAction) cardsFrom(i int) ([]card.ID, error) {
	out := make([]card.ID, 0, len(a.Args)-i)
	for ; i < len(a.Args); i++ {
		id, err := a.cardAt(i)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
