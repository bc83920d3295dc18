package game

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why an action was rejected.
type ErrorKind string

const (
	// ErrUnexpectedAction means the kind or actor does not match the
	// top of the expected-action stack.
	ErrUnexpectedAction ErrorKind = "UnexpectedAction"
	// ErrIllegalPayload means the payload is malformed or references
	// cards that are not in the zone it claims.
	ErrIllegalPayload ErrorKind = "IllegalPayload"
	// ErrRuleViolation means the payload is well-formed but breaks a
	// game rule.
	ErrRuleViolation ErrorKind = "RuleViolation"
	// ErrEmptySource means a draw was attempted from an exhausted pile.
	ErrEmptySource ErrorKind = "EmptySource"
	// ErrGameOver means the game has ended and accepts no actions.
	ErrGameOver ErrorKind = "GameOver"
)

// Error is the typed rejection every failed Handle call returns. A
// returned Error guarantees the state was left untouched.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// KindOf extracts the error kind, or "" for nil and foreign errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func unexpected(format string, args ...any) *Error {
	return &Error{Kind: ErrUnexpectedAction, Message: fmt.Sprintf(format, args...)}
}

func illegalPayload(format string, args ...any) *Error {
	return &Error{Kind: ErrIllegalPayload, Message: fmt.Sprintf(format, args...)}
}

func ruleViolation(format string, args ...any) *Error {
	return &Error{Kind: ErrRuleViolation, Message: fmt.Sprintf(format, args...)}
}

func emptySource(format string, args ...any) *Error {
	return &Error{Kind: ErrEmptySource, Message: fmt.Sprintf(format, args...)}
}

func gameOver(format string, args ...any) *Error {
	return &Error{Kind: ErrGameOver, Message: fmt.Sprintf(format, args...)}
}
