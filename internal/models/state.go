package models

import "strings"

// State is the lifecycle position of a work item
type State string

const (
	StateNew      State = "New"
	StateActive   State = "Active"
	StateResolved State = "Resolved"
	StateClosed   State = "Closed"
	StateRemoved  State = "Removed"
)

// States lists every state in lifecycle order
var States = []State{StateNew, StateActive, StateResolved, StateClosed, StateRemoved}

// String implements fmt.Stringer
func (s State) String() string {
	return string(s)
}

// Valid reports whether s is one of the known states
func (s State) Valid() bool {
	for _, known := range States {
		if s == known {
			return true
		}
	}
	return false
}

// ParseState resolves a state name case-insensitively
func ParseState(name string) (State, error) {
	for _, known := range States {
		if strings.EqualFold(string(known), strings.TrimSpace(name)) {
			return known, nil
		}
	}
	return "", ErrUnknownState
}
