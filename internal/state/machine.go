package state

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("invalid transition")

// Machine is a status transition table for one workflow entity type. A
// status missing from the table, or mapped to an empty set, is terminal.
type Machine struct {
	transitions map[string][]string
}

func NewMachine(transitions map[string][]string) Machine {
	return Machine{transitions: transitions}
}

// Allowed reports whether target is directly reachable from current.
func (m Machine) Allowed(current, target string) bool {
	for _, next := range m.transitions[current] {
		if next == target {
			return true
		}
	}
	return false
}

// Terminal reports whether the given status accepts no further transitions.
func (m Machine) Terminal(status string) bool {
	return len(m.transitions[status]) == 0
}

// Check returns ErrInvalidTransition when target is not reachable from
// current.
func (m Machine) Check(current, target string) error {
	if !m.Allowed(current, target) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, current, target)
	}
	return nil
}
