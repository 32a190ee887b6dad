package state

import (
	"errors"
	"testing"
)

func testMachine() Machine {
	return NewMachine(map[string][]string{
		"Pending": {"Approved", "Rejected"},
	})
}

func TestMachineAllowed(t *testing.T) {
	m := testMachine()
	if !m.Allowed("Pending", "Approved") {
		t.Fatal("expected Pending to Approved to be legal")
	}
	if m.Allowed("Approved", "Pending") {
		t.Fatal("expected terminal state to accept no transitions")
	}
	if m.Allowed("Pending", "Pending") {
		t.Fatal("expected self transition to be illegal")
	}
}

func TestMachineTerminal(t *testing.T) {
	m := testMachine()
	if m.Terminal("Pending") {
		t.Fatal("Pending should not be terminal")
	}
	if !m.Terminal("Approved") || !m.Terminal("Rejected") {
		t.Fatal("outcome states should be terminal")
	}
}

func TestMachineCheck(t *testing.T) {
	m := testMachine()
	if err := m.Check("Pending", "Rejected"); err != nil {
		t.Fatalf("expected legal transition, got %v", err)
	}
	err := m.Check("Rejected", "Pending")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}
