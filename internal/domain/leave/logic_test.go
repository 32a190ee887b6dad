package leave

import (
	"testing"
	"time"
)

func TestRequestDays(t *testing.T) {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	days, err := RequestDays(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 3 {
		t.Fatalf("expected 3 inclusive days, got %v", days)
	}

	if _, err := RequestDays(end, start); err == nil {
		t.Fatal("expected error for inverted range")
	}
}

func TestNewDraftLeavesIdentifierAndStatusEmpty(t *testing.T) {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	draft, err := NewDraft("st-1", "Annual", "Family trip", start, start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.ID != "" || draft.Status != "" {
		t.Fatalf("expected empty id and status on draft, got %+v", draft)
	}
	if draft.Days != 1 {
		t.Fatalf("expected single day, got %v", draft.Days)
	}
}
