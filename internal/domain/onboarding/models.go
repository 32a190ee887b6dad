package onboarding

import (
	"time"

	"portalsync/internal/state"
)

const Resource = "/Onboarding"

const (
	StatusNotStarted = "NotStarted"
	StatusInProgress = "InProgress"
	StatusCompleted  = "Completed"
)

// Checklist tracks one new hire's onboarding progress.
type Checklist struct {
	ID        string    `json:"id"`
	StaffID   string    `json:"staffId"`
	Mentor    string    `json:"mentor"`
	StartDate time.Time `json:"startDate"`
	TaskCount int       `json:"taskCount"`
	TasksDone int       `json:"tasksDone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c Checklist) RecordID() string     { return c.ID }
func (c Checklist) RecordStatus() string { return c.Status }

func (c Checklist) Field(name string) string {
	switch name {
	case "status":
		return c.Status
	case "staffId":
		return c.StaffID
	case "mentor":
		return c.Mentor
	default:
		return ""
	}
}

func (c Checklist) SearchFields() []string {
	return []string{c.StaffID, c.Mentor}
}

// Machine returns the onboarding workflow. NotStarted may jump straight to
// Completed for administrative sign-off.
func Machine() state.Machine {
	return state.NewMachine(map[string][]string{
		StatusNotStarted: {StatusInProgress, StatusCompleted},
		StatusInProgress: {StatusCompleted},
	})
}

func Actions() map[string]string {
	return map[string]string{
		StatusInProgress: "start",
		StatusCompleted:  "complete",
	}
}
