package leave

import (
	"time"

	"portalsync/internal/state"
)

const Resource = "/LeaveRequest"

const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
	StatusCancelled = "Cancelled"
)

type LeaveRequest struct {
	ID        string    `json:"id"`
	StaffID   string    `json:"staffId"`
	Type      string    `json:"type"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Days      float64   `json:"days"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r LeaveRequest) RecordID() string     { return r.ID }
func (r LeaveRequest) RecordStatus() string { return r.Status }

func (r LeaveRequest) Field(name string) string {
	switch name {
	case "status":
		return r.Status
	case "type":
		return r.Type
	case "staffId":
		return r.StaffID
	default:
		return ""
	}
}

func (r LeaveRequest) SearchFields() []string {
	return []string{r.Reason, r.StaffID, r.Type}
}

// Machine returns the leave request workflow: pending requests may be
// approved, rejected or cancelled; all three outcomes are terminal.
func Machine() state.Machine {
	return state.NewMachine(map[string][]string{
		StatusPending: {StatusApproved, StatusRejected, StatusCancelled},
	})
}

// Actions maps each target status to its dedicated endpoint.
func Actions() map[string]string {
	return map[string]string{
		StatusApproved:  "approve",
		StatusRejected:  "reject",
		StatusCancelled: "cancel",
	}
}
