package leave

import (
	"errors"
	"time"
)

// RequestDays returns the inclusive day count a draft request spans. The
// client fills Days before submitting; the server-returned record remains
// authoritative.
func RequestDays(start, end time.Time) (float64, error) {
	if end.Before(start) {
		return 0, errors.New("end date before start date")
	}
	return end.Sub(start).Hours()/24 + 1, nil
}

// NewDraft builds a leave request draft ready for Create. Identifier and
// status stay empty: both are server-assigned on settlement.
func NewDraft(staffID, leaveType, reason string, start, end time.Time) (LeaveRequest, error) {
	days, err := RequestDays(start, end)
	if err != nil {
		return LeaveRequest{}, err
	}
	return LeaveRequest{
		StaffID:   staffID,
		Type:      leaveType,
		StartDate: start,
		EndDate:   end,
		Days:      days,
		Reason:    reason,
	}, nil
}
