package attendance

import "time"

const Resource = "/Attendance"

// Record marks one staff member present or absent on one calendar date.
// The staff reference is soft: a record for an unknown staff member is
// tolerated and excluded from aggregates.
type Record struct {
	ID      string    `json:"id"`
	StaffID string    `json:"staffId"`
	Date    time.Time `json:"date"`
	Present bool      `json:"present"`
}

func (r Record) RecordID() string { return r.ID }

func (r Record) Field(name string) string {
	switch name {
	case "staffId":
		return r.StaffID
	default:
		return ""
	}
}

func (r Record) SearchFields() []string {
	return []string{r.StaffID}
}
