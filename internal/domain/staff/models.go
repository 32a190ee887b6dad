package staff

import "time"

const Resource = "/Staff"

type Staff struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Department string    `json:"department"`
	Position   string    `json:"position"`
	Location   string    `json:"location"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (s Staff) RecordID() string { return s.ID }

func (s Staff) Field(name string) string {
	switch name {
	case "department":
		return s.Department
	case "position":
		return s.Position
	case "location":
		return s.Location
	default:
		return ""
	}
}

func (s Staff) SearchFields() []string {
	return []string{s.FirstName, s.LastName, s.Email, s.Position}
}
