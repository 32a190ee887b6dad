package finance

import (
	"time"

	"portalsync/internal/state"
)

const (
	TransactionResource = "/Transaction"
	InvoiceResource     = "/Invoice"
)

type Transaction struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (t Transaction) RecordID() string { return t.ID }

func (t Transaction) Field(name string) string {
	switch name {
	case "category":
		return t.Category
	case "type":
		return t.Type
	default:
		return ""
	}
}

func (t Transaction) SearchFields() []string {
	return []string{t.Description, t.Category}
}

const (
	InvoiceStatusPending   = "Pending"
	InvoiceStatusOverdue   = "Overdue"
	InvoiceStatusPaid      = "Paid"
	InvoiceStatusCancelled = "Cancelled"
)

type Invoice struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	Customer  string    `json:"customer"`
	Amount    float64   `json:"amount"`
	IssuedAt  time.Time `json:"issuedAt"`
	DueAt     time.Time `json:"dueAt"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (i Invoice) RecordID() string     { return i.ID }
func (i Invoice) RecordStatus() string { return i.Status }

func (i Invoice) Field(name string) string {
	switch name {
	case "status":
		return i.Status
	case "customer":
		return i.Customer
	default:
		return ""
	}
}

func (i Invoice) SearchFields() []string {
	return []string{i.Number, i.Customer}
}

// InvoiceMachine returns the invoice workflow. Overdue is an escalation, not
// a terminal state: an overdue invoice can still be paid or cancelled.
func InvoiceMachine() state.Machine {
	return state.NewMachine(map[string][]string{
		InvoiceStatusPending: {InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled},
		InvoiceStatusOverdue: {InvoiceStatusPaid, InvoiceStatusCancelled},
	})
}

func InvoiceActions() map[string]string {
	return map[string]string{
		InvoiceStatusPaid:      "pay",
		InvoiceStatusOverdue:   "overdue",
		InvoiceStatusCancelled: "cancel",
	}
}
