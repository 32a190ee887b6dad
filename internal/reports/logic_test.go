package reports

import (
	"testing"

	"portalsync/internal/domain/finance"
	"portalsync/internal/domain/inventory"
	"portalsync/internal/domain/leave"
	"portalsync/internal/domain/onboarding"
)

func TestPendingLeave(t *testing.T) {
	requests := []leave.LeaveRequest{
		{ID: "1", Status: leave.StatusPending},
		{ID: "2", Status: leave.StatusApproved},
		{ID: "3", Status: leave.StatusPending},
	}
	if got := PendingLeave(requests); got != 2 {
		t.Fatalf("expected 2 pending, got %d", got)
	}
}

func TestInProgressOnboarding(t *testing.T) {
	checklists := []onboarding.Checklist{
		{ID: "1", Status: onboarding.StatusInProgress},
		{ID: "2", Status: onboarding.StatusCompleted},
	}
	if got := InProgressOnboarding(checklists); got != 1 {
		t.Fatalf("expected 1 in progress, got %d", got)
	}
}

func TestOverdueInvoicesAndCashflow(t *testing.T) {
	invoices := []finance.Invoice{
		{ID: "1", Status: finance.InvoiceStatusOverdue},
		{ID: "2", Status: finance.InvoiceStatusPaid},
	}
	if got := OverdueInvoices(invoices); got != 1 {
		t.Fatalf("expected 1 overdue, got %d", got)
	}

	transactions := []finance.Transaction{
		{ID: "1", Type: "income", Amount: 100},
		{ID: "2", Type: "expense", Amount: 40},
		{ID: "3", Type: "transfer", Amount: 999},
	}
	if got := NetCashflow(transactions); got != 60 {
		t.Fatalf("expected net 60, got %v", got)
	}
}

func TestLowStockAndInTransit(t *testing.T) {
	products := []inventory.Product{
		{ID: "1", Stock: 3},
		{ID: "2", Stock: 50},
	}
	if got := LowStock(products, 10); got != 1 {
		t.Fatalf("expected 1 low stock, got %d", got)
	}

	shipments := []inventory.Shipment{
		{ID: "1", Status: inventory.ShipmentStatusInTransit},
		{ID: "2", Status: inventory.ShipmentStatusDelivered},
	}
	if got := InTransitShipments(shipments); got != 1 {
		t.Fatalf("expected 1 in transit, got %d", got)
	}
}

func TestHRDashboard(t *testing.T) {
	payload := HRDashboard(12, 3, 2)
	if payload["headcount"].(int) != 12 {
		t.Fatal("unexpected headcount")
	}
	if payload["pendingLeave"].(int) != 3 {
		t.Fatal("unexpected pending leave")
	}
	if payload["onboardingInProgress"].(int) != 2 {
		t.Fatal("unexpected onboarding count")
	}
}

func TestFinanceDashboard(t *testing.T) {
	payload := FinanceDashboard(1200.5, 4, 9)
	if payload["netCashflow"].(float64) != 1200.5 {
		t.Fatal("unexpected cashflow")
	}
	if payload["overdueInvoices"].(int) != 4 {
		t.Fatal("unexpected overdue count")
	}
	if payload["transactionCount"].(int) != 9 {
		t.Fatal("unexpected transaction count")
	}
}

func TestInventoryDashboard(t *testing.T) {
	payload := InventoryDashboard(30, 5, 2)
	if payload["productCount"].(int) != 30 {
		t.Fatal("unexpected product count")
	}
	if payload["lowStock"].(int) != 5 {
		t.Fatal("unexpected low stock")
	}
	if payload["inTransit"].(int) != 2 {
		t.Fatal("unexpected in transit")
	}
}
