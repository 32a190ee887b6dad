package reports

import (
	"portalsync/internal/domain/finance"
	"portalsync/internal/domain/inventory"
	"portalsync/internal/domain/leave"
	"portalsync/internal/domain/onboarding"
)

func PendingLeave(requests []leave.LeaveRequest) int {
	count := 0
	for _, req := range requests {
		if req.Status == leave.StatusPending {
			count++
		}
	}
	return count
}

func InProgressOnboarding(checklists []onboarding.Checklist) int {
	count := 0
	for _, c := range checklists {
		if c.Status == onboarding.StatusInProgress {
			count++
		}
	}
	return count
}

func OverdueInvoices(invoices []finance.Invoice) int {
	count := 0
	for _, inv := range invoices {
		if inv.Status == finance.InvoiceStatusOverdue {
			count++
		}
	}
	return count
}

func LowStock(products []inventory.Product, threshold int) int {
	count := 0
	for _, p := range products {
		if p.Stock < threshold {
			count++
		}
	}
	return count
}

func InTransitShipments(shipments []inventory.Shipment) int {
	count := 0
	for _, s := range shipments {
		if s.Status == inventory.ShipmentStatusInTransit {
			count++
		}
	}
	return count
}

// NetCashflow sums income transactions minus expense transactions.
func NetCashflow(transactions []finance.Transaction) float64 {
	total := 0.0
	for _, tx := range transactions {
		switch tx.Type {
		case "income":
			total += tx.Amount
		case "expense":
			total -= tx.Amount
		}
	}
	return total
}

func HRDashboard(headcount, pendingLeave, onboardingInProgress int) map[string]any {
	return map[string]any{
		"headcount":            headcount,
		"pendingLeave":         pendingLeave,
		"onboardingInProgress": onboardingInProgress,
	}
}

func FinanceDashboard(netCashflow float64, overdueInvoices, transactionCount int) map[string]any {
	return map[string]any{
		"netCashflow":      netCashflow,
		"overdueInvoices":  overdueInvoices,
		"transactionCount": transactionCount,
	}
}

func InventoryDashboard(productCount, lowStock, inTransit int) map[string]any {
	return map[string]any{
		"productCount": productCount,
		"lowStock":     lowStock,
		"inTransit":    inTransit,
	}
}
