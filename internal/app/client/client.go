package client

import (
	"context"
	"fmt"
	"time"

	"portalsync/internal/domain/attendance"
	"portalsync/internal/domain/finance"
	"portalsync/internal/domain/inventory"
	"portalsync/internal/domain/leave"
	"portalsync/internal/domain/onboarding"
	"portalsync/internal/domain/staff"
	"portalsync/internal/gateway"
	"portalsync/internal/platform/config"
	"portalsync/internal/platform/metrics"
	"portalsync/internal/reports"
	"portalsync/internal/state"
)

// App wires the gateway and every entity controller. Each collection has
// exactly one writer (its controller); presentation code reads snapshots via
// the controllers and never mutates a collection directly.
type App struct {
	Config  config.Config
	Gateway *gateway.Client
	Metrics *metrics.Collector

	Staff        *state.Controller[staff.Staff]
	Leave        *state.WorkflowController[leave.LeaveRequest]
	Onboarding   *state.WorkflowController[onboarding.Checklist]
	Attendance   *state.Controller[attendance.Record]
	Transactions *state.Controller[finance.Transaction]
	Invoices     *state.WorkflowController[finance.Invoice]
	Products     *state.Controller[inventory.Product]
	Shipments    *state.WorkflowController[inventory.Shipment]
}

func New(cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	collector := metrics.New()
	gw, err := gateway.New(cfg.APIRoot, cfg.RequestTimeout, collector)
	if err != nil {
		return nil, err
	}
	if cfg.AuthToken != "" {
		gw.SetToken(cfg.AuthToken)
	}

	return &App{
		Config:  cfg,
		Gateway: gw,
		Metrics: collector,

		Staff:        state.NewController[staff.Staff](gw, staff.Resource),
		Leave:        state.NewWorkflowController[leave.LeaveRequest](gw, leave.Resource, leave.Machine(), leave.Actions()),
		Onboarding:   state.NewWorkflowController[onboarding.Checklist](gw, onboarding.Resource, onboarding.Machine(), onboarding.Actions()),
		Attendance:   state.NewController[attendance.Record](gw, attendance.Resource),
		Transactions: state.NewController[finance.Transaction](gw, finance.TransactionResource),
		Invoices:     state.NewWorkflowController[finance.Invoice](gw, finance.InvoiceResource, finance.InvoiceMachine(), finance.InvoiceActions()),
		Products:     state.NewController[inventory.Product](gw, inventory.ProductResource),
		Shipments:    state.NewWorkflowController[inventory.Shipment](gw, inventory.ShipmentResource, inventory.ShipmentMachine(), inventory.ShipmentActions()),
	}, nil
}

// Login authenticates against the remote API and installs the returned
// token on the gateway for all subsequent calls.
func (a *App) Login(ctx context.Context) error {
	if a.Config.LoginEmail == "" {
		return fmt.Errorf("login email not configured")
	}
	return a.Gateway.Login(ctx, a.Config.LoginEmail, a.Config.LoginPassword)
}

// AttendanceRate computes the per-day attendance series from the loaded
// staff and attendance collections. Records referencing staff no longer in
// the collection are excluded.
func (a *App) AttendanceRate(from, to time.Time) []attendance.DayRate {
	staffIDs := make(map[string]bool)
	for _, member := range a.Staff.All() {
		staffIDs[member.ID] = true
	}
	records := attendance.FilterKnown(a.Attendance.All(), staffIDs)
	return attendance.DailyRate(len(staffIDs), records, from, to)
}

// ExportAttendanceReport renders the attendance series for the range to a
// PDF under the configured report directory and returns the file path.
func (a *App) ExportAttendanceReport(from, to time.Time) (string, error) {
	series := a.AttendanceRate(from, to)
	return reports.AttendancePDF(a.Config.ReportDir, a.Staff.Len(), series)
}

// Dashboards builds the per-portal summary payloads from the loaded
// collections.
func (a *App) Dashboards() map[string]map[string]any {
	return map[string]map[string]any{
		"hr": reports.HRDashboard(
			a.Staff.Len(),
			reports.PendingLeave(a.Leave.All()),
			reports.InProgressOnboarding(a.Onboarding.All()),
		),
		"finance": reports.FinanceDashboard(
			reports.NetCashflow(a.Transactions.All()),
			reports.OverdueInvoices(a.Invoices.All()),
			a.Transactions.Len(),
		),
		"inventory": reports.InventoryDashboard(
			a.Products.Len(),
			reports.LowStock(a.Products.All(), 10),
			reports.InTransitShipments(a.Shipments.All()),
		),
	}
}
