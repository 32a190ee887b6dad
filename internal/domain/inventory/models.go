package inventory

import (
	"time"

	"portalsync/internal/state"
)

const (
	ProductResource  = "/Product"
	ShipmentResource = "/Shipment"
)

type Product struct {
	ID        string    `json:"id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	Warehouse string    `json:"warehouse"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p Product) RecordID() string { return p.ID }

func (p Product) Field(name string) string {
	switch name {
	case "category":
		return p.Category
	case "warehouse":
		return p.Warehouse
	default:
		return ""
	}
}

func (p Product) SearchFields() []string {
	return []string{p.Name, p.SKU, p.Category}
}

const (
	ShipmentStatusPending   = "Pending"
	ShipmentStatusInTransit = "InTransit"
	ShipmentStatusDelivered = "Delivered"
	ShipmentStatusCancelled = "Cancelled"
)

type Shipment struct {
	ID          string    `json:"id"`
	Reference   string    `json:"reference"`
	ProductID   string    `json:"productId"`
	Quantity    int       `json:"quantity"`
	Carrier     string    `json:"carrier"`
	Destination string    `json:"destination"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (s Shipment) RecordID() string     { return s.ID }
func (s Shipment) RecordStatus() string { return s.Status }

func (s Shipment) Field(name string) string {
	switch name {
	case "status":
		return s.Status
	case "carrier":
		return s.Carrier
	case "destination":
		return s.Destination
	default:
		return ""
	}
}

func (s Shipment) SearchFields() []string {
	return []string{s.Reference, s.Carrier, s.Destination}
}

// ShipmentMachine returns the shipment workflow. Cancellation is possible
// until delivery.
func ShipmentMachine() state.Machine {
	return state.NewMachine(map[string][]string{
		ShipmentStatusPending:   {ShipmentStatusInTransit, ShipmentStatusCancelled},
		ShipmentStatusInTransit: {ShipmentStatusDelivered, ShipmentStatusCancelled},
	})
}

func ShipmentActions() map[string]string {
	return map[string]string{
		ShipmentStatusInTransit: "dispatch",
		ShipmentStatusDelivered: "deliver",
		ShipmentStatusCancelled: "cancel",
	}
}
