package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de PurchaseOrder.
const (
	POStatusDraft        = "draft"
	POStatusIssued       = "issued"
	POStatusAcknowledged = "acknowledged"
	POStatusShipped      = "shipped"
	POStatusDelivered    = "delivered"
	POStatusInvoiced     = "invoiced"
	POStatusPaid         = "paid"
	POStatusCancelled    = "cancelled"
)

// Estados de POLineItem.
const (
	LineStatusPending   = "pending"
	LineStatusShipped   = "shipped"
	LineStatusDelivered = "delivered"
)

// PurchaseOrder orden de compra emitida a un proveedor. RfxID/AuctionID indican su origen.
type PurchaseOrder struct {
	ID                 string
	PONumber           string
	VendorID           string
	RfxID              *string
	AuctionID          *string
	TotalAmount        decimal.Decimal
	Status             string
	TermsAndConditions string
	DeliverySchedule   json.RawMessage
	PaymentTerms       string
	Attachments        []string
	AcknowledgedAt     *time.Time
	CreatedBy          *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// POLineItem línea de la orden.
type POLineItem struct {
	ID           string
	POID         string
	ProductID    string
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	TotalPrice   decimal.Decimal
	DeliveryDate *time.Time
	Status       string
}
