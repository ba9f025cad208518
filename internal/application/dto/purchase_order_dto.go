package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// POLineRequest línea de la orden.
type POLineRequest struct {
	ProductID    string          `json:"productId" validate:"required,uuid"`
	Quantity     decimal.Decimal `json:"quantity" swaggertype:"string"`
	UnitPrice    decimal.Decimal `json:"unitPrice" swaggertype:"string"`
	DeliveryDate *time.Time      `json:"deliveryDate"`
}

// CreatePurchaseOrderRequest alta de orden con sus líneas.
type CreatePurchaseOrderRequest struct {
	PONumber           string          `json:"poNumber" validate:"omitempty,max=50"`
	VendorID           string          `json:"vendorId" validate:"required,uuid"`
	RfxID              *string         `json:"rfxId" validate:"omitempty,uuid"`
	AuctionID          *string         `json:"auctionId" validate:"omitempty,uuid"`
	TermsAndConditions string          `json:"termsAndConditions"`
	DeliverySchedule   json.RawMessage `json:"deliverySchedule" swaggertype:"object"`
	PaymentTerms       string          `json:"paymentTerms"`
	Attachments        []string        `json:"attachments"`
	Lines              []POLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// POLineResponse salida de línea.
type POLineResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"productId"`
	Quantity     decimal.Decimal `json:"quantity" swaggertype:"string"`
	UnitPrice    decimal.Decimal `json:"unitPrice" swaggertype:"string"`
	TotalPrice   decimal.Decimal `json:"totalPrice" swaggertype:"string"`
	DeliveryDate *time.Time      `json:"deliveryDate"`
	Status       string          `json:"status"`
}

// PurchaseOrderResponse salida de orden de compra.
type PurchaseOrderResponse struct {
	ID                 string           `json:"id"`
	PONumber           string           `json:"poNumber"`
	VendorID           string           `json:"vendorId"`
	RfxID              *string          `json:"rfxId"`
	AuctionID          *string          `json:"auctionId"`
	TotalAmount        decimal.Decimal  `json:"totalAmount" swaggertype:"string"`
	Status             string           `json:"status"`
	TermsAndConditions string           `json:"termsAndConditions"`
	DeliverySchedule   json.RawMessage  `json:"deliverySchedule" swaggertype:"object"`
	PaymentTerms       string           `json:"paymentTerms"`
	Attachments        []string         `json:"attachments"`
	AcknowledgedAt     *time.Time       `json:"acknowledgedAt"`
	CreatedBy          *string          `json:"createdBy"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
	Lines              []POLineResponse `json:"lines,omitempty"`
}

// PurchaseOrderListQuery filtros de GET /api/purchase-orders.
type PurchaseOrderListQuery struct {
	VendorID string `query:"vendorId" validate:"omitempty,uuid"`
	Status   string `query:"status" validate:"omitempty,oneof=draft issued acknowledged shipped delivered invoiced paid cancelled"`
	PageRequest
}
