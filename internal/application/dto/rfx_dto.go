package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateRfxRequest alta de evento RFx. ReferenceNo vacío se genera.
type CreateRfxRequest struct {
	Title                string              `json:"title" validate:"required,min=1,max=200"`
	ReferenceNo          string              `json:"referenceNo" validate:"omitempty,max=50"`
	Type                 string              `json:"type" validate:"required,oneof=rfi rfp rfq"`
	Scope                string              `json:"scope"`
	Criteria             string              `json:"criteria"`
	DueDate              *time.Time          `json:"dueDate"`
	EvaluationParameters json.RawMessage     `json:"evaluationParameters" swaggertype:"object"`
	Attachments          []string            `json:"attachments"`
	BOMID                *string             `json:"bomId" validate:"omitempty,uuid"`
	ContactPerson        string              `json:"contactPerson"`
	Budget               decimal.NullDecimal `json:"budget" swaggertype:"string"`
}

// RfxResponseDTO salida de evento RFx.
type RfxResponseDTO struct {
	ID                   string              `json:"id"`
	Title                string              `json:"title"`
	ReferenceNo          string              `json:"referenceNo"`
	Type                 string              `json:"type"`
	Scope                string              `json:"scope"`
	Criteria             string              `json:"criteria"`
	DueDate              *time.Time          `json:"dueDate"`
	Status               string              `json:"status"`
	EvaluationParameters json.RawMessage     `json:"evaluationParameters" swaggertype:"object"`
	Attachments          []string            `json:"attachments"`
	BOMID                *string             `json:"bomId"`
	ContactPerson        string              `json:"contactPerson"`
	Budget               decimal.NullDecimal `json:"budget" swaggertype:"string"`
	CreatedBy            *string             `json:"createdBy"`
	CreatedAt            time.Time           `json:"createdAt"`
	UpdatedAt            time.Time           `json:"updatedAt"`
}

// RfxListQuery filtros de GET /api/rfx.
type RfxListQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=draft published active closed cancelled"`
	Type   string `query:"type" validate:"omitempty,oneof=rfi rfp rfq"`
	PageRequest
}

// InviteVendorsRequest invitación de proveedores a un evento.
type InviteVendorsRequest struct {
	VendorIDs []string `json:"vendorIds" validate:"required,min=1,dive,uuid"`
}

// InvitationStatusRequest cambio de estado de una invitación.
type InvitationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=invited viewed responded declined"`
}

// InvitationResponse salida de invitación.
type InvitationResponse struct {
	RfxID       string     `json:"rfxId"`
	VendorID    string     `json:"vendorId"`
	Status      string     `json:"status"`
	InvitedAt   time.Time  `json:"invitedAt"`
	RespondedAt *time.Time `json:"respondedAt"`
}

// SubmitRfxResponseRequest respuesta de un proveedor.
type SubmitRfxResponseRequest struct {
	VendorID      string              `json:"vendorId" validate:"required,uuid"`
	Response      json.RawMessage     `json:"response" swaggertype:"object"`
	QuotedPrice   decimal.NullDecimal `json:"quotedPrice" swaggertype:"string"`
	DeliveryTerms string              `json:"deliveryTerms"`
	PaymentTerms  string              `json:"paymentTerms"`
	LeadTime      *int                `json:"leadTime" validate:"omitempty,min=0"`
	Attachments   []string            `json:"attachments"`
}

// RfxSubmissionResponse salida de una respuesta RFx.
type RfxSubmissionResponse struct {
	ID            string              `json:"id"`
	RfxID         string              `json:"rfxId"`
	VendorID      string              `json:"vendorId"`
	Response      json.RawMessage     `json:"response" swaggertype:"object"`
	QuotedPrice   decimal.NullDecimal `json:"quotedPrice" swaggertype:"string"`
	DeliveryTerms string              `json:"deliveryTerms"`
	PaymentTerms  string              `json:"paymentTerms"`
	LeadTime      *int                `json:"leadTime"`
	Attachments   []string            `json:"attachments"`
	SubmittedAt   time.Time           `json:"submittedAt"`
}
