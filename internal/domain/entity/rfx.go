package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de evento RFx.
const (
	RfxTypeRFI = "rfi"
	RfxTypeRFP = "rfp"
	RfxTypeRFQ = "rfq"
)

// Estados de RfxEvent.
const (
	RfxStatusDraft     = "draft"
	RfxStatusPublished = "published"
	RfxStatusActive    = "active"
	RfxStatusClosed    = "closed"
	RfxStatusCancelled = "cancelled"
)

// Estados de RfxInvitation.
const (
	InvitationStatusInvited   = "invited"
	InvitationStatusViewed    = "viewed"
	InvitationStatusResponded = "responded"
	InvitationStatusDeclined  = "declined"
)

// RfxEvent evento de sourcing (RFI/RFP/RFQ), opcionalmente ligado a una BOM.
type RfxEvent struct {
	ID                   string
	Title                string
	ReferenceNo          string
	Type                 string
	Scope                string
	Criteria             string
	DueDate              *time.Time
	Status               string
	EvaluationParameters json.RawMessage
	Attachments          []string
	BOMID                *string
	ContactPerson        string
	Budget               decimal.NullDecimal
	CreatedBy            *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// AcceptsResponses indica si el evento admite respuestas de proveedores.
func (e *RfxEvent) AcceptsResponses() bool {
	return e.Status == RfxStatusPublished || e.Status == RfxStatusActive
}

// RfxInvitation una fila por proveedor invitado a un evento (PK compuesta).
type RfxInvitation struct {
	RfxID       string
	VendorID    string
	Status      string
	InvitedAt   time.Time
	RespondedAt *time.Time
}

// RfxResponse oferta de un proveedor contra un evento.
type RfxResponse struct {
	ID            string
	RfxID         string
	VendorID      string
	Response      json.RawMessage
	QuotedPrice   decimal.NullDecimal
	DeliveryTerms string
	PaymentTerms  string
	LeadTime      *int // días
	Attachments   []string
	SubmittedAt   time.Time
}
