package entity

import "time"

// Tipos de entidad aprobables.
const (
	ApprovalEntityVendor = "vendor"
	ApprovalEntityRfx    = "rfx"
	ApprovalEntityPO     = "po"
	ApprovalEntityBudget = "budget"
)

// Estados de Approval.
const (
	ApprovalStatusPending  = "pending"
	ApprovalStatusApproved = "approved"
	ApprovalStatusRejected = "rejected"
)

// Approval registro polimórfico: (EntityType, EntityID) apunta a la entidad aprobada.
type Approval struct {
	ID         string
	EntityType string
	EntityID   string
	ApproverID string
	Status     string
	Comments   string
	ApprovedAt *time.Time
	CreatedAt  time.Time
}
