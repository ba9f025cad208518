package dto

import "time"

// CreateApprovalRequest solicitud de aprobación.
type CreateApprovalRequest struct {
	EntityType string `json:"entityType" validate:"required,oneof=vendor rfx po budget"`
	EntityID   string `json:"entityId" validate:"required,max=255"`
	ApproverID string `json:"approverId" validate:"required"`
	Comments   string `json:"comments"`
}

// DecideApprovalRequest decisión del aprobador.
type DecideApprovalRequest struct {
	Status   string `json:"status" validate:"required,oneof=approved rejected"`
	Comments string `json:"comments"`
}

// ApprovalResponse salida de aprobación.
type ApprovalResponse struct {
	ID         string     `json:"id"`
	EntityType string     `json:"entityType"`
	EntityID   string     `json:"entityId"`
	ApproverID string     `json:"approverId"`
	Status     string     `json:"status"`
	Comments   string     `json:"comments"`
	ApprovedAt *time.Time `json:"approvedAt"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// ApprovalListQuery filtros de GET /api/approvals. Mine=true limita al usuario actual.
type ApprovalListQuery struct {
	Mine       bool   `query:"mine"`
	Status     string `query:"status" validate:"omitempty,oneof=pending approved rejected"`
	EntityType string `query:"entityType" validate:"omitempty,oneof=vendor rfx po budget"`
	EntityID   string `query:"entityId"`
	PageRequest
}

// NotificationRequest alta manual de notificación.
type NotificationRequest struct {
	UserID     string  `json:"userId" validate:"required"`
	Title      string  `json:"title" validate:"required,max=200"`
	Message    string  `json:"message" validate:"required"`
	Type       string  `json:"type" validate:"omitempty,oneof=info warning success error"`
	EntityType string  `json:"entityType"`
	EntityID   *string `json:"entityId"`
}

// NotificationResponse salida de notificación.
type NotificationResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	IsRead     bool      `json:"isRead"`
	EntityType string    `json:"entityType"`
	EntityID   *string   `json:"entityId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NotificationListQuery filtros de GET /api/notifications.
type NotificationListQuery struct {
	Unread bool `query:"unread"`
	PageRequest
}
