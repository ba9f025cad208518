package entity

import "time"

// Tipos de Notification.
const (
	NotificationInfo    = "info"
	NotificationWarning = "warning"
	NotificationSuccess = "success"
	NotificationError   = "error"
)

// Notification mensaje para un usuario (solo persistencia; la entrega no es de este servicio).
type Notification struct {
	ID         string
	UserID     string
	Title      string
	Message    string
	Type       string
	IsRead     bool
	EntityType string
	EntityID   *string
	CreatedAt  time.Time
}
