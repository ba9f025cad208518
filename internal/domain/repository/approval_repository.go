package repository

import (
	"context"

	"github.com/jhoicas/Procurement-api/internal/domain/entity"
)

// ApprovalRepository puerto de persistencia para aprobaciones.
type ApprovalRepository interface {
	Create(ctx context.Context, a *entity.Approval) error
	GetByID(ctx context.Context, id string) (*entity.Approval, error)
	List(ctx context.Context, f ApprovalFilter) ([]*entity.Approval, error)
	// Decide guarda status, comments y approved_at de una aprobación.
	Decide(ctx context.Context, a *entity.Approval) error
}

// NotificationRepository puerto de persistencia para notificaciones.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	ListByUser(ctx context.Context, userID string, unreadOnly bool, page Page) ([]*entity.Notification, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	// MarkRead marca una notificación del usuario; ErrNotFound si no le pertenece.
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}
