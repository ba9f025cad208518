package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Procurement-api/internal/application/dto"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
)

// NotificationUseCase bandeja de notificaciones por usuario.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// Create registra una notificación. Tipo por defecto info.
func (uc *NotificationUseCase) Create(ctx context.Context, in dto.NotificationRequest) (*dto.NotificationResponse, error) {
	n := &entity.Notification{
		ID:         uuid.New().String(),
		UserID:     in.UserID,
		Title:      in.Title,
		Message:    in.Message,
		Type:       in.Type,
		EntityType: in.EntityType,
		EntityID:   in.EntityID,
		CreatedAt:  time.Now(),
	}
	if n.Type == "" {
		n.Type = entity.NotificationInfo
	}
	if err := uc.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	out := toNotificationResponse(n)
	return &out, nil
}

// List notificaciones del usuario, más recientes primero.
func (uc *NotificationUseCase) List(ctx context.Context, userID string, q dto.NotificationListQuery) (*dto.ListResponse[dto.NotificationResponse], error) {
	q.DefaultPage()
	list, err := uc.repo.ListByUser(ctx, userID, q.Unread, q.Repo())
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, toNotificationResponse(n))
	}
	out := dto.NewListResponse(items, q.PageRequest)
	return &out, nil
}

// UnreadCount conteo para el badge del encabezado.
func (uc *NotificationUseCase) UnreadCount(ctx context.Context, userID string) (*dto.CountResponse, error) {
	n, err := uc.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.CountResponse{Count: int64(n)}, nil
}

// MarkRead marca una notificación propia como leída; ErrNotFound si no es del usuario.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, userID, id string) error {
	return uc.repo.MarkRead(ctx, userID, id)
}

// MarkAllRead marca todas como leídas y devuelve cuántas cambiaron.
func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) (*dto.CountResponse, error) {
	n, err := uc.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.CountResponse{Count: n}, nil
}

func toNotificationResponse(n *entity.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:         n.ID,
		UserID:     n.UserID,
		Title:      n.Title,
		Message:    n.Message,
		Type:       n.Type,
		IsRead:     n.IsRead,
		EntityType: n.EntityType,
		EntityID:   n.EntityID,
		CreatedAt:  n.CreatedAt,
	}
}
