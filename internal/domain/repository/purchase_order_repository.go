package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Procurement-api/internal/domain/entity"
)

// PurchaseOrderRepository puerto de persistencia para órdenes de compra y sus líneas.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *entity.PurchaseOrder) error
	AddLine(ctx context.Context, line *entity.POLineItem) error
	GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	ListLines(ctx context.Context, poID string) ([]*entity.POLineItem, error)
	List(ctx context.Context, f PurchaseOrderFilter) ([]*entity.PurchaseOrder, error)
	// UpdateStatus cambia el estado; acknowledgedAt solo se escribe si no es nil.
	UpdateStatus(ctx context.Context, id, status string, acknowledgedAt *time.Time) error
	Delete(ctx context.Context, id string) error
}
