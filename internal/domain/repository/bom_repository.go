package repository

import (
	"context"

	"github.com/jhoicas/Procurement-api/internal/domain/entity"
)

// BOMRepository puerto de persistencia para BOM y sus ítems.
type BOMRepository interface {
	Create(ctx context.Context, b *entity.BOM) error
	GetByID(ctx context.Context, id string) (*entity.BOM, error)
	List(ctx context.Context, page Page) ([]*entity.BOM, error)
	Update(ctx context.Context, b *entity.BOM) error
	// Delete elimina la BOM; los ítems caen por ON DELETE CASCADE.
	Delete(ctx context.Context, id string) error

	AddItem(ctx context.Context, item *entity.BOMItem) error
	ListItems(ctx context.Context, bomID string) ([]*entity.BOMItem, error)
	DeleteItem(ctx context.Context, bomID, itemID string) error
}
