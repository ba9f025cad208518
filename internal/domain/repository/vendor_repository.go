package repository

import (
	"context"

	"github.com/jhoicas/Procurement-api/internal/domain/entity"
)

// VendorRepository puerto de persistencia para Vendor.
type VendorRepository interface {
	Create(ctx context.Context, v *entity.Vendor) error
	GetByID(ctx context.Context, id string) (*entity.Vendor, error)
	// GetByUserID proveedor vinculado a un usuario de login; nil si no hay.
	GetByUserID(ctx context.Context, userID string) (*entity.Vendor, error)
	List(ctx context.Context, f VendorFilter) ([]*entity.Vendor, error)
	Update(ctx context.Context, v *entity.Vendor) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
