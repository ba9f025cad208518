package repository

import (
	"context"

	"github.com/jhoicas/Procurement-api/internal/domain/entity"
)

// OrganizationRepository puerto de persistencia para Organization.
type OrganizationRepository interface {
	Create(ctx context.Context, org *entity.Organization) error
	GetByID(ctx context.Context, id string) (*entity.Organization, error)
	Update(ctx context.Context, org *entity.Organization) error
	List(ctx context.Context, page Page) ([]*entity.Organization, error)
}
