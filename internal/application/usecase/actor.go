package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Procurement-api/internal/domain"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
)

// Actor usuario autenticado que ejecuta la operación (claims del token).
type Actor struct {
	UserID string
	Role   string
}

// actingVendor proveedor en nombre del cual se opera. Un usuario vendor solo puede actuar
// por el proveedor vinculado a su cuenta; los roles internos usan el vendorId recibido.
func actingVendor(ctx context.Context, vendors repository.VendorRepository, a Actor, requested string) (string, error) {
	if a.Role != entity.RoleVendor {
		return requested, nil
	}
	v, err := vendors.GetByUserID(ctx, a.UserID)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", fmt.Errorf("%w: el usuario no está vinculado a un proveedor", domain.ErrForbidden)
	}
	if requested != v.ID {
		return "", fmt.Errorf("%w: no puede operar como otro proveedor", domain.ErrForbidden)
	}
	return v.ID, nil
}
