package repository

import (
	"context"

	"github.com/jhoicas/Procurement-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para User.
type UserRepository interface {
	// Upsert inserta o actualiza por ID (sincronización con el proveedor de identidad).
	Upsert(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	ListByOrganization(ctx context.Context, organizationID string, page Page) ([]*entity.User, error)
}

// SessionRepository almacén de sesiones (tabla sessions).
type SessionRepository interface {
	Create(ctx context.Context, s *entity.Session) error
	Get(ctx context.Context, sid string) (*entity.Session, error)
	Delete(ctx context.Context, sid string) error
	// DeleteExpired borra las sesiones vencidas y devuelve cuántas eliminó.
	DeleteExpired(ctx context.Context) (int64, error)
}
