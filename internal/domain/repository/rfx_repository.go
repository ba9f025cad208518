package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Procurement-api/internal/domain/entity"
)

// RfxRepository puerto de persistencia para eventos RFx, invitaciones y respuestas.
type RfxRepository interface {
	Create(ctx context.Context, e *entity.RfxEvent) error
	GetByID(ctx context.Context, id string) (*entity.RfxEvent, error)
	List(ctx context.Context, f RfxFilter) ([]*entity.RfxEvent, error)
	Update(ctx context.Context, e *entity.RfxEvent) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error

	// Invite es idempotente sobre (rfx_id, vendor_id). Devuelve true si creó la fila.
	Invite(ctx context.Context, inv *entity.RfxInvitation) (bool, error)
	GetInvitation(ctx context.Context, rfxID, vendorID string) (*entity.RfxInvitation, error)
	ListInvitations(ctx context.Context, rfxID string) ([]*entity.RfxInvitation, error)
	UpdateInvitationStatus(ctx context.Context, rfxID, vendorID, status string, respondedAt *time.Time) error

	CreateResponse(ctx context.Context, r *entity.RfxResponse) error
	ListResponses(ctx context.Context, rfxID string) ([]*entity.RfxResponse, error)
}
