package usecase

import (
	"context"

	"github.com/jhoicas/Procurement-api/internal/domain/repository"
)

// AuctionTxRunner adjudicación de subasta en una transacción.
type AuctionTxRunner interface {
	RunAuction(ctx context.Context, fn func(auctions repository.AuctionRepository) error) error
}

// ApprovalTxRunner aprobación + efecto sobre el proveedor + notificaciones en una transacción.
type ApprovalTxRunner interface {
	RunApproval(ctx context.Context, fn func(
		approvals repository.ApprovalRepository,
		vendors repository.VendorRepository,
		notifications repository.NotificationRepository,
	) error) error
}
