package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Procurement-api/internal/application/bom"
	"github.com/jhoicas/Procurement-api/internal/application/purchasing"
	"github.com/jhoicas/Procurement-api/internal/application/usecase"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
)

var (
	_ bom.TxRunner             = (*TxRunner)(nil)
	_ purchasing.TxRunner      = (*TxRunner)(nil)
	_ usecase.AuctionTxRunner  = (*TxRunner)(nil)
	_ usecase.ApprovalTxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// run inicia la transacción, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunBOM cabecera e ítems de una BOM en una sola transacción.
func (r *TxRunner) RunBOM(ctx context.Context, fn func(boms repository.BOMRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewBOMRepository(tx))
	})
}

// RunPurchasing orden de compra, líneas y notificaciones en una sola transacción.
func (r *TxRunner) RunPurchasing(ctx context.Context, fn func(
	orders repository.PurchaseOrderRepository,
	notifications repository.NotificationRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewPurchaseOrderRepository(tx), NewNotificationRepository(tx))
	})
}

// RunAuction adjudicación de subasta.
func (r *TxRunner) RunAuction(ctx context.Context, fn func(auctions repository.AuctionRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewAuctionRepository(tx))
	})
}

// RunApproval decisión de aprobación más su efecto sobre la entidad aprobada.
func (r *TxRunner) RunApproval(ctx context.Context, fn func(
	approvals repository.ApprovalRepository,
	vendors repository.VendorRepository,
	notifications repository.NotificationRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewApprovalRepository(tx), NewVendorRepository(tx), NewNotificationRepository(tx))
	})
}
