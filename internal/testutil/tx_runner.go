package testutil

import (
	"context"

	"github.com/jhoicas/Procurement-api/internal/domain/repository"
)

// TxRunner simula transacciones: el callback trabaja sobre copias de los fakes y solo
// si termina sin error las copias reemplazan el estado original (rollback en caso contrario).
type TxRunner struct {
	BOMs          *BOMRepo
	Orders        *PurchaseOrderRepo
	Notifications *NotificationRepo
	Auctions      *AuctionRepo
	Approvals     *ApprovalRepo
	Vendors       *VendorRepo
	Commits       int
	Rollbacks     int
}

func (r *TxRunner) finish(err error, commit func()) error {
	if err != nil {
		r.Rollbacks++
		return err
	}
	commit()
	r.Commits++
	return nil
}

func (r *TxRunner) RunBOM(_ context.Context, fn func(boms repository.BOMRepository) error) error {
	boms := r.BOMs.clone()
	return r.finish(fn(boms), func() { r.BOMs.restore(boms) })
}

func (r *TxRunner) RunPurchasing(_ context.Context, fn func(
	orders repository.PurchaseOrderRepository,
	notifications repository.NotificationRepository,
) error) error {
	orders, notifs := r.Orders.clone(), r.Notifications.clone()
	return r.finish(fn(orders, notifs), func() {
		r.Orders.restore(orders)
		r.Notifications.restore(notifs)
	})
}

func (r *TxRunner) RunAuction(_ context.Context, fn func(auctions repository.AuctionRepository) error) error {
	auctions := r.Auctions.clone()
	return r.finish(fn(auctions), func() { r.Auctions.restore(auctions) })
}

func (r *TxRunner) RunApproval(_ context.Context, fn func(
	approvals repository.ApprovalRepository,
	vendors repository.VendorRepository,
	notifications repository.NotificationRepository,
) error) error {
	approvals, vendors, notifs := r.Approvals.clone(), r.Vendors.clone(), r.Notifications.clone()
	return r.finish(fn(approvals, vendors, notifs), func() {
		r.Approvals.restore(approvals)
		r.Vendors.restore(vendors)
		r.Notifications.restore(notifs)
	})
}
