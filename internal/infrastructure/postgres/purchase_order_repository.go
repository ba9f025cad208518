package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo persistencia de órdenes de compra y líneas. Pasar pool o tx.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador.
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

const poColumns = `id, po_number, vendor_id, rfx_id, auction_id, total_amount, status, terms_and_conditions,
	delivery_schedule, payment_terms, attachments, acknowledged_at, created_by, created_at, updated_at`

func scanPO(row pgx.Row) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := row.Scan(&po.ID, &po.PONumber, &po.VendorID, &po.RfxID, &po.AuctionID, &po.TotalAmount, &po.Status, &po.TermsAndConditions,
		&po.DeliverySchedule, &po.PaymentTerms, &po.Attachments, &po.AcknowledgedAt, &po.CreatedBy, &po.CreatedAt, &po.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &po, nil
}

// Create inserta la cabecera. po_number duplicado devuelve ErrDuplicate.
func (r *PurchaseOrderRepo) Create(ctx context.Context, po *entity.PurchaseOrder) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO purchase_orders (`+poColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		po.ID, po.PONumber, po.VendorID, po.RfxID, po.AuctionID, po.TotalAmount, po.Status, po.TermsAndConditions,
		po.DeliverySchedule, po.PaymentTerms, nonNilStrings(po.Attachments), po.AcknowledgedAt, po.CreatedBy, po.CreatedAt, po.UpdatedAt,
	)
	return mapWriteErr("insert purchase order", err)
}

// AddLine inserta una línea de la orden.
func (r *PurchaseOrderRepo) AddLine(ctx context.Context, l *entity.POLineItem) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO po_line_items (id, po_id, product_id, quantity, unit_price, total_price, delivery_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		l.ID, l.POID, l.ProductID, l.Quantity, l.UnitPrice, l.TotalPrice, l.DeliveryDate, l.Status,
	)
	return mapWriteErr("insert po line", err)
}

// GetByID obtiene la cabecera; nil si no existe.
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	po, err := scanPO(r.q.QueryRow(ctx, `SELECT `+poColumns+` FROM purchase_orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return po, nil
}

// ListLines líneas de la orden.
func (r *PurchaseOrderRepo) ListLines(ctx context.Context, poID string) ([]*entity.POLineItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, po_id, product_id, quantity, unit_price, total_price, delivery_date, status
		FROM po_line_items WHERE po_id = $1 ORDER BY delivery_date NULLS LAST, id`, poID)
	if err != nil {
		return nil, fmt.Errorf("list po lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.POLineItem
	for rows.Next() {
		var l entity.POLineItem
		if err := rows.Scan(&l.ID, &l.POID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.TotalPrice, &l.DeliveryDate, &l.Status); err != nil {
			return nil, fmt.Errorf("scan po line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// List lista órdenes por proveedor y estado.
func (r *PurchaseOrderRepo) List(ctx context.Context, f repository.PurchaseOrderFilter) ([]*entity.PurchaseOrder, error) {
	var w whereBuilder
	if f.VendorID != "" {
		w.add("vendor_id = ?", f.VendorID)
	}
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}
	query := `SELECT ` + poColumns + ` FROM purchase_orders` + w.sql() + ` ORDER BY created_at DESC`
	query += w.page(f.Page)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		po, err := scanPO(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, po)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado y, si se indica, la fecha de acuse.
func (r *PurchaseOrderRepo) UpdateStatus(ctx context.Context, id, status string, acknowledgedAt *time.Time) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE purchase_orders SET status = $2, acknowledged_at = COALESCE($3, acknowledged_at), updated_at = now()
		WHERE id = $1`, id, status, acknowledgedAt)
	if err != nil {
		return mapWriteErr("update purchase order status", err)
	}
	return affectedOrNotFound(cmd.RowsAffected())
}

// Delete borra la orden; las líneas caen por cascada.
func (r *PurchaseOrderRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return mapWriteErr("delete purchase order", err)
	}
	return affectedOrNotFound(cmd.RowsAffected())
}
