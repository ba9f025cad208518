package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Procurement-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard de compras.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// VendorCountsByStatus cuenta proveedores por estado.
func (r *AnalyticsRepo) VendorCountsByStatus(ctx context.Context) ([]repository.StatusCount, error) {
	rows, err := r.q.Query(ctx, `SELECT status, COUNT(*) FROM vendors GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, fmt.Errorf("analytics.VendorCountsByStatus: %w", err)
	}
	defer rows.Close()
	var out []repository.StatusCount
	for rows.Next() {
		var sc repository.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("analytics.VendorCountsByStatus scan: %w", err)
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

// CountOpenRfx eventos publicados o activos.
func (r *AnalyticsRepo) CountOpenRfx(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM rfx_events WHERE status IN ('published', 'active')`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountOpenRfx: %w", err)
	}
	return n, nil
}

// CountLiveAuctions subastas en curso.
func (r *AnalyticsRepo) CountLiveAuctions(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM auctions WHERE status = 'live'`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountLiveAuctions: %w", err)
	}
	return n, nil
}

// POSpendByStatus cantidad y monto de órdenes por estado.
func (r *AnalyticsRepo) POSpendByStatus(ctx context.Context) ([]repository.POStatusSpend, error) {
	const query = `
	SELECT status, COUNT(*), COALESCE(SUM(total_amount), 0)
	FROM purchase_orders
	GROUP BY status
	ORDER BY status`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.POSpendByStatus: %w", err)
	}
	defer rows.Close()
	var out []repository.POStatusSpend
	for rows.Next() {
		var s repository.POStatusSpend
		if err := rows.Scan(&s.Status, &s.Count, &s.Amount); err != nil {
			return nil, fmt.Errorf("analytics.POSpendByStatus scan: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// TopVendorsBySpend proveedores con mayor gasto en órdenes no canceladas ni en borrador.
func (r *AnalyticsRepo) TopVendorsBySpend(ctx context.Context, limit int) ([]repository.VendorSpend, error) {
	const query = `
	SELECT v.id, v.company_name, COUNT(po.id), COALESCE(SUM(po.total_amount), 0) AS spend
	FROM purchase_orders po
	JOIN vendors v ON v.id = po.vendor_id
	WHERE po.status NOT IN ('draft', 'cancelled')
	GROUP BY v.id, v.company_name
	ORDER BY spend DESC
	LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.TopVendorsBySpend: %w", err)
	}
	defer rows.Close()
	var out []repository.VendorSpend
	for rows.Next() {
		var s repository.VendorSpend
		if err := rows.Scan(&s.VendorID, &s.CompanyName, &s.OrderCount, &s.TotalSpend); err != nil {
			return nil, fmt.Errorf("analytics.TopVendorsBySpend scan: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// CountPendingApprovals aprobaciones pendientes del aprobador.
func (r *AnalyticsRepo) CountPendingApprovals(ctx context.Context, approverID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM approvals WHERE approver_id = $1 AND status = 'pending'`, approverID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountPendingApprovals: %w", err)
	}
	return n, nil
}
