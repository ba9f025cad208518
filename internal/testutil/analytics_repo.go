package testutil

import (
	"context"

	"github.com/jhoicas/Procurement-api/internal/domain/repository"
)

// AnalyticsRepo fake con respuestas fijas. Err se devuelve desde TopVendorsBySpend.
type AnalyticsRepo struct {
	VendorCounts     []repository.StatusCount
	OpenRfx          int
	LiveAuctions     int
	POSpend          []repository.POStatusSpend
	TopVendors       []repository.VendorSpend
	PendingApprovals map[string]int
	Err              error
	TopLimit         int
}

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

func (r *AnalyticsRepo) VendorCountsByStatus(context.Context) ([]repository.StatusCount, error) {
	return r.VendorCounts, nil
}

func (r *AnalyticsRepo) CountOpenRfx(context.Context) (int, error) { return r.OpenRfx, nil }

func (r *AnalyticsRepo) CountLiveAuctions(context.Context) (int, error) { return r.LiveAuctions, nil }

func (r *AnalyticsRepo) POSpendByStatus(context.Context) ([]repository.POStatusSpend, error) {
	return r.POSpend, nil
}

func (r *AnalyticsRepo) TopVendorsBySpend(_ context.Context, limit int) ([]repository.VendorSpend, error) {
	r.TopLimit = limit
	if r.Err != nil {
		return nil, r.Err
	}
	return r.TopVendors, nil
}

func (r *AnalyticsRepo) CountPendingApprovals(_ context.Context, approverID string) (int, error) {
	return r.PendingApprovals[approverID], nil
}
