package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Procurement-api/internal/application/analytics"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
	"github.com/jhoicas/Procurement-api/internal/testutil"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestGetSummary_AgregaConsultas(t *testing.T) {
	repo := &testutil.AnalyticsRepo{
		VendorCounts: []repository.StatusCount{{Status: "approved", Count: 4}, {Status: "pending", Count: 2}},
		OpenRfx:      3,
		LiveAuctions: 1,
		POSpend: []repository.POStatusSpend{
			{Status: "draft", Count: 2, Amount: d("999")},
			{Status: "issued", Count: 1, Amount: d("100.50")},
			{Status: "paid", Count: 3, Amount: d("400")},
			{Status: "cancelled", Count: 1, Amount: d("50")},
		},
		TopVendors:       []repository.VendorSpend{{VendorID: "v1", CompanyName: "Acme", OrderCount: 3, TotalSpend: d("400")}},
		PendingApprovals: map[string]int{"u1": 2, "u2": 7},
	}
	uc := analytics.NewDashboardUseCase(repo)

	got, err := uc.GetSummary(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, 6, got.TotalVendors)
	assert.Equal(t, 4, got.VendorsByStatus["approved"])
	assert.Equal(t, 3, got.OpenRfx)
	assert.Equal(t, 1, got.LiveAuctions)
	assert.Len(t, got.PurchaseOrders, 4)
	assert.True(t, d("500.50").Equal(got.TotalSpend), "excluye draft y cancelled: %s", got.TotalSpend)
	require.Len(t, got.TopVendors, 1)
	assert.Equal(t, "Acme", got.TopVendors[0].CompanyName)
	assert.Equal(t, 5, repo.TopLimit)
	assert.Equal(t, 2, got.PendingApprovals)
}

func TestGetSummary_SinDatosDevuelveColeccionesVacias(t *testing.T) {
	got, err := analytics.NewDashboardUseCase(&testutil.AnalyticsRepo{}).GetSummary(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, got.VendorsByStatus)
	assert.NotNil(t, got.PurchaseOrders)
	assert.NotNil(t, got.TopVendors)
	assert.True(t, got.TotalSpend.IsZero())
}

func TestGetSummary_PropagaError(t *testing.T) {
	boom := errors.New("db caída")
	_, err := analytics.NewDashboardUseCase(&testutil.AnalyticsRepo{Err: boom}).GetSummary(context.Background(), "u1")
	assert.ErrorIs(t, err, boom)
}
