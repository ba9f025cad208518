package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StatusCount conteo por estado.
type StatusCount struct {
	Status string
	Count  int
}

// POStatusSpend cantidad y monto de órdenes por estado.
type POStatusSpend struct {
	Status string
	Count  int
	Amount decimal.Decimal
}

// VendorSpend gasto acumulado por proveedor (órdenes no canceladas).
type VendorSpend struct {
	VendorID    string
	CompanyName string
	OrderCount  int
	TotalSpend  decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para el dashboard.
type AnalyticsRepository interface {
	VendorCountsByStatus(ctx context.Context) ([]StatusCount, error)
	// CountOpenRfx cuenta eventos en published o active.
	CountOpenRfx(ctx context.Context) (int, error)
	CountLiveAuctions(ctx context.Context) (int, error)
	POSpendByStatus(ctx context.Context) ([]POStatusSpend, error)
	TopVendorsBySpend(ctx context.Context, limit int) ([]VendorSpend, error)
	CountPendingApprovals(ctx context.Context, approverID string) (int, error)
}
