// Package analytics resumen del tablero de compras.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Procurement-api/internal/application/dto"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
)

const dashboardTopVendors = 5 // proveedores en el widget de gasto

// DashboardUseCase genera el resumen del tablero.
//
// Fuente de datos: AnalyticsRepository (consultas read-only), una goroutine por consulta.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO. approverID define las aprobaciones pendientes
// que se cuentan (las del usuario que consulta).
//
// Seis consultas en paralelo; la primera que falla cancela el resto:
//  1. VendorCountsByStatus   → VendorsByStatus + TotalVendors
//  2. CountOpenRfx           → OpenRfx
//  3. CountLiveAuctions      → LiveAuctions
//  4. POSpendByStatus        → PurchaseOrders + TotalSpend
//  5. TopVendorsBySpend(5)   → TopVendors
//  6. CountPendingApprovals  → PendingApprovals
func (uc *DashboardUseCase) GetSummary(ctx context.Context, approverID string) (*dto.DashboardSummaryDTO, error) {
	var (
		vendors []repository.StatusCount
		spend   []repository.POStatusSpend
		top     []repository.VendorSpend
		out     dto.DashboardSummaryDTO
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if vendors, err = uc.analyticsRepo.VendorCountsByStatus(gctx); err != nil {
			return fmt.Errorf("dashboard: proveedores: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if out.OpenRfx, err = uc.analyticsRepo.CountOpenRfx(gctx); err != nil {
			return fmt.Errorf("dashboard: rfx abiertos: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if out.LiveAuctions, err = uc.analyticsRepo.CountLiveAuctions(gctx); err != nil {
			return fmt.Errorf("dashboard: subastas en vivo: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if spend, err = uc.analyticsRepo.POSpendByStatus(gctx); err != nil {
			return fmt.Errorf("dashboard: órdenes por estado: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if top, err = uc.analyticsRepo.TopVendorsBySpend(gctx, dashboardTopVendors); err != nil {
			return fmt.Errorf("dashboard: top proveedores: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if out.PendingApprovals, err = uc.analyticsRepo.CountPendingApprovals(gctx, approverID); err != nil {
			return fmt.Errorf("dashboard: aprobaciones: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.VendorsByStatus = make(map[string]int, len(vendors))
	for _, c := range vendors {
		out.VendorsByStatus[c.Status] = c.Count
		out.TotalVendors += c.Count
	}

	out.PurchaseOrders = make([]dto.POStatusDTO, 0, len(spend))
	out.TotalSpend = decimal.Zero
	for _, s := range spend {
		out.PurchaseOrders = append(out.PurchaseOrders, dto.POStatusDTO{Status: s.Status, Count: s.Count, Amount: s.Amount.Round(2)})
		if s.Status != entity.POStatusDraft && s.Status != entity.POStatusCancelled {
			out.TotalSpend = out.TotalSpend.Add(s.Amount)
		}
	}
	out.TotalSpend = out.TotalSpend.Round(2)

	out.TopVendors = make([]dto.TopVendorDTO, 0, len(top))
	for _, v := range top {
		out.TopVendors = append(out.TopVendors, dto.TopVendorDTO{
			VendorID:    v.VendorID,
			CompanyName: v.CompanyName,
			OrderCount:  v.OrderCount,
			TotalSpend:  v.TotalSpend.Round(2),
		})
	}
	return &out, nil
}
