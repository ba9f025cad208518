package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard.
type DashboardSummaryDTO struct {
	VendorsByStatus  map[string]int  `json:"vendorsByStatus"`
	TotalVendors     int             `json:"totalVendors"`
	OpenRfx          int             `json:"openRfx"`
	LiveAuctions     int             `json:"liveAuctions"`
	PurchaseOrders   []POStatusDTO   `json:"purchaseOrders"`
	TotalSpend       decimal.Decimal `json:"totalSpend" swaggertype:"string"` // excluye draft y cancelled
	TopVendors       []TopVendorDTO  `json:"topVendors"`
	PendingApprovals int             `json:"pendingApprovals"`
}

// POStatusDTO órdenes agrupadas por estado.
type POStatusDTO struct {
	Status string          `json:"status"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount" swaggertype:"string"`
}

// TopVendorDTO proveedor por gasto.
type TopVendorDTO struct {
	VendorID    string          `json:"vendorId"`
	CompanyName string          `json:"companyName"`
	OrderCount  int             `json:"orderCount"`
	TotalSpend  decimal.Decimal `json:"totalSpend" swaggertype:"string"`
}
