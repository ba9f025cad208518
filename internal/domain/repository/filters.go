package repository

// Page paginación común para listados.
type Page struct {
	Limit  int
	Offset int
}

// VendorFilter filtros de listado de proveedores (vacío = sin filtrar).
type VendorFilter struct {
	Status   string
	Category string
	Search   string
	Page
}

// ProductFilter filtros del catálogo.
type ProductFilter struct {
	Active   *bool
	Category string
	Search   string // nombre o código interno/externo
	Page
}

// RfxFilter filtros de eventos RFx.
type RfxFilter struct {
	Status string
	Type   string
	Page
}

// AuctionFilter filtros de subastas.
type AuctionFilter struct {
	Status string
	Page
}

// PurchaseOrderFilter filtros de órdenes de compra.
type PurchaseOrderFilter struct {
	VendorID string
	Status   string
	Page
}

// ApprovalFilter filtros de aprobaciones.
type ApprovalFilter struct {
	ApproverID string
	Status     string
	EntityType string
	EntityID   string
	Page
}
