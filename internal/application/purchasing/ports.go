package purchasing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
)

// TxRunner ejecuta la creación de la orden (cabecera + líneas + notificación) en una transacción.
type TxRunner interface {
	RunPurchasing(ctx context.Context, fn func(
		orders repository.PurchaseOrderRepository,
		notifications repository.NotificationRepository,
	) error) error
}

// OrderLineForDocument línea enriquecida con datos del producto para PDF y cXML.
type OrderLineForDocument struct {
	ProductID    string
	ProductName  string
	InternalCode string
	UOM          string
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	TotalPrice   decimal.Decimal
	DeliveryDate string // YYYY-MM-DD o vacío
}

// OrderDocument todo lo necesario para representar una orden fuera del sistema.
type OrderDocument struct {
	Order        *entity.PurchaseOrder
	Vendor       *entity.Vendor
	Organization *entity.Organization // comprador; puede ser nil
	Lines        []OrderLineForDocument
}

// PDFGenerator genera la representación PDF de la orden.
type PDFGenerator interface {
	GeneratePurchaseOrderPDF(ctx context.Context, doc *OrderDocument) ([]byte, error)
}

// CXMLBuilder genera un OrderRequest cXML de la orden.
type CXMLBuilder interface {
	BuildOrderRequest(doc *OrderDocument) ([]byte, error)
}
