// Package purchasing ciclo de vida de órdenes de compra y su exportación (PDF, cXML).
package purchasing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Procurement-api/internal/application/dto"
	"github.com/jhoicas/Procurement-api/internal/domain"
	dombom "github.com/jhoicas/Procurement-api/internal/domain/bom"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
	"github.com/jhoicas/Procurement-api/internal/domain/workflow"
)

// PONumberPrefix prefijo de los números de orden generados.
const PONumberPrefix = "PO"

// Deps dependencias del caso de uso.
type Deps struct {
	Orders        repository.PurchaseOrderRepository
	Vendors       repository.VendorRepository
	Products      repository.ProductRepository
	Organizations repository.OrganizationRepository
	TxRunner      TxRunner
	PDF           PDFGenerator
	CXML          CXMLBuilder
}

// OrderUseCase alta, transiciones y exportación de órdenes de compra.
type OrderUseCase struct {
	orders        repository.PurchaseOrderRepository
	vendors       repository.VendorRepository
	products      repository.ProductRepository
	organizations repository.OrganizationRepository
	txRunner      TxRunner
	pdf           PDFGenerator
	cxml          CXMLBuilder
	now           func() time.Time
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(d Deps) *OrderUseCase {
	return &OrderUseCase{
		orders:        d.Orders,
		vendors:       d.Vendors,
		products:      d.Products,
		organizations: d.Organizations,
		txRunner:      d.TxRunner,
		pdf:           d.PDF,
		cxml:          d.CXML,
		now:           time.Now,
	}
}

// Create crea la orden en draft con sus líneas en una transacción.
// total de línea = cantidad × precio (a centavos); total de la orden = suma de líneas.
func (uc *OrderUseCase) Create(ctx context.Context, createdBy string, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	vendor, err := uc.vendors.GetByID(ctx, in.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, in.VendorID)
	}

	now := uc.now()
	po := &entity.PurchaseOrder{
		ID:                 uuid.New().String(),
		PONumber:           in.PONumber,
		VendorID:           in.VendorID,
		RfxID:              in.RfxID,
		AuctionID:          in.AuctionID,
		Status:             entity.POStatusDraft,
		TermsAndConditions: in.TermsAndConditions,
		DeliverySchedule:   in.DeliverySchedule,
		PaymentTerms:       in.PaymentTerms,
		Attachments:        in.Attachments,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if po.PONumber == "" {
		po.PONumber = domain.NewReferenceNo(PONumberPrefix, now)
	}
	if createdBy != "" {
		po.CreatedBy = &createdBy
	}

	lines := make([]*entity.POLineItem, 0, len(in.Lines))
	total := decimal.Zero
	for i, l := range in.Lines {
		if !l.Quantity.IsPositive() || l.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("línea %d: %w", i, domain.ErrInvalidInput)
		}
		p, err := uc.products.GetByID(ctx, l.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("línea %d: %w: producto %s", i, domain.ErrNotFound, l.ProductID)
		}
		line := &entity.POLineItem{
			ID:           uuid.New().String(),
			POID:         po.ID,
			ProductID:    l.ProductID,
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice,
			TotalPrice:   dombom.LineTotal(l.Quantity, l.UnitPrice),
			DeliveryDate: l.DeliveryDate,
			Status:       entity.LineStatusPending,
		}
		total = total.Add(line.TotalPrice)
		lines = append(lines, line)
	}
	po.TotalAmount = total

	err = uc.txRunner.RunPurchasing(ctx, func(orders repository.PurchaseOrderRepository, _ repository.NotificationRepository) error {
		if err := orders.Create(ctx, po); err != nil {
			return err
		}
		for i, line := range lines {
			if err := orders.AddLine(ctx, line); err != nil {
				return fmt.Errorf("línea %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(po, lines), nil
}

// GetByID orden con sus líneas.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error) {
	po, err := getOrder(ctx, uc.orders, id)
	if err != nil {
		return nil, err
	}
	lines, err := uc.orders.ListLines(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(po, lines), nil
}

// List lista órdenes por proveedor y estado (sin líneas).
func (uc *OrderUseCase) List(ctx context.Context, q dto.PurchaseOrderListQuery) (*dto.ListResponse[dto.PurchaseOrderResponse], error) {
	q.DefaultPage()
	list, err := uc.orders.List(ctx, repository.PurchaseOrderFilter{VendorID: q.VendorID, Status: q.Status, Page: q.Repo()})
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseOrderResponse, 0, len(list))
	for _, po := range list {
		items = append(items, *toOrderResponse(po, nil))
	}
	out := dto.NewListResponse(items, q.PageRequest)
	return &out, nil
}

// Delete elimina la orden. Solo en draft; emitida se cancela con ChangeStatus.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	po, err := getOrder(ctx, uc.orders, id)
	if err != nil {
		return err
	}
	if po.Status != entity.POStatusDraft {
		return domain.ErrInvalidTransition
	}
	return uc.orders.Delete(ctx, id)
}

// ChangeStatus aplica una transición. acknowledged fija acknowledged_at; issued notifica
// al usuario vinculado al proveedor, en la misma transacción que el cambio de estado.
func (uc *OrderUseCase) ChangeStatus(ctx context.Context, id, status string) (*dto.PurchaseOrderResponse, error) {
	po, err := getOrder(ctx, uc.orders, id)
	if err != nil {
		return nil, err
	}
	if err := workflow.PurchaseOrder.Check(po.Status, status); err != nil {
		return nil, err
	}
	var vendor *entity.Vendor
	if status == entity.POStatusIssued {
		if vendor, err = uc.vendors.GetByID(ctx, po.VendorID); err != nil {
			return nil, err
		}
	}

	now := uc.now()
	var ackAt *time.Time
	if status == entity.POStatusAcknowledged {
		ackAt = &now
	}
	err = uc.txRunner.RunPurchasing(ctx, func(orders repository.PurchaseOrderRepository, notifications repository.NotificationRepository) error {
		if err := orders.UpdateStatus(ctx, id, status, ackAt); err != nil {
			return err
		}
		if vendor == nil || vendor.UserID == nil {
			return nil
		}
		poID := po.ID
		return notifications.Create(ctx, &entity.Notification{
			ID:         uuid.New().String(),
			UserID:     *vendor.UserID,
			Title:      "Nueva orden de compra",
			Message:    fmt.Sprintf("Se emitió la orden %s por %s", po.PONumber, po.TotalAmount.StringFixed(2)),
			Type:       entity.NotificationInfo,
			EntityType: entity.ApprovalEntityPO,
			EntityID:   &poID,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}
	po.Status = status
	if ackAt != nil {
		po.AcknowledgedAt = ackAt
	}
	po.UpdatedAt = now
	return toOrderResponse(po, nil), nil
}

// PDF genera el PDF de la orden. organizationID (opcional) identifica al comprador.
func (uc *OrderUseCase) PDF(ctx context.Context, id, organizationID string) ([]byte, string, error) {
	doc, err := uc.Document(ctx, id, organizationID)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.GeneratePurchaseOrderPDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: %w", err)
	}
	return b, doc.Order.PONumber + ".pdf", nil
}

// CXML genera el OrderRequest cXML de la orden.
func (uc *OrderUseCase) CXML(ctx context.Context, id, organizationID string) ([]byte, string, error) {
	doc, err := uc.Document(ctx, id, organizationID)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.cxml.BuildOrderRequest(doc)
	if err != nil {
		return nil, "", fmt.Errorf("cxml: %w", err)
	}
	return b, doc.Order.PONumber + ".xml", nil
}

// Document reúne orden, proveedor, comprador y líneas con datos del catálogo.
func (uc *OrderUseCase) Document(ctx context.Context, id, organizationID string) (*OrderDocument, error) {
	po, err := getOrder(ctx, uc.orders, id)
	if err != nil {
		return nil, err
	}
	vendor, err := uc.vendors.GetByID(ctx, po.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, fmt.Errorf("%w: proveedor %s", domain.ErrNotFound, po.VendorID)
	}
	doc := &OrderDocument{Order: po, Vendor: vendor}
	if organizationID != "" && uc.organizations != nil {
		if doc.Organization, err = uc.organizations.GetByID(ctx, organizationID); err != nil {
			return nil, err
		}
	}
	lines, err := uc.orders.ListLines(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, l := range lines {
		dl := OrderLineForDocument{
			ProductID:  l.ProductID,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			TotalPrice: l.TotalPrice,
			UOM:        dombom.DefaultUOM,
		}
		if l.DeliveryDate != nil {
			dl.DeliveryDate = l.DeliveryDate.Format("2006-01-02")
		}
		p, err := uc.products.GetByID(ctx, l.ProductID)
		if err != nil {
			return nil, err
		}
		if p != nil {
			dl.ProductName = p.ItemName
			dl.InternalCode = p.InternalCode
			if p.UOM != "" {
				dl.UOM = p.UOM
			}
		}
		doc.Lines = append(doc.Lines, dl)
	}
	return doc, nil
}

func getOrder(ctx context.Context, repo repository.PurchaseOrderRepository, id string) (*entity.PurchaseOrder, error) {
	po, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.ErrNotFound
	}
	return po, nil
}

func toOrderResponse(po *entity.PurchaseOrder, lines []*entity.POLineItem) *dto.PurchaseOrderResponse {
	out := &dto.PurchaseOrderResponse{
		ID:                 po.ID,
		PONumber:           po.PONumber,
		VendorID:           po.VendorID,
		RfxID:              po.RfxID,
		AuctionID:          po.AuctionID,
		TotalAmount:        po.TotalAmount,
		Status:             po.Status,
		TermsAndConditions: po.TermsAndConditions,
		DeliverySchedule:   po.DeliverySchedule,
		PaymentTerms:       po.PaymentTerms,
		Attachments:        po.Attachments,
		AcknowledgedAt:     po.AcknowledgedAt,
		CreatedBy:          po.CreatedBy,
		CreatedAt:          po.CreatedAt,
		UpdatedAt:          po.UpdatedAt,
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, dto.POLineResponse{
			ID:           l.ID,
			ProductID:    l.ProductID,
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice,
			TotalPrice:   l.TotalPrice,
			DeliveryDate: l.DeliveryDate,
			Status:       l.Status,
		})
	}
	return out
}
