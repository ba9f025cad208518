package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Procurement-api/internal/application/purchasing"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0.00", formatMoney("0.00"))
	assert.Equal(t, "999.99", formatMoney("999.99"))
	assert.Equal(t, "2,500.00", formatMoney("2500.00"))
	assert.Equal(t, "1,234,567.89", formatMoney("1234567.89"))
	assert.Equal(t, "-12,000.50", formatMoney("-12000.50"))
}

func TestGeneratePurchaseOrderPDF_GeneraBytes(t *testing.T) {
	doc := &purchasing.OrderDocument{
		Order: &entity.PurchaseOrder{
			PONumber:     "PO-20260101-ABC123",
			Status:       entity.POStatusIssued,
			TotalAmount:  decimal.RequireFromString("2500"),
			PaymentTerms: "Net 30",
			CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		Vendor:       &entity.Vendor{CompanyName: "Acme Supplies", ContactPerson: "Ana", Email: "ana@acme.test"},
		Organization: &entity.Organization{Name: "SCLEN", GSTNumber: "27AAAAA0000A1Z5"},
		Lines: []purchasing.OrderLineForDocument{
			{ProductName: "Desk", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(500), TotalPrice: decimal.NewFromInt(1000)},
			{ProductName: "Workstation", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1500), TotalPrice: decimal.NewFromInt(1500)},
		},
	}

	out, err := NewMarotoPDFGenerator().GeneratePurchaseOrderPDF(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGeneratePurchaseOrderPDF_SinProveedorFalla(t *testing.T) {
	_, err := NewMarotoPDFGenerator().GeneratePurchaseOrderPDF(context.Background(), &purchasing.OrderDocument{Order: &entity.PurchaseOrder{}})
	assert.Error(t, err)
}
