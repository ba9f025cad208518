package cxml

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Procurement-api/internal/application/purchasing"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
)

func TestBuildOrderRequest_EstructuraYTotales(t *testing.T) {
	b := NewBuilder("sclen-buyer")
	b.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	doc := &purchasing.OrderDocument{
		Order: &entity.PurchaseOrder{
			ID: "po-1", PONumber: "PO-20260301-AAAAAA",
			TotalAmount: decimal.RequireFromString("2500"), CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		Vendor: &entity.Vendor{ID: "v-1", CompanyName: "Acme", GSTNumber: "29BBBBB1111B1Z1"},
		Lines: []purchasing.OrderLineForDocument{
			{ProductID: "p-a", ProductName: "Product A", InternalCode: "A-01", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(500)},
			{ProductID: "p-b", ProductName: "Product B", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1500), DeliveryDate: "2026-03-15"},
		},
	}

	out, err := b.BuildOrderRequest(doc)
	require.NoError(t, err)

	parsed := etree.NewDocument()
	require.NoError(t, parsed.ReadFromBytes(out))

	root := parsed.SelectElement("cXML")
	require.NotNil(t, root)
	assert.Equal(t, "1.2.014", root.SelectAttrValue("version", ""))

	header := parsed.FindElement("//OrderRequestHeader")
	require.NotNil(t, header)
	assert.Equal(t, "PO-20260301-AAAAAA", header.SelectAttrValue("orderID", ""))
	assert.Equal(t, "2500.00", parsed.FindElement("//OrderRequestHeader/Total/Money").Text())

	items := parsed.FindElements("//ItemOut")
	require.Len(t, items, 2)
	assert.Equal(t, "2", items[0].SelectAttrValue("quantity", ""))
	assert.Equal(t, "A-01", items[0].FindElement("ItemID/SupplierPartID").Text())
	assert.Equal(t, "p-b", items[1].FindElement("ItemID/SupplierPartID").Text())
	assert.Equal(t, "2026-03-15", items[1].SelectAttrValue("requestedDeliveryDate", ""))

	to := parsed.FindElement("//Header/To/Credential/Identity")
	assert.Equal(t, "29BBBBB1111B1Z1", to.Text())
}

func TestBuildOrderRequest_SinOrdenFalla(t *testing.T) {
	_, err := NewBuilder("x").BuildOrderRequest(nil)
	assert.Error(t, err)
}
