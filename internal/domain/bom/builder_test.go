package bom_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Procurement-api/internal/domain"
	"github.com/jhoicas/Procurement-api/internal/domain/bom"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func product(id, name, category, price string) *entity.Product {
	p := &entity.Product{ID: id, ItemName: name, Category: category}
	if price != "" {
		p.BasePrice = decimal.NewNullDecimal(d(price))
	}
	return p
}

// ─── Add ─────────────────────────────────────────────────────────────────────

func TestAdd_MismoProductoSumaCantidad(t *testing.T) {
	b := bom.NewBuilder()
	p := product("p1", "Monitor", "IT", "120.50")

	require.NoError(t, b.Add(p, d("2")))
	require.NoError(t, b.Add(p, d("3")))

	items := b.Items()
	require.Len(t, items, 1)
	assert.True(t, items[0].Quantity.Equal(d("5")))
	assert.True(t, items[0].TotalPrice.Equal(d("602.50")), "total = 5 × 120.50")
}

func TestAdd_LineaNuevaUsaValoresPorDefecto(t *testing.T) {
	b := bom.NewBuilder()
	require.NoError(t, b.Add(product("p1", "Tornillo", "", ""), decimal.Zero))

	l := b.Items()[0]
	assert.Equal(t, "units", l.UOM)
	assert.True(t, l.Quantity.Equal(d("1")), "cantidad cero se toma como 1")
	assert.True(t, l.UnitPrice.IsZero())
	assert.True(t, l.TotalPrice.IsZero())
	assert.Equal(t, "Tornillo", l.ProductName)
}

func TestAdd_ConservaUOMDelProducto(t *testing.T) {
	b := bom.NewBuilder()
	p := product("p1", "Cable", "IT", "3")
	p.UOM = "m"
	require.NoError(t, b.Add(p, d("10")))
	assert.Equal(t, "m", b.Items()[0].UOM)
}

func TestAdd_CantidadNegativaFalla(t *testing.T) {
	b := bom.NewBuilder()
	err := b.Add(product("p1", "x", "", "1"), d("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, b.Len())
}

// ─── Edición ─────────────────────────────────────────────────────────────────

func TestSetQuantityYPrecio_RecalculaSoloEsaLinea(t *testing.T) {
	b := bom.NewBuilder()
	require.NoError(t, b.Add(product("a", "A", "", "10"), d("1")))
	require.NoError(t, b.Add(product("b", "B", "", "20"), d("1")))

	require.NoError(t, b.SetQuantity(0, d("4")))
	items := b.Items()
	assert.True(t, items[0].TotalPrice.Equal(d("40")))
	assert.True(t, items[1].TotalPrice.Equal(d("20")))

	require.NoError(t, b.SetUnitPrice(1, d("7.25")))
	items = b.Items()
	assert.True(t, items[0].TotalPrice.Equal(d("40")))
	assert.True(t, items[1].TotalPrice.Equal(d("7.25")))
}

func TestSetQuantity_IndiceFueraDeRango(t *testing.T) {
	b := bom.NewBuilder()
	assert.ErrorIs(t, b.SetQuantity(0, d("1")), domain.ErrInvalidInput)
	assert.ErrorIs(t, b.SetUnitPrice(-1, d("1")), domain.ErrInvalidInput)
	assert.ErrorIs(t, b.Remove(3), domain.ErrInvalidInput)
}

func TestSetQuantity_CeroONegativaFallaSinTocarLaLinea(t *testing.T) {
	b := bom.NewBuilder()
	require.NoError(t, b.Add(product("a", "A", "", "10"), d("3")))

	assert.ErrorIs(t, b.SetQuantity(0, decimal.Zero), domain.ErrInvalidInput)
	assert.ErrorIs(t, b.SetQuantity(0, d("-2")), domain.ErrInvalidInput)

	l := b.Items()[0]
	assert.True(t, l.Quantity.Equal(d("3")))
	assert.True(t, l.TotalPrice.Equal(d("30")))
	assert.NoError(t, b.Validate())
}

func TestRemove_EliminaPorPosicion(t *testing.T) {
	b := bom.NewBuilder()
	require.NoError(t, b.Add(product("a", "A", "", "1"), d("1")))
	require.NoError(t, b.Add(product("b", "B", "", "1"), d("1")))
	require.NoError(t, b.Add(product("c", "C", "", "1"), d("1")))

	require.NoError(t, b.Remove(1))
	items := b.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ProductID)
	assert.Equal(t, "c", items[1].ProductID)
}

func TestItems_DevuelveCopia(t *testing.T) {
	b := bom.NewBuilder()
	require.NoError(t, b.Add(product("a", "A", "", "1"), d("1")))
	items := b.Items()
	items[0].Quantity = d("99")
	assert.True(t, b.Items()[0].Quantity.Equal(d("1")))
}

// ─── Validación y totales ────────────────────────────────────────────────────

func TestValidate_SinLineasFalla(t *testing.T) {
	b := bom.NewBuilder()
	assert.ErrorIs(t, b.Validate(), bom.ErrEmptyBOM)
	assert.True(t, b.Total().IsZero())

	require.NoError(t, b.Add(product("a", "A", "", "1"), d("1")))
	assert.NoError(t, b.Validate())
}

func TestLineTotal_RedondeaACentavosComoLaColumna(t *testing.T) {
	assert.Equal(t, "0.50", bom.LineTotal(d("0.333"), d("1.5")).StringFixed(2), "0.4995 se guarda como 0.50")
	assert.True(t, bom.LineTotal(d("0.333"), d("1.5")).Equal(d("0.5")))
	assert.True(t, bom.LineTotal(d("3"), d("0.335")).Equal(d("1.01")), "1.005 redondea hacia arriba")

	b := bom.NewBuilder()
	require.NoError(t, b.Add(product("a", "Fleje", "", "1.5"), d("0.333")))
	require.NoError(t, b.Add(product("b", "Arandela", "", "0.335"), d("3")))
	assert.True(t, b.Total().Equal(d("1.51")), "el total suma líneas ya redondeadas")
}

func TestTotal_EstacionDeTrabajo(t *testing.T) {
	b := bom.NewBuilder()
	require.NoError(t, b.Add(product("a", "Product A", "Furniture", "500"), d("2")))
	require.NoError(t, b.Add(product("b", "Product B", "IT", "1500"), d("1")))

	assert.True(t, b.Total().Equal(d("2500")))
	assert.True(t, b.TotalQuantity().Equal(d("3")))
}

func TestCategoryBreakdown_SumaAlTotal(t *testing.T) {
	catalog := []*entity.Product{
		product("a", "A", "IT", "100"),
		product("b", "B", "Furniture", "50"),
		product("c", "C", "IT", "10"),
		product("e", "E", "", "5"),
	}
	b := bom.NewBuilder()
	require.NoError(t, b.Add(catalog[0], d("1")))
	require.NoError(t, b.Add(catalog[1], d("2")))
	require.NoError(t, b.Add(catalog[2], d("3")))
	require.NoError(t, b.Add(catalog[3], d("1")))
	// producto que no está en el catálogo cargado
	require.NoError(t, b.Add(product("x", "X", "IT", "7"), d("1")))

	parts := b.CategoryBreakdown(catalog)
	require.Len(t, parts, 3)
	assert.Equal(t, "IT", parts[0].Category)
	assert.True(t, parts[0].Total.Equal(d("130")))
	assert.Equal(t, "Furniture", parts[1].Category)
	assert.True(t, parts[1].Total.Equal(d("100")))
	assert.Equal(t, bom.Uncategorized, parts[2].Category)
	assert.True(t, parts[2].Total.Equal(d("12")))

	sum := decimal.Zero
	for _, p := range parts {
		sum = sum.Add(p.Total)
	}
	assert.True(t, sum.Equal(b.Total()))
}

func TestCategoryBreakdown_Vacio(t *testing.T) {
	assert.Empty(t, bom.NewBuilder().CategoryBreakdown(nil))
}
