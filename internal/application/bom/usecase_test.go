package bom_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbom "github.com/jhoicas/Procurement-api/internal/application/bom"
	"github.com/jhoicas/Procurement-api/internal/application/dto"
	"github.com/jhoicas/Procurement-api/internal/domain"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/testutil"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fixture struct {
	uc   *appbom.UseCase
	boms *testutil.BOMRepo
	tx   *testutil.TxRunner
}

func newFixture() fixture {
	boms := testutil.NewBOMRepo()
	products := testutil.NewProductRepo(
		&entity.Product{ID: "p-bolt", ItemName: "Bolt", UOM: "pcs", IsActive: true},
		&entity.Product{ID: "p-plate", ItemName: "Plate", IsActive: true},
	)
	tx := &testutil.TxRunner{BOMs: boms}
	return fixture{uc: appbom.NewUseCase(boms, products, tx), boms: boms, tx: tx}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_CabeceraEItemsEnUnaTransaccion(t *testing.T) {
	f := newFixture()
	first, second := d("500"), d("2000.00")
	got, err := f.uc.Create(context.Background(), "u1", dto.CreateBOMRequest{
		Name: "Frame",
		Items: []dto.BOMItemRequest{
			{ProductID: "p-bolt", Quantity: d("100"), UnitPrice: d("5"), TotalPrice: &first},
			{ProductID: "p-plate", Quantity: d("10"), UnitPrice: d("200"), TotalPrice: &second},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultBOMVersion, got.Version)
	assert.True(t, got.IsActive)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "pcs", got.Items[0].UOM, "UOM del catálogo")
	assert.Equal(t, "units", got.Items[1].UOM, "UOM por defecto")
	assert.True(t, got.TotalValue.Equal(d("2500")), "500 + 2000")
	assert.Equal(t, 1, f.tx.Commits)
}

func TestCreate_TotalQueNoCoincideNoPersisteNada(t *testing.T) {
	f := newFixture()
	wrong := d("999")
	_, err := f.uc.Create(context.Background(), "", dto.CreateBOMRequest{
		Name: "Frame",
		Items: []dto.BOMItemRequest{
			{ProductID: "p-bolt", Quantity: d("2"), UnitPrice: d("3")},
			{ProductID: "p-plate", Quantity: d("1"), UnitPrice: d("10"), TotalPrice: &wrong},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, f.boms.Count())
}

func TestCreate_FalloAlInsertarItemHaceRollback(t *testing.T) {
	f := newFixture()
	boom := errors.New("fk violada")
	calls := 0
	f.boms.AddItemErr = func(*entity.BOMItem) error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	}
	_, err := f.uc.Create(context.Background(), "", dto.CreateBOMRequest{
		Name: "Frame",
		Items: []dto.BOMItemRequest{
			{ProductID: "p-bolt", Quantity: d("1"), UnitPrice: d("1")},
			{ProductID: "p-plate", Quantity: d("1"), UnitPrice: d("1")},
		},
	})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, f.boms.Count(), "la cabecera tampoco queda")
	assert.Equal(t, 1, f.tx.Rollbacks)
}

func TestCreate_ProductoInexistente(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Create(context.Background(), "", dto.CreateBOMRequest{
		Name:  "Frame",
		Items: []dto.BOMItemRequest{{ProductID: "missing", Quantity: d("1"), UnitPrice: d("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_ItemsEnOrdenDeAltaAunqueCompartanCreatedAt(t *testing.T) {
	f := newFixture()
	in := dto.CreateBOMRequest{Name: "Rack"}
	for i := 1; i <= 6; i++ {
		product := "p-bolt"
		if i%2 == 0 {
			product = "p-plate"
		}
		in.Items = append(in.Items, dto.BOMItemRequest{ProductID: product, Quantity: decimal.NewFromInt(int64(i)), UnitPrice: d("1")})
	}
	created, err := f.uc.Create(context.Background(), "u1", in)
	require.NoError(t, err)

	got, err := f.uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 6)
	for i, it := range got.Items {
		assert.True(t, it.Quantity.Equal(decimal.NewFromInt(int64(i+1))), "línea %d fuera de orden: %s", i, it.Quantity)
		assert.Equal(t, got.Items[0].CreatedAt, it.CreatedAt, "todas las líneas comparten created_at")
		if i > 0 {
			assert.Greater(t, it.LineNo, got.Items[i-1].LineNo)
		}
	}
	assert.True(t, got.TotalValue.Equal(d("21")))
}

func TestGetByID_SinLineasDevuelveItemsVaciosYTotalCero(t *testing.T) {
	f := newFixture()
	created, err := f.uc.Create(context.Background(), "u1", dto.CreateBOMRequest{Name: "Vacía"})
	require.NoError(t, err)
	assert.NotNil(t, created.Items)
	assert.True(t, created.TotalValue.IsZero())

	got, err := f.uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Items, "items debe serializar como [] y no como null")
	assert.Empty(t, got.Items)
	assert.True(t, got.TotalValue.Equal(decimal.Zero), got.TotalValue.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// Ítems
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_RedondeaTotalACentavos(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	b, err := f.uc.Create(ctx, "", dto.CreateBOMRequest{Name: "Solo cabecera"})
	require.NoError(t, err)

	item, err := f.uc.AddItem(ctx, b.ID, dto.BOMItemRequest{ProductID: "p-bolt", Quantity: d("1.333"), UnitPrice: d("3")})
	require.NoError(t, err)
	assert.Equal(t, "4.00", item.TotalPrice.StringFixed(2))

	_, err = f.uc.AddItem(ctx, b.ID, dto.BOMItemRequest{ProductID: "p-bolt", Quantity: d("0"), UnitPrice: d("3")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	items, err := f.uc.ListItems(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, f.uc.DeleteItem(ctx, b.ID, item.ID))
	assert.ErrorIs(t, f.uc.DeleteItem(ctx, b.ID, item.ID), domain.ErrNotFound)
}

func TestDelete_BorraItemsEnCascada(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	b, err := f.uc.Create(ctx, "", dto.CreateBOMRequest{
		Name:  "Frame",
		Items: []dto.BOMItemRequest{{ProductID: "p-bolt", Quantity: d("1"), UnitPrice: d("1")}},
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(ctx, b.ID))
	_, err = f.uc.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_VigenciaInvertida(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	b, err := f.uc.Create(ctx, "", dto.CreateBOMRequest{Name: "Frame"})
	require.NoError(t, err)

	name := "Frame v2"
	upd, err := f.uc.Update(ctx, b.ID, dto.UpdateBOMRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Frame v2", upd.Name)

	now := b.CreatedAt
	before := now.AddDate(0, 0, -1)
	_, err = f.uc.Update(ctx, b.ID, dto.UpdateBOMRequest{ValidFrom: &now, ValidTo: &before})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
