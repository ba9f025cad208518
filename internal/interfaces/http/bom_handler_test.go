package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbom "github.com/jhoicas/Procurement-api/internal/application/bom"
	"github.com/jhoicas/Procurement-api/internal/application/dto"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Procurement-api/internal/interfaces/http"
	"github.com/jhoicas/Procurement-api/internal/testutil"
)

const (
	productBolt  = "11111111-1111-4111-8111-111111111111"
	productPlate = "22222222-2222-4222-8222-222222222222"
)

type apiApp struct {
	app  *fiber.App
	boms *testutil.BOMRepo
}

func newBOMApp() apiApp {
	boms := testutil.NewBOMRepo()
	products := testutil.NewProductRepo(
		&entity.Product{ID: productBolt, ItemName: "Bolt", UOM: "pcs", IsActive: true},
		&entity.Product{ID: productPlate, ItemName: "Plate", IsActive: true},
	)
	uc := appbom.NewUseCase(boms, products, &testutil.TxRunner{BOMs: boms})

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{BOMUC: uc, JWTSecret: testJWTSecret})
	return apiApp{app: app, boms: boms}
}

func (a apiApp) do(t *testing.T, method, path, role string, body any) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, out.Bytes()
}

func item(productID, qty, price string) map[string]any {
	return map[string]any{"productId": productID, "quantity": qty, "unitPrice": price}
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/boms
// ──────────────────────────────────────────────────────────────────────────────

func TestBOMCreate_ConItemsDevuelve201YTotal(t *testing.T) {
	a := newBOMApp()
	resp, body := a.do(t, http.MethodPost, "/api/boms", "buyer_user", map[string]any{
		"name":  "Frame",
		"items": []any{item(productBolt, "100", "5"), item(productPlate, "10", "200")},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var got dto.BOMDetailResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "Frame", got.Name)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "pcs", got.Items[0].UOM)
	assert.True(t, decimal.NewFromInt(2500).Equal(got.TotalValue), got.TotalValue.String())
	assert.Equal(t, 1, a.boms.Count())
}

func TestBOMCreate_ValidacionDevuelveDetallePorCampo(t *testing.T) {
	a := newBOMApp()
	resp, body := a.do(t, http.MethodPost, "/api/boms", "buyer_user", map[string]any{
		"items": []any{item("no-uuid", "1", "1")},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "VALIDATION", got.Code)
	assert.Contains(t, got.Details, "name")
	assert.Contains(t, got.Details, "items[0].productId")
}

func TestBOMCreate_TotalInconsistenteNoPersisteNada(t *testing.T) {
	a := newBOMApp()
	bad := item(productPlate, "10", "200")
	bad["totalPrice"] = "1999.99"
	resp, body := a.do(t, http.MethodPost, "/api/boms", "buyer_user", map[string]any{
		"name":  "Frame",
		"items": []any{item(productBolt, "1", "5"), bad},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(body))
	assert.Zero(t, a.boms.Count())
}

func TestBOMCreate_CuerpoInvalido(t *testing.T) {
	a := newBOMApp()
	req := httptest.NewRequest(http.MethodPost, "/api/boms", bytes.NewBufferString("{no-json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, "buyer_admin"))
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var got dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", got.Code)
}

func TestBOMRutas_VendorNoAutorizado(t *testing.T) {
	a := newBOMApp()
	resp, _ := a.do(t, http.MethodGet, "/api/boms", "vendor", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Detalle e ítems
// ──────────────────────────────────────────────────────────────────────────────

func TestBOMGet_NoExisteDevuelve404(t *testing.T) {
	a := newBOMApp()
	resp, body := a.do(t, http.MethodGet, "/api/boms/33333333-3333-4333-8333-333333333333", "buyer_user", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "NOT_FOUND")
}

func TestBOMGet_SinLineasSerializaItemsVaciosYTotal(t *testing.T) {
	a := newBOMApp()
	resp, body := a.do(t, http.MethodPost, "/api/boms", "buyer_user", map[string]any{"name": "Vacía"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var created dto.BOMDetailResponse
	require.NoError(t, json.Unmarshal(body, &created))

	resp, body = a.do(t, http.MethodGet, "/api/boms/"+created.ID, "buyer_user", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.JSONEq(t, `[]`, string(raw["items"]))
	require.Contains(t, raw, "totalValue")
	assert.JSONEq(t, `"0"`, string(raw["totalValue"]))
}

func TestBOMItems_AgregarListarYEliminar(t *testing.T) {
	a := newBOMApp()
	resp, body := a.do(t, http.MethodPost, "/api/boms", "sourcing_manager", map[string]any{"name": "Vacía"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var bom dto.BOMDetailResponse
	require.NoError(t, json.Unmarshal(body, &bom))

	resp, body = a.do(t, http.MethodPost, "/api/boms/"+bom.ID+"/items", "sourcing_manager", item(productBolt, "4", "2.5"))
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var added dto.BOMItemResponse
	require.NoError(t, json.Unmarshal(body, &added))
	assert.True(t, decimal.NewFromInt(10).Equal(added.TotalPrice))

	resp, body = a.do(t, http.MethodGet, "/api/boms/"+bom.ID+"/items", "sourcing_manager", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items []dto.BOMItemResponse
	require.NoError(t, json.Unmarshal(body, &items))
	assert.Len(t, items, 1)

	resp, _ = a.do(t, http.MethodDelete, "/api/boms/"+bom.ID+"/items/"+added.ID, "sourcing_manager", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
