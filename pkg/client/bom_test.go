package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Procurement-api/internal/application/dto"
	"github.com/jhoicas/Procurement-api/internal/domain/bom"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/pkg/client"
)

// ─── Servidor de prueba ───────────────────────────────────────────────────────

type call struct {
	Method string
	Path   string
	Body   map[string]any
}

type fakeAPI struct {
	mu        sync.Mutex
	calls     []call
	failItem  int // índice (0-based) de la línea que responde 500; -1 ninguna
	failHead  bool
	dropHead  bool // corta la conexión al crear la cabecera (falla de red)
	failDel   bool
	unauth    bool
	itemCount int
}

func (f *fakeAPI) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		var body map[string]any
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&body)
		}
		f.calls = append(f.calls, call{Method: r.Method, Path: r.URL.Path, Body: body})
		w.Header().Set("Content-Type", "application/json")

		if f.unauth {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"code":"SESSION_EXPIRED","message":"sesión cerrada o expirada"}`))
			return
		}

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/boms":
			if f.dropHead {
				conn, _, err := w.(http.Hijacker).Hijack()
				if err != nil {
					t.Errorf("hijack: %v", err)
					return
				}
				_ = conn.Close()
				return
			}
			if f.failHead {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"code":"VALIDATION","message":"validación fallida","details":{"name":"es obligatorio"}}`))
				return
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"bom-1","name":"Kit"}`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/boms/bom-1/items":
			idx := f.itemCount
			f.itemCount++
			if idx == f.failItem {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"code":"INTERNAL","message":"error interno"}`))
				return
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"item","bomId":"bom-1","productId":"` + body["productId"].(string) + `"}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/api/boms/bom-1":
			if f.failDel {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"code":"INTERNAL","message":"error interno"}`))
				return
			}
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodGet && r.URL.Path == "/api/products":
			_, _ = w.Write([]byte(`{"items":[{"id":"p-1","itemName":"Perno","uom":"pcs","basePrice":"2.5"}],"page":{"limit":20,"offset":0,"count":1}}`))
		default:
			t.Errorf("ruta inesperada %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func (f *fakeAPI) count(method, prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Method == method && strings.HasPrefix(c.Path, prefix) {
			n++
		}
	}
	return n
}

func newServer(t *testing.T, f *fakeAPI) *client.Client {
	t.Helper()
	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)
	return client.New(srv.URL, client.WithToken("tok"))
}

func threeLineBuilder(t *testing.T) *bom.Builder {
	t.Helper()
	b := bom.NewBuilder()
	for i, id := range []string{"p-1", "p-2", "p-3"} {
		p := &entity.Product{ID: id, ItemName: id, UOM: "pcs", BasePrice: decimal.NewNullDecimal(decimal.NewFromInt(int64(10 * (i + 1))))}
		require.NoError(t, b.Add(p, decimal.NewFromInt(2)))
	}
	return b
}

// ─── Commit ───────────────────────────────────────────────────────────────────

func TestCommit_CreaCabeceraYLineasEnOrden(t *testing.T) {
	f := &fakeAPI{failItem: -1}
	c := newServer(t, f)

	out, err := client.NewBomCommitter(c).Commit(context.Background(), dto.CreateBOMRequest{Name: "Kit"}, threeLineBuilder(t))
	require.NoError(t, err)

	assert.Equal(t, "bom-1", out.ID)
	require.Len(t, out.Items, 3)
	assert.True(t, out.TotalValue.Equal(decimal.NewFromInt(120)))

	require.Len(t, f.calls, 4)
	assert.Equal(t, "/api/boms", f.calls[0].Path)
	assert.Nil(t, f.calls[0].Body["items"])
	for i, id := range []string{"p-1", "p-2", "p-3"} {
		assert.Equal(t, id, f.calls[i+1].Body["productId"])
	}
	assert.Equal(t, "40", f.calls[2].Body["totalPrice"])
}

func TestCommit_EstacionDeTrabajoDeOficina(t *testing.T) {
	f := &fakeAPI{failItem: -1}
	c := newServer(t, f)

	b := bom.NewBuilder()
	desk := &entity.Product{ID: "p-desk", ItemName: "Product A", Category: "Furniture", BasePrice: decimal.NewNullDecimal(decimal.NewFromInt(500))}
	laptop := &entity.Product{ID: "p-laptop", ItemName: "Product B", Category: "IT", BasePrice: decimal.NewNullDecimal(decimal.NewFromInt(1500))}
	require.NoError(t, b.Add(desk, decimal.NewFromInt(2)))
	require.NoError(t, b.Add(laptop, decimal.NewFromInt(1)))

	out, err := client.NewBomCommitter(c).Commit(context.Background(), dto.CreateBOMRequest{Name: "Office Workstation Setup"}, b)
	require.NoError(t, err)
	assert.True(t, out.TotalValue.Equal(decimal.NewFromInt(2500)), out.TotalValue.String())
	require.Len(t, out.Items, 2)

	require.Len(t, f.calls, 3, "cabecera una sola vez y una petición por línea")
	assert.Equal(t, "/api/boms", f.calls[0].Path)
	assert.Equal(t, 2, f.count(http.MethodPost, "/api/boms/bom-1/items"))
	assert.Equal(t, "Office Workstation Setup", f.calls[0].Body["name"])
	assert.Equal(t, "p-desk", f.calls[1].Body["productId"])
	assert.Equal(t, "2", f.calls[1].Body["quantity"])
	assert.Equal(t, "1000", f.calls[1].Body["totalPrice"])
	assert.Equal(t, "p-laptop", f.calls[2].Body["productId"])
	assert.Equal(t, "1", f.calls[2].Body["quantity"])
	assert.Equal(t, "1500", f.calls[2].Body["totalPrice"])
}

func TestCommit_BOMVaciaNoEnviaPeticiones(t *testing.T) {
	f := &fakeAPI{failItem: -1}
	c := newServer(t, f)

	_, err := client.NewBomCommitter(c).Commit(context.Background(), dto.CreateBOMRequest{Name: "Kit"}, bom.NewBuilder())
	assert.ErrorIs(t, err, bom.ErrEmptyBOM)
	assert.Empty(t, f.calls)
}

func TestCommit_FallaCabeceraSinLineas(t *testing.T) {
	f := &fakeAPI{failItem: -1, failHead: true}
	c := newServer(t, f)

	_, err := client.NewBomCommitter(c).Commit(context.Background(), dto.CreateBOMRequest{Name: "Kit"}, threeLineBuilder(t))
	require.Error(t, err)

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "VALIDATION", apiErr.Code)
	assert.Equal(t, "es obligatorio", apiErr.Details["name"])
	assert.Equal(t, 0, f.count(http.MethodPost, "/api/boms/"))
	assert.Equal(t, 0, f.count(http.MethodDelete, "/api/boms/"))
}

func TestCommit_ErrorDeRedEnCabeceraNoEnviaLineas(t *testing.T) {
	f := &fakeAPI{failItem: -1, dropHead: true}
	c := newServer(t, f)

	_, err := client.NewBomCommitter(c).Commit(context.Background(), dto.CreateBOMRequest{Name: "Kit"}, threeLineBuilder(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "crear cabecera")

	var apiErr *client.APIError
	assert.False(t, errors.As(err, &apiErr), "una falla de transporte no es un APIError")
	require.Len(t, f.calls, 1, "la cabecera se intenta una sola vez")
	assert.Equal(t, "/api/boms", f.calls[0].Path)
	assert.Equal(t, 0, f.count(http.MethodPost, "/api/boms/"))
	assert.Equal(t, 0, f.count(http.MethodDelete, "/api/boms/"))
}

func TestCommit_ServidorCaidoNoEnviaNada(t *testing.T) {
	f := &fakeAPI{failItem: -1}
	srv := httptest.NewServer(f.handler(t))
	srv.Close()
	c := client.New(srv.URL, client.WithToken("tok"))

	_, err := client.NewBomCommitter(c).Commit(context.Background(), dto.CreateBOMRequest{Name: "Kit"}, threeLineBuilder(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "crear cabecera")
	assert.Empty(t, f.calls)
}

func TestCommit_FallaLineaCompensaUnaVez(t *testing.T) {
	f := &fakeAPI{failItem: 1}
	c := newServer(t, f)

	_, err := client.NewBomCommitter(c).Commit(context.Background(), dto.CreateBOMRequest{Name: "Kit"}, threeLineBuilder(t))
	require.Error(t, err)

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)

	assert.Equal(t, 2, f.count(http.MethodPost, "/api/boms/bom-1/items"), "no sigue después de la línea fallida")
	assert.Equal(t, 1, f.count(http.MethodDelete, "/api/boms/bom-1"))
	assert.Equal(t, http.MethodDelete, f.calls[len(f.calls)-1].Method)
}

func TestCommit_FallaCompensacionCombinaErrores(t *testing.T) {
	f := &fakeAPI{failItem: 0, failDel: true}
	c := newServer(t, f)

	_, err := client.NewBomCommitter(c).Commit(context.Background(), dto.CreateBOMRequest{Name: "Kit"}, threeLineBuilder(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "línea 0")
	assert.Contains(t, err.Error(), "compensar BOM bom-1")
	assert.Equal(t, 1, f.count(http.MethodDelete, "/api/boms/bom-1"))
}

func TestCommit_NoAutorizadoTraeLoginURL(t *testing.T) {
	f := &fakeAPI{failItem: -1, unauth: true}
	c := newServer(t, f)

	_, err := client.NewBomCommitter(c).Commit(context.Background(), dto.CreateBOMRequest{Name: "Kit"}, threeLineBuilder(t))
	require.Error(t, err)

	var unauth *client.ErrUnauthorized
	require.True(t, errors.As(err, &unauth))
	assert.Equal(t, "SESSION_EXPIRED", unauth.Code)
	assert.True(t, strings.HasSuffix(unauth.LoginURL, "/api/login"))
	assert.True(t, client.IsUnauthorized(err))
	assert.Len(t, f.calls, 1)
}

// ─── CommitAtomic ─────────────────────────────────────────────────────────────

func TestCommitAtomic_UnaSolaPeticionConLineas(t *testing.T) {
	f := &fakeAPI{failItem: -1}
	c := newServer(t, f)

	out, err := client.NewBomCommitter(c).CommitAtomic(context.Background(), dto.CreateBOMRequest{Name: "Kit"}, threeLineBuilder(t))
	require.NoError(t, err)
	assert.Equal(t, "bom-1", out.ID)

	require.Len(t, f.calls, 1)
	items, ok := f.calls[0].Body["items"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 3)
}

func TestCommitAtomic_BOMVacia(t *testing.T) {
	f := &fakeAPI{failItem: -1}
	c := newServer(t, f)

	_, err := client.NewBomCommitter(c).CommitAtomic(context.Background(), dto.CreateBOMRequest{Name: "Kit"}, bom.NewBuilder())
	assert.ErrorIs(t, err, bom.ErrEmptyBOM)
	assert.Empty(t, f.calls)
}

// ─── Catálogo ─────────────────────────────────────────────────────────────────

func TestListProducts_DecodificaPagina(t *testing.T) {
	f := &fakeAPI{failItem: -1}
	c := newServer(t, f)

	out, err := c.ListProducts(context.Background(), dto.ProductListQuery{Search: "perno"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Perno", out.Items[0].ItemName)
	assert.True(t, out.Items[0].BasePrice.Decimal.Equal(decimal.RequireFromString("2.5")))
}
