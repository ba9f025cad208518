package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Procurement-api/internal/application/dto"
	"github.com/jhoicas/Procurement-api/internal/application/usecase"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Procurement-api/internal/interfaces/http"
	"github.com/jhoicas/Procurement-api/internal/testutil"
)

const (
	vendorOwn   = "44444444-4444-4444-8444-444444444444"
	vendorOther = "55555555-5555-4555-8555-555555555555"
)

// newAuctionApp subasta live con dos participantes; vendorOwn pertenece a testUserID.
func newAuctionApp(t *testing.T) (apiApp, string) {
	t.Helper()
	ctx := context.Background()
	vendors := testutil.NewVendorRepo()
	userID := testUserID
	require.NoError(t, vendors.Create(ctx, &entity.Vendor{ID: vendorOwn, CompanyName: "Acme", UserID: &userID}))
	require.NoError(t, vendors.Create(ctx, &entity.Vendor{ID: vendorOther, CompanyName: "Globex"}))

	repo := testutil.NewAuctionRepo()
	uc := usecase.NewAuctionUseCase(repo, vendors, &testutil.TxRunner{Auctions: repo})
	start := time.Now()
	a, err := uc.Create(ctx, "", dto.CreateAuctionRequest{Name: "Copper", StartTime: start, EndTime: start.Add(time.Hour)})
	require.NoError(t, err)
	for _, v := range []string{vendorOwn, vendorOther} {
		_, err := uc.RegisterParticipant(ctx, a.ID, v)
		require.NoError(t, err)
	}
	_, err = uc.ChangeStatus(ctx, a.ID, entity.AuctionStatusLive)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{AuctionUC: uc, JWTSecret: testJWTSecret})
	return apiApp{app: app}, a.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Permisos por rol en rutas de escritura
// ──────────────────────────────────────────────────────────────────────────────

func TestRutas_RolesSinPermisoReciben403(t *testing.T) {
	a := newBOMApp()
	cases := []struct {
		name, method, path, role string
	}{
		{"vendor cambia estado de OC", http.MethodPatch, "/api/purchase-orders/66666666-6666-4666-8666-666666666666/status", entity.RoleVendor},
		{"buyer_user puja", http.MethodPost, "/api/auctions/66666666-6666-4666-8666-666666666666/bids", entity.RoleBuyerUser},
		{"buyer_user responde RFx", http.MethodPost, "/api/rfx/66666666-6666-4666-8666-666666666666/responses", entity.RoleBuyerUser},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := a.do(t, tc.method, tc.path, tc.role, map[string]any{"status": "approved"})
			assert.Equal(t, http.StatusForbidden, resp.StatusCode, string(body))
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/auctions/:id/bids con rol vendor
// ──────────────────────────────────────────────────────────────────────────────

func TestPlaceBid_VendorComoOtroProveedorRecibe403(t *testing.T) {
	a, auctionID := newAuctionApp(t)
	resp, body := a.do(t, http.MethodPost, "/api/auctions/"+auctionID+"/bids", entity.RoleVendor,
		map[string]any{"vendorId": vendorOther, "amount": "90"})
	require.Equal(t, http.StatusForbidden, resp.StatusCode, string(body))

	var got dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "FORBIDDEN", got.Code)
}

func TestPlaceBid_VendorPorSuProveedorRecibe201(t *testing.T) {
	a, auctionID := newAuctionApp(t)
	resp, body := a.do(t, http.MethodPost, "/api/auctions/"+auctionID+"/bids", entity.RoleVendor,
		map[string]any{"vendorId": vendorOwn, "amount": "90"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var bid dto.BidResponse
	require.NoError(t, json.Unmarshal(body, &bid))
	assert.Equal(t, vendorOwn, bid.VendorID)
}
