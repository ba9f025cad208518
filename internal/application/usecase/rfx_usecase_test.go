package usecase_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Procurement-api/internal/application/dto"
	"github.com/jhoicas/Procurement-api/internal/application/usecase"
	"github.com/jhoicas/Procurement-api/internal/domain"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/testutil"
)

type rfxFixture struct {
	uc      *usecase.RfxUseCase
	vendors *usecase.VendorUseCase
}

func newRfxFixture() rfxFixture {
	vendorRepo := testutil.NewVendorRepo()
	return rfxFixture{
		uc:      usecase.NewRfxUseCase(testutil.NewRfxRepo(), vendorRepo),
		vendors: usecase.NewVendorUseCase(vendorRepo),
	}
}

func TestRfxCreate_GeneraReferencia(t *testing.T) {
	f := newRfxFixture()
	e, err := f.uc.Create(context.Background(), "u1", dto.CreateRfxRequest{Title: "Steel Q3", Type: entity.RfxTypeRFQ})
	require.NoError(t, err)
	assert.Equal(t, entity.RfxStatusDraft, e.Status)
	assert.Regexp(t, regexp.MustCompile(`^RFX-\d{8}-[0-9A-F]{6}$`), e.ReferenceNo)
}

func TestRfxCreate_ReferenciaDuplicada(t *testing.T) {
	f := newRfxFixture()
	in := dto.CreateRfxRequest{Title: "A", Type: entity.RfxTypeRFI, ReferenceNo: "RFX-FIXED"}
	_, err := f.uc.Create(context.Background(), "", in)
	require.NoError(t, err)
	_, err = f.uc.Create(context.Background(), "", in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRfxUpdate_SoloEnDraft(t *testing.T) {
	ctx := context.Background()
	f := newRfxFixture()
	e, err := f.uc.Create(ctx, "", dto.CreateRfxRequest{Title: "A", Type: entity.RfxTypeRFP})
	require.NoError(t, err)

	upd, err := f.uc.Update(ctx, e.ID, dto.CreateRfxRequest{Title: "B", Type: entity.RfxTypeRFP})
	require.NoError(t, err)
	assert.Equal(t, "B", upd.Title)
	assert.Equal(t, e.ReferenceNo, upd.ReferenceNo, "la referencia se conserva si no se envía")

	_, err = f.uc.ChangeStatus(ctx, e.ID, entity.RfxStatusPublished)
	require.NoError(t, err)
	_, err = f.uc.Update(ctx, e.ID, dto.CreateRfxRequest{Title: "C", Type: entity.RfxTypeRFP})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestRfxChangeStatus_NoSaltaEstados(t *testing.T) {
	ctx := context.Background()
	f := newRfxFixture()
	e, err := f.uc.Create(ctx, "", dto.CreateRfxRequest{Title: "A", Type: entity.RfxTypeRFQ})
	require.NoError(t, err)

	_, err = f.uc.ChangeStatus(ctx, e.ID, entity.RfxStatusClosed)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestRfxInvite_IdempotenteYRespuestaMarcaInvitacion(t *testing.T) {
	ctx := context.Background()
	f := newRfxFixture()
	v, err := f.vendors.Create(ctx, "", vendorRequest())
	require.NoError(t, err)
	e, err := f.uc.Create(ctx, "", dto.CreateRfxRequest{Title: "A", Type: entity.RfxTypeRFQ})
	require.NoError(t, err)

	_, err = f.uc.Invite(ctx, e.ID, dto.InviteVendorsRequest{VendorIDs: []string{v.ID}})
	require.NoError(t, err)
	invs, err := f.uc.Invite(ctx, e.ID, dto.InviteVendorsRequest{VendorIDs: []string{v.ID}})
	require.NoError(t, err)
	require.Len(t, invs, 1, "reinvitar no duplica")

	// en draft no se aceptan respuestas
	_, err = f.uc.SubmitResponse(ctx, sourcingActor, e.ID, dto.SubmitRfxResponseRequest{VendorID: v.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = f.uc.ChangeStatus(ctx, e.ID, entity.RfxStatusPublished)
	require.NoError(t, err)
	_, err = f.uc.SubmitResponse(ctx, sourcingActor, e.ID, dto.SubmitRfxResponseRequest{VendorID: v.ID, PaymentTerms: "30 days"})
	require.NoError(t, err)

	invs, err = f.uc.ListInvitations(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, invs, 1)
	assert.Equal(t, entity.InvitationStatusResponded, invs[0].Status)
	assert.NotNil(t, invs[0].RespondedAt)

	resps, err := f.uc.ListResponses(ctx, e.ID)
	require.NoError(t, err)
	assert.Len(t, resps, 1)
}

func TestRfxInvite_ProveedorInexistente(t *testing.T) {
	ctx := context.Background()
	f := newRfxFixture()
	e, err := f.uc.Create(ctx, "", dto.CreateRfxRequest{Title: "A", Type: entity.RfxTypeRFQ})
	require.NoError(t, err)
	_, err = f.uc.Invite(ctx, e.ID, dto.InviteVendorsRequest{VendorIDs: []string{"nope"}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRfxInvitationStatus_DeclinadaEsFinal(t *testing.T) {
	ctx := context.Background()
	f := newRfxFixture()
	v, err := f.vendors.Create(ctx, "", vendorRequest())
	require.NoError(t, err)
	e, err := f.uc.Create(ctx, "", dto.CreateRfxRequest{Title: "A", Type: entity.RfxTypeRFQ})
	require.NoError(t, err)
	_, err = f.uc.Invite(ctx, e.ID, dto.InviteVendorsRequest{VendorIDs: []string{v.ID}})
	require.NoError(t, err)

	inv, err := f.uc.UpdateInvitationStatus(ctx, e.ID, v.ID, entity.InvitationStatusDeclined)
	require.NoError(t, err)
	assert.NotNil(t, inv.RespondedAt)

	_, err = f.uc.UpdateInvitationStatus(ctx, e.ID, v.ID, entity.InvitationStatusViewed)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestRfxSubmitResponse_VendorNoRespondePorOtroProveedor(t *testing.T) {
	ctx := context.Background()
	f := newRfxFixture()
	userID := "u-vendor-1"
	ownReq := vendorRequest()
	ownReq.UserID = &userID
	own, err := f.vendors.Create(ctx, "", ownReq)
	require.NoError(t, err)
	other, err := f.vendors.Create(ctx, "", vendorRequest())
	require.NoError(t, err)
	e, err := f.uc.Create(ctx, "", dto.CreateRfxRequest{Title: "Cable", Type: entity.RfxTypeRFQ})
	require.NoError(t, err)
	_, err = f.uc.ChangeStatus(ctx, e.ID, entity.RfxStatusPublished)
	require.NoError(t, err)
	actor := usecase.Actor{UserID: userID, Role: entity.RoleVendor}

	_, err = f.uc.SubmitResponse(ctx, actor, e.ID, dto.SubmitRfxResponseRequest{VendorID: other.ID})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, err := f.uc.SubmitResponse(ctx, actor, e.ID, dto.SubmitRfxResponseRequest{VendorID: own.ID})
	require.NoError(t, err)
	assert.Equal(t, own.ID, got.VendorID)

	list, err := f.uc.ListResponses(ctx, e.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
