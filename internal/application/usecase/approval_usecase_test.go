package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Procurement-api/internal/application/dto"
	"github.com/jhoicas/Procurement-api/internal/application/usecase"
	"github.com/jhoicas/Procurement-api/internal/domain"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/testutil"
)

type approvalFixture struct {
	uc      *usecase.ApprovalUseCase
	vendors *usecase.VendorUseCase
	notifs  *testutil.NotificationRepo
	tx      *testutil.TxRunner
}

func newApprovalFixture() approvalFixture {
	approvals := testutil.NewApprovalRepo()
	vendors := testutil.NewVendorRepo()
	notifs := testutil.NewNotificationRepo()
	tx := &testutil.TxRunner{Approvals: approvals, Vendors: vendors, Notifications: notifs}
	return approvalFixture{
		uc:      usecase.NewApprovalUseCase(approvals, tx),
		vendors: usecase.NewVendorUseCase(vendors),
		notifs:  notifs,
		tx:      tx,
	}
}

func TestApprovalRequest_NotificaAlAprobador(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture()
	v, err := f.vendors.Create(ctx, "", vendorRequest())
	require.NoError(t, err)

	a, err := f.uc.Request(ctx, dto.CreateApprovalRequest{EntityType: entity.ApprovalEntityVendor, EntityID: v.ID, ApproverID: "boss"})
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalStatusPending, a.Status)

	all := f.notifs.All()
	require.Len(t, all, 1)
	assert.Equal(t, "boss", all[0].UserID)
	require.NotNil(t, all[0].EntityID)
	assert.Equal(t, a.ID, *all[0].EntityID)
}

func TestApprovalDecide_ApruebaProveedorYNotificaSuUsuario(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture()
	in := vendorRequest()
	vendorUser := "vendor-user"
	in.UserID = &vendorUser
	v, err := f.vendors.Create(ctx, "", in)
	require.NoError(t, err)
	a, err := f.uc.Request(ctx, dto.CreateApprovalRequest{EntityType: entity.ApprovalEntityVendor, EntityID: v.ID, ApproverID: "boss"})
	require.NoError(t, err)

	got, err := f.uc.Decide(ctx, a.ID, "boss", entity.RoleSourcingManager, dto.DecideApprovalRequest{Status: entity.ApprovalStatusApproved, Comments: "ok"})
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalStatusApproved, got.Status)
	assert.NotNil(t, got.ApprovedAt)

	vv, err := f.vendors.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.VendorStatusApproved, vv.Status)

	all := f.notifs.All()
	require.Len(t, all, 2)
	assert.Equal(t, vendorUser, all[1].UserID)
	assert.Equal(t, entity.NotificationSuccess, all[1].Type)
}

func TestApprovalDecide_OtroUsuarioNoPuede(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture()
	a, err := f.uc.Request(ctx, dto.CreateApprovalRequest{EntityType: entity.ApprovalEntityBudget, EntityID: "b-1", ApproverID: "boss"})
	require.NoError(t, err)

	_, err = f.uc.Decide(ctx, a.ID, "intruder", entity.RoleBuyerUser, dto.DecideApprovalRequest{Status: entity.ApprovalStatusRejected})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, err := f.uc.Decide(ctx, a.ID, "admin", entity.RoleBuyerAdmin, dto.DecideApprovalRequest{Status: entity.ApprovalStatusRejected})
	require.NoError(t, err, "buyer_admin puede decidir por cualquiera")
	assert.Equal(t, entity.ApprovalStatusRejected, got.Status)

	_, err = f.uc.Decide(ctx, a.ID, "boss", entity.RoleBuyerUser, dto.DecideApprovalRequest{Status: entity.ApprovalStatusApproved})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "solo se decide una vez")
}

func TestApprovalDecide_RollbackSiProveedorNoPuedeTransicionar(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture()
	v, err := f.vendors.Create(ctx, "", vendorRequest())
	require.NoError(t, err)
	_, err = f.vendors.ChangeStatus(ctx, v.ID, entity.VendorStatusRejected)
	require.NoError(t, err)
	a, err := f.uc.Request(ctx, dto.CreateApprovalRequest{EntityType: entity.ApprovalEntityVendor, EntityID: v.ID, ApproverID: "boss"})
	require.NoError(t, err)

	// rejected -> approved no es una transición válida del proveedor
	_, err = f.uc.Decide(ctx, a.ID, "boss", "", dto.DecideApprovalRequest{Status: entity.ApprovalStatusApproved})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	still, err := f.uc.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalStatusPending, still.Status, "la decisión se revierte")
}

func TestApprovalList_Mine(t *testing.T) {
	ctx := context.Background()
	f := newApprovalFixture()
	_, err := f.uc.Request(ctx, dto.CreateApprovalRequest{EntityType: entity.ApprovalEntityPO, EntityID: "po-1", ApproverID: "boss"})
	require.NoError(t, err)
	_, err = f.uc.Request(ctx, dto.CreateApprovalRequest{EntityType: entity.ApprovalEntityPO, EntityID: "po-2", ApproverID: "other"})
	require.NoError(t, err)

	mine, err := f.uc.List(ctx, "boss", dto.ApprovalListQuery{Mine: true})
	require.NoError(t, err)
	require.Len(t, mine.Items, 1)
	assert.Equal(t, "po-1", mine.Items[0].EntityID)

	all, err := f.uc.List(ctx, "boss", dto.ApprovalListQuery{})
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)
}
