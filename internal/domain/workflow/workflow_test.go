package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Procurement-api/internal/domain"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/workflow"
)

func TestVendor_Transiciones(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{entity.VendorStatusPending, entity.VendorStatusApproved, true},
		{entity.VendorStatusPending, entity.VendorStatusRejected, true},
		{entity.VendorStatusApproved, entity.VendorStatusSuspended, true},
		{entity.VendorStatusSuspended, entity.VendorStatusApproved, true},
		{entity.VendorStatusRejected, entity.VendorStatusPending, true},
		{entity.VendorStatusPending, entity.VendorStatusSuspended, false},
		{entity.VendorStatusRejected, entity.VendorStatusApproved, false},
	}
	for _, c := range cases {
		err := workflow.Vendor.Check(c.from, c.to)
		if c.ok {
			assert.NoError(t, err, "%s -> %s", c.from, c.to)
		} else {
			assert.ErrorIs(t, err, domain.ErrInvalidTransition, "%s -> %s", c.from, c.to)
		}
	}
}

func TestRfx_CerradoEsTerminal(t *testing.T) {
	assert.True(t, workflow.Rfx.Terminal(entity.RfxStatusClosed))
	assert.ErrorIs(t, workflow.Rfx.Check(entity.RfxStatusClosed, entity.RfxStatusCancelled), domain.ErrInvalidTransition)
	assert.NoError(t, workflow.Rfx.Check(entity.RfxStatusActive, entity.RfxStatusCancelled))
	assert.ErrorIs(t, workflow.Rfx.Check(entity.RfxStatusDraft, entity.RfxStatusActive), domain.ErrInvalidTransition)
}

func TestPurchaseOrder_NoSeCancelaTrasEntrega(t *testing.T) {
	assert.NoError(t, workflow.PurchaseOrder.Check(entity.POStatusShipped, entity.POStatusCancelled))
	assert.ErrorIs(t, workflow.PurchaseOrder.Check(entity.POStatusDelivered, entity.POStatusCancelled), domain.ErrInvalidTransition)
	assert.ErrorIs(t, workflow.PurchaseOrder.Check(entity.POStatusDraft, entity.POStatusPaid), domain.ErrInvalidTransition)

	chain := []string{
		entity.POStatusDraft, entity.POStatusIssued, entity.POStatusAcknowledged, entity.POStatusShipped,
		entity.POStatusDelivered, entity.POStatusInvoiced, entity.POStatusPaid,
	}
	for i := 0; i+1 < len(chain); i++ {
		assert.NoError(t, workflow.PurchaseOrder.Check(chain[i], chain[i+1]))
	}
}

func TestCheck_EstadoDesconocido(t *testing.T) {
	err := workflow.Auction.Check(entity.AuctionStatusScheduled, "paused")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, workflow.Auction.Known("paused"))
	assert.True(t, workflow.Auction.Known(entity.AuctionStatusLive))
}

func TestApproval_SoloUnaDecision(t *testing.T) {
	assert.NoError(t, workflow.Approval.Check(entity.ApprovalStatusPending, entity.ApprovalStatusApproved))
	assert.ErrorIs(t, workflow.Approval.Check(entity.ApprovalStatusApproved, entity.ApprovalStatusRejected), domain.ErrInvalidTransition)
}
