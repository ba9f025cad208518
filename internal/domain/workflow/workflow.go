// Package workflow define las transiciones de estado permitidas por entidad.
package workflow

import (
	"fmt"

	"github.com/jhoicas/Procurement-api/internal/domain"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
)

// Machine tabla de transiciones: estado origen -> destinos válidos.
type Machine struct {
	name  string
	edges map[string][]string
}

func newMachine(name string, edges map[string][]string) Machine {
	return Machine{name: name, edges: edges}
}

// Can indica si from -> to es una transición válida.
func (m Machine) Can(from, to string) bool {
	for _, s := range m.edges[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Check devuelve ErrInvalidTransition envuelto si from -> to no está permitido.
func (m Machine) Check(from, to string) error {
	if !m.Known(to) {
		return fmt.Errorf("%w: estado %s desconocido para %s", domain.ErrInvalidInput, to, m.name)
	}
	if !m.Can(from, to) {
		return fmt.Errorf("%w: %s %s -> %s", domain.ErrInvalidTransition, m.name, from, to)
	}
	return nil
}

// Known indica si el estado pertenece a la máquina.
func (m Machine) Known(state string) bool {
	if _, ok := m.edges[state]; ok {
		return true
	}
	for _, dests := range m.edges {
		for _, s := range dests {
			if s == state {
				return true
			}
		}
	}
	return false
}

// Terminal indica si desde state no hay salidas.
func (m Machine) Terminal(state string) bool {
	return len(m.edges[state]) == 0
}

// Vendor: pending -> approved|rejected; approved <-> suspended; rejected -> pending (reenvío).
var Vendor = newMachine("vendor", map[string][]string{
	entity.VendorStatusPending:   {entity.VendorStatusApproved, entity.VendorStatusRejected},
	entity.VendorStatusApproved:  {entity.VendorStatusSuspended},
	entity.VendorStatusSuspended: {entity.VendorStatusApproved},
	entity.VendorStatusRejected:  {entity.VendorStatusPending},
})

// Rfx: draft -> published -> active -> closed; cancelable antes de cerrar.
var Rfx = newMachine("rfx", map[string][]string{
	entity.RfxStatusDraft:     {entity.RfxStatusPublished, entity.RfxStatusCancelled},
	entity.RfxStatusPublished: {entity.RfxStatusActive, entity.RfxStatusCancelled},
	entity.RfxStatusActive:    {entity.RfxStatusClosed, entity.RfxStatusCancelled},
	entity.RfxStatusClosed:    nil,
	entity.RfxStatusCancelled: nil,
})

// Invitation: invited -> viewed -> responded|declined. Se puede responder o declinar sin abrir.
var Invitation = newMachine("invitation", map[string][]string{
	entity.InvitationStatusInvited:   {entity.InvitationStatusViewed, entity.InvitationStatusResponded, entity.InvitationStatusDeclined},
	entity.InvitationStatusViewed:    {entity.InvitationStatusResponded, entity.InvitationStatusDeclined},
	entity.InvitationStatusResponded: nil,
	entity.InvitationStatusDeclined:  nil,
})

// Auction: scheduled -> live -> completed; cancelable mientras no termine.
var Auction = newMachine("auction", map[string][]string{
	entity.AuctionStatusScheduled: {entity.AuctionStatusLive, entity.AuctionStatusCancelled},
	entity.AuctionStatusLive:      {entity.AuctionStatusCompleted, entity.AuctionStatusCancelled},
	entity.AuctionStatusCompleted: nil,
	entity.AuctionStatusCancelled: nil,
})

// PurchaseOrder: ciclo lineal hasta paid; cancelable hasta antes de la entrega.
var PurchaseOrder = newMachine("purchase_order", map[string][]string{
	entity.POStatusDraft:        {entity.POStatusIssued, entity.POStatusCancelled},
	entity.POStatusIssued:       {entity.POStatusAcknowledged, entity.POStatusCancelled},
	entity.POStatusAcknowledged: {entity.POStatusShipped, entity.POStatusCancelled},
	entity.POStatusShipped:      {entity.POStatusDelivered, entity.POStatusCancelled},
	entity.POStatusDelivered:    {entity.POStatusInvoiced},
	entity.POStatusInvoiced:     {entity.POStatusPaid},
	entity.POStatusPaid:         nil,
	entity.POStatusCancelled:    nil,
})

// Approval: solo se decide una vez.
var Approval = newMachine("approval", map[string][]string{
	entity.ApprovalStatusPending:  {entity.ApprovalStatusApproved, entity.ApprovalStatusRejected},
	entity.ApprovalStatusApproved: nil,
	entity.ApprovalStatusRejected: nil,
})
