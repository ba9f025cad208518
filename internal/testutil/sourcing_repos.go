package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Procurement-api/internal/domain"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
)

// ── BOMs ────────────────────────────────────────────────────────────────────

// BOMRepo fake de repository.BOMRepository. AddItemErr permite simular fallos por ítem.
// LineNo sale de un contador que, como la secuencia de Postgres, no retrocede en un rollback.
type BOMRepo struct {
	mu         sync.Mutex
	boms       map[string]entity.BOM
	items      map[string][]entity.BOMItem
	seq        int64
	AddItemErr func(item *entity.BOMItem) error
}

var _ repository.BOMRepository = (*BOMRepo)(nil)

func NewBOMRepo() *BOMRepo {
	return &BOMRepo{boms: map[string]entity.BOM{}, items: map[string][]entity.BOMItem{}}
}

func (r *BOMRepo) clone() *BOMRepo {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := NewBOMRepo()
	c.AddItemErr = r.AddItemErr
	c.seq = r.seq
	for k, v := range r.boms {
		c.boms[k] = v
	}
	for k, v := range r.items {
		c.items[k] = append([]entity.BOMItem(nil), v...)
	}
	return c
}

func (r *BOMRepo) restore(from *BOMRepo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.boms, r.items = from.boms, from.items
}

// Count cantidad de BOMs guardadas.
func (r *BOMRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.boms)
}

func (r *BOMRepo) Create(_ context.Context, b *entity.BOM) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.boms[b.ID]; ok {
		return domain.ErrDuplicate
	}
	r.boms[b.ID] = *b
	return nil
}

func (r *BOMRepo) GetByID(_ context.Context, id string) (*entity.BOM, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.boms[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *BOMRepo) List(_ context.Context, p repository.Page) ([]*entity.BOM, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.BOM{}
	for _, b := range r.boms {
		b := b
		out = append(out, &b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return page(out, p), nil
}

func (r *BOMRepo) Update(_ context.Context, b *entity.BOM) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.boms[b.ID]; !ok {
		return domain.ErrNotFound
	}
	r.boms[b.ID] = *b
	return nil
}

func (r *BOMRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.boms[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.boms, id)
	delete(r.items, id)
	return nil
}

func (r *BOMRepo) AddItem(_ context.Context, item *entity.BOMItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.AddItemErr != nil {
		if err := r.AddItemErr(item); err != nil {
			return err
		}
	}
	if _, ok := r.boms[item.BOMID]; !ok {
		return domain.ErrInvalidInput
	}
	r.seq++
	item.LineNo = r.seq
	r.items[item.BOMID] = append(r.items[item.BOMID], *item)
	return nil
}

// ListItems ordena por LineNo. Sin líneas devuelve nil, igual que un scan de pgx sin filas.
func (r *BOMRepo) ListItems(_ context.Context, bomID string) ([]*entity.BOMItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.BOMItem
	for _, it := range r.items[bomID] {
		it := it
		out = append(out, &it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LineNo < out[j].LineNo })
	return out, nil
}

func (r *BOMRepo) DeleteItem(_ context.Context, bomID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.items[bomID]
	for i, it := range items {
		if it.ID == itemID {
			r.items[bomID] = append(items[:i:i], items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── RFx ─────────────────────────────────────────────────────────────────────

type invitationKey struct{ rfxID, vendorID string }

// RfxRepo fake de repository.RfxRepository.
type RfxRepo struct {
	mu          sync.Mutex
	events      map[string]entity.RfxEvent
	invitations map[invitationKey]entity.RfxInvitation
	responses   []entity.RfxResponse
}

var _ repository.RfxRepository = (*RfxRepo)(nil)

func NewRfxRepo() *RfxRepo {
	return &RfxRepo{events: map[string]entity.RfxEvent{}, invitations: map[invitationKey]entity.RfxInvitation{}}
}

func (r *RfxRepo) Create(_ context.Context, e *entity.RfxEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ex := range r.events {
		if ex.ReferenceNo == e.ReferenceNo {
			return domain.ErrDuplicate
		}
	}
	r.events[e.ID] = *e
	return nil
}

func (r *RfxRepo) GetByID(_ context.Context, id string) (*entity.RfxEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *RfxRepo) List(_ context.Context, f repository.RfxFilter) ([]*entity.RfxEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.RfxEvent{}
	for _, e := range r.events {
		if (f.Status != "" && e.Status != f.Status) || (f.Type != "" && e.Type != f.Type) {
			continue
		}
		e := e
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return page(out, f.Page), nil
}

func (r *RfxRepo) Update(_ context.Context, e *entity.RfxEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[e.ID]; !ok {
		return domain.ErrNotFound
	}
	r.events[e.ID] = *e
	return nil
}

func (r *RfxRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.Status = status
	r.events[id] = e
	return nil
}

func (r *RfxRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.events, id)
	for k := range r.invitations {
		if k.rfxID == id {
			delete(r.invitations, k)
		}
	}
	kept := r.responses[:0]
	for _, resp := range r.responses {
		if resp.RfxID != id {
			kept = append(kept, resp)
		}
	}
	r.responses = kept
	return nil
}

func (r *RfxRepo) Invite(_ context.Context, inv *entity.RfxInvitation) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := invitationKey{inv.RfxID, inv.VendorID}
	if _, ok := r.invitations[k]; ok {
		return false, nil
	}
	r.invitations[k] = *inv
	return true, nil
}

func (r *RfxRepo) GetInvitation(_ context.Context, rfxID, vendorID string) (*entity.RfxInvitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invitations[invitationKey{rfxID, vendorID}]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (r *RfxRepo) ListInvitations(_ context.Context, rfxID string) ([]*entity.RfxInvitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.RfxInvitation{}
	for k, inv := range r.invitations {
		if k.rfxID == rfxID {
			inv := inv
			out = append(out, &inv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VendorID < out[j].VendorID })
	return out, nil
}

func (r *RfxRepo) UpdateInvitationStatus(_ context.Context, rfxID, vendorID, status string, respondedAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := invitationKey{rfxID, vendorID}
	inv, ok := r.invitations[k]
	if !ok {
		return domain.ErrNotFound
	}
	inv.Status = status
	if respondedAt != nil {
		inv.RespondedAt = respondedAt
	}
	r.invitations[k] = inv
	return nil
}

func (r *RfxRepo) CreateResponse(_ context.Context, resp *entity.RfxResponse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[resp.RfxID]; !ok {
		return domain.ErrInvalidInput
	}
	r.responses = append(r.responses, *resp)
	return nil
}

func (r *RfxRepo) ListResponses(_ context.Context, rfxID string) ([]*entity.RfxResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.RfxResponse{}
	for _, resp := range r.responses {
		if resp.RfxID == rfxID {
			resp := resp
			out = append(out, &resp)
		}
	}
	return out, nil
}

// ── Auctions ────────────────────────────────────────────────────────────────

type participantKey struct{ auctionID, vendorID string }

// AuctionRepo fake de repository.AuctionRepository.
type AuctionRepo struct {
	mu           sync.Mutex
	auctions     map[string]entity.Auction
	participants map[participantKey]entity.AuctionParticipant
	bids         []entity.Bid
}

var _ repository.AuctionRepository = (*AuctionRepo)(nil)

func NewAuctionRepo() *AuctionRepo {
	return &AuctionRepo{auctions: map[string]entity.Auction{}, participants: map[participantKey]entity.AuctionParticipant{}}
}

func (r *AuctionRepo) clone() *AuctionRepo {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := NewAuctionRepo()
	for k, v := range r.auctions {
		c.auctions[k] = v
	}
	for k, v := range r.participants {
		c.participants[k] = v
	}
	c.bids = append([]entity.Bid(nil), r.bids...)
	return c
}

func (r *AuctionRepo) restore(from *AuctionRepo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions, r.participants, r.bids = from.auctions, from.participants, from.bids
}

func (r *AuctionRepo) Create(_ context.Context, a *entity.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[a.ID] = *a
	return nil
}

func (r *AuctionRepo) GetByID(_ context.Context, id string) (*entity.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.auctions[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *AuctionRepo) List(_ context.Context, f repository.AuctionFilter) ([]*entity.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.Auction{}
	for _, a := range r.auctions {
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		a := a
		out = append(out, &a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return page(out, f.Page), nil
}

func (r *AuctionRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.auctions[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Status = status
	r.auctions[id] = a
	return nil
}

func (r *AuctionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.auctions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.auctions, id)
	return nil
}

func (r *AuctionRepo) AddParticipant(_ context.Context, p *entity.AuctionParticipant) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := participantKey{p.AuctionID, p.VendorID}
	if _, ok := r.participants[k]; ok {
		return false, nil
	}
	r.participants[k] = *p
	return true, nil
}

func (r *AuctionRepo) IsParticipant(_ context.Context, auctionID, vendorID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.participants[participantKey{auctionID, vendorID}]
	return ok, nil
}

func (r *AuctionRepo) ListParticipants(_ context.Context, auctionID string) ([]*entity.AuctionParticipant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.AuctionParticipant{}
	for k, p := range r.participants {
		if k.auctionID == auctionID {
			p := p
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VendorID < out[j].VendorID })
	return out, nil
}

func (r *AuctionRepo) CreateBid(_ context.Context, b *entity.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bids = append(r.bids, *b)
	return nil
}

func (r *AuctionRepo) GetBid(_ context.Context, id string) (*entity.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bids {
		if b.ID == id {
			b := b
			return &b, nil
		}
	}
	return nil, nil
}

func (r *AuctionRepo) ListBids(_ context.Context, auctionID string) ([]*entity.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.Bid{}
	for _, b := range r.bids {
		if b.AuctionID == auctionID {
			b := b
			out = append(out, &b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Amount.LessThan(out[j].Amount) })
	return out, nil
}

func (r *AuctionRepo) RefreshCurrentBid(_ context.Context, auctionID string) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.auctions[auctionID]
	if !ok {
		return decimal.Zero, domain.ErrNotFound
	}
	var low decimal.NullDecimal
	for _, b := range r.bids {
		if b.AuctionID == auctionID && (!low.Valid || b.Amount.LessThan(low.Decimal)) {
			low = decimal.NewNullDecimal(b.Amount)
		}
	}
	a.CurrentBid = low
	r.auctions[auctionID] = a
	return low.Decimal, nil
}

func (r *AuctionRepo) Award(_ context.Context, auctionID string, bid *entity.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.auctions[auctionID]
	if !ok {
		return domain.ErrNotFound
	}
	for i := range r.bids {
		if r.bids[i].AuctionID == auctionID {
			r.bids[i].IsWinning = r.bids[i].ID == bid.ID
		}
	}
	winner := bid.VendorID
	a.WinnerID = &winner
	a.WinningBid = decimal.NewNullDecimal(bid.Amount)
	a.Status = entity.AuctionStatusCompleted
	r.auctions[auctionID] = a
	return nil
}

// ── Purchase orders ─────────────────────────────────────────────────────────

// PurchaseOrderRepo fake de repository.PurchaseOrderRepository.
type PurchaseOrderRepo struct {
	mu         sync.Mutex
	orders     map[string]entity.PurchaseOrder
	lines      map[string][]entity.POLineItem
	AddLineErr func(line *entity.POLineItem) error
}

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

func NewPurchaseOrderRepo() *PurchaseOrderRepo {
	return &PurchaseOrderRepo{orders: map[string]entity.PurchaseOrder{}, lines: map[string][]entity.POLineItem{}}
}

func (r *PurchaseOrderRepo) clone() *PurchaseOrderRepo {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := NewPurchaseOrderRepo()
	c.AddLineErr = r.AddLineErr
	for k, v := range r.orders {
		c.orders[k] = v
	}
	for k, v := range r.lines {
		c.lines[k] = append([]entity.POLineItem(nil), v...)
	}
	return c
}

func (r *PurchaseOrderRepo) restore(from *PurchaseOrderRepo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders, r.lines = from.orders, from.lines
}

// Count cantidad de órdenes guardadas.
func (r *PurchaseOrderRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}

func (r *PurchaseOrderRepo) Create(_ context.Context, po *entity.PurchaseOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ex := range r.orders {
		if ex.PONumber == po.PONumber {
			return domain.ErrDuplicate
		}
	}
	r.orders[po.ID] = *po
	return nil
}

func (r *PurchaseOrderRepo) AddLine(_ context.Context, line *entity.POLineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.AddLineErr != nil {
		if err := r.AddLineErr(line); err != nil {
			return err
		}
	}
	r.lines[line.POID] = append(r.lines[line.POID], *line)
	return nil
}

func (r *PurchaseOrderRepo) GetByID(_ context.Context, id string) (*entity.PurchaseOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	po, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return &po, nil
}

func (r *PurchaseOrderRepo) ListLines(_ context.Context, poID string) ([]*entity.POLineItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.POLineItem{}
	for _, l := range r.lines[poID] {
		l := l
		out = append(out, &l)
	}
	return out, nil
}

func (r *PurchaseOrderRepo) List(_ context.Context, f repository.PurchaseOrderFilter) ([]*entity.PurchaseOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.PurchaseOrder{}
	for _, po := range r.orders {
		if (f.VendorID != "" && po.VendorID != f.VendorID) || (f.Status != "" && po.Status != f.Status) {
			continue
		}
		po := po
		out = append(out, &po)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PONumber < out[j].PONumber })
	return page(out, f.Page), nil
}

func (r *PurchaseOrderRepo) UpdateStatus(_ context.Context, id, status string, acknowledgedAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	po, ok := r.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	po.Status = status
	if acknowledgedAt != nil {
		po.AcknowledgedAt = acknowledgedAt
	}
	r.orders[id] = po
	return nil
}

func (r *PurchaseOrderRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.orders, id)
	delete(r.lines, id)
	return nil
}

// ── Approvals & notifications ───────────────────────────────────────────────

// ApprovalRepo fake de repository.ApprovalRepository.
type ApprovalRepo struct {
	mu   sync.Mutex
	rows map[string]entity.Approval
}

var _ repository.ApprovalRepository = (*ApprovalRepo)(nil)

func NewApprovalRepo() *ApprovalRepo {
	return &ApprovalRepo{rows: map[string]entity.Approval{}}
}

func (r *ApprovalRepo) clone() *ApprovalRepo {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := NewApprovalRepo()
	for k, v := range r.rows {
		c.rows[k] = v
	}
	return c
}

func (r *ApprovalRepo) restore(from *ApprovalRepo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = from.rows
}

func (r *ApprovalRepo) Create(_ context.Context, a *entity.Approval) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[a.ID] = *a
	return nil
}

func (r *ApprovalRepo) GetByID(_ context.Context, id string) (*entity.Approval, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *ApprovalRepo) List(_ context.Context, f repository.ApprovalFilter) ([]*entity.Approval, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.Approval{}
	for _, a := range r.rows {
		if (f.ApproverID != "" && a.ApproverID != f.ApproverID) ||
			(f.Status != "" && a.Status != f.Status) ||
			(f.EntityType != "" && a.EntityType != f.EntityType) ||
			(f.EntityID != "" && a.EntityID != f.EntityID) {
			continue
		}
		a := a
		out = append(out, &a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return page(out, f.Page), nil
}

func (r *ApprovalRepo) Decide(_ context.Context, a *entity.Approval) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.rows[a.ID]
	if !ok || cur.Status != entity.ApprovalStatusPending {
		return domain.ErrNotFound
	}
	cur.Status, cur.Comments, cur.ApprovedAt = a.Status, a.Comments, a.ApprovedAt
	r.rows[a.ID] = cur
	return nil
}

// NotificationRepo fake de repository.NotificationRepository.
type NotificationRepo struct {
	mu   sync.Mutex
	rows []entity.Notification
}

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

func NewNotificationRepo() *NotificationRepo {
	return &NotificationRepo{}
}

func (r *NotificationRepo) clone() *NotificationRepo {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &NotificationRepo{rows: append([]entity.Notification(nil), r.rows...)}
}

func (r *NotificationRepo) restore(from *NotificationRepo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = from.rows
}

// All todas las notificaciones, en orden de creación.
func (r *NotificationRepo) All() []entity.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.Notification(nil), r.rows...)
}

func (r *NotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *n)
	return nil
}

func (r *NotificationRepo) ListByUser(_ context.Context, userID string, unreadOnly bool, p repository.Page) ([]*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*entity.Notification{}
	for i := len(r.rows) - 1; i >= 0; i-- {
		n := r.rows[i]
		if n.UserID != userID || (unreadOnly && n.IsRead) {
			continue
		}
		out = append(out, &n)
	}
	return page(out, p), nil
}

func (r *NotificationRepo) CountUnread(_ context.Context, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := 0
	for _, n := range r.rows {
		if n.UserID == userID && !n.IsRead {
			c++
		}
	}
	return c, nil
}

func (r *NotificationRepo) MarkRead(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == id && r.rows[i].UserID == userID {
			r.rows[i].IsRead = true
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *NotificationRepo) MarkAllRead(_ context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for i := range r.rows {
		if r.rows[i].UserID == userID && !r.rows[i].IsRead {
			r.rows[i].IsRead = true
			n++
		}
	}
	return n, nil
}
