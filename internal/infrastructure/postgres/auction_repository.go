package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
)

var _ repository.AuctionRepository = (*AuctionRepo)(nil)

// AuctionRepo persistencia de subastas, participantes y pujas.
type AuctionRepo struct {
	q Querier
}

// NewAuctionRepository construye el adaptador. Pasar pool o tx.
func NewAuctionRepository(q Querier) *AuctionRepo {
	return &AuctionRepo{q: q}
}

const auctionColumns = `id, name, description, items, start_time, end_time, reserve_price, current_bid, bid_rules,
	status, winner_id, winning_bid, created_by, created_at, updated_at`

func scanAuction(row pgx.Row) (*entity.Auction, error) {
	var a entity.Auction
	err := row.Scan(&a.ID, &a.Name, &a.Description, &a.Items, &a.StartTime, &a.EndTime, &a.ReservePrice, &a.CurrentBid, &a.BidRules,
		&a.Status, &a.WinnerID, &a.WinningBid, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserta la subasta.
func (r *AuctionRepo) Create(ctx context.Context, a *entity.Auction) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO auctions (`+auctionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		a.ID, a.Name, a.Description, a.Items, a.StartTime, a.EndTime, a.ReservePrice, a.CurrentBid, a.BidRules,
		a.Status, a.WinnerID, a.WinningBid, a.CreatedBy, a.CreatedAt, a.UpdatedAt,
	)
	return mapWriteErr("insert auction", err)
}

// GetByID obtiene la subasta; nil si no existe.
func (r *AuctionRepo) GetByID(ctx context.Context, id string) (*entity.Auction, error) {
	a, err := scanAuction(r.q.QueryRow(ctx, `SELECT `+auctionColumns+` FROM auctions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get auction: %w", err)
	}
	return a, nil
}

// List lista subastas por fecha de inicio.
func (r *AuctionRepo) List(ctx context.Context, f repository.AuctionFilter) ([]*entity.Auction, error) {
	var w whereBuilder
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}
	query := `SELECT ` + auctionColumns + ` FROM auctions` + w.sql() + ` ORDER BY start_time DESC`
	query += w.page(f.Page)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Auction
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan auction: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado.
func (r *AuctionRepo) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE auctions SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return mapWriteErr("update auction status", err)
	}
	return affectedOrNotFound(cmd.RowsAffected())
}

// Delete borra la subasta; participantes y pujas caen por cascada.
func (r *AuctionRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM auctions WHERE id = $1`, id)
	if err != nil {
		return mapWriteErr("delete auction", err)
	}
	return affectedOrNotFound(cmd.RowsAffected())
}

// AddParticipant registra al proveedor si aún no lo está.
func (r *AuctionRepo) AddParticipant(ctx context.Context, p *entity.AuctionParticipant) (bool, error) {
	cmd, err := r.q.Exec(ctx, `
		INSERT INTO auction_participants (auction_id, vendor_id, registered_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (auction_id, vendor_id) DO NOTHING`,
		p.AuctionID, p.VendorID, p.RegisteredAt,
	)
	if err != nil {
		return false, mapWriteErr("insert auction participant", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// IsParticipant indica si el proveedor está registrado en la subasta.
func (r *AuctionRepo) IsParticipant(ctx context.Context, auctionID, vendorID string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM auction_participants WHERE auction_id = $1 AND vendor_id = $2)`,
		auctionID, vendorID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check auction participant: %w", err)
	}
	return ok, nil
}

// ListParticipants participantes en orden de registro.
func (r *AuctionRepo) ListParticipants(ctx context.Context, auctionID string) ([]*entity.AuctionParticipant, error) {
	rows, err := r.q.Query(ctx, `
		SELECT auction_id, vendor_id, registered_at FROM auction_participants
		WHERE auction_id = $1 ORDER BY registered_at`, auctionID)
	if err != nil {
		return nil, fmt.Errorf("list auction participants: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuctionParticipant
	for rows.Next() {
		var p entity.AuctionParticipant
		if err := rows.Scan(&p.AuctionID, &p.VendorID, &p.RegisteredAt); err != nil {
			return nil, fmt.Errorf("scan auction participant: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

const bidColumns = `id, auction_id, vendor_id, amount, "timestamp", is_winning`

// CreateBid inserta la puja.
func (r *AuctionRepo) CreateBid(ctx context.Context, b *entity.Bid) error {
	_, err := r.q.Exec(ctx, `INSERT INTO bids (`+bidColumns+`) VALUES ($1, $2, $3, $4, $5, $6)`,
		b.ID, b.AuctionID, b.VendorID, b.Amount, b.Timestamp, b.IsWinning)
	return mapWriteErr("insert bid", err)
}

// GetBid obtiene una puja; nil si no existe.
func (r *AuctionRepo) GetBid(ctx context.Context, id string) (*entity.Bid, error) {
	var b entity.Bid
	err := r.q.QueryRow(ctx, `SELECT `+bidColumns+` FROM bids WHERE id = $1`, id).
		Scan(&b.ID, &b.AuctionID, &b.VendorID, &b.Amount, &b.Timestamp, &b.IsWinning)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bid: %w", err)
	}
	return &b, nil
}

// ListBids pujas de la subasta ordenadas por monto ascendente (subasta inversa).
func (r *AuctionRepo) ListBids(ctx context.Context, auctionID string) ([]*entity.Bid, error) {
	rows, err := r.q.Query(ctx, `SELECT `+bidColumns+` FROM bids WHERE auction_id = $1 ORDER BY amount, "timestamp"`, auctionID)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bid
	for rows.Next() {
		var b entity.Bid
		if err := rows.Scan(&b.ID, &b.AuctionID, &b.VendorID, &b.Amount, &b.Timestamp, &b.IsWinning); err != nil {
			return nil, fmt.Errorf("scan bid: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// RefreshCurrentBid recalcula current_bid como la puja mínima.
func (r *AuctionRepo) RefreshCurrentBid(ctx context.Context, auctionID string) (decimal.Decimal, error) {
	var current decimal.NullDecimal
	err := r.q.QueryRow(ctx, `
		UPDATE auctions SET current_bid = (SELECT min(amount) FROM bids WHERE auction_id = $1), updated_at = now()
		WHERE id = $1
		RETURNING current_bid`, auctionID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("refresh current bid: subasta %s inexistente", auctionID)
		}
		return decimal.Zero, fmt.Errorf("refresh current bid: %w", err)
	}
	return current.Decimal, nil
}

// Award marca la puja ganadora y cierra la subasta. Ejecutar dentro de una transacción.
func (r *AuctionRepo) Award(ctx context.Context, auctionID string, bid *entity.Bid) error {
	if _, err := r.q.Exec(ctx, `UPDATE bids SET is_winning = (id = $2) WHERE auction_id = $1`, auctionID, bid.ID); err != nil {
		return fmt.Errorf("mark winning bid: %w", err)
	}
	cmd, err := r.q.Exec(ctx, `
		UPDATE auctions SET winner_id = $2, winning_bid = $3, status = 'completed', updated_at = now()
		WHERE id = $1`, auctionID, bid.VendorID, bid.Amount)
	if err != nil {
		return mapWriteErr("award auction", err)
	}
	return affectedOrNotFound(cmd.RowsAffected())
}
