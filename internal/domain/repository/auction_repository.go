package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Procurement-api/internal/domain/entity"
)

// AuctionRepository puerto de persistencia para subastas, participantes y pujas.
type AuctionRepository interface {
	Create(ctx context.Context, a *entity.Auction) error
	GetByID(ctx context.Context, id string) (*entity.Auction, error)
	List(ctx context.Context, f AuctionFilter) ([]*entity.Auction, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error

	// AddParticipant es idempotente. Devuelve true si creó la fila.
	AddParticipant(ctx context.Context, p *entity.AuctionParticipant) (bool, error)
	IsParticipant(ctx context.Context, auctionID, vendorID string) (bool, error)
	ListParticipants(ctx context.Context, auctionID string) ([]*entity.AuctionParticipant, error)

	CreateBid(ctx context.Context, b *entity.Bid) error
	GetBid(ctx context.Context, id string) (*entity.Bid, error)
	ListBids(ctx context.Context, auctionID string) ([]*entity.Bid, error)
	// RefreshCurrentBid fija current_bid a la puja más baja registrada y la devuelve.
	RefreshCurrentBid(ctx context.Context, auctionID string) (decimal.Decimal, error)
	// Award marca la puja ganadora, fija winner/winning_bid y completa la subasta.
	Award(ctx context.Context, auctionID string, bid *entity.Bid) error
}
