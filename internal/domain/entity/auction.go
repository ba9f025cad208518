package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Auction.
const (
	AuctionStatusScheduled = "scheduled"
	AuctionStatusLive      = "live"
	AuctionStatusCompleted = "completed"
	AuctionStatusCancelled = "cancelled"
)

// Auction subasta inversa con ventana de tiempo.
type Auction struct {
	ID           string
	Name         string
	Description  string
	Items        json.RawMessage
	StartTime    time.Time
	EndTime      time.Time
	ReservePrice decimal.NullDecimal
	CurrentBid   decimal.NullDecimal
	BidRules     json.RawMessage
	Status       string
	WinnerID     *string
	WinningBid   decimal.NullDecimal
	CreatedBy    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AuctionParticipant registro de un proveedor en una subasta (PK compuesta).
type AuctionParticipant struct {
	AuctionID    string
	VendorID     string
	RegisteredAt time.Time
}

// Bid puja registrada.
type Bid struct {
	ID        string
	AuctionID string
	VendorID  string
	Amount    decimal.Decimal
	Timestamp time.Time
	IsWinning bool
}
