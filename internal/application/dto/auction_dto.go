package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateAuctionRequest alta de subasta.
type CreateAuctionRequest struct {
	Name         string              `json:"name" validate:"required,min=1,max=200"`
	Description  string              `json:"description"`
	Items        json.RawMessage     `json:"items" swaggertype:"object"`
	StartTime    time.Time           `json:"startTime" validate:"required"`
	EndTime      time.Time           `json:"endTime" validate:"required"`
	ReservePrice decimal.NullDecimal `json:"reservePrice" swaggertype:"string"`
	BidRules     json.RawMessage     `json:"bidRules" swaggertype:"object"`
}

// AuctionResponse salida de subasta.
type AuctionResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	Items        json.RawMessage     `json:"items" swaggertype:"object"`
	StartTime    time.Time           `json:"startTime"`
	EndTime      time.Time           `json:"endTime"`
	ReservePrice decimal.NullDecimal `json:"reservePrice" swaggertype:"string"`
	CurrentBid   decimal.NullDecimal `json:"currentBid" swaggertype:"string"`
	BidRules     json.RawMessage     `json:"bidRules" swaggertype:"object"`
	Status       string              `json:"status"`
	WinnerID     *string             `json:"winnerId"`
	WinningBid   decimal.NullDecimal `json:"winningBid" swaggertype:"string"`
	CreatedBy    *string             `json:"createdBy"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// AuctionListQuery filtros de GET /api/auctions.
type AuctionListQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=scheduled live completed cancelled"`
	PageRequest
}

// RegisterParticipantRequest registro de proveedor en la subasta.
type RegisterParticipantRequest struct {
	VendorID string `json:"vendorId" validate:"required,uuid"`
}

// ParticipantResponse salida de participante.
type ParticipantResponse struct {
	AuctionID    string    `json:"auctionId"`
	VendorID     string    `json:"vendorId"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// PlaceBidRequest puja.
type PlaceBidRequest struct {
	VendorID string          `json:"vendorId" validate:"required,uuid"`
	Amount   decimal.Decimal `json:"amount" swaggertype:"string"`
}

// BidResponse salida de puja.
type BidResponse struct {
	ID        string          `json:"id"`
	AuctionID string          `json:"auctionId"`
	VendorID  string          `json:"vendorId"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string"`
	Timestamp time.Time       `json:"timestamp"`
	IsWinning bool            `json:"isWinning"`
}

// AwardRequest adjudicación; BidID vacío adjudica la puja más baja.
type AwardRequest struct {
	BidID string `json:"bidId" validate:"omitempty,uuid"`
}
