package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Procurement-api/internal/application/dto"
	"github.com/jhoicas/Procurement-api/internal/domain"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
	"github.com/jhoicas/Procurement-api/internal/domain/workflow"
)

// AuctionUseCase subastas inversas: estado, participantes, pujas y adjudicación.
// No aplica reglas de decremento ni de tiempo; current_bid es la puja más baja registrada.
type AuctionUseCase struct {
	repo       repository.AuctionRepository
	vendorRepo repository.VendorRepository
	txRunner   AuctionTxRunner
	now        func() time.Time
}

// NewAuctionUseCase construye el caso de uso.
func NewAuctionUseCase(repo repository.AuctionRepository, vendorRepo repository.VendorRepository, txRunner AuctionTxRunner) *AuctionUseCase {
	return &AuctionUseCase{repo: repo, vendorRepo: vendorRepo, txRunner: txRunner, now: time.Now}
}

// Create programa una subasta. EndTime debe ser posterior a StartTime.
func (uc *AuctionUseCase) Create(ctx context.Context, createdBy string, in dto.CreateAuctionRequest) (*dto.AuctionResponse, error) {
	if !in.EndTime.After(in.StartTime) {
		return nil, domain.ErrInvalidInput
	}
	if in.ReservePrice.Valid && in.ReservePrice.Decimal.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	a := &entity.Auction{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Description:  in.Description,
		Items:        in.Items,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		ReservePrice: in.ReservePrice,
		BidRules:     in.BidRules,
		Status:       entity.AuctionStatusScheduled,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if createdBy != "" {
		a.CreatedBy = &createdBy
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toAuctionResponse(a), nil
}

// GetByID obtiene una subasta; ErrNotFound si no existe.
func (uc *AuctionUseCase) GetByID(ctx context.Context, id string) (*dto.AuctionResponse, error) {
	a, err := getAuction(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	return toAuctionResponse(a), nil
}

// List lista subastas por estado.
func (uc *AuctionUseCase) List(ctx context.Context, q dto.AuctionListQuery) (*dto.ListResponse[dto.AuctionResponse], error) {
	q.DefaultPage()
	list, err := uc.repo.List(ctx, repository.AuctionFilter{Status: q.Status, Page: q.Repo()})
	if err != nil {
		return nil, err
	}
	items := make([]dto.AuctionResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAuctionResponse(a))
	}
	out := dto.NewListResponse(items, q.PageRequest)
	return &out, nil
}

// ChangeStatus scheduled -> live -> completed, o cancelled mientras no termine.
// Para completar con ganador usar Award.
func (uc *AuctionUseCase) ChangeStatus(ctx context.Context, id, status string) (*dto.AuctionResponse, error) {
	a, err := getAuction(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	if err := workflow.Auction.Check(a.Status, status); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	a.Status = status
	return toAuctionResponse(a), nil
}

// Delete elimina la subasta con participantes y pujas.
func (uc *AuctionUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// RegisterParticipant registra al proveedor. Es idempotente.
func (uc *AuctionUseCase) RegisterParticipant(ctx context.Context, auctionID, vendorID string) (*dto.ParticipantResponse, error) {
	a, err := getAuction(ctx, uc.repo, auctionID)
	if err != nil {
		return nil, err
	}
	if workflow.Auction.Terminal(a.Status) {
		return nil, domain.ErrInvalidTransition
	}
	p := &entity.AuctionParticipant{AuctionID: auctionID, VendorID: vendorID, RegisteredAt: uc.now()}
	if _, err := uc.repo.AddParticipant(ctx, p); err != nil {
		return nil, err
	}
	return &dto.ParticipantResponse{AuctionID: p.AuctionID, VendorID: p.VendorID, RegisteredAt: p.RegisteredAt}, nil
}

// ListParticipants lista los proveedores registrados.
func (uc *AuctionUseCase) ListParticipants(ctx context.Context, auctionID string) ([]dto.ParticipantResponse, error) {
	if _, err := getAuction(ctx, uc.repo, auctionID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListParticipants(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ParticipantResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ParticipantResponse{AuctionID: p.AuctionID, VendorID: p.VendorID, RegisteredAt: p.RegisteredAt})
	}
	return out, nil
}

// PlaceBid registra una puja: subasta live, proveedor registrado y monto positivo.
// Un usuario vendor solo puja por su propio proveedor.
func (uc *AuctionUseCase) PlaceBid(ctx context.Context, actor Actor, auctionID string, in dto.PlaceBidRequest) (*dto.BidResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	vendorID, err := actingVendor(ctx, uc.vendorRepo, actor, in.VendorID)
	if err != nil {
		return nil, err
	}
	in.VendorID = vendorID
	a, err := getAuction(ctx, uc.repo, auctionID)
	if err != nil {
		return nil, err
	}
	if a.Status != entity.AuctionStatusLive {
		return nil, domain.ErrInvalidTransition
	}
	ok, err := uc.repo.IsParticipant(ctx, auctionID, in.VendorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrForbidden
	}
	b := &entity.Bid{
		ID:        uuid.New().String(),
		AuctionID: auctionID,
		VendorID:  in.VendorID,
		Amount:    in.Amount,
		Timestamp: uc.now(),
	}
	if err := uc.repo.CreateBid(ctx, b); err != nil {
		return nil, err
	}
	if _, err := uc.repo.RefreshCurrentBid(ctx, auctionID); err != nil {
		return nil, err
	}
	out := toBidResponse(b)
	return &out, nil
}

// ListBids pujas de la subasta de menor a mayor monto.
func (uc *AuctionUseCase) ListBids(ctx context.Context, auctionID string) ([]dto.BidResponse, error) {
	if _, err := getAuction(ctx, uc.repo, auctionID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListBids(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BidResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBidResponse(b))
	}
	return out, nil
}

// Award adjudica la subasta a la puja indicada o, si bidID es vacío, a la más baja.
// Marca la puja ganadora, fija winner/winning_bid y completa la subasta en una transacción.
func (uc *AuctionUseCase) Award(ctx context.Context, auctionID, bidID string) (*dto.AuctionResponse, error) {
	var awarded *entity.Auction
	err := uc.txRunner.RunAuction(ctx, func(auctions repository.AuctionRepository) error {
		a, err := getAuction(ctx, auctions, auctionID)
		if err != nil {
			return err
		}
		if err := workflow.Auction.Check(a.Status, entity.AuctionStatusCompleted); err != nil {
			return err
		}
		bid, err := pickBid(ctx, auctions, auctionID, bidID)
		if err != nil {
			return err
		}
		if err := auctions.Award(ctx, auctionID, bid); err != nil {
			return err
		}
		awarded, err = getAuction(ctx, auctions, auctionID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toAuctionResponse(awarded), nil
}

func pickBid(ctx context.Context, auctions repository.AuctionRepository, auctionID, bidID string) (*entity.Bid, error) {
	if bidID != "" {
		b, err := auctions.GetBid(ctx, bidID)
		if err != nil {
			return nil, err
		}
		if b == nil || b.AuctionID != auctionID {
			return nil, domain.ErrNotFound
		}
		return b, nil
	}
	bids, err := auctions.ListBids(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if len(bids) == 0 {
		return nil, domain.ErrInvalidInput
	}
	low := bids[0]
	for _, b := range bids[1:] {
		if b.Amount.LessThan(low.Amount) {
			low = b
		}
	}
	return low, nil
}

func getAuction(ctx context.Context, repo repository.AuctionRepository, id string) (*entity.Auction, error) {
	a, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func toAuctionResponse(a *entity.Auction) *dto.AuctionResponse {
	return &dto.AuctionResponse{
		ID:           a.ID,
		Name:         a.Name,
		Description:  a.Description,
		Items:        a.Items,
		StartTime:    a.StartTime,
		EndTime:      a.EndTime,
		ReservePrice: a.ReservePrice,
		CurrentBid:   a.CurrentBid,
		BidRules:     a.BidRules,
		Status:       a.Status,
		WinnerID:     a.WinnerID,
		WinningBid:   a.WinningBid,
		CreatedBy:    a.CreatedBy,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func toBidResponse(b *entity.Bid) dto.BidResponse {
	return dto.BidResponse{
		ID:        b.ID,
		AuctionID: b.AuctionID,
		VendorID:  b.VendorID,
		Amount:    b.Amount,
		Timestamp: b.Timestamp,
		IsWinning: b.IsWinning,
	}
}
