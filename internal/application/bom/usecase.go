// Package bom casos de uso de listas de materiales persistidas.
package bom

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Procurement-api/internal/application/dto"
	"github.com/jhoicas/Procurement-api/internal/domain"
	dombom "github.com/jhoicas/Procurement-api/internal/domain/bom"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
)

// UseCase alta, consulta y edición de BOMs e ítems.
type UseCase struct {
	repo     repository.BOMRepository
	products repository.ProductRepository
	txRunner TxRunner
	now      func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.BOMRepository, products repository.ProductRepository, txRunner TxRunner) *UseCase {
	return &UseCase{repo: repo, products: products, txRunner: txRunner, now: time.Now}
}

// Create crea la cabecera y, si vienen, sus ítems en una transacción: un ítem inválido
// no deja nada persistido.
func (uc *UseCase) Create(ctx context.Context, createdBy string, in dto.CreateBOMRequest) (*dto.BOMDetailResponse, error) {
	now := uc.now()
	b := &entity.BOM{
		ID:        uuid.New().String(),
		Version:   entity.DefaultBOMVersion,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if createdBy != "" {
		b.CreatedBy = &createdBy
	}
	applyHeader(b, in)
	if b.ValidFrom != nil && b.ValidTo != nil && b.ValidTo.Before(*b.ValidFrom) {
		return nil, domain.ErrInvalidInput
	}

	items := make([]*entity.BOMItem, 0, len(in.Items))
	for i := range in.Items {
		item, err := uc.buildItem(ctx, b.ID, in.Items[i], now)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}

	err := uc.txRunner.RunBOM(ctx, func(boms repository.BOMRepository) error {
		if err := boms.Create(ctx, b); err != nil {
			return err
		}
		for i, item := range items {
			if err := boms.AddItem(ctx, item); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toBOMDetail(b, items), nil
}

// GetByID devuelve la BOM con sus ítems y el valor total.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.BOMDetailResponse, error) {
	b, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := uc.repo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBOMDetail(b, items), nil
}

// List lista cabeceras de BOM.
func (uc *UseCase) List(ctx context.Context, p dto.PageRequest) (*dto.ListResponse[dto.BOMResponse], error) {
	p.DefaultPage()
	list, err := uc.repo.List(ctx, p.Repo())
	if err != nil {
		return nil, err
	}
	items := make([]dto.BOMResponse, 0, len(list))
	for _, b := range list {
		items = append(items, toBOMResponse(b))
	}
	out := dto.NewListResponse(items, p)
	return &out, nil
}

// Update actualización parcial de la cabecera.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateBOMRequest) (*dto.BOMResponse, error) {
	b, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		b.Name = *in.Name
	}
	if in.Version != nil && *in.Version != "" {
		b.Version = *in.Version
	}
	if in.Description != nil {
		b.Description = *in.Description
	}
	if in.Category != nil {
		b.Category = *in.Category
	}
	if in.ValidFrom != nil {
		b.ValidFrom = in.ValidFrom
	}
	if in.ValidTo != nil {
		b.ValidTo = in.ValidTo
	}
	if in.Tags != nil {
		b.Tags = domain.NormalizeTags(in.Tags)
	}
	if in.IsActive != nil {
		b.IsActive = *in.IsActive
	}
	if b.ValidFrom != nil && b.ValidTo != nil && b.ValidTo.Before(*b.ValidFrom) {
		return nil, domain.ErrInvalidInput
	}
	b.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	out := toBOMResponse(b)
	return &out, nil
}

// Delete elimina la BOM; sus ítems caen en cascada.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// AddItem agrega una línea a una BOM existente.
func (uc *UseCase) AddItem(ctx context.Context, bomID string, in dto.BOMItemRequest) (*dto.BOMItemResponse, error) {
	if _, err := uc.get(ctx, bomID); err != nil {
		return nil, err
	}
	item, err := uc.buildItem(ctx, bomID, in, uc.now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.AddItem(ctx, item); err != nil {
		return nil, err
	}
	out := toItemResponse(item)
	return &out, nil
}

// ListItems ítems de la BOM en orden de alta.
func (uc *UseCase) ListItems(ctx context.Context, bomID string) ([]dto.BOMItemResponse, error) {
	if _, err := uc.get(ctx, bomID); err != nil {
		return nil, err
	}
	items, err := uc.repo.ListItems(ctx, bomID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BOMItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out, nil
}

// DeleteItem quita una línea de la BOM.
func (uc *UseCase) DeleteItem(ctx context.Context, bomID, itemID string) error {
	return uc.repo.DeleteItem(ctx, bomID, itemID)
}

// buildItem valida la línea contra el catálogo. Si el cliente manda totalPrice debe coincidir
// con quantity × unitPrice redondeado a centavos.
func (uc *UseCase) buildItem(ctx context.Context, bomID string, in dto.BOMItemRequest, now time.Time) (*entity.BOMItem, error) {
	if !in.Quantity.IsPositive() || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, in.ProductID)
	}
	total := dombom.LineTotal(in.Quantity, in.UnitPrice)
	if in.TotalPrice != nil && !in.TotalPrice.Round(2).Equal(total) {
		return nil, fmt.Errorf("%w: totalPrice %s no coincide con %s", domain.ErrInvalidInput, in.TotalPrice.String(), total.StringFixed(2))
	}
	uom := in.UOM
	if uom == "" {
		uom = p.UOM
	}
	if uom == "" {
		uom = dombom.DefaultUOM
	}
	return &entity.BOMItem{
		ID:         uuid.New().String(),
		BOMID:      bomID,
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		UOM:        uom,
		UnitPrice:  in.UnitPrice,
		TotalPrice: total,
		CreatedAt:  now,
	}, nil
}

func (uc *UseCase) get(ctx context.Context, id string) (*entity.BOM, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

func applyHeader(b *entity.BOM, in dto.CreateBOMRequest) {
	b.Name = in.Name
	if in.Version != "" {
		b.Version = in.Version
	}
	b.Description = in.Description
	b.Category = in.Category
	b.ValidFrom = in.ValidFrom
	b.ValidTo = in.ValidTo
	b.Tags = domain.NormalizeTags(in.Tags)
	if in.IsActive != nil {
		b.IsActive = *in.IsActive
	}
}

func toBOMResponse(b *entity.BOM) dto.BOMResponse {
	return dto.BOMResponse{
		ID:          b.ID,
		Name:        b.Name,
		Version:     b.Version,
		Description: b.Description,
		Category:    b.Category,
		ValidFrom:   b.ValidFrom,
		ValidTo:     b.ValidTo,
		Tags:        b.Tags,
		IsActive:    b.IsActive,
		CreatedBy:   b.CreatedBy,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// toBOMDetail acepta items nil (BOM sin líneas): sale items vacío y total cero.
func toBOMDetail(b *entity.BOM, items []*entity.BOMItem) *dto.BOMDetailResponse {
	out := &dto.BOMDetailResponse{
		BOMResponse: toBOMResponse(b),
		Items:       make([]dto.BOMItemResponse, 0, len(items)),
		TotalValue:  decimal.Zero,
	}
	for _, it := range items {
		out.Items = append(out.Items, toItemResponse(it))
		out.TotalValue = out.TotalValue.Add(it.TotalPrice)
	}
	return out
}

func toItemResponse(it *entity.BOMItem) dto.BOMItemResponse {
	return dto.BOMItemResponse{
		ID:         it.ID,
		BOMID:      it.BOMID,
		ProductID:  it.ProductID,
		LineNo:     it.LineNo,
		Quantity:   it.Quantity,
		UOM:        it.UOM,
		UnitPrice:  it.UnitPrice,
		TotalPrice: it.TotalPrice,
		CreatedAt:  it.CreatedAt,
	}
}
