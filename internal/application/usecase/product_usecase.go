package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Procurement-api/internal/application/dto"
	"github.com/jhoicas/Procurement-api/internal/domain"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
	"github.com/jhoicas/Procurement-api/pkg/logger"
)

// ProductUseCase CRUD del catálogo. Los listados pasan por la caché y toda escritura la invalida.
type ProductUseCase struct {
	repo  repository.ProductRepository
	cache repository.ProductListCache
	log   *logger.Logger
}

// NewProductUseCase construye el caso de uso. cache puede ser nil (sin caché).
func NewProductUseCase(repo repository.ProductRepository, cache repository.ProductListCache, log *logger.Logger) *ProductUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{repo: repo, cache: cache, log: log.Named("products")}
}

// Create crea un producto activo.
func (uc *ProductUseCase) Create(ctx context.Context, createdBy string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.BasePrice.Valid && in.BasePrice.Decimal.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Product{
		ID:             uuid.New().String(),
		ItemName:       in.ItemName,
		InternalCode:   in.InternalCode,
		ExternalCode:   in.ExternalCode,
		Description:    in.Description,
		Category:       in.Category,
		SubCategory:    in.SubCategory,
		UOM:            in.UOM,
		BasePrice:      in.BasePrice,
		Specifications: in.Specifications,
		Tags:           domain.NormalizeTags(in.Tags),
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if createdBy != "" {
		p.CreatedBy = &createdBy
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return toProductResponse(p), nil
}

// GetByID obtiene un producto; ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// List lista el catálogo con filtros. Responde desde la caché si hay entrada vigente.
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductListQuery) (*dto.ListResponse[dto.ProductResponse], error) {
	q.DefaultPage()
	f := repository.ProductFilter{Active: q.Active, Category: q.Category, Search: q.Search, Page: q.Repo()}

	list, version, hit := uc.cacheGet(ctx, f)
	if !hit {
		var err error
		list, err = uc.repo.List(ctx, f)
		if err != nil {
			return nil, err
		}
		if uc.cache != nil {
			uc.cache.SetList(ctx, f, version, list)
		}
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	out := dto.NewListResponse(items, q.PageRequest)
	return &out, nil
}

// Update actualización parcial.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.ItemName != nil {
		p.ItemName = *in.ItemName
	}
	if in.InternalCode != nil {
		p.InternalCode = *in.InternalCode
	}
	if in.ExternalCode != nil {
		p.ExternalCode = *in.ExternalCode
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.SubCategory != nil {
		p.SubCategory = *in.SubCategory
	}
	if in.UOM != nil {
		p.UOM = *in.UOM
	}
	if in.BasePrice != nil {
		if in.BasePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.BasePrice = decimal.NewNullDecimal(*in.BasePrice)
	}
	if len(in.Specifications) > 0 {
		p.Specifications = in.Specifications
	}
	if in.Tags != nil {
		p.Tags = domain.NormalizeTags(in.Tags)
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if in.ApprovedBy != nil {
		p.ApprovedBy = in.ApprovedBy
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return toProductResponse(p), nil
}

// Deactivate da de baja el producto (borrado lógico).
func (uc *ProductUseCase) Deactivate(ctx context.Context, id string) error {
	if err := uc.repo.SetActive(ctx, id, false); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

func (uc *ProductUseCase) get(ctx context.Context, id string) (*entity.Product, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (uc *ProductUseCase) cacheGet(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, int64, bool) {
	if uc.cache == nil {
		return nil, -1, false
	}
	return uc.cache.GetList(ctx, f)
}

// invalidate no falla la escritura: una caché caída solo se registra.
func (uc *ProductUseCase) invalidate(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo invalidar la caché de productos")
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		ItemName:       p.ItemName,
		InternalCode:   p.InternalCode,
		ExternalCode:   p.ExternalCode,
		Description:    p.Description,
		Category:       p.Category,
		SubCategory:    p.SubCategory,
		UOM:            p.UOM,
		BasePrice:      p.BasePrice,
		Specifications: p.Specifications,
		Tags:           p.Tags,
		IsActive:       p.IsActive,
		ApprovedBy:     p.ApprovedBy,
		CreatedBy:      p.CreatedBy,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
