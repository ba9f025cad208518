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
	"github.com/jhoicas/Procurement-api/internal/domain/workflow"
)

var maxPerformanceScore = decimal.NewFromInt(5)

// VendorUseCase registro y ciclo de vida de proveedores.
type VendorUseCase struct {
	repo repository.VendorRepository
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(repo repository.VendorRepository) *VendorUseCase {
	return &VendorUseCase{repo: repo}
}

// Create registra un proveedor en estado pending.
func (uc *VendorUseCase) Create(ctx context.Context, createdBy string, in dto.VendorRequest) (*dto.VendorResponse, error) {
	if err := validateScore(in.PerformanceScore); err != nil {
		return nil, err
	}
	now := time.Now()
	v := &entity.Vendor{
		ID:        uuid.New().String(),
		Status:    entity.VendorStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if createdBy != "" {
		v.CreatedBy = &createdBy
	}
	applyVendor(v, in)
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return toVendorResponse(v), nil
}

// GetByID obtiene un proveedor; ErrNotFound si no existe.
func (uc *VendorUseCase) GetByID(ctx context.Context, id string) (*dto.VendorResponse, error) {
	v, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toVendorResponse(v), nil
}

// List lista proveedores filtrando por estado, categoría y nombre.
func (uc *VendorUseCase) List(ctx context.Context, q dto.VendorListQuery) (*dto.ListResponse[dto.VendorResponse], error) {
	q.DefaultPage()
	list, err := uc.repo.List(ctx, repository.VendorFilter{
		Status:   q.Status,
		Category: q.Category,
		Search:   q.Search,
		Page:     q.Repo(),
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.VendorResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVendorResponse(v))
	}
	out := dto.NewListResponse(items, q.PageRequest)
	return &out, nil
}

// Update reemplaza el perfil. El estado solo cambia por ChangeStatus o aprobaciones.
func (uc *VendorUseCase) Update(ctx context.Context, id string, in dto.VendorRequest) (*dto.VendorResponse, error) {
	if err := validateScore(in.PerformanceScore); err != nil {
		return nil, err
	}
	v, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyVendor(v, in)
	v.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return toVendorResponse(v), nil
}

// ChangeStatus aplica una transición del ciclo de vida del proveedor.
func (uc *VendorUseCase) ChangeStatus(ctx context.Context, id, status string) (*dto.VendorResponse, error) {
	v, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := workflow.Vendor.Check(v.Status, status); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	v.Status = status
	return toVendorResponse(v), nil
}

// Delete elimina un proveedor.
func (uc *VendorUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *VendorUseCase) get(ctx context.Context, id string) (*entity.Vendor, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

func validateScore(score decimal.NullDecimal) error {
	if !score.Valid {
		return nil
	}
	if score.Decimal.IsNegative() || score.Decimal.GreaterThan(maxPerformanceScore) {
		return domain.ErrInvalidInput
	}
	return nil
}

func applyVendor(v *entity.Vendor, in dto.VendorRequest) {
	v.CompanyName = in.CompanyName
	v.ContactPerson = in.ContactPerson
	v.Email = in.Email
	v.Phone = in.Phone
	v.PANNumber = in.PANNumber
	v.GSTNumber = in.GSTNumber
	v.TANNumber = in.TANNumber
	v.BankDetails = in.BankDetails
	v.Address = in.Address
	v.Categories = in.Categories
	v.Certifications = in.Certifications
	v.YearsOfExperience = in.YearsOfExperience
	v.OfficeLocations = in.OfficeLocations
	v.Tags = domain.NormalizeTags(in.Tags)
	if in.PerformanceScore.Valid {
		v.PerformanceScore = decimal.NewNullDecimal(in.PerformanceScore.Decimal.Round(2))
	} else {
		v.PerformanceScore = in.PerformanceScore
	}
	v.UserID = in.UserID
}

func toVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	return &dto.VendorResponse{
		ID:                v.ID,
		CompanyName:       v.CompanyName,
		ContactPerson:     v.ContactPerson,
		Email:             v.Email,
		Phone:             v.Phone,
		PANNumber:         v.PANNumber,
		GSTNumber:         v.GSTNumber,
		TANNumber:         v.TANNumber,
		BankDetails:       v.BankDetails,
		Address:           v.Address,
		Categories:        v.Categories,
		Certifications:    v.Certifications,
		YearsOfExperience: v.YearsOfExperience,
		OfficeLocations:   v.OfficeLocations,
		Status:            v.Status,
		Tags:              v.Tags,
		PerformanceScore:  v.PerformanceScore,
		UserID:            v.UserID,
		CreatedBy:         v.CreatedBy,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}
