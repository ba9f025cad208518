package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Procurement-api/internal/application/dto"
	"github.com/jhoicas/Procurement-api/internal/domain"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
)

// OrganizationUseCase casos de uso CRUD para organizaciones compradoras.
type OrganizationUseCase struct {
	repo repository.OrganizationRepository
}

// NewOrganizationUseCase construye el caso de uso con el puerto de persistencia.
func NewOrganizationUseCase(repo repository.OrganizationRepository) *OrganizationUseCase {
	return &OrganizationUseCase{repo: repo}
}

// Create crea una organización.
func (uc *OrganizationUseCase) Create(ctx context.Context, in dto.OrganizationRequest) (*dto.OrganizationResponse, error) {
	now := time.Now()
	org := &entity.Organization{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyOrganization(org, in)
	if err := uc.repo.Create(ctx, org); err != nil {
		return nil, err
	}
	return toOrganizationResponse(org), nil
}

// GetByID obtiene una organización; ErrNotFound si no existe.
func (uc *OrganizationUseCase) GetByID(ctx context.Context, id string) (*dto.OrganizationResponse, error) {
	org, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	return toOrganizationResponse(org), nil
}

// List lista organizaciones con paginación.
func (uc *OrganizationUseCase) List(ctx context.Context, p dto.PageRequest) (*dto.ListResponse[dto.OrganizationResponse], error) {
	p.DefaultPage()
	list, err := uc.repo.List(ctx, p.Repo())
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrganizationResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrganizationResponse(o))
	}
	out := dto.NewListResponse(items, p)
	return &out, nil
}

// Update reemplaza los datos de la organización.
func (uc *OrganizationUseCase) Update(ctx context.Context, id string, in dto.OrganizationRequest) (*dto.OrganizationResponse, error) {
	org, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	applyOrganization(org, in)
	org.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, org); err != nil {
		return nil, err
	}
	return toOrganizationResponse(org), nil
}

func applyOrganization(org *entity.Organization, in dto.OrganizationRequest) {
	org.Name = in.Name
	org.GSTNumber = in.GSTNumber
	org.PANNumber = in.PANNumber
	org.Address = in.Address
	org.ContactPerson = in.ContactPerson
	org.ContactEmail = in.ContactEmail
	org.ContactPhone = in.ContactPhone
}

func toOrganizationResponse(o *entity.Organization) *dto.OrganizationResponse {
	return &dto.OrganizationResponse{
		ID:            o.ID,
		Name:          o.Name,
		GSTNumber:     o.GSTNumber,
		PANNumber:     o.PANNumber,
		Address:       o.Address,
		ContactPerson: o.ContactPerson,
		ContactEmail:  o.ContactEmail,
		ContactPhone:  o.ContactPhone,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
