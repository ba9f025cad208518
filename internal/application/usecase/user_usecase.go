package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Procurement-api/internal/application/dto"
	"github.com/jhoicas/Procurement-api/internal/domain"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
)

// UserUseCase sincronización y administración de usuarios.
type UserUseCase struct {
	repo    repository.UserRepository
	orgRepo repository.OrganizationRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, orgRepo repository.OrganizationRepository) *UserUseCase {
	return &UserUseCase{repo: repo, orgRepo: orgRepo}
}

// Upsert crea o actualiza un usuario por ID. Si trae password se guarda su hash bcrypt;
// si no, se conserva el hash anterior. Devuelve ErrEmailAlreadyExists si el email es de otro usuario.
func (uc *UserUseCase) Upsert(ctx context.Context, in dto.UpsertUserRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email != "" {
		other, err := uc.repo.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != in.ID {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	if err := uc.checkOrganization(ctx, in.OrganizationID); err != nil {
		return nil, err
	}

	now := time.Now()
	user, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user = &entity.User{ID: in.ID, Role: entity.RoleBuyerUser, IsActive: true, CreatedAt: now}
	}
	user.Email = email
	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.ProfileImageURL = in.ProfileImageURL
	if in.Role != "" {
		user.Role = in.Role
	}
	if in.OrganizationID != nil && *in.OrganizationID != "" {
		user.OrganizationID = in.OrganizationID
	}
	user.PasswordHash = ""
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = now
	if err := uc.repo.Upsert(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, err
	}
	return ToUserResponse(user), nil
}

// GetByID obtiene un usuario; ErrUserNotFound si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(user), nil
}

// ListByOrganization lista los usuarios de una organización.
func (uc *UserUseCase) ListByOrganization(ctx context.Context, orgID string, p dto.PageRequest) (*dto.ListResponse[dto.UserResponse], error) {
	p.DefaultPage()
	list, err := uc.repo.ListByOrganization(ctx, orgID, p.Repo())
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *ToUserResponse(u))
	}
	out := dto.NewListResponse(items, p)
	return &out, nil
}

// Update cambia rol, organización, nombres o estado activo.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.OrganizationID != nil {
		if err := uc.checkOrganization(ctx, in.OrganizationID); err != nil {
			return nil, err
		}
		user.OrganizationID = in.OrganizationID
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

func (uc *UserUseCase) checkOrganization(ctx context.Context, orgID *string) error {
	if orgID == nil || *orgID == "" {
		return nil
	}
	org, err := uc.orgRepo.GetByID(ctx, *orgID)
	if err != nil {
		return err
	}
	if org == nil {
		return domain.ErrNotFound
	}
	return nil
}

// ToUserResponse mapea la entidad a la salida pública (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfileImageURL: u.ProfileImageURL,
		Role:            u.Role,
		OrganizationID:  u.OrganizationID,
		IsActive:        u.IsActive,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
