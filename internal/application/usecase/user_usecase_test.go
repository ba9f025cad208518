package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Procurement-api/internal/application/dto"
	"github.com/jhoicas/Procurement-api/internal/application/usecase"
	"github.com/jhoicas/Procurement-api/internal/domain"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/testutil"
)

func TestUserUpsert_CreaYActualizaConservandoHash(t *testing.T) {
	ctx := context.Background()
	users := testutil.NewUserRepo()
	uc := usecase.NewUserUseCase(users, testutil.NewOrganizationRepo())

	u, err := uc.Upsert(ctx, dto.UpsertUserRequest{ID: "ext-1", Email: "Ana@Corp.test", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "ana@corp.test", u.Email)
	assert.Equal(t, entity.RoleBuyerUser, u.Role)
	assert.True(t, u.IsActive)

	stored, err := users.GetByID(ctx, "ext-1")
	require.NoError(t, err)
	hash := stored.PasswordHash
	require.NotEmpty(t, hash)

	u, err = uc.Upsert(ctx, dto.UpsertUserRequest{ID: "ext-1", Email: "ana@corp.test", FirstName: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.FirstName)
	stored, err = users.GetByID(ctx, "ext-1")
	require.NoError(t, err)
	assert.Equal(t, hash, stored.PasswordHash)
}

func TestUserUpsert_EmailDeOtroUsuario(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewUserUseCase(testutil.NewUserRepo(), testutil.NewOrganizationRepo())
	_, err := uc.Upsert(ctx, dto.UpsertUserRequest{ID: "a", Email: "x@corp.test"})
	require.NoError(t, err)
	_, err = uc.Upsert(ctx, dto.UpsertUserRequest{ID: "b", Email: "X@corp.test"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserUpdate_OrganizacionInexistente(t *testing.T) {
	ctx := context.Background()
	orgs := testutil.NewOrganizationRepo()
	uc := usecase.NewUserUseCase(testutil.NewUserRepo(), orgs)
	_, err := uc.Upsert(ctx, dto.UpsertUserRequest{ID: "a"})
	require.NoError(t, err)

	missing := "00000000-0000-0000-0000-0000000000ff"
	_, err = uc.Update(ctx, "a", dto.UpdateUserRequest{OrganizationID: &missing})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	org, err := usecase.NewOrganizationUseCase(orgs).Create(ctx, dto.OrganizationRequest{Name: "Buyer Co"})
	require.NoError(t, err)
	role := entity.RoleBuyerAdmin
	u, err := uc.Update(ctx, "a", dto.UpdateUserRequest{OrganizationID: &org.ID, Role: &role})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleBuyerAdmin, u.Role)

	list, err := uc.ListByOrganization(ctx, org.ID, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
}
