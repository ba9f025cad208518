package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Procurement-api/internal/application/auth"
	"github.com/jhoicas/Procurement-api/internal/application/dto"
	"github.com/jhoicas/Procurement-api/internal/domain"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/testutil"
	pkgjwt "github.com/jhoicas/Procurement-api/pkg/jwt"
)

const secret = "auth-test-secret"

func newAuth(t *testing.T) (*auth.AuthUseCase, *testutil.UserRepo, *testutil.SessionRepo) {
	t.Helper()
	users := testutil.NewUserRepo()
	sessions := testutil.NewSessionRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	org := "00000000-0000-0000-0000-000000000001"
	ctx := context.Background()
	require.NoError(t, users.Upsert(ctx, &entity.User{
		ID: "u1", Email: "ana@acme.test", Role: entity.RoleSourcingManager,
		OrganizationID: &org, IsActive: true, PasswordHash: string(hash),
	}))
	require.NoError(t, users.Upsert(ctx, &entity.User{
		ID: "u2", Email: "off@acme.test", Role: entity.RoleBuyerUser, PasswordHash: string(hash),
	}))
	require.NoError(t, users.Upsert(ctx, &entity.User{ID: "u3", Email: "sso@acme.test", IsActive: true}))

	uc := auth.NewAuthUseCase(users, sessions, auth.Config{Secret: secret, ExpMinutes: 60, Issuer: "test", SessionTTL: time.Hour})
	return uc, users, sessions
}

func TestLogin_EmiteTokenLigadoALaSesion(t *testing.T) {
	uc, _, sessions := newAuth(t)
	ctx := context.Background()

	res, err := uc.Login(ctx, dto.LoginRequest{Email: "ANA@acme.test", Password: "s3cret-pass"}, auth.ClientInfo{IP: "10.0.0.1"})
	require.NoError(t, err)
	assert.Equal(t, "u1", res.User.ID)
	assert.Equal(t, 1, sessions.Len())

	claims, err := pkgjwt.Parse(secret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSourcingManager, claims.Role)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", claims.OrganizationID)
	require.NoError(t, uc.ValidateSession(ctx, claims.SessionID))

	require.NoError(t, uc.Logout(ctx, claims.SessionID))
	assert.ErrorIs(t, uc.ValidateSession(ctx, claims.SessionID), domain.ErrSessionExpired)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _, sessions := newAuth(t)
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@acme.test", Password: "mala"}, auth.ClientInfo{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@acme.test", Password: "s3cret-pass"}, auth.ClientInfo{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "sso@acme.test", Password: "s3cret-pass"}, auth.ClientInfo{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "sin contraseña local")

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "off@acme.test", Password: "s3cret-pass"}, auth.ClientInfo{})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	assert.Zero(t, sessions.Len())
}

func TestValidateSession_ExpiradaYLimpieza(t *testing.T) {
	uc, _, sessions := newAuth(t)
	ctx := context.Background()
	require.NoError(t, sessions.Create(ctx, &entity.Session{SID: "old", Expire: time.Now().Add(-time.Minute)}))
	require.NoError(t, sessions.Create(ctx, &entity.Session{SID: "new", Expire: time.Now().Add(time.Hour)}))

	assert.ErrorIs(t, uc.ValidateSession(ctx, "old"), domain.ErrSessionExpired)
	assert.ErrorIs(t, uc.ValidateSession(ctx, ""), domain.ErrSessionExpired)
	assert.NoError(t, uc.ValidateSession(ctx, "new"))

	n, err := uc.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, 1, sessions.Len())
}

func TestCurrentUser(t *testing.T) {
	uc, _, _ := newAuth(t)
	ctx := context.Background()

	u, err := uc.CurrentUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "ana@acme.test", u.Email)

	_, err = uc.CurrentUser(ctx, "u2")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.CurrentUser(ctx, "zzz")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
