// Package auth login local, sesiones y usuario actual.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Procurement-api/internal/application/dto"
	"github.com/jhoicas/Procurement-api/internal/application/usecase"
	"github.com/jhoicas/Procurement-api/internal/domain"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
	"github.com/jhoicas/Procurement-api/pkg/jwt"
)

// Config parámetros de tokens y sesiones.
type Config struct {
	Secret     string
	ExpMinutes int
	Issuer     string
	SessionTTL time.Duration
}

// ClientInfo datos del cliente que abre la sesión.
type ClientInfo struct {
	UserAgent string
	IP        string
}

// AuthUseCase login, logout y validación de sesiones.
type AuthUseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	cfg      Config
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, sessions repository.SessionRepository, cfg Config) *AuthUseCase {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 7 * 24 * time.Hour
	}
	return &AuthUseCase{users: users, sessions: sessions, cfg: cfg, now: time.Now}
}

// Login verifica email/password, abre una sesión y firma un JWT ligado a ella.
// Credenciales incorrectas o usuario sin contraseña local devuelven ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest, client ClientInfo) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}

	now := uc.now()
	data, err := json.Marshal(entity.SessionData{
		UserID:    user.ID,
		Role:      user.Role,
		UserAgent: client.UserAgent,
		IP:        client.IP,
		CreatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	sess := &entity.Session{SID: uuid.New().String(), Data: data, Expire: now.Add(uc.cfg.SessionTTL)}
	if err := uc.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("crear sesión: %w", err)
	}

	var orgID string
	if user.OrganizationID != nil {
		orgID = *user.OrganizationID
	}
	token, err := jwt.Generate(uc.cfg.Secret, jwt.Subject{
		UserID:         user.ID,
		OrganizationID: orgID,
		Role:           user.Role,
		SessionID:      sess.SID,
	}, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		_ = uc.sessions.Delete(ctx, sess.SID)
		return nil, err
	}

	expiresAt := now.Add(time.Duration(uc.cfg.ExpMinutes) * time.Minute)
	if sess.Expire.Before(expiresAt) {
		expiresAt = sess.Expire
	}
	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt, User: *usecase.ToUserResponse(user)}, nil
}

// Logout borra la sesión. Borrar una sesión inexistente no es error.
func (uc *AuthUseCase) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	return uc.sessions.Delete(ctx, sid)
}

// ValidateSession comprueba que la sesión exista y no haya vencido.
func (uc *AuthUseCase) ValidateSession(ctx context.Context, sid string) error {
	if sid == "" {
		return domain.ErrSessionExpired
	}
	sess, err := uc.sessions.Get(ctx, sid)
	if err != nil {
		return err
	}
	if sess == nil || sess.Expired(uc.now()) {
		return domain.ErrSessionExpired
	}
	return nil
}

// CurrentUser usuario dueño del token; inactivo equivale a no autenticado.
func (uc *AuthUseCase) CurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	return usecase.ToUserResponse(user), nil
}

// CleanupExpired borra sesiones vencidas.
func (uc *AuthUseCase) CleanupExpired(ctx context.Context) (int64, error) {
	return uc.sessions.DeleteExpired(ctx)
}
