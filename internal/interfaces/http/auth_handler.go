package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Procurement-api/internal/application/auth"
	"github.com/jhoicas/Procurement-api/internal/application/dto"
)

// AuthHandler maneja login, logout y usuario actual.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	loginURL string
}

// NewAuthHandler construye el handler de auth. loginURL es la URL que se anuncia en GET /api/login.
func NewAuthHandler(uc *auth.AuthUseCase, loginURL string) *AuthHandler {
	if loginURL == "" {
		loginURL = "/api/auth/login"
	}
	return &AuthHandler{uc: uc, loginURL: loginURL}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := bindJSON(c, &in); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Login(c.UserContext(), in, auth.ClientInfo{UserAgent: c.Get(fiber.HeaderUserAgent), IP: c.IP()})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// LoginInfo godoc
// @Summary      Instrucciones de login
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.LoginInfoResponse
// @Router       /api/login [get]
func (h *AuthHandler) LoginInfo(c *fiber.Ctx) error {
	return c.JSON(dto.LoginInfoResponse{
		Message:  "autentíquese con POST a loginUrl (email y password)",
		LoginURL: h.loginURL,
	})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Security     Bearer
// @Success      204
// @Router       /api/logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext(), GetSessionID(c)); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CurrentUser godoc
// @Summary      Usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/user [get]
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	out, err := h.uc.CurrentUser(c.UserContext(), GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
