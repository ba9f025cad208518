package dto

import "time"

// UpsertUserRequest sincronización de un usuario del proveedor de identidad.
type UpsertUserRequest struct {
	ID              string  `json:"id" validate:"required,max=255"`
	Email           string  `json:"email" validate:"omitempty,email"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	ProfileImageURL string  `json:"profileImageUrl" validate:"omitempty,url"`
	Role            string  `json:"role" validate:"omitempty,oneof=buyer_admin buyer_user sourcing_manager vendor"`
	OrganizationID  *string `json:"organizationId" validate:"omitempty,uuid"`
	Password        string  `json:"password" validate:"omitempty,min=8,max=72"`
}

// UpdateUserRequest cambios administrativos sobre un usuario.
type UpdateUserRequest struct {
	Role           *string `json:"role" validate:"omitempty,oneof=buyer_admin buyer_user sourcing_manager vendor"`
	OrganizationID *string `json:"organizationId" validate:"omitempty,uuid"`
	IsActive       *bool   `json:"isActive"`
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
}

// UserResponse salida de usuario (sin hash de contraseña).
type UserResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	ProfileImageURL string    `json:"profileImageUrl"`
	Role            string    `json:"role"`
	OrganizationID  *string   `json:"organizationId"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// LoginRequest credenciales locales.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido y usuario autenticado.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// LoginInfoResponse respuesta de GET /api/login: el login interactivo vive en el proveedor de identidad.
type LoginInfoResponse struct {
	Message  string `json:"message"`
	LoginURL string `json:"loginUrl"`
}
