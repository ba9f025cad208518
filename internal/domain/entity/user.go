package entity

import "time"

// Roles válidos para User.
const (
	RoleBuyerAdmin      = "buyer_admin"
	RoleBuyerUser       = "buyer_user"
	RoleSourcingManager = "sourcing_manager"
	RoleVendor          = "vendor"
)

// ValidRole indica si el rol pertenece al enumerado.
func ValidRole(role string) bool {
	switch role {
	case RoleBuyerAdmin, RoleBuyerUser, RoleSourcingManager, RoleVendor:
		return true
	}
	return false
}

// User representa un usuario del sistema. El ID lo asigna el proveedor de identidad
// (por eso es texto y no UUID generado aquí).
type User struct {
	ID              string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
	Role            string
	OrganizationID  *string
	IsActive        bool
	PasswordHash    string // vacío si el usuario solo entra por el proveedor externo
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DisplayName nombre para mostrar; cae al email si no hay nombre.
func (u *User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	}
	return u.Email
}
