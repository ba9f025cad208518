package dto

import "time"

// OrganizationRequest alta/edición de organización.
type OrganizationRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	GSTNumber     string `json:"gstNumber" validate:"omitempty,max=15"`
	PANNumber     string `json:"panNumber" validate:"omitempty,max=10"`
	Address       string `json:"address"`
	ContactPerson string `json:"contactPerson"`
	ContactEmail  string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone  string `json:"contactPhone"`
}

// OrganizationResponse salida de organización.
type OrganizationResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	GSTNumber     string    `json:"gstNumber"`
	PANNumber     string    `json:"panNumber"`
	Address       string    `json:"address"`
	ContactPerson string    `json:"contactPerson"`
	ContactEmail  string    `json:"contactEmail"`
	ContactPhone  string    `json:"contactPhone"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
