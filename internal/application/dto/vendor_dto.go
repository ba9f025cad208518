package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// VendorRequest alta/edición de proveedor.
type VendorRequest struct {
	CompanyName       string              `json:"companyName" validate:"required,min=1,max=200"`
	ContactPerson     string              `json:"contactPerson" validate:"required"`
	Email             string              `json:"email" validate:"required,email"`
	Phone             string              `json:"phone"`
	PANNumber         string              `json:"panNumber" validate:"omitempty,max=10"`
	GSTNumber         string              `json:"gstNumber" validate:"omitempty,max=15"`
	TANNumber         string              `json:"tanNumber" validate:"omitempty,max=10"`
	BankDetails       json.RawMessage     `json:"bankDetails" swaggertype:"object"`
	Address           string              `json:"address"`
	Categories        []string            `json:"categories"`
	Certifications    []string            `json:"certifications"`
	YearsOfExperience *int                `json:"yearsOfExperience" validate:"omitempty,min=0"`
	OfficeLocations   []string            `json:"officeLocations"`
	Tags              []string            `json:"tags"`
	PerformanceScore  decimal.NullDecimal `json:"performanceScore" swaggertype:"string"`
	UserID            *string             `json:"userId"`
}

// VendorResponse salida de proveedor.
type VendorResponse struct {
	ID                string              `json:"id"`
	CompanyName       string              `json:"companyName"`
	ContactPerson     string              `json:"contactPerson"`
	Email             string              `json:"email"`
	Phone             string              `json:"phone"`
	PANNumber         string              `json:"panNumber"`
	GSTNumber         string              `json:"gstNumber"`
	TANNumber         string              `json:"tanNumber"`
	BankDetails       json.RawMessage     `json:"bankDetails" swaggertype:"object"`
	Address           string              `json:"address"`
	Categories        []string            `json:"categories"`
	Certifications    []string            `json:"certifications"`
	YearsOfExperience *int                `json:"yearsOfExperience"`
	OfficeLocations   []string            `json:"officeLocations"`
	Status            string              `json:"status"`
	Tags              []string            `json:"tags"`
	PerformanceScore  decimal.NullDecimal `json:"performanceScore" swaggertype:"string"`
	UserID            *string             `json:"userId"`
	CreatedBy         *string             `json:"createdBy"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

// VendorListQuery filtros de GET /api/vendors.
type VendorListQuery struct {
	Status   string `query:"status" validate:"omitempty,oneof=pending approved rejected suspended"`
	Category string `query:"category"`
	Search   string `query:"q"`
	PageRequest
}
