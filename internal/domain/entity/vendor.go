package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Vendor.
const (
	VendorStatusPending   = "pending"
	VendorStatusApproved  = "approved"
	VendorStatusRejected  = "rejected"
	VendorStatusSuspended = "suspended"
)

// Vendor proveedor registrado. UserID es su login propio (opcional).
type Vendor struct {
	ID                string
	CompanyName       string
	ContactPerson     string
	Email             string
	Phone             string
	PANNumber         string
	GSTNumber         string
	TANNumber         string
	BankDetails       json.RawMessage
	Address           string
	Categories        []string
	Certifications    []string
	YearsOfExperience *int
	OfficeLocations   []string
	Status            string
	Tags              []string
	PerformanceScore  decimal.NullDecimal // 0.00 – 5.00
	UserID            *string
	CreatedBy         *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
