package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto del catálogo.
type CreateProductRequest struct {
	ItemName       string              `json:"itemName" validate:"required,min=1,max=200"`
	InternalCode   string              `json:"internalCode" validate:"omitempty,max=100"`
	ExternalCode   string              `json:"externalCode" validate:"omitempty,max=100"`
	Description    string              `json:"description"`
	Category       string              `json:"category"`
	SubCategory    string              `json:"subCategory"`
	UOM            string              `json:"uom"`
	BasePrice      decimal.NullDecimal `json:"basePrice" swaggertype:"string"`
	Specifications json.RawMessage     `json:"specifications" swaggertype:"object"`
	Tags           []string            `json:"tags"`
}

// UpdateProductRequest actualización parcial de un producto.
type UpdateProductRequest struct {
	ItemName       *string          `json:"itemName" validate:"omitempty,min=1,max=200"`
	InternalCode   *string          `json:"internalCode"`
	ExternalCode   *string          `json:"externalCode"`
	Description    *string          `json:"description"`
	Category       *string          `json:"category"`
	SubCategory    *string          `json:"subCategory"`
	UOM            *string          `json:"uom"`
	BasePrice      *decimal.Decimal `json:"basePrice" swaggertype:"string"`
	Specifications json.RawMessage  `json:"specifications" swaggertype:"object"`
	Tags           []string         `json:"tags"`
	IsActive       *bool            `json:"isActive"`
	ApprovedBy     *string          `json:"approvedBy"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string              `json:"id"`
	ItemName       string              `json:"itemName"`
	InternalCode   string              `json:"internalCode"`
	ExternalCode   string              `json:"externalCode"`
	Description    string              `json:"description"`
	Category       string              `json:"category"`
	SubCategory    string              `json:"subCategory"`
	UOM            string              `json:"uom"`
	BasePrice      decimal.NullDecimal `json:"basePrice" swaggertype:"string"`
	Specifications json.RawMessage     `json:"specifications" swaggertype:"object"`
	Tags           []string            `json:"tags"`
	IsActive       bool                `json:"isActive"`
	ApprovedBy     *string             `json:"approvedBy"`
	CreatedBy      *string             `json:"createdBy"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// ProductListQuery filtros de GET /api/products.
type ProductListQuery struct {
	Active   *bool  `query:"active"`
	Category string `query:"category"`
	Search   string `query:"q"`
	PageRequest
}
