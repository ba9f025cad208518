package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BOMItemRequest línea de BOM. TotalPrice es opcional: si viene debe ser quantity × unitPrice.
type BOMItemRequest struct {
	ProductID  string           `json:"productId" validate:"required,uuid"`
	Quantity   decimal.Decimal  `json:"quantity" swaggertype:"string"`
	UOM        string           `json:"uom" validate:"omitempty,max=50"`
	UnitPrice  decimal.Decimal  `json:"unitPrice" swaggertype:"string"`
	TotalPrice *decimal.Decimal `json:"totalPrice" swaggertype:"string"`
}

// CreateBOMRequest cabecera de BOM; Items opcional para crear todo en una transacción.
type CreateBOMRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Version     string           `json:"version" validate:"omitempty,max=20"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	ValidFrom   *time.Time       `json:"validFrom"`
	ValidTo     *time.Time       `json:"validTo"`
	Tags        []string         `json:"tags"`
	IsActive    *bool            `json:"isActive"`
	Items       []BOMItemRequest `json:"items" validate:"omitempty,dive"`
}

// UpdateBOMRequest actualización parcial de la cabecera.
type UpdateBOMRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Version     *string    `json:"version" validate:"omitempty,max=20"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	ValidFrom   *time.Time `json:"validFrom"`
	ValidTo     *time.Time `json:"validTo"`
	Tags        []string   `json:"tags"`
	IsActive    *bool      `json:"isActive"`
}

// BOMItemResponse salida de una línea.
type BOMItemResponse struct {
	ID         string          `json:"id"`
	BOMID      string          `json:"bomId"`
	ProductID  string          `json:"productId"`
	LineNo     int64           `json:"lineNo"`
	Quantity   decimal.Decimal `json:"quantity" swaggertype:"string"`
	UOM        string          `json:"uom"`
	UnitPrice  decimal.Decimal `json:"unitPrice" swaggertype:"string"`
	TotalPrice decimal.Decimal `json:"totalPrice" swaggertype:"string"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// BOMResponse salida de la cabecera (listados y actualización).
type BOMResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Version     string     `json:"version"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	ValidFrom   *time.Time `json:"validFrom"`
	ValidTo     *time.Time `json:"validTo"`
	Tags        []string   `json:"tags"`
	IsActive    bool       `json:"isActive"`
	CreatedBy   *string    `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// BOMDetailResponse cabecera con líneas y total. Una BOM sin líneas sale con items [] y total 0.
type BOMDetailResponse struct {
	BOMResponse
	Items      []BOMItemResponse `json:"items"`
	TotalValue decimal.Decimal   `json:"totalValue" swaggertype:"string"`
}
