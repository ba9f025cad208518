package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product ítem del catálogo. BasePrice es el precio de referencia con el que se
// siembran las líneas de BOM.
type Product struct {
	ID             string
	ItemName       string
	InternalCode   string
	ExternalCode   string
	Description    string
	Category       string
	SubCategory    string
	UOM            string
	BasePrice      decimal.NullDecimal
	Specifications json.RawMessage
	Tags           []string
	IsActive       bool
	ApprovedBy     *string
	CreatedBy      *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PriceOrZero precio base o cero si no tiene.
func (p *Product) PriceOrZero() decimal.Decimal {
	if p.BasePrice.Valid {
		return p.BasePrice.Decimal
	}
	return decimal.Zero
}
