package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultBOMVersion versión inicial de una BOM.
const DefaultBOMVersion = "1.0"

// BOM cabecera de la lista de materiales.
type BOM struct {
	ID          string
	Name        string
	Version     string
	Description string
	Category    string
	ValidFrom   *time.Time
	ValidTo     *time.Time
	Tags        []string
	IsActive    bool
	CreatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BOMItem línea de la BOM. Borrar la BOM borra sus ítems (ON DELETE CASCADE).
type BOMItem struct {
	ID         string
	BOMID      string
	ProductID  string
	LineNo     int64           // orden de inserción, asignado por la base
	Quantity   decimal.Decimal // numeric(10,3)
	UOM        string
	UnitPrice  decimal.Decimal // numeric(10,2)
	TotalPrice decimal.Decimal // numeric(10,2) = Quantity × UnitPrice
	CreatedAt  time.Time
}
