// Package bom arma una lista de materiales en memoria antes de persistirla.
// Las líneas conservan el orden de inserción; los totales se recalculan por línea.
package bom

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Procurement-api/internal/domain"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
)

// Valores por defecto de una línea nueva.
const (
	DefaultUOM     = "units"
	Uncategorized  = "Uncategorized"
	pricePrecision = 2
)

// ErrEmptyBOM se devuelve al validar un builder sin líneas.
var ErrEmptyBOM = domain.ErrEmptyBOM

// Line línea de la BOM en construcción.
type Line struct {
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
	UOM         string
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

func (l *Line) recompute() {
	l.TotalPrice = LineTotal(l.Quantity, l.UnitPrice)
}

// LineTotal cantidad × precio unitario redondeado a centavos, la misma precisión que
// total_price numeric(10,2). El servidor valida el totalPrice recibido con esta función.
func LineTotal(qty, unitPrice decimal.Decimal) decimal.Decimal {
	return qty.Mul(unitPrice).Round(pricePrecision)
}

// CategoryTotal valor acumulado de una categoría.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Builder lista ordenada de líneas. No es seguro para uso concurrente.
type Builder struct {
	lines []Line
}

// NewBuilder crea un builder vacío.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add agrega el producto. Si ya existe una línea para él suma la cantidad (no la reemplaza);
// si no, agrega una línea nueva con la UOM y el precio base del catálogo.
// qty cero se interpreta como 1.
func (b *Builder) Add(p *entity.Product, qty decimal.Decimal) error {
	if p == nil || p.ID == "" {
		return fmt.Errorf("%w: producto requerido", domain.ErrInvalidInput)
	}
	if qty.IsNegative() {
		return fmt.Errorf("%w: cantidad negativa", domain.ErrInvalidInput)
	}
	if qty.IsZero() {
		qty = decimal.NewFromInt(1)
	}
	for i := range b.lines {
		if b.lines[i].ProductID == p.ID {
			b.lines[i].Quantity = b.lines[i].Quantity.Add(qty)
			b.lines[i].recompute()
			return nil
		}
	}
	uom := p.UOM
	if uom == "" {
		uom = DefaultUOM
	}
	line := Line{
		ProductID:   p.ID,
		ProductName: p.ItemName,
		Quantity:    qty,
		UOM:         uom,
		UnitPrice:   p.PriceOrZero(),
	}
	line.recompute()
	b.lines = append(b.lines, line)
	return nil
}

// SetQuantity cambia la cantidad de la línea i y recalcula solo esa línea.
// La cantidad debe ser positiva; para quitar la línea se usa Remove.
func (b *Builder) SetQuantity(i int, qty decimal.Decimal) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	if !qty.IsPositive() {
		return fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	b.lines[i].Quantity = qty
	b.lines[i].recompute()
	return nil
}

// SetUnitPrice cambia el precio unitario de la línea i y recalcula solo esa línea.
func (b *Builder) SetUnitPrice(i int, price decimal.Decimal) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: precio negativo", domain.ErrInvalidInput)
	}
	b.lines[i].UnitPrice = price
	b.lines[i].recompute()
	return nil
}

// Remove elimina la línea en la posición i.
func (b *Builder) Remove(i int) error {
	if err := b.checkIndex(i); err != nil {
		return err
	}
	b.lines = append(b.lines[:i], b.lines[i+1:]...)
	return nil
}

func (b *Builder) checkIndex(i int) error {
	if i < 0 || i >= len(b.lines) {
		return fmt.Errorf("%w: índice de línea %d fuera de rango", domain.ErrInvalidInput, i)
	}
	return nil
}

// Len cantidad de líneas.
func (b *Builder) Len() int { return len(b.lines) }

// Items copia de las líneas en orden.
func (b *Builder) Items() []Line {
	out := make([]Line, len(b.lines))
	copy(out, b.lines)
	return out
}

// Validate rechaza una BOM sin líneas. Add y SetQuantity ya garantizan cantidades positivas.
func (b *Builder) Validate() error {
	if len(b.lines) == 0 {
		return ErrEmptyBOM
	}
	return nil
}

// Total suma de los totales de línea (cero si está vacía).
func (b *Builder) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range b.lines {
		total = total.Add(l.TotalPrice)
	}
	return total
}

// TotalQuantity suma de cantidades de todas las líneas.
func (b *Builder) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, l := range b.lines {
		total = total.Add(l.Quantity)
	}
	return total
}

// CategoryBreakdown reparte el total por categoría resolviendo cada línea contra el catálogo.
// Productos ausentes o sin categoría van a "Uncategorized". El orden es el de primera aparición.
func (b *Builder) CategoryBreakdown(catalog []*entity.Product) []CategoryTotal {
	byID := make(map[string]*entity.Product, len(catalog))
	for _, p := range catalog {
		if p != nil {
			byID[p.ID] = p
		}
	}
	idx := make(map[string]int)
	var out []CategoryTotal
	for _, l := range b.lines {
		cat := Uncategorized
		if p, ok := byID[l.ProductID]; ok && p.Category != "" {
			cat = p.Category
		}
		pos, ok := idx[cat]
		if !ok {
			pos = len(out)
			idx[cat] = pos
			out = append(out, CategoryTotal{Category: cat, Total: decimal.Zero})
		}
		out[pos].Total = out[pos].Total.Add(l.TotalPrice)
	}
	return out
}
