package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
)

var _ repository.BOMRepository = (*BOMRepo)(nil)

// BOMRepo persistencia de BOMs e ítems. Pasar pool o tx.
type BOMRepo struct {
	q Querier
}

// NewBOMRepository construye el adaptador.
func NewBOMRepository(q Querier) *BOMRepo {
	return &BOMRepo{q: q}
}

const bomColumns = `id, name, version, description, category, valid_from, valid_to, tags, is_active, created_by, created_at, updated_at`

func scanBOM(row pgx.Row) (*entity.BOM, error) {
	var b entity.BOM
	err := row.Scan(&b.ID, &b.Name, &b.Version, &b.Description, &b.Category, &b.ValidFrom, &b.ValidTo,
		&b.Tags, &b.IsActive, &b.CreatedBy, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create inserta la cabecera.
func (r *BOMRepo) Create(ctx context.Context, b *entity.BOM) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO boms (`+bomColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		b.ID, b.Name, b.Version, b.Description, b.Category, b.ValidFrom, b.ValidTo,
		nonNilStrings(b.Tags), b.IsActive, b.CreatedBy, b.CreatedAt, b.UpdatedAt,
	)
	return mapWriteErr("insert bom", err)
}

// GetByID obtiene la cabecera; nil si no existe.
func (r *BOMRepo) GetByID(ctx context.Context, id string) (*entity.BOM, error) {
	b, err := scanBOM(r.q.QueryRow(ctx, `SELECT `+bomColumns+` FROM boms WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bom: %w", err)
	}
	return b, nil
}

// List lista BOMs, las más recientes primero.
func (r *BOMRepo) List(ctx context.Context, page repository.Page) ([]*entity.BOM, error) {
	limit, offset := pageArgs(page)
	rows, err := r.q.Query(ctx, `SELECT `+bomColumns+` FROM boms ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list boms: %w", err)
	}
	defer rows.Close()
	var list []*entity.BOM
	for rows.Next() {
		b, err := scanBOM(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bom: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Update actualiza la cabecera.
func (r *BOMRepo) Update(ctx context.Context, b *entity.BOM) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE boms SET name = $2, version = $3, description = $4, category = $5, valid_from = $6,
			valid_to = $7, tags = $8, is_active = $9, updated_at = $10
		WHERE id = $1`,
		b.ID, b.Name, b.Version, b.Description, b.Category, b.ValidFrom,
		b.ValidTo, nonNilStrings(b.Tags), b.IsActive, b.UpdatedAt,
	)
	if err != nil {
		return mapWriteErr("update bom", err)
	}
	return affectedOrNotFound(cmd.RowsAffected())
}

// Delete borra la BOM y, por cascada, sus ítems.
func (r *BOMRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM boms WHERE id = $1`, id)
	if err != nil {
		return mapWriteErr("delete bom", err)
	}
	return affectedOrNotFound(cmd.RowsAffected())
}

const (
	insertBOMItemSQL = `
		INSERT INTO bom_items (id, bom_id, product_id, quantity, uom, unit_price, total_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING line_no`

	// line_no sale de una secuencia: las líneas creadas en la misma transacción comparten created_at.
	listBOMItemsSQL = `
		SELECT id, bom_id, product_id, line_no, quantity, uom, unit_price, total_price, created_at
		FROM bom_items WHERE bom_id = $1 ORDER BY line_no`
)

// AddItem inserta una línea y rellena LineNo. Producto o BOM inexistentes devuelven ErrInvalidInput.
func (r *BOMRepo) AddItem(ctx context.Context, it *entity.BOMItem) error {
	err := r.q.QueryRow(ctx, insertBOMItemSQL,
		it.ID, it.BOMID, it.ProductID, it.Quantity, it.UOM, it.UnitPrice, it.TotalPrice, it.CreatedAt,
	).Scan(&it.LineNo)
	return mapWriteErr("insert bom item", err)
}

// ListItems ítems de la BOM en orden de inserción. Sin líneas devuelve un slice vacío, no nil.
func (r *BOMRepo) ListItems(ctx context.Context, bomID string) ([]*entity.BOMItem, error) {
	rows, err := r.q.Query(ctx, listBOMItemsSQL, bomID)
	if err != nil {
		return nil, fmt.Errorf("list bom items: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.BOMItem, 0)
	for rows.Next() {
		var it entity.BOMItem
		if err := rows.Scan(&it.ID, &it.BOMID, &it.ProductID, &it.LineNo, &it.Quantity, &it.UOM, &it.UnitPrice, &it.TotalPrice, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bom item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// DeleteItem borra una línea de la BOM indicada.
func (r *BOMRepo) DeleteItem(ctx context.Context, bomID, itemID string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM bom_items WHERE id = $1 AND bom_id = $2`, itemID, bomID)
	if err != nil {
		return fmt.Errorf("delete bom item: %w", err)
	}
	return affectedOrNotFound(cmd.RowsAffected())
}
