package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, item_name, internal_code, external_code, description, category, sub_category, uom,
	base_price, specifications, tags, is_active, approved_by, created_by, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.ItemName, &p.InternalCode, &p.ExternalCode, &p.Description, &p.Category, &p.SubCategory, &p.UOM,
		&p.BasePrice, &p.Specifications, &p.Tags, &p.IsActive, &p.ApprovedBy, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		p.ID, p.ItemName, p.InternalCode, p.ExternalCode, p.Description, p.Category, p.SubCategory, p.UOM,
		p.BasePrice, p.Specifications, nonNilStrings(p.Tags), p.IsActive, p.ApprovedBy, p.CreatedBy, p.CreatedAt, p.UpdatedAt,
	)
	return mapWriteErr("insert product", err)
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List lista el catálogo. Search compara contra nombre y códigos.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	var w whereBuilder
	if f.Active != nil {
		w.add("is_active = ?", *f.Active)
	}
	if f.Category != "" {
		w.add("category = ?", f.Category)
	}
	if f.Search != "" {
		w.add("(item_name ILIKE ? OR internal_code ILIKE ? OR external_code ILIKE ?)", "%"+f.Search+"%")
	}
	query := `SELECT ` + productColumns + ` FROM products` + w.sql() + ` ORDER BY item_name`
	query += w.page(f.Page)

	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE products SET item_name = $2, internal_code = $3, external_code = $4, description = $5,
			category = $6, sub_category = $7, uom = $8, base_price = $9, specifications = $10, tags = $11,
			is_active = $12, approved_by = $13, updated_at = $14
		WHERE id = $1`,
		p.ID, p.ItemName, p.InternalCode, p.ExternalCode, p.Description,
		p.Category, p.SubCategory, p.UOM, p.BasePrice, p.Specifications, nonNilStrings(p.Tags),
		p.IsActive, p.ApprovedBy, p.UpdatedAt,
	)
	if err != nil {
		return mapWriteErr("update product", err)
	}
	return affectedOrNotFound(cmd.RowsAffected())
}

// SetActive activa o desactiva el producto sin borrarlo.
func (r *ProductRepo) SetActive(ctx context.Context, id string, active bool) error {
	cmd, err := r.q.Exec(ctx, `UPDATE products SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set product active: %w", err)
	}
	return affectedOrNotFound(cmd.RowsAffected())
}
