package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo implementación de VendorRepository sobre PostgreSQL.
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador de proveedores. Pasar pool o tx.
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

const vendorColumns = `id, company_name, contact_person, email, phone, pan_number, gst_number, tan_number,
	bank_details, address, categories, certifications, years_of_experience, office_locations, status,
	tags, performance_score, user_id, created_by, created_at, updated_at`

func scanVendor(row pgx.Row) (*entity.Vendor, error) {
	var v entity.Vendor
	err := row.Scan(&v.ID, &v.CompanyName, &v.ContactPerson, &v.Email, &v.Phone, &v.PANNumber, &v.GSTNumber, &v.TANNumber,
		&v.BankDetails, &v.Address, &v.Categories, &v.Certifications, &v.YearsOfExperience, &v.OfficeLocations, &v.Status,
		&v.Tags, &v.PerformanceScore, &v.UserID, &v.CreatedBy, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Create persiste un proveedor.
func (r *VendorRepo) Create(ctx context.Context, v *entity.Vendor) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO vendors (`+vendorColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
		v.ID, v.CompanyName, v.ContactPerson, v.Email, v.Phone, v.PANNumber, v.GSTNumber, v.TANNumber,
		v.BankDetails, v.Address, nonNilStrings(v.Categories), nonNilStrings(v.Certifications), v.YearsOfExperience,
		nonNilStrings(v.OfficeLocations), v.Status, nonNilStrings(v.Tags), v.PerformanceScore, v.UserID, v.CreatedBy,
		v.CreatedAt, v.UpdatedAt,
	)
	return mapWriteErr("insert vendor", err)
}

// GetByID obtiene un proveedor; nil si no existe.
func (r *VendorRepo) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	v, err := scanVendor(r.q.QueryRow(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return v, nil
}

// GetByUserID proveedor cuyo user_id es el usuario indicado; nil si no existe.
func (r *VendorRepo) GetByUserID(ctx context.Context, userID string) (*entity.Vendor, error) {
	v, err := scanVendor(r.q.QueryRow(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE user_id = $1 LIMIT 1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor by user: %w", err)
	}
	return v, nil
}

// List lista proveedores con filtros de estado, categoría y búsqueda por nombre.
func (r *VendorRepo) List(ctx context.Context, f repository.VendorFilter) ([]*entity.Vendor, error) {
	var w whereBuilder
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}
	if f.Category != "" {
		w.add("? = ANY(categories)", f.Category)
	}
	if f.Search != "" {
		w.add("(company_name ILIKE ? OR contact_person ILIKE ?)", "%"+f.Search+"%")
	}
	query := `SELECT ` + vendorColumns + ` FROM vendors` + w.sql() + ` ORDER BY created_at DESC`
	query += w.page(f.Page)

	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// Update actualiza el perfil. El estado se cambia solo con UpdateStatus.
func (r *VendorRepo) Update(ctx context.Context, v *entity.Vendor) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE vendors SET company_name = $2, contact_person = $3, email = $4, phone = $5, pan_number = $6,
			gst_number = $7, tan_number = $8, bank_details = $9, address = $10, categories = $11,
			certifications = $12, years_of_experience = $13, office_locations = $14, tags = $15,
			performance_score = $16, user_id = $17, updated_at = $18
		WHERE id = $1`,
		v.ID, v.CompanyName, v.ContactPerson, v.Email, v.Phone, v.PANNumber,
		v.GSTNumber, v.TANNumber, v.BankDetails, v.Address, nonNilStrings(v.Categories),
		nonNilStrings(v.Certifications), v.YearsOfExperience, nonNilStrings(v.OfficeLocations), nonNilStrings(v.Tags),
		v.PerformanceScore, v.UserID, v.UpdatedAt,
	)
	if err != nil {
		return mapWriteErr("update vendor", err)
	}
	return affectedOrNotFound(cmd.RowsAffected())
}

// UpdateStatus cambia el estado del proveedor.
func (r *VendorRepo) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE vendors SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return mapWriteErr("update vendor status", err)
	}
	return affectedOrNotFound(cmd.RowsAffected())
}

// Delete elimina un proveedor. Falla con ErrInvalidInput si está referenciado.
func (r *VendorRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		return mapWriteErr("delete vendor", err)
	}
	return affectedOrNotFound(cmd.RowsAffected())
}
