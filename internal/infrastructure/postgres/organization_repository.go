package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
)

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo implementación de OrganizationRepository sobre PostgreSQL.
type OrganizationRepo struct {
	q Querier
}

// NewOrganizationRepository construye el adaptador. Pasar pool o tx.
func NewOrganizationRepository(q Querier) *OrganizationRepo {
	return &OrganizationRepo{q: q}
}

const organizationColumns = `id, name, gst_number, pan_number, address, contact_person, contact_email, contact_phone, created_at, updated_at`

func scanOrganization(row pgx.Row) (*entity.Organization, error) {
	var o entity.Organization
	err := row.Scan(&o.ID, &o.Name, &o.GSTNumber, &o.PANNumber, &o.Address,
		&o.ContactPerson, &o.ContactEmail, &o.ContactPhone, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste una nueva organización.
func (r *OrganizationRepo) Create(ctx context.Context, o *entity.Organization) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO organizations (`+organizationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		o.ID, o.Name, o.GSTNumber, o.PANNumber, o.Address,
		o.ContactPerson, o.ContactEmail, o.ContactPhone, o.CreatedAt, o.UpdatedAt,
	)
	return mapWriteErr("insert organization", err)
}

// GetByID obtiene una organización; nil si no existe.
func (r *OrganizationRepo) GetByID(ctx context.Context, id string) (*entity.Organization, error) {
	o, err := scanOrganization(r.q.QueryRow(ctx, `SELECT `+organizationColumns+` FROM organizations WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return o, nil
}

// Update actualiza los datos de la organización.
func (r *OrganizationRepo) Update(ctx context.Context, o *entity.Organization) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE organizations SET name = $2, gst_number = $3, pan_number = $4, address = $5,
			contact_person = $6, contact_email = $7, contact_phone = $8, updated_at = $9
		WHERE id = $1`,
		o.ID, o.Name, o.GSTNumber, o.PANNumber, o.Address,
		o.ContactPerson, o.ContactEmail, o.ContactPhone, o.UpdatedAt,
	)
	if err != nil {
		return mapWriteErr("update organization", err)
	}
	return affectedOrNotFound(cmd.RowsAffected())
}

// List lista organizaciones por nombre.
func (r *OrganizationRepo) List(ctx context.Context, page repository.Page) ([]*entity.Organization, error) {
	limit, offset := pageArgs(page)
	rows, err := r.q.Query(ctx, `SELECT `+organizationColumns+` FROM organizations ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Organization
	for rows.Next() {
		o, err := scanOrganization(rows)
		if err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}
