package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
)

var _ repository.ApprovalRepository = (*ApprovalRepo)(nil)

// ApprovalRepo persistencia de aprobaciones.
type ApprovalRepo struct {
	q Querier
}

// NewApprovalRepository construye el adaptador. Pasar pool o tx.
func NewApprovalRepository(q Querier) *ApprovalRepo {
	return &ApprovalRepo{q: q}
}

const approvalColumns = `id, entity_type, entity_id, approver_id, status, comments, approved_at, created_at`

func scanApproval(row pgx.Row) (*entity.Approval, error) {
	var a entity.Approval
	if err := row.Scan(&a.ID, &a.EntityType, &a.EntityID, &a.ApproverID, &a.Status, &a.Comments, &a.ApprovedAt, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserta la solicitud de aprobación.
func (r *ApprovalRepo) Create(ctx context.Context, a *entity.Approval) error {
	_, err := r.q.Exec(ctx, `INSERT INTO approvals (`+approvalColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.EntityType, a.EntityID, a.ApproverID, a.Status, a.Comments, a.ApprovedAt, a.CreatedAt)
	return mapWriteErr("insert approval", err)
}

// GetByID obtiene la aprobación; nil si no existe.
func (r *ApprovalRepo) GetByID(ctx context.Context, id string) (*entity.Approval, error) {
	a, err := scanApproval(r.q.QueryRow(ctx, `SELECT `+approvalColumns+` FROM approvals WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get approval: %w", err)
	}
	return a, nil
}

// List lista aprobaciones con filtros.
func (r *ApprovalRepo) List(ctx context.Context, f repository.ApprovalFilter) ([]*entity.Approval, error) {
	var w whereBuilder
	if f.ApproverID != "" {
		w.add("approver_id = ?", f.ApproverID)
	}
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}
	if f.EntityType != "" {
		w.add("entity_type = ?", f.EntityType)
	}
	if f.EntityID != "" {
		w.add("entity_id = ?", f.EntityID)
	}
	query := `SELECT ` + approvalColumns + ` FROM approvals` + w.sql() + ` ORDER BY created_at DESC`
	query += w.page(f.Page)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list approvals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Approval
	for rows.Next() {
		a, err := scanApproval(rows)
		if err != nil {
			return nil, fmt.Errorf("scan approval: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Decide guarda la decisión solo si la aprobación sigue pendiente.
func (r *ApprovalRepo) Decide(ctx context.Context, a *entity.Approval) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE approvals SET status = $2, comments = $3, approved_at = $4
		WHERE id = $1 AND status = 'pending'`,
		a.ID, a.Status, a.Comments, a.ApprovedAt)
	if err != nil {
		return mapWriteErr("decide approval", err)
	}
	return affectedOrNotFound(cmd.RowsAffected())
}
