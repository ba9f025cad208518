package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
)

var _ repository.RfxRepository = (*RfxRepo)(nil)

// RfxRepo persistencia de eventos RFx, invitaciones y respuestas.
type RfxRepo struct {
	q Querier
}

// NewRfxRepository construye el adaptador.
func NewRfxRepository(q Querier) *RfxRepo {
	return &RfxRepo{q: q}
}

const rfxColumns = `id, title, reference_no, type, scope, criteria, due_date, status, evaluation_parameters,
	attachments, bom_id, contact_person, budget, created_by, created_at, updated_at`

func scanRfx(row pgx.Row) (*entity.RfxEvent, error) {
	var e entity.RfxEvent
	err := row.Scan(&e.ID, &e.Title, &e.ReferenceNo, &e.Type, &e.Scope, &e.Criteria, &e.DueDate, &e.Status, &e.EvaluationParameters,
		&e.Attachments, &e.BOMID, &e.ContactPerson, &e.Budget, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserta el evento. reference_no duplicado devuelve ErrDuplicate.
func (r *RfxRepo) Create(ctx context.Context, e *entity.RfxEvent) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO rfx_events (`+rfxColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		e.ID, e.Title, e.ReferenceNo, e.Type, e.Scope, e.Criteria, e.DueDate, e.Status, e.EvaluationParameters,
		nonNilStrings(e.Attachments), e.BOMID, e.ContactPerson, e.Budget, e.CreatedBy, e.CreatedAt, e.UpdatedAt,
	)
	return mapWriteErr("insert rfx event", err)
}

// GetByID obtiene el evento; nil si no existe.
func (r *RfxRepo) GetByID(ctx context.Context, id string) (*entity.RfxEvent, error) {
	e, err := scanRfx(r.q.QueryRow(ctx, `SELECT `+rfxColumns+` FROM rfx_events WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rfx event: %w", err)
	}
	return e, nil
}

// List lista eventos por estado/tipo.
func (r *RfxRepo) List(ctx context.Context, f repository.RfxFilter) ([]*entity.RfxEvent, error) {
	var w whereBuilder
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}
	if f.Type != "" {
		w.add("type = ?", f.Type)
	}
	query := `SELECT ` + rfxColumns + ` FROM rfx_events` + w.sql() + ` ORDER BY created_at DESC`
	query += w.page(f.Page)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list rfx events: %w", err)
	}
	defer rows.Close()
	var list []*entity.RfxEvent
	for rows.Next() {
		e, err := scanRfx(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rfx event: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables (no el estado ni reference_no).
func (r *RfxRepo) Update(ctx context.Context, e *entity.RfxEvent) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE rfx_events SET title = $2, type = $3, scope = $4, criteria = $5, due_date = $6,
			evaluation_parameters = $7, attachments = $8, bom_id = $9, contact_person = $10, budget = $11, updated_at = $12
		WHERE id = $1`,
		e.ID, e.Title, e.Type, e.Scope, e.Criteria, e.DueDate,
		e.EvaluationParameters, nonNilStrings(e.Attachments), e.BOMID, e.ContactPerson, e.Budget, e.UpdatedAt,
	)
	if err != nil {
		return mapWriteErr("update rfx event", err)
	}
	return affectedOrNotFound(cmd.RowsAffected())
}

// UpdateStatus cambia el estado del evento.
func (r *RfxRepo) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE rfx_events SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return mapWriteErr("update rfx status", err)
	}
	return affectedOrNotFound(cmd.RowsAffected())
}

// Delete borra el evento; invitaciones y respuestas caen por cascada.
func (r *RfxRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM rfx_events WHERE id = $1`, id)
	if err != nil {
		return mapWriteErr("delete rfx event", err)
	}
	return affectedOrNotFound(cmd.RowsAffected())
}

// Invite crea la invitación si no existe.
func (r *RfxRepo) Invite(ctx context.Context, inv *entity.RfxInvitation) (bool, error) {
	cmd, err := r.q.Exec(ctx, `
		INSERT INTO rfx_invitations (rfx_id, vendor_id, status, invited_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (rfx_id, vendor_id) DO NOTHING`,
		inv.RfxID, inv.VendorID, inv.Status, inv.InvitedAt,
	)
	if err != nil {
		return false, mapWriteErr("insert rfx invitation", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// GetInvitation obtiene la invitación; nil si no existe.
func (r *RfxRepo) GetInvitation(ctx context.Context, rfxID, vendorID string) (*entity.RfxInvitation, error) {
	var inv entity.RfxInvitation
	err := r.q.QueryRow(ctx, `
		SELECT rfx_id, vendor_id, status, invited_at, responded_at
		FROM rfx_invitations WHERE rfx_id = $1 AND vendor_id = $2`, rfxID, vendorID).
		Scan(&inv.RfxID, &inv.VendorID, &inv.Status, &inv.InvitedAt, &inv.RespondedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rfx invitation: %w", err)
	}
	return &inv, nil
}

// ListInvitations invitaciones del evento.
func (r *RfxRepo) ListInvitations(ctx context.Context, rfxID string) ([]*entity.RfxInvitation, error) {
	rows, err := r.q.Query(ctx, `
		SELECT rfx_id, vendor_id, status, invited_at, responded_at
		FROM rfx_invitations WHERE rfx_id = $1 ORDER BY invited_at`, rfxID)
	if err != nil {
		return nil, fmt.Errorf("list rfx invitations: %w", err)
	}
	defer rows.Close()
	var list []*entity.RfxInvitation
	for rows.Next() {
		var inv entity.RfxInvitation
		if err := rows.Scan(&inv.RfxID, &inv.VendorID, &inv.Status, &inv.InvitedAt, &inv.RespondedAt); err != nil {
			return nil, fmt.Errorf("scan rfx invitation: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// UpdateInvitationStatus cambia el estado; respondedAt nil conserva el valor actual.
func (r *RfxRepo) UpdateInvitationStatus(ctx context.Context, rfxID, vendorID, status string, respondedAt *time.Time) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE rfx_invitations SET status = $3, responded_at = COALESCE($4, responded_at)
		WHERE rfx_id = $1 AND vendor_id = $2`,
		rfxID, vendorID, status, respondedAt,
	)
	if err != nil {
		return mapWriteErr("update rfx invitation", err)
	}
	return affectedOrNotFound(cmd.RowsAffected())
}

// CreateResponse inserta la respuesta de un proveedor.
func (r *RfxRepo) CreateResponse(ctx context.Context, resp *entity.RfxResponse) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO rfx_responses (id, rfx_id, vendor_id, response, quoted_price, delivery_terms, payment_terms, lead_time, attachments, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		resp.ID, resp.RfxID, resp.VendorID, resp.Response, resp.QuotedPrice, resp.DeliveryTerms,
		resp.PaymentTerms, resp.LeadTime, nonNilStrings(resp.Attachments), resp.SubmittedAt,
	)
	return mapWriteErr("insert rfx response", err)
}

// ListResponses respuestas del evento, la más barata primero.
func (r *RfxRepo) ListResponses(ctx context.Context, rfxID string) ([]*entity.RfxResponse, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, rfx_id, vendor_id, response, quoted_price, delivery_terms, payment_terms, lead_time, attachments, submitted_at
		FROM rfx_responses WHERE rfx_id = $1 ORDER BY quoted_price NULLS LAST, submitted_at`, rfxID)
	if err != nil {
		return nil, fmt.Errorf("list rfx responses: %w", err)
	}
	defer rows.Close()
	var list []*entity.RfxResponse
	for rows.Next() {
		var resp entity.RfxResponse
		if err := rows.Scan(&resp.ID, &resp.RfxID, &resp.VendorID, &resp.Response, &resp.QuotedPrice, &resp.DeliveryTerms,
			&resp.PaymentTerms, &resp.LeadTime, &resp.Attachments, &resp.SubmittedAt); err != nil {
			return nil, fmt.Errorf("scan rfx response: %w", err)
		}
		list = append(list, &resp)
	}
	return list, rows.Err()
}
