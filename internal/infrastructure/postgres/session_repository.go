package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo almacén de sesiones sobre la tabla sessions.
type SessionRepo struct {
	q Querier
}

// NewSessionRepository construye el store de sesiones.
func NewSessionRepository(q Querier) *SessionRepo {
	return &SessionRepo{q: q}
}

// Create guarda la sesión (reemplaza si el sid ya existía).
func (r *SessionRepo) Create(ctx context.Context, s *entity.Session) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sessions (sid, sess, expire) VALUES ($1, $2, $3)
		ON CONFLICT (sid) DO UPDATE SET sess = EXCLUDED.sess, expire = EXCLUDED.expire`,
		s.SID, s.Data, s.Expire,
	)
	return mapWriteErr("insert session", err)
}

// Get devuelve la sesión aunque esté vencida; nil si no existe.
func (r *SessionRepo) Get(ctx context.Context, sid string) (*entity.Session, error) {
	var s entity.Session
	err := r.q.QueryRow(ctx, `SELECT sid, sess, expire FROM sessions WHERE sid = $1`, sid).
		Scan(&s.SID, &s.Data, &s.Expire)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &s, nil
}

// Delete elimina la sesión (logout). No falla si no existe.
func (r *SessionRepo) Delete(ctx context.Context, sid string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM sessions WHERE sid = $1`, sid); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired usa el índice IDX_session_expire.
func (r *SessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM sessions WHERE expire < now()`)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return cmd.RowsAffected(), nil
}
