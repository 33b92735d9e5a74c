package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"campreserv-backend/internal/domain"
	"campreserv-backend/internal/repository"

	"github.com/google/uuid"
)

type tillRepository struct {
	db *sql.DB
}

func NewTillRepository(db *sql.DB) repository.TillRepository {
	return &tillRepository{db: db}
}

const tillSessionColumns = `id, campground_id, terminal_id, status, opening_float_cents, currency, COALESCE(notes, ''),
	opened_by_user_id, opened_at, expected_close_cents, counted_close_cents, over_short_cents, closed_by_user_id, closed_at`

func (r *tillRepository) CreateSession(ctx context.Context, session *domain.TillSession) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	session.OpenedAt = time.Now().UTC()
	query := `INSERT INTO till_sessions (id, campground_id, terminal_id, status, opening_float_cents, currency, notes, opened_by_user_id, opened_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query,
		session.ID, session.CampgroundID, session.TerminalID, session.Status,
		session.OpeningFloatCents, session.Currency, session.Notes, session.OpenedByUserID, session.OpenedAt)
	return err
}

func (r *tillRepository) GetSession(ctx context.Context, id, campgroundID string) (*domain.TillSession, error) {
	query := `SELECT ` + tillSessionColumns + ` FROM till_sessions WHERE id = $1 AND campground_id = $2`
	session, err := scanTillSession(r.db.QueryRowContext(ctx, query, id, campgroundID))
	if err != nil {
		return nil, err
	}
	movements, err := r.ListMovements(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	session.Movements = movements
	return session, nil
}

func (r *tillRepository) GetSessionByID(ctx context.Context, id string) (*domain.TillSession, error) {
	query := `SELECT ` + tillSessionColumns + ` FROM till_sessions WHERE id = $1`
	return scanTillSession(r.db.QueryRowContext(ctx, query, id))
}

func (r *tillRepository) ListSessions(ctx context.Context, campgroundID string, status domain.TillSessionStatus, limit int) ([]domain.TillSession, error) {
	query := `SELECT ` + tillSessionColumns + ` FROM till_sessions WHERE campground_id = $1`
	args := []interface{}{campgroundID}
	argIdx := 2
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
		argIdx++
	}
	query += fmt.Sprintf(` ORDER BY opened_at DESC LIMIT $%d`, argIdx)
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.TillSession
	for rows.Next() {
		session, err := scanTillSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *session)
	}
	return sessions, rows.Err()
}

func (r *tillRepository) FindOpenSession(ctx context.Context, campgroundID string, terminalID *string) (*domain.TillSession, error) {
	query := `SELECT ` + tillSessionColumns + ` FROM till_sessions
	          WHERE campground_id = $1 AND status = $2 AND ($3::text IS NULL OR terminal_id = $3)
	          LIMIT 1`
	session, err := scanTillSession(r.db.QueryRowContext(ctx, query, campgroundID, domain.TillSessionStatusOpen, terminalID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (r *tillRepository) CloseSession(ctx context.Context, session *domain.TillSession) error {
	query := `UPDATE till_sessions SET status = $1, expected_close_cents = $2, counted_close_cents = $3,
	          over_short_cents = $4, closed_by_user_id = $5, closed_at = $6, notes = $7 WHERE id = $8`
	res, err := r.db.ExecContext(ctx, query,
		session.Status, session.ExpectedCloseCents, session.CountedCloseCents,
		session.OverShortCents, session.ClosedByUserID, session.ClosedAt, session.Notes, session.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *tillRepository) CreateMovement(ctx context.Context, movement *domain.TillMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.NewString()
	}
	movement.CreatedAt = time.Now().UTC()
	query := `INSERT INTO till_movements (id, session_id, type, amount_cents, currency, actor_user_id, note, source_cart_id, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query,
		movement.ID, movement.SessionID, movement.Type, movement.AmountCents, movement.Currency,
		movement.ActorUserID, movement.Note, movement.SourceCartID, movement.CreatedAt)
	return err
}

func (r *tillRepository) ListMovements(ctx context.Context, sessionID string) ([]domain.TillMovement, error) {
	query := `SELECT id, session_id, type, amount_cents, currency, actor_user_id, COALESCE(note, ''), source_cart_id, created_at
	          FROM till_movements WHERE session_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []domain.TillMovement
	for rows.Next() {
		var m domain.TillMovement
		err := rows.Scan(&m.ID, &m.SessionID, &m.Type, &m.AmountCents, &m.Currency,
			&m.ActorUserID, &m.Note, &m.SourceCartID, &m.CreatedAt)
		if err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

func (r *tillRepository) ListOpenSessionsOlderThan(ctx context.Context, cutoff time.Time) ([]domain.TillSession, error) {
	query := `SELECT ` + tillSessionColumns + ` FROM till_sessions WHERE status = $1 AND opened_at < $2 ORDER BY opened_at ASC`
	rows, err := r.db.QueryContext(ctx, query, domain.TillSessionStatusOpen, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.TillSession
	for rows.Next() {
		session, err := scanTillSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *session)
	}
	return sessions, rows.Err()
}

func scanTillSession(row rowScanner) (*domain.TillSession, error) {
	session := &domain.TillSession{}
	err := row.Scan(&session.ID, &session.CampgroundID, &session.TerminalID, &session.Status,
		&session.OpeningFloatCents, &session.Currency, &session.Notes, &session.OpenedByUserID, &session.OpenedAt,
		&session.ExpectedCloseCents, &session.CountedCloseCents, &session.OverShortCents,
		&session.ClosedByUserID, &session.ClosedAt)
	if err != nil {
		return nil, err
	}
	return session, nil
}
