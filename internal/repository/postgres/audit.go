package postgres

import (
	"context"
	"database/sql"
	"time"

	"campreserv-backend/internal/domain"
	"campreserv-backend/internal/repository"

	"github.com/google/uuid"
)

type auditLogRepository struct {
	db *sql.DB
}

func NewAuditLogRepository(db *sql.DB) repository.AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(ctx context.Context, entry *domain.AuditLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.CreatedAt = time.Now().UTC()
	query := `INSERT INTO audit_logs (id, campground_id, actor_user_id, action, entity_type, entity_id, detail, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.CampgroundID, entry.ActorUserID, entry.Action,
		entry.EntityType, entry.EntityID, entry.Detail, entry.CreatedAt)
	return err
}

func (r *auditLogRepository) ListByEntity(ctx context.Context, campgroundID, entityType, entityID string) ([]domain.AuditLog, error) {
	query := `SELECT id, campground_id, actor_user_id, action, entity_type, entity_id, COALESCE(detail, ''), created_at
	          FROM audit_logs WHERE campground_id = $1 AND entity_type = $2 AND entity_id = $3 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, campgroundID, entityType, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.AuditLog
	for rows.Next() {
		var e domain.AuditLog
		err := rows.Scan(&e.ID, &e.CampgroundID, &e.ActorUserID, &e.Action,
			&e.EntityType, &e.EntityID, &e.Detail, &e.CreatedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
