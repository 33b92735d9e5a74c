package postgres

import (
	"context"
	"database/sql"
	"time"

	"campreserv-backend/internal/domain"
	"campreserv-backend/internal/repository"

	"github.com/google/uuid"
)

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	res.CreatedAt = now
	res.UpdatedAt = now
	query := `INSERT INTO reservations (id, campground_id, guest_id, site_id, site_class_id, arrival_date, departure_date,
	          total_cents, currency, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecContext(ctx, query,
		res.ID, res.CampgroundID, res.GuestID, res.SiteID, res.SiteClassID,
		res.ArrivalDate, res.DepartureDate, res.TotalCents, res.Currency, res.Status, now, now)
	return err
}

func (r *reservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	res := &domain.Reservation{}
	query := `SELECT id, campground_id, guest_id, site_id, site_class_id, arrival_date, departure_date,
	          total_cents, currency, status, cancelled_at, created_at, updated_at
	          FROM reservations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&res.ID, &res.CampgroundID, &res.GuestID, &res.SiteID, &res.SiteClassID,
		&res.ArrivalDate, &res.DepartureDate, &res.TotalCents, &res.Currency, &res.Status,
		&res.CancelledAt, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *reservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	query := `UPDATE reservations SET status = $1, cancelled_at = $2, updated_at = $3 WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query, res.Status, res.CancelledAt, time.Now().UTC(), res.ID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
