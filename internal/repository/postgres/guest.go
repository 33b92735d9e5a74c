package postgres

import (
	"context"
	"database/sql"
	"time"

	"campreserv-backend/internal/domain"
	"campreserv-backend/internal/repository"

	"github.com/google/uuid"
)

type guestRepository struct {
	db *sql.DB
}

func NewGuestRepository(db *sql.DB) repository.GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) Create(ctx context.Context, guest *domain.Guest) error {
	if guest.ID == "" {
		guest.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	guest.CreatedAt = now
	guest.UpdatedAt = now
	query := `INSERT INTO guests (id, campground_id, name, email, phone, reservation_count, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query,
		guest.ID, guest.CampgroundID, guest.Name, guest.Email, guest.Phone, guest.ReservationCount, now, now)
	return err
}

func (r *guestRepository) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	guest := &domain.Guest{}
	query := `SELECT id, campground_id, name, COALESCE(email, ''), COALESCE(phone, ''), reservation_count, created_at, updated_at
	          FROM guests WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&guest.ID, &guest.CampgroundID, &guest.Name, &guest.Email, &guest.Phone,
		&guest.ReservationCount, &guest.CreatedAt, &guest.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return guest, nil
}

func (r *guestRepository) ListByCampground(ctx context.Context, campgroundID string) ([]domain.Guest, error) {
	query := `SELECT id, campground_id, name, COALESCE(email, ''), COALESCE(phone, ''), reservation_count, created_at, updated_at
	          FROM guests WHERE campground_id = $1 ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query, campgroundID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guests []domain.Guest
	for rows.Next() {
		var g domain.Guest
		err := rows.Scan(&g.ID, &g.CampgroundID, &g.Name, &g.Email, &g.Phone,
			&g.ReservationCount, &g.CreatedAt, &g.UpdatedAt)
		if err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}

func (r *guestRepository) IncrementReservationCount(ctx context.Context, id string) error {
	query := `UPDATE guests SET reservation_count = reservation_count + 1, updated_at = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
