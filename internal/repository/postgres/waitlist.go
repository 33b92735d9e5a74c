package postgres

import (
	"context"
	"database/sql"
	"time"

	"campreserv-backend/internal/domain"
	"campreserv-backend/internal/repository"

	"github.com/google/uuid"
)

type waitlistRepository struct {
	db *sql.DB
}

func NewWaitlistRepository(db *sql.DB) repository.WaitlistRepository {
	return &waitlistRepository{db: db}
}

const waitlistColumns = `w.id, w.campground_id, w.guest_id, w.type, w.status, w.priority, w.arrival_date, w.departure_date,
	w.site_id, w.site_class_id, w.max_price_cents, w.auto_offer,
	COALESCE(w.contact_name, ''), COALESCE(w.contact_email, ''), COALESCE(w.contact_phone, ''), COALESCE(w.notes, ''),
	w.converted_reservation_id, w.converted_at, w.created_at`

func (r *waitlistRepository) Create(ctx context.Context, entry *domain.WaitlistEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.CreatedAt = time.Now().UTC()
	query := `INSERT INTO waitlist_entries (id, campground_id, guest_id, type, status, priority, arrival_date, departure_date,
	          site_id, site_class_id, max_price_cents, auto_offer, contact_name, contact_email, contact_phone, notes, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.CampgroundID, entry.GuestID, entry.Type, entry.Status, entry.Priority,
		entry.ArrivalDate, entry.DepartureDate, entry.SiteID, entry.SiteClassID, entry.MaxPriceCents,
		entry.AutoOffer, entry.ContactName, entry.ContactEmail, entry.ContactPhone, entry.Notes, entry.CreatedAt)
	return err
}

func (r *waitlistRepository) GetByID(ctx context.Context, id string) (*domain.WaitlistEntry, error) {
	query := `SELECT ` + waitlistColumns + ` FROM waitlist_entries w WHERE w.id = $1`
	entry, err := scanWaitlistEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *waitlistRepository) ListByCampground(ctx context.Context, campgroundID string, entryType string) ([]domain.WaitlistEntry, error) {
	query := `SELECT ` + waitlistColumns + `, g.id, g.campground_id, g.name, COALESCE(g.email, ''), COALESCE(g.phone, ''), g.reservation_count
	          FROM waitlist_entries w LEFT JOIN guests g ON g.id = w.guest_id
	          WHERE w.campground_id = $1`
	args := []interface{}{campgroundID}
	if entryType != "" {
		query += ` AND w.type = $2`
		args = append(args, entryType)
	}
	query += ` ORDER BY w.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWaitlistEntriesWithGuest(rows)
}

func (r *waitlistRepository) ListActiveMatching(ctx context.Context, campgroundID string, siteID, siteClassID *string) ([]domain.WaitlistEntry, error) {
	query := `SELECT ` + waitlistColumns + `, g.id, g.campground_id, g.name, COALESCE(g.email, ''), COALESCE(g.phone, ''), g.reservation_count
	          FROM waitlist_entries w LEFT JOIN guests g ON g.id = w.guest_id
	          WHERE w.campground_id = $1 AND w.status = $2
	            AND (w.site_id IS NULL OR $3::text IS NULL OR w.site_id = $3)
	            AND (w.site_class_id IS NULL OR $4::text IS NULL OR w.site_class_id = $4)
	          ORDER BY w.created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, campgroundID, domain.WaitlistStatusActive, siteID, siteClassID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWaitlistEntriesWithGuest(rows)
}

func (r *waitlistRepository) UpdateStatus(ctx context.Context, id string, status domain.WaitlistStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE waitlist_entries SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *waitlistRepository) MarkConverted(ctx context.Context, id, reservationID string, convertedAt time.Time) error {
	query := `UPDATE waitlist_entries SET status = $1, converted_reservation_id = $2, converted_at = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, domain.WaitlistStatusConverted, reservationID, convertedAt, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *waitlistRepository) ExpireOlderThan(ctx context.Context, campgroundID string, cutoff time.Time) (int64, error) {
	query := `UPDATE waitlist_entries SET status = $1 WHERE campground_id = $2 AND status = $3 AND created_at < $4`
	res, err := r.db.ExecContext(ctx, query, domain.WaitlistStatusExpired, campgroundID, domain.WaitlistStatusActive, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *waitlistRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM waitlist_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *waitlistRepository) CountByStatus(ctx context.Context, campgroundID string, status domain.WaitlistStatus) (int, error) {
	var count int
	query := `SELECT count(*) FROM waitlist_entries WHERE campground_id = $1 AND status = $2`
	err := r.db.QueryRowContext(ctx, query, campgroundID, status).Scan(&count)
	return count, err
}

func (r *waitlistRepository) ListCampgroundIDsWithActive(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT campground_id FROM waitlist_entries WHERE status = $1`
	rows, err := r.db.QueryContext(ctx, query, domain.WaitlistStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWaitlistEntry(row rowScanner) (*domain.WaitlistEntry, error) {
	entry := &domain.WaitlistEntry{}
	err := row.Scan(&entry.ID, &entry.CampgroundID, &entry.GuestID, &entry.Type, &entry.Status, &entry.Priority,
		&entry.ArrivalDate, &entry.DepartureDate, &entry.SiteID, &entry.SiteClassID, &entry.MaxPriceCents,
		&entry.AutoOffer, &entry.ContactName, &entry.ContactEmail, &entry.ContactPhone, &entry.Notes,
		&entry.ConvertedReservationID, &entry.ConvertedAt, &entry.CreatedAt)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func scanWaitlistEntriesWithGuest(rows *sql.Rows) ([]domain.WaitlistEntry, error) {
	var entries []domain.WaitlistEntry
	for rows.Next() {
		var entry domain.WaitlistEntry
		var gID, gCampgroundID, gName, gEmail, gPhone sql.NullString
		var gReservationCount sql.NullInt64
		err := rows.Scan(&entry.ID, &entry.CampgroundID, &entry.GuestID, &entry.Type, &entry.Status, &entry.Priority,
			&entry.ArrivalDate, &entry.DepartureDate, &entry.SiteID, &entry.SiteClassID, &entry.MaxPriceCents,
			&entry.AutoOffer, &entry.ContactName, &entry.ContactEmail, &entry.ContactPhone, &entry.Notes,
			&entry.ConvertedReservationID, &entry.ConvertedAt, &entry.CreatedAt,
			&gID, &gCampgroundID, &gName, &gEmail, &gPhone, &gReservationCount)
		if err != nil {
			return nil, err
		}
		if gID.Valid {
			entry.Guest = &domain.Guest{
				ID:               gID.String,
				CampgroundID:     gCampgroundID.String,
				Name:             gName.String,
				Email:            gEmail.String,
				Phone:            gPhone.String,
				ReservationCount: int(gReservationCount.Int64),
			}
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
