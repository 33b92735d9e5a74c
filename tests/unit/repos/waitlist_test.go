package repos

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"campreserv-backend/internal/domain"
	"campreserv-backend/internal/repository/postgres"
)

var waitlistRows = []string{
	"id", "campground_id", "guest_id", "type", "status", "priority", "arrival_date", "departure_date",
	"site_id", "site_class_id", "max_price_cents", "auto_offer",
	"contact_name", "contact_email", "contact_phone", "notes",
	"converted_reservation_id", "converted_at", "created_at",
}

var waitlistRowsWithGuest = append(append([]string{}, waitlistRows...),
	"g_id", "g_campground_id", "g_name", "g_email", "g_phone", "g_reservation_count")

func TestWaitlistRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewWaitlistRepository(db)
	ctx := context.Background()

	t.Run("GeneratesIDAndTimestamp", func(t *testing.T) {
		entry := &domain.WaitlistEntry{
			CampgroundID: "cg-1",
			Type:         domain.WaitlistTypeRegular,
			Status:       domain.WaitlistStatusActive,
			AutoOffer:    true,
		}

		mock.ExpectExec("INSERT INTO waitlist_entries").
			WithArgs(sqlmock.AnyArg(), "cg-1", nil, "regular", "active", nil, nil, nil,
				nil, nil, nil, true, "", "", "", "", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, entry)
		assert.NoError(t, err)
		assert.NotEmpty(t, entry.ID)
		assert.False(t, entry.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWaitlistRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewWaitlistRepository(db)
	ctx := context.Background()

	t.Run("ScansConvertedFields", func(t *testing.T) {
		created := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
		convertedAt := time.Date(2026, 6, 2, 9, 30, 0, 0, time.UTC)
		rows := sqlmock.NewRows(waitlistRows).
			AddRow("entry-1", "cg-1", "guest-1", "regular", "converted", 60, nil, nil,
				nil, nil, nil, true, "", "", "", "", "res-9", convertedAt, created)

		mock.ExpectQuery("SELECT (.+) FROM waitlist_entries w WHERE w.id").
			WithArgs("entry-1").
			WillReturnRows(rows)

		entry, err := repo.GetByID(ctx, "entry-1")
		assert.NoError(t, err)
		assert.Equal(t, "cg-1", entry.CampgroundID)
		assert.Equal(t, domain.WaitlistStatusConverted, entry.Status)
		assert.Equal(t, "res-9", *entry.ConvertedReservationID)
		assert.Equal(t, convertedAt, *entry.ConvertedAt)
	})

	t.Run("MissingEntry", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM waitlist_entries w WHERE w.id").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestWaitlistRepository_ListActiveMatching(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewWaitlistRepository(db)
	ctx := context.Background()

	t.Run("AttachesGuestWhenPresent", func(t *testing.T) {
		created := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows(waitlistRowsWithGuest).
			AddRow("entry-1", "cg-1", "guest-1", "regular", "active", 60, nil, nil,
				nil, nil, nil, true, "", "", "", "", nil, nil, created,
				"guest-1", "cg-1", "Pat", "pat@example.com", "555-0100", 4).
			AddRow("entry-2", "cg-1", nil, "regular", "active", nil, nil, nil,
				nil, nil, nil, false, "Walk In", "", "555-0101", "", nil, nil, created,
				nil, nil, nil, nil, nil, nil)

		mock.ExpectQuery("SELECT (.+) FROM waitlist_entries w LEFT JOIN guests g").
			WithArgs("cg-1", "active", nil, nil).
			WillReturnRows(rows)

		entries, err := repo.ListActiveMatching(ctx, "cg-1", nil, nil)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.NotNil(t, entries[0].Guest)
		assert.Equal(t, 4, entries[0].Guest.ReservationCount)
		assert.Nil(t, entries[1].Guest)
		assert.Equal(t, "Walk In", entries[1].ContactName)
	})
}

func TestWaitlistRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewWaitlistRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE waitlist_entries SET status").
			WithArgs("offered", "entry-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, "entry-1", domain.WaitlistStatusOffered)
		assert.NoError(t, err)
	})

	t.Run("MissingEntry", func(t *testing.T) {
		mock.ExpectExec("UPDATE waitlist_entries SET status").
			WithArgs("offered", "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, "missing", domain.WaitlistStatusOffered)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestWaitlistRepository_MarkConverted(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewWaitlistRepository(db)
	ctx := context.Background()
	convertedAt := time.Date(2026, 6, 2, 9, 30, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE waitlist_entries SET status").
			WithArgs("converted", "res-9", convertedAt, "entry-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.MarkConverted(ctx, "entry-1", "res-9", convertedAt)
		assert.NoError(t, err)
	})

	t.Run("MissingEntry", func(t *testing.T) {
		mock.ExpectExec("UPDATE waitlist_entries SET status").
			WithArgs("converted", "res-9", convertedAt, "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.MarkConverted(ctx, "missing", "res-9", convertedAt)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestWaitlistRepository_ExpireOlderThan(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewWaitlistRepository(db)
	ctx := context.Background()

	t.Run("ReturnsAffectedCount", func(t *testing.T) {
		cutoff := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		mock.ExpectExec("UPDATE waitlist_entries SET status").
			WithArgs("expired", "cg-1", "active", cutoff).
			WillReturnResult(sqlmock.NewResult(0, 7))

		count, err := repo.ExpireOlderThan(ctx, "cg-1", cutoff)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), count)
	})
}

func TestWaitlistRepository_CountByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewWaitlistRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT count(.+) FROM waitlist_entries").
			WithArgs("cg-1", "active").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

		count, err := repo.CountByStatus(ctx, "cg-1", domain.WaitlistStatusActive)
		assert.NoError(t, err)
		assert.Equal(t, 12, count)
	})
}

func TestWaitlistRepository_ListCampgroundIDsWithActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewWaitlistRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT DISTINCT campground_id FROM waitlist_entries").
			WithArgs("active").
			WillReturnRows(sqlmock.NewRows([]string{"campground_id"}).AddRow("cg-1").AddRow("cg-2"))

		ids, err := repo.ListCampgroundIDsWithActive(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []string{"cg-1", "cg-2"}, ids)
	})
}

func TestWaitlistRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewWaitlistRepository(db)
	ctx := context.Background()

	t.Run("MissingEntry", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM waitlist_entries").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, "missing")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}
