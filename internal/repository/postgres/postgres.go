package postgres

import (
	"database/sql"

	"campreserv-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.WaitlistRepository
	repository.TillRepository
	repository.GuestRepository
	repository.ReservationRepository
	repository.NotificationRepository
	repository.AuditLogRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		WaitlistRepository:     NewWaitlistRepository(db),
		TillRepository:         NewTillRepository(db),
		GuestRepository:        NewGuestRepository(db),
		ReservationRepository:  NewReservationRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		AuditLogRepository:     NewAuditLogRepository(db),
		UserRepository:         NewUserRepository(db),
	}
}
