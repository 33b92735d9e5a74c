package repository

import (
	"context"
	"time"

	"campreserv-backend/internal/domain"
)

type WaitlistRepository interface {
	Create(ctx context.Context, entry *domain.WaitlistEntry) error
	GetByID(ctx context.Context, id string) (*domain.WaitlistEntry, error)
	// ListByCampground returns entries newest first, guest attached, optionally
	// narrowed by type ("regular"/"seasonal").
	ListByCampground(ctx context.Context, campgroundID string, entryType string) ([]domain.WaitlistEntry, error)
	// ListActiveMatching returns active entries for the campground whose site /
	// site-class preference is unset or matches the given ids, guest attached.
	ListActiveMatching(ctx context.Context, campgroundID string, siteID, siteClassID *string) ([]domain.WaitlistEntry, error)
	UpdateStatus(ctx context.Context, id string, status domain.WaitlistStatus) error
	MarkConverted(ctx context.Context, id, reservationID string, convertedAt time.Time) error
	// ExpireOlderThan bulk-updates active entries created before cutoff to
	// expired and returns the number of rows touched.
	ExpireOlderThan(ctx context.Context, campgroundID string, cutoff time.Time) (int64, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, campgroundID string, status domain.WaitlistStatus) (int, error)
	// ListCampgroundIDsWithActive returns the campgrounds that currently have
	// active entries, for the nightly expiry sweep.
	ListCampgroundIDsWithActive(ctx context.Context) ([]string, error)
}

type TillRepository interface {
	CreateSession(ctx context.Context, session *domain.TillSession) error
	// GetSession loads a session scoped to a campground with movements attached.
	GetSession(ctx context.Context, id, campgroundID string) (*domain.TillSession, error)
	GetSessionByID(ctx context.Context, id string) (*domain.TillSession, error)
	ListSessions(ctx context.Context, campgroundID string, status domain.TillSessionStatus, limit int) ([]domain.TillSession, error)
	// FindOpenSession returns the open session for the (campground, terminal)
	// pair, or nil when there is none.
	FindOpenSession(ctx context.Context, campgroundID string, terminalID *string) (*domain.TillSession, error)
	CloseSession(ctx context.Context, session *domain.TillSession) error
	CreateMovement(ctx context.Context, movement *domain.TillMovement) error
	ListMovements(ctx context.Context, sessionID string) ([]domain.TillMovement, error)
	ListOpenSessionsOlderThan(ctx context.Context, cutoff time.Time) ([]domain.TillSession, error)
}

type GuestRepository interface {
	Create(ctx context.Context, guest *domain.Guest) error
	GetByID(ctx context.Context, id string) (*domain.Guest, error)
	ListByCampground(ctx context.Context, campgroundID string) ([]domain.Guest, error)
	IncrementReservationCount(ctx context.Context, id string) error
}

type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	Update(ctx context.Context, res *domain.Reservation) error
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID string, limit, offset int) ([]domain.Notification, int, error)
	MarkAsRead(ctx context.Context, id, userID string) error
}

type AuditLogRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
	ListByEntity(ctx context.Context, campgroundID, entityType, entityID string) ([]domain.AuditLog, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
