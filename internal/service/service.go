package service

import (
	"context"
	"errors"
	"time"

	"campreserv-backend/internal/domain"
)

// Actor is the authenticated staff identity attached to every request.
type Actor struct {
	ID           string
	CampgroundID string
}

var (
	ErrNotFound           = errors.New("not found")
	ErrMissingActor       = errors.New("missing actor context")
	ErrTillAlreadyOpen    = errors.New("a till is already open for this terminal")
	ErrTillNotOpen        = errors.New("till is not open")
	ErrTillAlreadyClosed  = errors.New("till already closed")
	ErrCurrencyMismatch   = errors.New("till currency mismatch")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type CreateWaitlistEntryInput struct {
	CampgroundID  string
	GuestID       *string
	Priority      *int
	ArrivalDate   *time.Time
	DepartureDate *time.Time
	SiteID        *string
	SiteClassID   *string
	MaxPriceCents *int64
	AutoOffer     bool
	Notes         string
}

type CreateStaffWaitlistEntryInput struct {
	CampgroundID  string
	Type          domain.WaitlistType
	ContactName   string
	ContactEmail  string
	ContactPhone  string
	Notes         string
	SiteID        *string
	SiteClassID   *string
	ArrivalDate   *time.Time
	DepartureDate *time.Time
}

type WaitlistService interface {
	Create(ctx context.Context, input CreateWaitlistEntryInput) (*domain.WaitlistEntry, error)
	CreateStaffEntry(ctx context.Context, input CreateStaffWaitlistEntryInput) (*domain.WaitlistEntry, error)
	FindAll(ctx context.Context, campgroundID, entryType string) ([]domain.WaitlistEntry, error)
	Remove(ctx context.Context, id string) error
	MarkConverted(ctx context.Context, id, reservationID string) error
	ExpireOldEntries(ctx context.Context, campgroundID string, thresholdDays int) (int64, error)
	GetStats(ctx context.Context, campgroundID string) (*domain.WaitlistStats, error)
	CheckWaitlist(ctx context.Context, campgroundID string, freedArrival, freedDeparture time.Time, siteID, siteClassID *string) ([]domain.WaitlistMatch, error)
	OfferTopMatch(ctx context.Context, matches []domain.WaitlistMatch) (*domain.WaitlistEntry, error)
}

type OpenTillInput struct {
	TerminalID        *string
	OpeningFloatCents int64
	Currency          string
	Notes             string
}

type CloseTillInput struct {
	CountedCloseCents int64
	Notes             string
}

type TillMovementInput struct {
	AmountCents int64
	Note        string
}

type TillService interface {
	Open(ctx context.Context, input OpenTillInput, actor Actor) (*domain.TillSession, error)
	// Get returns the session with movements attached plus the expected close
	// balance computed from the opening float and recorded movements.
	Get(ctx context.Context, id string, actor Actor) (*domain.TillSession, int64, error)
	List(ctx context.Context, status domain.TillSessionStatus, actor Actor) ([]domain.TillSession, error)
	Close(ctx context.Context, id string, input CloseTillInput, actor Actor) (*domain.TillSession, error)
	PaidIn(ctx context.Context, id string, input TillMovementInput, actor Actor) (*domain.TillMovement, error)
	PaidOut(ctx context.Context, id string, input TillMovementInput, actor Actor) (*domain.TillMovement, error)
	RecordCashSale(ctx context.Context, sessionID string, amountCents int64, currency string, cartID *string, actor Actor) (*domain.TillMovement, error)
	RecordCashRefund(ctx context.Context, sessionID string, amountCents int64, currency string, cartID *string, actor Actor) (*domain.TillMovement, error)
	FindOpenSessionForTerminal(ctx context.Context, campgroundID string, terminalID *string) (*domain.TillSession, error)
}

type GuestService interface {
	Create(ctx context.Context, guest *domain.Guest) error
	Get(ctx context.Context, id string) (*domain.Guest, error)
	List(ctx context.Context, campgroundID string) ([]domain.Guest, error)
}

type CreateReservationInput struct {
	GuestID       string
	SiteID        string
	SiteClassID   *string
	ArrivalDate   time.Time
	DepartureDate time.Time
	TotalCents    int64
	Currency      string
	// WaitlistEntryID, when set, marks that entry converted once the
	// reservation is created.
	WaitlistEntryID *string
}

type ReservationService interface {
	Create(ctx context.Context, input CreateReservationInput, actor Actor) (*domain.Reservation, error)
	Get(ctx context.Context, id string, actor Actor) (*domain.Reservation, error)
	// Cancel frees the reservation's date range and runs the waitlist matcher
	// against it.
	Cancel(ctx context.Context, id string, actor Actor) (*domain.Reservation, error)
}

type AuditService interface {
	Record(ctx context.Context, campgroundID, actorID, action, entityType, entityID, detail string)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID string, page, pageSize int) ([]domain.Notification, int, error)
	MarkAsRead(ctx context.Context, userID, notificationID string) error
}

type AuthService interface {
	// Login returns a signed access token for valid staff credentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type EmailService interface {
	SendWaitlistOffer(ctx context.Context, toEmail, toName, campgroundID string, arrival, departure *time.Time) error
	SendStaleTillReminder(ctx context.Context, toEmail, toName string, session domain.TillSession) error
}

// EventPublisher publishes domain events for downstream consumers. Failures
// are logged by implementations and must not abort the calling operation.
type EventPublisher interface {
	PublishWaitlistOffer(ctx context.Context, entry domain.WaitlistEntry, score int) error
}
