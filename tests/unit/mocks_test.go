package unit

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"campreserv-backend/internal/domain"
	"campreserv-backend/internal/service"
)

// MockWaitlistRepo
type MockWaitlistRepo struct {
	mock.Mock
}

func (m *MockWaitlistRepo) Create(ctx context.Context, entry *domain.WaitlistEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockWaitlistRepo) GetByID(ctx context.Context, id string) (*domain.WaitlistEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WaitlistEntry), args.Error(1)
}
func (m *MockWaitlistRepo) ListByCampground(ctx context.Context, campgroundID string, entryType string) ([]domain.WaitlistEntry, error) {
	args := m.Called(ctx, campgroundID, entryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WaitlistEntry), args.Error(1)
}
func (m *MockWaitlistRepo) ListActiveMatching(ctx context.Context, campgroundID string, siteID, siteClassID *string) ([]domain.WaitlistEntry, error) {
	args := m.Called(ctx, campgroundID, siteID, siteClassID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WaitlistEntry), args.Error(1)
}
func (m *MockWaitlistRepo) UpdateStatus(ctx context.Context, id string, status domain.WaitlistStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockWaitlistRepo) MarkConverted(ctx context.Context, id, reservationID string, convertedAt time.Time) error {
	args := m.Called(ctx, id, reservationID, convertedAt)
	return args.Error(0)
}
func (m *MockWaitlistRepo) ExpireOlderThan(ctx context.Context, campgroundID string, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, campgroundID, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockWaitlistRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockWaitlistRepo) CountByStatus(ctx context.Context, campgroundID string, status domain.WaitlistStatus) (int, error) {
	args := m.Called(ctx, campgroundID, status)
	return args.Int(0), args.Error(1)
}
func (m *MockWaitlistRepo) ListCampgroundIDsWithActive(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockTillRepo
type MockTillRepo struct {
	mock.Mock
}

func (m *MockTillRepo) CreateSession(ctx context.Context, session *domain.TillSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}
func (m *MockTillRepo) GetSession(ctx context.Context, id, campgroundID string) (*domain.TillSession, error) {
	args := m.Called(ctx, id, campgroundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TillSession), args.Error(1)
}
func (m *MockTillRepo) GetSessionByID(ctx context.Context, id string) (*domain.TillSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TillSession), args.Error(1)
}
func (m *MockTillRepo) ListSessions(ctx context.Context, campgroundID string, status domain.TillSessionStatus, limit int) ([]domain.TillSession, error) {
	args := m.Called(ctx, campgroundID, status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TillSession), args.Error(1)
}
func (m *MockTillRepo) FindOpenSession(ctx context.Context, campgroundID string, terminalID *string) (*domain.TillSession, error) {
	args := m.Called(ctx, campgroundID, terminalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TillSession), args.Error(1)
}
func (m *MockTillRepo) CloseSession(ctx context.Context, session *domain.TillSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}
func (m *MockTillRepo) CreateMovement(ctx context.Context, movement *domain.TillMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}
func (m *MockTillRepo) ListMovements(ctx context.Context, sessionID string) ([]domain.TillMovement, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TillMovement), args.Error(1)
}
func (m *MockTillRepo) ListOpenSessionsOlderThan(ctx context.Context, cutoff time.Time) ([]domain.TillSession, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TillSession), args.Error(1)
}

// MockGuestRepo
type MockGuestRepo struct {
	mock.Mock
}

func (m *MockGuestRepo) Create(ctx context.Context, guest *domain.Guest) error {
	args := m.Called(ctx, guest)
	return args.Error(0)
}
func (m *MockGuestRepo) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}
func (m *MockGuestRepo) ListByCampground(ctx context.Context, campgroundID string) ([]domain.Guest, error) {
	args := m.Called(ctx, campgroundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Guest), args.Error(1)
}
func (m *MockGuestRepo) IncrementReservationCount(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockReservationRepo
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}
func (m *MockReservationRepo) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) Update(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID string, limit, offset int) ([]domain.Notification, int, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Int(1), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockAuditLogRepo
type MockAuditLogRepo struct {
	mock.Mock
}

func (m *MockAuditLogRepo) Create(ctx context.Context, entry *domain.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockAuditLogRepo) ListByEntity(ctx context.Context, campgroundID, entityType, entityID string) ([]domain.AuditLog, error) {
	args := m.Called(ctx, campgroundID, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLog), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendWaitlistOffer(ctx context.Context, toEmail, toName, campgroundID string, arrival, departure *time.Time) error {
	args := m.Called(ctx, toEmail, toName, campgroundID, arrival, departure)
	return args.Error(0)
}
func (m *MockEmailService) SendStaleTillReminder(ctx context.Context, toEmail, toName string, session domain.TillSession) error {
	args := m.Called(ctx, toEmail, toName, session)
	return args.Error(0)
}

// MockEventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishWaitlistOffer(ctx context.Context, entry domain.WaitlistEntry, score int) error {
	args := m.Called(ctx, entry, score)
	return args.Error(0)
}

// MockWaitlistService
type MockWaitlistService struct {
	mock.Mock
}

func (m *MockWaitlistService) Create(ctx context.Context, input service.CreateWaitlistEntryInput) (*domain.WaitlistEntry, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WaitlistEntry), args.Error(1)
}
func (m *MockWaitlistService) CreateStaffEntry(ctx context.Context, input service.CreateStaffWaitlistEntryInput) (*domain.WaitlistEntry, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WaitlistEntry), args.Error(1)
}
func (m *MockWaitlistService) FindAll(ctx context.Context, campgroundID, entryType string) ([]domain.WaitlistEntry, error) {
	args := m.Called(ctx, campgroundID, entryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WaitlistEntry), args.Error(1)
}
func (m *MockWaitlistService) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockWaitlistService) MarkConverted(ctx context.Context, id, reservationID string) error {
	args := m.Called(ctx, id, reservationID)
	return args.Error(0)
}
func (m *MockWaitlistService) ExpireOldEntries(ctx context.Context, campgroundID string, thresholdDays int) (int64, error) {
	args := m.Called(ctx, campgroundID, thresholdDays)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockWaitlistService) GetStats(ctx context.Context, campgroundID string) (*domain.WaitlistStats, error) {
	args := m.Called(ctx, campgroundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WaitlistStats), args.Error(1)
}
func (m *MockWaitlistService) CheckWaitlist(ctx context.Context, campgroundID string, freedArrival, freedDeparture time.Time, siteID, siteClassID *string) ([]domain.WaitlistMatch, error) {
	args := m.Called(ctx, campgroundID, freedArrival, freedDeparture, siteID, siteClassID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WaitlistMatch), args.Error(1)
}
func (m *MockWaitlistService) OfferTopMatch(ctx context.Context, matches []domain.WaitlistMatch) (*domain.WaitlistEntry, error) {
	args := m.Called(ctx, matches)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WaitlistEntry), args.Error(1)
}

// MockAuditService
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, campgroundID, actorID, action, entityType, entityID, detail string) {
	m.Called(ctx, campgroundID, actorID, action, entityType, entityID, detail)
}
