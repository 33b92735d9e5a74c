package handlers

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"campreserv-backend/internal/domain"
	"campreserv-backend/internal/service"
)

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.User), args.Error(2)
}

// MockTillService
type MockTillService struct {
	mock.Mock
}

func (m *MockTillService) Open(ctx context.Context, input service.OpenTillInput, actor service.Actor) (*domain.TillSession, error) {
	args := m.Called(ctx, input, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TillSession), args.Error(1)
}
func (m *MockTillService) Get(ctx context.Context, id string, actor service.Actor) (*domain.TillSession, int64, error) {
	args := m.Called(ctx, id, actor)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).(*domain.TillSession), args.Get(1).(int64), args.Error(2)
}
func (m *MockTillService) List(ctx context.Context, status domain.TillSessionStatus, actor service.Actor) ([]domain.TillSession, error) {
	args := m.Called(ctx, status, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TillSession), args.Error(1)
}
func (m *MockTillService) Close(ctx context.Context, id string, input service.CloseTillInput, actor service.Actor) (*domain.TillSession, error) {
	args := m.Called(ctx, id, input, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TillSession), args.Error(1)
}
func (m *MockTillService) PaidIn(ctx context.Context, id string, input service.TillMovementInput, actor service.Actor) (*domain.TillMovement, error) {
	args := m.Called(ctx, id, input, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TillMovement), args.Error(1)
}
func (m *MockTillService) PaidOut(ctx context.Context, id string, input service.TillMovementInput, actor service.Actor) (*domain.TillMovement, error) {
	args := m.Called(ctx, id, input, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TillMovement), args.Error(1)
}
func (m *MockTillService) RecordCashSale(ctx context.Context, sessionID string, amountCents int64, currency string, cartID *string, actor service.Actor) (*domain.TillMovement, error) {
	args := m.Called(ctx, sessionID, amountCents, currency, cartID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TillMovement), args.Error(1)
}
func (m *MockTillService) RecordCashRefund(ctx context.Context, sessionID string, amountCents int64, currency string, cartID *string, actor service.Actor) (*domain.TillMovement, error) {
	args := m.Called(ctx, sessionID, amountCents, currency, cartID, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TillMovement), args.Error(1)
}
func (m *MockTillService) FindOpenSessionForTerminal(ctx context.Context, campgroundID string, terminalID *string) (*domain.TillSession, error) {
	args := m.Called(ctx, campgroundID, terminalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TillSession), args.Error(1)
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

// MockReservationService
type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) Create(ctx context.Context, input service.CreateReservationInput, actor service.Actor) (*domain.Reservation, error) {
	args := m.Called(ctx, input, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) Get(ctx context.Context, id string, actor service.Actor) (*domain.Reservation, error) {
	args := m.Called(ctx, id, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) Cancel(ctx context.Context, id string, actor service.Actor) (*domain.Reservation, error) {
	args := m.Called(ctx, id, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

// MockNotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) GetNotifications(ctx context.Context, userID string, page, pageSize int) ([]domain.Notification, int, error) {
	args := m.Called(ctx, userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Int(1), args.Error(2)
}
func (m *MockNotificationService) MarkAsRead(ctx context.Context, userID, notificationID string) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

// MockGuestService
type MockGuestService struct {
	mock.Mock
}

func (m *MockGuestService) Create(ctx context.Context, guest *domain.Guest) error {
	args := m.Called(ctx, guest)
	return args.Error(0)
}
func (m *MockGuestService) Get(ctx context.Context, id string) (*domain.Guest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}
func (m *MockGuestService) List(ctx context.Context, campgroundID string) ([]domain.Guest, error) {
	args := m.Called(ctx, campgroundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Guest), args.Error(1)
}
