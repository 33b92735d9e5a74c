package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"campreserv-backend/internal/domain"
	"campreserv-backend/internal/logger"
	"campreserv-backend/internal/repository"
)

type reservationService struct {
	reservationRepo repository.ReservationRepository
	guestRepo       repository.GuestRepository
	waitlistSvc     WaitlistService
	audit           AuditService
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	guestRepo repository.GuestRepository,
	waitlistSvc WaitlistService,
	audit AuditService,
) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		guestRepo:       guestRepo,
		waitlistSvc:     waitlistSvc,
		audit:           audit,
	}
}

func (s *reservationService) Create(ctx context.Context, input CreateReservationInput, actor Actor) (*domain.Reservation, error) {
	if actor.ID == "" || actor.CampgroundID == "" {
		return nil, ErrMissingActor
	}
	if !input.DepartureDate.After(input.ArrivalDate) {
		return nil, errors.New("departure date must be after arrival date")
	}
	if _, err := s.guestRepo.GetByID(ctx, input.GuestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	res := &domain.Reservation{
		CampgroundID:  actor.CampgroundID,
		GuestID:       input.GuestID,
		SiteID:        input.SiteID,
		SiteClassID:   input.SiteClassID,
		ArrivalDate:   input.ArrivalDate,
		DepartureDate: input.DepartureDate,
		TotalCents:    input.TotalCents,
		Currency:      input.Currency,
		Status:        domain.ReservationStatusConfirmed,
	}
	if err := s.reservationRepo.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	if err := s.guestRepo.IncrementReservationCount(ctx, input.GuestID); err != nil {
		logger.Error("Failed to bump guest reservation count", "guest_id", input.GuestID, "error", err)
	}
	s.audit.Record(ctx, actor.CampgroundID, actor.ID, "reservation.create", "reservation", res.ID, "")

	if input.WaitlistEntryID != nil && *input.WaitlistEntryID != "" {
		if err := s.waitlistSvc.MarkConverted(ctx, *input.WaitlistEntryID, res.ID); err != nil {
			logger.Error("Failed to convert waitlist entry", "entry_id", *input.WaitlistEntryID, "reservation_id", res.ID, "error", err)
		}
	}
	return res, nil
}

func (s *reservationService) Get(ctx context.Context, id string, actor Actor) (*domain.Reservation, error) {
	if actor.CampgroundID == "" {
		return nil, ErrMissingActor
	}
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if res.CampgroundID != actor.CampgroundID {
		return nil, ErrNotFound
	}
	return res, nil
}

// Cancel marks the reservation cancelled, then runs the waitlist matcher
// against the freed site and date range and offers the top auto-offer entry.
// Matching failures are logged, not returned: the cancellation itself is the
// operation the caller asked for.
func (s *reservationService) Cancel(ctx context.Context, id string, actor Actor) (*domain.Reservation, error) {
	res, err := s.Get(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	if res.Status == domain.ReservationStatusCancelled {
		return nil, errors.New("reservation already cancelled")
	}

	now := time.Now().UTC()
	res.Status = domain.ReservationStatusCancelled
	res.CancelledAt = &now
	if err := s.reservationRepo.Update(ctx, res); err != nil {
		return nil, fmt.Errorf("failed to cancel reservation: %w", err)
	}
	s.audit.Record(ctx, actor.CampgroundID, actor.ID, "reservation.cancel", "reservation", res.ID, "")

	matches, err := s.waitlistSvc.CheckWaitlist(ctx, res.CampgroundID, res.ArrivalDate, res.DepartureDate, &res.SiteID, res.SiteClassID)
	if err != nil {
		logger.Error("Waitlist check failed after cancellation", "reservation_id", res.ID, "error", err)
		return res, nil
	}
	if _, err := s.waitlistSvc.OfferTopMatch(ctx, matches); err != nil {
		logger.Error("Waitlist offer failed after cancellation", "reservation_id", res.ID, "error", err)
	}
	return res, nil
}
