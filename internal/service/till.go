package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"campreserv-backend/internal/domain"
	"campreserv-backend/internal/metrics"
	"campreserv-backend/internal/repository"
)

const tillListLimit = 50

type tillService struct {
	tillRepo repository.TillRepository
	audit    AuditService
}

func NewTillService(tillRepo repository.TillRepository, audit AuditService) TillService {
	return &tillService{tillRepo: tillRepo, audit: audit}
}

// ComputeExpected folds the opening float and movements into the expected
// drawer balance. Sales, paid-ins and adjustments add; refunds and paid-outs
// subtract. The fold is commutative, so movement order does not matter.
func ComputeExpected(openingFloatCents int64, movements []domain.TillMovement) int64 {
	expected := openingFloatCents
	for _, m := range movements {
		switch m.Type {
		case domain.TillMovementCashSale, domain.TillMovementPaidIn, domain.TillMovementAdjustment:
			expected += m.AmountCents
		case domain.TillMovementCashRefund, domain.TillMovementPaidOut:
			expected -= m.AmountCents
		}
	}
	return expected
}

func (s *tillService) Open(ctx context.Context, input OpenTillInput, actor Actor) (*domain.TillSession, error) {
	if actor.ID == "" || actor.CampgroundID == "" {
		return nil, ErrMissingActor
	}

	existing, err := s.tillRepo.FindOpenSession(ctx, actor.CampgroundID, input.TerminalID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for open till: %w", err)
	}
	if existing != nil {
		return nil, ErrTillAlreadyOpen
	}

	session := &domain.TillSession{
		CampgroundID:      actor.CampgroundID,
		TerminalID:        input.TerminalID,
		Status:            domain.TillSessionStatusOpen,
		OpeningFloatCents: input.OpeningFloatCents,
		Currency:          input.Currency,
		Notes:             input.Notes,
		OpenedByUserID:    actor.ID,
	}
	if err := s.tillRepo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to open till session: %w", err)
	}

	s.audit.Record(ctx, actor.CampgroundID, actor.ID, "till.open", "till_session", session.ID,
		fmt.Sprintf("opening float %d %s", session.OpeningFloatCents, session.Currency))
	return session, nil
}

func (s *tillService) Get(ctx context.Context, id string, actor Actor) (*domain.TillSession, int64, error) {
	if actor.CampgroundID == "" {
		return nil, 0, ErrMissingActor
	}
	session, err := s.tillRepo.GetSession(ctx, id, actor.CampgroundID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, err
	}
	return session, ComputeExpected(session.OpeningFloatCents, session.Movements), nil
}

func (s *tillService) List(ctx context.Context, status domain.TillSessionStatus, actor Actor) ([]domain.TillSession, error) {
	if actor.CampgroundID == "" {
		return nil, ErrMissingActor
	}
	return s.tillRepo.ListSessions(ctx, actor.CampgroundID, status, tillListLimit)
}

func (s *tillService) Close(ctx context.Context, id string, input CloseTillInput, actor Actor) (*domain.TillSession, error) {
	if actor.ID == "" || actor.CampgroundID == "" {
		return nil, ErrMissingActor
	}
	session, err := s.tillRepo.GetSession(ctx, id, actor.CampgroundID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if session.Status == domain.TillSessionStatusClosed {
		return nil, ErrTillAlreadyClosed
	}

	expected := ComputeExpected(session.OpeningFloatCents, session.Movements)
	overShort := input.CountedCloseCents - expected
	now := time.Now().UTC()

	session.Status = domain.TillSessionStatusClosed
	session.ExpectedCloseCents = &expected
	session.CountedCloseCents = &input.CountedCloseCents
	session.OverShortCents = &overShort
	session.ClosedByUserID = &actor.ID
	session.ClosedAt = &now
	if input.Notes != "" {
		session.Notes = input.Notes
	}

	if err := s.tillRepo.CloseSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to close till session: %w", err)
	}

	metrics.RecordTillOverShort(overShort)
	s.audit.Record(ctx, actor.CampgroundID, actor.ID, "till.close", "till_session", session.ID,
		fmt.Sprintf("expected %d counted %d over/short %d", expected, input.CountedCloseCents, overShort))
	return session, nil
}

func (s *tillService) PaidIn(ctx context.Context, id string, input TillMovementInput, actor Actor) (*domain.TillMovement, error) {
	return s.recordMovement(ctx, id, domain.TillMovementPaidIn, input, actor, "", nil)
}

func (s *tillService) PaidOut(ctx context.Context, id string, input TillMovementInput, actor Actor) (*domain.TillMovement, error) {
	return s.recordMovement(ctx, id, domain.TillMovementPaidOut, input, actor, "", nil)
}

func (s *tillService) RecordCashSale(ctx context.Context, sessionID string, amountCents int64, currency string, cartID *string, actor Actor) (*domain.TillMovement, error) {
	return s.recordMovement(ctx, sessionID, domain.TillMovementCashSale, cartMovementInput(amountCents, cartID), actor, currency, cartID)
}

func (s *tillService) RecordCashRefund(ctx context.Context, sessionID string, amountCents int64, currency string, cartID *string, actor Actor) (*domain.TillMovement, error) {
	return s.recordMovement(ctx, sessionID, domain.TillMovementCashRefund, cartMovementInput(amountCents, cartID), actor, currency, cartID)
}

func cartMovementInput(amountCents int64, cartID *string) TillMovementInput {
	input := TillMovementInput{AmountCents: amountCents}
	if cartID != nil {
		input.Note = "cart:" + *cartID
	}
	return input
}

func (s *tillService) FindOpenSessionForTerminal(ctx context.Context, campgroundID string, terminalID *string) (*domain.TillSession, error) {
	if campgroundID == "" {
		return nil, nil
	}
	return s.tillRepo.FindOpenSession(ctx, campgroundID, terminalID)
}

func (s *tillService) recordMovement(
	ctx context.Context,
	sessionID string,
	movementType domain.TillMovementType,
	input TillMovementInput,
	actor Actor,
	currencyOverride string,
	sourceCartID *string,
) (*domain.TillMovement, error) {
	if actor.ID == "" {
		return nil, ErrMissingActor
	}
	session, err := s.tillRepo.GetSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if session.Status != domain.TillSessionStatusOpen {
		return nil, ErrTillNotOpen
	}

	currency := session.Currency
	if currencyOverride != "" {
		currency = currencyOverride
	}
	if !strings.EqualFold(currency, session.Currency) {
		return nil, ErrCurrencyMismatch
	}

	movement := &domain.TillMovement{
		SessionID:    sessionID,
		Type:         movementType,
		AmountCents:  input.AmountCents,
		Currency:     currency,
		ActorUserID:  actor.ID,
		Note:         input.Note,
		SourceCartID: sourceCartID,
	}
	if err := s.tillRepo.CreateMovement(ctx, movement); err != nil {
		return nil, fmt.Errorf("failed to record till movement: %w", err)
	}
	return movement, nil
}
