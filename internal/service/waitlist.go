package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"campreserv-backend/internal/domain"
	"campreserv-backend/internal/logger"
	"campreserv-backend/internal/metrics"
	"campreserv-backend/internal/repository"
)

const (
	defaultBasePriority = 50
	loyaltyBonusPerStay = 5
	loyaltyBonusCap     = 25
	exactDateBonus      = 30
	dateOverlapBonus    = 10
	sitePreferenceBonus = 15
	waitTimeBonusCap    = 30
	priceFlexBonus      = 10
	autoOfferBonus      = 20
)

type waitlistService struct {
	waitlistRepo repository.WaitlistRepository
	emailSvc     EmailService
	events       EventPublisher
	audit        AuditService
}

func NewWaitlistService(
	waitlistRepo repository.WaitlistRepository,
	emailSvc EmailService,
	events EventPublisher,
	audit AuditService,
) WaitlistService {
	return &waitlistService{
		waitlistRepo: waitlistRepo,
		emailSvc:     emailSvc,
		events:       events,
		audit:        audit,
	}
}

// CalculatePriorityScore scores a waitlist entry against a freed date range.
// The score is additive and uncapped: base priority, loyalty, date match,
// site preference, wait time, price flexibility and auto-offer each
// contribute independently. Reasons lists every contributing component in
// order, base first. Entries whose dates cannot overlap the freed range are
// still scored; filtering is the caller's concern.
func CalculatePriorityScore(entry domain.WaitlistEntry, freedArrival, freedDeparture time.Time) (int, []string) {
	return calculatePriorityScoreAt(entry, freedArrival, freedDeparture, time.Now())
}

func calculatePriorityScoreAt(entry domain.WaitlistEntry, freedArrival, freedDeparture time.Time, now time.Time) (int, []string) {
	base := defaultBasePriority
	if entry.Priority != nil {
		base = *entry.Priority
	}
	score := base
	reasons := []string{fmt.Sprintf("Base priority: %d", base)}

	if entry.Guest != nil && entry.Guest.ReservationCount > 0 {
		bonus := loyaltyBonusPerStay * entry.Guest.ReservationCount
		if bonus > loyaltyBonusCap {
			bonus = loyaltyBonusCap
		}
		score += bonus
		reasons = append(reasons, fmt.Sprintf("Loyalty bonus: +%d (%d stays)", bonus, entry.Guest.ReservationCount))
	}

	if entry.ArrivalDate != nil && entry.DepartureDate != nil {
		switch {
		case entry.ArrivalDate.Equal(freedArrival) && entry.DepartureDate.Equal(freedDeparture):
			score += exactDateBonus
			reasons = append(reasons, fmt.Sprintf("Exact date match: +%d", exactDateBonus))
		case entry.ArrivalDate.Before(freedDeparture) && entry.DepartureDate.After(freedArrival):
			score += dateOverlapBonus
			reasons = append(reasons, fmt.Sprintf("Date overlap: +%d", dateOverlapBonus))
		}
	}

	if entry.SiteID != nil {
		score += sitePreferenceBonus
		reasons = append(reasons, fmt.Sprintf("Specific site preference: +%d", sitePreferenceBonus))
	}

	// Two days of waiting earn one point, so sixty days caps the bonus.
	ageInDays := int(now.Sub(entry.CreatedAt).Hours() / 24)
	waitBonus := ageInDays / 2
	if waitBonus > waitTimeBonusCap {
		waitBonus = waitTimeBonusCap
	}
	if waitBonus > 0 {
		score += waitBonus
		reasons = append(reasons, fmt.Sprintf("Wait time bonus: +%d (%d days)", waitBonus, ageInDays))
	}

	if entry.MaxPriceCents != nil {
		score += priceFlexBonus
		reasons = append(reasons, fmt.Sprintf("Price flexibility: +%d", priceFlexBonus))
	}

	if entry.AutoOffer {
		score += autoOfferBonus
		reasons = append(reasons, fmt.Sprintf("Auto-offer enabled: +%d", autoOfferBonus))
	}

	return score, reasons
}

// CheckWaitlist scores every active entry matching the campground (and
// optional site / site-class narrowing, applied by the repository query)
// against the freed range and returns them ranked by score descending. Ties
// keep fetch order. The entries are not mutated.
func (s *waitlistService) CheckWaitlist(ctx context.Context, campgroundID string, freedArrival, freedDeparture time.Time, siteID, siteClassID *string) ([]domain.WaitlistMatch, error) {
	entries, err := s.waitlistRepo.ListActiveMatching(ctx, campgroundID, siteID, siteClassID)
	if err != nil {
		return nil, fmt.Errorf("failed to list waitlist entries: %w", err)
	}

	matches := make([]domain.WaitlistMatch, 0, len(entries))
	for _, entry := range entries {
		score, reasons := CalculatePriorityScore(entry, freedArrival, freedDeparture)
		matches = append(matches, domain.WaitlistMatch{Entry: entry, Score: score, Reasons: reasons})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches, nil
}

// OfferTopMatch marks the highest-ranked auto-offer entry as offered,
// notifies the guest and publishes an offer event. Returns nil when no entry
// qualifies. Email and event failures are logged, not propagated: the status
// change is the durable outcome.
func (s *waitlistService) OfferTopMatch(ctx context.Context, matches []domain.WaitlistMatch) (*domain.WaitlistEntry, error) {
	for _, match := range matches {
		if !match.Entry.AutoOffer || match.Entry.Status != domain.WaitlistStatusActive {
			continue
		}
		entry := match.Entry
		if err := s.waitlistRepo.UpdateStatus(ctx, entry.ID, domain.WaitlistStatusOffered); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to mark entry offered: %w", err)
		}
		entry.Status = domain.WaitlistStatusOffered

		metrics.RecordOfferLag(time.Since(entry.CreatedAt).Seconds())
		s.audit.Record(ctx, entry.CampgroundID, "system", "waitlist.offer", "waitlist_entry", entry.ID,
			fmt.Sprintf("score %d", match.Score))

		email, name := offerRecipient(entry)
		if email != "" {
			if err := s.emailSvc.SendWaitlistOffer(ctx, email, name, entry.CampgroundID, entry.ArrivalDate, entry.DepartureDate); err != nil {
				logger.Error("Failed to send waitlist offer email", "entry_id", entry.ID, "error", err)
			}
		}
		if err := s.events.PublishWaitlistOffer(ctx, entry, match.Score); err != nil {
			logger.Error("Failed to publish waitlist offer event", "entry_id", entry.ID, "error", err)
		}
		return &entry, nil
	}
	return nil, nil
}

func offerRecipient(entry domain.WaitlistEntry) (email, name string) {
	if entry.Guest != nil && entry.Guest.Email != "" {
		return entry.Guest.Email, entry.Guest.Name
	}
	return entry.ContactEmail, entry.ContactName
}

func (s *waitlistService) Create(ctx context.Context, input CreateWaitlistEntryInput) (*domain.WaitlistEntry, error) {
	entry := &domain.WaitlistEntry{
		CampgroundID:  input.CampgroundID,
		GuestID:       input.GuestID,
		Type:          domain.WaitlistTypeRegular,
		Status:        domain.WaitlistStatusActive,
		Priority:      input.Priority,
		ArrivalDate:   input.ArrivalDate,
		DepartureDate: input.DepartureDate,
		SiteID:        input.SiteID,
		SiteClassID:   input.SiteClassID,
		MaxPriceCents: input.MaxPriceCents,
		AutoOffer:     input.AutoOffer,
		Notes:         input.Notes,
	}
	if err := s.waitlistRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create waitlist entry: %w", err)
	}
	return entry, nil
}

func (s *waitlistService) CreateStaffEntry(ctx context.Context, input CreateStaffWaitlistEntryInput) (*domain.WaitlistEntry, error) {
	entryType := input.Type
	if entryType == "" {
		entryType = domain.WaitlistTypeRegular
	}
	entry := &domain.WaitlistEntry{
		CampgroundID:  input.CampgroundID,
		Type:          entryType,
		Status:        domain.WaitlistStatusActive,
		ContactName:   input.ContactName,
		ContactEmail:  input.ContactEmail,
		ContactPhone:  input.ContactPhone,
		Notes:         input.Notes,
		SiteID:        input.SiteID,
		SiteClassID:   input.SiteClassID,
		ArrivalDate:   input.ArrivalDate,
		DepartureDate: input.DepartureDate,
	}
	if err := s.waitlistRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create staff waitlist entry: %w", err)
	}
	return entry, nil
}

func (s *waitlistService) FindAll(ctx context.Context, campgroundID, entryType string) ([]domain.WaitlistEntry, error) {
	return s.waitlistRepo.ListByCampground(ctx, campgroundID, entryType)
}

func (s *waitlistService) Remove(ctx context.Context, id string) error {
	if err := s.waitlistRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// MarkConverted closes out an entry whose guest ended up with a reservation:
// status becomes converted, the reservation id and conversion time are
// stamped on the row.
func (s *waitlistService) MarkConverted(ctx context.Context, id, reservationID string) error {
	entry, err := s.waitlistRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := s.waitlistRepo.MarkConverted(ctx, id, reservationID, time.Now().UTC()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.audit.Record(ctx, entry.CampgroundID, "system", "waitlist.convert", "waitlist_entry", id,
		fmt.Sprintf("reservation %s", reservationID))
	return nil
}

func (s *waitlistService) ExpireOldEntries(ctx context.Context, campgroundID string, thresholdDays int) (int64, error) {
	if thresholdDays <= 0 {
		thresholdDays = 90
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -thresholdDays)
	count, err := s.waitlistRepo.ExpireOlderThan(ctx, campgroundID, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to expire waitlist entries: %w", err)
	}
	if count > 0 {
		logger.Info("Expired old waitlist entries", "campground_id", campgroundID, "count", count, "threshold_days", thresholdDays)
	}
	return count, nil
}

// GetStats folds fulfilled into converted and cancelled into expired, so the
// dashboard shows three terminal buckets instead of five.
func (s *waitlistService) GetStats(ctx context.Context, campgroundID string) (*domain.WaitlistStats, error) {
	counts := make(map[domain.WaitlistStatus]int)
	for _, status := range []domain.WaitlistStatus{
		domain.WaitlistStatusActive,
		domain.WaitlistStatusOffered,
		domain.WaitlistStatusConverted,
		domain.WaitlistStatusFulfilled,
		domain.WaitlistStatusExpired,
		domain.WaitlistStatusCancelled,
	} {
		count, err := s.waitlistRepo.CountByStatus(ctx, campgroundID, status)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s entries: %w", status, err)
		}
		counts[status] = count
	}

	stats := &domain.WaitlistStats{
		Active:    counts[domain.WaitlistStatusActive],
		Offered:   counts[domain.WaitlistStatusOffered],
		Converted: counts[domain.WaitlistStatusConverted] + counts[domain.WaitlistStatusFulfilled],
		Expired:   counts[domain.WaitlistStatusExpired] + counts[domain.WaitlistStatusCancelled],
	}
	stats.Total = stats.Active + stats.Offered + stats.Converted + stats.Expired
	return stats, nil
}
