package jobs

import (
	"context"

	"campreserv-backend/internal/logger"
)

// ExpireWaitlistEntries moves active entries older than the configured
// threshold to expired, one campground at a time.
func (jr *JobRunner) ExpireWaitlistEntries() {
	jr.runWithRecovery("expire-waitlist-entries", func() {
		ctx := context.Background()
		campgrounds, err := jr.waitlistRepo.ListCampgroundIDsWithActive(ctx)
		if err != nil {
			logger.Error("Failed to list campgrounds with active waitlist entries", "error", err)
			return
		}

		threshold := jr.config.Waitlist.ExpiryThresholdDays
		var total int64
		for _, campgroundID := range campgrounds {
			count, err := jr.services.Waitlist.ExpireOldEntries(ctx, campgroundID, threshold)
			if err != nil {
				logger.Error("Failed to expire waitlist entries", "campground_id", campgroundID, "error", err)
				continue
			}
			total += count
		}
		logger.Info("Waitlist expiry sweep finished", "campgrounds", len(campgrounds), "expired", total, "threshold_days", threshold)
	})
}
