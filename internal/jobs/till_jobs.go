package jobs

import (
	"context"
	"fmt"
	"time"

	"campreserv-backend/internal/domain"
	"campreserv-backend/internal/logger"
)

// staleTillAge is how long a session may stay open before the opener gets a
// reminder to count and close the drawer.
const staleTillAge = 24 * time.Hour

// SendStaleTillReminders emails the opener of every till session that has
// been open longer than a full day, and drops an in-app notification so
// the reminder survives a missed inbox.
func (jr *JobRunner) SendStaleTillReminders() {
	jr.runWithRecovery("stale-till-reminders", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().Add(-staleTillAge)
		sessions, err := jr.tillRepo.ListOpenSessionsOlderThan(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list stale till sessions", "error", err)
			return
		}

		for _, session := range sessions {
			opener, err := jr.userRepo.GetByID(ctx, session.OpenedByUserID)
			if err != nil {
				logger.Error("Failed to look up till opener", "session_id", session.ID, "user_id", session.OpenedByUserID, "error", err)
				continue
			}
			if err := jr.services.Email.SendStaleTillReminder(ctx, opener.Email, opener.Name, session); err != nil {
				logger.Error("Failed to send stale till reminder", "session_id", session.ID, "error", err)
				continue
			}

			note := &domain.Notification{
				UserID:       opener.ID,
				CampgroundID: session.CampgroundID,
				Title:        "Till session still open",
				Message:      fmt.Sprintf("The till opened at %s has been open for more than a day. Count the drawer and close it.", session.OpenedAt.Format(time.RFC1123)),
				Attributes: map[string]string{
					"session_id": session.ID,
					"opened_at":  session.OpenedAt.Format(time.RFC3339),
				},
			}
			if err := jr.noteRepo.Create(ctx, note); err != nil {
				logger.Error("Failed to create stale till notification", "session_id", session.ID, "error", err)
			}
			logger.Info("Sent stale till reminder", "session_id", session.ID, "opened_at", session.OpenedAt, "to", opener.Email)
		}
	})
}
