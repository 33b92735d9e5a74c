package jobs

import (
	"campreserv-backend/internal/config"
	"campreserv-backend/internal/logger"
	"campreserv-backend/internal/repository"
	"campreserv-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	waitlistRepo repository.WaitlistRepository
	tillRepo     repository.TillRepository
	userRepo     repository.UserRepository
	noteRepo     repository.NotificationRepository
	services     *Services
	config       *config.Config
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Email    service.EmailService
	Waitlist service.WaitlistService
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(
	waitlistRepo repository.WaitlistRepository,
	tillRepo repository.TillRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	services *Services,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		waitlistRepo: waitlistRepo,
		tillRepo:     tillRepo,
		userRepo:     userRepo,
		noteRepo:     noteRepo,
		services:     services,
		config:       cfg,
	}
}

// Config returns the runner's configuration (used by the scheduler)
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.ExpireWaitlistEntries()
	jr.SendStaleTillReminders()
}
