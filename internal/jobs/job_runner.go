package jobs

import (
	"ansimaq-erp-backend/internal/config"
	"ansimaq-erp-backend/internal/logger"
	"ansimaq-erp-backend/internal/repository"
	"ansimaq-erp-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	store    repository.Store
	services *Services
	config   *config.Config
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Email   service.EmailService
	Billing service.BillingService
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store repository.Store, services *Services, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:    store,
		services: services,
		config:   cfg,
	}
}

// Config exposes the configuration for the scheduler
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

// RunAllJobs runs every job once (for manual execution)
func (jr *JobRunner) RunAllJobs() {
	jr.GenerateMonthlyInvoices()
	jr.SendOverdueReminders()
	jr.SendExpiryNotices()
}
