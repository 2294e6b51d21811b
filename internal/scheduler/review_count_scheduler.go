package scheduler

import (
	"github.com/robfig/cron/v3"

	"github.com/blueberries/blueberries-backend/internal/app/service"
	"github.com/blueberries/blueberries-backend/pkg/logger"
)

// ReviewCountScheduler periodically reconciles the denormalized
// review_count column with the approved reviews actually present.
// Every write path maintains the counter itself, the job is a safety
// net for counters that drifted through manual database edits.
type ReviewCountScheduler struct {
	cron          *cron.Cron
	reviewService service.ReviewService
}

func NewReviewCountScheduler(reviewService service.ReviewService) *ReviewCountScheduler {
	return &ReviewCountScheduler{
		cron:          cron.New(),
		reviewService: reviewService,
	}
}

func (s *ReviewCountScheduler) Start() error {
	// Hourly, on the hour.
	_, err := s.cron.AddFunc("0 * * * *", func() {
		logger.Info("Starting scheduled review count reconciliation", nil)

		if err := s.reviewService.ReconcileReviewCounts(); err != nil {
			logger.Error("Failed to reconcile review counts", err)
			return
		}

		logger.Info("Review counts reconciled", nil)
	})
	if err != nil {
		logger.Error("Failed to add cron job for review count reconciliation", err)
		return err
	}

	s.cron.Start()
	logger.Info("Review count scheduler started (hourly)", nil)

	return nil
}

func (s *ReviewCountScheduler) Stop() {
	logger.Info("Stopping review count scheduler...", nil)
	s.cron.Stop()
	logger.Info("Review count scheduler stopped", nil)
}
