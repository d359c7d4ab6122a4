package cron

import (
	"time"

	bookingRepo "teerenta/database/repository/booking"
	"teerenta/models"

	cronlib "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper finalizes past-due Pending bookings. It runs on a fixed schedule
// and is idempotent: already-Completed records no longer match the filter.
type Sweeper struct {
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

// Run performs one sweep across every booking kind. A failure aborts the
// remaining kinds for this run; the next scheduled run retries naturally.
func (s *Sweeper) Run() error {
	now := time.Now()
	for _, kind := range models.AllKinds {
		n, err := s.Bookings.CompletePastDue(kind, now)
		if err != nil {
			s.Logger.Error("deadline sweep aborted",
				zap.String("kind", string(kind)), zap.Error(err))
			return err
		}
		if n > 0 {
			s.Logger.Info("past-due bookings completed",
				zap.String("kind", string(kind)), zap.Int64("count", n))
		}
	}
	return nil
}

// StartSweeper schedules the sweeper with the given cron expression and
// returns the running scheduler so the caller can stop it on shutdown.
func StartSweeper(s *Sweeper, schedule string) (*cronlib.Cron, error) {
	c := cronlib.New()
	if _, err := c.AddFunc(schedule, func() {
		if err := s.Run(); err != nil {
			s.Logger.Error("deadline sweep run failed", zap.Error(err))
		}
	}); err != nil {
		return nil, err
	}
	c.Start()
	s.Logger.Info("deadline sweeper scheduled", zap.String("schedule", schedule))
	return c, nil
}
