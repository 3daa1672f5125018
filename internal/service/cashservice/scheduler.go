package cashservice

import (
	"context"
	"math"
	"time"

	"github.com/mariamstore/backend/internal/domain"
	"golang.org/x/sync/errgroup"
)

const fallbackDailyDeposit = 500

type Availability struct {
	Date            time.Time
	IsAvailableNow  bool
	PendingRequests int
}

// CalculateAvailability estimates when the requested amount can be paid out.
// The drawer can only disburse as fast as cash arrives, and money already
// promised to requests ahead in the queue counts against the balance. When
// the balance falls short, the shortfall is covered at dailyMinimumDeposit
// per working day, walking the calendar over service days and skipping
// holidays.
func (s *Service) CalculateAvailability(ctx context.Context, amount float64) (*Availability, error) {
	var (
		cfg          *domain.CashExpressConfig
		pendingTotal float64
		pendingCount int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cfg, err = s.configRepo.GetOrCreate(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		pendingTotal, pendingCount, err = s.repo.PendingSummary(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.now()
	if cfg.AvailableBalance >= amount+pendingTotal {
		return &Availability{Date: now, IsAvailableNow: true, PendingRequests: pendingCount}, nil
	}

	dailyDeposit := cfg.DailyMinimumDeposit
	if dailyDeposit <= 0 {
		dailyDeposit = fallbackDailyDeposit
	}
	needed := amount + pendingTotal - cfg.AvailableBalance
	daysNeeded := int(math.Ceil(needed / dailyDeposit))

	serviceDays := make(map[int]bool, len(cfg.ServiceDays))
	for _, d := range cfg.ServiceDays {
		serviceDays[d] = true
	}
	if len(serviceDays) == 0 {
		for d := 1; d <= 5; d++ {
			serviceDays[d] = true
		}
	}
	holidays := make(map[string]bool, len(cfg.Holidays))
	for _, h := range cfg.Holidays {
		holidays[h] = true
	}

	daysToAdd := 0
	for added := 0; added < daysNeeded; {
		daysToAdd++
		day := now.AddDate(0, 0, daysToAdd)
		if serviceDays[int(day.Weekday())] && !holidays[day.Format("2006-01-02")] {
			added++
		}
	}

	return &Availability{
		Date:            now.AddDate(0, 0, daysToAdd),
		IsAvailableNow:  false,
		PendingRequests: pendingCount,
	}, nil
}
