package usecase

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/givewell/donation-service/internal/config/configs"
	"github.com/givewell/donation-service/internal/core/domain"
	"github.com/givewell/donation-service/internal/core/port"
)

const recentDonationsLimit = 5

// StatsUseCase computes the public donation stats overview. It never
// fails: a store error degrades to the zero-valued shape with the error
// text attached, indistinguishable in structure from "no donations yet".
type StatsUseCase struct {
	donations port.DonationRepository
	goal      decimal.Decimal
	logger    *slog.Logger
}

// NewStatsUseCase wires the aggregator. The fundraising goal comes from
// the stats config section.
func NewStatsUseCase(donations port.DonationRepository, cfg configs.Stats, logger *slog.Logger) *StatsUseCase {
	return &StatsUseCase{
		donations: donations,
		goal:      decimal.NewFromFloat(cfg.Goal),
		logger:    logger,
	}
}

// Overview aggregates completed donations. Progress is total/goal*100
// rounded to one decimal place and deliberately not capped at 100.
func (u *StatsUseCase) Overview(ctx context.Context) *port.StatsOverview {
	overview := &port.StatsOverview{
		Goal:            u.goal.InexactFloat64(),
		RecentDonations: []domain.RecentDonation{},
	}

	totals, err := u.donations.AggregateCompleted(ctx)
	if err != nil {
		u.logger.Error("stats aggregation failed", slog.Any("error", err))
		overview.Error = err.Error()
		return overview
	}
	overview.TotalRaised = totals.TotalRaised.InexactFloat64()
	overview.DonorCount = totals.DonorCount
	if u.goal.IsPositive() {
		overview.Progress = totals.TotalRaised.
			Div(u.goal).
			Mul(decimal.NewFromInt(100)).
			Round(1).
			InexactFloat64()
	}

	recent, err := u.donations.RecentNonAnonymous(ctx, recentDonationsLimit)
	if err != nil {
		u.logger.Error("recent donations read failed", slog.Any("error", err))
		// degrade to the zero-valued shape, same as a totals failure
		return &port.StatsOverview{
			Goal:            overview.Goal,
			RecentDonations: []domain.RecentDonation{},
			Error:           err.Error(),
		}
	}
	overview.RecentDonations = recent
	return overview
}
