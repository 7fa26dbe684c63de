// Package metrics computes aggregate portfolio metrics and month-over-month
// deltas against the stored snapshot history.
package metrics

import (
	"context"
	"math"
	"time"

	"github.com/bobmcallan/landmark/internal/common"
	"github.com/bobmcallan/landmark/internal/interfaces"
	"github.com/bobmcallan/landmark/internal/models"
)

// Compile-time interface check
var _ interfaces.MetricsService = (*Service)(nil)

// Service implements MetricsService. It has no state of its own beyond the
// injected snapshot service; calling it twice with the same inputs yields
// identical output and never mutates the history.
type Service struct {
	snapshots interfaces.SnapshotService
	logger    *common.Logger
}

// NewService creates a new metrics service.
func NewService(snapshots interfaces.SnapshotService, logger *common.Logger) *Service {
	return &Service{snapshots: snapshots, logger: logger}
}

// CalculateMetrics computes the dashboard metrics for the current property
// list. The historical baseline is the stored snapshot nearest to 30 days
// ago by absolute distance. Without any snapshot, the portfolio value change
// falls back to appreciation over the purchase total and the remaining
// deltas are 0. An empty property list yields all-zero metrics.
func (s *Service) CalculateMetrics(ctx context.Context, properties []models.Property) (*models.PortfolioMetrics, error) {
	var (
		portfolioValue float64
		purchaseTotal  float64
		monthlyIncome  float64
		occupied       int
	)

	for _, p := range properties {
		portfolioValue += p.EffectiveValue()
		purchaseTotal += p.PurchasePrice
		monthlyIncome += p.Rent()
		if p.Status == models.StatusOccupied {
			occupied++
		}
	}

	occupancyRate := 0.0
	if len(properties) > 0 {
		occupancyRate = float64(occupied) / float64(len(properties)) * 100
	}

	m := &models.PortfolioMetrics{
		PortfolioValue:  portfolioValue,
		TotalProperties: len(properties),
		MonthlyIncome:   monthlyIncome,
		OccupancyRate:   round1(occupancyRate),
	}

	baseline, err := s.snapshots.GetSnapshotNearDate(ctx, time.Now().AddDate(0, 0, -30))
	if err != nil {
		s.logger.Warn().Err(err).Msg("Snapshot lookup failed, computing metrics without baseline")
		baseline = nil
	}

	if baseline != nil {
		m.PortfolioValueChange = round1(pctChange(portfolioValue, baseline.PortfolioValue))
		m.TotalPropertiesChange = round1(pctChange(float64(len(properties)), float64(baseline.TotalProperties)))
		m.MonthlyIncomeChange = round1(pctChange(monthlyIncome, baseline.MonthlyIncome))
		m.OccupancyRateChange = round1(pctChange(occupancyRate, baseline.OccupancyRate))
	} else {
		// No history yet: report appreciation over cost instead of a
		// time-series change.
		m.PortfolioValueChange = round1(pctChange(portfolioValue, purchaseTotal))
	}

	return m, nil
}

// pctChange returns (current - baseline) / baseline * 100, guarded to 0 when
// the baseline is 0 so the result is always finite.
func pctChange(current, baseline float64) float64 {
	if baseline == 0 {
		return 0
	}
	return (current - baseline) / baseline * 100
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
