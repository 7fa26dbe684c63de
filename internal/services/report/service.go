// Package report assembles portfolio, transaction and history data into
// report payloads and their CSV and chart exports.
package report

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/bobmcallan/landmark/internal/common"
	"github.com/bobmcallan/landmark/internal/interfaces"
	"github.com/bobmcallan/landmark/internal/models"
)

const cashFlowMonths = 12

// Compile-time interface check
var _ interfaces.ReportService = (*Service)(nil)

// Service implements ReportService by composing the property, transaction,
// metrics and snapshot services.
type Service struct {
	properties   interfaces.PropertyService
	transactions interfaces.TransactionService
	metrics      interfaces.MetricsService
	snapshots    interfaces.SnapshotService
	logger       *common.Logger
}

// NewService creates a new report service.
func NewService(
	properties interfaces.PropertyService,
	transactions interfaces.TransactionService,
	metrics interfaces.MetricsService,
	snapshots interfaces.SnapshotService,
	logger *common.Logger,
) *Service {
	return &Service{
		properties:   properties,
		transactions: transactions,
		metrics:      metrics,
		snapshots:    snapshots,
		logger:       logger,
	}
}

// GeneratePortfolioReport assembles the full portfolio report for the
// authenticated user.
func (s *Service) GeneratePortfolioReport(ctx context.Context) (*models.PortfolioReport, error) {
	properties, err := s.properties.ListProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	metrics, err := s.metrics.CalculateMetrics(ctx, properties)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate metrics: %w", err)
	}

	summary, err := s.transactions.Summarize(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize transactions: %w", err)
	}

	incomeByCategory, err := s.transactions.BreakdownByCategory(ctx, models.TransactionIncome)
	if err != nil {
		return nil, fmt.Errorf("failed to break down income: %w", err)
	}

	expenseByCategory, err := s.transactions.BreakdownByCategory(ctx, models.TransactionExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to break down expenses: %w", err)
	}

	cashFlow, err := s.transactions.MonthlyCashFlow(ctx, cashFlowMonths)
	if err != nil {
		return nil, fmt.Errorf("failed to compute cash flow: %w", err)
	}

	report := &models.PortfolioReport{
		GeneratedAt:       time.Now().UTC(),
		Metrics:           *metrics,
		Summary:           *summary,
		IncomeByCategory:  incomeByCategory,
		ExpenseByCategory: expenseByCategory,
		MonthlyCashFlow:   cashFlow,
		PortfolioROI:      portfolioROI(properties),
	}
	report.BestPerformer, report.WorstPerformer = rankPerformers(properties)

	return report, nil
}

// portfolioROI computes the annualized net rental return across the whole
// portfolio, weighted by purchase price. 0 when nothing was purchased.
func portfolioROI(properties []models.Property) float64 {
	var annualNet, purchaseTotal float64
	for _, p := range properties {
		annualNet += p.Rent()*12 - p.Expenses()*12
		purchaseTotal += p.PurchasePrice
	}
	if purchaseTotal <= 0 {
		return 0
	}
	return roundPct(annualNet / purchaseTotal * 100)
}

// rankPerformers returns the properties with the highest and lowest ROI.
// Properties without a purchase price cannot be ranked and are skipped.
// Both results are nil when no property qualifies.
func rankPerformers(properties []models.Property) (best, worst *models.PropertyPerformance) {
	for i := range properties {
		p := &properties[i]
		if p.PurchasePrice <= 0 {
			continue
		}
		perf := &models.PropertyPerformance{
			PropertyID: p.ID,
			Name:       p.Name,
			ROI:        roundPct(p.ROI()),
		}
		if best == nil || perf.ROI > best.ROI {
			best = perf
		}
		if worst == nil || perf.ROI < worst.ROI {
			worst = perf
		}
	}
	return best, worst
}

func roundPct(v float64) float64 {
	return math.Round(v*10) / 10
}
