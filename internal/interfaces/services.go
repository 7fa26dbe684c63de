package interfaces

import (
	"context"
	"time"

	"github.com/bobmcallan/landmark/internal/models"
)

// PropertyService manages property CRUD for the authenticated user.
type PropertyService interface {
	CreateProperty(ctx context.Context, property *models.Property) (*models.Property, error)
	GetProperty(ctx context.Context, id string) (*models.Property, error)
	UpdateProperty(ctx context.Context, id string, update *models.Property) (*models.Property, error)
	DeleteProperty(ctx context.Context, id string) error
	ListProperties(ctx context.Context) ([]models.Property, error)
}

// TransactionService manages transaction CRUD and aggregation.
type TransactionService interface {
	CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, update *models.Transaction) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	ListTransactions(ctx context.Context) ([]models.Transaction, error)

	Summarize(ctx context.Context, rng *models.DateRange) (*models.TransactionSummary, error)
	BreakdownByCategory(ctx context.Context, txType models.TransactionType) ([]models.CategorySummary, error)
	MonthlyCashFlow(ctx context.Context, months int) ([]models.MonthlyPoint, error)
}

// SnapshotService persists and retrieves portfolio snapshots for the
// authenticated user.
type SnapshotService interface {
	TakeSnapshot(ctx context.Context, properties []models.Property) (*models.PortfolioSnapshot, error)
	GetSnapshotNearDate(ctx context.Context, target time.Time) (*models.PortfolioSnapshot, error)
	History(ctx context.Context) ([]models.PortfolioSnapshot, error)
	LastSnapshotAt(ctx context.Context) (time.Time, error)
}

// MetricsService computes dashboard metrics from the current property list
// and the snapshot history.
type MetricsService interface {
	CalculateMetrics(ctx context.Context, properties []models.Property) (*models.PortfolioMetrics, error)
}

// ValuationService produces deterministic valuation estimates.
type ValuationService interface {
	Estimate(ctx context.Context, propertyID string) (*models.Valuation, error)
}

// ReportService assembles property and transaction aggregates into report
// payloads and exports.
type ReportService interface {
	GeneratePortfolioReport(ctx context.Context) (*models.PortfolioReport, error)
	RenderCSV(report *models.PortfolioReport) ([]byte, error)
	RenderHistoryChart(ctx context.Context) ([]byte, error)
}
