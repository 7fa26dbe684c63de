package models

import "time"

// PropertyPerformance names a property together with its ROI, used for the
// best/worst performer callouts in the portfolio report.
type PropertyPerformance struct {
	PropertyID string  `json:"property_id"`
	Name       string  `json:"name"`
	ROI        float64 `json:"roi"`
}

// PortfolioReport combines property and transaction aggregates into a single
// payload for the dashboard report and its CSV export.
type PortfolioReport struct {
	GeneratedAt       time.Time            `json:"generated_at"`
	Metrics           PortfolioMetrics     `json:"metrics"`
	Summary           TransactionSummary   `json:"summary"`
	IncomeByCategory  []CategorySummary    `json:"income_by_category"`
	ExpenseByCategory []CategorySummary    `json:"expense_by_category"`
	MonthlyCashFlow   []MonthlyPoint       `json:"monthly_cash_flow"`
	PortfolioROI      float64              `json:"portfolio_roi"`
	BestPerformer     *PropertyPerformance `json:"best_performer,omitempty"`
	WorstPerformer    *PropertyPerformance `json:"worst_performer,omitempty"`
}

// ValueRange brackets a valuation estimate.
type ValueRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// ValuationFactors are the multipliers applied to a property's base value.
type ValuationFactors struct {
	MarketAdjustment float64 `json:"market_adjustment"`
	LocationFactor   float64 `json:"location_factor"`
	ConditionFactor  float64 `json:"condition_factor"`
}

// ValuationProjection is one month of the forward value projection.
type ValuationProjection struct {
	Month          int     `json:"month"`
	PredictedValue float64 `json:"predicted_value"`
}

// Valuation is a deterministic valuation estimate for one property.
type Valuation struct {
	PropertyID    string                `json:"property_id"`
	CurrentValue  float64               `json:"current_value"`
	ValueRange    ValueRange            `json:"value_range"`
	Factors       ValuationFactors      `json:"factors"`
	Projections   []ValuationProjection `json:"projections"`
	AnnualGrowth  float64               `json:"annual_growth_pct"`
	ValuationDate time.Time             `json:"valuation_date"`
}
