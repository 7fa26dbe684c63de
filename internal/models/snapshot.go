package models

import (
	"time"
)

// SnapshotRetention caps the number of snapshots kept per user; appending
// beyond the cap evicts the oldest entries.
const SnapshotRetention = 365

// PropertySnapshot is the denormalized per-property state captured inside a
// portfolio snapshot. Snapshots stay meaningful after the source property is
// edited or deleted.
type PropertySnapshot struct {
	PropertyID string         `json:"property_id"`
	Value      float64        `json:"value"`
	Rent       float64        `json:"rent"`
	Status     PropertyStatus `json:"status"`
}

// PortfolioSnapshot is an immutable, timestamped capture of aggregate
// portfolio state, used as a historical baseline for change calculations.
type PortfolioSnapshot struct {
	ID              string             `json:"id"`
	Timestamp       time.Time          `json:"timestamp"`
	PortfolioValue  float64            `json:"portfolio_value"`
	TotalProperties int                `json:"total_properties"`
	MonthlyIncome   float64            `json:"monthly_income"`
	OccupancyRate   float64            `json:"occupancy_rate"`
	Properties      []PropertySnapshot `json:"properties"`
}

// SnapshotHistory is the serialized snapshot list persisted under a fixed
// per-user key, ordered newest-first.
type SnapshotHistory struct {
	Snapshots []PortfolioSnapshot `json:"snapshots"`
}

// PortfolioMetrics is the dashboard payload computed from the current
// property list and the nearest 30-day-old snapshot. All *Change fields and
// OccupancyRate are percentages rounded to one decimal; change fields are 0
// whenever the historical baseline is 0.
type PortfolioMetrics struct {
	PortfolioValue        float64 `json:"portfolio_value"`
	PortfolioValueChange  float64 `json:"portfolio_value_change"`
	TotalProperties       int     `json:"total_properties"`
	TotalPropertiesChange float64 `json:"total_properties_change"`
	MonthlyIncome         float64 `json:"monthly_income"`
	MonthlyIncomeChange   float64 `json:"monthly_income_change"`
	OccupancyRate         float64 `json:"occupancy_rate"`
	OccupancyRateChange   float64 `json:"occupancy_rate_change"`
}
