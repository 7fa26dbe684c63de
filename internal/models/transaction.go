package models

import (
	"time"
)

// TransactionType partitions transactions into money in and money out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// ValidTransactionType reports whether t is a recognised transaction type.
func ValidTransactionType(t TransactionType) bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction represents a single income or expense entry, optionally linked
// to a property. Amount is always non-negative; Type carries the direction.
type Transaction struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	Type       TransactionType `json:"type"`
	Category   string          `json:"category"`
	Amount     float64         `json:"amount"`
	Date       time.Time       `json:"date"`
	PropertyID string          `json:"property_id,omitempty"`
	Note       string          `json:"note,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// DateRange is an optional inclusive date filter for aggregation.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls within the range. Zero-valued bounds are
// open on that side.
func (r *DateRange) Contains(t time.Time) bool {
	if r == nil {
		return true
	}
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && t.After(r.End) {
		return false
	}
	return true
}

// TransactionSummary aggregates a transaction list into income/expense totals
// plus trailing-window sub-sums relative to the time of computation.
type TransactionSummary struct {
	TotalIncome      float64 `json:"total_income"`
	TotalExpenses    float64 `json:"total_expenses"`
	NetCashFlow      float64 `json:"net_cash_flow"`
	MonthlyIncome    float64 `json:"monthly_income"`  // trailing 30 days
	MonthlyExpenses  float64 `json:"monthly_expenses"`
	YearlyIncome     float64 `json:"yearly_income"` // trailing 365 days
	YearlyExpenses   float64 `json:"yearly_expenses"`
	TransactionCount int     `json:"transaction_count"`
}

// CategorySummary groups transactions of one type by category label.
type CategorySummary struct {
	Category         string        `json:"category"`
	Amount           float64       `json:"amount"`
	Percentage       float64       `json:"percentage"` // share of the type total
	TransactionCount int           `json:"transaction_count"`
	Transactions     []Transaction `json:"transactions"`
}

// MonthlyPoint is one bucket of the trailing monthly cash-flow series.
type MonthlyPoint struct {
	Month       string  `json:"month"` // human-readable label, e.g. "Jan 2026"
	Income      float64 `json:"income"`
	Expenses    float64 `json:"expenses"`
	NetCashFlow float64 `json:"net_cash_flow"`
}
