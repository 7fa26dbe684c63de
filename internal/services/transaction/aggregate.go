package transaction

import (
	"math"
	"sort"
	"time"

	"github.com/bobmcallan/landmark/internal/models"
)

const monthLabel = "Jan 2006"

// summarizeAsOf computes income/expense totals over the range-filtered list.
// The monthly and yearly fields are trailing 30-day and 365-day sums relative
// to now, over the full list regardless of the supplied range.
func summarizeAsOf(now time.Time, txs []models.Transaction, rng *models.DateRange) *models.TransactionSummary {
	summary := &models.TransactionSummary{}
	monthCutoff := now.AddDate(0, 0, -30)
	yearCutoff := now.AddDate(0, 0, -365)

	for _, tx := range txs {
		if rng.Contains(tx.Date) {
			summary.TransactionCount++
			switch tx.Type {
			case models.TransactionIncome:
				summary.TotalIncome += tx.Amount
			case models.TransactionExpense:
				summary.TotalExpenses += tx.Amount
			}
		}

		if tx.Date.After(now) {
			continue
		}
		if !tx.Date.Before(monthCutoff) {
			switch tx.Type {
			case models.TransactionIncome:
				summary.MonthlyIncome += tx.Amount
			case models.TransactionExpense:
				summary.MonthlyExpenses += tx.Amount
			}
		}
		if !tx.Date.Before(yearCutoff) {
			switch tx.Type {
			case models.TransactionIncome:
				summary.YearlyIncome += tx.Amount
			case models.TransactionExpense:
				summary.YearlyExpenses += tx.Amount
			}
		}
	}

	summary.NetCashFlow = summary.TotalIncome - summary.TotalExpenses
	return summary
}

// breakdownByCategory groups transactions of the given type by category label
// and computes each category's share of the type total. Results are sorted
// descending by amount; ties break alphabetically for stable output.
func breakdownByCategory(txs []models.Transaction, txType models.TransactionType) []models.CategorySummary {
	groups := make(map[string]*models.CategorySummary)
	var total float64

	for _, tx := range txs {
		if tx.Type != txType {
			continue
		}
		g, ok := groups[tx.Category]
		if !ok {
			g = &models.CategorySummary{Category: tx.Category}
			groups[tx.Category] = g
		}
		g.Amount += tx.Amount
		g.TransactionCount++
		g.Transactions = append(g.Transactions, tx)
		total += tx.Amount
	}

	result := make([]models.CategorySummary, 0, len(groups))
	for _, g := range groups {
		if total > 0 {
			g.Percentage = roundPct(g.Amount / total * 100)
		}
		result = append(result, *g)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Amount != result[j].Amount {
			return result[i].Amount > result[j].Amount
		}
		return result[i].Category < result[j].Category
	})

	return result
}

// monthlyCashFlowAsOf pre-seeds one bucket per trailing calendar month ending
// at now's month, then folds each transaction into its bucket by month label.
// Transactions outside the window are ignored.
func monthlyCashFlowAsOf(now time.Time, txs []models.Transaction, months int) []models.MonthlyPoint {
	points := make([]models.MonthlyPoint, 0, months)
	index := make(map[string]int, months)

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := months - 1; i >= 0; i-- {
		label := first.AddDate(0, -i, 0).Format(monthLabel)
		index[label] = len(points)
		points = append(points, models.MonthlyPoint{Month: label})
	}

	for _, tx := range txs {
		i, ok := index[tx.Date.Format(monthLabel)]
		if !ok {
			continue
		}
		switch tx.Type {
		case models.TransactionIncome:
			points[i].Income += tx.Amount
		case models.TransactionExpense:
			points[i].Expenses += tx.Amount
		}
	}

	for i := range points {
		points[i].NetCashFlow = points[i].Income - points[i].Expenses
	}

	return points
}

// roundPct rounds a percentage to one decimal place.
func roundPct(v float64) float64 {
	return math.Round(v*10) / 10
}
