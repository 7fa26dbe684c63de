package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/bobmcallan/landmark/internal/models"
)

// RenderCSV serializes a portfolio report into a sectioned CSV document
// suitable for spreadsheet import.
func (s *Service) RenderCSV(report *models.PortfolioReport) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("report is required")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"Portfolio Report", report.GeneratedAt.Format(time.RFC3339)},
		{},
		{"Metric", "Value", "Change %"},
		{"Portfolio Value", money(report.Metrics.PortfolioValue), pct(report.Metrics.PortfolioValueChange)},
		{"Total Properties", fmt.Sprintf("%d", report.Metrics.TotalProperties), pct(report.Metrics.TotalPropertiesChange)},
		{"Monthly Income", money(report.Metrics.MonthlyIncome), pct(report.Metrics.MonthlyIncomeChange)},
		{"Occupancy Rate", pct(report.Metrics.OccupancyRate), pct(report.Metrics.OccupancyRateChange)},
		{"Portfolio ROI", pct(report.PortfolioROI), ""},
		{},
		{"Summary", ""},
		{"Total Income", money(report.Summary.TotalIncome)},
		{"Total Expenses", money(report.Summary.TotalExpenses)},
		{"Net Cash Flow", money(report.Summary.NetCashFlow)},
		{"Transactions", fmt.Sprintf("%d", report.Summary.TransactionCount)},
	}

	if report.BestPerformer != nil {
		rows = append(rows, []string{"Best Performer", report.BestPerformer.Name, pct(report.BestPerformer.ROI)})
	}
	if report.WorstPerformer != nil {
		rows = append(rows, []string{"Worst Performer", report.WorstPerformer.Name, pct(report.WorstPerformer.ROI)})
	}

	rows = append(rows, []string{}, []string{"Expenses by Category", "Amount", "Share %"})
	for _, c := range report.ExpenseByCategory {
		rows = append(rows, []string{c.Category, money(c.Amount), pct(c.Percentage)})
	}

	rows = append(rows, []string{}, []string{"Income by Category", "Amount", "Share %"})
	for _, c := range report.IncomeByCategory {
		rows = append(rows, []string{c.Category, money(c.Amount), pct(c.Percentage)})
	}

	rows = append(rows, []string{}, []string{"Month", "Income", "Expenses", "Net"})
	for _, p := range report.MonthlyCashFlow {
		rows = append(rows, []string{p.Month, money(p.Income), money(p.Expenses), money(p.NetCashFlow)})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("csv write failed: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv write failed: %w", err)
	}

	return buf.Bytes(), nil
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func pct(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
