package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RenderHistoryChart renders the user's snapshot history as a PNG line chart.
// Two series: portfolio value (blue solid) and monthly income scaled to an
// annual figure (gray dashed) so both fit one axis.
func (s *Service) RenderHistoryChart(ctx context.Context) ([]byte, error) {
	snapshots, err := s.snapshots.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot history: %w", err)
	}
	if len(snapshots) < 2 {
		return nil, fmt.Errorf("need at least 2 snapshots, got %d", len(snapshots))
	}

	// History is stored newest first; the chart wants chronological order.
	xValues := make([]time.Time, len(snapshots))
	valueY := make([]float64, len(snapshots))
	incomeY := make([]float64, len(snapshots))
	for i, snap := range snapshots {
		j := len(snapshots) - 1 - i
		xValues[j] = snap.Timestamp
		valueY[j] = snap.PortfolioValue
		incomeY[j] = snap.MonthlyIncome * 12
	}

	valueSeries := chart.TimeSeries{
		Name: "Portfolio Value",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"),
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: valueY,
	}

	incomeSeries := chart.TimeSeries{
		Name: "Annual Income",
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("9ca3af"),
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 3.0},
		},
		XValues: xValues,
		YValues: incomeY,
	}

	graph := chart.Chart{
		Title:  "Portfolio History",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 06")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0fk", f/1000)
				}
				return ""
			},
		},
		Series: []chart.Series{
			valueSeries,
			incomeSeries,
		},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
