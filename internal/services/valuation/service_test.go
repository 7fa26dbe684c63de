package valuation

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/landmark/internal/common"
	"github.com/bobmcallan/landmark/internal/models"
)

// fakeProperties serves a single fixed property.
type fakeProperties struct {
	property *models.Property
}

func (f *fakeProperties) CreateProperty(context.Context, *models.Property) (*models.Property, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeProperties) GetProperty(_ context.Context, id string) (*models.Property, error) {
	if f.property == nil || f.property.ID != id {
		return nil, fmt.Errorf("property %s not found", id)
	}
	return f.property, nil
}

func (f *fakeProperties) UpdateProperty(context.Context, string, *models.Property) (*models.Property, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeProperties) DeleteProperty(context.Context, string) error {
	return fmt.Errorf("not implemented")
}

func (f *fakeProperties) ListProperties(context.Context) ([]models.Property, error) {
	return nil, nil
}

func ptr(v float64) *float64 { return &v }

func defaultFactors() common.ValuationConfig {
	return common.ValuationConfig{
		MarketAdjustment: 1.05,
		LocationFactor:   1.1,
		ConditionFactor:  1.0,
		AnnualGrowthPct:  4.0,
	}
}

func TestEstimate(t *testing.T) {
	props := &fakeProperties{property: &models.Property{
		ID:            "p1",
		PurchasePrice: 200000,
		CurrentValue:  ptr(220000),
	}}
	svc := NewService(props, defaultFactors(), common.NewSilentLogger())

	v, err := svc.Estimate(context.Background(), "p1")
	require.NoError(t, err)

	// 220000 * 1.05 * 1.1 * 1.0 = 254100
	assert.Equal(t, 254100.0, v.CurrentValue)
	assert.Equal(t, 228690.0, v.ValueRange.Low)
	assert.Equal(t, 279510.0, v.ValueRange.High)
	assert.Equal(t, 4.0, v.AnnualGrowth)
	require.Len(t, v.Projections, 12)
	assert.Equal(t, 1, v.Projections[0].Month)
	assert.Equal(t, 12, v.Projections[11].Month)
	// Compound monthly growth is strictly increasing for positive rates.
	for i := 1; i < len(v.Projections); i++ {
		assert.Greater(t, v.Projections[i].PredictedValue, v.Projections[i-1].PredictedValue)
	}
	assert.Greater(t, v.Projections[0].PredictedValue, v.CurrentValue)
}

func TestEstimate_Deterministic(t *testing.T) {
	props := &fakeProperties{property: &models.Property{ID: "p1", PurchasePrice: 300000}}
	svc := NewService(props, defaultFactors(), common.NewSilentLogger())

	first, err := svc.Estimate(context.Background(), "p1")
	require.NoError(t, err)
	second, err := svc.Estimate(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, first.CurrentValue, second.CurrentValue)
	assert.Equal(t, first.Projections, second.Projections)
}

func TestEstimate_FallsBackToPurchasePrice(t *testing.T) {
	props := &fakeProperties{property: &models.Property{ID: "p1", PurchasePrice: 100000}}
	svc := NewService(props, common.ValuationConfig{MarketAdjustment: 1, LocationFactor: 1, ConditionFactor: 1}, common.NewSilentLogger())

	v, err := svc.Estimate(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 100000.0, v.CurrentValue)
}

func TestEstimate_NotFound(t *testing.T) {
	svc := NewService(&fakeProperties{}, defaultFactors(), common.NewSilentLogger())

	_, err := svc.Estimate(context.Background(), "missing")
	assert.Error(t, err)
}

func TestEstimate_NoValue(t *testing.T) {
	props := &fakeProperties{property: &models.Property{ID: "p1"}}
	svc := NewService(props, defaultFactors(), common.NewSilentLogger())

	_, err := svc.Estimate(context.Background(), "p1")
	assert.Error(t, err)
}
