// Package valuation produces deterministic value estimates for properties.
//
// The estimate applies configured market, location and condition multipliers
// to the property's effective value, brackets the result with a 10 percent
// range, and projects twelve months forward at the configured annual growth
// rate compounded monthly. No external data source is consulted; the same
// inputs always produce the same estimate.
package valuation

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/bobmcallan/landmark/internal/common"
	"github.com/bobmcallan/landmark/internal/interfaces"
	"github.com/bobmcallan/landmark/internal/models"
)

const (
	rangeSpread      = 0.10
	projectionMonths = 12
)

// Compile-time interface check
var _ interfaces.ValuationService = (*Service)(nil)

// Service implements ValuationService.
type Service struct {
	properties interfaces.PropertyService
	factors    common.ValuationConfig
	logger     *common.Logger
}

// NewService creates a new valuation service.
func NewService(properties interfaces.PropertyService, factors common.ValuationConfig, logger *common.Logger) *Service {
	return &Service{properties: properties, factors: factors, logger: logger}
}

// Estimate returns a valuation for one of the authenticated user's
// properties.
func (s *Service) Estimate(ctx context.Context, propertyID string) (*models.Valuation, error) {
	property, err := s.properties.GetProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	base := property.EffectiveValue()
	if base <= 0 {
		return nil, fmt.Errorf("property %s has no value to estimate from", propertyID)
	}

	estimated := round2(base * s.factors.MarketAdjustment * s.factors.LocationFactor * s.factors.ConditionFactor)

	monthlyRate := s.factors.AnnualGrowthPct / 100 / 12
	projections := make([]models.ValuationProjection, 0, projectionMonths)
	for month := 1; month <= projectionMonths; month++ {
		projections = append(projections, models.ValuationProjection{
			Month:          month,
			PredictedValue: round2(estimated * math.Pow(1+monthlyRate, float64(month))),
		})
	}

	return &models.Valuation{
		PropertyID:   propertyID,
		CurrentValue: estimated,
		ValueRange: models.ValueRange{
			Low:  round2(estimated * (1 - rangeSpread)),
			High: round2(estimated * (1 + rangeSpread)),
		},
		Factors: models.ValuationFactors{
			MarketAdjustment: s.factors.MarketAdjustment,
			LocationFactor:   s.factors.LocationFactor,
			ConditionFactor:  s.factors.ConditionFactor,
		},
		Projections:   projections,
		AnnualGrowth:  s.factors.AnnualGrowthPct,
		ValuationDate: time.Now().UTC(),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
