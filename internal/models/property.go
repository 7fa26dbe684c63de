// Package models defines data structures for Landmark
package models

import (
	"time"
)

// PropertyStatus indicates the current lifecycle state of a property.
type PropertyStatus string

const (
	StatusAvailable   PropertyStatus = "available"
	StatusOccupied    PropertyStatus = "occupied"
	StatusMaintenance PropertyStatus = "maintenance"
	StatusForSale     PropertyStatus = "for_sale"
	StatusSold        PropertyStatus = "sold"
)

// ValidPropertyStatus reports whether s is a recognised property status.
func ValidPropertyStatus(s PropertyStatus) bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusMaintenance, StatusForSale, StatusSold:
		return true
	}
	return false
}

// Property represents a single owned real-estate asset.
// CurrentValue, MonthlyRent and MonthlyExpenses are nullable: a nil pointer
// means "not set", which the metrics engine coalesces defensively.
type Property struct {
	ID              string         `json:"id"`
	UserID          string         `json:"user_id"`
	Name            string         `json:"name"`
	Address         string         `json:"address,omitempty"`
	City            string         `json:"city,omitempty"`
	State           string         `json:"state,omitempty"`
	PostalCode      string         `json:"postal_code,omitempty"`
	PurchasePrice   float64        `json:"purchase_price"` // immutable after create
	CurrentValue    *float64       `json:"current_value,omitempty"`
	MonthlyRent     *float64       `json:"monthly_rent,omitempty"`
	MonthlyExpenses *float64       `json:"monthly_expenses,omitempty"`
	Status          PropertyStatus `json:"status"`
	PurchaseDate    time.Time      `json:"purchase_date,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// EffectiveValue returns the current market value, falling back to the
// purchase price when no valuation has been recorded.
func (p *Property) EffectiveValue() float64 {
	if p.CurrentValue != nil {
		return *p.CurrentValue
	}
	return p.PurchasePrice
}

// Rent returns the monthly rent, treating nil as 0.
func (p *Property) Rent() float64 {
	if p.MonthlyRent != nil {
		return *p.MonthlyRent
	}
	return 0
}

// Expenses returns the monthly expenses, treating nil as 0.
func (p *Property) Expenses() float64 {
	if p.MonthlyExpenses != nil {
		return *p.MonthlyExpenses
	}
	return 0
}

// ROI returns the annualized net rental return on the purchase price as a
// percentage: ((rent*12 - expenses*12) / purchasePrice) * 100.
// Returns 0 when purchase price is not positive.
func (p *Property) ROI() float64 {
	if p.PurchasePrice <= 0 {
		return 0
	}
	annualNet := p.Rent()*12 - p.Expenses()*12
	return (annualNet / p.PurchasePrice) * 100
}
