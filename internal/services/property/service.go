// Package property manages the real-estate assets owned by a user.
package property

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bobmcallan/landmark/internal/common"
	"github.com/bobmcallan/landmark/internal/interfaces"
	"github.com/bobmcallan/landmark/internal/models"
)

// Compile-time interface check
var _ interfaces.PropertyService = (*Service)(nil)

// Service implements PropertyService on top of a PropertyStore.
type Service struct {
	store  interfaces.PropertyStore
	logger *common.Logger
}

// NewService creates a new property service.
func NewService(store interfaces.PropertyStore, logger *common.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// CreateProperty validates and persists a new property for the authenticated
// user. Status defaults to available when not supplied.
func (s *Service) CreateProperty(ctx context.Context, property *models.Property) (*models.Property, error) {
	if property == nil {
		return nil, fmt.Errorf("property is required")
	}
	if property.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if property.Status == "" {
		property.Status = models.StatusAvailable
	}
	if err := validateProperty(property); err != nil {
		return nil, err
	}
	if property.PurchasePrice < 0 {
		return nil, fmt.Errorf("purchase price must not be negative")
	}

	property.ID = uuid.New().String()
	property.UserID = common.ResolveUserID(ctx)

	if err := s.store.SaveProperty(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to save property: %w", err)
	}

	s.logger.Info().
		Str("property_id", property.ID).
		Str("name", property.Name).
		Msg("Property created")

	return property, nil
}

// GetProperty returns a single property owned by the authenticated user.
func (s *Service) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	return s.store.GetProperty(ctx, common.ResolveUserID(ctx), id)
}

// UpdateProperty replaces the mutable fields of an existing property.
// Purchase price is fixed at creation and ignored on update.
func (s *Service) UpdateProperty(ctx context.Context, id string, update *models.Property) (*models.Property, error) {
	if update == nil {
		return nil, fmt.Errorf("property is required")
	}

	userID := common.ResolveUserID(ctx)
	existing, err := s.store.GetProperty(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if update.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if err := validateProperty(update); err != nil {
		return nil, err
	}

	existing.Name = update.Name
	existing.Address = update.Address
	existing.City = update.City
	existing.State = update.State
	existing.PostalCode = update.PostalCode
	existing.CurrentValue = update.CurrentValue
	existing.MonthlyRent = update.MonthlyRent
	existing.MonthlyExpenses = update.MonthlyExpenses
	existing.Status = update.Status
	existing.PurchaseDate = update.PurchaseDate

	if err := s.store.SaveProperty(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	return existing, nil
}

// DeleteProperty removes a property owned by the authenticated user. Stored
// snapshots keep their denormalized copy of the property, so history is
// unaffected.
func (s *Service) DeleteProperty(ctx context.Context, id string) error {
	return s.store.DeleteProperty(ctx, common.ResolveUserID(ctx), id)
}

// ListProperties returns the user's properties sorted by creation time.
func (s *Service) ListProperties(ctx context.Context) ([]models.Property, error) {
	return s.store.ListProperties(ctx, common.ResolveUserID(ctx))
}

func validateProperty(p *models.Property) error {
	if !models.ValidPropertyStatus(p.Status) {
		return fmt.Errorf("invalid property status: %s", p.Status)
	}
	if p.CurrentValue != nil && *p.CurrentValue < 0 {
		return fmt.Errorf("current value must not be negative")
	}
	if p.MonthlyRent != nil && *p.MonthlyRent < 0 {
		return fmt.Errorf("monthly rent must not be negative")
	}
	if p.MonthlyExpenses != nil && *p.MonthlyExpenses < 0 {
		return fmt.Errorf("monthly expenses must not be negative")
	}
	return nil
}
