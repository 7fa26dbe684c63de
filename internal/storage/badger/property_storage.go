package badger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bobmcallan/landmark/internal/common"
	"github.com/bobmcallan/landmark/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

type propertyStorage struct {
	store  *Store
	logger *common.Logger
}

// NewPropertyStorage creates a new PropertyStore backed by BadgerHold.
func NewPropertyStorage(store *Store, logger *common.Logger) *propertyStorage {
	return &propertyStorage{store: store, logger: logger}
}

func (s *propertyStorage) GetProperty(_ context.Context, userID, id string) (*models.Property, error) {
	var property models.Property
	err := s.store.db.Get(id, &property)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("property '%s' not found", id)
		}
		return nil, fmt.Errorf("failed to get property '%s': %w", id, err)
	}
	if property.UserID != userID {
		// Ownership check: other users' records are invisible, not forbidden.
		return nil, fmt.Errorf("property '%s' not found", id)
	}
	return &property, nil
}

func (s *propertyStorage) SaveProperty(_ context.Context, property *models.Property) error {
	property.UpdatedAt = time.Now()
	if property.CreatedAt.IsZero() {
		property.CreatedAt = property.UpdatedAt
	}

	if err := s.store.db.Upsert(property.ID, property); err != nil {
		return fmt.Errorf("failed to save property: %w", err)
	}
	s.logger.Debug().Str("id", property.ID).Str("user_id", property.UserID).Msg("Property saved")
	return nil
}

func (s *propertyStorage) DeleteProperty(ctx context.Context, userID, id string) error {
	if _, err := s.GetProperty(ctx, userID, id); err != nil {
		return err
	}
	if err := s.store.db.Delete(id, models.Property{}); err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to delete property '%s': %w", id, err)
	}
	s.logger.Debug().Str("id", id).Msg("Property deleted")
	return nil
}

func (s *propertyStorage) ListProperties(_ context.Context, userID string) ([]models.Property, error) {
	var properties []models.Property
	if err := s.store.db.Find(&properties, badgerhold.Where("UserID").Eq(userID)); err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	sort.Slice(properties, func(i, j int) bool {
		return properties[i].CreatedAt.Before(properties[j].CreatedAt)
	})
	return properties, nil
}
