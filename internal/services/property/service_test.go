package property

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/landmark/internal/common"
	"github.com/bobmcallan/landmark/internal/models"
)

// memPropertyStore is an in-memory PropertyStore for tests.
type memPropertyStore struct {
	records map[string]models.Property
}

func newMemPropertyStore() *memPropertyStore {
	return &memPropertyStore{records: make(map[string]models.Property)}
}

func (m *memPropertyStore) GetProperty(_ context.Context, userID, id string) (*models.Property, error) {
	rec, ok := m.records[id]
	if !ok || rec.UserID != userID {
		return nil, fmt.Errorf("property %s not found", id)
	}
	return &rec, nil
}

func (m *memPropertyStore) SaveProperty(_ context.Context, property *models.Property) error {
	m.records[property.ID] = *property
	return nil
}

func (m *memPropertyStore) DeleteProperty(_ context.Context, userID, id string) error {
	rec, ok := m.records[id]
	if !ok || rec.UserID != userID {
		return fmt.Errorf("property %s not found", id)
	}
	delete(m.records, id)
	return nil
}

func (m *memPropertyStore) ListProperties(_ context.Context, userID string) ([]models.Property, error) {
	var out []models.Property
	for _, rec := range m.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func ptr(v float64) *float64 { return &v }

func newTestService() *Service {
	return NewService(newMemPropertyStore(), common.NewSilentLogger())
}

func TestCreateProperty(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateProperty(ctx, &models.Property{
		Name:          "Elm Street Duplex",
		PurchasePrice: 250000,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "default", created.UserID)
	assert.Equal(t, models.StatusAvailable, created.Status, "status defaults to available")
}

func TestCreateProperty_Validation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cases := []struct {
		name     string
		property *models.Property
	}{
		{"nil", nil},
		{"missing name", &models.Property{PurchasePrice: 100000}},
		{"bad status", &models.Property{Name: "X", Status: "derelict"}},
		{"negative price", &models.Property{Name: "X", PurchasePrice: -1}},
		{"negative rent", &models.Property{Name: "X", MonthlyRent: ptr(-100)}},
		{"negative value", &models.Property{Name: "X", CurrentValue: ptr(-1)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateProperty(ctx, tc.property)
			assert.Error(t, err)
		})
	}
}

func TestUpdateProperty_PurchasePriceImmutable(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateProperty(ctx, &models.Property{
		Name:          "Elm Street Duplex",
		PurchasePrice: 250000,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProperty(ctx, created.ID, &models.Property{
		Name:          "Elm Street Duplex",
		PurchasePrice: 999999,
		CurrentValue:  ptr(275000),
		Status:        models.StatusOccupied,
	})
	require.NoError(t, err)

	assert.Equal(t, 250000.0, updated.PurchasePrice, "purchase price fixed at creation")
	assert.Equal(t, 275000.0, *updated.CurrentValue)
	assert.Equal(t, models.StatusOccupied, updated.Status)
}

func TestDeleteProperty(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateProperty(ctx, &models.Property{Name: "Cottage", PurchasePrice: 100000})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProperty(ctx, created.ID))

	_, err = svc.GetProperty(ctx, created.ID)
	assert.Error(t, err)
}

func TestProperties_UserScoping(t *testing.T) {
	svc := newTestService()

	aliceCtx := common.WithUserContext(context.Background(), &common.UserContext{UserID: "alice"})
	bobCtx := common.WithUserContext(context.Background(), &common.UserContext{UserID: "bob"})

	created, err := svc.CreateProperty(aliceCtx, &models.Property{Name: "Cottage", PurchasePrice: 100000})
	require.NoError(t, err)

	_, err = svc.GetProperty(bobCtx, created.ID)
	assert.Error(t, err)

	bobProps, err := svc.ListProperties(bobCtx)
	require.NoError(t, err)
	assert.Empty(t, bobProps)
}

func TestPropertyROI(t *testing.T) {
	p := models.Property{
		PurchasePrice:   200000,
		MonthlyRent:     ptr(1500),
		MonthlyExpenses: ptr(500),
	}
	// (1500*12 - 500*12) / 200000 * 100 = 6.0
	assert.Equal(t, 6.0, p.ROI())

	free := models.Property{MonthlyRent: ptr(1500)}
	assert.Equal(t, 0.0, free.ROI(), "zero purchase price yields 0")

	bare := models.Property{PurchasePrice: 200000}
	assert.Equal(t, 0.0, bare.ROI(), "nil rent and expenses treated as 0")
}
