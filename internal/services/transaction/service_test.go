package transaction

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/landmark/internal/common"
	"github.com/bobmcallan/landmark/internal/models"
)

// memTransactionStore is an in-memory TransactionStore for tests.
type memTransactionStore struct {
	records map[string]models.Transaction
}

func newMemTransactionStore() *memTransactionStore {
	return &memTransactionStore{records: make(map[string]models.Transaction)}
}

func (m *memTransactionStore) GetTransaction(_ context.Context, userID, id string) (*models.Transaction, error) {
	rec, ok := m.records[id]
	if !ok || rec.UserID != userID {
		return nil, fmt.Errorf("transaction %s not found", id)
	}
	return &rec, nil
}

func (m *memTransactionStore) SaveTransaction(_ context.Context, tx *models.Transaction) error {
	m.records[tx.ID] = *tx
	return nil
}

func (m *memTransactionStore) DeleteTransaction(_ context.Context, userID, id string) error {
	rec, ok := m.records[id]
	if !ok || rec.UserID != userID {
		return fmt.Errorf("transaction %s not found", id)
	}
	delete(m.records, id)
	return nil
}

func (m *memTransactionStore) ListTransactions(_ context.Context, userID string) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, rec := range m.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func newTestService() *Service {
	return NewService(newMemTransactionStore(), common.NewSilentLogger())
}

func TestCreateTransaction(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateTransaction(ctx, &models.Transaction{
		Type:     models.TransactionIncome,
		Category: "Rent",
		Amount:   1500,
		Date:     time.Now(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "default", created.UserID)

	got, err := svc.GetTransaction(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestCreateTransaction_Validation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	now := time.Now()

	cases := []struct {
		name string
		tx   *models.Transaction
	}{
		{"nil", nil},
		{"bad type", &models.Transaction{Type: "transfer", Category: "Rent", Amount: 1, Date: now}},
		{"missing category", &models.Transaction{Type: models.TransactionIncome, Amount: 1, Date: now}},
		{"negative amount", &models.Transaction{Type: models.TransactionIncome, Category: "Rent", Amount: -1, Date: now}},
		{"missing date", &models.Transaction{Type: models.TransactionIncome, Category: "Rent", Amount: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateTransaction(ctx, tc.tx)
			assert.Error(t, err)
		})
	}
}

func TestUpdateTransaction(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateTransaction(ctx, &models.Transaction{
		Type:     models.TransactionExpense,
		Category: "Maintenance",
		Amount:   200,
		Date:     time.Now(),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateTransaction(ctx, created.ID, &models.Transaction{
		Type:     models.TransactionExpense,
		Category: "Insurance",
		Amount:   350,
		Date:     created.Date,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID, "identity preserved")
	assert.Equal(t, "Insurance", updated.Category)
	assert.Equal(t, 350.0, updated.Amount)
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.UpdateTransaction(context.Background(), "missing", &models.Transaction{
		Type:     models.TransactionExpense,
		Category: "Fees",
		Amount:   1,
		Date:     time.Now(),
	})
	assert.Error(t, err)
}

func TestDeleteTransaction(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateTransaction(ctx, &models.Transaction{
		Type:     models.TransactionIncome,
		Category: "Rent",
		Amount:   1000,
		Date:     time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTransaction(ctx, created.ID))

	_, err = svc.GetTransaction(ctx, created.ID)
	assert.Error(t, err)
}

func TestTransactions_UserScoping(t *testing.T) {
	svc := newTestService()

	aliceCtx := common.WithUserContext(context.Background(), &common.UserContext{UserID: "alice"})
	bobCtx := common.WithUserContext(context.Background(), &common.UserContext{UserID: "bob"})

	created, err := svc.CreateTransaction(aliceCtx, &models.Transaction{
		Type:     models.TransactionIncome,
		Category: "Rent",
		Amount:   1000,
		Date:     time.Now(),
	})
	require.NoError(t, err)

	_, err = svc.GetTransaction(bobCtx, created.ID)
	assert.Error(t, err, "other users cannot see the record")

	bobTxs, err := svc.ListTransactions(bobCtx)
	require.NoError(t, err)
	assert.Empty(t, bobTxs)
}

func TestBreakdownByCategory_InvalidType(t *testing.T) {
	svc := newTestService()

	_, err := svc.BreakdownByCategory(context.Background(), "transfer")
	assert.Error(t, err)
}

func TestMonthlyCashFlow_InvalidMonths(t *testing.T) {
	svc := newTestService()

	_, err := svc.MonthlyCashFlow(context.Background(), 0)
	assert.Error(t, err)
}
