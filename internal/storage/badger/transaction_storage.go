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

type transactionStorage struct {
	store  *Store
	logger *common.Logger
}

// NewTransactionStorage creates a new TransactionStore backed by BadgerHold.
func NewTransactionStorage(store *Store, logger *common.Logger) *transactionStorage {
	return &transactionStorage{store: store, logger: logger}
}

func (s *transactionStorage) GetTransaction(_ context.Context, userID, id string) (*models.Transaction, error) {
	var tx models.Transaction
	err := s.store.db.Get(id, &tx)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("transaction '%s' not found", id)
		}
		return nil, fmt.Errorf("failed to get transaction '%s': %w", id, err)
	}
	if tx.UserID != userID {
		return nil, fmt.Errorf("transaction '%s' not found", id)
	}
	return &tx, nil
}

func (s *transactionStorage) SaveTransaction(_ context.Context, tx *models.Transaction) error {
	tx.UpdatedAt = time.Now()
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = tx.UpdatedAt
	}

	if err := s.store.db.Upsert(tx.ID, tx); err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	s.logger.Debug().Str("id", tx.ID).Str("user_id", tx.UserID).Msg("Transaction saved")
	return nil
}

func (s *transactionStorage) DeleteTransaction(ctx context.Context, userID, id string) error {
	if _, err := s.GetTransaction(ctx, userID, id); err != nil {
		return err
	}
	if err := s.store.db.Delete(id, models.Transaction{}); err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to delete transaction '%s': %w", id, err)
	}
	s.logger.Debug().Str("id", id).Msg("Transaction deleted")
	return nil
}

func (s *transactionStorage) ListTransactions(_ context.Context, userID string) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := s.store.db.Find(&txs, badgerhold.Where("UserID").Eq(userID)); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	sort.Slice(txs, func(i, j int) bool {
		return txs[i].Date.Before(txs[j].Date)
	})
	return txs, nil
}
