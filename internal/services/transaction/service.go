// Package transaction manages income and expense records and their
// aggregation into summaries, category breakdowns, and cash-flow series.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bobmcallan/landmark/internal/common"
	"github.com/bobmcallan/landmark/internal/interfaces"
	"github.com/bobmcallan/landmark/internal/models"
)

// Compile-time interface check
var _ interfaces.TransactionService = (*Service)(nil)

// Service implements TransactionService on top of a TransactionStore.
type Service struct {
	store  interfaces.TransactionStore
	logger *common.Logger
}

// NewService creates a new transaction service.
func NewService(store interfaces.TransactionStore, logger *common.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// CreateTransaction validates and persists a new transaction for the
// authenticated user.
func (s *Service) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	if tx == nil {
		return nil, fmt.Errorf("transaction is required")
	}
	if err := validateTransaction(tx); err != nil {
		return nil, err
	}

	tx.ID = uuid.New().String()
	tx.UserID = common.ResolveUserID(ctx)

	if err := s.store.SaveTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.logger.Info().
		Str("transaction_id", tx.ID).
		Str("type", string(tx.Type)).
		Str("category", tx.Category).
		Msg("Transaction created")

	return tx, nil
}

// GetTransaction returns a single transaction owned by the authenticated user.
func (s *Service) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	return s.store.GetTransaction(ctx, common.ResolveUserID(ctx), id)
}

// UpdateTransaction replaces the mutable fields of an existing transaction.
// Identity and ownership are preserved from the stored record.
func (s *Service) UpdateTransaction(ctx context.Context, id string, update *models.Transaction) (*models.Transaction, error) {
	if update == nil {
		return nil, fmt.Errorf("transaction is required")
	}

	userID := common.ResolveUserID(ctx)
	existing, err := s.store.GetTransaction(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := validateTransaction(update); err != nil {
		return nil, err
	}

	existing.Type = update.Type
	existing.Category = update.Category
	existing.Amount = update.Amount
	existing.Date = update.Date
	existing.PropertyID = update.PropertyID
	existing.Note = update.Note

	if err := s.store.SaveTransaction(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return existing, nil
}

// DeleteTransaction removes a transaction owned by the authenticated user.
func (s *Service) DeleteTransaction(ctx context.Context, id string) error {
	return s.store.DeleteTransaction(ctx, common.ResolveUserID(ctx), id)
}

// ListTransactions returns the user's transactions sorted by date ascending.
func (s *Service) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return s.store.ListTransactions(ctx, common.ResolveUserID(ctx))
}

// Summarize aggregates the user's transactions into totals, applying the
// optional date range to the overall sums. The trailing monthly and yearly
// sub-sums are always computed over the full list relative to now.
func (s *Service) Summarize(ctx context.Context, rng *models.DateRange) (*models.TransactionSummary, error) {
	txs, err := s.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return summarizeAsOf(time.Now(), txs, rng), nil
}

// BreakdownByCategory groups the user's transactions of one type by category,
// sorted descending by amount.
func (s *Service) BreakdownByCategory(ctx context.Context, txType models.TransactionType) ([]models.CategorySummary, error) {
	if !models.ValidTransactionType(txType) {
		return nil, fmt.Errorf("invalid transaction type: %s", txType)
	}
	txs, err := s.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return breakdownByCategory(txs, txType), nil
}

// MonthlyCashFlow returns the trailing cash-flow series, one bucket per
// calendar month including the current one.
func (s *Service) MonthlyCashFlow(ctx context.Context, months int) ([]models.MonthlyPoint, error) {
	if months < 1 {
		return nil, fmt.Errorf("months must be at least 1")
	}
	txs, err := s.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return monthlyCashFlowAsOf(time.Now(), txs, months), nil
}

func validateTransaction(tx *models.Transaction) error {
	if !models.ValidTransactionType(tx.Type) {
		return fmt.Errorf("invalid transaction type: %s", tx.Type)
	}
	if tx.Category == "" {
		return fmt.Errorf("category is required")
	}
	if tx.Amount < 0 {
		return fmt.Errorf("amount must not be negative")
	}
	if tx.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	return nil
}
