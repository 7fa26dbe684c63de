// Package interfaces defines service contracts for Landmark
package interfaces

import (
	"context"

	"github.com/bobmcallan/landmark/internal/models"
)

// StorageManager coordinates all storage backends
type StorageManager interface {
	UserStore() UserStore
	PropertyStore() PropertyStore
	TransactionStore() TransactionStore
	BlobStore() BlobStore

	Close() error
}

// UserStore manages user accounts.
type UserStore interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	SaveUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, userID string) error
	ListUsers(ctx context.Context) ([]string, error)
}

// PropertyStore manages property records scoped per user.
type PropertyStore interface {
	GetProperty(ctx context.Context, userID, id string) (*models.Property, error)
	SaveProperty(ctx context.Context, property *models.Property) error
	DeleteProperty(ctx context.Context, userID, id string) error
	ListProperties(ctx context.Context, userID string) ([]models.Property, error)
}

// TransactionStore manages transaction records scoped per user.
type TransactionStore interface {
	GetTransaction(ctx context.Context, userID, id string) (*models.Transaction, error)
	SaveTransaction(ctx context.Context, tx *models.Transaction) error
	DeleteTransaction(ctx context.Context, userID, id string) error
	ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error)
}

// BlobStore is a minimal key-value blob interface used for snapshot history
// and small markers. Implementations must return an error for missing keys.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
