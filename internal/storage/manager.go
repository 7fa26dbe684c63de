// Package storage provides the top-level StorageManager over the embedded
// BadgerHold store.
package storage

import (
	"fmt"

	"github.com/bobmcallan/landmark/internal/common"
	"github.com/bobmcallan/landmark/internal/interfaces"
	"github.com/bobmcallan/landmark/internal/storage/badger"
)

// Compile-time interface check
var _ interfaces.StorageManager = (*Manager)(nil)

// Manager implements interfaces.StorageManager over a single BadgerHold store.
type Manager struct {
	store        *badger.Store
	users        interfaces.UserStore
	properties   interfaces.PropertyStore
	transactions interfaces.TransactionStore
	blobs        interfaces.BlobStore
	logger       *common.Logger
}

// NewManager opens the BadgerHold store and wires the per-domain stores.
func NewManager(logger *common.Logger, config *common.Config) (*Manager, error) {
	store, err := badger.NewStore(logger, config.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	logger.Info().Str("path", config.Storage.Path).Msg("Storage manager initialized")

	return &Manager{
		store:        store,
		users:        badger.NewUserStorage(store, logger),
		properties:   badger.NewPropertyStorage(store, logger),
		transactions: badger.NewTransactionStorage(store, logger),
		blobs:        badger.NewBlobStorage(store, logger),
		logger:       logger,
	}, nil
}

func (m *Manager) UserStore() interfaces.UserStore {
	return m.users
}

func (m *Manager) PropertyStore() interfaces.PropertyStore {
	return m.properties
}

func (m *Manager) TransactionStore() interfaces.TransactionStore {
	return m.transactions
}

func (m *Manager) BlobStore() interfaces.BlobStore {
	return m.blobs
}

// Close closes the underlying store.
func (m *Manager) Close() error {
	if m.store != nil {
		return m.store.Close()
	}
	return nil
}
