package badger

import (
	"context"
	"fmt"

	"github.com/bobmcallan/landmark/internal/common"
	"github.com/timshannon/badgerhold/v4"
)

// BlobEntry represents a key-value blob stored in BadgerDB.
type BlobEntry struct {
	Key   string `badgerhold:"key"`
	Value []byte
}

type blobStorage struct {
	store  *Store
	logger *common.Logger
}

// NewBlobStorage creates a new BlobStore backed by BadgerHold.
func NewBlobStorage(store *Store, logger *common.Logger) *blobStorage {
	return &blobStorage{store: store, logger: logger}
}

func (s *blobStorage) Get(_ context.Context, key string) ([]byte, error) {
	var entry BlobEntry
	err := s.store.db.Get(key, &entry)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("key '%s' not found", key)
		}
		return nil, fmt.Errorf("failed to get key '%s': %w", key, err)
	}
	return entry.Value, nil
}

func (s *blobStorage) Set(_ context.Context, key string, value []byte) error {
	entry := BlobEntry{Key: key, Value: value}
	if err := s.store.db.Upsert(key, &entry); err != nil {
		return fmt.Errorf("failed to set key '%s': %w", key, err)
	}
	return nil
}

func (s *blobStorage) Delete(_ context.Context, key string) error {
	err := s.store.db.Delete(key, BlobEntry{})
	if err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to delete key '%s': %w", key, err)
	}
	return nil
}
