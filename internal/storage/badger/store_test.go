package badger

import (
	"context"
	"testing"
	"time"

	"github.com/bobmcallan/landmark/internal/common"
	"github.com/bobmcallan/landmark/internal/models"
)

func newUnitTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	logger := common.NewSilentLogger()
	store, err := NewStore(logger, dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestUserCRUD(t *testing.T) {
	store := newUnitTestStore(t)
	users := NewUserStorage(store, common.NewSilentLogger())
	ctx := context.Background()

	user := &models.User{
		UserID:       "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Role:         models.RoleUser,
		CreatedAt:    time.Now(),
	}
	if err := users.SaveUser(ctx, user); err != nil {
		t.Fatalf("SaveUser: %v", err)
	}

	got, err := users.GetUser(ctx, "alice")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Email != "alice@example.com" {
		t.Errorf("unexpected email: %s", got.Email)
	}

	byEmail, err := users.GetUserByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if byEmail.UserID != "alice" {
		t.Errorf("unexpected user: %s", byEmail.UserID)
	}

	ids, err := users.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(ids) != 1 || ids[0] != "alice" {
		t.Errorf("unexpected user list: %v", ids)
	}

	if err := users.DeleteUser(ctx, "alice"); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if _, err := users.GetUser(ctx, "alice"); err == nil {
		t.Error("GetUser after delete should fail")
	}
}

func TestPropertyCRUD(t *testing.T) {
	store := newUnitTestStore(t)
	properties := NewPropertyStorage(store, common.NewSilentLogger())
	ctx := context.Background()

	p := &models.Property{
		ID:            "p1",
		UserID:        "alice",
		Name:          "Elm Street Duplex",
		PurchasePrice: 250000,
		Status:        models.StatusAvailable,
	}
	if err := properties.SaveProperty(ctx, p); err != nil {
		t.Fatalf("SaveProperty: %v", err)
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Error("SaveProperty should set timestamps")
	}

	got, err := properties.GetProperty(ctx, "alice", "p1")
	if err != nil {
		t.Fatalf("GetProperty: %v", err)
	}
	if got.Name != "Elm Street Duplex" {
		t.Errorf("unexpected name: %s", got.Name)
	}

	// Other users must not see the record.
	if _, err := properties.GetProperty(ctx, "bob", "p1"); err == nil {
		t.Error("GetProperty for wrong user should fail")
	}
	if err := properties.DeleteProperty(ctx, "bob", "p1"); err == nil {
		t.Error("DeleteProperty for wrong user should fail")
	}

	list, err := properties.ListProperties(ctx, "alice")
	if err != nil {
		t.Fatalf("ListProperties: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 property, got %d", len(list))
	}

	if err := properties.DeleteProperty(ctx, "alice", "p1"); err != nil {
		t.Fatalf("DeleteProperty: %v", err)
	}
	if _, err := properties.GetProperty(ctx, "alice", "p1"); err == nil {
		t.Error("GetProperty after delete should fail")
	}
}

func TestListProperties_SortedByCreation(t *testing.T) {
	store := newUnitTestStore(t)
	properties := NewPropertyStorage(store, common.NewSilentLogger())
	ctx := context.Background()

	early := time.Now().Add(-time.Hour)
	properties.SaveProperty(ctx, &models.Property{ID: "p2", UserID: "alice", Name: "Second", CreatedAt: time.Now()})
	properties.SaveProperty(ctx, &models.Property{ID: "p1", UserID: "alice", Name: "First", CreatedAt: early})

	list, err := properties.ListProperties(ctx, "alice")
	if err != nil {
		t.Fatalf("ListProperties: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(list))
	}
	if list[0].Name != "First" {
		t.Errorf("expected oldest first, got %s", list[0].Name)
	}
}

func TestTransactionCRUD(t *testing.T) {
	store := newUnitTestStore(t)
	transactions := NewTransactionStorage(store, common.NewSilentLogger())
	ctx := context.Background()

	tx := &models.Transaction{
		ID:       "t1",
		UserID:   "alice",
		Type:     models.TransactionIncome,
		Category: "Rent",
		Amount:   1500,
		Date:     time.Now(),
	}
	if err := transactions.SaveTransaction(ctx, tx); err != nil {
		t.Fatalf("SaveTransaction: %v", err)
	}

	got, err := transactions.GetTransaction(ctx, "alice", "t1")
	if err != nil {
		t.Fatalf("GetTransaction: %v", err)
	}
	if got.Amount != 1500 {
		t.Errorf("unexpected amount: %v", got.Amount)
	}

	if _, err := transactions.GetTransaction(ctx, "bob", "t1"); err == nil {
		t.Error("GetTransaction for wrong user should fail")
	}

	if err := transactions.DeleteTransaction(ctx, "alice", "t1"); err != nil {
		t.Fatalf("DeleteTransaction: %v", err)
	}
	if _, err := transactions.GetTransaction(ctx, "alice", "t1"); err == nil {
		t.Error("GetTransaction after delete should fail")
	}
}

func TestListTransactions_SortedByDate(t *testing.T) {
	store := newUnitTestStore(t)
	transactions := NewTransactionStorage(store, common.NewSilentLogger())
	ctx := context.Background()

	now := time.Now()
	transactions.SaveTransaction(ctx, &models.Transaction{ID: "t2", UserID: "alice", Type: models.TransactionIncome, Category: "Rent", Amount: 2, Date: now})
	transactions.SaveTransaction(ctx, &models.Transaction{ID: "t1", UserID: "alice", Type: models.TransactionIncome, Category: "Rent", Amount: 1, Date: now.AddDate(0, -1, 0)})

	list, err := transactions.ListTransactions(ctx, "alice")
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(list))
	}
	if list[0].ID != "t1" {
		t.Errorf("expected date-ascending order, got %s first", list[0].ID)
	}
}

func TestBlobRoundtrip(t *testing.T) {
	store := newUnitTestStore(t)
	blobs := NewBlobStorage(store, common.NewSilentLogger())
	ctx := context.Background()

	if _, err := blobs.Get(ctx, "missing"); err == nil {
		t.Error("Get on missing key should fail")
	}

	if err := blobs.Set(ctx, "snapshots/alice", []byte(`{"snapshots":[]}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, err := blobs.Get(ctx, "snapshots/alice")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(data) != `{"snapshots":[]}` {
		t.Errorf("unexpected value: %s", data)
	}

	if err := blobs.Delete(ctx, "snapshots/alice"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := blobs.Get(ctx, "snapshots/alice"); err == nil {
		t.Error("Get after delete should fail")
	}
}
