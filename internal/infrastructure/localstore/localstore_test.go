package localstore

import (
	"testing"

	"github.com/dgraph-io/badger"

	"github.com/woliveira1728/os-system-frontend/internal/domain/entities"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := openTestStore(t)

	user := entities.User{ID: "u-1", Email: "tech@example.com", Name: "Tech", Role: entities.RoleTechnician, IsActive: true}
	if err := s.Save("tok-123", user); err != nil {
		t.Fatalf("save: %v", err)
	}

	token, got, ok := s.Load()
	if !ok {
		t.Fatalf("expected a stored session")
	}
	if token != "tok-123" {
		t.Fatalf("expected token tok-123, got %s", token)
	}
	if got.ID != "u-1" || got.Role != entities.RoleTechnician {
		t.Fatalf("unexpected user: %+v", got)
	}

	if tok, ok := s.Token(); !ok || tok != "tok-123" {
		t.Fatalf("unexpected token read: %q %v", tok, ok)
	}
}

func TestStoreLoadEmpty(t *testing.T) {
	s := openTestStore(t)

	if _, _, ok := s.Load(); ok {
		t.Fatalf("expected empty store to load as absent")
	}
	if _, ok := s.Token(); ok {
		t.Fatalf("expected no token in empty store")
	}
}

func TestStoreClear(t *testing.T) {
	s := openTestStore(t)

	// Clearing an empty store is a no-op.
	if err := s.Clear(); err != nil {
		t.Fatalf("clear empty: %v", err)
	}

	if err := s.Save("tok", entities.User{ID: "u-1"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	if _, _, ok := s.Load(); ok {
		t.Fatalf("expected session gone after clear")
	}
	if _, ok := s.Token(); ok {
		t.Fatalf("expected token gone after clear")
	}
}

func TestStoreLoadHalfPresent(t *testing.T) {
	s := openTestStore(t)

	// A token without a cached identity must read as absent.
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(keyToken, []byte("orphan-token"))
	})
	if err != nil {
		t.Fatalf("seed token: %v", err)
	}

	if _, _, ok := s.Load(); ok {
		t.Fatalf("expected token-only state to load as absent")
	}
}

func TestStoreLoadMalformedIdentity(t *testing.T) {
	s := openTestStore(t)

	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(keyToken, []byte("tok")); err != nil {
			return err
		}
		return txn.Set(keyUser, []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("seed malformed: %v", err)
	}

	if _, _, ok := s.Load(); ok {
		t.Fatalf("expected malformed identity to load as absent")
	}
}
