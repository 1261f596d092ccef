package localstore

import (
	"encoding/json"
	"log"

	"github.com/dgraph-io/badger"

	"github.com/woliveira1728/os-system-frontend/internal/domain/entities"
	"github.com/woliveira1728/os-system-frontend/internal/usecase/interfaces"
)

// Keys for the two session entries. They are only ever written and deleted
// together, inside one transaction.
var (
	keyToken = []byte("session/token")
	keyUser  = []byte("session/user")
)

// Store persists the session token and identity in a badger database under
// the client's state directory, so a login survives process restarts.

type Store struct {
	db *badger.DB
}

var _ interfaces.ISessionStore = (*Store)(nil)

// Open opens (creating if needed) the badger database at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Save(token string, user entities.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(keyToken, []byte(token)); err != nil {
			return err
		}
		return txn.Set(keyUser, raw)
	})
}

// Load reads the stored session. Half-present or malformed state reads as
// absent; durable storage problems are logged, never surfaced.
func (s *Store) Load() (string, entities.User, bool) {
	var token string
	var user entities.User
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(keyToken)
		if err != nil {
			return err
		}
		raw, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		token = string(raw)

		item, err = txn.Get(keyUser)
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		if err != nil {
			return err
		}
		return json.Unmarshal(raw, &user)
	})
	if err != nil {
		if err != badger.ErrKeyNotFound {
			log.Printf("[session][store] load failed: %v", err)
		}
		return "", entities.User{}, false
	}
	if token == "" || user.ID == "" {
		return "", entities.User{}, false
	}
	return token, user, true
}

func (s *Store) Token() (string, bool) {
	var token string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(keyToken)
		if err != nil {
			return err
		}
		raw, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		token = string(raw)
		return nil
	})
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

// Clear removes both entries in one transaction. Clearing an empty store
// succeeds.
func (s *Store) Clear() error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(keyToken); err != nil && err != badger.ErrKeyNotFound {
			return err
		}
		if err := txn.Delete(keyUser); err != nil && err != badger.ErrKeyNotFound {
			return err
		}
		return nil
	})
}

func (s *Store) Close() error {
	return s.db.Close()
}
