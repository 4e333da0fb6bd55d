package token

import (
	"context"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

var (
	authBucket = []byte("auth")
	tokenKey   = []byte("roadcase_auth_token")
)

// BoltStore keeps the token in a bbolt file. The same namespaced key is
// used for the lifetime of the installation.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (creating if needed) the token database at path.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open token store %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(authBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init token store: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Read(ctx context.Context) (string, error) {
	var token string
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(authBucket).Get(tokenKey); v != nil {
			token = string(v)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return token, nil
}

func (s *BoltStore) Write(ctx context.Context, token string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(authBucket).Put(tokenKey, []byte(token))
	})
	if err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

func (s *BoltStore) Clear(ctx context.Context) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(authBucket).Delete(tokenKey)
	})
	if err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// Close releases the underlying database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
