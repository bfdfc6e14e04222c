// Package revocation keeps revoked session token hashes in Redis.
// Entries are written without expiry: a revoked token stays revoked.
package revocation

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// Store is a Redis-backed revocation list.
type Store struct {
	client goredis.UniversalClient
	prefix string
}

// New creates a revocation store. Every key is prefix + token hash.
func New(client goredis.UniversalClient, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

// Add marks tokenHash as revoked. Adding an existing entry is a no-op.
func (s *Store) Add(ctx context.Context, tokenHash string) error {
	if err := s.client.SetNX(ctx, s.prefix+tokenHash, 1, 0).Err(); err != nil {
		return fmt.Errorf("revocation.Add: %w", err)
	}
	return nil
}

// Contains reports whether tokenHash has been revoked.
func (s *Store) Contains(ctx context.Context, tokenHash string) (bool, error) {
	n, err := s.client.Exists(ctx, s.prefix+tokenHash).Result()
	if err != nil {
		return false, fmt.Errorf("revocation.Contains: %w", err)
	}
	return n > 0, nil
}
