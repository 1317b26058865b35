// Package metadata is the console's local key/value store. It keeps the
// logged-in session between runs.
package metadata

import (
	"context"
)

type Repository interface {
	// Get reports found=false for a missing key.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	// SetAll writes every pair in one transaction.
	SetAll(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
}
