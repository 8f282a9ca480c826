// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhkuo/starter-vote/models"
)

// Store types accepted by Open
const (
	TypeMemory   = "memory"
	TypeRedis    = "redis"
	TypePostgres = "postgres"
	TypeSQLite   = "sqlite"
	TypeBolt     = "bolt"
)

// Types lists every supported store type.
var Types = []string{TypeMemory, TypeRedis, TypePostgres, TypeSQLite, TypeBolt}

// KeyPrefix namespaces vote counters in the shared store.
const KeyPrefix = "votes:"

var (
	ErrUnknownType = errors.New("unknown store type")
	ErrURLRequired = errors.New("store URL required")
	ErrClosed      = errors.New("store is closed")
)

// CounterStore is a key-value store of non-negative integer counters.
//
// Incr must be atomic with respect to concurrent callers: N concurrent
// increments of the same key raise it by exactly N. Callers never lock.
type CounterStore interface {
	// Get returns the counter value. found is false when the key is absent.
	Get(ctx context.Context, key string) (value int64, found bool, err error)
	// Incr adds one to the counter, creating it at 1, and returns the new value.
	Incr(ctx context.Context, key string) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

// Key returns the namespaced counter key for a starter
func Key(s models.Starter) string {
	return KeyPrefix + string(s)
}

// IsValidType reports whether t names a supported backend.
func IsValidType(t string) bool {
	for _, v := range Types {
		if v == t {
			return true
		}
	}
	return false
}

// Open connects to the backend named by storeType and verifies it is reachable.
// SQL backends have their schema created; calling Open repeatedly is safe.
func Open(ctx context.Context, storeType, url string) (CounterStore, error) {
	if storeType != TypeMemory && url == "" {
		return nil, fmt.Errorf("%s: %w", storeType, ErrURLRequired)
	}

	switch storeType {
	case TypeMemory:
		return NewMemoryStore(), nil
	case TypeRedis:
		return OpenRedis(ctx, url)
	case TypePostgres:
		return OpenSQL(ctx, DialectPostgres, url)
	case TypeSQLite:
		return OpenSQL(ctx, DialectSQLite, url)
	case TypeBolt:
		return OpenBolt(ctx, url)
	default:
		return nil, fmt.Errorf("%q: %w", storeType, ErrUnknownType)
	}
}
