// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var counterBucket = []byte("counters")

var ErrCorruptCounter = errors.New("counter value is not 8 bytes")

// BoltStore keeps counters in a single bbolt bucket as big-endian uint64 values.
// bbolt allows one write transaction at a time, which makes Incr atomic.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the database file at path.
func OpenBolt(ctx context.Context, path string) (*BoltStore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(counterBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Get(ctx context.Context, key string) (value int64, found bool, err error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}

	err = s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(counterBucket).Get([]byte(key))
		if raw == nil {
			return nil
		}
		value, err = decodeCounter(raw)
		found = err == nil
		return err
	})
	if err != nil {
		return 0, false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, found, nil
}

func (s *BoltStore) Incr(ctx context.Context, key string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var next int64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(counterBucket)

		var current int64
		if raw := b.Get([]byte(key)); raw != nil {
			v, err := decodeCounter(raw)
			if err != nil {
				return err
			}
			current = v
		}

		next = current + 1
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(next))
		return b.Put([]byte(key), buf)
	})
	if err != nil {
		return 0, fmt.Errorf("incr %s: %w", key, err)
	}
	return next, nil
}

func (s *BoltStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(counterBucket) == nil {
			return errors.New("counters bucket missing")
		}
		return nil
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func decodeCounter(raw []byte) (int64, error) {
	if len(raw) != 8 {
		return 0, ErrCorruptCounter
	}
	return int64(binary.BigEndian.Uint64(raw)), nil
}
