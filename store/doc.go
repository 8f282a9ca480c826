// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides the counter store behind the vote gateway.

# Counter Store

CounterStore is the narrow interface the gateway depends on:

	v, found, err := s.Get(ctx, store.Key(models.StarterBrowt))
	n, err := s.Incr(ctx, store.Key(models.StarterBrowt))

Counters are keyed "votes:<starter>". An absent key means zero. Incr is
atomic in every backend; the gateway never takes a lock of its own.

# Backends

Open selects a backend by type:

	s, err := store.Open(ctx, cfg.StoreType, cfg.StoreURL)

  - memory: in-process map (default, lost on restart)
  - redis: GET / INCR on a Redis server (redis://host:6379/0)
  - postgres: counter table, upsert with RETURNING (postgres://...)
  - sqlite: same table in a local file (votes.db)
  - bolt: bbolt bucket in a local file (votes.bolt)

# Schema

SQL backends share one table, created by CreateSchema with IF NOT EXISTS:

	counter(name TEXT PRIMARY KEY, value BIGINT NOT NULL CHECK (value >= 0))
*/
package store
