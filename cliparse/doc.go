// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - StoreType: Counter store backend (default: memory)
  - StoreURL: Backend URL or file path (required unless memory)

# CLI Flags

	-p  Server port
	-s  Store type (memory, redis, postgres, sqlite, bolt)
	-d  Store URL or file path

# Environment Variables

Flags fall back to environment variables:

	PORT       → -p
	STORE_TYPE → -s
	STORE_URL  → -d

CLI flags take precedence over environment variables. LoadDotEnv reads a
.env file into the environment first; variables that are already set are
not overwritten.

# Example

	// In main.go
	if err := cliparse.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	s, err := store.Open(ctx, cfg.StoreType, cfg.StoreURL)
	// ...
	mux := router.NewRouter(gateway.New(s), cfg)
*/
package cliparse
