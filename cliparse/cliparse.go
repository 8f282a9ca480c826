package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/starter-vote/store"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3318"`
	StoreType string `env:"STORE_TYPE" envDefault:"memory"`
	StoreURL  string `env:"STORE_URL"`
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are ignored; variables already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ParseFlags reads the environment, then applies flags on top
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// Environment (and defaults) first
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("starter-vote", flag.ContinueOnError)

	// CLI flags override env; env values become the flag defaults
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.StoreType, "s", cfg.StoreType, "Store type (memory, redis, postgres, sqlite, bolt)")
	fs.StringVar(&cfg.StoreURL, "d", cfg.StoreURL, "Store URL or file path")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}

	if !store.IsValidType(cfg.StoreType) {
		return Config{}, fmt.Errorf("store type %q: %w", cfg.StoreType, store.ErrUnknownType)
	}

	if cfg.StoreType != store.TypeMemory && cfg.StoreURL == "" {
		return Config{}, errors.New("store URL required (use -d or STORE_URL env)")
	}

	return cfg, nil
}
