package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	_ "github.com/joho/godotenv/autoload"
	"github.com/ratel-online/uno/consts"
)

// Config is read from the environment, after a .env file in the working
// directory has been loaded. A value that does not parse is an error.
type Config struct {
	// Seed for the shuffle. Zero picks one from the clock.
	Seed     int64         `env:"UNO_SEED,default=0"`
	HandSize int           `env:"UNO_HAND_SIZE,default=7"`
	Delay    time.Duration `env:"UNO_DELAY,default=0s"`
	Color    bool          `env:"UNO_COLOR,default=true"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, err
	}
	if cfg.HandSize < 1 {
		return Config{}, fmt.Errorf("%w: UNO_HAND_SIZE must be positive, got %d", consts.ErrorsInputInvalid, cfg.HandSize)
	}
	if cfg.Delay < 0 {
		return Config{}, fmt.Errorf("%w: UNO_DELAY must not be negative, got %s", consts.ErrorsInputInvalid, cfg.Delay)
	}
	return cfg, nil
}
