package rng

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the tunables of the rng module. All fields can be set
// through the environment.
type Config struct {
	// Cipher selects the block cipher the Fortuna generator runs on.
	Cipher string `env:"RANDBASE_RNG_CIPHER" envDefault:"aes"`

	// MinFeedEntropy is the minimum amount of entropy, in bits, that must
	// accumulate before the entropy sources are fed to the RNG.
	MinFeedEntropy int `env:"RANDBASE_RNG_MIN_FEED_ENTROPY" envDefault:"256"`

	// ReseedAfter is how long the generator may serve data before it is
	// reseeded on the next request.
	ReseedAfter time.Duration `env:"RANDBASE_RNG_RESEED_AFTER" envDefault:"10m"`

	// ReseedAfterBytes is how many bytes the generator may serve before
	// it is reseeded on the next request.
	ReseedAfterBytes int `env:"RANDBASE_RNG_RESEED_AFTER_BYTES" envDefault:"1000000"`
}

// DefaultConfig returns the configuration from the environment, with
// defaults for everything unset.
func DefaultConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("rng: parsing config from environment: %w", err)
	}
	return cfg, cfg.check()
}

func (cfg Config) check() error {
	switch cfg.Cipher {
	case "aes", "serpent":
	default:
		return fmt.Errorf("rng: unknown or unsupported cipher: %s", cfg.Cipher)
	}
	if cfg.MinFeedEntropy < 64 {
		return fmt.Errorf("rng: minimum feed entropy must be at least 64 bits, got %d", cfg.MinFeedEntropy)
	}
	if cfg.ReseedAfter < time.Second {
		return fmt.Errorf("rng: reseed interval must be at least one second, got %s", cfg.ReseedAfter)
	}
	if cfg.ReseedAfterBytes < 100 {
		return fmt.Errorf("rng: reseed byte limit must be at least 100, got %d", cfg.ReseedAfterBytes)
	}
	return nil
}
