// Package config loads process configuration from the environment
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/ie-chargen/internal/actor"
	"github.com/KirkDiggler/ie-chargen/internal/errors"
)

// Config is the chargen process configuration
type Config struct {
	RedisAddr string `env:"CHARGEN_REDIS_ADDR" envDefault:"localhost:6379"`
	// DataDir overrides the bundled rules data when set
	DataDir string `env:"CHARGEN_DATA_DIR"`
	Locale  string `env:"CHARGEN_LOCALE" envDefault:"en-US"`

	Continuation bool `env:"CHARGEN_TOB"`
	Converted    bool `env:"CHARGEN_CONVERTED"`
	PlayMode     int  `env:"CHARGEN_PLAY_MODE"`

	Timeout time.Duration `env:"CHARGEN_TIMEOUT" envDefault:"5s"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("redisAddr", c.RedisAddr, vb)
	errors.ValidateRequired("locale", c.Locale, vb)
	errors.ValidateNonNegative("playMode", c.PlayMode, vb)
	if c.Timeout <= 0 {
		vb.Field("timeout", "must be positive")
	}
	return vb.Build()
}

// Campaign returns the campaign the configuration describes
func (c *Config) Campaign() actor.Campaign {
	return actor.Campaign{
		Continuation: c.Continuation,
		Converted:    c.Converted,
		PlayMode:     c.PlayMode,
	}
}
