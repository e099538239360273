package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	MongoURI string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB  string `env:"MONGO_DB" envDefault:"secondbrain"`

	JWTSecret string        `env:"JWT_SECRET_KEY"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"168h"`

	// Optional cache for the public share-resolution path.
	// Caching is disabled when empty.
	RedisURL      string        `env:"REDIS_URL"`
	ShareCacheTTL time.Duration `env:"SHARE_CACHE_TTL" envDefault:"60s"`

	CORSOrigin   string `env:"CORS_ORIGIN" envDefault:"http://localhost:5173"`
	MaxBodyBytes int64  `env:"MAX_BODY_BYTES" envDefault:"1048576"`
}

// Load reads .env if present, then the environment. JWT_SECRET_KEY is
// the only setting without a usable default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET_KEY is not set")
	}
	return cfg, nil
}
