package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process configuration, populated from the
// environment (optionally seeded from a .env file).
type Config struct {
	// Discord bot token
	Token string `env:"TOKEN,required"`

	// Application ID for the bot
	ApplicationID string `env:"APPLICATION_ID"`

	// Optional guild ID for development (server-specific commands)
	GuildID string `env:"GUILD_ID"`

	// Redis address; when empty the bot falls back to the file store
	RedisAddr string `env:"REDIS_ADDR"`

	// Redis password
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Path of the file store used when no Redis address is configured
	SessionsFile string `env:"SESSIONS_FILE" envDefault:"sessions.json"`

	// Port for the keep-alive HTTP endpoint
	Port int `env:"PORT" envDefault:"8080"`
}

// Load reads configuration from .env (when present) and the environment
func Load() (*Config, error) {
	// A missing .env just means the environment is already populated
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
