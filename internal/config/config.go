package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application. It is constructed
// once at startup and passed by reference into every component that needs
// it; the secrets are never looked up ambiently.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

// AuthConfig carries the two server-held secrets: one keys the HMAC
// pre-hash applied to passwords before bcrypt, the other signs session
// tokens. TokenExpiration is the absolute token lifetime.
type AuthConfig struct {
	TokenSecret     string        `mapstructure:"token_secret"`
	PasswordSecret  string        `mapstructure:"password_secret"`
	TokenExpiration time.Duration `mapstructure:"token_expiration"`
}

// LoadConfig reads configuration from a config.yaml in path, overridden by
// environment variables (server.address -> SERVER_ADDRESS etc.).
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.dsn", "workout_tracker.db")
	viper.SetDefault("auth.token_expiration", "8h")

	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// No config file is fine; env vars and defaults still apply.
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
