package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Database DatabaseConfig `mapstructure:"database"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// PostgresConfig selects the relational remote backend when DSN is set.
type PostgresConfig struct {
	DSN string `mapstructure:"dsn"`
}

// DatabaseConfig selects the MongoDB remote backend when URI is set
// (and no Postgres DSN is configured).
type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// StorageConfig points at the directory holding the local JSON store. The
// local store doubles as the fallback cache when a remote backend is active.
type StorageConfig struct {
	Dir string `mapstructure:"dir"`
}

// AuthConfig enables the bearer-token middleware when Secret is non-empty.
// Tokens are minted out of band; this is a single-user application.
type AuthConfig struct {
	Secret string `mapstructure:"secret"`
}

// RemoteConfigured reports whether any remote backend credentials are
// present. Checked once at startup; the selected gateway is immutable for
// the process lifetime.
func (c Config) RemoteConfigured() bool {
	return c.Postgres.DSN != "" || c.Database.URI != ""
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variables override the file, e.g. postgres.dsn -> POSTGRES_DSN.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.name", "workout_planner")
	viper.SetDefault("storage.dir", "./data")

	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// No config file is fine; env vars and defaults carry the session.
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
