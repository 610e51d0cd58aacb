package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env         string
	Port        string
	DatabaseURL string
	RedisURL    string // optional; traffic stats are skipped when empty
	ClientURL   string // allowed CORS origin
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "5000"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	clientURL := viper.GetString("CLIENT_URL")
	if clientURL == "" {
		// local frontend dev server
		clientURL = "http://localhost:3000"
	}

	return &Config{
		Env:         env,
		Port:        port,
		DatabaseURL: viper.GetString("DATABASE_URL"),
		RedisURL:    viper.GetString("REDIS_URL"),
		ClientURL:   clientURL,
	}, nil
}
