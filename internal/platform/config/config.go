package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server captures process-level configuration.
type Server struct {
	// Addr is the listen address for the HTTP server.
	Addr string `env:"ADDR" envDefault:":3001"`
	// DBPath is the SQLite database file, created on first start.
	DBPath string `env:"DB_PATH" envDefault:"insurance.db"`
	// BasePath roots every API route (the client expects /api).
	BasePath string `env:"BASE_PATH" envDefault:"/api"`
	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
