package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the console settings. Flags override the environment.
type Config struct {
	Addr              string        `env:"PRESTABANCO_ADDR" envDefault:":8080"`
	BackendServer     string        `env:"PRESTABANCO_BACKEND_SERVER" envDefault:"localhost"`
	BackendPort       string        `env:"PRESTABANCO_BACKEND_PORT" envDefault:"8090"`
	BackendURL        string        `env:"PRESTABANCO_BACKEND_URL"`
	BackendTimeout    time.Duration `env:"PRESTABANCO_BACKEND_TIMEOUT" envDefault:"30s"`
	RedisAddr         string        `env:"PRESTABANCO_REDIS_ADDR"`
	SessionSecret     string        `env:"PRESTABANCO_SESSION_SECRET"`
	SessionTTL        time.Duration `env:"PRESTABANCO_SESSION_TTL" envDefault:"8h"`
	SimulationTTL     time.Duration `env:"PRESTABANCO_SIMULATION_CACHE_TTL" envDefault:"10m"`
	RateLimitCapacity int           `env:"PRESTABANCO_RATE_LIMIT" envDefault:"60"`
	RateLimitWindow   time.Duration `env:"PRESTABANCO_RATE_LIMIT_WINDOW" envDefault:"1m"`
	OTelEndpoint      string        `env:"PRESTABANCO_OTEL_ENDPOINT"`
}

// LoadDotEnv reads path into the environment when it exists. Variables
// already set win over the file.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Println("No .env file found, using environment variables")
		return nil
	}
	return err
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The console HTTP listen address")
	fs.StringVar(&cfg.BackendServer, "backend-server", cfg.BackendServer, "The PrestaBanco backend host")
	fs.StringVar(&cfg.BackendPort, "backend-port", cfg.BackendPort, "The PrestaBanco backend port")
	fs.StringVar(&cfg.BackendURL, "backend-url", cfg.BackendURL, "The full backend base URL, overrides server and port")
	fs.DurationVar(&cfg.BackendTimeout, "backend-timeout", cfg.BackendTimeout, "The backend request timeout")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "The Redis address, empty keeps the cache in memory")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "The session lifetime")
	fs.DurationVar(&cfg.SimulationTTL, "simulation-cache-ttl", cfg.SimulationTTL, "The simulation result cache TTL")
	fs.IntVar(&cfg.RateLimitCapacity, "rate-limit", cfg.RateLimitCapacity, "Requests allowed per client per window")
	fs.DurationVar(&cfg.RateLimitWindow, "rate-limit-window", cfg.RateLimitWindow, "The rate limit window")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that have no usable default.
func (c Config) Validate() error {
	if c.SessionSecret == "" {
		return errors.New("PRESTABANCO_SESSION_SECRET is required")
	}
	if c.BackendURL == "" && (c.BackendServer == "" || c.BackendPort == "") {
		return errors.New("backend server and port or backend url are required")
	}
	if c.RateLimitCapacity <= 0 || c.RateLimitWindow <= 0 {
		return errors.New("rate limit capacity and window must be positive")
	}
	return nil
}

// BaseURL is the backend root the client talks to.
func (c Config) BaseURL() string {
	if c.BackendURL != "" {
		return c.BackendURL
	}
	return "http://" + net.JoinHostPort(c.BackendServer, c.BackendPort)
}
