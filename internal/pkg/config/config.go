package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between deployments (platform API URL)
// - default: Values common across all environments (timeouts, store location, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	API     APIConfig
	Store   StoreConfig
	CORS    CORSConfig
	Log     LogConfig
	Console ConsoleConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"4173"`
}

type APIConfig struct {
	BaseURL   string        `envconfig:"API_BASE_URL" required:"true"`
	Timeout   time.Duration `envconfig:"API_TIMEOUT" default:"10s"`
	RateLimit float64       `envconfig:"API_RATE_LIMIT" default:"20"`
	Burst     int           `envconfig:"API_RATE_BURST" default:"5"`
}

// StoreConfig selects where the access token, refresh token and username survive restarts.
type StoreConfig struct {
	Driver        string `envconfig:"STORE_DRIVER" default:"sqlite"`
	Profile       string `envconfig:"STORE_PROFILE" default:"default"`
	SQLitePath    string `envconfig:"STORE_SQLITE_PATH" default:"booking-console.db"`
	RedisAddr     string `envconfig:"STORE_REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"STORE_REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"STORE_REDIS_DB" default:"0"`
	RedisPrefix   string `envconfig:"STORE_REDIS_PREFIX" default:"booking-console:"`
	PostgresDSN   string `envconfig:"STORE_POSTGRES_DSN" default:""`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:4173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// ConsoleConfig holds the redirect targets used by the view guards.
type ConsoleConfig struct {
	LoginPath   string `envconfig:"CONSOLE_LOGIN_PATH" default:"/login"`
	LandingPath string `envconfig:"CONSOLE_LANDING_PATH" default:"/bookings"`
}

// BaseURLWithSlash returns the API base with exactly one trailing slash, so endpoint
// paths such as "auth/login/" can be appended verbatim.
func (c APIConfig) BaseURLWithSlash() string {
	return strings.TrimRight(c.BaseURL, "/") + "/"
}

func (c StoreConfig) Validate() error {
	switch c.Driver {
	case "memory", "sqlite", "redis":
		return nil
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("STORE_POSTGRES_DSN is required for the postgres store")
		}
		return nil
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Driver)
	}
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Store.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		API: APIConfig{
			BaseURL:   "http://127.0.0.1:8000/api/",
			Timeout:   2 * time.Second,
			RateLimit: 1000,
			Burst:     100,
		},
		Store: StoreConfig{
			Driver:  "memory",
			Profile: "test",
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Console: ConsoleConfig{
			LoginPath:   "/login",
			LandingPath: "/bookings",
		},
	}
}
