package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mcdev12/formulated/go/internal/dbconfig"
	"github.com/mcdev12/formulated/go/internal/pacing"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no config file is given
const DefaultPath = "config.yaml"

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Auth      AuthConfig      `yaml:"auth"`
	Providers ProvidersConfig `yaml:"providers"`
	NATS      NATSConfig      `yaml:"nats"`
	Log       LogConfig       `yaml:"log"`

	// Database always comes from the environment
	Database dbconfig.Config `yaml:"-"`
}

type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	SecureCookies  bool     `yaml:"secure_cookies"`
}

type AuthConfig struct {
	SessionSecret string        `yaml:"session_secret"`
	SessionTTL    time.Duration `yaml:"session_ttl"`
	BcryptCost    int           `yaml:"bcrypt_cost"`
}

type ProvidersConfig struct {
	APISports ProviderConfig `yaml:"apisports"`
	OpenF1    ProviderConfig `yaml:"openf1"`
}

// ProviderConfig configures one upstream API and the pacing of the
// pullers that call it.
type ProviderConfig struct {
	Enabled      bool          `yaml:"enabled"`
	BaseURL      string        `yaml:"base_url"`
	APIKey       string        `yaml:"api_key"`
	Timeout      time.Duration `yaml:"timeout"`
	RequestDelay time.Duration `yaml:"request_delay"`
}

// NATSConfig enables sync event publishing when URL is set
type NATSConfig struct {
	URL           string `yaml:"url"`
	Stream        string `yaml:"stream"`
	SubjectPrefix string `yaml:"subject_prefix"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used for anything the file omits
func Default() Config {
	return Config{
		Server: ServerConfig{Port: 8080},
		Auth: AuthConfig{
			SessionTTL: 14 * 24 * time.Hour,
			BcryptCost: 12,
		},
		Providers: ProvidersConfig{
			APISports: ProviderConfig{
				Enabled:      true,
				Timeout:      30 * time.Second,
				RequestDelay: pacing.DefaultDelay,
			},
			OpenF1: ProviderConfig{
				Enabled:      true,
				Timeout:      30 * time.Second,
				RequestDelay: time.Second,
			},
		},
		NATS: NATSConfig{
			Stream:        "SYNC_EVENTS",
			SubjectPrefix: "sync.events",
		},
		Log: LogConfig{Level: "info", Format: "json"},
	}
}

// Load reads .env, then the YAML file at path, then environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Debug().Str("path", path).Msg("config file not found, using defaults")
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.Database = dbconfig.NewConfigFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("APISPORTS_API_KEY"); v != "" {
		c.Providers.APISports.APIKey = v
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		c.Auth.SessionSecret = v
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		c.NATS.URL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		c.Server.AllowedOrigins = strings.Split(v, ",")
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	for name, p := range map[string]ProviderConfig{"apisports": c.Providers.APISports, "openf1": c.Providers.OpenF1} {
		if p.Timeout < 0 || p.RequestDelay < 0 {
			return fmt.Errorf("providers.%s: timeout and request_delay must not be negative", name)
		}
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be positive")
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}
