package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Source kinds.
const (
	SourceSeed = "seed"
	SourceHTTP = "http"
	SourceSQL  = "sql"
	SourceS3   = "s3"
)

const (
	// AppName is used for the XDG config directory and the env prefix.
	AppName = "monkeyapp"

	// DefaultSeedDelay mimics the latency of a remote catalog fetch.
	DefaultSeedDelay = 100 * time.Millisecond

	DefaultAddr        = ":8080"
	DefaultRandomLimit = 60
	DefaultLogLevel    = "warn"
)

type SourceConfig struct {
	Kind      string        `mapstructure:"kind"`
	SeedDelay time.Duration `mapstructure:"seed_delay"`

	HTTPURL string `mapstructure:"http_url"`

	SQLDriver string `mapstructure:"sql_driver"`
	SQLDSN    string `mapstructure:"sql_dsn"`

	S3Bucket    string `mapstructure:"s3_bucket"`
	S3Key       string `mapstructure:"s3_key"`
	S3Region    string `mapstructure:"s3_region"`
	S3Endpoint  string `mapstructure:"s3_endpoint"`
	S3PathStyle bool   `mapstructure:"s3_path_style"`
}

type ServerConfig struct {
	Addr           string `mapstructure:"addr"`
	MetricsEnabled bool   `mapstructure:"metrics_enabled"`
	MetricsToken   string `mapstructure:"metrics_token"`

	// TrustProxy makes the server take client addresses from forwarding
	// headers. Enable only behind a proxy that overwrites them.
	TrustProxy bool `mapstructure:"trust_proxy"`

	// RandomLimit is the number of /monkeys/random calls allowed per client per minute.
	// Zero disables the limit.
	RandomLimit int `mapstructure:"random_limit"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type Config struct {
	Source SourceConfig `mapstructure:"source"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`

	// RandSeed makes random picks reproducible when non-zero.
	RandSeed uint64 `mapstructure:"rand_seed"`
}

// NewConfig returns a Config populated with defaults: the built-in seed
// catalog, warn-level logging and a rate-limited HTTP front end on :8080.
func NewConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Kind:      SourceSeed,
			SeedDelay: DefaultSeedDelay,
		},
		Server: ServerConfig{
			Addr:        DefaultAddr,
			RandomLimit: DefaultRandomLimit,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// ConfigDir returns the XDG config directory, e.g. ~/.config/monkeyapp on Linux.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// SetDefaults registers every key with v so environment variables are picked up on Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := NewConfig()

	v.SetDefault("source.kind", d.Source.Kind)
	v.SetDefault("source.seed_delay", d.Source.SeedDelay)
	v.SetDefault("source.http_url", "")
	v.SetDefault("source.sql_driver", "")
	v.SetDefault("source.sql_dsn", "")
	v.SetDefault("source.s3_bucket", "")
	v.SetDefault("source.s3_key", "")
	v.SetDefault("source.s3_region", "")
	v.SetDefault("source.s3_endpoint", "")
	v.SetDefault("source.s3_path_style", false)

	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.metrics_enabled", false)
	v.SetDefault("server.metrics_token", "")
	v.SetDefault("server.trust_proxy", false)
	v.SetDefault("server.random_limit", d.Server.RandomLimit)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", "")

	v.SetDefault("rand_seed", 0)
}

// Load reads configuration into a Config. When path is empty, config.yaml in
// ConfigDir is used if it exists; an explicit path must exist.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(AppName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Source.Kind = strings.ToLower(strings.TrimSpace(cfg.Source.Kind))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns the first problem found.
func (c *Config) Validate() error {
	switch c.Source.Kind {
	case SourceSeed:
		if c.Source.SeedDelay < 0 {
			return ErrInvalidSeedDelay
		}
	case SourceHTTP:
		if c.Source.HTTPURL == "" {
			return ErrMissingHTTPURL
		}
	case SourceSQL:
		if c.Source.SQLDriver == "" || c.Source.SQLDSN == "" {
			return ErrMissingSQLDSN
		}
	case SourceS3:
		if c.Source.S3Bucket == "" || c.Source.S3Key == "" {
			return ErrMissingS3Object
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSource, c.Source.Kind)
	}

	if c.Server.RandomLimit < 0 {
		return ErrInvalidRandomLimit
	}
	return nil
}
