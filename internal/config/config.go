// Package config loads application settings from configs/config.yml, an optional
// .env file and TRACKER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "TRACKER"

// Defaults used when neither the config file nor the environment sets a key.
const (
	defaultPort              = "8080"
	defaultDBPath            = "app.db"
	defaultJWTExpirationMs   = 86_400_000 // 24h
	defaultLogLevel          = "info"
	defaultReadHeaderTimeout = 10 * time.Second
	defaultWriteTimeout      = 10 * time.Second
	defaultIdleTimeout       = 60 * time.Second
	defaultWSInterval        = 5 * time.Second
)

var (
	errMissingSecret     = errors.New("jwt.secret must be set")
	errInvalidExpiration = errors.New("jwt.expiration_ms must be positive")
)

type Config struct {
	Port string
	DB   DBConfig
	JWT  JWTConfig
	Log  LogConfig
	HTTP HTTPConfig
	WS   WSConfig
}

type DBConfig struct {
	Path string
}

type JWTConfig struct {
	Secret       string
	ExpirationMs int64
}

// Lifetime converts the configured expiration to a duration.
func (c JWTConfig) Lifetime() time.Duration {
	return time.Duration(c.ExpirationMs) * time.Millisecond
}

type LogConfig struct {
	Level string
}

type HTTPConfig struct {
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}

type WSConfig struct {
	DefaultInterval time.Duration
}

// Load reads configuration from the given directories (first match wins).
// A missing config file is not an error; env variables and defaults still apply.
func Load(paths ...string) (Config, error) {
	// .env is optional; real environment variables take precedence over it.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Port: v.GetString("port"),
		DB:   DBConfig{Path: v.GetString("db.path")},
		JWT: JWTConfig{
			Secret:       v.GetString("jwt.secret"),
			ExpirationMs: v.GetInt64("jwt.expiration_ms"),
		},
		Log: LogConfig{Level: strings.ToLower(v.GetString("log.level"))},
		HTTP: HTTPConfig{
			ReadHeaderTimeout: v.GetDuration("http.read_header_timeout"),
			WriteTimeout:      v.GetDuration("http.write_timeout"),
			IdleTimeout:       v.GetDuration("http.idle_timeout"),
		},
		WS: WSConfig{DefaultInterval: v.GetDuration("ws.default_interval")},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", defaultPort)
	v.SetDefault("db.path", defaultDBPath)
	v.SetDefault("jwt.expiration_ms", defaultJWTExpirationMs)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("http.read_header_timeout", defaultReadHeaderTimeout)
	v.SetDefault("http.write_timeout", defaultWriteTimeout)
	v.SetDefault("http.idle_timeout", defaultIdleTimeout)
	v.SetDefault("ws.default_interval", defaultWSInterval)
	// registered so AutomaticEnv can resolve it even when no file sets it
	v.SetDefault("jwt.secret", "")
}

// Validate checks settings that have no sensible default.
func (c Config) Validate() error {
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return errMissingSecret
	}
	if c.JWT.ExpirationMs <= 0 {
		return errInvalidExpiration
	}
	return nil
}
