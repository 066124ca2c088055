package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/username/yomi-daytime/internal/clock"
)

const (
	// DefaultAddr is the standard daytime protocol endpoint
	DefaultAddr         = "0.0.0.0:13"
	defaultWriteTimeout = 5 * time.Second
)

// Config represents application configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Clock  ClockConfig  `mapstructure:"clock"`
}

// ServerConfig represents the daytime listener configuration
type ServerConfig struct {
	Addr         string `mapstructure:"addr"`
	WriteTimeout string `mapstructure:"write_timeout"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File       string `mapstructure:"file"` // Empty means console
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// ClockConfig selects the timezone the current moment is read in
type ClockConfig struct {
	Timezone string `mapstructure:"timezone"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", DefaultAddr)
	v.SetDefault("server.write_timeout", defaultWriteTimeout.String())
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", true)
	v.SetDefault("clock.timezone", "")
}

// Load loads configuration from defaults, an optional YAML file and YOMI_*
// environment variables. A missing file is only an error when required is set.
func Load(configPath string, required bool) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.yomi-daytime")
		v.AddConfigPath("/etc/yomi-daytime")
	}

	// YOMI_SERVER_ADDR -> server.addr
	v.SetEnvPrefix("yomi")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if required || !isNotFound(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	// SetConfigFile reports a missing explicit path as a plain fs error
	return errors.Is(err, fs.ErrNotExist)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := ValidateAddr(c.Server.Addr); err != nil {
		return fmt.Errorf("server.addr: %w", err)
	}
	if c.Server.WriteTimeout != "" {
		d, err := time.ParseDuration(c.Server.WriteTimeout)
		if err != nil {
			return fmt.Errorf("server.write_timeout: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("server.write_timeout must be positive")
		}
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log rotation limits must not be negative")
	}

	if _, err := clock.LoadLocation(c.Clock.Timezone); err != nil {
		return fmt.Errorf("clock.timezone: %w", err)
	}

	return nil
}

// ValidateAddr checks that addr is host:port with a numeric port
func ValidateAddr(addr string) error {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("invalid port %q", port)
	}
	return nil
}

// GetWriteTimeout returns the per-connection write timeout
func (c *ServerConfig) GetWriteTimeout() time.Duration {
	if c.WriteTimeout == "" {
		return defaultWriteTimeout
	}
	duration, err := time.ParseDuration(c.WriteTimeout)
	if err != nil || duration <= 0 {
		return defaultWriteTimeout
	}
	return duration
}

// GetLocation returns the configured clock timezone, falling back to local
func (c *ClockConfig) GetLocation() *time.Location {
	loc, err := clock.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
