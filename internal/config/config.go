package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Log     LogConfig     `mapstructure:"log"`
}

// ServerConfig holds storefront HTTP server configuration
type ServerConfig struct {
	Port            int    `mapstructure:"port"`
	Host            string `mapstructure:"host"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// CatalogConfig holds backend catalog service configuration
type CatalogConfig struct {
	// PublicAPIURL is the public-exposed endpoint and wins over APIURL.
	PublicAPIURL         string            `mapstructure:"public_api_url"`
	APIURL               string            `mapstructure:"api_url"`
	Timeout              int               `mapstructure:"timeout"`
	Revalidate           int               `mapstructure:"revalidate"`
	MaxRequestsPerSecond int               `mapstructure:"max_requests_per_second"`
	ListLimit            int               `mapstructure:"list_limit"`
	ProbeOnStart         bool              `mapstructure:"probe_on_start"`
	CategoryAliases      map[string]string `mapstructure:"category_aliases"`
}

// RedisConfig holds the optional shared response cache connection details
type RedisConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Password  string `mapstructure:"password"`
	Database  int    `mapstructure:"database"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// LogConfig holds logrus settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Addr is the HTTP listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// RequestTimeout bounds handler work. It stays below WriteTimeout so a timed-out request
// can still write its 504 before the connection deadline.
func (s ServerConfig) RequestTimeout() time.Duration {
	write := time.Duration(s.WriteTimeout) * time.Second
	margin := write / 10
	if margin < 500*time.Millisecond {
		margin = 500 * time.Millisecond
	}
	if write <= margin {
		return write / 2
	}
	return write - margin
}

// RevalidateWindow is how long a catalog response is reused.
func (c CatalogConfig) RevalidateWindow() time.Duration {
	return time.Duration(c.Revalidate) * time.Second
}

func (c CatalogConfig) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// Load loads configuration from an optional YAML file with environment variable overrides
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	return load(v)
}

// LoadFile loads configuration from an explicit YAML file.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	config.Catalog.PublicAPIURL = strings.TrimSpace(config.Catalog.PublicAPIURL)
	config.Catalog.APIURL = strings.TrimSpace(config.Catalog.APIURL)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks value ranges that would otherwise fail late.
func (c *Config) Validate() error {
	var problems []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server.port %d out of range", c.Server.Port))
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		problems = append(problems, "server timeouts must be positive")
	}
	if c.Catalog.Timeout <= 0 {
		problems = append(problems, "catalog.timeout must be positive")
	}
	if c.Catalog.Revalidate < 0 {
		problems = append(problems, "catalog.revalidate must not be negative")
	}
	if c.Catalog.MaxRequestsPerSecond < 0 {
		problems = append(problems, "catalog.max_requests_per_second must not be negative")
	}
	if c.Catalog.ListLimit <= 0 {
		problems = append(problems, "catalog.list_limit must be positive")
	}
	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level %q is not supported", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("log.format %q is not supported", c.Log.Format))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("catalog.public_api_url", "CATALOG_PUBLIC_API_URL", "PUBLIC_API_URL")
	_ = v.BindEnv("catalog.api_url", "CATALOG_API_URL", "API_URL")
	_ = v.BindEnv("server.port", "SERVER_PORT", "PORT")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "")
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.shutdown_timeout", 10)

	v.SetDefault("catalog.public_api_url", "")
	v.SetDefault("catalog.api_url", "")
	v.SetDefault("catalog.timeout", 10)
	v.SetDefault("catalog.revalidate", 60)
	v.SetDefault("catalog.max_requests_per_second", 0)
	v.SetDefault("catalog.list_limit", 1000)
	v.SetDefault("catalog.probe_on_start", true)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.database", 0)
	v.SetDefault("redis.key_prefix", "storefront:catalog:")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}
