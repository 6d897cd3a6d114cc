package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFileDefaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "log:\n  level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 60*time.Second, cfg.Catalog.RevalidateWindow())
	assert.Equal(t, 1000, cfg.Catalog.ListLimit)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "storefront:catalog:", cfg.Redis.KeyPrefix)
}

func TestLoadFileValues(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, `
server:
  port: 9090
catalog:
  api_url: " http://catalog.internal:5000/ "
  revalidate: 30
  category_aliases:
    pleated: roller-blinds
redis:
  enabled: true
`))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr())
	assert.Equal(t, "http://catalog.internal:5000/", cfg.Catalog.APIURL)
	assert.Equal(t, 30*time.Second, cfg.Catalog.RevalidateWindow())
	assert.Equal(t, map[string]string{"pleated": "roller-blinds"}, cfg.Catalog.CategoryAliases)
	assert.True(t, cfg.Redis.Enabled)
}

func TestLoadEnvPrecedence(t *testing.T) {
	t.Setenv("PUBLIC_API_URL", "https://api.example.com")
	t.Setenv("API_URL", "http://10.0.0.5:5000")

	cfg, err := LoadFile(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.Catalog.PublicAPIURL)
	assert.Equal(t, "http://10.0.0.5:5000", cfg.Catalog.APIURL)
}

func TestLoadFileMalformed(t *testing.T) {
	_, err := LoadFile(writeConfig(t, "server: [unclosed\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{Port: 8080, ReadTimeout: 1, WriteTimeout: 1},
			Catalog: CatalogConfig{Timeout: 1, Revalidate: 60, ListLimit: 1000},
			Log:     LogConfig{Level: "info", Format: "json"},
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port", func(c *Config) { c.Server.Port = 0 }},
		{"timeout", func(c *Config) { c.Catalog.Timeout = 0 }},
		{"revalidate", func(c *Config) { c.Catalog.Revalidate = -1 }},
		{"rps", func(c *Config) { c.Catalog.MaxRequestsPerSecond = -5 }},
		{"limit", func(c *Config) { c.Catalog.ListLimit = 0 }},
		{"level", func(c *Config) { c.Log.Level = "loud" }},
		{"format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestServerRequestTimeoutStaysBelowWriteTimeout(t *testing.T) {
	tests := []struct {
		write int
		want  time.Duration
	}{
		{30, 27 * time.Second},
		{5, 4500 * time.Millisecond},
		{1, 500 * time.Millisecond},
	}

	for _, tt := range tests {
		s := ServerConfig{WriteTimeout: tt.write}
		got := s.RequestTimeout()
		assert.Equal(t, tt.want, got, "write_timeout=%d", tt.write)
		assert.Less(t, got, time.Duration(tt.write)*time.Second)
	}
}
