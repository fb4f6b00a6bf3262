package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	pkgconfig "github.com/matzehuels/sigil/pkg/config"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := NewDefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"bad port", func(c *Config) { c.App.HTTP.Port = 70000 }, true},
		{"bad log level", func(c *Config) { c.App.LogLevel = "loud" }, true},
		{"no symbols dir", func(c *Config) { c.Symbols.Dir = "" }, true},
		{"mongo replaces dir", func(c *Config) {
			c.Symbols.Dir = ""
			c.Mongo.URI = "mongodb://localhost:27017"
			c.Mongo.Database = "sigil"
		}, false},
		{"mongo needs database", func(c *Config) { c.Mongo.URI = "mongodb://localhost:27017" }, true},
		{"redis needs addr", func(c *Config) { c.Cache.Backend = CacheBackendRedis }, true},
		{"redis with addr", func(c *Config) {
			c.Cache.Backend = CacheBackendRedis
			c.Cache.RedisAddr = "localhost:6379"
		}, false},
		{"unknown backend", func(c *Config) { c.Cache.Backend = "memcached" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv("SIGIL_TEST_PORT", "9090")
	path := filepath.Join(t.TempDir(), "sigil.yaml")
	data := `
app:
  log_level: debug
  http:
    port: ${SIGIL_TEST_PORT}
symbols:
  dir: ./shapes
  watch: false
cache:
  backend: none
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewDefaultConfig()
	if err := pkgconfig.Load(path, cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.HTTP.Address() != ":9090" {
		t.Errorf("Address() = %q, want :9090", cfg.App.HTTP.Address())
	}
	if cfg.App.Level() != log.DebugLevel {
		t.Errorf("Level() = %v, want debug", cfg.App.Level())
	}
	if cfg.Symbols.Dir != "./shapes" || cfg.Symbols.Watch {
		t.Errorf("Symbols = %+v", cfg.Symbols)
	}
	if cfg.Cache.Backend != CacheBackendNone {
		t.Errorf("Cache.Backend = %q", cfg.Cache.Backend)
	}
}

func TestExampleConfig(t *testing.T) {
	t.Setenv("SIGIL_LOG_LEVEL", "warn")

	cfg := NewDefaultConfig()
	if err := pkgconfig.Load(filepath.Join("..", "..", "examples", "sigil.yaml"), cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Level() != log.WarnLevel {
		t.Errorf("Level() = %v, want warn", cfg.App.Level())
	}
	if cfg.Cache.Backend != CacheBackendFile || !cfg.Symbols.Watch {
		t.Errorf("cfg = %+v", cfg)
	}
}
