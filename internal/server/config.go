package server

import (
	"fmt"

	"github.com/charmbracelet/log"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Cache backends.
const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
	CacheBackendNone  = "none"
)

// Config represents the service configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Symbols SymbolsConfig     `yaml:"symbols"`
	Mongo   MongoConfig       `yaml:"mongo"`
	Cache   CacheConfig       `yaml:"cache"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Mongo.Validate(); err != nil {
		return err
	}
	if c.Mongo.URI == "" {
		if err := c.Symbols.Validate(); err != nil {
			return err
		}
	}
	return c.Cache.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel string     `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
	); err != nil {
		return err
	}
	return c.HTTP.Validate()
}

// Level returns the parsed log level, defaulting to info.
func (c *ApplicationConfig) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// SymbolsConfig points at the directory of symbol files.
// Watch reloads the registry when files under Dir change.
type SymbolsConfig struct {
	Dir   string `yaml:"dir"`
	Watch bool   `yaml:"watch"`
}

// Validate validates the symbols configuration.
func (c *SymbolsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required),
	)
}

// MongoConfig selects a MongoDB collection as the symbol source. When URI is
// empty symbols are read from [SymbolsConfig.Dir].
type MongoConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

// Validate validates the MongoDB configuration.
func (c *MongoConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Database, validation.When(c.URI != "", validation.Required)),
	)
}

// CacheConfig selects where rendered artifacts are cached.
type CacheConfig struct {
	Backend   string `yaml:"backend"`
	Dir       string `yaml:"dir"` // file backend; empty means the user cache dir
	RedisAddr string `yaml:"redis_addr"`
	KeyPrefix string `yaml:"key_prefix"` // redis backend; scopes keys per deployment
}

// Validate validates the cache configuration.
func (c *CacheConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Backend, validation.Required,
			validation.In(CacheBackendFile, CacheBackendRedis, CacheBackendNone)),
		validation.Field(&c.RedisAddr, validation.When(c.Backend == CacheBackendRedis, validation.Required)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: "info",
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Symbols: SymbolsConfig{
			Dir:   "./symbols",
			Watch: true,
		},
		Mongo: MongoConfig{
			Collection: "symbols",
		},
		Cache: CacheConfig{
			Backend:   CacheBackendFile,
			KeyPrefix: "sigil:",
		},
	}
}
