// Package config loads the service configuration from an optional YAML file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"blog/utils"
)

// Storage modes.
const (
	StorageInMemory = "inmemory"
	StorageMongo    = "mongo"
	StorageCached   = "cached"
)

// Config represents the application configuration.
type Config struct {
	App     AppConfig     `yaml:"app"`
	Storage StorageConfig `yaml:"storage"`
}

// AppConfig holds process level settings.
type AppConfig struct {
	LogLevel string     `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c HTTPConfig) Address() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

// StorageConfig selects and configures the API post store.
type StorageConfig struct {
	Mode  string      `yaml:"mode"`
	Mongo MongoConfig `yaml:"mongo"`
	Redis RedisConfig `yaml:"redis"`
}

type MongoConfig struct {
	URL    string `yaml:"url"`
	DBName string `yaml:"db_name"`
}

// RedisConfig configures the post cache. BrokerURL, when set, enables
// asynchronous cache refresh tasks.
type RedisConfig struct {
	URL       string        `yaml:"url"`
	TTL       time.Duration `yaml:"ttl"`
	BrokerURL string        `yaml:"broker_url"`
}

// NewDefaultConfig returns the configuration used when nothing is overridden.
func NewDefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			LogLevel: "info",
			HTTP:     HTTPConfig{Port: 5000},
		},
		Storage: StorageConfig{
			Mode: StorageInMemory,
			Mongo: MongoConfig{
				URL:    "mongodb://localhost:27017",
				DBName: "blog",
			},
			Redis: RedisConfig{
				TTL: time.Hour,
			},
		},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.App,
		validation.Field(&c.App.LogLevel, validation.Required, validation.In("debug", "info", "warn", "error")),
	); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if err := validation.ValidateStruct(&c.App.HTTP,
		validation.Field(&c.App.HTTP.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	); err != nil {
		return fmt.Errorf("http: %w", err)
	}
	return c.Storage.Validate()
}

// Validate validates the storage configuration.
func (c *StorageConfig) Validate() error {
	persistent := c.Mode == StorageMongo || c.Mode == StorageCached
	cached := c.Mode == StorageCached
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(StorageInMemory, StorageMongo, StorageCached)),
	); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := validation.ValidateStruct(&c.Mongo,
		validation.Field(&c.Mongo.URL, validation.When(persistent, validation.Required)),
		validation.Field(&c.Mongo.DBName, validation.When(persistent, validation.Required)),
	); err != nil {
		return fmt.Errorf("mongo: %w", err)
	}
	if err := validation.ValidateStruct(&c.Redis,
		validation.Field(&c.Redis.URL, validation.When(cached, validation.Required)),
		validation.Field(&c.Redis.TTL, validation.Min(time.Duration(0))),
	); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	return nil
}

// Load reads the YAML file at filename, if any, over the defaults, applies
// environment overrides and validates the result. Environment references in
// the file are expanded. A missing file is not an error.
func Load(filename string) (*Config, error) {
	cfg := NewDefaultConfig()
	if filename != "" {
		data, err := os.ReadFile(filename)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
		default:
			if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
			}
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	utils.OverrideString(&c.App.LogLevel, "LOG_LEVEL")
	if err := utils.OverrideInt(&c.App.HTTP.Port, "PORT"); err != nil {
		return err
	}
	utils.OverrideString(&c.Storage.Mode, "STORAGE_MODE")
	utils.OverrideString(&c.Storage.Mongo.URL, "MONGO_URL")
	utils.OverrideString(&c.Storage.Mongo.DBName, "MONGO_DBNAME")
	utils.OverrideString(&c.Storage.Redis.URL, "REDIS_URL")
	utils.OverrideString(&c.Storage.Redis.BrokerURL, "BROKER_URL")
	return utils.OverrideDuration(&c.Storage.Redis.TTL, "CACHE_TTL")
}
