package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"menu-sync/core/database"
	"menu-sync/core/logger"
	"menu-sync/core/server"
	"menu-sync/core/settings"
	"menu-sync/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the whole service configuration, one section per package.
type Config struct {
	Server   server.Config   `mapstructure:"server"`
	Storage  storage.Config  `mapstructure:"storage"`
	Log      logger.Config   `mapstructure:"log"`
	Database database.Config `mapstructure:"database"`
	// Sync seeds the sync settings and configures audit retention and snapshots.
	Sync settings.Config `mapstructure:"sync"`
}

// Validate rejects values that would only fail later, deep inside a command.
// The seeded sync settings are validated against the tenant directory by the settings store.
func (c *Config) Validate() error {
	var errs []error
	switch c.Database.Driver {
	case database.DriverMySQL, database.DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("database.driver: unsupported driver %q", c.Database.Driver))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format: must be json or console, got %q", c.Log.Format))
	}
	if c.Sync.LogRetentionDays < 1 {
		errs = append(errs, fmt.Errorf("sync.log_retention_days: must be at least 1, got %d", c.Sync.LogRetentionDays))
	}
	if strings.Trim(c.Sync.SnapshotPrefix, "/") == "" {
		errs = append(errs, errors.New("sync.snapshot_prefix: must not be empty"))
	}
	if _, err := c.Sync.Seed(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LoadConfig reads path/config.yaml (optional), path/.env and the environment, later sources
// winning, then validates the result.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Deployments without a .env file configure through the environment only.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// Map environment variables to nested keys (e.g. SYNC_CONFLICT_STRATEGY -> sync.conflict_strategy)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

// bindValues registers every mapstructure key with its default tag, so AutomaticEnv can
// resolve nested keys that no config file mentions.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
