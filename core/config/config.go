package config

import (
	"fmt"
	"reflect"
	"strings"

	"catalog-builder/core/database"
	"catalog-builder/core/design"
	"catalog-builder/core/export"
	"catalog-builder/core/logger"
	"catalog-builder/core/records"
	"catalog-builder/core/server"
	"catalog-builder/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations owned by each package.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (MinIO or S3).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the optional database connection.
	Database database.Config `mapstructure:"database"`
	// Design holds configuration for the design service.
	Design design.Config `mapstructure:"design"`
	// Records holds configuration for the product record source.
	Records records.Config `mapstructure:"records"`
	// Export holds configuration for catalog exports.
	Export export.Config `mapstructure:"export"`
}

// LoadConfig loads configuration from environment variables and the .env file in path.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// A missing .env is normal in production.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// RECORDS_KEY_COLUMN -> records.key_column
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks settings that would otherwise fail late at request time.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if !c.Records.IsValidSource() {
		return fmt.Errorf("invalid records source %q", c.Records.Source)
	}
	if c.Records.Source == records.SourceDatabase && !c.Database.Enabled {
		return fmt.Errorf("records source %q requires database.enabled", records.SourceDatabase)
	}
	if c.Export.Concurrency < 1 {
		return fmt.Errorf("export concurrency must be at least 1, got %d", c.Export.Concurrency)
	}
	return nil
}

// bindValues walks the struct and registers every 'mapstructure' key in Viper
// with the value of its 'default' tag.
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

		// Empty defaults are still set so AutomaticEnv sees the key.
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
