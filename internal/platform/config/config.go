package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config is the service configuration. Every field can be set through the
// upper-cased environment variable of its koanf key (e.g. STORAGE_BACKEND).
// Empty variables count as unset.
type Config struct {
	Port           string `koanf:"port" validate:"required"`
	StorageBackend string `koanf:"storage_backend" validate:"oneof=memory postgres"`
	// DatabaseURL is required when StorageBackend is postgres.
	DatabaseURL string `koanf:"database_url" validate:"required_if=StorageBackend postgres"`

	// TasksDir, when set, is a directory of task manifests imported at startup.
	TasksDir string `koanf:"tasks_dir"`

	Branding          string `koanf:"branding" validate:"oneof=okd openshift ocp online dedicated azure rosa"`
	CustomProductName string `koanf:"custom_product_name"`
	CustomLogosFile   string `koanf:"custom_logos_file"`

	CatalogCacheSize int `koanf:"catalog_cache_size" validate:"gte=0"`

	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn error"`
	LogJSON  bool   `koanf:"log_json"`

	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// Default returns the configuration used when no environment overrides are set.
func Default() Config {
	return Config{
		Port:             "8080",
		StorageBackend:   "memory",
		Branding:         "okd",
		CatalogCacheSize: 128,
		LogLevel:         "info",
		ShutdownTimeout:  10 * time.Second,
	}
}

var envKeys = map[string]string{
	"PORT":                "port",
	"STORAGE_BACKEND":     "storage_backend",
	"DATABASE_URL":        "database_url",
	"TASKS_DIR":           "tasks_dir",
	"BRANDING":            "branding",
	"CUSTOM_PRODUCT_NAME": "custom_product_name",
	"CUSTOM_LOGOS_FILE":   "custom_logos_file",
	"CATALOG_CACHE_SIZE":  "catalog_cache_size",
	"LOG_LEVEL":           "log_level",
	"LOG_JSON":            "log_json",
	"SHUTDOWN_TIMEOUT":    "shutdown_timeout",
}

// Load builds the configuration from defaults overlaid with the environment
// and validates the result.
func Load() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			path, ok := envKeys[key]
			value = strings.TrimSpace(value)
			if !ok || value == "" {
				return "", nil
			}
			return path, value
		},
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New()

func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
