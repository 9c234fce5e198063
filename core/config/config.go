package config

import (
	"reflect"
	"strings"

	"csv-differ/core/logger"
	"csv-differ/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Diff holds the reconciliation and output settings.
	Diff DiffConfig `mapstructure:"diff"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// DiffConfig controls how inputs are read and outputs are written.
type DiffConfig struct {
	// Delimiter separates fields in inputs and outputs.
	Delimiter string `mapstructure:"delimiter" default:","`
	// OutputDir is the directory the three outputs are written to.
	OutputDir string `mapstructure:"output_dir" default:"."`
	// LeftOutput receives rows only found in the first input.
	LeftOutput string `mapstructure:"left_output" default:"a-b.csv"`
	// RightOutput receives rows only found in the second input.
	RightOutput string `mapstructure:"right_output" default:"b-a.csv"`
	// IntersectOutput receives joined rows for keys in both inputs.
	IntersectOutput string `mapstructure:"intersect_output" default:"intersect.csv"`
	// Atomic writes outputs through temporary files renamed on success.
	Atomic bool `mapstructure:"atomic" default:"false"`
	// Duplicates is the repeated-key policy: last, first or error.
	Duplicates string `mapstructure:"duplicates" default:"last"`
	// Publish uploads the outputs to storage after a successful run.
	Publish bool `mapstructure:"publish" default:"false"`
	// PublishPrefix is the object prefix used when publishing.
	PublishPrefix string `mapstructure:"publish_prefix" default:"csv-differ"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. DIFF_DELIMITER -> diff.delimiter)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
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

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
