// Package config provides configuration management for csv-differ.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults come from the `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Diff: delimiter, output directory and names, atomic writes, duplicate-key policy, publishing
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//
// Environment variables map onto nested keys by replacing the dot with an
// underscore, e.g. DIFF_OUTPUT_DIR sets diff.output_dir.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Diff.Delimiter)
package config
