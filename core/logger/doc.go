// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for interactive use (console
// encoding, colored levels) or for batch pipelines (JSON encoding).
//
// # Run correlation
//
// Every diff run carries a run id. WithRun attaches it to the logger so
// that all entries written during one run can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRun(log, runID)
//	log.Info("Loaded input", zap.String("path", path))
package logger
