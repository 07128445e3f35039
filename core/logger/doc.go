// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and narrates the progress of batch runs to the console or as JSON lines.
//
// # Run Correlation
//
// Each invocation of the tool is a distinct run. The WithRunID helper attaches a
// generated run identifier to the logger, ensuring that all logs belonging to a
// single run can be correlated after shipping.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRunID(log)
//	log.Info("Starting sync")
package logger
