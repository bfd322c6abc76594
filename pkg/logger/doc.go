// Package logger builds configured log/slog loggers with consistent
// formatting across environments.
//
// New applies functional options over production-safe defaults (JSON output
// at INFO level). WithDevelopment and WithProduction bundle the usual
// per-environment settings and stamp every record with the service name.
//
//	log := logger.New(logger.WithDevelopment("qrgen"))
//	log.Info("ready", logger.Component("api"))
//
// The attribute helpers (Error, Component, ...) keep log keys uniform across
// the codebase.
package logger
