// Package pkg provides shared utilities for the rmk keyboard firmware core.
//
// This package contains common functionality used across the report
// processing, keymap, and persistence packages, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error types for configuration and storage errors
//   - Component identifiers for log filtering
//
// The package is designed to have zero external dependencies, relying
// only on the Go standard library.
//
// # Logging
//
// The logging subsystem wraps [log/slog] with firmware-specific context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentVial, "combo updated", "slot", 3)
//
// # Errors
//
// Common errors are defined as sentinel values:
//
//	if errors.Is(err, pkg.ErrSlotOutOfRange) {
//	    // Handle invalid flash slot
//	}
package pkg
