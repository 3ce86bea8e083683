// Package logging provides structured logging using uber/zap.
//
// Two modes are supported:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// The per-request access log emitted by the monitoring middleware goes
// through this package, so in production every request produces exactly
// one JSON line on stdout.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("Server starting", zap.String("port", "8000"))
//	logger.Error("Failed to bind", zap.Error(err))
package logging
