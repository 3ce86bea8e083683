// Package main is the entry point for the items API server.
//
// The server exposes a small CRUD surface over an in-memory item store,
// with per-request correlation ids, Prometheus metrics, and one JSON
// access-log line per request.
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	./server -port 8000
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
