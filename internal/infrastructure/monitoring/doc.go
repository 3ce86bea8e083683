// Package monitoring provides Prometheus metrics and the per-request
// middleware that feeds them.
//
// Two series are exported, both labeled (method, path, status):
//   - http_requests_total: counter
//   - http_request_latency_seconds: histogram
//
// The path label is the matched route template. With no parameterized
// routes in this service the raw path fallback for unmatched routes is a
// known, accepted cardinality risk.
//
// Exposition goes through promhttp against the private registry:
//
//	router.GET("/metrics", gin.WrapH(metrics.Handler()))
package monitoring
