// Package middleware provides HTTP middleware for the items API.
//
// Middleware stack includes:
//   - CORS: Cross-origin resource sharing with configurable origins
//   - RateLimit: Per-IP token bucket rate limiting
//
// The request-context middleware (correlation ids, metrics, access log)
// lives in internal/infrastructure/monitoring; it runs outermost.
//
// Example Usage:
//
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
package middleware
