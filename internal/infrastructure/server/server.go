// Package server wires configuration, logging, metrics, middleware, and
// routes into a runnable HTTP server.
package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	api "github.com/opsdemo/items-api/internal/api/http"
	"github.com/opsdemo/items-api/internal/api/middleware"
	"github.com/opsdemo/items-api/internal/domain/item"
	"github.com/opsdemo/items-api/internal/infrastructure/config"
	"github.com/opsdemo/items-api/internal/infrastructure/logging"
	"github.com/opsdemo/items-api/internal/infrastructure/monitoring"
	"github.com/opsdemo/items-api/internal/shared/id"
)

// Server wraps the HTTP router and dependencies
type Server struct {
	router  *gin.Engine
	store   *item.Store
	logger  *logging.Logger
	config  *config.Config
	metrics *monitoring.Metrics
}

// New creates a new server instance
func New(cfg *config.Config) (*Server, error) {
	// Initialize logger
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing items API",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port),
	)

	metrics := monitoring.NewMetrics()
	store := item.NewStore()
	resolver := id.NewResolver()

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// The request-context middleware runs outermost so it observes the
	// final status of every request; Recovery sits inside it and turns
	// handler panics into 500s before that observation happens.
	router.Use(monitoring.Middleware(metrics, logger, resolver))
	router.Use(gin.Recovery())
	if cfg.CORS.Enabled {
		router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	}
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := api.NewHandlers(store)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/items", handlers.ListItems)
	router.POST("/items", handlers.CreateItem)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router:  router,
		store:   store,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
	}, nil
}

// Router exposes the gin engine, primarily for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")
	s.logger.Sync()
	return nil
}
