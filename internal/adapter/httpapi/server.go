// Package httpapi exposes the traffic API over HTTP using gin, plus the
// operational health, readiness, and metrics endpoints.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wraps the gin engine in an http.Server with sane timeouts.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates the HTTP server and registers all routes.
func NewServer(addr string, api *API, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())
	engine.Use(metricsMiddleware(api.metrics))

	registerRoutes(engine, api)

	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      engine,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func registerRoutes(engine *gin.Engine, api *API) {
	engine.GET("/", api.handleRoot)
	engine.GET("/healthz", handleLiveness)
	engine.GET("/readyz", api.handleReadiness)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	traffic := engine.Group("/traffic")
	{
		traffic.POST("/data", api.handleSubmit)
		traffic.DELETE("/data", api.handleClear)
		traffic.GET("/data/recent", api.handleRecent)
		traffic.POST("/data/seed", api.handleSeed)

		traffic.POST("/score", api.handleScore)
		traffic.POST("/optimize-route", api.handleOptimizeRoute)
		traffic.POST("/smart-routes", api.handleSmartRoutes)

		traffic.GET("/density", api.handleDensity)
		traffic.GET("/events", api.handleEvents)
		traffic.GET("/report-summary", api.handleReportSummary)
		traffic.GET("/analytics", api.handleAnalytics)
		traffic.GET("/debug/route-summary", api.handleDebugRouteSummary)
		traffic.GET("/health", api.handleHealth)
	}
}

func handleLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
