package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/umath/internal/api/middleware"
	"github.com/GriffinCanCode/umath/internal/config"
	handlers "github.com/GriffinCanCode/umath/internal/http"
	"github.com/GriffinCanCode/umath/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/umath/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/umath/internal/logging"
	mathProvider "github.com/GriffinCanCode/umath/internal/providers/math"
	"github.com/GriffinCanCode/umath/internal/providers/math/advanced"
	"github.com/GriffinCanCode/umath/internal/service"
	"github.com/GriffinCanCode/umath/internal/ws"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	http     *http.Server
	registry *service.Registry
	metrics  *monitoring.Metrics
	tracer   *tracing.Tracer
	logger   *logging.Logger
	config   *config.Config
}

// NewServer creates a new server instance. A nil logger is built from cfg.
func NewServer(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = logging.NewFromSettings(cfg.Logging.Level, cfg.Logging.Development)
	}

	logger.Info("Initializing umath server",
		zap.String("addr", cfg.Addr()),
		zap.Bool("metrics", cfg.Metrics.Enabled),
	)

	metrics := monitoring.NewMetrics(nil)
	tracer := tracing.New("umath", logger.Logger)

	registry := service.NewRegistry().
		WithMetrics(metrics).
		WithTracer(tracer).
		WithLogger(logger)
	if err := registerProviders(registry, cfg); err != nil {
		tracer.Close()
		return nil, err
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(tracing.HTTPMiddleware(tracer))
	if cfg.Metrics.Enabled {
		router.Use(monitoring.Middleware(metrics))
	}
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rl.Burst = cfg.RateLimit.Burst
		rl.OnLimited = func(*gin.Context) { metrics.RecordRateLimited() }
		router.Use(middleware.RateLimit(rl))
	}

	h := handlers.NewHandlers(registry, metrics, logger)
	wsHandler := ws.NewHandler(registry, logger)

	router.GET("/", h.Root)
	router.GET("/health", h.Health)

	router.GET("/services", h.ListServices)
	router.POST("/services/discover", h.DiscoverServices)
	router.POST("/services/execute", h.ExecuteService)

	router.GET("/stream", wsHandler.HandleConnection)

	if cfg.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	logger.Info("Server initialized successfully")

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    cfg.Addr(),
			Handler: router,
		},
		registry: registry,
		metrics:  metrics,
		tracer:   tracer,
		logger:   logger,
		config:   cfg,
	}, nil
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Registry returns the service registry backing the API
func (s *Server) Registry() *service.Registry {
	return s.registry
}

// Run starts the HTTP server and blocks until it stops. A clean Shutdown
// returns nil.
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones, bounded by
// the configured shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down server...")
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}

// Close releases the tracer and flushes the logger
func (s *Server) Close() error {
	s.tracer.Close()
	// stdout sync fails on some platforms; nothing useful to do about it
	_ = s.logger.Sync()
	return nil
}

func registerProviders(registry *service.Registry, cfg *config.Config) error {
	opts := advanced.DefaultOptions()
	opts.DerivativeStep = cfg.Calculus.DerivativeStep
	opts.IntegrationSteps = cfg.Calculus.IntegrationSteps
	opts.MaxIntegrationSteps = cfg.Calculus.MaxIntegrationSteps
	opts.Expression.Timeout = cfg.Calculus.ExpressionTimeout

	if err := registry.Register(mathProvider.NewProvider(opts)); err != nil {
		return fmt.Errorf("failed to register math provider: %w", err)
	}
	return nil
}
