package server

import (
	"context"
	"log/slog"
	"net/http"

	"schedule-service/internal/aggregator"
	"schedule-service/internal/config"
	httpserver "schedule-service/internal/http"
	"schedule-service/internal/http/handlers"
	"schedule-service/internal/http/middleware"
	"schedule-service/internal/metrics"
)

var metricsSetup = metrics.Setup

// Server hosts the schedule endpoint and an optional metrics endpoint.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	aggregator    *aggregator.Aggregator
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with the configured sources wired into the aggregator.
func New(cfg config.Config, logger *slog.Logger) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	agg := aggregator.New(BuildSources(cfg, logger), logger, recorder)
	httpSrv := buildHTTPServer(cfg, agg, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		aggregator:    agg,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildHTTPServer(cfg config.Config, schedule handlers.ScheduleSource, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(schedule, logger)
	router := httpserver.NewRouter(handler)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

// Run starts the HTTP server (and metrics server when enabled), then waits
// for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
