package gateway

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cosmossdk.io/log"
	"github.com/armon/go-metrics"
	metricsprom "github.com/armon/go-metrics/prometheus"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/polypuls3/polypulse/config"
	"github.com/polypuls3/polypulse/query"
	"github.com/polypuls3/polypulse/types"
)

const defaultShutdownTimeout = 5 * time.Second

// Server serves the query service over HTTP
type Server struct {
	logger log.Logger
	server *http.Server
}

// NewRouter returns the router with all read routes and, if a registry is given, the /metrics route
func NewRouter(logger log.Logger, svc *query.Service, registry *prometheus.Registry) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger(logger))
	RegisterRoutes(svc, r)

	if registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet).Name("metrics")
	}

	return r
}

// NewMetrics routes go-metrics through a prometheus sink registered with the returned registry
func NewMetrics() (*prometheus.Registry, error) {
	registry := prometheus.NewRegistry()

	sink, err := metricsprom.NewPrometheusSinkFrom(metricsprom.PrometheusOpts{Registerer: registry})
	if err != nil {
		return nil, err
	}

	cfg := metrics.DefaultConfig(types.ModuleName)
	cfg.EnableHostname = false
	cfg.EnableRuntimeMetrics = false
	cfg.EnableServiceLabel = false
	cfg.EnableHostnameLabel = false
	if _, err := metrics.NewGlobal(cfg, sink); err != nil {
		return nil, err
	}

	return registry, nil
}

// NewServer returns a new Server instance
func NewServer(logger log.Logger, cfg config.GatewayConfig, svc *query.Service) (*Server, error) {
	logger = logger.With("component", "gateway")

	var registry *prometheus.Registry
	if cfg.Metrics {
		var err error
		if registry, err = NewMetrics(); err != nil {
			return nil, err
		}
	}

	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:         cfg.ListenAddr,
			Handler:      NewRouter(logger, svc, registry),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}, nil
}

// ListenAndServe serves requests until ctx is done and then shuts the server down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("gateway listening", "addr", s.server.Addr)
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down gateway")
		timeout := s.server.WriteTimeout
		if timeout <= 0 {
			timeout = defaultShutdownTimeout
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := s.server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	}
}
