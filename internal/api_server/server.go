package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/layoutlab/warehouse-analytics/internal/analytics"
	"github.com/layoutlab/warehouse-analytics/internal/config"
	handlers "github.com/layoutlab/warehouse-analytics/internal/handlers/v1alpha1"
	"github.com/layoutlab/warehouse-analytics/internal/service"
	"github.com/layoutlab/warehouse-analytics/pkg/metrics"
	"github.com/layoutlab/warehouse-analytics/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
)

type Server struct {
	cfg      *config.Config
	listener net.Listener
}

// New returns a new instance of the layout analytics API server.
func New(
	cfg *config.Config,
	listener net.Listener,
) *Server {
	return &Server{
		cfg:      cfg,
		listener: listener,
	}
}

// Router builds the API routes with the full middleware chain.
func (s *Server) Router() (http.Handler, error) {
	router := chi.NewRouter()

	metricMiddleware := metrics.NewMiddleware("api_server")
	if err := metricMiddleware.Register(prometheus.DefaultRegisterer); err != nil {
		return nil, err
	}

	router.Use(
		metricMiddleware.Handler,
		cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.Service.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "HEAD", "OPTIONS"},
			AllowedHeaders: []string{"*"},
			ExposedHeaders: []string{"Content-Disposition", "X-Request-Id"},
			MaxAge:         300,
		}),
		chiMiddleware.RequestID,
		middleware.RequestID,
		middleware.Logger(),
		chiMiddleware.Recoverer,
	)

	engine := analytics.NewEngine(
		analytics.WithImplementationCostPerStore(s.cfg.Analytics.ImplementationCostPerStore),
	)
	analyticsSrv := service.NewAnalyticsService(engine, analytics.Inputs{
		StoreCount:  s.cfg.Analytics.StoreCount,
		DailyOrders: s.cfg.Analytics.DailyOrders,
	})
	handlers.NewServiceHandler(analyticsSrv).RegisterRoutes(router)

	return router, nil
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	router, err := s.Router()
	if err != nil {
		return err
	}
	srv := http.Server{Addr: s.cfg.Service.Address, Handler: router, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
