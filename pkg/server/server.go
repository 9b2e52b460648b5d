package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mrhapile/fish-health-diagnoser/pkg/config"
	"github.com/mrhapile/fish-health-diagnoser/pkg/metrics"
	"go.uber.org/zap"
)

// Server exposes a Predictor over HTTP.
type Server struct {
	cfg       config.ServerConfig
	predictor Predictor
	log       *zap.Logger
	metrics   *metrics.Recorder
	handler   *gin.Engine
}

func New(cfg config.ServerConfig, predictor Predictor, log *zap.Logger, recorder *metrics.Recorder) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if recorder == nil {
		recorder = metrics.NewRecorder()
	}
	s := &Server{
		cfg:       cfg,
		predictor: predictor,
		log:       log,
		metrics:   recorder,
	}
	s.handler = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(requestID(), accessLog(s.log), recovery(s.log), corsMiddleware(s.cfg.AllowedOrigins))

	api := r.Group(s.cfg.APIPrefix)
	{
		api.GET("/health", s.handleHealth)
		api.POST("/predict", s.handlePredict)
		api.GET("/symptoms", s.handleSymptoms)
		api.GET("/diseases", s.handleDiseases)
	}

	if s.cfg.EnableMetrics {
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	})
	return r
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is cancelled, then shuts down gracefully within the
// configured timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		s.log.Info("starting HTTP server",
			zap.String("addr", srv.Addr),
			zap.String("api_prefix", s.cfg.APIPrefix),
			zap.String("model_type", s.predictor.ModelType()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.log.Info("shutting down HTTP server")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	<-errCh
	s.log.Info("HTTP server stopped gracefully")
	return nil
}
