package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"focus-assistant/api/internal/metrics"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const RequestIDHeader = "X-Request-ID"

// NewMux returns a mux with /healthz and /metrics already mounted.
func NewMux(healthzBody string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(healthzBody))
	})
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// Wrap applies CORS, request ids and access logging around h.
func Wrap(h http.Handler, origins []string, log *zap.Logger) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})
	return withRequestLog(c.Handler(h), log)
}

func withRequestLog(next http.Handler, log *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, rid)

		m := httpsnoop.CaptureMetrics(next, w, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(m.Code)).Inc()
		log.Info("http request",
			zap.String("request_id", rid),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", m.Code),
			zap.Int64("bytes", m.Written),
			zap.Duration("duration", m.Duration),
		)
	})
}

const (
	minWriteTimeout = 2 * time.Minute
	writeMargin     = 30 * time.Second
)

// New builds the server. modelTimeout bounds the slowest handler, so the
// write deadline always leaves room to send the fallback after it expires.
func New(addr string, h http.Handler, modelTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      writeTimeout(modelTimeout),
		IdleTimeout:       2 * time.Minute,
	}
}

func writeTimeout(modelTimeout time.Duration) time.Duration {
	return max(minWriteTimeout, modelTimeout+writeMargin)
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context, srv *http.Server, log *zap.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		log.Info("shutting down", zap.String("addr", srv.Addr))
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
