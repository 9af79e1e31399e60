package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"

	"github.com/ling-4j/prosperpath/internal/auth"
	"github.com/ling-4j/prosperpath/internal/budget"
	"github.com/ling-4j/prosperpath/internal/config"
	"github.com/ling-4j/prosperpath/internal/events"
	"github.com/ling-4j/prosperpath/internal/importer"
	"github.com/ling-4j/prosperpath/internal/metrics"
	"github.com/ling-4j/prosperpath/internal/service"
	"github.com/ling-4j/prosperpath/internal/settlement"
	"github.com/ling-4j/prosperpath/internal/storage/sqlite"
	"github.com/ling-4j/prosperpath/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel)

	loc := cfg.Location()
	store, err := sqlite.New(cfg.DBPath, sqlite.WithLocation(loc))
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath, "timezone", loc.String())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	notifierOpts := []budget.Option{budget.WithMetrics(m)}
	if cfg.AMQPURL != "" {
		publisher, err := events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			return fmt.Errorf("failed to connect to AMQP: %w", err)
		}
		defer publisher.Close()
		notifierOpts = append(notifierOpts, budget.WithPublisher(publisher))
		slog.Info("Publishing budget events", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	}
	notifier := budget.NewNotifier(store, notifierOpts...)

	var sheets service.RowSource
	if cfg.SheetsEnabled() {
		src, err := newSheetsSource(context.Background(), cfg)
		if err != nil {
			return fmt.Errorf("failed to create sheets client: %w", err)
		}
		sheets = src
		slog.Info("Google Sheets import enabled")
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	budgets := service.NewBudgetService(store, notifier, loc)
	services := &service.Services{
		Auth:   service.NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager, store),
		Events: service.NewEventService(store, settlement.NewEngine(store, m)),
		Budget: budgets,
		Import: service.NewImportService(importer.NewParser(loc, m), budgets, sheets),
	}

	mux := http.NewServeMux()
	services.Register(mux, jwtManager, m)
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// h2c serves HTTP/2 without TLS for Connect clients.
	handler := h2c.NewHandler(loggingMiddleware(corsMiddleware(mux)), &http2.Server{})
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Connect server starting", "address", srv.Addr, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutting down", "timeout", cfg.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newSheetsSource(ctx context.Context, cfg *config.Config) (*importer.SheetsSource, error) {
	if cfg.GoogleServiceAccountJSON != "" {
		return importer.NewSheetsSourceFromCredentials(ctx, []byte(cfg.GoogleServiceAccountJSON))
	}
	return importer.NewSheetsSource(ctx, option.WithCredentialsFile(cfg.GoogleServiceAccountFile))
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
