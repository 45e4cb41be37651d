package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/pribylovaa/sort-a-short/internal/catalog"
	"github.com/pribylovaa/sort-a-short/internal/clients/api"
	"github.com/pribylovaa/sort-a-short/internal/clients/transport"
	"github.com/pribylovaa/sort-a-short/internal/config"
	viewhttp "github.com/pribylovaa/sort-a-short/internal/http"
	"github.com/pribylovaa/sort-a-short/internal/metrics"
	"github.com/pribylovaa/sort-a-short/internal/reconciler"
	"github.com/pribylovaa/sort-a-short/internal/service"
	"github.com/pribylovaa/sort-a-short/internal/session"
	"github.com/pribylovaa/sort-a-short/internal/session/file"
	"github.com/pribylovaa/sort-a-short/internal/session/redis"
	"github.com/pribylovaa/sort-a-short/pkg/log"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	lg := setupLogger(cfg.Env)
	slog.SetDefault(lg)
	lg.Info("starting sortashort", slog.String("env", cfg.Env))

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()
	rootCtx = log.Into(rootCtx, lg)

	m := metrics.New()

	store, closeStore, err := newSessionStore(rootCtx, cfg.Session)
	if err != nil {
		lg.Error("session_store_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	upstream := &http.Client{
		Transport: transport.Chain(nil,
			transport.WithMetadata(cfg.API.UserAgent),
			transport.WithLogging(lg),
			transport.WithMetrics(m),
			transport.WithTimeout(cfg.API.Timeout),
		),
	}

	apiClient, err := api.New(cfg.API.BaseURL, store, api.WithHTTPClient(upstream))
	if err != nil {
		lg.Error("api_client_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	cat, err := loadCatalog(rootCtx, cfg, lg)
	if err != nil {
		lg.Error("catalog_load_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	rec := reconciler.New(apiClient, store,
		reconciler.WithKeepStaleHistory(cfg.Reconciler.KeepStaleHistory),
		reconciler.WithLogger(lg),
		reconciler.WithMetrics(m),
	)

	devTools := cfg.Env != envProd
	svc := service.New(apiClient, rec, cat,
		service.WithMaxConcurrency(cfg.Social.MaxConcurrency),
		service.WithDevTools(devTools),
		service.WithMetrics(m),
	)

	// Сбой обновления при старте не фатален: сервис поднимется в Stale.
	startCtx, startCancel := context.WithTimeout(rootCtx, cfg.API.Timeout)
	sv, err := svc.Start(startCtx)
	startCancel()
	if err != nil {
		lg.Error("session_start_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	lg.Info("session_started", slog.String("state", sv.State))

	viewHandler := viewhttp.NewRouter(svc, viewhttp.Options{
		Logger:   lg,
		Timeout:  cfg.Timeouts.Service,
		BasePath: "/v1",
		DevTools: devTools,
	})

	var ready int32 // 0 - не готов; 1 - готов

	opsMux := http.NewServeMux()
	opsMux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	opsMux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if atomic.LoadInt32(&ready) == 1 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}

		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})
	opsMux.Handle("/metrics", m.Handler())

	httpSrv := &http.Server{Addr: cfg.HTTP.Addr(), Handler: viewHandler, ReadHeaderTimeout: 5 * time.Second}
	opsSrv := &http.Server{Addr: cfg.Metrics.Addr(), Handler: opsMux, ReadHeaderTimeout: 5 * time.Second}

	serveErrCh := make(chan error, 2)
	for _, srv := range []*http.Server{httpSrv, opsSrv} {
		ln, err := net.Listen("tcp", srv.Addr)
		if err != nil {
			lg.Error("http_listen_failed", slog.String("addr", srv.Addr), slog.String("err", err.Error()))
			os.Exit(1)
		}

		lg.Info("http_listen_start", slog.String("addr", srv.Addr))

		go func() {
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErrCh <- err
			}
		}()
	}

	atomic.StoreInt32(&ready, 1)
	lg.Info("sortashort_ready")

	select {
	case <-rootCtx.Done():
		lg.Info("shutdown_requested")
	case err := <-serveErrCh:
		lg.Error("http_serve_failed", slog.String("err", err.Error()))
	}

	atomic.StoreInt32(&ready, 0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, srv := range []*http.Server{httpSrv, opsSrv} {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			lg.Warn("http_shutdown_incomplete", slog.String("addr", srv.Addr), slog.String("err", err.Error()))
		}
	}

	lg.Info("service_stopped")
}

// newSessionStore выбирает бэкенд хранилища сессии.
func newSessionStore(ctx context.Context, cfg config.SessionConfig) (session.Store, func(), error) {
	switch cfg.Backend {
	case config.SessionBackendRedis:
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}

		closeFn := func() {
			if err := client.Close(); err != nil {
				log.From(ctx).Warn("redis_close_failed", slog.String("err", err.Error()))
			}
		}

		return redis.New(client, cfg.Key), closeFn, nil
	default:
		path := cfg.Path
		if path == "" {
			p, err := file.DefaultPath(cfg.Key)
			if err != nil {
				return nil, nil, err
			}
			path = p
		}

		log.From(ctx).Info("session_file", slog.String("path", path))

		return file.New(path), func() {}, nil
	}
}

func loadCatalog(ctx context.Context, cfg *config.Config, lg *slog.Logger) (*catalog.Catalog, error) {
	loader := &catalog.Loader{
		HTTP: &http.Client{
			Transport: transport.Chain(nil,
				transport.WithMetadata(cfg.API.UserAgent),
				transport.WithLogging(lg),
			),
			Timeout: cfg.API.Timeout,
		},
	}

	if catalog.NeedsS3(cfg.Catalog) {
		s3, err := catalog.NewS3(cfg.Catalog.S3)
		if err != nil {
			return nil, err
		}
		loader.S3 = s3
	}

	return loader.Load(ctx, cfg.Catalog)
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
