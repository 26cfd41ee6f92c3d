package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"englishkaku/internal/api"
	"englishkaku/internal/auth"
	"englishkaku/internal/config"
	"englishkaku/internal/events"
	"englishkaku/internal/history"
	"englishkaku/internal/notes"
	"englishkaku/internal/pdf"
	"englishkaku/internal/render"
	"englishkaku/pkg/database"
)

func main() {
	cfgPath := flag.String("config", "", "path to YAML config (optional)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := buildLogger(cfg.Logging.Level)
	defer logger.Sync()

	dbPath := cfg.Server.DBPath
	if dbPath == "" {
		dbPath = database.DefaultPath()
	}
	db, err := database.Open(dbPath)
	if err != nil {
		logger.Fatal("open db", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Fatal("db migrate failed", zap.Error(err))
	}

	renderer, err := render.New(render.Options{
		Banner:         cfg.Sheet.Banner,
		Footer:         cfg.Sheet.Footer,
		SentenceTable:  cfg.Sheet.SentenceTableEnabled(),
		TrustedMessage: cfg.Sheet.TrustedMessage,
	})
	if err != nil {
		logger.Fatal("build renderer", zap.Error(err))
	}

	engine := pdf.NewChrome(cfg.Browser.Bin)
	defer engine.Close()

	hub := events.NewHub()
	tokens := auth.TokenService{
		Secret:   []byte(cfg.Auth.Secret),
		Issuer:   cfg.Auth.Issuer,
		Duration: cfg.Auth.TTL(),
	}

	handler := &api.Handler{
		Resolver: notes.Resolver{DefaultTitle: cfg.Sheet.DefaultTitle},
		Stamp:    notes.NewStamp(cfg.Sheet.TZOffsetHours, cfg.Sheet.TZLabel),
		Renderer: renderer,
		Engine:   engine,
		History:  history.NewRepo(db),
		Events:   hub,
		Log:      logger,
	}

	router := gin.Default()
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.GET("/", api.Usage)
	router.GET("/ws", events.WSHandler(hub, logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "message": "API is running"})
	})

	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "not_ready",
				"db_error":   err.Error(),
				"ws_clients": hub.Count(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":     "ready",
			"db":         "ok",
			"ws_clients": hub.Count(),
		})
	})

	// Convert endpoints; protected only when a secret is configured
	converts := router.Group("/")
	converts.Use(auth.Middleware(tokens))
	handler.RegisterRoutes(converts)

	historyHandler := history.NewHandler(history.NewRepo(db))
	historyHandler.RegisterRoutes(router.Group("/history"))

	httpSrv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP API server listening", zap.String("addr", cfg.Server.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", zap.Error(err))
	}
	if err := engine.Close(); err != nil {
		logger.Error("browser shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func buildLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zc.Build()
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	return logger
}
