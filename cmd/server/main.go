package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mbenaiss/whatsapp-helpdesk/api"
	"github.com/mbenaiss/whatsapp-helpdesk/config"
	"github.com/mbenaiss/whatsapp-helpdesk/db"
	"github.com/mbenaiss/whatsapp-helpdesk/logger"
	"github.com/mbenaiss/whatsapp-helpdesk/metrics"
	"github.com/mbenaiss/whatsapp-helpdesk/services"
	"github.com/mbenaiss/whatsapp-helpdesk/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logg.Sync()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		logg.Fatalw("Failed to initialize session store", "store", cfg.SessionStore, "error", err)
	}
	defer store.Close()

	m := metrics.New()
	sessions := session.NewManager(store, cfg.DefaultLanguage, logg)
	service := services.NewService(sessions, m, logg)

	go expireSessions(ctx, sessions, cfg.SessionMaxAge, logg)

	apiServer, err := api.NewServer(service, m, logg, api.Options{
		Port:          cfg.Port,
		SessionSecret: cfg.SessionSecret,
		SessionMaxAge: cfg.SessionMaxAge,
	})
	if err != nil {
		logg.Fatalw("Failed to create HTTP server", "error", err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logg.Info("shutting down...")
		stop()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := apiServer.Stop(ctx); err != nil {
			logg.Errorw("HTTP server shutdown error", "error", err)
		}

		logg.Info("Server gracefully stopped")
	}()

	logg.Infow("Helpdesk dashboard starting", "port", cfg.Port, "store", cfg.SessionStore)
	if err := apiServer.Start(); err != nil && err != http.ErrServerClosed {
		logg.Fatalw("HTTP server error", "error", err)
	}
}

// openStore returns the configured session store
func openStore(ctx context.Context, cfg config.Config) (session.Store, error) {
	if cfg.SessionStore == config.StoreSQLite {
		return db.NewDB(ctx, cfg.SQLiteDSN)
	}
	return session.NewMemoryStore(), nil
}

// expireSessions drops sessions idle for longer than maxAge, whatever the store
func expireSessions(ctx context.Context, sessions *session.Manager, maxAge time.Duration, logg *zap.SugaredLogger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := sessions.Expire(ctx, time.Now().Add(-maxAge)); err != nil {
				logg.Warnw("Failed to expire sessions", "error", err)
			}
		}
	}
}
