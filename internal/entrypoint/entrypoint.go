// Package entrypoint wires the application together and runs the HTTP server.
package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kiplangat-dev/catholicprayer/internal/config"
	"github.com/kiplangat-dev/catholicprayer/internal/database"
	"github.com/kiplangat-dev/catholicprayer/internal/database/notes"
	"github.com/kiplangat-dev/catholicprayer/internal/database/prayers"
	"github.com/kiplangat-dev/catholicprayer/internal/database/readings"
	"github.com/kiplangat-dev/catholicprayer/internal/database/rosary"
	"github.com/kiplangat-dev/catholicprayer/internal/database/saints"
	"github.com/kiplangat-dev/catholicprayer/internal/database/seed"
	"github.com/kiplangat-dev/catholicprayer/internal/database/settings"
	http_controllers "github.com/kiplangat-dev/catholicprayer/internal/http"
	"github.com/kiplangat-dev/catholicprayer/internal/scheduler"
	"github.com/kiplangat-dev/catholicprayer/internal/services"
	"github.com/kiplangat-dev/catholicprayer/internal/usccb"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts down within the
// configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run initializes the database, seeds the bundled content, wires the service
// layer and serves the API.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting Catholic Prayer v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	if err := seed.NewLoader(db.DB).Run(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fetcher := usccb.NewClient(
		cfg.USCCB.BaseURL,
		cfg.USCCB.ProxyURL,
		cfg.USCCB.DirectTimeout,
		cfg.USCCB.ProxyTimeout,
	)

	settingsRepo := settings.NewRepository(db.DB)
	service := services.NewQueryService(
		prayers.NewRepository(db.DB),
		readings.NewRepository(db.DB),
		saints.NewRepository(db.DB),
		rosary.NewRepository(db.DB),
		notes.NewRepository(db.DB),
		fetcher,
	)

	syncScheduler := scheduler.NewReadingsSyncScheduler(service, settingsRepo, cfg.ReadingsSync)
	if err := syncScheduler.Start(context.Background()); err != nil {
		log.Printf("WARNING: readings sync scheduler not started: %v", err)
	}

	router := http_controllers.NewRouter(service, settingsRepo, db)

	onShutdown := func(ctx context.Context) {
		syncScheduler.Stop()
	}

	Serve(router, cfg, onShutdown)
}
