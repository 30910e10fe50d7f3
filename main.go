package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/littlelemon/restaurant-api/config"
	"github.com/littlelemon/restaurant-api/database"
	"github.com/littlelemon/restaurant-api/models"
	"github.com/littlelemon/restaurant-api/repository"
	"github.com/littlelemon/restaurant-api/router"
	"github.com/littlelemon/restaurant-api/utils"
)

func main() {
	cfg, err := config.LoadConfig()
	if cfg == nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	utils.InitLogger(cfg.LogLevel)
	if err != nil {
		utils.ErrorLogger.Printf("Warning: %v", err)
	}

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	stores, err := openStores(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open storage: %v", err)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.SetupRouter(cfg, stores),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		utils.InfoLogger.Printf("Listening on port %s (storage: %s)", cfg.Port, cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.InfoLogger.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.ErrorLogger.Printf("Forced shutdown: %v", err)
	}
}

// openStores picks the gateways for the configured driver, migrating the
// schema when a database is used.
func openStores(cfg *config.Config) (router.Stores, error) {
	if cfg.DBDriver == config.DriverMemory {
		return router.Stores{
			MenuItems: repository.NewMemoryStore[models.MenuItem](),
			Bookings:  repository.NewMemoryStore[models.Booking](),
		}, nil
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		return router.Stores{}, err
	}
	if err := database.Migrate(db); err != nil {
		return router.Stores{}, err
	}

	return router.Stores{
		MenuItems: repository.NewGormStore[models.MenuItem](db),
		Bookings:  repository.NewGormStore[models.Booking](db),
	}, nil
}
