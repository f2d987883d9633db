package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"user-service/internal/api/router"
	"user-service/internal/config"
	"user-service/internal/infrastructure/cache"
	"user-service/internal/infrastructure/database"
	"user-service/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	port    string
	useMock bool
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server exposing the user management API.
By default users are persisted in postgres; with --mock the server runs
against an in-memory store and needs no database.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()
		cfg.Server.Port = serverPort(cfg.Server.Port, cmd.Flags().Changed("port"), port)
		startServer()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringVarP(&port, "port", "p", "8080", "Port for the server to listen on")
	serverCmd.Flags().BoolVar(&useMock, "mock", false, "Use the in-memory user store instead of postgres")
}

// serverPort prefers an explicitly set --port flag over the configured
// value, even when the flag repeats the default.
func serverPort(cfgPort string, flagChanged bool, flagPort string) string {
	if flagChanged {
		return flagPort
	}
	return cfgPort
}

func startServer() {
	cfg := config.Get()

	var db *gorm.DB
	if !useMock {
		var err error
		db, err = database.NewConnection(database.Config{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.Username,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.Name,
			SSLMode:  cfg.Database.SSLMode,
		})
		if err != nil {
			logger.Fatal("Failed to connect to database: %v", err)
		}

		if err := database.RunMigrations(db); err != nil {
			logger.Fatal("Failed to run migrations: %v", err)
		}
	} else {
		logger.Info("Running with in-memory user store")
	}

	var redisCache *cache.RedisCache
	if cfg.Cache.Enabled {
		redisCache = cache.NewRedisCacheWithConfig(&cfg.Cache)

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			logger.Warn("Redis unavailable, idempotent create disabled: %v", err)
			redisCache = nil
		}
		cancel()
	}

	r := router.NewRouter(db, redisCache)

	srv := &http.Server{
		Addr:           ":" + cfg.Server.Port,
		Handler:        r,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Give server 5 seconds to finish current requests
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}
