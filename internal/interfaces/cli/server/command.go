package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"forestdash/internal/infrastructure/config"
	"forestdash/internal/infrastructure/ratelimit"
	httpRouter "forestdash/internal/interfaces/http"
	"forestdash/internal/interfaces/cli/bootstrap"
	sharedConfig "forestdash/internal/shared/config"
	"forestdash/internal/shared/logger"
	"forestdash/internal/shared/version"
)

var (
	env         string
	configPath  string
	autoMigrate bool
	seedOnStart bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the forestry dashboard HTTP API with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Create or update tables from the models on startup (not recommended for production)")
	cmd.Flags().BoolVar(&seedOnStart, "seed", false, "Load the fixture data on startup when the store is empty")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, log, err := bootstrap.Init(bootstrap.GinMode(env), configPath)
	if err != nil {
		return err
	}
	defer logger.Sync()

	log.Infow("starting server",
		"environment", env,
		"version", version.Current(),
		"driver", cfg.Database.Driver,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	store, err := bootstrap.OpenStore(&cfg.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := handleMigrations(store, cfg, log); err != nil {
		return err
	}

	if seedOnStart {
		seeded, err := store.Seed(cmd.Context(), false, log)
		if err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}
		log.Infow("seed step finished", "seeded", seeded)
	}

	opts := httpRouter.RouterOptions{AllowedOrigins: cfg.Server.AllowedOrigins}
	if cfg.RateLimit.Enabled {
		client := newRedisClient(&cfg.Redis, log)
		defer client.Close()
		opts.RateLimiter = ratelimit.NewRedisRateLimiter(client, ratelimit.Policy{
			Limit:  cfg.RateLimit.Requests,
			Window: cfg.RateLimit.Window(),
		})
	}

	router := httpRouter.NewRouter(store.Repos, opts, log)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infow("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Errorw("server failed", "error", err)
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(store *bootstrap.Store, cfg *config.Config, log logger.Interface) error {
	if autoMigrate || cfg.Database.Driver == sharedConfig.DriverSQLite {
		if autoMigrate && cfg.Server.Mode == gin.ReleaseMode {
			log.Warnw("auto-migration is enabled in production environment - this is not recommended!")
		}
		if err := store.Migrate(autoMigrate, log); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		return nil
	}

	if cfg.Database.Driver == sharedConfig.DriverMySQL {
		log.Infow("schema is managed by 'migrate up'; skipping startup migration")
	}
	return nil
}

// newRedisClient never fails: an unreachable Redis only disables limiting
// at request time.
func newRedisClient(cfg *sharedConfig.RedisConfig, log logger.Interface) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnw("redis unreachable, write requests will not be rate limited until it recovers",
			"addr", cfg.GetAddr(),
			"error", err)
	}
	return client
}
