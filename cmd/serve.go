package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "github.com/code-surya/nomad/internal/configs"
	httpapi "github.com/code-surya/nomad/internal/http"
	"github.com/code-surya/nomad/internal/ratelimit"
	repository "github.com/code-surya/nomad/internal/repositories"
	"github.com/code-surya/nomad/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task marketplace HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		database := config.New(cfg.DatabaseDSN)
		storeTimeout := time.Duration(cfg.StoreTimeoutSeconds) * time.Second

		taskRepo := repository.NewTaskRepository(database, storeTimeout)
		userRepo := repository.NewUserRepository(database, storeTimeout)

		taskService := services.NewTaskService(taskRepo)
		authService := services.NewAuthService(
			userRepo,
			cfg.JWTSecret,
			time.Duration(cfg.TokenTTLHours)*time.Hour,
			cfg.BcryptCost,
		)

		var limiter ratelimit.Limiter
		if cfg.RedisAddr != "" {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			limiter = ratelimit.NewRedisLimiter(redisClient, cfg.RateLimit, time.Minute)
		} else {
			limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit, time.Minute)
		}

		e := echo.New()

		handler := httpapi.NewHandler(taskService)
		authHandler := httpapi.NewAuthHandler(authService)
		httpapi.Register(e, handler, authHandler, authService, limiter)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
