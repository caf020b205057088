package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"taskforge.com/taskforge/internal/app"
	config "taskforge.com/taskforge/internal/configs"
	"taskforge.com/taskforge/internal/sessions"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API server",
	Long:  "Starts the TaskForge HTTP API backed by SQLite and a session store",
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		var store sessions.Store
		switch cfg.SessionDriver {
		case "redis":
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()

			if err := redisClient.Do(
				context.Background(),
				redisClient.B().Ping().Build(),
			).Error(); err != nil {
				log.Fatalf("failed to reach redis at %s: %v", cfg.RedisAddr, err)
			}

			store = sessions.NewRedisStore(redisClient, "taskforge:session:")
		default:
			log.Println("using in-memory sessions; logins will not survive a restart")
			store = sessions.NewMemoryStore()
		}

		db := config.New(cfg.DatabaseDSN)

		e := app.New(cfg, db, store, app.Options{})

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

		if err := e.Shutdown(ctx); err != nil {
			log.Printf("HTTP server shutdown failed: %v", err)
		} else {
			log.Println("HTTP server shut down gracefully")
		}

		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
