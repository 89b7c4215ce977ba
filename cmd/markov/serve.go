package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okanara/markov"
	"github.com/okanara/markov/internal/adapters/file"
	httpAdapter "github.com/okanara/markov/internal/adapters/http"
	"github.com/okanara/markov/internal/adapters/memory"
	"github.com/okanara/markov/internal/adapters/redis"
	"github.com/okanara/markov/internal/config"
	"github.com/okanara/markov/internal/logging"
	"github.com/okanara/markov/pkg/ports"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the markov engine in server mode, exposing simulation and
analysis endpoints as a JSON API plus Prometheus metrics. Configuration is
read from MARKOV_* environment variables; --port overrides the environment.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadServe()
		if err != nil {
			fmt.Printf("Configuration error: %v\n", err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetInt("port")
		}

		logger := logging.New(logging.ParseLevel(cfg.LogLevel))

		store, err := buildStore(cfg)
		if err != nil {
			fmt.Printf("Store error: %v\n", err)
			os.Exit(1)
		}

		engine, err := loadEngine(cmd, args,
			markov.WithLogger(logger),
			markov.WithStore(store),
		)
		if err != nil {
			fmt.Printf("Error initializing markov: %v\n", err)
			os.Exit(1)
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: httpAdapter.NewHandler(engine),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("server listening", "addr", srv.Addr, "store", cfg.Store, "chain", engine.Name())
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("shutdown started", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "error", err)
				}
			}
			logger.Info("server stopped gracefully")
		}
	},
}

func buildStore(cfg *config.Serve) (ports.RunStore, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return memory.New(), nil
	case config.StoreFile:
		return file.New(cfg.StoreDir), nil
	case config.StoreRedis:
		return redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, redis.WithTTL(cfg.RunTTL)), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
}
