package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/minta-io/minta/internal/api"
	"github.com/minta-io/minta/internal/config"
	"github.com/minta-io/minta/internal/core"
	"github.com/minta-io/minta/internal/gateway"
	"github.com/minta-io/minta/internal/store"
	"github.com/minta-io/minta/internal/store/postgres"
	"github.com/minta-io/minta/internal/token"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Minta server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		log.Info().Str("type", cfg.Gateway.Type).Msg("Initializing credential gateway...")
		resolver, err := gateway.Build(cfg.Gateway)
		if err != nil {
			return fmt.Errorf("building gateway resolver: %w", err)
		}

		issuer := token.NewIssuer(cfg.Token.Validity)
		log.Info().Dur("validity", issuer.Validity()).Msg("Token issuer ready")

		log.Info().Str("type", cfg.Store.Type).Msg("Initializing item store...")
		items, cleanup, err := buildItemStore(cmd.Context(), cfg.Store)
		if err != nil {
			return fmt.Errorf("building item store: %w", err)
		}
		defer cleanup()

		srv := api.NewServer(resolver, issuer, items)

		server := &http.Server{
			Addr:    addr,
			Handler: srv.Routes(),
		}

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

		// errors must reach RunE so the deferred store cleanup still runs
		return runServer(server, quit)
	},
}

// runServer serves until the listener fails or quit fires, then shuts down
// gracefully.
func runServer(server *http.Server, quit <-chan os.Signal) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Msgf("Starting server on %s...", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server crashed: %w", err)
	case <-quit:
	}
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("Server exited")
	return nil
}

// buildItemStore opens the configured item store. The returned cleanup
// releases the underlying persistence handle at shutdown.
func buildItemStore(ctx context.Context, cfg config.StoreConfig) (core.ItemStore, func(), error) {
	switch cfg.Type {
	case "memory":
		return store.NewInMemoryItemStore(), func() {}, nil
	case "postgres":
		var pgCfg struct {
			DSN string `mapstructure:"dsn"`
		}
		if err := mapstructure.Decode(cfg.Config, &pgCfg); err != nil {
			return nil, nil, fmt.Errorf("decoding postgres store config: %w", err)
		}
		if pgCfg.DSN == "" {
			return nil, nil, fmt.Errorf("postgres store requires 'dsn'")
		}

		pool, err := postgres.Connect(ctx, pgCfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		items, err := postgres.NewItemStore(pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return items, pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store type %q", cfg.Type)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "address to listen on")
}
