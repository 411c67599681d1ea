package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/argossea/courier/internal/api"
	"github.com/argossea/courier/internal/config"
	"github.com/argossea/courier/internal/logging"
	"github.com/argossea/courier/internal/storage"
)

var relayCmd = &cobra.Command{
	Use:   "relay",
	Short: "Run a self-hosted HTTP acceptor for courier submissions",
	Long: `Run a self-hosted HTTP acceptor. Point another courier installation's
relay_endpoint at http://<addr>/api/submissions and every delivered
submission is validated and persisted into the acceptor's own registry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRelay(cmd.Context())
	},
}

func runRelay(ctx context.Context) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg.RelayDatabase)
	if err != nil {
		return fmt.Errorf("opening relay registry: %w", err)
	}
	defer store.Close()

	log := logging.NewDefault().With("component", "relay")

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: api.NewHandler(store, log),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "acceptor listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down acceptor: %w", err)
	}

	log.Info(context.Background(), "acceptor stopped")
	return nil
}
