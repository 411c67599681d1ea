// Package cli implements the courier command-line surface. It is
// presentation glue: commands only invoke the submission service, the
// store and the backup adapter, and render whatever they report.
package cli

import (
	"context"

	_ "modernc.org/sqlite"

	"github.com/argossea/courier/internal/backup"
	"github.com/argossea/courier/internal/config"
	"github.com/argossea/courier/internal/logging"
	"github.com/argossea/courier/internal/relay"
	"github.com/argossea/courier/internal/services"
	"github.com/argossea/courier/internal/storage"
)

// App bundles the wired-up components a command works with. Lifecycle
// is scoped to one command invocation.
type App struct {
	cfg    *config.Config
	store  *storage.SQLiteStore
	svc    services.SubmissionService
	backup *backup.Adapter
	log    logging.Logger
}

func newApp(ctx context.Context, cfgPath string) (*App, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	// The relay variant is a configuration concern: a configured
	// endpoint selects the HTTP submitter, otherwise the simulated
	// acceptor stands in.
	var submitter relay.Submitter
	if cfg.RelayEndpoint == "" {
		submitter = relay.NewSimulated(cfg.SimulatedDelay)
	} else {
		submitter = relay.NewHTTPSubmitter(cfg.RelayEndpoint, cfg.RelayTimeout)
	}

	log := logging.NewDefault()

	return &App{
		cfg:    cfg,
		store:  store,
		svc:    services.NewSubmissionService(store, submitter, log),
		backup: backup.NewAdapter(store, cfg.BackupPrefix),
		log:    log,
	}, nil
}

func (a *App) Close() error {
	return a.store.Close()
}
