package cli

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abdidvp/siteaudit/internal/adapters/outbound/config"
	"github.com/abdidvp/siteaudit/internal/adapters/outbound/fetcher"
	"github.com/abdidvp/siteaudit/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/siteaudit/internal/adapters/outbound/history"
	"github.com/abdidvp/siteaudit/internal/adapters/outbound/logging"
	"github.com/abdidvp/siteaudit/internal/adapters/outbound/postgres"
	"github.com/abdidvp/siteaudit/internal/application"
	"github.com/abdidvp/siteaudit/internal/domain"
)

type rootOptions struct {
	configPath string
}

// app bundles the wiring shared by every command that audits or reads
// history.
type app struct {
	cfg   domain.Config
	log   *logrus.Logger
	store domain.EventStore
	close func()
}

// loadApp reads the config and builds the logger. The event store is opened
// only when withStore is set.
func loadApp(ctx context.Context, cmd *cobra.Command, opts *rootOptions, withStore bool) (*app, error) {
	cfg, err := config.New().Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	log, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: log, close: func() {}}
	if !withStore {
		return a, nil
	}

	switch cfg.Store.Driver {
	case domain.StoreDriverFile:
		a.store = history.New(cfg.Store.Path)
	case domain.StoreDriverPostgres:
		db, err := postgres.Connect(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			return nil, err
		}
		a.store = postgres.NewEventStore(db)
		a.close = db.Close
	}
	log.WithField("driver", cfg.Store.Driver).Debug("event store ready")
	return a, nil
}

func (a *app) auditService() *application.AuditService {
	opts := []application.Option{application.WithGitInfo(gitinfo.New())}
	if a.store != nil {
		opts = append(opts, application.WithEventStore(a.store))
	}
	return application.NewAuditService(fetcher.New(a.cfg), a.log, opts...)
}
