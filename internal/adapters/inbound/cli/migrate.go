package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/siteaudit/internal/adapters/outbound/postgres"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply Postgres event store migrations",
		Long:  "Create or upgrade the events table in the database named by store.database_url or DATABASE_URL.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := loadApp(ctx, cmd, opts, false)
			if err != nil {
				return err
			}
			if a.cfg.Store.DatabaseURL == "" {
				return fmt.Errorf("no database configured (set store.database_url or DATABASE_URL)")
			}

			db, err := postgres.Connect(ctx, a.cfg.Store.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Migrate(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			return nil
		},
	}
}
