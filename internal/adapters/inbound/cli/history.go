package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/siteaudit/internal/adapters/outbound/tui"
)

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var (
		limit      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded audits",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 1 {
				return fmt.Errorf("--limit must be positive (got %d)", limit)
			}

			a, err := loadApp(cmd.Context(), cmd, opts, true)
			if err != nil {
				return err
			}
			defer a.close()

			events, err := a.auditService().History(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, events)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(events))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of audits to show")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output events as JSON")

	return cmd
}
