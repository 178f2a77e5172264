package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/siteaudit/internal/adapters/outbound/tui"
	"github.com/abdidvp/siteaudit/internal/domain/scoring"
)

func newChecksCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "checks",
		Short: "List every heuristic check and its penalty",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := scoring.Catalog()
			if jsonOutput {
				return renderJSON(cmd, catalog)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderChecks(catalog))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the catalog as JSON")

	return cmd
}
