package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           "siteaudit",
		Short:         "Heuristic website audits",
		Long:          "siteaudit fetches a web page and scores its performance, SEO, UI/UX, accessibility and copy from the markup alone.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", ".", "Config file, or directory containing .siteaudit.yaml")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAuditCmd(&opts))
	cmd.AddCommand(newServeCmd(&opts))
	cmd.AddCommand(newHistoryCmd(&opts))
	cmd.AddCommand(newChecksCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMigrateCmd(&opts))
	cmd.AddCommand(newMCPCmd(&opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show siteaudit version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "siteaudit %s (%s)\n", version, commit)
			return nil
		},
	}
}
