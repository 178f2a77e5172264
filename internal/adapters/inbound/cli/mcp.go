package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/abdidvp/siteaudit/internal/adapters/inbound/mcp"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the siteaudit MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start siteaudit MCP server (stdio)",
		Long:  "Start the siteaudit MCP server using stdio transport so AI assistants can audit pages and read audit history.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd.Context(), cmd, opts, true)
			if err != nil {
				return err
			}
			defer a.close()

			s := mcpadapter.NewSiteAuditMCPServer(a.auditService(), version)
			return server.ServeStdio(s)
		},
	}
}
