package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/siteaudit/internal/domain"
)

// Auditor is the application surface exposed to MCP clients.
type Auditor interface {
	Audit(ctx context.Context, req domain.AuditRequest) (domain.AuditReport, error)
	AnalyzeHTML(ctx context.Context, pageURL, html string) (domain.AuditReport, error)
	History(ctx context.Context, limit int) ([]domain.Event, error)
}

// NewSiteAuditMCPServer creates an MCP server with every siteaudit tool and
// resource registered.
func NewSiteAuditMCPServer(auditor Auditor, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"siteaudit",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, auditor)
	registerResources(s)

	return s
}
