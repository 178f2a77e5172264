package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/siteaudit/internal/domain/scoring"
)

const checksURI = "siteaudit://checks"

func registerResources(s *server.MCPServer) {
	s.AddResource(
		mcplib.NewResource(
			checksURI,
			"Check Catalog",
			mcplib.WithResourceDescription("Every heuristic check with its dimension, penalty and recommendation"),
			mcplib.WithMIMEType("application/json"),
		),
		handleChecksResource,
	)
}

func handleChecksResource(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(scoring.Catalog(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling check catalog: %w", err)
	}

	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      checksURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
