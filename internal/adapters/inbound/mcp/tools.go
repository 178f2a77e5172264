package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/siteaudit/internal/domain"
)

const defaultHistoryLimit = 20

func registerTools(s *server.MCPServer, auditor Auditor) {
	s.AddTool(
		mcplib.NewTool("siteaudit_audit",
			mcplib.WithDescription("Fetch a web page and score its performance, SEO, UI/UX, accessibility and copy. Returns the audit report as JSON"),
			mcplib.WithString("url",
				mcplib.Required(),
				mcplib.Description("Absolute http:// or https:// URL of the page to audit"),
			),
			mcplib.WithBoolean("full_site", mcplib.Description("Accepted for compatibility; only the given page is audited")),
		),
		handleAudit(auditor),
	)

	s.AddTool(
		mcplib.NewTool("siteaudit_analyze_html",
			mcplib.WithDescription("Score markup supplied inline as if it were served at url. Makes no network call"),
			mcplib.WithString("url",
				mcplib.Required(),
				mcplib.Description("URL the markup is served from; its scheme affects the performance score"),
			),
			mcplib.WithString("html",
				mcplib.Required(),
				mcplib.Description("Raw HTML of the page"),
			),
		),
		handleAnalyzeHTML(auditor),
	)

	s.AddTool(
		mcplib.NewTool("siteaudit_history",
			mcplib.WithDescription("Returns recently recorded audits, newest first"),
			mcplib.WithNumber("limit", mcplib.Description("Maximum number of audits to return (default 20)")),
		),
		handleHistory(auditor),
	)
}

func handleAudit(auditor Auditor) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		report, err := auditor.Audit(ctx, domain.AuditRequest{
			URL:      url,
			FullSite: request.GetBool("full_site", false),
		})
		if err != nil {
			return errorResult(failureMessage(err)), nil
		}
		return jsonResult(report)
	}
}

func handleAnalyzeHTML(auditor Auditor) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		html, err := request.RequireString("html")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		report, err := auditor.AnalyzeHTML(ctx, url, html)
		if err != nil {
			return errorResult(failureMessage(err)), nil
		}
		return jsonResult(report)
	}
}

func handleHistory(auditor Auditor) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		limit := request.GetInt("limit", defaultHistoryLimit)
		if limit < 1 {
			return errorResult("limit must be a positive integer"), nil
		}

		events, err := auditor.History(ctx, limit)
		if err != nil {
			return errorResult(fmt.Sprintf("loading history failed: %v", err)), nil
		}
		return jsonResult(events)
	}
}

// failureMessage mirrors the HTTP API: validation messages pass through,
// everything else is reported as an audit failure.
func failureMessage(err error) string {
	if domain.IsValidation(err) {
		return err.Error()
	}
	return "Failed to audit website: " + err.Error()
}

func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
