package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/abdidvp/siteaudit/internal/adapters/inbound/mcp"
	"github.com/abdidvp/siteaudit/internal/application"
	"github.com/abdidvp/siteaudit/internal/domain"
)

type fixedFetcher struct{ html string }

func (f fixedFetcher) Fetch(_ context.Context, url string) (*domain.Page, error) {
	if url == "https://example.com/missing" {
		return nil, &domain.FetchError{URL: url, StatusCode: 404, StatusText: "Not Found"}
	}
	return &domain.Page{URL: url, HTML: f.html, StatusCode: 200}, nil
}

type memoryStore struct{ events []domain.Event }

func (m *memoryStore) Record(_ context.Context, e domain.Event) error {
	m.events = append(m.events, e)
	return nil
}

func (m *memoryStore) Recent(_ context.Context, _ string, limit int) ([]domain.Event, error) {
	out := []domain.Event{}
	for i := len(m.events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.events[i])
	}
	return out, nil
}

func newAuditor(store domain.EventStore) *application.AuditService {
	logger, _ := test.NewNullLogger()
	return application.NewAuditService(fixedFetcher{html: "<html><body></body></html>"}, logger,
		application.WithEventStore(store))
}

func callTool(t *testing.T, name string, args map[string]any, store domain.EventStore) *mcplib.CallToolResult {
	t.Helper()
	s := mcpadapter.NewSiteAuditMCPServer(newAuditor(store), "test")
	tool, ok := s.ListTools()[name]
	require.True(t, ok, "tool %q should be registered", name)

	req := mcplib.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewSiteAuditMCPServer(newAuditor(&memoryStore{}), "test")

	tools := s.ListTools()
	expectedTools := []string{"siteaudit_audit", "siteaudit_analyze_html", "siteaudit_history"}
	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}
	assert.Len(t, tools, len(expectedTools))
}

func TestAuditTool_ReturnsReport(t *testing.T) {
	res := callTool(t, "siteaudit_audit", map[string]any{"url": "http://example.com"}, &memoryStore{})
	require.False(t, res.IsError)

	var report domain.AuditReport
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &report))
	assert.Equal(t, 61, report.OverallScore)
	assert.Equal(t, 85, report.PerformanceScore)
}

func TestAuditTool_MissingURL(t *testing.T) {
	res := callTool(t, "siteaudit_audit", map[string]any{}, &memoryStore{})
	assert.True(t, res.IsError)
}

func TestAuditTool_InvalidURL(t *testing.T) {
	res := callTool(t, "siteaudit_audit", map[string]any{"url": "example.com"}, &memoryStore{})

	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "URL must start with http:// or https://")
}

func TestAuditTool_FetchFailure(t *testing.T) {
	res := callTool(t, "siteaudit_audit", map[string]any{"url": "https://example.com/missing"}, &memoryStore{})

	assert.True(t, res.IsError)
	assert.Equal(t, "Failed to audit website: HTTP 404: Not Found", resultText(t, res))
}

func TestAnalyzeHTMLTool(t *testing.T) {
	html := `<html lang="en"><body><nav></nav><main><a href="#x">Skip</a></main></body></html>`
	res := callTool(t, "siteaudit_analyze_html", map[string]any{"url": "https://example.com", "html": html}, &memoryStore{})
	require.False(t, res.IsError)

	var report domain.AuditReport
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &report))
	assert.Equal(t, 100, report.AccessibilityScore)
	assert.Equal(t, 100, report.PerformanceScore)
}

func TestAnalyzeHTMLTool_RequiresHTML(t *testing.T) {
	res := callTool(t, "siteaudit_analyze_html", map[string]any{"url": "https://example.com"}, &memoryStore{})
	assert.True(t, res.IsError)
}

func TestHistoryTool(t *testing.T) {
	store := &memoryStore{}
	callTool(t, "siteaudit_audit", map[string]any{"url": "https://a.example"}, store)
	callTool(t, "siteaudit_audit", map[string]any{"url": "https://b.example"}, store)

	res := callTool(t, "siteaudit_history", map[string]any{"limit": 1}, store)
	require.False(t, res.IsError)

	var events []domain.Event
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "https://b.example", events[0].Label)
}

func TestHistoryTool_InvalidLimit(t *testing.T) {
	res := callTool(t, "siteaudit_history", map[string]any{"limit": 0}, &memoryStore{})
	assert.True(t, res.IsError)
}

func TestChecksResource(t *testing.T) {
	s := mcpadapter.NewSiteAuditMCPServer(newAuditor(&memoryStore{}), "test")

	msg := s.HandleMessage(context.Background(), json.RawMessage(
		`{"jsonrpc":"2.0","id":1,"method":"resources/read","params":{"uri":"siteaudit://checks"}}`))
	data, err := json.Marshal(msg)
	require.NoError(t, err)

	assert.Contains(t, string(data), "MissingCTA")
	assert.Contains(t, string(data), "application/json")
}
