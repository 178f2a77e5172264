package e2e_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/siteaudit/internal/domain"
	"github.com/abdidvp/siteaudit/internal/domain/scoring"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "siteaudit-e2e")
	if err != nil {
		panic(err)
	}

	binaryPath = filepath.Join(dir, "siteaudit")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/siteaudit")
	if out, err := cmd.CombinedOutput(); err != nil {
		os.RemoveAll(dir)
		panic("build failed: " + string(out))
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func fixturePath(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata/pages", name))
	return abs
}

// config writes a quiet config whose history lives in a temp dir.
func config(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ".siteaudit.yaml")
	content := "store:\n  driver: file\n  path: " + filepath.Join(dir, "events.json") + "\nlog:\n  level: error\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// run executes the binary and returns stdout, stderr and the exit code.
func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(binaryPath, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return stdout.String(), stderr.String(), exitCode
}

func serve(t *testing.T, page string) *httptest.Server {
	t.Helper()
	html, err := os.ReadFile(fixturePath(page))
	require.NoError(t, err)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(html)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// --- Audit Tests ---

func TestE2E_Audit(t *testing.T) {
	srv := serve(t, "wellformed.html")

	out, _, code := run(t, "audit", srv.URL, "--config", config(t))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "siteaudit")
	assert.Contains(t, out, srv.URL)
}

func TestE2E_AuditJSON(t *testing.T) {
	srv := serve(t, "minimal.html")

	out, _, code := run(t, "audit", srv.URL, "--json", "--config", config(t))
	require.Equal(t, 0, code)

	var report domain.AuditReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, srv.URL, report.URL)
	assert.Equal(t, 61, report.OverallScore)
	assert.False(t, report.Timestamp.IsZero())
}

func TestE2E_AuditFile(t *testing.T) {
	out, _, code := run(t, "audit", "https://example.com", "--file", fixturePath("wellformed.html"), "--json", "--config", config(t))
	require.Equal(t, 0, code)

	var report domain.AuditReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 100, report.OverallScore)
}

func TestE2E_AuditCI(t *testing.T) {
	srv := serve(t, "cluttered.html")

	_, stderr, code := run(t, "audit", srv.URL, "--ci", "--min", "50", "--config", config(t))
	assert.Equal(t, 1, code, "should exit 1 when below minimum")
	assert.Contains(t, stderr, "score 41 is below minimum 50")
}

func TestE2E_AuditOrdering(t *testing.T) {
	cfg := config(t)
	scores := map[string]int{}
	for _, page := range []string{"wellformed.html", "minimal.html", "cluttered.html"} {
		out, _, code := run(t, "audit", "http://example.com", "--file", fixturePath(page), "--json", "--no-save", "--config", cfg)
		require.Equal(t, 0, code)

		var report domain.AuditReport
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		scores[page] = report.OverallScore
	}

	assert.Greater(t, scores["wellformed.html"], scores["minimal.html"], "wellformed > minimal")
	assert.Greater(t, scores["minimal.html"], scores["cluttered.html"], "minimal > cluttered")
}

func TestE2E_AuditUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, stderr, code := run(t, "audit", srv.URL, "--config", config(t))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "HTTP 404")
}

func TestE2E_AuditInvalidURL(t *testing.T) {
	_, stderr, code := run(t, "audit", "ftp://example.com", "--config", config(t))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "URL must start with http:// or https://")
}

// --- History Tests ---

func TestE2E_History(t *testing.T) {
	cfg := config(t)
	srv := serve(t, "minimal.html")

	_, _, code := run(t, "audit", srv.URL, "--config", cfg)
	require.Equal(t, 0, code)

	out, _, code := run(t, "history", "--json", "--config", cfg)
	require.Equal(t, 0, code)

	var events []domain.Event
	require.NoError(t, json.Unmarshal([]byte(out), &events))
	require.Len(t, events, 1)
	assert.Equal(t, srv.URL, events[0].Label)
	assert.Equal(t, float64(61), events[0].Value)
}

// --- Catalog and Init Tests ---

func TestE2E_Checks(t *testing.T) {
	out, _, code := run(t, "checks", "--json")
	require.Equal(t, 0, code)

	var checks []scoring.CheckInfo
	require.NoError(t, json.Unmarshal([]byte(out), &checks))
	assert.Len(t, checks, len(scoring.Catalog()))
}

func TestE2E_Init(t *testing.T) {
	dir := t.TempDir()

	out, _, code := run(t, "init", dir)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Created .siteaudit.yaml")

	_, stderr, code := run(t, "init", dir)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "already exists")
}

func TestE2E_Version(t *testing.T) {
	out, _, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "siteaudit "))
}
