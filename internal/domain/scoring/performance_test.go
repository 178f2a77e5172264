package scoring_test

import (
	"strings"
	"testing"

	"github.com/abdidvp/siteaudit/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzePerformance_CleanHTTPSPage(t *testing.T) {
	got := scoring.AnalyzePerformance("https://example.com", "<html><body></body></html>")

	assert.Equal(t, 100, got.Score)
	assert.Empty(t, got.Issues)
	assert.Empty(t, got.Recommendations)
}

func TestAnalyzePerformance_InsecureScheme(t *testing.T) {
	got := scoring.AnalyzePerformance("http://example.com", "<html><body></body></html>")

	assert.Equal(t, 85, got.Score)
	assert.Equal(t, []string{"Website is not served over HTTPS"}, got.Issues)
}

func TestAnalyzePerformance_LegacyImages(t *testing.T) {
	html := `<img src="a.jpg"><img src='b.png'><img src=c.gif>`
	got := scoring.AnalyzePerformance("https://example.com", html)

	assert.Equal(t, 94, got.Score)
	assert.Equal(t, []string{"3 images are not using modern formats (WebP/AVIF)"}, got.Issues)
}

func TestAnalyzePerformance_ModernImagesPass(t *testing.T) {
	html := `<img src="hero.webp" alt="Hero"><IMG SRC="logo.AVIF">`
	got := scoring.AnalyzePerformance("https://example.com", html)

	assert.Equal(t, 100, got.Score)
}

func TestAnalyzePerformance_ImageWithoutSourceIsLegacy(t *testing.T) {
	got := scoring.AnalyzePerformance("https://example.com", `<img alt="placeholder">`)

	assert.Equal(t, 98, got.Score)
}

func TestAnalyzePerformance_LegacyImagePenaltyIsCapped(t *testing.T) {
	html := strings.Repeat(`<img src="photo.jpg">`, 15)
	got := scoring.AnalyzePerformance("https://example.com", html)

	assert.Equal(t, 80, got.Score)
}

func TestAnalyzePerformance_InlineStylesAtLimitPass(t *testing.T) {
	html := strings.Repeat(`<div style="margin:0"></div>`, 10)
	got := scoring.AnalyzePerformance("https://example.com", html)

	assert.Equal(t, 100, got.Score)
}

func TestAnalyzePerformance_InlineStylesAboveLimit(t *testing.T) {
	html := strings.Repeat(`<div style="margin:0"></div>`, 11)
	got := scoring.AnalyzePerformance("https://example.com", html)

	assert.Equal(t, 90, got.Score)
	assert.Equal(t, []string{"11 inline style attributes found"}, got.Issues)
}

func TestAnalyzePerformance_StylesheetsAtLimitPass(t *testing.T) {
	html := strings.Repeat(`<link rel="stylesheet" href="a.css">`, 5)
	got := scoring.AnalyzePerformance("https://example.com", html)

	assert.Equal(t, 100, got.Score)
}

func TestAnalyzePerformance_TooManyStylesheets(t *testing.T) {
	html := strings.Repeat(`<link rel="stylesheet" href="a.css">`, 6)
	got := scoring.AnalyzePerformance("https://example.com", html)

	assert.Equal(t, 88, got.Score)
}

func TestAnalyzePerformance_StylesheetPenaltyIsCapped(t *testing.T) {
	html := strings.Repeat(`<link rel="stylesheet" href="a.css">`, 9)
	got := scoring.AnalyzePerformance("https://example.com", html)

	assert.Equal(t, 85, got.Score)
}
