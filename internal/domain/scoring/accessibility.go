package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/abdidvp/siteaudit/internal/domain"
)

var (
	htmlLangPattern   = regexp.MustCompile(`(?i)<html\b[^>]*\blang\s*=`)
	mainPattern       = regexp.MustCompile(`(?i)<main[\s>]`)
	navPattern        = regexp.MustCompile(`(?i)<nav[\s>]`)
	buttonElemPattern = regexp.MustCompile(`(?is)<button\b([^>]*)>(.*?)</button>`)
	ariaLabelPattern  = regexp.MustCompile(`(?i)\baria-label`)
)

// AnalyzeAccessibility scores landmarks, language and naming heuristics.
func AnalyzeAccessibility(html string) domain.AuditScore {
	card := newScorecard()
	lower := strings.ToLower(html)

	if !htmlLangPattern.MatchString(html) {
		card.fail(checkMissingLang, 10, "Missing lang attribute on <html>")
	}

	if !mainPattern.MatchString(html) {
		card.fail(checkMissingMainLandmark, 10, "No <main> landmark found")
	}

	if !navPattern.MatchString(html) {
		card.fail(checkMissingNavLandmark, 5, "No <nav> landmark found")
	}

	if !strings.Contains(lower, "skip") {
		card.fail(checkMissingSkipLink, 10, "No skip navigation link found")
	}

	unnamed := 0
	for _, m := range buttonElemPattern.FindAllStringSubmatch(html, -1) {
		attrs, content := m[1], m[2]
		if !ariaLabelPattern.MatchString(attrs) && visibleText(content) == "" {
			unnamed++
		}
	}
	if unnamed > 0 {
		card.fail(checkUnnamedButtons, cappedPenalty(5, unnamed, 15),
			fmt.Sprintf("%d buttons have no accessible name", unnamed))
	}

	if strings.Contains(lower, "white") && strings.Contains(lower, "#fff") {
		card.fail(checkLowContrastColors, 10, "Possible low-contrast white color combinations")
	}

	return card.result()
}
