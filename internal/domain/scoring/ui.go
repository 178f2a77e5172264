package scoring

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/abdidvp/siteaudit/internal/domain"
)

var (
	viewportPattern = regexp.MustCompile(`(?i)<meta\b[^>]*\bname\s*=\s*["']?viewport\b`)
	fontSizePattern = regexp.MustCompile(`(?i)font-size\s*:\s*(\d+(?:\.\d+)?)px`)
	buttonPattern   = regexp.MustCompile(`(?i)<button[\s>]`)
	anchorPattern   = regexp.MustCompile(`(?i)<a\s[^>]*\bhref\s*=`)
	formPattern     = regexp.MustCompile(`(?i)<form[\s>]`)
	labelPattern    = regexp.MustCompile(`(?i)<label[\s>]`)
)

const (
	minReadableFontPx      = 13
	minInteractiveElements = 3
)

// AnalyzeUI scores mobile readiness and interaction affordances.
func AnalyzeUI(html string) domain.AuditScore {
	card := newScorecard()

	if !viewportPattern.MatchString(html) {
		card.fail(checkMissingViewport, 20, "Missing viewport meta tag")
	}

	small := 0
	for _, m := range fontSizePattern.FindAllStringSubmatch(html, -1) {
		px, err := strconv.ParseFloat(m[1], 64)
		if err == nil && px < minReadableFontPx {
			small++
		}
	}
	if small > 0 {
		card.fail(checkSmallFontSizes, cappedPenalty(2, small, 15),
			fmt.Sprintf("%d font sizes below 13px found", small))
	}

	interactive := len(buttonPattern.FindAllStringIndex(html, -1)) + len(anchorPattern.FindAllStringIndex(html, -1))
	if interactive < minInteractiveElements {
		card.fail(checkFewInteractiveElements, 10,
			fmt.Sprintf("Only %d interactive elements (buttons and links) found", interactive))
	}

	forms := len(formPattern.FindAllStringIndex(html, -1))
	labels := len(labelPattern.FindAllStringIndex(html, -1))
	if forms > 0 && labels < forms {
		card.fail(checkUnlabelledForms, 15,
			fmt.Sprintf("%d forms but only %d labels found", forms, labels))
	}

	return card.result()
}
