package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/abdidvp/siteaudit/internal/domain"
)

var (
	imgTagPattern      = regexp.MustCompile(`(?i)<img\b[^>]*>`)
	srcAttrPattern     = regexp.MustCompile(`(?i)\bsrc\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s>]+))`)
	inlineStylePattern = regexp.MustCompile(`(?i)style="`)
	stylesheetPattern  = regexp.MustCompile(`(?i)<link\b[^>]*\brel\s*=\s*["']?stylesheet\b[^>]*>`)
)

const (
	maxInlineStyles = 10
	maxStylesheets  = 5
)

// AnalyzePerformance scores transport security and asset hygiene visible in
// the markup. pageURL is the resolved URL the markup was served from.
func AnalyzePerformance(pageURL, html string) domain.AuditScore {
	card := newScorecard()

	if !strings.HasPrefix(pageURL, "https://") {
		card.fail(checkInsecureScheme, 15, "Website is not served over HTTPS")
	}

	legacy := 0
	for _, tag := range imgTagPattern.FindAllString(html, -1) {
		if !isModernImage(imageSource(tag)) {
			legacy++
		}
	}
	if legacy > 0 {
		card.fail(checkLegacyImageFormats, cappedPenalty(2, legacy, 20),
			fmt.Sprintf("%d images are not using modern formats (WebP/AVIF)", legacy))
	}

	if styles := len(inlineStylePattern.FindAllStringIndex(html, -1)); styles > maxInlineStyles {
		card.fail(checkExcessiveInlineStyles, cappedPenalty(1, styles, 10),
			fmt.Sprintf("%d inline style attributes found", styles))
	}

	if sheets := len(stylesheetPattern.FindAllStringIndex(html, -1)); sheets > maxStylesheets {
		card.fail(checkTooManyStylesheets, cappedPenalty(2, sheets, 15),
			fmt.Sprintf("%d separate stylesheets are loaded", sheets))
	}

	return card.result()
}

// imageSource returns the src attribute value of an <img> tag, or "" when
// the tag has none.
func imageSource(tag string) string {
	m := srcAttrPattern.FindStringSubmatch(tag)
	if m == nil {
		return ""
	}
	for _, v := range m[1:] {
		if v != "" {
			return v
		}
	}
	return ""
}

func isModernImage(src string) bool {
	lower := strings.ToLower(src)
	return strings.Contains(lower, "webp") || strings.Contains(lower, "avif")
}
