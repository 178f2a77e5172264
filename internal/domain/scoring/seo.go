package scoring

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/abdidvp/siteaudit/internal/domain"
)

var (
	titlePattern           = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	metaDescriptionPattern = regexp.MustCompile(`(?i)<meta\b[^>]*\bname\s*=\s*["']?description\b`)
	h1Pattern              = regexp.MustCompile(`(?i)<h1[\s>/]`)
	altAttrPattern         = regexp.MustCompile(`(?i)\balt\s*=`)
	canonicalPattern       = regexp.MustCompile(`(?i)\brel\s*=\s*["']?canonical\b`)
	openGraphPattern       = regexp.MustCompile(`(?i)\bproperty\s*=\s*["']og:`)
)

const (
	minTitleLength = 30
	maxTitleLength = 60
)

// AnalyzeSEO scores on-page search signals. pageURL is accepted for context;
// every check runs against the markup alone.
func AnalyzeSEO(_ string, html string) domain.AuditScore {
	card := newScorecard()

	if m := titlePattern.FindStringSubmatch(html); m == nil {
		card.fail(checkMissingTitle, 20, "Missing page title")
	} else if n := utf8.RuneCountInString(strings.TrimSpace(m[1])); n < minTitleLength || n > maxTitleLength {
		card.fail(checkTitleLength, 5,
			fmt.Sprintf("Title length (%d characters) is outside the 30-60 character range", n))
	}

	if !metaDescriptionPattern.MatchString(html) {
		card.fail(checkMissingMetaDescription, 15, "Missing meta description")
	}

	switch h1s := len(h1Pattern.FindAllStringIndex(html, -1)); {
	case h1s == 0:
		card.fail(checkMissingHeading, 15, "No H1 heading found")
	case h1s > 1:
		card.fail(checkMultipleHeadings, 10, fmt.Sprintf("Multiple H1 headings found (%d)", h1s))
	}

	missingAlt := 0
	for _, tag := range imgTagPattern.FindAllString(html, -1) {
		if !altAttrPattern.MatchString(tag) {
			missingAlt++
		}
	}
	if missingAlt > 0 {
		card.fail(checkMissingAltText, cappedPenalty(3, missingAlt, 20),
			fmt.Sprintf("%d images are missing alt text", missingAlt))
	}

	if !canonicalPattern.MatchString(html) {
		card.fail(checkMissingCanonical, 5, "Missing canonical URL")
	}

	if !openGraphPattern.MatchString(html) {
		card.fail(checkMissingOpenGraph, 10, "Missing Open Graph tags")
	}

	return card.result()
}
