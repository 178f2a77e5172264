package scoring

import "github.com/abdidvp/siteaudit/internal/domain"

// Check describes one heuristic an analyzer applies to the markup.
type Check struct {
	Dimension      domain.Dimension `json:"dimension"`
	Code           string           `json:"code"`
	Penalty        string           `json:"penalty"`
	Recommendation string           `json:"recommendation"`
}

// CheckInfo is the presentation form of a Check.
type CheckInfo struct {
	Check
	Label string `json:"label"`
}

// Performance checks.
var (
	checkInsecureScheme = Check{
		Dimension: domain.DimensionPerformance, Code: "InsecureScheme", Penalty: "-15",
		Recommendation: "Serve the site over HTTPS and redirect all HTTP traffic to it",
	}
	checkLegacyImageFormats = Check{
		Dimension: domain.DimensionPerformance, Code: "LegacyImageFormats", Penalty: "-2 per image, max -20",
		Recommendation: "Convert images to WebP or AVIF to cut transfer size",
	}
	checkExcessiveInlineStyles = Check{
		Dimension: domain.DimensionPerformance, Code: "ExcessiveInlineStyles", Penalty: "-1 per style attribute, max -10",
		Recommendation: "Move inline styles into cacheable stylesheets",
	}
	checkTooManyStylesheets = Check{
		Dimension: domain.DimensionPerformance, Code: "TooManyStylesheets", Penalty: "-2 per stylesheet, max -15",
		Recommendation: "Bundle stylesheets to reduce render-blocking requests",
	}
)

// SEO checks.
var (
	checkMissingTitle = Check{
		Dimension: domain.DimensionSEO, Code: "MissingTitle", Penalty: "-20",
		Recommendation: "Add a descriptive <title> tag of 30-60 characters",
	}
	checkTitleLength = Check{
		Dimension: domain.DimensionSEO, Code: "TitleLength", Penalty: "-5",
		Recommendation: "Keep the page title between 30 and 60 characters",
	}
	checkMissingMetaDescription = Check{
		Dimension: domain.DimensionSEO, Code: "MissingMetaDescription", Penalty: "-15",
		Recommendation: "Add a meta description summarising the page in 150-160 characters",
	}
	checkMissingHeading = Check{
		Dimension: domain.DimensionSEO, Code: "MissingHeading", Penalty: "-15",
		Recommendation: "Add exactly one <h1> that states the page topic",
	}
	checkMultipleHeadings = Check{
		Dimension: domain.DimensionSEO, Code: "MultipleHeadings", Penalty: "-10",
		Recommendation: "Use a single <h1> and demote the others to <h2> or lower",
	}
	checkMissingAltText = Check{
		Dimension: domain.DimensionSEO, Code: "MissingAltText", Penalty: "-3 per image, max -20",
		Recommendation: "Describe every image with an alt attribute",
	}
	checkMissingCanonical = Check{
		Dimension: domain.DimensionSEO, Code: "MissingCanonical", Penalty: "-5",
		Recommendation: `Declare the preferred URL with <link rel="canonical">`,
	}
	checkMissingOpenGraph = Check{
		Dimension: domain.DimensionSEO, Code: "MissingOpenGraph", Penalty: "-10",
		Recommendation: "Add Open Graph tags (og:title, og:description, og:image) for social sharing",
	}
)

// UI/UX checks.
var (
	checkMissingViewport = Check{
		Dimension: domain.DimensionUI, Code: "MissingViewport", Penalty: "-20",
		Recommendation: `Add <meta name="viewport" content="width=device-width, initial-scale=1">`,
	}
	checkSmallFontSizes = Check{
		Dimension: domain.DimensionUI, Code: "SmallFontSizes", Penalty: "-2 per declaration, max -15",
		Recommendation: "Use a minimum font size of 13px (16px for body copy)",
	}
	checkFewInteractiveElements = Check{
		Dimension: domain.DimensionUI, Code: "FewInteractiveElements", Penalty: "-10",
		Recommendation: "Give visitors clear next steps with buttons and links",
	}
	checkUnlabelledForms = Check{
		Dimension: domain.DimensionUI, Code: "UnlabelledForms", Penalty: "-15",
		Recommendation: "Pair every form input with a visible <label>",
	}
)

// Accessibility checks.
var (
	checkMissingLang = Check{
		Dimension: domain.DimensionAccessibility, Code: "MissingLang", Penalty: "-10",
		Recommendation: `Declare the page language, e.g. <html lang="en">`,
	}
	checkMissingMainLandmark = Check{
		Dimension: domain.DimensionAccessibility, Code: "MissingMainLandmark", Penalty: "-10",
		Recommendation: "Wrap the primary content in a <main> element",
	}
	checkMissingNavLandmark = Check{
		Dimension: domain.DimensionAccessibility, Code: "MissingNavLandmark", Penalty: "-5",
		Recommendation: "Wrap site navigation in a <nav> element",
	}
	checkMissingSkipLink = Check{
		Dimension: domain.DimensionAccessibility, Code: "MissingSkipLink", Penalty: "-10",
		Recommendation: "Add a skip-to-content link as the first focusable element",
	}
	checkUnnamedButtons = Check{
		Dimension: domain.DimensionAccessibility, Code: "UnnamedButtons", Penalty: "-5 per button, max -15",
		Recommendation: "Give icon-only buttons an aria-label or visible text",
	}
	checkLowContrastColors = Check{
		Dimension: domain.DimensionAccessibility, Code: "LowContrastColors", Penalty: "-10",
		Recommendation: "Verify white-on-light color pairs meet WCAG AA contrast (4.5:1)",
	}
)

// Copy checks.
var (
	checkThinContent = Check{
		Dimension: domain.DimensionCopy, Code: "ThinContent", Penalty: "-20",
		Recommendation: "Expand the copy to at least 300 words that answer visitor questions",
	}
	checkMissingCTA = Check{
		Dimension: domain.DimensionCopy, Code: "MissingCTA", Penalty: "-15",
		Recommendation: `Add a clear call to action such as "Get started" or "Contact us"`,
	}
	checkLongSentences = Check{
		Dimension: domain.DimensionCopy, Code: "LongSentences", Penalty: "-10",
		Recommendation: "Shorten sentences to 20 words or fewer on average",
	}
	checkMissingValueProposition = Check{
		Dimension: domain.DimensionCopy, Code: "MissingValueProposition", Penalty: "-15",
		Recommendation: "State the benefit: what visitors save, improve or grow",
	}
)

var allChecks = []Check{
	checkInsecureScheme, checkLegacyImageFormats, checkExcessiveInlineStyles, checkTooManyStylesheets,
	checkMissingTitle, checkTitleLength, checkMissingMetaDescription, checkMissingHeading,
	checkMultipleHeadings, checkMissingAltText, checkMissingCanonical, checkMissingOpenGraph,
	checkMissingViewport, checkSmallFontSizes, checkFewInteractiveElements, checkUnlabelledForms,
	checkMissingLang, checkMissingMainLandmark, checkMissingNavLandmark, checkMissingSkipLink,
	checkUnnamedButtons, checkLowContrastColors,
	checkThinContent, checkMissingCTA, checkLongSentences, checkMissingValueProposition,
}

// Catalog lists every check in evaluation order.
func Catalog() []CheckInfo {
	out := make([]CheckInfo, 0, len(allChecks))
	for _, c := range allChecks {
		out = append(out, CheckInfo{Check: c, Label: Label(c.Code)})
	}
	return out
}
