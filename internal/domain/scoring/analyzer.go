package scoring

import (
	"fmt"

	"github.com/abdidvp/siteaudit/internal/domain"
)

// Analyzer scores markup served from pageURL along one dimension. Analyzers
// are pure: the same input always yields the same AuditScore.
type Analyzer func(pageURL, html string) domain.AuditScore

var analyzers = map[domain.Dimension]Analyzer{
	domain.DimensionPerformance:   AnalyzePerformance,
	domain.DimensionSEO:           AnalyzeSEO,
	domain.DimensionUI:            func(_, html string) domain.AuditScore { return AnalyzeUI(html) },
	domain.DimensionAccessibility: func(_, html string) domain.AuditScore { return AnalyzeAccessibility(html) },
	domain.DimensionCopy:          func(_, html string) domain.AuditScore { return AnalyzeCopy(html) },
}

// Analyzers returns the full analyzer set keyed by dimension.
func Analyzers() map[domain.Dimension]Analyzer {
	out := make(map[domain.Dimension]Analyzer, len(analyzers))
	for d, a := range analyzers {
		out[d] = a
	}
	return out
}

// AnalyzerFor returns the analyzer of a single dimension.
func AnalyzerFor(d domain.Dimension) (Analyzer, error) {
	a, ok := analyzers[d]
	if !ok {
		return nil, fmt.Errorf("unknown dimension %q", d)
	}
	return a, nil
}
