package domain

import (
	"math"
	"time"
)

// Dimension names one of the five audit analyzers.
type Dimension string

const (
	DimensionPerformance   Dimension = "performance"
	DimensionSEO           Dimension = "seo"
	DimensionUI            Dimension = "ui"
	DimensionAccessibility Dimension = "accessibility"
	DimensionCopy          Dimension = "copy"
)

// Dimensions lists every audit dimension in report order.
var Dimensions = []Dimension{
	DimensionPerformance,
	DimensionSEO,
	DimensionUI,
	DimensionAccessibility,
	DimensionCopy,
}

// AuditRequest is the input to a single audit.
type AuditRequest struct {
	URL string `json:"url"`
	// FullSite is accepted for compatibility and does not change scoring.
	FullSite bool `json:"fullSite,omitempty"`
}

// AuditScore is the result of one analyzer. Issues and Recommendations are
// positionally aligned: Recommendations[i] addresses Issues[i].
type AuditScore struct {
	Score           int      `json:"score"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

// AuditReport aggregates the five analyzer results for one URL.
type AuditReport struct {
	URL                string     `json:"url"`
	Performance        AuditScore `json:"performance"`
	SEO                AuditScore `json:"seo"`
	UI                 AuditScore `json:"ui"`
	Accessibility      AuditScore `json:"accessibility"`
	Copy               AuditScore `json:"copy"`
	PerformanceScore   int        `json:"performanceScore"`
	SEOScore           int        `json:"seoScore"`
	UIScore            int        `json:"uiScore"`
	AccessibilityScore int        `json:"accessibilityScore"`
	CopyScore          int        `json:"copyScore"`
	OverallScore       int        `json:"overallScore"`
	Timestamp          time.Time  `json:"timestamp"`
	CommitHash         string     `json:"commitHash,omitempty"`
}

// NewAuditReport assembles a report from per-dimension results. The
// top-level sub-scores and the overall score are derived from results.
func NewAuditReport(url string, results map[Dimension]AuditScore, at time.Time) AuditReport {
	r := AuditReport{
		URL:           url,
		Performance:   results[DimensionPerformance],
		SEO:           results[DimensionSEO],
		UI:            results[DimensionUI],
		Accessibility: results[DimensionAccessibility],
		Copy:          results[DimensionCopy],
		Timestamp:     at.UTC(),
	}
	r.PerformanceScore = r.Performance.Score
	r.SEOScore = r.SEO.Score
	r.UIScore = r.UI.Score
	r.AccessibilityScore = r.Accessibility.Score
	r.CopyScore = r.Copy.Score
	r.OverallScore = ComputeOverallScore(
		r.PerformanceScore, r.SEOScore, r.UIScore, r.AccessibilityScore, r.CopyScore,
	)
	return r
}

// ScoreFor returns the analyzer result for the given dimension.
func (r AuditReport) ScoreFor(d Dimension) AuditScore {
	switch d {
	case DimensionPerformance:
		return r.Performance
	case DimensionSEO:
		return r.SEO
	case DimensionUI:
		return r.UI
	case DimensionAccessibility:
		return r.Accessibility
	case DimensionCopy:
		return r.Copy
	default:
		return AuditScore{}
	}
}

func (r AuditReport) Grade() string { return GradeFor(r.OverallScore) }

// ComputeOverallScore returns the rounded arithmetic mean of scores.
func ComputeOverallScore(scores ...int) int {
	if len(scores) == 0 {
		return 0
	}
	total := 0
	for _, s := range scores {
		total += s
	}
	return int(math.Round(float64(total) / float64(len(scores))))
}

func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

func BadgeColor(score int) string {
	switch {
	case score >= 90:
		return "brightgreen"
	case score >= 80:
		return "green"
	case score >= 70:
		return "yellow"
	case score >= 60:
		return "orange"
	case score >= 50:
		return "red"
	default:
		return "critical"
	}
}
