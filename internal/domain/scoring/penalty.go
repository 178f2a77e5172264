package scoring

import "github.com/abdidvp/siteaudit/internal/domain"

// maxScore is where every analyzer starts; checks only ever subtract from it.
const maxScore = 100

// cappedPenalty scales a per-occurrence penalty by count and bounds the
// total so one check category cannot dominate a score.
func cappedPenalty(perOccurrence, count, limit int) int {
	if count <= 0 {
		return 0
	}
	return min(limit, perOccurrence*count)
}

// scorecard accumulates the failed checks of one analyzer run.
type scorecard struct {
	score           int
	issues          []string
	recommendations []string
}

func newScorecard() *scorecard {
	return &scorecard{
		score:           maxScore,
		issues:          []string{},
		recommendations: []string{},
	}
}

// fail records a failed check: one issue, its paired recommendation and the
// deducted points.
func (s *scorecard) fail(c Check, points int, issue string) {
	s.score -= points
	s.issues = append(s.issues, issue)
	s.recommendations = append(s.recommendations, c.Recommendation)
}

func (s *scorecard) result() domain.AuditScore {
	return domain.AuditScore{
		Score:           max(0, s.score),
		Issues:          s.issues,
		Recommendations: s.recommendations,
	}
}
