package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCappedPenalty_ZeroCount(t *testing.T) {
	assert.Equal(t, 0, cappedPenalty(2, 0, 20))
}

func TestCappedPenalty_NegativeCount(t *testing.T) {
	assert.Equal(t, 0, cappedPenalty(2, -3, 20))
}

func TestCappedPenalty_BelowCap(t *testing.T) {
	assert.Equal(t, 6, cappedPenalty(2, 3, 20))
}

func TestCappedPenalty_AtCap(t *testing.T) {
	assert.Equal(t, 20, cappedPenalty(2, 10, 20))
}

func TestCappedPenalty_AboveCap(t *testing.T) {
	assert.Equal(t, 15, cappedPenalty(5, 40, 15))
}

func TestScorecard_StartsClean(t *testing.T) {
	got := newScorecard().result()

	assert.Equal(t, maxScore, got.Score)
	assert.NotNil(t, got.Issues)
	assert.NotNil(t, got.Recommendations)
	assert.Empty(t, got.Issues)
}

func TestScorecard_FailPairsIssueWithRecommendation(t *testing.T) {
	card := newScorecard()
	card.fail(checkMissingTitle, 20, "Missing page title")
	card.fail(checkMissingCanonical, 5, "Missing canonical URL")

	got := card.result()
	assert.Equal(t, 75, got.Score)
	assert.Equal(t, []string{"Missing page title", "Missing canonical URL"}, got.Issues)
	assert.Equal(t, []string{checkMissingTitle.Recommendation, checkMissingCanonical.Recommendation}, got.Recommendations)
}

func TestScorecard_ClampsAtZero(t *testing.T) {
	card := newScorecard()
	for i := 0; i < 6; i++ {
		card.fail(checkMissingTitle, 20, "Missing page title")
	}

	assert.Equal(t, 0, card.result().Score)
}
