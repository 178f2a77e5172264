package scoring

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/abdidvp/siteaudit/internal/domain"
)

var (
	scriptBlockPattern = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	styleBlockPattern  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	tagPattern         = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
	sentenceSplitter   = regexp.MustCompile(`[.!?]+`)
	ctaPattern         = regexp.MustCompile(`(?i)contact|get started|sign up|buy now|learn more|try|demo|free`)
	valuePattern       = regexp.MustCompile(`(?i)save|improve|increase|reduce|boost|grow|better|fast`)
)

const (
	minWordCount           = 300
	maxAvgWordsPerSentence = 25
	minCountedWordLength   = 4
)

// AnalyzeCopy scores the visible text: volume, calls to action, sentence
// length and value vocabulary.
func AnalyzeCopy(html string) domain.AuditScore {
	card := newScorecard()

	text := ExtractText(html)
	words := CountWords(text)

	if words < minWordCount {
		card.fail(checkThinContent, 20,
			fmt.Sprintf("Low word count (%d words, minimum 300)", words))
	}

	if !ctaPattern.MatchString(text) {
		card.fail(checkMissingCTA, 15, "No clear call to action found")
	}

	if avg := AverageSentenceLength(text, words); avg > maxAvgWordsPerSentence {
		card.fail(checkLongSentences, 10,
			fmt.Sprintf("Sentences are too long (average %.1f words)", avg))
	}

	if !valuePattern.MatchString(text) {
		card.fail(checkMissingValueProposition, 15, "No value proposition language found")
	}

	return card.result()
}

// ExtractText strips scripts, styles and tags from html and collapses
// whitespace.
func ExtractText(html string) string {
	text := scriptBlockPattern.ReplaceAllString(html, "")
	text = styleBlockPattern.ReplaceAllString(text, "")
	text = tagPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// CountWords counts whitespace-separated tokens longer than three characters.
// Short words are deliberately not counted.
func CountWords(text string) int {
	n := 0
	for _, w := range strings.Fields(text) {
		if utf8.RuneCountInString(w) >= minCountedWordLength {
			n++
		}
	}
	return n
}

// AverageSentenceLength divides words by the number of non-empty sentences
// delimited by '.', '!' or '?'. Text without sentences averages 0.
func AverageSentenceLength(text string, words int) float64 {
	sentences := 0
	for _, s := range sentenceSplitter.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	if sentences == 0 {
		return 0
	}
	return float64(words) / float64(sentences)
}

// visibleText returns the trimmed text content of an HTML fragment.
func visibleText(fragment string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(fragment, ""))
}
