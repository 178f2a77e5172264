package scoring

import (
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
)

// Label turns a CamelCase check code into a sentence-case label, e.g.
// "MissingMetaDescription" becomes "Missing meta description". Acronyms such
// as "CTA" keep their case.
func Label(code string) string {
	words := camelcase.Split(code)
	if len(words) == 0 {
		return ""
	}
	for i := 1; i < len(words); i++ {
		if isTitleWord(words[i]) {
			words[i] = strings.ToLower(words[i])
		}
	}
	return strings.Join(words, " ")
}

// isTitleWord reports whether w is an initial capital followed by lower case.
func isTitleWord(w string) bool {
	runes := []rune(w)
	if len(runes) < 2 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}
