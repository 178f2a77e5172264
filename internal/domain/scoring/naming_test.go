package scoring_test

import (
	"testing"

	"github.com/abdidvp/siteaudit/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
)

func TestLabel_SentenceCase(t *testing.T) {
	cases := map[string]string{
		"MissingMetaDescription": "Missing meta description",
		"InsecureScheme":         "Insecure scheme",
		"TitleLength":            "Title length",
		"MissingLang":            "Missing lang",
	}
	for code, want := range cases {
		assert.Equal(t, want, scoring.Label(code), code)
	}
}

func TestLabel_KeepsAcronyms(t *testing.T) {
	assert.Equal(t, "Missing CTA", scoring.Label("MissingCTA"))
}

func TestLabel_Empty(t *testing.T) {
	assert.Equal(t, "", scoring.Label(""))
}
