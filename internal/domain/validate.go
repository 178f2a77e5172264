package domain

import (
	"regexp"
	"strings"
)

var auditURLPattern = regexp.MustCompile(`^https?://.+`)

// ValidateAuditRequest checks the request before any network call.
func ValidateAuditRequest(req AuditRequest) error {
	return ValidateURL(req.URL)
}

// ValidateURL requires an http or https URL with something after the scheme.
func ValidateURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return &ValidationError{Field: "url", Message: "URL is required"}
	}
	if !auditURLPattern.MatchString(raw) {
		return &ValidationError{Field: "url", Message: "URL must start with http:// or https://"}
	}
	return nil
}
