package domain

import "context"

// PageFetcher retrieves the raw markup of an audited page.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*Page, error)
}

// Page is a successfully fetched document.
type Page struct {
	URL         string `json:"url"`
	HTML        string `json:"-"`
	ContentType string `json:"content_type,omitempty"`
	StatusCode  int    `json:"status_code"`
}

// EventStore records generic events such as completed audits.
type EventStore interface {
	Record(ctx context.Context, event Event) error
	// Recent returns up to limit events of the category, newest first.
	Recent(ctx context.Context, category string, limit int) ([]Event, error)
}

// ConfigLoader loads the audit configuration.
type ConfigLoader interface {
	Load(path string) (Config, error)
}

// GitInfo resolves version-control metadata for local files.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}
