package domain

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"
)

// EventCategoryAudit is the category under which audit reports are stored.
const EventCategoryAudit = "audit"

// Event is a generic record in the event store.
type Event struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Label     string          `json:"label"`
	Domain    string          `json:"domain,omitempty"`
	Value     float64         `json:"value"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewAuditEvent wraps a report as an "audit" event: the label is the
// audited URL, the value its overall score and the metadata the full report.
func NewAuditEvent(report AuditReport) (Event, error) {
	meta, err := json.Marshal(report)
	if err != nil {
		return Event{}, fmt.Errorf("marshaling report: %w", err)
	}
	return Event{
		ID:        uuid.NewString(),
		Category:  EventCategoryAudit,
		Label:     report.URL,
		Domain:    RegistrableDomain(report.URL),
		Value:     float64(report.OverallScore),
		Metadata:  meta,
		CreatedAt: report.Timestamp,
	}, nil
}

// Report decodes the audit report carried in the event metadata.
func (e Event) Report() (AuditReport, error) {
	var r AuditReport
	if len(e.Metadata) == 0 {
		return r, fmt.Errorf("event %s has no metadata", e.ID)
	}
	if err := json.Unmarshal(e.Metadata, &r); err != nil {
		return r, fmt.Errorf("decoding event %s: %w", e.ID, err)
	}
	return r, nil
}

// RegistrableDomain returns the eTLD+1 of rawURL, falling back to the bare
// host when the public suffix list has no answer.
func RegistrableDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := u.Hostname()
	if host == "" {
		return ""
	}
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return registrable
}
