package history_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/siteaudit/internal/adapters/outbound/history"
	"github.com/abdidvp/siteaudit/internal/domain"
)

func auditEvent(t *testing.T, url string, overall int) domain.Event {
	t.Helper()
	scores := map[domain.Dimension]domain.AuditScore{}
	for _, d := range domain.Dimensions {
		scores[d] = domain.AuditScore{Score: overall, Issues: []string{}, Recommendations: []string{}}
	}
	report := domain.NewAuditReport(url, scores, time.Date(2026, 2, 25, 10, 0, 0, 0, time.UTC))
	event, err := domain.NewAuditEvent(report)
	require.NoError(t, err)
	return event
}

func TestFileStore_RecordAndRecent(t *testing.T) {
	store := history.New(filepath.Join(t.TempDir(), "events.json"))
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, auditEvent(t, "https://example.com", 47)))

	events, err := store.Recent(ctx, domain.EventCategoryAudit, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "https://example.com", events[0].Label)
	assert.Equal(t, 47.0, events[0].Value)

	report, err := events[0].Report()
	require.NoError(t, err)
	assert.Equal(t, 47, report.OverallScore)
}

func TestFileStore_RecentNewestFirst(t *testing.T) {
	store := history.New(filepath.Join(t.TempDir(), "events.json"))
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, auditEvent(t, "https://a.example", 47)))
	require.NoError(t, store.Record(ctx, auditEvent(t, "https://b.example", 62)))
	require.NoError(t, store.Record(ctx, auditEvent(t, "https://c.example", 85)))

	events, err := store.Recent(ctx, domain.EventCategoryAudit, 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "https://c.example", events[0].Label)
	assert.Equal(t, "https://b.example", events[1].Label)

	all, err := store.Recent(ctx, domain.EventCategoryAudit, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestFileStore_FiltersCategory(t *testing.T) {
	store := history.New(filepath.Join(t.TempDir(), "events.json"))
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, auditEvent(t, "https://a.example", 47)))
	require.NoError(t, store.Record(ctx, domain.Event{ID: "x", Category: "page_view", Label: "/"}))

	events, err := store.Recent(ctx, domain.EventCategoryAudit, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "https://a.example", events[0].Label)
}

func TestFileStore_RecentEmpty(t *testing.T) {
	store := history.New(filepath.Join(t.TempDir(), "events.json"))

	events, err := store.Recent(context.Background(), domain.EventCategoryAudit, 10)
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestFileStore_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "events.json")
	store := history.New(path)

	require.NoError(t, store.Record(context.Background(), auditEvent(t, "https://example.com", 50)))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))
	store := history.New(path)

	_, err := store.Recent(context.Background(), domain.EventCategoryAudit, 10)
	assert.Error(t, err)
	assert.Error(t, store.Record(context.Background(), auditEvent(t, "https://example.com", 50)))
}

func TestFileStore_ConcurrentRecords(t *testing.T) {
	store := history.New(filepath.Join(t.TempDir(), "events.json"))
	ctx := context.Background()

	events := make([]domain.Event, 20)
	for i := range events {
		events[i] = auditEvent(t, fmt.Sprintf("https://%d.example", i), i)
	}

	var wg sync.WaitGroup
	for _, e := range events {
		wg.Add(1)
		go func(e domain.Event) {
			defer wg.Done()
			assert.NoError(t, store.Record(ctx, e))
		}(e)
	}
	wg.Wait()

	recorded, err := store.Recent(ctx, domain.EventCategoryAudit, 0)
	require.NoError(t, err)
	assert.Len(t, recorded, 20)
}
