package application

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/abdidvp/siteaudit/internal/domain"
	"github.com/abdidvp/siteaudit/internal/domain/scoring"
)

// AuditService orchestrates the audit pipeline:
// validate → fetch → run analyzers in parallel → aggregate → record event.
type AuditService struct {
	fetcher   domain.PageFetcher
	store     domain.EventStore
	git       domain.GitInfo
	analyzers map[domain.Dimension]scoring.Analyzer
	log       logrus.FieldLogger
	now       func() time.Time
}

// Option customises an AuditService.
type Option func(*AuditService)

// WithEventStore records every completed audit in store. Without it audits
// are not persisted.
func WithEventStore(store domain.EventStore) Option {
	return func(s *AuditService) { s.store = store }
}

// WithGitInfo enables commit stamping of audits run against local files.
func WithGitInfo(git domain.GitInfo) Option {
	return func(s *AuditService) { s.git = git }
}

// WithClock replaces time.Now as the source of report timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *AuditService) { s.now = now }
}

// WithAnalyzers replaces the analyzer registry.
func WithAnalyzers(analyzers map[domain.Dimension]scoring.Analyzer) Option {
	return func(s *AuditService) { s.analyzers = analyzers }
}

func NewAuditService(fetcher domain.PageFetcher, log logrus.FieldLogger, opts ...Option) *AuditService {
	s := &AuditService{
		fetcher:   fetcher,
		analyzers: scoring.Analyzers(),
		log:       log,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Audit validates req, fetches the page and scores it. A failed fetch
// returns before any analyzer runs. The report is recorded when an event
// store is configured; a recording failure is logged, not returned.
func (s *AuditService) Audit(ctx context.Context, req domain.AuditRequest) (domain.AuditReport, error) {
	if err := domain.ValidateAuditRequest(req); err != nil {
		return domain.AuditReport{}, err
	}

	log := s.log.WithField("url", req.URL)
	if req.FullSite {
		log.Debug("full-site audit requested, auditing the single page")
	}

	start := time.Now()
	page, err := s.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		s.logFailure(log, err)
		return domain.AuditReport{}, err
	}

	report, err := s.Analyze(req.URL, page.HTML)
	if err != nil {
		s.logFailure(log, err)
		return domain.AuditReport{}, err
	}

	s.record(ctx, report)
	log.WithFields(logrus.Fields{
		"overall":     report.OverallScore,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("audit completed")
	return report, nil
}

// AnalyzeHTML scores markup supplied by the caller as if it were served at
// pageURL. No network call is made.
func (s *AuditService) AnalyzeHTML(ctx context.Context, pageURL, html string) (domain.AuditReport, error) {
	if err := domain.ValidateURL(pageURL); err != nil {
		return domain.AuditReport{}, err
	}
	report, err := s.Analyze(pageURL, html)
	if err != nil {
		s.logFailure(s.log.WithField("url", pageURL), err)
		return domain.AuditReport{}, err
	}
	s.record(ctx, report)
	return report, nil
}

// AnalyzeFile scores the markup stored at path as if it were served at
// pageURL. When the file lives in a git work tree the report carries the
// HEAD commit hash.
func (s *AuditService) AnalyzeFile(ctx context.Context, pageURL, path string) (domain.AuditReport, error) {
	if err := domain.ValidateURL(pageURL); err != nil {
		return domain.AuditReport{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.AuditReport{}, fmt.Errorf("reading %s: %w", path, err)
	}

	report, err := s.analyze(pageURL, string(data), s.commitHash(path))
	if err != nil {
		s.logFailure(s.log.WithField("url", pageURL), err)
		return domain.AuditReport{}, err
	}
	s.record(ctx, report)
	return report, nil
}

// Analyze runs every registered analyzer concurrently over html and
// assembles the report. It neither fetches nor records.
func (s *AuditService) Analyze(pageURL, html string) (domain.AuditReport, error) {
	return s.analyze(pageURL, html, "")
}

func (s *AuditService) analyze(pageURL, html, commitHash string) (domain.AuditReport, error) {
	for _, d := range domain.Dimensions {
		if _, ok := s.analyzers[d]; !ok {
			return domain.AuditReport{}, &domain.AnalyzerError{Dimension: d, Err: fmt.Errorf("no analyzer registered")}
		}
	}

	results := make([]domain.AuditScore, len(domain.Dimensions))

	var g errgroup.Group
	for i, d := range domain.Dimensions {
		analyzer := s.analyzers[d]
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &domain.AnalyzerError{Dimension: d, Err: fmt.Errorf("panic: %v", r)}
				}
			}()
			results[i] = analyzer(pageURL, html)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.AuditReport{}, err
	}

	byDimension := make(map[domain.Dimension]domain.AuditScore, len(results))
	for i, d := range domain.Dimensions {
		byDimension[d] = results[i]
	}
	report := domain.NewAuditReport(pageURL, byDimension, s.now())
	report.CommitHash = commitHash
	return report, nil
}

// History returns up to limit recorded audits, newest first.
func (s *AuditService) History(ctx context.Context, limit int) ([]domain.Event, error) {
	if s.store == nil {
		return []domain.Event{}, nil
	}
	events, err := s.store.Recent(ctx, domain.EventCategoryAudit, limit)
	if err != nil {
		return nil, fmt.Errorf("loading audit history: %w", err)
	}
	return events, nil
}

func (s *AuditService) record(ctx context.Context, report domain.AuditReport) {
	if s.store == nil {
		return
	}
	log := s.log.WithField("url", report.URL)
	event, err := domain.NewAuditEvent(report)
	if err != nil {
		log.WithError(err).Warn("building audit event")
		return
	}
	if err := s.store.Record(ctx, event); err != nil {
		log.WithError(err).Warn("recording audit event")
		return
	}
	log.WithField("event_id", event.ID).Debug("audit event recorded")
}

func (s *AuditService) commitHash(path string) string {
	if s.git == nil || !s.git.IsGitRepo(path) {
		return ""
	}
	hash, err := s.git.CommitHash(path)
	if err != nil {
		s.log.WithError(err).Debug("resolving commit hash")
		return ""
	}
	return hash
}

func (s *AuditService) logFailure(log logrus.FieldLogger, err error) {
	if domain.IsTargetUnreachable(err) {
		log.WithError(err).WithField("kind", "target_unreachable").Warn("audit target unreachable")
		return
	}
	log.WithError(err).WithField("kind", "internal").Error("audit failed")
}
