package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/abdidvp/siteaudit/internal/domain"
)

const defaultTimeout = 15 * time.Second

// HTTPFetcher implements domain.PageFetcher with a single GET per page.
type HTTPFetcher struct {
	client       *http.Client
	userAgent    string
	maxBodyBytes int64
}

// New builds a fetcher from the fetch settings of cfg.
func New(cfg domain.Config) *HTTPFetcher {
	timeout := cfg.Fetch.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return NewWithClient(&http.Client{Timeout: timeout}, cfg.UserAgent(), cfg.Fetch.MaxBodyBytes)
}

// NewWithClient uses client as given; its Timeout is not modified.
func NewWithClient(client *http.Client, userAgent string, maxBodyBytes int64) *HTTPFetcher {
	return &HTTPFetcher{client: client, userAgent: userAgent, maxBodyBytes: maxBodyBytes}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*domain.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &domain.TransportError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &domain.TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.FetchError{URL: url, StatusCode: resp.StatusCode, StatusText: statusText(resp)}
	}

	contentType := resp.Header.Get("Content-Type")
	var body io.Reader = resp.Body
	if f.maxBodyBytes > 0 {
		body = io.LimitReader(body, f.maxBodyBytes)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, &domain.TransportError{URL: url, Err: err}
	}

	page := &domain.Page{
		URL:         url,
		ContentType: contentType,
		StatusCode:  resp.StatusCode,
	}
	// Empty 2xx bodies (204, empty 200) are valid pages; charset.NewReader
	// would fail on them with io.EOF.
	if len(raw) == 0 {
		return page, nil
	}

	decoded, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		return nil, &domain.TransportError{URL: url, Err: fmt.Errorf("decoding %s body: %w", contentType, err)}
	}
	data, err := io.ReadAll(decoded)
	if err != nil {
		return nil, &domain.TransportError{URL: url, Err: fmt.Errorf("decoding %s body: %w", contentType, err)}
	}
	page.HTML = string(data)
	return page, nil
}

// statusText prefers the reason phrase sent by the server.
func statusText(resp *http.Response) string {
	if text := strings.TrimSpace(strings.TrimPrefix(resp.Status, fmt.Sprint(resp.StatusCode))); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
