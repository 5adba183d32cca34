package fetch

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/openpress/biascope/internal/model"
)

// Fetcher retrieves article pages for the scan and batch commands.
// It is the only networked component in the repo; the scoring engine
// never sees it.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	robots     *RobotsChecker // nil when robots compliance is disabled
	limiter    *Limiter
}

// Result contains the extracted article content and fetch metadata
type Result struct {
	Title       string
	Text        string
	FinalURL    string
	StatusCode  int
	ContentType string
}

// NewFetcher creates a fetcher from the HTTP configuration
func NewFetcher(cfg model.HTTPConfig) *Fetcher {
	transport := &http.Transport{}
	if cfg.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	var robots *RobotsChecker
	if cfg.RespectRobots {
		robots = NewRobotsChecker(cfg.UserAgent, cfg.Timeout)
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
		robots:    robots,
		limiter:   NewLimiter(cfg.RatePerSecond, cfg.RateBurst),
	}
}

// Fetch retrieves one URL and extracts its title and visible article text
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Result, error) {
	if err := f.limiter.Wait(ctx, rawURL); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	if f.robots != nil {
		allowed, delay, err := f.robots.CanFetch(ctx, rawURL)
		if err == nil && !allowed {
			return nil, fmt.Errorf("blocked by robots.txt: %s", rawURL)
		}
		// Robots fetch errors fail open: missing robots.txt means allowed.
		if delay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	title, text, err := ExtractArticle(string(body))
	if err != nil {
		return nil, fmt.Errorf("extract article: %w", err)
	}

	return &Result{
		Title:       title,
		Text:        text,
		FinalURL:    resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
