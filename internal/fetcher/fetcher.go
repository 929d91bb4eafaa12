package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
)

// Fetch outcome sentinels; callers classify failures with errors.Is.
var (
	// ErrUnreachable marks a direct fetch that failed: network error,
	// timeout, robots denial, or a non-2xx status.
	ErrUnreachable = errors.New("target unreachable")

	// ErrRenderFailed marks a rendered fetch whose browser session could
	// not navigate or materialize the DOM.
	ErrRenderFailed = errors.New("render failed")
)

// Fetcher retrieves the raw HTML of a URL. It never retries; retry and
// delay accounting belong to the crawl engine.
type Fetcher interface {
	Fetch(ctx context.Context, u *url.URL) (string, error)
}

// Options configures strategy selection and the direct HTTP client.
type Options struct {
	Timeout       time.Duration // per-request timeout, default 10s
	Settle        time.Duration // rendered-DOM settle period, default 3s
	RenderedHosts []string      // hosts fetched through the renderer
	UserAgents    []string      // rotation pool for direct fetches
	RespectRobots bool
	Logger        *log.Logger
}

// New creates a Fetcher backed by a plain HTTP client plus a headless
// Chrome renderer for hosts that need client-side rendering.
func New(opts Options) Fetcher {
	return NewWithRenderer(opts, chromeRenderer{})
}

// NewWithRenderer creates a Fetcher with a caller-supplied renderer.
func NewWithRenderer(opts Options, r Renderer) Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Settle <= 0 {
		opts.Settle = 3 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = log.WithPrefix("fetcher")
	}

	rendered := make(map[string]struct{}, len(opts.RenderedHosts))
	for _, h := range opts.RenderedHosts {
		rendered[h] = struct{}{}
	}

	var gate *robotsGate
	if opts.RespectRobots {
		gate = newRobotsGate(opts.Timeout)
	}

	return &fetcher{
		client:   &http.Client{Timeout: opts.Timeout},
		headers:  newRotatingHeaders(opts.UserAgents),
		renderer: r,
		timeout:  opts.Timeout,
		settle:   opts.Settle,
		rendered: rendered,
		robots:   gate,
		logger:   opts.Logger,
	}
}

type fetcher struct {
	client   *http.Client
	headers  HeaderProvider
	renderer Renderer
	timeout  time.Duration
	settle   time.Duration
	rendered map[string]struct{}
	robots   *robotsGate
	logger   *log.Logger
}

// Fetch picks the strategy by host and returns the page HTML.
func (f *fetcher) Fetch(ctx context.Context, u *url.URL) (string, error) {
	if _, ok := f.rendered[u.Hostname()]; ok {
		return f.fetchRendered(ctx, u)
	}
	return f.fetchDirect(ctx, u)
}

// fetchDirect issues a single GET with rotated headers.
func (f *fetcher) fetchDirect(ctx context.Context, u *url.URL) (string, error) {
	if f.robots != nil && !f.robots.allowed(u) {
		return "", fmt.Errorf("%w: %s disallowed by robots.txt", ErrUnreachable, u)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	req.Header = f.headers.Headers()

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s returned status %d", ErrUnreachable, u, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", ErrUnreachable, err)
	}

	f.logger.Debug("fetched", "url", u.String(), "bytes", len(body))
	return string(body), nil
}

// fetchRendered delegates to the renderer; the browser session is scoped
// to this call and torn down on every exit path. The deadline covers the
// navigation timeout plus the settle period, so a hung page cannot stall
// the crawl loop.
func (f *fetcher) fetchRendered(ctx context.Context, u *url.URL) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout+f.settle)
	defer cancel()

	html, err := f.renderer.Render(ctx, u.String(), f.settle)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRenderFailed, u, err)
	}
	f.logger.Debug("rendered", "url", u.String(), "bytes", len(html))
	return html, nil
}
