package crawler

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mireku/crimesift-api/internal/extractor"
	"github.com/mireku/crimesift-api/internal/fetcher"
	"github.com/mireku/crimesift-api/internal/frontier"
	"github.com/mireku/crimesift-api/internal/repository"
)

// Engine drives the crawl loop: pull from the frontier, fetch, extract,
// feed discovered links back, persist. Sites run as independent units of
// work bounded by maxParallel; within a site the loop is strictly
// sequential so the politeness delay holds.
type Engine struct {
	fetch       fetcher.Fetcher
	extract     extractor.Extractor
	repo        repository.PageRepository
	entityMode  bool
	maxParallel int
	logger      *log.Logger
}

// Options configures an Engine for one run.
type Options struct {
	Fetcher          fetcher.Fetcher
	Extractor        extractor.Extractor
	Repo             repository.PageRepository
	EntityMode       bool
	MaxParallelSites int
	Logger           *log.Logger
}

// New creates an Engine.
func New(opts Options) *Engine {
	if opts.MaxParallelSites <= 0 {
		opts.MaxParallelSites = 4
	}
	if opts.Logger == nil {
		opts.Logger = log.WithPrefix("crawler")
	}
	return &Engine{
		fetch:       opts.Fetcher,
		extract:     opts.Extractor,
		repo:        opts.Repo,
		entityMode:  opts.EntityMode,
		maxParallel: opts.MaxParallelSites,
		logger:      opts.Logger,
	}
}

// Run crawls all targets and returns one result per target, in input order.
// Cancelling ctx stops in-flight sites at their next delay or fetch
// boundary; records already persisted are untouched.
func (e *Engine) Run(ctx context.Context, targets []Target) []SiteResult {
	results := make([]SiteResult, len(targets))
	sem := make(chan struct{}, e.maxParallel)
	var wg sync.WaitGroup

	for i, t := range targets {
		wg.Add(1)
		go func(i int, t Target) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = e.crawlSite(ctx, t)
		}(i, t)
	}

	wg.Wait()
	return results
}

// crawlSite runs the per-site state machine: fetch, parse, enqueue new
// links, persist, delay, repeat until the frontier drains or the attempt
// budget is spent.
func (e *Engine) crawlSite(ctx context.Context, t Target) SiteResult {
	res := SiteResult{Site: t.Site}
	front := frontier.New(t.Site)
	front.Enqueue(t.Seed.String())

	for res.Attempts < t.MaxPages {
		if ctx.Err() != nil {
			e.logger.Info("run cancelled", "site", t.Site)
			break
		}

		entry, ok := front.Next()
		if !ok {
			break
		}
		// Visited before the fetch starts, so a URL is never dispatched
		// twice even if the fetch fails.
		front.MarkVisited(entry.URL)

		if res.Attempts > 0 {
			if err := wait(ctx, t.Delay); err != nil {
				break
			}
		}
		res.Attempts++

		u, err := url.Parse(entry.URL)
		if err != nil {
			res.Failures++
			continue
		}

		html, err := e.fetch.Fetch(ctx, u)
		if err != nil {
			e.logger.Warn("fetch failed", "url", entry.URL, "err", err)
			res.Failures++
			continue
		}

		rec := e.extract.Parse(html, u)
		rec.Site = t.Site

		// Discovery happens before persistence so frontier growth is not
		// lost if the save fails.
		for _, link := range rec.Links {
			front.Enqueue(link)
		}
		for _, link := range rec.DatasetLinks {
			front.Enqueue(link)
		}

		if e.entityMode && !rec.HasEntityFields() {
			e.logger.Debug("incomplete entity record, not persisted", "url", entry.URL)
			res.Skipped++
			continue
		}

		if err := e.repo.Upsert(rec); err != nil {
			e.logger.Error("save failed", "url", entry.URL, "err", err)
			res.Failures++
			continue
		}
		res.PagesSaved++
		e.logger.Info("page saved",
			"url", entry.URL,
			"links", len(rec.Links),
			"pending", front.PendingCount(),
		)
	}

	e.logger.Info("site done",
		"site", t.Site,
		"attempts", res.Attempts,
		"saved", res.PagesSaved,
		"failures", res.Failures,
	)
	return res
}

// wait blocks for the politeness delay, returning early if ctx is cancelled.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
