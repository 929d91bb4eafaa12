package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mireku/crimesift-api/configs"
	"github.com/mireku/crimesift-api/internal/crawler"
	"github.com/mireku/crimesift-api/internal/extractor"
	"github.com/mireku/crimesift-api/internal/fetcher"
	"github.com/mireku/crimesift-api/internal/model"
	"github.com/mireku/crimesift-api/internal/repository"
)

// CrawlService runs crawl requests against the configured defaults.
type CrawlService interface {
	Run(ctx context.Context, in *model.CrawlRequest) (*model.CrawlSummary, error)
}

type crawlService struct {
	repo   repository.PageRepository
	fetch  fetcher.Fetcher
	cfg    *configs.Config
	logger *log.Logger
}

// NewCrawlService constructs a CrawlService.
func NewCrawlService(repo repository.PageRepository, fetch fetcher.Fetcher, cfg *configs.Config) CrawlService {
	return &crawlService{
		repo:   repo,
		fetch:  fetch,
		cfg:    cfg,
		logger: log.WithPrefix("crawl"),
	}
}

// Run validates the request, builds one target per seed, and blocks until
// every site completes. The returned summary is the caller's definite
// completion status; per-URL failures surface only as missing records.
func (s *crawlService) Run(ctx context.Context, in *model.CrawlRequest) (*model.CrawlSummary, error) {
	if in == nil || len(in.SeedURLs) == 0 {
		return nil, errors.New("seed list is empty")
	}

	maxPages := in.MaxPagesPerSite
	if maxPages <= 0 {
		maxPages = s.cfg.MaxPagesPerSite
	}
	delay := s.cfg.CrawlDelay
	if in.DelaySeconds > 0 {
		delay = time.Duration(in.DelaySeconds * float64(time.Second))
	}
	mode := in.Mode
	if mode == "" {
		mode = s.cfg.CrawlMode
	}

	targets := make([]crawler.Target, 0, len(in.SeedURLs))
	for _, seed := range in.SeedURLs {
		t, err := crawler.NewTarget(seed, maxPages, delay)
		if err != nil {
			return nil, fmt.Errorf("invalid crawl request: %w", err)
		}
		targets = append(targets, t)
	}

	eng := crawler.New(crawler.Options{
		Fetcher:          s.fetch,
		Extractor:        extractor.New(mode, s.cfg.DatasetExts),
		Repo:             s.repo,
		EntityMode:       mode == model.ModeEntities,
		MaxParallelSites: s.cfg.MaxParallelSites,
		Logger:           s.logger,
	})

	s.logger.Info("crawl starting", "sites", len(targets), "mode", mode, "budget", maxPages)
	results := eng.Run(ctx, targets)

	summary := &model.CrawlSummary{Sites: make([]model.SiteResultDTO, len(results))}
	for i, r := range results {
		summary.Sites[i] = model.SiteResultDTO{
			Site:       r.Site,
			Attempts:   r.Attempts,
			PagesSaved: r.PagesSaved,
			Failures:   r.Failures,
			Skipped:    r.Skipped,
		}
		summary.TotalAttempts += r.Attempts
		summary.TotalPagesSaved += r.PagesSaved
		summary.TotalFailures += r.Failures
	}
	return summary, nil
}
