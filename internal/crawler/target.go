package crawler

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Target is one seed site with its page budget and politeness delay.
// Immutable for the run's duration.
type Target struct {
	Seed     *url.URL
	Site     string // base prefix for same-site scoping
	MaxPages int    // hard cap on fetch attempts, failures included
	Delay    time.Duration
}

// NewTarget validates a seed URL and derives the site scoping prefix.
func NewTarget(seed string, maxPages int, delay time.Duration) (Target, error) {
	u, err := url.Parse(strings.TrimSpace(seed))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Target{}, fmt.Errorf("invalid seed URL %q", seed)
	}
	if maxPages <= 0 {
		maxPages = 5
	}
	return Target{
		Seed:     u,
		Site:     strings.TrimSuffix(u.String(), "/"),
		MaxPages: maxPages,
		Delay:    delay,
	}, nil
}
