package crawler

// SiteResult summarizes one site's crawl: how many fetches were attempted,
// how many records were persisted, how many fetches or saves failed, and
// how many extractions were skipped as incomplete.
type SiteResult struct {
	Site       string
	Attempts   int
	PagesSaved int
	Failures   int
	Skipped    int
}
