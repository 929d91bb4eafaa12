package model

// Crawl modes selectable per run.
const (
	ModeStructural = "structural"
	ModeEntities   = "entities"
)

// CrawlRequest defines the fields an external caller supplies to trigger a run.
// Zero values fall back to the configured defaults.
type CrawlRequest struct {
	SeedURLs        []string `json:"seed_urls" binding:"required,min=1,dive,url"`
	MaxPagesPerSite int      `json:"max_pages_per_site" binding:"omitempty,gte=1"`
	DelaySeconds    float64  `json:"delay_seconds" binding:"omitempty,gte=0"`
	Mode            string   `json:"mode" binding:"omitempty,oneof=structural entities"`
}

// SiteResultDTO summarizes one site's crawl outcome.
type SiteResultDTO struct {
	Site       string `json:"site"`
	Attempts   int    `json:"attempts"`
	PagesSaved int    `json:"pages_saved"`
	Failures   int    `json:"failures"`
	Skipped    int    `json:"skipped"`
}

// CrawlSummary is the definite completion status returned to the caller.
// Partial failures show up as missing records, never as an error.
type CrawlSummary struct {
	Sites           []SiteResultDTO `json:"sites"`
	TotalAttempts   int             `json:"total_attempts"`
	TotalPagesSaved int             `json:"total_pages_saved"`
	TotalFailures   int             `json:"total_failures"`
}

// IdentifyNameInput carries a name lookup against stored candidate names.
type IdentifyNameInput struct {
	Name string `json:"name" binding:"required"`
}

// IdentificationDTO is a mocked identification result.
type IdentificationDTO struct {
	Name    string   `json:"name"`
	Details string   `json:"details"`
	Sources []string `json:"sources"`
}
