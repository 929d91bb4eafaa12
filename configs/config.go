package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// defaultUserAgents is the rotation pool used when USER_AGENTS is not set.
var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Safari/605.1.15",
	"Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:89.0) Gecko/20100101 Firefox/89.0",
}

// Config holds the application configuration values.
type Config struct {
	ServiceName      string
	ServerHost       string
	ServerPort       string
	ServerMode       string
	DatabaseHost     string
	DatabasePort     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseName     string
	DatabaseURL      string
	LogLevel         string

	// Crawl behavior
	MaxPagesPerSite  int
	CrawlDelay       time.Duration
	FetchTimeout     time.Duration
	RenderSettle     time.Duration
	MaxParallelSites int
	CrawlMode        string
	RespectRobots    bool

	// Fetch strategy inputs
	RenderedHosts []string
	UserAgents    []string
	DatasetExts   []string
}

// Load reads configuration exclusively from environment variables (optionally .env file).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.ServiceName = getEnv("SERVICE_NAME", "CrimeSift API")
	cfg.ServerHost = getEnv("HOST", "0.0.0.0")
	cfg.ServerPort = getEnv("PORT", "8080")
	cfg.ServerMode = getEnv("GIN_MODE", "debug")

	// Database
	cfg.DatabaseHost = getEnv("DB_HOST", "localhost")
	cfg.DatabasePort = getEnv("DB_PORT", "3306")
	cfg.DatabaseUser = getEnv("DB_USER", "")
	cfg.DatabasePassword = getEnv("DB_PASSWORD", "")
	cfg.DatabaseName = getEnv("DB_NAME", "")
	if cfg.DatabaseUser == "" || cfg.DatabasePassword == "" || cfg.DatabaseName == "" {
		return nil, fmt.Errorf("missing required database env vars")
	}
	// Build DSN: user:pass@tcp(host:port)/dbname?parseTime=true
	cfg.DatabaseURL = fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?parseTime=true",
		cfg.DatabaseUser, cfg.DatabasePassword,
		cfg.DatabaseHost, cfg.DatabasePort,
		cfg.DatabaseName,
	)

	// Logging
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	// Crawling
	var err error
	if cfg.MaxPagesPerSite, err = getEnvInt("MAX_PAGES_PER_SITE", 5); err != nil {
		return nil, err
	}
	if cfg.MaxParallelSites, err = getEnvInt("MAX_PARALLEL_SITES", 4); err != nil {
		return nil, err
	}
	if cfg.CrawlDelay, err = getEnvSeconds("CRAWL_DELAY_SECONDS", 2); err != nil {
		return nil, err
	}
	if cfg.FetchTimeout, err = getEnvSeconds("FETCH_TIMEOUT_SECONDS", 10); err != nil {
		return nil, err
	}
	if cfg.RenderSettle, err = getEnvSeconds("RENDER_SETTLE_SECONDS", 3); err != nil {
		return nil, err
	}

	cfg.CrawlMode = getEnv("CRAWL_MODE", "entities")
	if cfg.CrawlMode != "entities" && cfg.CrawlMode != "structural" {
		return nil, fmt.Errorf("invalid CRAWL_MODE: %q", cfg.CrawlMode)
	}
	cfg.RespectRobots = getEnv("RESPECT_ROBOTS", "false") == "true"

	cfg.RenderedHosts = splitCSV(getEnv("RENDERED_HOSTS", ""))
	cfg.DatasetExts = splitCSV(getEnv("DATASET_EXTENSIONS", ".csv,.json,.pdf"))
	cfg.UserAgents = splitCSV(getEnv("USER_AGENTS", ""))
	if len(cfg.UserAgents) == 0 {
		cfg.UserAgents = defaultUserAgents
	}

	return cfg, nil
}

// getEnv returns env var or default.
func getEnv(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

// getEnvInt parses an integer env var or returns the default.
func getEnvInt(key string, def int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return def, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

// getEnvSeconds parses a float seconds env var into a duration.
func getEnvSeconds(key string, def float64) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return time.Duration(def * float64(time.Second)), nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return time.Duration(f * float64(time.Second)), nil
}

// splitCSV splits a comma-separated value, trimming whitespace and dropping empties.
func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
