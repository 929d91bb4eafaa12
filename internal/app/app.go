package app

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/mireku/crimesift-api/configs"
	"github.com/mireku/crimesift-api/internal/fetcher"
	"github.com/mireku/crimesift-api/internal/handler"
	"github.com/mireku/crimesift-api/internal/repository"
	"github.com/mireku/crimesift-api/internal/server"
	"github.com/mireku/crimesift-api/internal/service"
)

// hookable functions for dependency injection
var (
	LoadConfig = configs.Load
	NewDB      = repository.NewDB
	MigrateDB  = repository.Migrate
)

// Run loads config, opens the DB, runs migrations, wires the crawl stack,
// and serves the REST boundary until the server exits.
func Run() error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("config load error: %w", err)
	}

	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	db, err := NewDB(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}

	if err := MigrateDB(db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	pageRepo := repository.NewPageRepo(db)

	fetch := fetcher.New(fetcher.Options{
		Timeout:       cfg.FetchTimeout,
		Settle:        cfg.RenderSettle,
		RenderedHosts: cfg.RenderedHosts,
		UserAgents:    cfg.UserAgents,
		RespectRobots: cfg.RespectRobots,
	})

	crawlSvc := service.NewCrawlService(pageRepo, fetch, cfg)
	recordSvc := service.NewRecordService(pageRepo)
	identifySvc := service.NewIdentifyService(pageRepo)
	healthSvc := service.NewHealthService(db, pageRepo, cfg.ServiceName)

	gin.SetMode(cfg.ServerMode)
	r := gin.New()
	server.RegisterRoutes(r,
		[]server.RouteRegistrar{
			handler.NewHealthHandler(healthSvc),
		},
		[]server.RouteRegistrar{
			handler.NewCrawlHandler(crawlSvc),
			handler.NewRecordHandler(recordSvc),
			handler.NewIdentifyHandler(identifySvc),
		},
	)

	addr := cfg.ServerHost + ":" + cfg.ServerPort
	log.Info("server starting", "addr", addr, "service", cfg.ServiceName)
	if err := r.Run(addr); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
