package service

import (
	"time"

	"gorm.io/gorm"

	"github.com/mireku/crimesift-api/internal/repository"
)

type HealthStatus struct {
	Service  string
	Database string
	Records  int64
	Healthy  bool
	Checked  time.Time
}

type HealthService interface {
	Check() *HealthStatus
}

type healthService struct {
	db    *gorm.DB
	repo  repository.PageRepository
	name  string
	probe func() (string, bool)
}

func NewHealthService(db *gorm.DB, repo repository.PageRepository, name string) HealthService {
	return &healthService{
		db:   db,
		repo: repo,
		name: name,
		probe: func() (string, bool) {
			if db == nil {
				return "disconnected", false
			}
			sqlDB, err := db.DB()
			if err != nil {
				return "unhealthy", false
			}
			if pingErr := sqlDB.Ping(); pingErr != nil {
				return "unhealthy", false
			}
			return "healthy", true
		},
	}
}

func (h *healthService) Check() *HealthStatus {
	dbStatus, ok := h.probe()
	var records int64
	if ok && h.repo != nil {
		if n, err := h.repo.CountAll(); err == nil {
			records = n
		}
	}
	return &HealthStatus{
		Service:  h.name,
		Database: dbStatus,
		Records:  records,
		Healthy:  ok,
		Checked:  time.Now().UTC(),
	}
}
