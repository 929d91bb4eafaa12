package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mireku/crimesift-api/internal/model"
)

// PageRepository defines DB ops around crawled page records. Records are
// keyed by URL; Upsert is atomic per key and last-write-wins, which keeps
// re-crawls idempotent.
type PageRepository interface {
	Upsert(rec *model.PageRecord) error
	ListAll() ([]model.PageRecord, error)
	FindByURL(rawURL string) (*model.PageRecord, error)
	CountAll() (int64, error)
}

type pageRepo struct {
	db *gorm.DB
}

func NewPageRepo(db *gorm.DB) PageRepository {
	return &pageRepo{db: db}
}

// Upsert inserts the record or, when a row with the same URL exists,
// replaces it in place.
func (r *pageRepo) Upsert(rec *model.PageRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "url"}},
		UpdateAll: true,
	}).Create(rec).Error
}

// ListAll returns records in storage-insertion order.
func (r *pageRepo) ListAll() ([]model.PageRecord, error) {
	var recs []model.PageRecord
	if err := r.db.Order("id ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *pageRepo) FindByURL(rawURL string) (*model.PageRecord, error) {
	var rec model.PageRecord
	if err := r.db.Where("url = ?", rawURL).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *pageRepo) CountAll() (int64, error) {
	var n int64
	err := r.db.Model(&model.PageRecord{}).Count(&n).Error
	return n, err
}
