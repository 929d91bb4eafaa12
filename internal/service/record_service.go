package service

import (
	"github.com/mireku/crimesift-api/internal/model"
	"github.com/mireku/crimesift-api/internal/repository"
)

// RecordService exposes read access to persisted page records.
type RecordService interface {
	List() ([]model.PageRecordDTO, error)
	Get(rawURL string) (*model.PageRecordDTO, error)
}

type recordService struct {
	repo repository.PageRepository
}

// NewRecordService constructs a RecordService.
func NewRecordService(r repository.PageRepository) RecordService {
	return &recordService{repo: r}
}

// List returns all stored records in insertion order.
func (s *recordService) List() ([]model.PageRecordDTO, error) {
	recs, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}
	dtos := make([]model.PageRecordDTO, len(recs))
	for i := range recs {
		dtos[i] = *recs[i].ToDTO()
	}
	return dtos, nil
}

func (s *recordService) Get(rawURL string) (*model.PageRecordDTO, error) {
	rec, err := s.repo.FindByURL(rawURL)
	if err != nil {
		return nil, err
	}
	return rec.ToDTO(), nil
}
