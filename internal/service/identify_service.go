package service

import (
	"fmt"
	"strings"

	"github.com/mireku/crimesift-api/internal/model"
	"github.com/mireku/crimesift-api/internal/repository"
)

// IdentifyService matches a name against the candidate names of stored
// records. This is a mocked identification: it only reports where a name
// was seen, no external lookup happens.
type IdentifyService interface {
	ByName(name string) (*model.IdentificationDTO, error)
}

type identifyService struct {
	repo repository.PageRepository
}

// NewIdentifyService constructs an IdentifyService.
func NewIdentifyService(r repository.PageRepository) IdentifyService {
	return &identifyService{repo: r}
}

// ByName scans stored candidate names for a case-insensitive match.
func (s *identifyService) ByName(name string) (*model.IdentificationDTO, error) {
	recs, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(name))
	var sources []string
	for i := range recs {
		for _, cand := range recs[i].CandidateNames {
			if strings.ToLower(cand) == needle {
				sources = append(sources, recs[i].URL)
				break
			}
		}
	}

	if len(sources) == 0 {
		return &model.IdentificationDTO{
			Name:    name,
			Details: "no match in stored records",
		}, nil
	}
	return &model.IdentificationDTO{
		Name:    name,
		Details: fmt.Sprintf("appears in %d stored record(s)", len(sources)),
		Sources: sources,
	}, nil
}
