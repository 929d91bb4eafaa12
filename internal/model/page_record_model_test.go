package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mireku/crimesift-api/internal/model"
)

// TestPageRecordToDTO tests the conversion of PageRecord model to PageRecordDTO.
func TestPageRecordToDTO(t *testing.T) {
	fetchedAt := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	rec := &model.PageRecord{
		ID:             1,
		URL:            "https://example.test/crime",
		Site:           "https://example.test/crime",
		FetchedAt:      fetchedAt,
		Headings:       []string{"Crime Reports"},
		Tables:         []string{"<table><tr><td>x</td></tr></table>"},
		TextBlocks:     []string{"A robbery occurred."},
		Emails:         []string{"tips@police.test"},
		Links:          []string{"https://example.test/crime/p2"},
		DatasetLinks:   []string{"https://example.test/stats.csv"},
		CandidateNames: []string{"John Smith"},
		CandidateDates: []string{"January 5, 2024"},
		CrimeSentences: []string{"John Smith was arrested"},
	}

	dto := rec.ToDTO()

	assert.Equal(t, rec.ID, dto.ID)
	assert.Equal(t, rec.URL, dto.URL)
	assert.Equal(t, rec.Site, dto.Site)
	assert.Equal(t, fetchedAt, dto.FetchedAt)
	assert.Equal(t, rec.Headings, dto.Headings)
	assert.Equal(t, rec.Tables, dto.Tables)
	assert.Equal(t, rec.TextBlocks, dto.TextBlocks)
	assert.Equal(t, rec.Emails, dto.Emails)
	assert.Equal(t, rec.Links, dto.Links)
	assert.Equal(t, rec.DatasetLinks, dto.DatasetLinks)
	assert.Equal(t, rec.CandidateNames, dto.CandidateNames)
	assert.Equal(t, rec.CandidateDates, dto.CandidateDates)
	assert.Equal(t, rec.CrimeSentences, dto.CrimeSentences)
}

// TestHasEntityFields tests the entity completeness rule.
func TestHasEntityFields(t *testing.T) {
	complete := &model.PageRecord{
		CandidateNames: []string{"John Smith"},
		CandidateDates: []string{"2024-01-05"},
		CrimeSentences: []string{"he was arrested"},
	}
	assert.True(t, complete.HasEntityFields())

	missingDates := &model.PageRecord{
		CandidateNames: []string{"John Smith"},
		CrimeSentences: []string{"he was arrested"},
	}
	assert.False(t, missingDates.HasEntityFields())

	missingSentences := &model.PageRecord{
		CandidateNames: []string{"John Smith"},
		CandidateDates: []string{"2024-01-05"},
	}
	assert.False(t, missingSentences.HasEntityFields())

	empty := &model.PageRecord{}
	assert.False(t, empty.HasEntityFields())
}
