package model

import (
	"time"
)

// PageRecord holds the structured extraction of one fetched page.
// Records are keyed by URL: re-crawling the same page replaces the row.
type PageRecord struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	URL       string    `gorm:"type:varchar(2048);not null;uniqueIndex:idx_page_records_url,length:500" json:"url"`
	Site      string    `gorm:"type:varchar(512);not null;index" json:"site"`
	FetchedAt time.Time `gorm:"not null" json:"fetched_at"`

	Headings     []string `gorm:"type:json;serializer:json" json:"headings"`
	Tables       []string `gorm:"type:json;serializer:json" json:"tables"`
	TextBlocks   []string `gorm:"type:json;serializer:json" json:"text_blocks"`
	Emails       []string `gorm:"type:json;serializer:json" json:"emails"`
	Links        []string `gorm:"type:json;serializer:json" json:"links"`
	DatasetLinks []string `gorm:"type:json;serializer:json" json:"dataset_links"`

	// Entity-mode fields; empty when the crawl runs structural-only.
	CandidateNames []string `gorm:"type:json;serializer:json" json:"candidate_names"`
	CandidateDates []string `gorm:"type:json;serializer:json" json:"candidate_dates"`
	CrimeSentences []string `gorm:"type:json;serializer:json" json:"crime_sentences"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName returns the name of the table for PageRecord.
func (PageRecord) TableName() string {
	return "page_records"
}

// HasEntityFields reports whether the record carries a complete entity
// extraction: at least one candidate name, one date, and one crime sentence.
// Incomplete entity records are discarded rather than stored partial.
func (r *PageRecord) HasEntityFields() bool {
	return len(r.CandidateNames) > 0 &&
		len(r.CandidateDates) > 0 &&
		len(r.CrimeSentences) > 0
}

// PageRecordDTO is the data transfer object for PageRecord.
type PageRecordDTO struct {
	ID             uint      `json:"id"`
	URL            string    `json:"url"`
	Site           string    `json:"site"`
	FetchedAt      time.Time `json:"fetched_at"`
	Headings       []string  `json:"headings"`
	Tables         []string  `json:"tables"`
	TextBlocks     []string  `json:"text_blocks"`
	Emails         []string  `json:"emails"`
	Links          []string  `json:"links"`
	DatasetLinks   []string  `json:"dataset_links"`
	CandidateNames []string  `json:"candidate_names"`
	CandidateDates []string  `json:"candidate_dates"`
	CrimeSentences []string  `json:"crime_sentences"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToDTO converts a PageRecord model to a PageRecordDTO.
func (r *PageRecord) ToDTO() *PageRecordDTO {
	return &PageRecordDTO{
		ID:             r.ID,
		URL:            r.URL,
		Site:           r.Site,
		FetchedAt:      r.FetchedAt,
		Headings:       r.Headings,
		Tables:         r.Tables,
		TextBlocks:     r.TextBlocks,
		Emails:         r.Emails,
		Links:          r.Links,
		DatasetLinks:   r.DatasetLinks,
		CandidateNames: r.CandidateNames,
		CandidateDates: r.CandidateDates,
		CrimeSentences: r.CrimeSentences,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
