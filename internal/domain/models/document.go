package models

import (
	"time"
)

type SourceType string

const (
	SourcePDF  SourceType = "pdf"
	SourceURL  SourceType = "url"
	SourceText SourceType = "text"
)

type ProcessingStatus string

const (
	StatusPending    ProcessingStatus = "pending"
	StatusProcessing ProcessingStatus = "processing"
	StatusCompleted  ProcessingStatus = "completed"
	StatusFailed     ProcessingStatus = "failed"
)

// Document is an ingested report. Documents are created by backend ingestion
// and are immutable from the client's perspective.
type Document struct {
	ID               string                 `json:"id"`
	SourceType       SourceType             `json:"source_type"`
	SourceURL        string                 `json:"source_url"`
	Title            string                 `json:"title"`
	Author           string                 `json:"author,omitempty"`
	PublishedDate    string                 `json:"published_date,omitempty"` // YYYY-MM-DD
	FilePath         string                 `json:"file_path,omitempty"`
	FileSize         int64                  `json:"file_size,omitempty"`
	TotalPages       int                    `json:"total_pages,omitempty"`
	Language         string                 `json:"language"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
	ProcessingStatus ProcessingStatus       `json:"processing_status"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// PublishedAt parses the published date, reporting ok=false when the field is
// absent or malformed.
func (d *Document) PublishedAt() (time.Time, bool) {
	if d.PublishedDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", d.PublishedDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DocumentSummary is the AI-generated summary for exactly one document.
// SummaryLong may embed pseudo-XML tags (<main_topic>, <key_points>...); see
// the summary package for extraction.
type DocumentSummary struct {
	ID           string                 `json:"id"`
	DocumentID   string                 `json:"document_id"`
	SummaryShort string                 `json:"summary_short"` // <= 200 chars
	SummaryLong  string                 `json:"summary_long"`  // <= 1000 chars
	KeyPoints    []string               `json:"key_points"`
	Entities     map[string]interface{} `json:"entities,omitempty"`
	ModelVersion string                 `json:"model_version"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// DocumentWithSummary is a document list item augmented with its summary when
// one exists. The shape is identical between live and mock modes.
type DocumentWithSummary struct {
	Document
	Summary *DocumentSummary `json:"summary,omitempty"`
}
