package models

type SortField string

const (
	SortPublishedDate SortField = "published_date"
	SortTitle         SortField = "title"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

const DefaultPageSize = 20

// DocumentQuery carries the gallery's search, filter, sort and pagination
// parameters. The same struct drives both the live endpoint's query string and
// the mock query engine.
type DocumentQuery struct {
	Search    string    `json:"search,omitempty"`
	Page      int       `json:"page"`
	PageSize  int       `json:"page_size"`
	Sort      SortField `json:"sort"`
	Order     SortOrder `json:"order"`
	StartDate string    `json:"start_date,omitempty"` // YYYY-MM-DD, inclusive
	EndDate   string    `json:"end_date,omitempty"`   // YYYY-MM-DD, inclusive
}

// ApplyDefaults corrects zero or invalid values in place.
func (q *DocumentQuery) ApplyDefaults() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.Sort != SortPublishedDate && q.Sort != SortTitle {
		q.Sort = SortPublishedDate
	}
	if q.Order != OrderAsc && q.Order != OrderDesc {
		q.Order = OrderDesc
	}
}

// Page is the backend's paginated response shape: the requested slice plus the
// pre-slice filtered count.
type Page[T any] struct {
	Total int `json:"total"`
	Items []T `json:"items"`
}
