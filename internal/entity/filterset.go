package entity

import (
	"context"
	"time"
)

// LocationCriterion narrows a search to a country.
type LocationCriterion struct {
	Country string `json:"country"`
}

// IndustryCriterion is a taxonomy label tagged by the caller as a main or sub
// industry. Resolution against the static taxonomy happens in the query
// builder; labels with no match are dropped there, never here.
type IndustryCriterion struct {
	Label string `json:"label"`
	Kind  string `json:"kind"` // "main" | "sub"
}

// RangeCriterion is a numeric band (employee counts, annual revenue).
type RangeCriterion struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// FilterSet is the named-criteria object describing one prospect or company
// search. Empty criteria impose no constraint.
type FilterSet struct {
	JobTitles     []string            `json:"job_titles,omitempty"`
	Seniorities   []string            `json:"seniorities,omitempty"`
	Departments   []string            `json:"departments,omitempty"`
	Locations     []LocationCriterion `json:"locations,omitempty"`
	Industries    []IndustryCriterion `json:"industries,omitempty"`
	CompanySizes  []RangeCriterion    `json:"company_sizes,omitempty"`
	RevenueRanges []RangeCriterion    `json:"revenue_ranges,omitempty"`
	Skills        []string            `json:"skills,omitempty"`
	SearchText    string              `json:"search_text,omitempty"`
}

// IsEmpty reports whether no criterion is populated, which downstream must
// treat as "match all".
func (fs FilterSet) IsEmpty() bool {
	return len(fs.JobTitles) == 0 &&
		len(fs.Seniorities) == 0 &&
		len(fs.Departments) == 0 &&
		len(fs.Locations) == 0 &&
		len(fs.Industries) == 0 &&
		len(fs.CompanySizes) == 0 &&
		len(fs.RevenueRanges) == 0 &&
		len(fs.Skills) == 0 &&
		fs.SearchText == ""
}

// SavedFilter is a user-owned, named FilterSet persisted as JSON. Saved and
// deleted independently of any search.
type SavedFilter struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	FilterName string    `json:"filter_name"`
	Criteria   FilterSet `json:"criteria"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// ProspectList groups saved prospects under a user-chosen name.
type ProspectList struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	ListName      string    `json:"list_name"`
	Description   string    `json:"description,omitempty"`
	ProspectCount int       `json:"prospect_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type SavedFilterRepositoryInterface interface {
	ListByUser(ctx context.Context, userID int64) ([]SavedFilter, error)
	Create(ctx context.Context, f *SavedFilter) (int64, error)
	Delete(ctx context.Context, userID, filterID int64) error
}

type ProspectListRepositoryInterface interface {
	ListByUser(ctx context.Context, userID int64) ([]ProspectList, error)
	Create(ctx context.Context, l *ProspectList) (int64, error)
	AddProspect(ctx context.Context, listID, prospectID int64) error
}
