package entity

import (
	"context"
	"time"
)

// NotAvailable is the display sentinel used when the vendor omitted a field
// under every known alias. The presentation layer never has to branch on nil.
const NotAvailable = "N/A"

// Prospect is the canonical display schema for a contact, whether it came
// from the vendor or from the local store. ContactID is the vendor identity;
// ID is only set once the record is persisted.
type Prospect struct {
	ID              int64          `json:"id,omitempty"`
	UserID          int64          `json:"user_id,omitempty"`
	ContactID       string         `json:"contactId"`
	Name            string         `json:"name"`
	JobTitle        string         `json:"jobTitle"`
	ManagementLevel string         `json:"managementLevel,omitempty"`
	Department      string         `json:"department,omitempty"`
	Location        string         `json:"location"`
	Industry        string         `json:"industry,omitempty"`
	Skills          string         `json:"skills,omitempty"`
	CompanyID       string         `json:"companyId,omitempty"`
	CompanyName     string         `json:"companyName"`
	CompanySize     string         `json:"companySize,omitempty"`
	CompanyRevenue  string         `json:"companyRevenue,omitempty"`
	FoundedYear     int            `json:"companyFoundedYear,omitempty"`
	Emails          []string       `json:"emails,omitempty"`
	Phones          []string       `json:"phones,omitempty"`
	LinkedinURL     string         `json:"linkedinUrl,omitempty"`
	HasEmail        bool           `json:"hasEmail"`
	HasPhone        bool           `json:"hasPhone"`
	HasDirectPhone  bool           `json:"hasDirectPhone"`
	Extra           map[string]any `json:"extra,omitempty"`
	CreatedAt       time.Time      `json:"created_at,omitempty"`
	UpdatedAt       time.Time      `json:"updated_at,omitempty"`
}

// Company is the canonical display schema for a company record. Upserts are
// keyed by the vendor CompanyID.
type Company struct {
	CompanyID    string         `json:"companyId"`
	Name         string         `json:"name"`
	Domain       string         `json:"domain,omitempty"`
	Description  string         `json:"description,omitempty"`
	LogoURL      string         `json:"logoUrl,omitempty"`
	MainIndustry string         `json:"mainIndustry,omitempty"`
	SubIndustry  string         `json:"subIndustry,omitempty"`
	EmployeesMin int            `json:"employeesMin,omitempty"`
	EmployeesMax int            `json:"employeesMax,omitempty"`
	RevenueMin   int64          `json:"revenueMin,omitempty"`
	RevenueMax   int64          `json:"revenueMax,omitempty"`
	HasEmail     bool           `json:"hasEmail"`
	HasPhone     bool           `json:"hasPhone"`
	Extra        map[string]any `json:"extra,omitempty"`
}

// FilterSuggestions feeds the search sidebar autocomplete from data the user
// has already saved.
type FilterSuggestions struct {
	JobTitles  []string `json:"job_titles"`
	Locations  []string `json:"locations"`
	Industries []string `json:"industries"`
}

type ProspectRepositoryInterface interface {
	Upsert(ctx context.Context, p *Prospect) error
	List(ctx context.Context, userID int64, fs FilterSet, page, size int) ([]Prospect, error)
	FindByID(ctx context.Context, id int64) (*Prospect, error)
	Create(ctx context.Context, p *Prospect) (int64, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
	Delete(ctx context.Context, id int64) error
	Suggestions(ctx context.Context, userID int64) (*FilterSuggestions, error)
}

type CompanyRepositoryInterface interface {
	Upsert(ctx context.Context, c *Company) error
}
