package usecase

import (
	"github.com/prospectfinder/backend/internal/entity"
)

// Search targets and kinds. Target picks the data source; kind picks the
// vendor endpoint and the cache slot.
const (
	TargetVendor = "vendor"
	TargetLocal  = "local"

	KindContacts  = "contacts"
	KindCompanies = "companies"
)

type SearchInput struct {
	Target  string           `json:"target"`
	Kind    string           `json:"kind"`
	Filters entity.FilterSet `json:"filters"`
	Page    int              `json:"page"`
	Size    int              `json:"size"`
}

// SearchOutput is what every search returns, whichever source served it.
// On a vendor failure Prospects is empty and ErrorReason carries the cause;
// the request itself still succeeds.
type SearchOutput struct {
	Prospects   []entity.Prospect `json:"prospects"`
	Companies   []map[string]any  `json:"companies,omitempty"`
	RequestID   string            `json:"requestId,omitempty"`
	Total       int               `json:"total"`
	Page        int               `json:"page"`
	Size        int               `json:"size"`
	Source      string            `json:"source"` // "vendor" | "local" | "cache"
	ErrorReason string            `json:"errorReason,omitempty"`
}

type EnrichInput struct {
	RequestID    string   `json:"requestId"`
	ContactIDs   []string `json:"contactIds"`
	RevealEmails bool     `json:"revealEmails"`
	RevealPhones bool     `json:"revealPhones"`
}

// EnrichContactError reports one contact that could not be enriched or
// saved. The rest of the batch is unaffected.
type EnrichContactError struct {
	ContactID string `json:"contactId"`
	Reason    string `json:"reason"`
}

type EnrichOutput struct {
	Saved          int                  `json:"savedContacts"`
	SavedCompanies int                  `json:"savedCompanies"`
	Failed         int                  `json:"failed"`
	CreditsCharged int                  `json:"creditsCharged"`
	Prospects      []entity.Prospect    `json:"prospects"`
	Errors         []EnrichContactError `json:"errors,omitempty"`
}
