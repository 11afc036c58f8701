package lusha

import (
	"encoding/json"

	"github.com/prospectfinder/backend/internal/filter"
)

// --- PAYLOADS: what the client sends to Lusha ---

type pages struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

type searchRequest struct {
	Pages   pages                `json:"pages"`
	Filters filter.VendorFilters `json:"filters"`
}

type enrichRequest struct {
	RequestID    string   `json:"requestId"`
	ContactIDs   []string `json:"contactIds"`
	RevealEmails bool     `json:"revealEmails"`
	RevealPhones bool     `json:"revealPhones"`
}

type textRequest struct {
	Text string `json:"text"`
}

// --- RESPONSES: what Lusha returns ---

type searchResponse struct {
	RequestID    string           `json:"requestId"`
	Data         []map[string]any `json:"data"`
	TotalResults int              `json:"totalResults"`
}

type enrichResponse struct {
	Contacts       []EnrichedContact `json:"contacts"`
	CreditsCharged int               `json:"creditsCharged"`
}

// EnrichedContact is one contact of an enrichment response. Records are kept
// as raw maps; alias normalization happens in the orchestrator, not here.
type EnrichedContact struct {
	ContactID string         `json:"contactId"`
	IsSuccess bool           `json:"isSuccess"`
	Reason    string         `json:"reason,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
}

// UsageMeta carries rate-limit and credit information exposed through
// response headers, when the vendor sends it. It is informational only; the
// caller decides whether to slow down.
type UsageMeta struct {
	RateLimitLimit     int `json:"rateLimitLimit,omitempty"`
	RateLimitRemaining int `json:"rateLimitRemaining,omitempty"`
	CreditsRemaining   int `json:"creditsRemaining,omitempty"`
}

// SearchResult is the outcome of one vendor search call.
type SearchResult struct {
	Records   []map[string]any
	RequestID string
	Total     int
	Usage     *UsageMeta
}

// EnrichResult is the outcome of one enrichment call.
type EnrichResult struct {
	Contacts       []EnrichedContact
	CreditsCharged int
	Usage          *UsageMeta
}

// RawPayload is an untouched vendor response body, relayed by the proxy
// endpoints without reshaping.
type RawPayload = json.RawMessage
