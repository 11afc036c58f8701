package lusha

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/prospectfinder/backend/internal/filter"
)

// Config is the explicit client configuration. No environment reads happen
// inside the client.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// APIError is a non-2xx vendor response, carrying the vendor's error body
// verbatim. Auth failures (bad or missing key) arrive here too; nothing is
// retried.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("lusha api status %d: %s", e.StatusCode, string(e.Body))
}

// SearchContacts runs a prospecting contact search and returns the raw
// records plus the vendor-issued requestId correlating a later enrichment.
func (c *Client) SearchContacts(ctx context.Context, filters filter.VendorFilters, page, size int) (*SearchResult, error) {
	return c.search(ctx, "/prospecting/contact/search", filters, page, size)
}

// SearchCompanies runs a prospecting company search.
func (c *Client) SearchCompanies(ctx context.Context, filters filter.VendorFilters, page, size int) (*SearchResult, error) {
	return c.search(ctx, "/prospecting/company/search", filters, page, size)
}

func (c *Client) search(ctx context.Context, path string, filters filter.VendorFilters, page, size int) (*SearchResult, error) {
	payload := searchRequest{
		Pages:   pages{Page: page, Size: size},
		Filters: filters,
	}

	var response searchResponse
	headers, err := c.post(ctx, path, payload, &response)
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Records:   response.Data,
		RequestID: response.RequestID,
		Total:     response.TotalResults,
		Usage:     usageFromHeaders(headers),
	}, nil
}

// EnrichContacts reveals full details for contacts found by a prior search.
// The requestId must come from that search; the vendor enforces the pairing.
func (c *Client) EnrichContacts(ctx context.Context, requestID string, contactIDs []string, revealEmail, revealPhone bool) (*EnrichResult, error) {
	payload := enrichRequest{
		RequestID:    requestID,
		ContactIDs:   contactIDs,
		RevealEmails: revealEmail,
		RevealPhones: revealPhone,
	}

	var response enrichResponse
	headers, err := c.post(ctx, "/prospecting/contact/enrich", payload, &response)
	if err != nil {
		return nil, err
	}

	return &EnrichResult{
		Contacts:       response.Contacts,
		CreditsCharged: response.CreditsCharged,
		Usage:          usageFromHeaders(headers),
	}, nil
}

// RawSearchContacts relays a caller-built {pages, filters} search body to the
// vendor untouched. The proxy namespace uses this; the orchestrated search
// goes through SearchContacts instead.
func (c *Client) RawSearchContacts(ctx context.Context, body json.RawMessage) (RawPayload, error) {
	return c.postRaw(ctx, "/prospecting/contact/search", body)
}

// RawSearchCompanies relays a caller-built company search body untouched.
func (c *Client) RawSearchCompanies(ctx context.Context, body json.RawMessage) (RawPayload, error) {
	return c.postRaw(ctx, "/prospecting/company/search", body)
}

// --- Filter metadata passthroughs (one-to-one with the vendor) ---

func (c *Client) ContactDepartments(ctx context.Context) (RawPayload, error) {
	return c.getRaw(ctx, "/prospecting/filters/contacts/departments")
}

func (c *Client) ContactSeniority(ctx context.Context) (RawPayload, error) {
	return c.getRaw(ctx, "/prospecting/filters/contacts/seniority")
}

func (c *Client) ContactDataPoints(ctx context.Context) (RawPayload, error) {
	return c.getRaw(ctx, "/prospecting/filters/contacts/existing_data_points")
}

func (c *Client) ContactCountries(ctx context.Context) (RawPayload, error) {
	return c.getRaw(ctx, "/prospecting/filters/contacts/all_countries")
}

func (c *Client) SearchContactLocations(ctx context.Context, text string) (RawPayload, error) {
	return c.postRaw(ctx, "/prospecting/filters/contacts/locations", textRequest{Text: text})
}

func (c *Client) SearchCompanyNames(ctx context.Context, text string) (RawPayload, error) {
	return c.postRaw(ctx, "/prospecting/filters/companies/names", textRequest{Text: text})
}

func (c *Client) CompanyIndustries(ctx context.Context) (RawPayload, error) {
	return c.getRaw(ctx, "/prospecting/filters/companies/industries_labels")
}

func (c *Client) CompanySizes(ctx context.Context) (RawPayload, error) {
	return c.getRaw(ctx, "/prospecting/filters/companies/sizes")
}

func (c *Client) CompanyRevenues(ctx context.Context) (RawPayload, error) {
	return c.getRaw(ctx, "/prospecting/filters/companies/revenues")
}

func (c *Client) SearchCompanyLocations(ctx context.Context, text string) (RawPayload, error) {
	return c.postRaw(ctx, "/prospecting/filters/companies/locations", textRequest{Text: text})
}

func (c *Client) CompanySICCodes(ctx context.Context) (RawPayload, error) {
	return c.getRaw(ctx, "/prospecting/filters/companies/sics")
}

func (c *Client) CompanyNAICSCodes(ctx context.Context) (RawPayload, error) {
	return c.getRaw(ctx, "/prospecting/filters/companies/naics")
}

func (c *Client) CompanyIntentTopics(ctx context.Context) (RawPayload, error) {
	return c.getRaw(ctx, "/prospecting/filters/companies/intent_topics")
}

func (c *Client) SearchCompanyTechnologies(ctx context.Context, text string) (RawPayload, error) {
	return c.postRaw(ctx, "/prospecting/filters/companies/technologies", textRequest{Text: text})
}

// --- plumbing ---

func (c *Client) post(ctx context.Context, path string, payload any, out any) (http.Header, error) {
	// 1. Prepare the JSON
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal lusha payload: %w", err)
	}

	// 2. Build the request
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	// 3. Send
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lusha request failed: %w", err)
	}
	defer resp.Body.Close()

	// 4. Non-2xx: surface the vendor body verbatim, no retry
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: body}
	}

	// 5. Decode
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, fmt.Errorf("decode lusha response: %w", err)
	}

	return resp.Header, nil
}

func (c *Client) getRaw(ctx context.Context, path string) (RawPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	return c.doRaw(req)
}

func (c *Client) postRaw(ctx context.Context, path string, payload any) (RawPayload, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal lusha payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	return c.doRaw(req)
}

func (c *Client) doRaw(req *http.Request) (RawPayload, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lusha request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: body}
	}

	return RawPayload(body), nil
}

// setHeaders centralizes the mandatory headers. The static api_key rides on
// every request; a missing or bad key comes back as the vendor's own 401.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("api_key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "ProspectFinder/1.0")
}

func usageFromHeaders(headers http.Header) *UsageMeta {
	if headers == nil {
		return nil
	}

	meta := UsageMeta{
		RateLimitLimit:     headerInt(headers, "x-rate-limit-limit"),
		RateLimitRemaining: headerInt(headers, "x-rate-limit-remaining"),
		CreditsRemaining:   headerInt(headers, "x-credits-remaining"),
	}
	if meta.RateLimitLimit == 0 && meta.RateLimitRemaining == 0 && meta.CreditsRemaining == 0 {
		return nil
	}
	return &meta
}

func headerInt(headers http.Header, key string) int {
	v := headers.Get(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
