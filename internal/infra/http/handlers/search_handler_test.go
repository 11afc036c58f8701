package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prospectfinder/backend/internal/entity"
	"github.com/prospectfinder/backend/internal/filter"
	"github.com/prospectfinder/backend/internal/infra/integration/lusha"
	"github.com/prospectfinder/backend/internal/usecase"
)

// stubGateway answers vendor calls with fixed results, recording the filters
// it was called with.
type stubGateway struct {
	searchResult  *lusha.SearchResult
	searchErr     error
	enrichResult  *lusha.EnrichResult
	enrichErr     error
	searchFilters *filter.VendorFilters
	enrichCalls   int
}

func (g *stubGateway) SearchContacts(ctx context.Context, filters filter.VendorFilters, page, size int) (*lusha.SearchResult, error) {
	g.searchFilters = &filters
	return g.searchResult, g.searchErr
}

func (g *stubGateway) SearchCompanies(ctx context.Context, filters filter.VendorFilters, page, size int) (*lusha.SearchResult, error) {
	g.searchFilters = &filters
	return g.searchResult, g.searchErr
}

func (g *stubGateway) EnrichContacts(ctx context.Context, requestID string, contactIDs []string, revealEmail, revealPhone bool) (*lusha.EnrichResult, error) {
	g.enrichCalls++
	return g.enrichResult, g.enrichErr
}

type stubProspectRepo struct {
	entity.ProspectRepositoryInterface
	upserts []entity.Prospect
}

func (r *stubProspectRepo) Upsert(ctx context.Context, p *entity.Prospect) error {
	r.upserts = append(r.upserts, *p)
	return nil
}

type memCache struct {
	entries map[string][]byte
}

func (c *memCache) Put(ctx context.Context, userID int64, kind string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if c.entries == nil {
		c.entries = make(map[string][]byte)
	}
	c.entries[kind] = raw
	return nil
}

func (c *memCache) Get(ctx context.Context, userID int64, kind string, out any) (bool, error) {
	raw, ok := c.entries[kind]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	return req.WithContext(testUserContext(req.Context(), 7))
}

func TestSearchHandler_VendorSearch(t *testing.T) {
	gateway := &stubGateway{
		searchResult: &lusha.SearchResult{
			RequestID: "req-123",
			Total:     1,
			Records: []map[string]any{
				{"contactId": "c-1", "fullName": "Aisyah Binti Rahman", "position": "CEO", "location": "Malaysia"},
			},
		},
	}
	cache := &memCache{}
	handler := NewSearchHandler(
		usecase.NewSearchUseCase(gateway, &stubProspectRepo{}, cache),
		usecase.NewEnrichUseCase(gateway, &stubProspectRepo{}, nil),
	)

	body := `{"target":"vendor","kind":"contacts","filters":{"job_titles":["CEO"],"locations":[{"country":"Malaysia"}]}}`
	req := authedRequest(http.MethodPost, "/api/prospecting/search", body)
	rec := httptest.NewRecorder()

	handler.Search(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool                 `json:"success"`
		Data    usecase.SearchOutput `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "req-123", envelope.Data.RequestID)
	assert.Len(t, envelope.Data.Prospects, 1)
	assert.Equal(t, "Aisyah Binti Rahman", envelope.Data.Prospects[0].Name)

	// The vendor saw the translated filters, not the raw request body.
	assert.NotNil(t, gateway.searchFilters.Contacts)
	assert.Equal(t, []string{"CEO"}, gateway.searchFilters.Contacts.JobTitles)
	assert.Equal(t, "Malaysia", gateway.searchFilters.Contacts.Locations[0].Country)

	// And the result is now replayable.
	replayReq := authedRequest(http.MethodGet, "/api/prospecting/search/contacts/last", "")
	replayReq = withURLParam(replayReq, "kind", "contacts")
	replayRec := httptest.NewRecorder()
	handler.LastSearch(replayRec, replayReq)
	assert.Equal(t, http.StatusOK, replayRec.Code)
}

func TestSearchHandler_VendorFailureReturns200WithReason(t *testing.T) {
	gateway := &stubGateway{searchErr: assert.AnError}
	handler := NewSearchHandler(
		usecase.NewSearchUseCase(gateway, &stubProspectRepo{}, &memCache{}),
		nil,
	)

	req := authedRequest(http.MethodPost, "/api/prospecting/search", `{"target":"vendor","kind":"contacts"}`)
	rec := httptest.NewRecorder()

	handler.Search(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data usecase.SearchOutput `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Empty(t, envelope.Data.Prospects)
	assert.NotEmpty(t, envelope.Data.ErrorReason)
}

func TestSearchHandler_EnrichValidationRejected(t *testing.T) {
	gateway := &stubGateway{}
	handler := NewSearchHandler(
		nil,
		usecase.NewEnrichUseCase(gateway, &stubProspectRepo{}, nil),
	)

	req := authedRequest(http.MethodPost, "/api/prospecting/enrich", `{"requestId":"","contactIds":[],"revealEmails":true}`)
	rec := httptest.NewRecorder()

	handler.Enrich(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, gateway.enrichCalls)
}

func TestSearchHandler_EnrichPartialFailure(t *testing.T) {
	gateway := &stubGateway{
		enrichResult: &lusha.EnrichResult{
			CreditsCharged: 1,
			Contacts: []lusha.EnrichedContact{
				{ContactID: "c-1", IsSuccess: true, Data: map[string]any{"contactId": "c-1", "fullName": "Alice"}},
				{ContactID: "c-2", IsSuccess: false, Reason: "not found"},
			},
		},
	}
	repo := &stubProspectRepo{}
	handler := NewSearchHandler(nil, usecase.NewEnrichUseCase(gateway, repo, nil))

	req := authedRequest(http.MethodPost, "/api/prospecting/enrich",
		`{"requestId":"req-123","contactIds":["c-1","c-2"],"revealEmails":true}`)
	rec := httptest.NewRecorder()

	handler.Enrich(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data usecase.EnrichOutput `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 1, envelope.Data.Saved)
	assert.Equal(t, 1, envelope.Data.Failed)
	assert.Len(t, repo.upserts, 1)
	assert.Equal(t, int64(7), repo.upserts[0].UserID)
}
