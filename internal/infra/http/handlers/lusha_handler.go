package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/prospectfinder/backend/internal/infra/http/middleware"
	"github.com/prospectfinder/backend/internal/infra/integration/lusha"
)

// LushaHandler proxies the vendor's filter-metadata endpoints. Responses are
// relayed verbatim, success or error, so the frontend sees exactly what the
// vendor sent; only transport failures get wrapped.
type LushaHandler struct {
	Client *lusha.Client
}

func NewLushaHandler(client *lusha.Client) *LushaHandler {
	return &LushaHandler{Client: client}
}

func (h *LushaHandler) relay(w http.ResponseWriter, payload lusha.RawPayload, err error) {
	if err != nil {
		var apiErr *lusha.APIError
		if errors.As(err, &apiErr) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(apiErr.StatusCode)
			w.Write(apiErr.Body)
			return
		}
		middleware.RecordIntegrationError("lusha")
		respondError(w, http.StatusBadGateway, "vendor unreachable: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func (h *LushaHandler) get(fn func(ctx context.Context) (lusha.RawPayload, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := fn(r.Context())
		h.relay(w, payload, err)
	}
}

func (h *LushaHandler) textSearch(fn func(ctx context.Context, text string) (lusha.RawPayload, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
			return
		}

		payload, err := fn(r.Context(), input.Text)
		h.relay(w, payload, err)
	}
}

func (h *LushaHandler) rawSearch(fn func(ctx context.Context, body json.RawMessage) (lusha.RawPayload, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			respondError(w, http.StatusBadRequest, "failed to read body: "+err.Error())
			return
		}
		if !json.Valid(body) {
			respondError(w, http.StatusBadRequest, "request body must be JSON")
			return
		}

		payload, err := fn(r.Context(), body)
		h.relay(w, payload, err)
	}
}

// Mount registers the proxy routes, usually under /api/lusha.
func (h *LushaHandler) Mount(r chi.Router) {
	r.Post("/search/contacts", h.rawSearch(h.Client.RawSearchContacts))
	r.Post("/search/companies", h.rawSearch(h.Client.RawSearchCompanies))
	r.Get("/contact/departments", h.get(h.Client.ContactDepartments))
	r.Get("/contact/seniority", h.get(h.Client.ContactSeniority))
	r.Get("/contact/data-points", h.get(h.Client.ContactDataPoints))
	r.Get("/contact/countries", h.get(h.Client.ContactCountries))
	r.Post("/contact/locations", h.textSearch(h.Client.SearchContactLocations))
	r.Post("/company/names", h.textSearch(h.Client.SearchCompanyNames))
	r.Get("/company/industries", h.get(h.Client.CompanyIndustries))
	r.Get("/company/sizes", h.get(h.Client.CompanySizes))
	r.Get("/company/revenues", h.get(h.Client.CompanyRevenues))
	r.Post("/company/locations", h.textSearch(h.Client.SearchCompanyLocations))
	r.Get("/company/sic-codes", h.get(h.Client.CompanySICCodes))
	r.Get("/company/naics-codes", h.get(h.Client.CompanyNAICSCodes))
	r.Get("/company/intent-topics", h.get(h.Client.CompanyIntentTopics))
	r.Post("/company/technologies", h.textSearch(h.Client.SearchCompanyTechnologies))
}
