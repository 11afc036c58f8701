package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/prospectfinder/backend/internal/infra/http/middleware"
	"github.com/prospectfinder/backend/internal/usecase"
)

type SearchHandler struct {
	SearchUC *usecase.SearchUseCase
	EnrichUC *usecase.EnrichUseCase
}

func NewSearchHandler(searchUC *usecase.SearchUseCase, enrichUC *usecase.EnrichUseCase) *SearchHandler {
	return &SearchHandler{SearchUC: searchUC, EnrichUC: enrichUC}
}

// Search (POST /api/prospecting/search)
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var input usecase.SearchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	output, err := h.SearchUC.Execute(r.Context(), userID, input)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	middleware.RecordSearch(input.Target, input.Kind)
	if output.ErrorReason != "" {
		middleware.RecordIntegrationError("lusha")
	}

	respondSuccess(w, http.StatusOK, output)
}

// LastSearch (GET /api/prospecting/search/{kind}/last) replays the cached
// result so the frontend can restore state without spending a vendor call.
func (h *SearchHandler) LastSearch(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	output, err := h.SearchUC.LastSearch(r.Context(), userID, chi.URLParam(r, "kind"))
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, output)
}

// Enrich (POST /api/prospecting/enrich)
func (h *SearchHandler) Enrich(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var input usecase.EnrichInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	output, err := h.EnrichUC.Execute(r.Context(), userID, input)
	if err != nil {
		if usecase.IsTechnicalError(err) {
			middleware.RecordIntegrationError("lusha")
		}
		respondUseCaseError(w, err)
		return
	}

	middleware.RecordEnrichment(output.Saved, output.Failed)
	middleware.RecordCreditsCharged(output.CreditsCharged)

	respondSuccess(w, http.StatusOK, output)
}
