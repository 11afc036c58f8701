package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/prospectfinder/backend/internal/entity"
	"github.com/prospectfinder/backend/internal/infra/http/middleware"
	"github.com/prospectfinder/backend/internal/usecase"
)

// promptSuggestions are the starter queries the analysis page offers.
var promptSuggestions = []string{
	"Analyze the market for B2B SaaS companies in Southeast Asia",
	"What industries show the strongest demand for sales automation tools?",
	"Compare the mid-market software landscape in Germany and France",
	"Identify underserved segments among logistics companies with 51-200 employees",
	"Summarize hiring trends for sales leadership roles in fintech",
}

type AnalysisHandler struct {
	RequestUC *usecase.RequestAnalysisUseCase
	Repo      entity.AnalysisRepositoryInterface
}

func NewAnalysisHandler(requestUC *usecase.RequestAnalysisUseCase, repo entity.AnalysisRepositoryInterface) *AnalysisHandler {
	return &AnalysisHandler{RequestUC: requestUC, Repo: repo}
}

type createAnalysisInput struct {
	Query string `json:"query"`
}

// Create (POST /api/analysis) records the job and returns it pending; the
// worker fills in the result later.
func (h *AnalysisHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var input createAnalysisInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	analysis, err := h.RequestUC.Execute(r.Context(), userID, input.Query)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	respondSuccess(w, http.StatusAccepted, analysis)
}

// Get (GET /api/analysis/{id}) is what the frontend polls.
func (h *AnalysisHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	analysis, err := h.Repo.FindByID(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, analysis)
}

// List (GET /api/analysis)
func (h *AnalysisHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	analyses, err := h.Repo.ListByUser(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list analyses")
		return
	}
	if analyses == nil {
		analyses = []entity.MarketAnalysis{}
	}

	respondSuccess(w, http.StatusOK, analyses)
}

// Suggestions (GET /api/analysis/suggestions)
func (h *AnalysisHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, promptSuggestions)
}
