package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/prospectfinder/backend/internal/entity"
	"github.com/prospectfinder/backend/internal/filter"
	"github.com/prospectfinder/backend/internal/infra/http/middleware"
)

type ProspectHandler struct {
	Repo entity.ProspectRepositoryInterface
}

func NewProspectHandler(repo entity.ProspectRepositoryInterface) *ProspectHandler {
	return &ProspectHandler{Repo: repo}
}

// List (GET /api/prospects) filters the user's saved prospects with query
// parameters. Multi-valued criteria are comma separated.
func (h *ProspectHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	q := r.URL.Query()
	fs := entity.FilterSet{
		JobTitles:   queryList(q.Get("job_title")),
		Seniorities: queryList(q.Get("seniority")),
		Departments: queryList(q.Get("department")),
		Skills:      queryList(q.Get("skills")),
		SearchText:  q.Get("search"),
	}
	for _, country := range queryList(q.Get("location")) {
		fs.Locations = append(fs.Locations, entity.LocationCriterion{Country: country})
	}
	for _, label := range queryList(q.Get("industry")) {
		fs.Industries = append(fs.Industries, entity.IndustryCriterion{Label: label, Kind: "main"})
	}

	page := queryInt(q.Get("page"), 0)
	size := queryInt(q.Get("size"), 25)

	prospects, err := h.Repo.List(r.Context(), userID, fs, page, size)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list prospects")
		return
	}
	if prospects == nil {
		prospects = []entity.Prospect{}
	}

	respondSuccess(w, http.StatusOK, prospects)
}

// Get (GET /api/prospects/{id})
func (h *ProspectHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid prospect id")
		return
	}

	prospect, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}
	if prospect.UserID != userID {
		// Same as absent: ids must not leak across accounts.
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	respondSuccess(w, http.StatusOK, prospect)
}

// Create (POST /api/prospects) adds a manually entered prospect.
func (h *ProspectHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var prospect entity.Prospect
	if err := json.NewDecoder(r.Body).Decode(&prospect); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if strings.TrimSpace(prospect.Name) == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	prospect.UserID = userID

	id, err := h.Repo.Create(r.Context(), &prospect)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create prospect")
		return
	}
	prospect.ID = id

	respondSuccess(w, http.StatusCreated, prospect)
}

// Update (PUT /api/prospects/{id}) patches whitelisted fields.
func (h *ProspectHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid prospect id")
		return
	}

	if _, err := h.ownedProspect(r, userID, id); err != nil {
		respondUseCaseError(w, err)
		return
	}

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if err := h.Repo.Update(r.Context(), id, fields); err != nil {
		respondUseCaseError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]any{"id": id})
}

// Delete (DELETE /api/prospects/{id})
func (h *ProspectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid prospect id")
		return
	}

	if _, err := h.ownedProspect(r, userID, id); err != nil {
		respondUseCaseError(w, err)
		return
	}

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete prospect")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]any{"deleted": id})
}

// Suggestions (GET /api/prospects/suggestions) feeds filter autocomplete.
func (h *ProspectHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	suggestions, err := h.Repo.Suggestions(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load suggestions")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]any{
		"saved":           suggestions,
		"main_industries": filter.IndustryLabels("main"),
		"sub_industries":  filter.IndustryLabels("sub"),
	})
}

func (h *ProspectHandler) ownedProspect(r *http.Request, userID, id int64) (*entity.Prospect, error) {
	prospect, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if prospect.UserID != userID {
		return nil, entity.ErrNotFound
	}
	return prospect, nil
}

func queryList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func queryInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
