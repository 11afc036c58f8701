package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/prospectfinder/backend/internal/entity"
	"github.com/prospectfinder/backend/internal/infra/http/middleware"
)

// UserHandler serves the user's saved filters and prospect lists.
type UserHandler struct {
	FilterRepo entity.SavedFilterRepositoryInterface
	ListRepo   entity.ProspectListRepositoryInterface
}

func NewUserHandler(filterRepo entity.SavedFilterRepositoryInterface, listRepo entity.ProspectListRepositoryInterface) *UserHandler {
	return &UserHandler{FilterRepo: filterRepo, ListRepo: listRepo}
}

// ListFilters (GET /api/users/filters)
func (h *UserHandler) ListFilters(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	filters, err := h.FilterRepo.ListByUser(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list filters")
		return
	}
	if filters == nil {
		filters = []entity.SavedFilter{}
	}

	respondSuccess(w, http.StatusOK, filters)
}

type saveFilterInput struct {
	FilterName string           `json:"filter_name"`
	Criteria   entity.FilterSet `json:"criteria"`
}

// SaveFilter (POST /api/users/filters)
func (h *UserHandler) SaveFilter(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var input saveFilterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if strings.TrimSpace(input.FilterName) == "" {
		respondError(w, http.StatusBadRequest, "filter_name is required")
		return
	}
	if input.Criteria.IsEmpty() {
		respondError(w, http.StatusBadRequest, "criteria must contain at least one filter")
		return
	}

	filter := &entity.SavedFilter{
		UserID:     userID,
		FilterName: input.FilterName,
		Criteria:   input.Criteria,
		IsActive:   true,
	}

	id, err := h.FilterRepo.Create(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save filter")
		return
	}
	filter.ID = id

	respondSuccess(w, http.StatusCreated, filter)
}

// DeleteFilter (DELETE /api/users/filters/{id})
func (h *UserHandler) DeleteFilter(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid filter id")
		return
	}

	if err := h.FilterRepo.Delete(r.Context(), userID, id); err != nil {
		respondUseCaseError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]any{"deleted": id})
}

// ListProspectLists (GET /api/users/lists)
func (h *UserHandler) ListProspectLists(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	lists, err := h.ListRepo.ListByUser(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list prospect lists")
		return
	}
	if lists == nil {
		lists = []entity.ProspectList{}
	}

	respondSuccess(w, http.StatusOK, lists)
}

type createListInput struct {
	ListName    string `json:"list_name"`
	Description string `json:"description"`
}

// CreateProspectList (POST /api/users/lists)
func (h *UserHandler) CreateProspectList(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var input createListInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if strings.TrimSpace(input.ListName) == "" {
		respondError(w, http.StatusBadRequest, "list_name is required")
		return
	}

	list := &entity.ProspectList{
		UserID:      userID,
		ListName:    input.ListName,
		Description: input.Description,
	}

	id, err := h.ListRepo.Create(r.Context(), list)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create list")
		return
	}
	list.ID = id

	respondSuccess(w, http.StatusCreated, list)
}

type addProspectInput struct {
	ProspectID int64 `json:"prospect_id"`
}

// AddProspectToList (POST /api/users/lists/{id}/prospects)
func (h *UserHandler) AddProspectToList(w http.ResponseWriter, r *http.Request) {
	listID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid list id")
		return
	}

	var input addProspectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if input.ProspectID == 0 {
		respondError(w, http.StatusBadRequest, "prospect_id is required")
		return
	}

	if err := h.ListRepo.AddProspect(r.Context(), listID, input.ProspectID); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to add prospect to list")
		return
	}

	respondSuccess(w, http.StatusOK, map[string]any{"list_id": listID, "prospect_id": input.ProspectID})
}
