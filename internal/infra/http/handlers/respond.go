package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prospectfinder/backend/internal/entity"
	"github.com/prospectfinder/backend/internal/usecase"
)

// Every JSON endpoint answers the same envelope: {"success": true, "data": …}
// or {"success": false, "error": …}. The vendor proxy endpoints are the one
// exception; they relay the vendor body untouched.

func respondSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func respondError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "error": msg})
}

// respondUseCaseError maps use case errors onto status codes: business
// rejections are the caller's problem, infrastructure failures are ours.
func respondUseCaseError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case "EMAIL_TAKEN":
			status = http.StatusConflict
		case "NO_CACHED_SEARCH":
			status = http.StatusNotFound
		}
		respondError(w, status, domainErr.Message)
		return
	}

	if errors.Is(err, entity.ErrNotFound) {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	respondError(w, http.StatusInternalServerError, err.Error())
}
