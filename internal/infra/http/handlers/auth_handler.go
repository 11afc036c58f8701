package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/prospectfinder/backend/internal/entity"
	"github.com/prospectfinder/backend/internal/infra/http/middleware"
	"github.com/prospectfinder/backend/internal/usecase"
)

type AuthHandler struct {
	RegisterUC *usecase.RegisterUserUseCase
	UserRepo   entity.UserRepositoryInterface
	Auth       *middleware.Auth
	TokenTTL   time.Duration
}

func NewAuthHandler(registerUC *usecase.RegisterUserUseCase, userRepo entity.UserRepositoryInterface, auth *middleware.Auth, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		RegisterUC: registerUC,
		UserRepo:   userRepo,
		Auth:       auth,
		TokenTTL:   tokenTTL,
	}
}

type authResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// Signup (POST /api/auth/signup)
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	user, err := h.RegisterUC.Execute(r.Context(), input)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	token, err := h.Auth.IssueToken(user.ID, h.TokenTTL)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	respondSuccess(w, http.StatusCreated, authResponse{Token: token, User: user})
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login (POST /api/auth/login)
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input loginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	user, err := h.UserRepo.FindByEmail(r.Context(), input.Email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			// Same answer as a bad password so an attacker cannot probe
			// for registered emails.
			respondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		respondError(w, http.StatusInternalServerError, "login failed")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.Auth.IssueToken(user.ID, h.TokenTTL)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	respondSuccess(w, http.StatusOK, authResponse{Token: token, User: user})
}

// Verify (GET /api/auth/verify) confirms the bearer token still resolves to
// a real user.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	user, err := h.UserRepo.FindByID(r.Context(), userID)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, user)
}

// SaveCompanyInfo (POST /api/auth/company-info) stores the post-signup
// questionnaire.
func (h *AuthHandler) SaveCompanyInfo(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var profile entity.CompanyProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	profile.UserID = userID

	if err := h.UserRepo.SaveCompanyProfile(r.Context(), &profile); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save company info")
		return
	}

	respondSuccess(w, http.StatusOK, profile)
}
