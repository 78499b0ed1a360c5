package api

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/ecosort/ecosort/internal/api/respond"
	"github.com/ecosort/ecosort/internal/api/validate"
	"github.com/ecosort/ecosort/internal/model"
	"github.com/ecosort/ecosort/internal/services"
)

// UserHandler provides HTTP transport for account operations.
type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{users: svc}
}

// CreateUser POST /api/users
// The only unauthenticated mutating route; the response carries the API key
// the caller will authenticate with from then on.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID      string  `json:"userId"`
		Email       string  `json:"email"`
		DisplayName *string `json:"displayName,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.CreateUser(req.UserID, req.Email, req.DisplayName); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	u, err := h.users.CreateUser(r.Context(), req.UserID, req.Email, req.DisplayName)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			respond.WriteConflict(w, "user already exists")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, u)
}

// GetUser GET /api/users/me
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	caller, ok := UserFromContext(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "authentication required")
		return
	}
	u, err := h.users.GetUser(r.Context(), caller.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "user not found")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	u.APIKey = "" // never echoed after creation
	respond.WriteJSON(w, http.StatusOK, u)
}
