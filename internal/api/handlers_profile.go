package api

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/ecosort/ecosort/internal/api/respond"
	"github.com/ecosort/ecosort/internal/model"
	"github.com/ecosort/ecosort/internal/services"
)

// ProfileHandler provides HTTP transport for profile operations.
type ProfileHandler struct {
	profiles *services.ProfileService
}

func NewProfileHandler(svc *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: svc}
}

// GetProfile GET /api/profile
// 404 until the caller's first scan or an explicit create.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := UserFromContext(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "authentication required")
		return
	}
	p, err := h.profiles.GetProfile(r.Context(), caller.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "profile not found")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, p)
}

// CreateProfile POST /api/profile
// Idempotent; an existing profile is returned untouched.
func (h *ProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := UserFromContext(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "authentication required")
		return
	}
	p, err := h.profiles.CreateProfile(r.Context(), caller.UserID)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, p)
}
