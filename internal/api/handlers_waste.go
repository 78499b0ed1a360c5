package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/ecosort/ecosort/internal/api/respond"
	"github.com/ecosort/ecosort/internal/api/validate"
	"github.com/ecosort/ecosort/internal/model"
	"github.com/ecosort/ecosort/internal/services"
)

// WasteHandler provides HTTP transport for the scan and recycle flow.
type WasteHandler struct {
	waste *services.WasteService
}

func NewWasteHandler(svc *services.WasteService) *WasteHandler {
	return &WasteHandler{waste: svc}
}

// AnalyzeWaste POST /api/waste-items/analyze
func (h *WasteHandler) AnalyzeWaste(w http.ResponseWriter, r *http.Request) {
	caller, ok := UserFromContext(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "authentication required")
		return
	}
	var req struct {
		ImageID     string          `json:"imageId"`
		Description *string         `json:"description,omitempty"`
		Location    *model.Location `json:"location,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.AnalyzeWaste(req.ImageID, req.Description); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	desc := ""
	if req.Description != nil {
		desc = *req.Description
	}
	res, err := h.waste.AnalyzeWaste(r.Context(), caller.UserID, req.ImageID, desc, req.Location)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "unknown imageId")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, res)
}

// ListWasteItems GET /api/waste-items?limit=
func (h *WasteHandler) ListWasteItems(w http.ResponseWriter, r *http.Request) {
	caller, ok := UserFromContext(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "authentication required")
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respond.WriteBadRequest(w, "limit must be a positive integer")
			return
		}
		limit = n
	}
	items, err := h.waste.ListUserItems(r.Context(), caller.UserID, limit)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"items": items, "count": len(items)})
}

// MarkRecycled POST /api/waste-items/{itemId}/recycle
func (h *WasteHandler) MarkRecycled(w http.ResponseWriter, r *http.Request) {
	caller, ok := UserFromContext(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "authentication required")
		return
	}
	itemID := mux.Vars(r)["itemId"]
	bonus, err := h.waste.MarkRecycled(r.Context(), caller.UserID, itemID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "item not found")
			return
		}
		if errors.Is(err, model.ErrAlreadyRecycled) {
			respond.WriteConflict(w, "item already recycled")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"itemId": itemID, "bonusPoints": bonus})
}
