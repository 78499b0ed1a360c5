package api

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/ecosort/ecosort/internal/api/respond"
	"github.com/ecosort/ecosort/internal/blob"
	"github.com/ecosort/ecosort/internal/model"
)

// maxUploadBytes caps one image upload at 10 MiB.
const maxUploadBytes = 10 << 20

// UploadHandler provides HTTP transport for the local blob driver: minting
// upload destinations and moving the actual bytes.
type UploadHandler struct {
	blobs *blob.LocalStore
}

func NewUploadHandler(blobs *blob.LocalStore) *UploadHandler {
	return &UploadHandler{blobs: blobs}
}

// CreateUpload POST /api/uploads
func (h *UploadHandler) CreateUpload(w http.ResponseWriter, r *http.Request) {
	up, err := h.blobs.GenerateUploadURL(r.Context())
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusCreated, up)
}

// PutImage PUT /uploads/{imageId}
func (h *UploadHandler) PutImage(w http.ResponseWriter, r *http.Request) {
	imageID := mux.Vars(r)["imageId"]
	body := io.LimitReader(r.Body, maxUploadBytes)
	if err := h.blobs.Save(r.Context(), imageID, body); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "unknown imageId")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetImage GET /uploads/{imageId}
func (h *UploadHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	imageID := mux.Vars(r)["imageId"]
	f, err := h.blobs.Open(r.Context(), imageID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "unknown imageId")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	defer func() { _ = f.Close() }()
	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = io.Copy(w, f)
}
