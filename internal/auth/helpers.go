package auth

import (
	"net/http"
	"strings"

	"github.com/ecosort/ecosort/internal/model"
)

// ExtractAPIKey pulls the API key out of the Authorization header.
// The expected format is "Bearer <api-key>".
func ExtractAPIKey(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", model.ErrNotAuthenticated
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", model.ErrNotAuthenticated
	}
	return parts[1], nil
}
