// Package blob is the image storage boundary: the core only needs to mint
// upload URLs and resolve stored image references to fetchable URLs.
package blob

import "context"

// Upload is a freshly minted destination for one image.
type Upload struct {
	ImageID   string `json:"imageId"`
	UploadURL string `json:"uploadUrl"`
}

// Store abstracts image storage. Implementations live under
// internal/blob/<driver>; the local driver serves files from disk through
// the API process.
type Store interface {
	// GenerateUploadURL mints a new image id and the URL to PUT its bytes to.
	GenerateUploadURL(ctx context.Context) (*Upload, error)
	// ResolveURL returns a fetchable URL for a stored image, or
	// model.ErrNotFound when the reference is unknown.
	ResolveURL(ctx context.Context, imageID string) (string, error)
}
