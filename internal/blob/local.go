package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/google/uuid"

	"github.com/ecosort/ecosort/internal/model"
)

var imageIDRx = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// LocalStore keeps uploaded images on the local filesystem and serves them
// through the API process under /uploads/{imageId}.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocal creates the upload directory if needed. baseURL is the externally
// reachable root of this service (e.g. http://localhost:8080).
func NewLocal(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir, baseURL: baseURL}, nil
}

func (s *LocalStore) GenerateUploadURL(ctx context.Context) (*Upload, error) {
	id := uuid.New().String()
	return &Upload{ImageID: id, UploadURL: s.url(id)}, nil
}

func (s *LocalStore) ResolveURL(ctx context.Context, imageID string) (string, error) {
	if !imageIDRx.MatchString(imageID) {
		return "", model.ErrNotFound
	}
	if _, err := os.Stat(s.path(imageID)); err != nil {
		return "", model.ErrNotFound
	}
	return s.url(imageID), nil
}

// Save writes the image bytes for a previously minted id.
func (s *LocalStore) Save(ctx context.Context, imageID string, r io.Reader) error {
	if !imageIDRx.MatchString(imageID) {
		return model.ErrNotFound
	}
	f, err := os.Create(s.path(imageID))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	if _, err := io.Copy(f, r); err != nil {
		return err
	}
	return f.Sync()
}

// Open returns the stored image bytes.
func (s *LocalStore) Open(ctx context.Context, imageID string) (io.ReadCloser, error) {
	if !imageIDRx.MatchString(imageID) {
		return nil, model.ErrNotFound
	}
	f, err := os.Open(s.path(imageID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *LocalStore) path(imageID string) string {
	return filepath.Join(s.dir, imageID)
}

func (s *LocalStore) url(imageID string) string {
	return fmt.Sprintf("%s/uploads/%s", s.baseURL, imageID)
}
