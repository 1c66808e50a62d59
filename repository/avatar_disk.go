package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sritampradhan92-jpg/learneEdge/domain"
)

// diskObjectStore writes blobs under baseDir and serves them through the
// /static route mounted in app/main.go. The returned URL is what gets stored
// on the user profile, so baseURL must be the externally reachable address.
type diskObjectStore struct {
	baseDir string
	baseURL string
}

func NewDiskObjectStore(baseDir, baseURL string) domain.ObjectStore {
	return &diskObjectStore{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *diskObjectStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	cleaned := filepath.Clean(key)
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid object key: %s", key)
	}

	path := filepath.Join(s.baseDir, cleaned)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/static/%s", s.baseURL, filepath.ToSlash(cleaned)), nil
}
