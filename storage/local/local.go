// Package local implements blob storage on the local filesystem, the
// default backend for development and tests.
package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"edu-center/config"
)

type Store struct {
	dir     string
	baseURL string
}

func NewStore(cfg *config.StorageConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.MediaDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create media dir %s: %w", cfg.MediaDir, err)
	}
	return &Store{
		dir:     cfg.MediaDir,
		baseURL: strings.TrimSuffix(cfg.MediaBaseURL, "/"),
	}, nil
}

func (s *Store) Store(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o640)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return key, nil
}

func (s *Store) Resolve(ref string) string {
	return s.baseURL + "/" + ref
}

func (s *Store) Delete(ctx context.Context, ref string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(ref)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
