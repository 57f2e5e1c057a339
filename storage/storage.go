// Package storage defines the blob storage port used for teacher photos,
// certificate files and article images, plus a factory over the configured
// backend.
package storage

import (
	"context"
	"io"

	"edu-center/config"
	"edu-center/storage/local"
	"edu-center/storage/s3"
	"edu-center/util/common"
)

// Store is the blob storage collaborator. Store persists the content under
// the given key and returns the reference to keep in the database; Resolve
// turns a reference into a fully-qualified URL; Delete removes the blob.
type Store interface {
	Store(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	Resolve(ref string) string
	Delete(ctx context.Context, ref string) error
}

// New builds the blob store selected by cfg.Backend.
func New(cfg *config.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case "s3":
		return s3.NewClient(cfg)
	case "local", "":
		return local.NewStore(cfg)
	default:
		return nil, common.NewErrorf("unknown storage backend: %s", cfg.Backend)
	}
}
