package local

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"edu-center/config"

	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(&config.StorageConfig{
		MediaDir:     t.TempDir(),
		MediaBaseURL: "http://localhost:8080/media/",
	})
	assert.NoError(t, err)
	return store
}

func TestStoreAndDelete(t *testing.T) {
	store := newTestStore(t)

	data := strings.NewReader("photo bytes")
	ref, err := store.Store(context.Background(), "teachers/abc.jpg", data, data.Size(), "image/jpeg")
	assert.NoError(t, err)
	assert.Equal(t, "teachers/abc.jpg", ref)

	content, err := os.ReadFile(filepath.Join(store.dir, "teachers", "abc.jpg"))
	assert.NoError(t, err)
	assert.Equal(t, "photo bytes", string(content))

	assert.NoError(t, store.Delete(context.Background(), ref))
	_, err = os.Stat(filepath.Join(store.dir, "teachers", "abc.jpg"))
	assert.True(t, os.IsNotExist(err))

	// deleting a missing blob is not an error
	assert.NoError(t, store.Delete(context.Background(), ref))
}

func TestResolve(t *testing.T) {
	store := newTestStore(t)
	assert.Equal(t, "http://localhost:8080/media/teachers/abc.jpg", store.Resolve("teachers/abc.jpg"))
}
