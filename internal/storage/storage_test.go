package storage_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/octavioverge/DSP-MDS-new-sub000/internal/config"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStorageInterfaceCompliance(t *testing.T) {
	var _ storage.Storage = (*storage.LocalStorage)(nil)
	var _ storage.Storage = (*storage.AzureBlobStorage)(nil)
}

func TestNewLocalStorage_CreatesDirectory(t *testing.T) {
	basePath := filepath.Join(t.TempDir(), "uploads")

	ls, err := storage.NewLocalStorage(basePath, "http://localhost:8080/files")
	require.NoError(t, err)
	assert.NotNil(t, ls)

	info, err := os.Stat(basePath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalStorage_PutOpenDelete(t *testing.T) {
	ctx := context.Background()
	ls, err := storage.NewLocalStorage(t.TempDir(), "http://localhost:8080/files/")
	require.NoError(t, err)

	content := []byte("%PDF-1.4 fake")
	obj, err := ls.Put(ctx, "presupuestos/juan-perez-1.pdf", "application/pdf", bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), obj.Size)
	assert.Equal(t, "http://localhost:8080/files/presupuestos/juan-perez-1.pdf", obj.URL)

	rc, err := ls.Open(ctx, obj.Key)
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, content, got)

	require.NoError(t, ls.Delete(ctx, obj.Key))
	_, err = ls.Open(ctx, obj.Key)
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)

	// deleting twice is fine
	assert.NoError(t, ls.Delete(ctx, obj.Key))
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	ls, err := storage.NewLocalStorage(t.TempDir(), "http://x/files")
	require.NoError(t, err)

	_, err = ls.Put(context.Background(), "../escape.txt", "text/plain", strings.NewReader("x"))
	assert.ErrorIs(t, err, storage.ErrInvalidKey)

	_, err = ls.Open(context.Background(), "")
	assert.ErrorIs(t, err, storage.ErrInvalidKey)
}

func TestLocalStorage_URLEscapesSegments(t *testing.T) {
	ls, err := storage.NewLocalStorage(t.TempDir(), "https://dsp.example/files")
	require.NoError(t, err)
	assert.Equal(t, "https://dsp.example/files/fotos/a%20b.jpg", ls.URL("fotos/a b.jpg"))
}

func TestNewStorage(t *testing.T) {
	log := zap.NewNop()

	t.Run("local derives URL from public URL", func(t *testing.T) {
		s, err := storage.NewStorage(&config.StorageConfig{Mode: "local", LocalBasePath: t.TempDir()}, "http://api.local/", log)
		require.NoError(t, err)
		assert.Equal(t, "http://api.local/files/k.pdf", s.URL("k.pdf"))
	})

	t.Run("azure requires connection string", func(t *testing.T) {
		_, err := storage.NewStorage(&config.StorageConfig{Mode: "azure"}, "", log)
		assert.Error(t, err)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := storage.NewStorage(&config.StorageConfig{Mode: "s3"}, "", log)
		assert.Error(t, err)
	})
}

func TestObjectKey(t *testing.T) {
	a := storage.ObjectKey(storage.PrefixQuotes, "Presupuesto Juan Pérez", ".PDF")
	b := storage.ObjectKey(storage.PrefixQuotes, "Presupuesto Juan Pérez", ".PDF")

	assert.NotEqual(t, a, b, "keys must not collide for identical input")
	assert.True(t, strings.HasPrefix(a, "presupuestos/presupuesto-juan-perez-"), a)
	assert.True(t, strings.HasSuffix(a, ".pdf"), a)

	odd := storage.ObjectKey(storage.PrefixPhotos, "IMG_0001.jpeg", ".j?g")
	assert.True(t, strings.HasPrefix(odd, "fotos/img_0001-"), odd)
	assert.False(t, strings.Contains(odd, "?"))

	anon := storage.ObjectKey(storage.PrefixPhotos, "", ".png")
	assert.True(t, strings.HasPrefix(anon, "fotos/"))
	assert.True(t, strings.HasSuffix(anon, ".png"))
}
