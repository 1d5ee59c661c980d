package storage

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"github.com/MatheusHenriquePrates/rankfome-backend/config"
	domainerrors "github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/errors"
)

func newTestStorage(t *testing.T, maxSize int64) (dir string, s *blobImageStorage) {
	t.Helper()

	dir = t.TempDir()
	lc := fxtest.NewLifecycle(t)

	storage, err := NewBlobImageStorage(StorageParams{
		Lc: lc,
		Config: &config.Config{
			Upload: config.UploadConfig{
				Dir:          dir,
				MaxSizeBytes: maxSize,
			},
		},
		Logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
	})
	require.NoError(t, err)

	t.Cleanup(func() { lc.RequireStop() })

	return dir, storage.(*blobImageStorage)
}

func TestBlobImageStorage_Save(t *testing.T) {
	dir, storage := newTestStorage(t, 1<<20)

	key, err := storage.Save(context.Background(), "burger.png", "image/png", strings.NewReader("fake png bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".png"))

	content, err := os.ReadFile(filepath.Join(dir, key))
	require.NoError(t, err)
	assert.Equal(t, "fake png bytes", string(content))
}

func TestBlobImageStorage_Save_UniqueKeys(t *testing.T) {
	_, storage := newTestStorage(t, 1<<20)

	first, err := storage.Save(context.Background(), "logo.jpg", "image/jpeg", strings.NewReader("a"))
	require.NoError(t, err)

	second, err := storage.Save(context.Background(), "logo.jpg", "image/jpeg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBlobImageStorage_Save_RejectsOversizedUpload(t *testing.T) {
	_, storage := newTestStorage(t, 8)

	_, err := storage.Save(context.Background(), "huge.png", "image/png", strings.NewReader("way more than eight bytes"))
	require.Error(t, err)

	// The size limit is a client input problem, not a server fault.
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Contains(t, appErr.Details(), "maximum size")
}
