package storage_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/gunnargantzel/NMS-sub000/internal/config"
	"github.com/gunnargantzel/NMS-sub000/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLocalStorage_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	s, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	size, err := s.Put(ctx, "confirmations/ORD-1/a.html", "text/html", strings.NewReader("<p>hi</p>"))
	require.NoError(t, err)
	assert.Equal(t, int64(9), size)

	rc, err := s.Get(ctx, "confirmations/ORD-1/a.html")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(body))

	require.NoError(t, s.Delete(ctx, "confirmations/ORD-1/a.html"))
	require.NoError(t, s.Delete(ctx, "confirmations/ORD-1/a.html"))

	_, err = s.Get(ctx, "confirmations/ORD-1/a.html")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestLocalStorage_KeysStayInsideBase(t *testing.T) {
	base := t.TempDir()
	s, err := storage.NewLocalStorage(base)
	require.NoError(t, err)

	_, err = s.Put(context.Background(), "../../escape.html", "text/html", strings.NewReader("x"))
	require.NoError(t, err)

	rc, err := s.Get(context.Background(), "escape.html")
	require.NoError(t, err)
	rc.Close()

	_, err = s.Put(context.Background(), "", "text/html", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestNewStorage_Modes(t *testing.T) {
	logger := zap.NewNop()

	s, err := storage.NewStorage(&config.StorageConfig{Mode: "local", LocalBasePath: t.TempDir()}, logger)
	require.NoError(t, err)
	assert.IsType(t, &storage.LocalStorage{}, s)

	_, err = storage.NewStorage(&config.StorageConfig{Mode: "azure"}, logger)
	assert.Error(t, err)

	_, err = storage.NewStorage(&config.StorageConfig{Mode: "ftp"}, logger)
	assert.Error(t, err)
}
