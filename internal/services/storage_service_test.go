package services

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	headers := form.File["file"]
	require.Len(t, headers, 1)
	return headers[0]
}

func TestLocalStorageSave(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir)
	require.NoError(t, err)

	path, err := storage.Save(uploadHeader(t, "beach.jpg", "jpeg bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "-beach.jpg"))

	data, err := os.ReadFile(filepath.FromSlash(path))
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))
}

func TestLocalStorageStripsClientPath(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir)
	require.NoError(t, err)

	// Client-supplied directory components must not escape the upload dir.
	path, err := storage.Save(uploadHeader(t, "../../etc/passwd", "x"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, filepath.ToSlash(dir)+"/"))
	assert.True(t, strings.HasSuffix(path, "-passwd"))
}
