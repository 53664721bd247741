package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSSourceListAndDownload(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("%PDF-aaa"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.PDF"), []byte("%PDF-bbb"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.pdf"), []byte("skip"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	src := NewFSSource(dir, nil)
	ctx := context.Background()

	files, err := src.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, files, 2)

	names := []string{files[0].Name, files[1].Name}
	assert.Contains(t, names, "a.pdf")
	assert.Contains(t, names, "b.PDF")

	data, err := src.Download(ctx, "a.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-aaa"), data)
}

func TestFSSourceDownloadStaysInRoot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("%PDF-aaa"), 0o644))

	src := NewFSSource(dir, nil)

	// Path traversal collapses to the base name inside the root.
	data, err := src.Download(context.Background(), "../../a.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-aaa"), data)

	_, err = src.Download(context.Background(), "missing.pdf")
	assert.Error(t, err)
}

func TestFSSourceListMissingDir(t *testing.T) {
	src := NewFSSource("/does/not/exist", nil)
	_, err := src.List(context.Background(), "")
	assert.Error(t, err)
}
