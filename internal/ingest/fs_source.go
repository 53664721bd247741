// Package ingest provides a local-folder document source for CLI runs and
// tests, mirroring the Drive source contract.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"receipts-digest/constants"
	"receipts-digest/internal/entity"
)

// FSSource serves documents from a directory; the file name is the id.
type FSSource struct {
	root   string
	logger *slog.Logger
}

func NewFSSource(root string, logger *slog.Logger) *FSSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSSource{root: root, logger: logger}
}

// List returns the allowed files directly under the root, hidden files skipped.
func (s *FSSource) List(_ context.Context, _ string) ([]entity.DriveFile, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", s.root, err)
	}

	var files []entity.DriveFile
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		ext := constants.NormalizeExt(filepath.Ext(e.Name()))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			continue
		}
		var size int64
		if info, err := e.Info(); err == nil {
			size = info.Size()
		}
		files = append(files, entity.DriveFile{
			ID:       e.Name(),
			Name:     e.Name(),
			MimeType: constants.PDFMimeType,
			Size:     size,
		})
	}
	s.logger.Info("ingest.list.ok", "root", s.root, "files", len(files))
	return files, nil
}

// Download reads one file's bytes. The id is reduced to its base name so a
// crafted id cannot escape the root.
func (s *FSSource) Download(_ context.Context, fileID string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.root, filepath.Base(fileID)))
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", fileID, err)
	}
	return data, nil
}
