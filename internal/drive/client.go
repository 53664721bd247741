// Package drive lists and downloads receipt documents from a shared Google
// Drive folder. Only public folders are supported: the client authenticates
// with an API key, not OAuth.
package drive

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"

	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"receipts-digest/constants"
	"receipts-digest/internal/entity"
)

// listPageSize caps one folder listing; no pagination loop beyond it.
const listPageSize = 100

type Client struct {
	svc    *gdrive.Service
	logger *slog.Logger
}

func NewClient(ctx context.Context, apiKey string, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	svc, err := gdrive.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	return &Client{svc: svc, logger: logger}, nil
}

var folderIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/folders/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`id=([a-zA-Z0-9_-]+)`),
}

// ExtractFolderID pulls the folder id out of a share URL. Bare ids pass
// through unchanged so callers can paste either form.
func ExtractFolderID(url string) (string, bool) {
	for _, pattern := range folderIDPatterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	if regexp.MustCompile(`^[a-zA-Z0-9_-]+$`).MatchString(url) {
		return url, true
	}
	return "", false
}

// List returns the PDF files in a folder, trashed files excluded.
func (c *Client) List(ctx context.Context, folderID string) ([]entity.DriveFile, error) {
	query := fmt.Sprintf("'%s' in parents and mimeType='%s' and trashed=false", folderID, constants.PDFMimeType)
	res, err := c.svc.Files.List().
		Q(query).
		Fields("files(id, name, mimeType, size)").
		PageSize(listPageSize).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	files := make([]entity.DriveFile, 0, len(res.Files))
	for _, f := range res.Files {
		files = append(files, entity.DriveFile{
			ID:       f.Id,
			Name:     f.Name,
			MimeType: f.MimeType,
			Size:     f.Size,
		})
	}
	c.logger.Info("drive.list.ok", "folder_id", folderID, "files", len(files))
	return files, nil
}

// Download fetches one file's raw bytes.
func (c *Client) Download(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := c.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file body: %w", err)
	}
	return data, nil
}
