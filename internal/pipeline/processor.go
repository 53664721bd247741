// Package pipeline sequences document acquisition, validation, text
// conversion, field extraction and categorization for a batch of documents.
// Every document is processed independently: one failure becomes one error
// string and the batch carries on.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"receipts-digest/constants"
	"receipts-digest/internal/categorize"
	"receipts-digest/internal/common"
	"receipts-digest/internal/entity"
	"receipts-digest/internal/extract"
)

// Source abstracts the document store the batch reads from.
type Source interface {
	List(ctx context.Context, folderID string) ([]entity.DriveFile, error)
	Download(ctx context.Context, fileID string) ([]byte, error)
}

// TextConverter turns raw document bytes into text.
type TextConverter interface {
	ExtractText(data []byte) (string, error)
}

type Processor struct {
	source    Source
	converter TextConverter
	logger    *slog.Logger
	workers   int
}

type Option func(*Processor)

// WithWorkers bounds the number of documents processed concurrently.
// Extraction and categorization are pure; the bound exists for the source's
// download quota, not for correctness.
func WithWorkers(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.workers = n
		}
	}
}

func NewProcessor(source Source, converter TextConverter, logger *slog.Logger, opts ...Option) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Processor{
		source:    source,
		converter: converter,
		logger:    logger,
		workers:   1,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// outcome keeps per-document results attributable and in input order.
type outcome struct {
	receipt *entity.ProcessedReceipt
	errMsg  string
}

// ProcessBatch processes documents by id. The display name defaults to the id;
// use ProcessFiles when the listing already resolved names.
func (p *Processor) ProcessBatch(ctx context.Context, fileIDs []string) (*entity.BatchResult, error) {
	files := make([]entity.DriveFile, len(fileIDs))
	for i, id := range fileIDs {
		files[i] = entity.DriveFile{ID: id, Name: id}
	}
	return p.ProcessFiles(ctx, files)
}

// ProcessFiles runs the per-document pipeline over every file. An empty input
// list is an input error reported before any processing begins; everything
// after that point is a per-document error at worst.
func (p *Processor) ProcessFiles(ctx context.Context, files []entity.DriveFile) (*entity.BatchResult, error) {
	if len(files) == 0 {
		return nil, common.InvalidInputError("file ids are required")
	}

	batchID := uuid.NewString()
	logger := p.logger.With("batch_id", batchID)
	logger.Info("batch.process.start", "requested", len(files))

	outcomes := make([]outcome, len(files))
	if p.workers <= 1 {
		for i, f := range files {
			outcomes[i] = p.processOne(ctx, f)
		}
	} else {
		var wg sync.WaitGroup
		sem := make(chan struct{}, p.workers)
		for i, f := range files {
			wg.Add(1)
			go func(i int, f entity.DriveFile) {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()
				outcomes[i] = p.processOne(ctx, f)
			}(i, f)
		}
		wg.Wait()
	}

	result := &entity.BatchResult{
		Success:  true,
		Receipts: make([]*entity.ProcessedReceipt, 0, len(files)),
		Errors:   make([]string, 0),
	}
	for _, o := range outcomes {
		if o.errMsg != "" {
			result.Errors = append(result.Errors, o.errMsg)
			continue
		}
		result.Receipts = append(result.Receipts, o.receipt)
	}
	result.TotalProcessed = len(result.Receipts)

	logger.Info("batch.process.done",
		"requested", len(files),
		"processed", result.TotalProcessed,
		"failed", len(result.Errors),
	)
	return result, nil
}

// processOne runs acquire → validate → convert → extract → categorize →
// assemble for a single document, mapping every failure to an error string.
func (p *Processor) processOne(ctx context.Context, file entity.DriveFile) (out outcome) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("batch.process.panic", "file_id", file.ID, "panic", r)
			out = outcome{errMsg: fmt.Sprintf("Error processing file %s: %v", file.ID, r)}
		}
	}()

	data, err := p.source.Download(ctx, file.ID)
	if err != nil {
		p.logger.Warn("batch.download.failed", "file_id", file.ID, "err", err)
		return outcome{errMsg: fmt.Sprintf("Error processing file %s: %v", file.ID, err)}
	}

	if !constants.IsPDFHeader(data) {
		return outcome{errMsg: fmt.Sprintf("File %s is not a valid PDF", file.ID)}
	}

	text, err := p.converter.ExtractText(data)
	if err != nil {
		return outcome{errMsg: fmt.Sprintf("Error processing file %s: %v", file.ID, err)}
	}
	if strings.TrimSpace(text) == "" {
		return outcome{errMsg: fmt.Sprintf("File %s contains no extractable text", file.ID)}
	}

	extracted := extract.Extract(text)
	category := categorize.Categorize(extracted.Vendor, extracted.Description)

	receipt := entity.FromExtraction(file.ID, file.Name, extracted, category, text)
	p.logger.Info("batch.process.ok",
		"file_id", file.ID,
		"vendor", receipt.Vendor,
		"category", receipt.Category,
		"amount", receipt.Amount,
	)
	return outcome{receipt: receipt}
}
