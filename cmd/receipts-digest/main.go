// receipts-digest is the one-shot CLI: point it at a Drive folder URL or a
// local directory, and it processes every PDF and writes an XLSX workbook.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"receipts-digest/constants"
	"receipts-digest/internal/common"
	"receipts-digest/internal/drive"
	"receipts-digest/internal/entity"
	"receipts-digest/internal/export"
	"receipts-digest/internal/ingest"
	"receipts-digest/internal/pdftext"
	"receipts-digest/internal/pipeline"
)

var (
	flagDir     string
	flagOut     string
	flagWorkers int
	flagAllCols bool
	flagVerbose bool
)

func main() {
	root := &cobra.Command{
		Use:   "receipts-digest [folder-url]",
		Short: "Process receipt PDFs into a categorized XLSX report",
		Long: `Processes every PDF in a Google Drive folder (pass its share URL) or a
local directory (pass --dir) and writes an XLSX workbook with the extracted
date, vendor, category, description and amount per receipt.`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}
	root.Flags().StringVar(&flagDir, "dir", "", "process a local directory instead of a Drive folder")
	root.Flags().StringVarP(&flagOut, "out", "o", "receipts.xlsx", "output workbook path")
	root.Flags().IntVar(&flagWorkers, "workers", 1, "number of documents processed concurrently")
	root.Flags().BoolVar(&flagAllCols, "all-columns", false, "include order id, payment method and file name columns")
	root.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log every processing step")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, folderID, err := resolveSource(ctx, args, logger)
	if err != nil {
		return err
	}

	files, err := source.List(ctx, folderID)
	if err != nil {
		return fmt.Errorf("list documents: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no PDF files found")
	}

	processor := pipeline.NewProcessor(source, pdftext.NewConverter(), logger,
		pipeline.WithWorkers(flagWorkers))
	result, err := processor.ProcessFiles(ctx, files)
	if err != nil {
		return err
	}

	fields := entity.DefaultExportFields()
	if flagAllCols {
		for i := range fields {
			fields[i].Enabled = true
		}
	}
	data, err := export.NewService(logger).BuildXLSX(result.Receipts, fields)
	if err != nil {
		return err
	}
	if err := os.WriteFile(flagOut, data, 0o644); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	printSummary(cmd, result, flagOut)
	return nil
}

// resolveSource picks the local directory source or the Drive client, and
// resolves the folder id for the latter.
func resolveSource(ctx context.Context, args []string, logger *slog.Logger) (pipeline.Source, string, error) {
	if flagDir != "" {
		return ingest.NewFSSource(flagDir, logger), "", nil
	}
	if len(args) == 0 {
		return nil, "", fmt.Errorf("pass a Drive folder URL or use --dir")
	}
	folderID, ok := drive.ExtractFolderID(args[0])
	if !ok {
		return nil, "", fmt.Errorf("could not extract folder id from %q", args[0])
	}
	apiKey := common.LoadConfig().Drive.APIKey
	if apiKey == "" {
		return nil, "", fmt.Errorf("DRIVE_API_KEY is required for Drive folders")
	}
	client, err := drive.NewClient(ctx, apiKey, logger)
	if err != nil {
		return nil, "", err
	}
	return client, folderID, nil
}

func printSummary(cmd *cobra.Command, result *entity.BatchResult, out string) {
	p := message.NewPrinter(language.English)

	var total float64
	byCategory := map[string]int{}
	for _, r := range result.Receipts {
		total += r.Amount
		byCategory[string(r.Category)]++
	}

	p.Fprintf(cmd.OutOrStdout(), "Processed %d receipts (total %.2f) into %s\n",
		result.TotalProcessed, total, out)
	for _, c := range constants.AsStringSlice() {
		if n := byCategory[c]; n > 0 {
			p.Fprintf(cmd.OutOrStdout(), "  %-10s %d\n", c, n)
		}
	}
	for _, e := range result.Errors {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", e)
	}
}
