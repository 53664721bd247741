package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"receipts-digest/constants"
	"receipts-digest/internal/common"
	"receipts-digest/internal/entity"
)

// UpdateReceiptRequest carries an explicit user edit from the review stage.
// Nil fields are left untouched.
type UpdateReceiptRequest struct {
	TransactionDate *string  `json:"transaction_date,omitempty"`
	Vendor          *string  `json:"vendor,omitempty"`
	Amount          *float64 `json:"amount,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Category        *string  `json:"category,omitempty"`
	OrderID         *string  `json:"order_id,omitempty"`
	PaymentMethod   *string  `json:"payment_method,omitempty"`
}

type ReceiptRepository interface {
	SaveBatch(ctx context.Context, receipts []*entity.ProcessedReceipt) error
	List(ctx context.Context) ([]*entity.ProcessedReceipt, error)
	GetByID(ctx context.Context, id string) (*entity.ProcessedReceipt, error)
	GetByIDs(ctx context.Context, ids []string) ([]*entity.ProcessedReceipt, error)
	UpdateFields(ctx context.Context, id string, req *UpdateReceiptRequest) (*entity.ProcessedReceipt, error)
}

type receiptRepository struct {
	db     *sql.DB
	driver string
	logger *slog.Logger
}

func NewReceiptRepository(db *sql.DB, driver string, logger *slog.Logger) ReceiptRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &receiptRepository{db: db, driver: driver, logger: logger}
}

// rebind rewrites ? placeholders to $N for the postgres driver.
func (r *receiptRepository) rebind(query string) string {
	if r.driver != "pgx" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, ch := range query {
		if ch == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}

const receiptColumns = "id, file_name, tx_date, vendor, amount, description, category, order_id, payment_method, raw_text, created_at, updated_at"

// SaveBatch upserts every receipt of a batch in one transaction.
func (r *receiptRepository) SaveBatch(ctx context.Context, receipts []*entity.ProcessedReceipt) error {
	if len(receipts) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return common.WrapError(err, "begin tx")
	}
	defer func() { _ = tx.Rollback() }()

	query := r.rebind(`
INSERT INTO receipts (` + receiptColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
	file_name = excluded.file_name,
	tx_date = excluded.tx_date,
	vendor = excluded.vendor,
	amount = excluded.amount,
	description = excluded.description,
	category = excluded.category,
	order_id = excluded.order_id,
	payment_method = excluded.payment_method,
	raw_text = excluded.raw_text,
	updated_at = excluded.updated_at`)

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, rec := range receipts {
		if _, err := tx.ExecContext(ctx, query,
			rec.ID, rec.FileName, rec.TransactionDate, rec.Vendor, rec.Amount,
			rec.Description, string(rec.Category), rec.OrderID, rec.PaymentMethod,
			rec.RawText, now, now,
		); err != nil {
			r.logger.Error("failed to save receipt", "id", rec.ID, "error", err)
			return common.WrapError(err, "save receipt")
		}
	}

	if err := tx.Commit(); err != nil {
		return common.WrapError(err, "commit tx")
	}
	r.logger.Info("receipts.save.ok", "count", len(receipts))
	return nil
}

func (r *receiptRepository) List(ctx context.Context) ([]*entity.ProcessedReceipt, error) {
	query := "SELECT " + receiptColumns + " FROM receipts ORDER BY created_at, id"
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to list receipts", "error", err)
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return scanReceipts(rows)
}

func (r *receiptRepository) GetByID(ctx context.Context, id string) (*entity.ProcessedReceipt, error) {
	query := r.rebind("SELECT " + receiptColumns + " FROM receipts WHERE id = ?")
	row := r.db.QueryRowContext(ctx, query, id)

	rec, err := scanReceipt(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("receipt %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *receiptRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.ProcessedReceipt, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	query := r.rebind("SELECT " + receiptColumns + " FROM receipts WHERE id IN (" + placeholders + ") ORDER BY created_at, id")

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return scanReceipts(rows)
}

// UpdateFields applies a partial user edit. The category, if present, is
// canonicalized onto the closed set before writing.
func (r *receiptRepository) UpdateFields(ctx context.Context, id string, req *UpdateReceiptRequest) (*entity.ProcessedReceipt, error) {
	var sets []string
	var args []any

	add := func(column string, v any) {
		sets = append(sets, column+" = ?")
		args = append(args, v)
	}

	if req.TransactionDate != nil {
		add("tx_date", *req.TransactionDate)
	}
	if req.Vendor != nil {
		add("vendor", *req.Vendor)
	}
	if req.Amount != nil {
		add("amount", *req.Amount)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.Category != nil {
		cat, _ := constants.Canonicalize(*req.Category)
		add("category", string(cat))
	}
	if req.OrderID != nil {
		add("order_id", *req.OrderID)
	}
	if req.PaymentMethod != nil {
		add("payment_method", *req.PaymentMethod)
	}
	if len(sets) == 0 {
		return nil, common.InvalidInputError("no fields to update")
	}

	add("updated_at", time.Now().UTC().Format(time.RFC3339Nano))
	args = append(args, id)

	query := r.rebind("UPDATE receipts SET " + strings.Join(sets, ", ") + " WHERE id = ?")
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to update receipt", "id", id, "error", err)
		return nil, common.WrapError(err, "update receipt")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, fmt.Errorf("receipt %s: %w", id, common.ErrNotFound)
	}

	return r.GetByID(ctx, id)
}

func scanReceipts(rows *sql.Rows) ([]*entity.ProcessedReceipt, error) {
	var result []*entity.ProcessedReceipt
	for rows.Next() {
		rec, err := scanReceipt(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

func scanReceipt(scan func(dest ...any) error) (*entity.ProcessedReceipt, error) {
	var rec entity.ProcessedReceipt
	var category, createdAt, updatedAt string
	if err := scan(
		&rec.ID, &rec.FileName, &rec.TransactionDate, &rec.Vendor, &rec.Amount,
		&rec.Description, &category, &rec.OrderID, &rec.PaymentMethod,
		&rec.RawText, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	rec.Category = constants.Category(category)
	if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		rec.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339Nano, updatedAt); err == nil {
		rec.UpdatedAt = t
	}
	return &rec, nil
}
