package entity

// BatchResult is the outcome of one batch-processing request.
// Errors holds one human-readable string per failed document; a batch with
// failures is still a successful batch as long as the request was well-formed.
type BatchResult struct {
	Success        bool                `json:"success"`
	Receipts       []*ProcessedReceipt `json:"receipts"`
	Errors         []string            `json:"errors"`
	TotalProcessed int                 `json:"total_processed"`
}
