package esload

import (
	"sync"

	"github.com/thalesfsp/customerror"
)

//////
// Const, vars, and types.
//////

// Status represents the status of a bulk load.
type Status = string

const (
	// StatusRunning represents a running status.
	StatusRunning Status = "running"

	// StatusDone represents a done status.
	StatusDone Status = "done"
)

// FailedItem contains information about a document that failed to index.
type FailedItem struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
	Status int    `json:"status"`
}

// LoadMetrics contains metrics for a bulk load.
//
// NOTE: Use NewLoadMetrics() to create a new LoadMetrics struct!
type LoadMetrics struct {
	// Status of the process.
	Status Status `json:"status"`

	// Bulk metrics.
	BytesProcessed int64 `json:"bytesProcessed"`
	DocsFailed     int64 `json:"docsFailed"`
	DocsProcessed  int64 `json:"docsProcessed"`
	DocsSucceeded  int64 `json:"docsSucceeded"`
	ErrorCount     int64 `json:"errorCount"`

	// FailedItems accumulates per-document failures reported by the engine.
	FailedItems []FailedItem `json:"failedItems"`

	mu sync.Mutex `json:"-"`
}

//////
// Methods.
//////

// UpdateStatus updates the status.
func (lm *LoadMetrics) UpdateStatus(status Status) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	lm.Status = status
}

// UpdateBytesProcessed updates the number of bytes processed.
func (lm *LoadMetrics) UpdateBytesProcessed(delta int64) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	lm.BytesProcessed += delta
}

// IncreaseDocsFailed increases the number of documents that failed.
func (lm *LoadMetrics) IncreaseDocsFailed() {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	lm.DocsFailed++
}

// IncreaseDocsProcessed increases the number of documents processed.
func (lm *LoadMetrics) IncreaseDocsProcessed() {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	lm.DocsProcessed++
}

// IncreaseDocsSucceeded increases the number of documents that succeeded.
func (lm *LoadMetrics) IncreaseDocsSucceeded() {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	lm.DocsSucceeded++
}

// IncrementErrorCount increments the error count.
func (lm *LoadMetrics) IncrementErrorCount() {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	lm.ErrorCount++
}

// RecordFailedItem appends a per-document failure.
func (lm *LoadMetrics) RecordFailedItem(item FailedItem) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	lm.FailedItems = append(lm.FailedItems, item)
}

// GetMetrics returns a copy of the LoadMetrics struct.
func (lm *LoadMetrics) GetMetrics() *LoadMetrics {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	return &LoadMetrics{
		Status: lm.Status,

		BytesProcessed: lm.BytesProcessed,
		DocsFailed:     lm.DocsFailed,
		DocsProcessed:  lm.DocsProcessed,
		DocsSucceeded:  lm.DocsSucceeded,
		ErrorCount:     lm.ErrorCount,

		FailedItems: append([]FailedItem(nil), lm.FailedItems...),
	}
}

//////
// Factory.
//////

// NewLoadMetrics creates a new LoadMetrics struct.
func NewLoadMetrics() (*LoadMetrics, error) {
	m := &LoadMetrics{
		Status: StatusRunning,

		BytesProcessed: 0,
		DocsFailed:     0,
		DocsProcessed:  0,
		DocsSucceeded:  0,
		ErrorCount:     0,

		FailedItems: make([]FailedItem, 0),

		mu: sync.Mutex{},
	}

	if err := process(m); err != nil {
		return nil, customerror.NewInvalidError("load metrics", customerror.WithError(err))
	}

	return m, nil
}
