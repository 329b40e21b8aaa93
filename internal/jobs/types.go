// Package jobs persists calculation jobs and drives them through their
// lifecycle. The UI submits a job, polls its status, and downloads the
// result once completed; a worker pool drains pending jobs in the
// background.
package jobs

import (
	"time"

	"github.com/AvallenSolutions/lca-engine/internal/lca"
)

// Status is the lifecycle state of a calculation job.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Job is one persisted calculation request with its eventual result.
type Job struct {
	ID          string             `json:"id"`
	ProductName string             `json:"product_name"`
	Lines       []lca.Line         `json:"lines"`
	Status      Status             `json:"status"`
	Result      *lca.ProductResult `json:"result,omitempty"`
	Error       string             `json:"error,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
