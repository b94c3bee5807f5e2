package ingest

import (
	"time"
)

const (
	StatusRunning   = "RUNNING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// Run summarizes one ingestion pass.
type Run struct {
	StartedAt    time.Time
	FinishedAt   *time.Time
	Status       string
	Subjects     string
	BooksFetched int
	BooksSaved   int
	Duplicates   int
	Skipped      int
	Error        string
}
