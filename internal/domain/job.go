package domain

import "time"

// JobStatus enumerates card job lifecycle states.
type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusSucceeded JobStatus = "succeeded"
	JobStatusFailed    JobStatus = "failed"
)

// CardJob tracks one asynchronous card render from enqueue to stored asset.
// ParamsJSON holds the canonical compose request as raw bytes so the worker
// and API share a single contract.
type CardJob struct {
	ID           string
	Status       JobStatus
	ParamsJSON   []byte
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
