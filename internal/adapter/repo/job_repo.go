// Package repo provides the PostgreSQL-backed implementations of the domain
// repositories. SQL lives in sqlinline; execution goes through the
// infra.SQLExecutor contract so tests can substitute fakes.
package repo

import (
	"context"

	"cardsmith/internal/domain"
	"cardsmith/internal/infra"
	"cardsmith/internal/sqlinline"
)

// JobRepositoryPG implements domain.JobRepository.
type JobRepositoryPG struct {
	sql infra.SQLExecutor
}

var _ domain.JobRepository = (*JobRepositoryPG)(nil)

// NewJobRepository creates a new job repository backed by PostgreSQL.
func NewJobRepository(sql infra.SQLExecutor) *JobRepositoryPG {
	return &JobRepositoryPG{sql: sql}
}

// Create inserts a new card job record.
func (r *JobRepositoryPG) Create(ctx context.Context, job *domain.CardJob) error {
	_, err := r.sql.Exec(ctx, sqlinline.QInsertCardJob, job.ID, job.Status, job.ParamsJSON, job.ErrorMessage)
	return err
}

// GetByID fetches a card job by its identifier.
func (r *JobRepositoryPG) GetByID(ctx context.Context, jobID string) (*domain.CardJob, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectCardJobByID, jobID)
	var job domain.CardJob
	if err := row.Scan(
		&job.ID,
		&job.Status,
		&job.ParamsJSON,
		&job.ErrorMessage,
		&job.CreatedAt,
		&job.UpdatedAt,
	); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// ClaimNext atomically flips the oldest queued job to running and returns it.
// Concurrent workers skip rows another claim holds. An empty queue reports
// ErrNotFound.
func (r *JobRepositoryPG) ClaimNext(ctx context.Context) (*domain.CardJob, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QClaimCardJob)
	var job domain.CardJob
	if err := row.Scan(
		&job.ID,
		&job.Status,
		&job.ParamsJSON,
		&job.ErrorMessage,
		&job.CreatedAt,
		&job.UpdatedAt,
	); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	// Ensure params bytes are not aliased.
	job.ParamsJSON = append([]byte(nil), job.ParamsJSON...)
	return &job, nil
}

// UpdateStatus updates job status and optionally the error message.
func (r *JobRepositoryPG) UpdateStatus(ctx context.Context, jobID string, status domain.JobStatus, errMsg *string) error {
	_, err := r.sql.Exec(ctx, sqlinline.QUpdateCardJobStatus, jobID, status, errMsg)
	return err
}
