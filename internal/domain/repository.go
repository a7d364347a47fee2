package domain

import "context"

// JobRepository defines persistence for card jobs.
type JobRepository interface {
	Create(ctx context.Context, job *CardJob) error
	GetByID(ctx context.Context, jobID string) (*CardJob, error)
	ClaimNext(ctx context.Context) (*CardJob, error)
	UpdateStatus(ctx context.Context, jobID string, status JobStatus, errMsg *string) error
}

// AssetRepository handles persistence for finished card assets.
type AssetRepository interface {
	Save(ctx context.Context, asset *CardAsset) error
	GetByID(ctx context.Context, assetID string) (*CardAsset, error)
	ListByJobID(ctx context.Context, jobID string) ([]CardAsset, error)
}
