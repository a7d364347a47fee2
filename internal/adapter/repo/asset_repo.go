package repo

import (
	"context"

	"cardsmith/internal/domain"
	"cardsmith/internal/infra"
	"cardsmith/internal/sqlinline"
)

// AssetRepositoryPG implements domain.AssetRepository using PostgreSQL.
type AssetRepositoryPG struct {
	sql infra.SQLExecutor
}

var _ domain.AssetRepository = (*AssetRepositoryPG)(nil)

// NewAssetRepository constructs a new asset repository instance.
func NewAssetRepository(sql infra.SQLExecutor) *AssetRepositoryPG {
	return &AssetRepositoryPG{sql: sql}
}

// Save persists one finished card asset.
func (r *AssetRepositoryPG) Save(ctx context.Context, asset *domain.CardAsset) error {
	_, err := r.sql.Exec(ctx, sqlinline.QInsertCardAsset,
		asset.ID,
		asset.JobID,
		asset.StorageKey,
		asset.Format,
		asset.Width,
		asset.Height,
		asset.Bytes,
		asset.Checksum,
	)
	return err
}

// GetByID fetches an asset by its identifier.
func (r *AssetRepositoryPG) GetByID(ctx context.Context, assetID string) (*domain.CardAsset, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectCardAssetByID, assetID)
	var asset domain.CardAsset
	if err := row.Scan(
		&asset.ID,
		&asset.JobID,
		&asset.StorageKey,
		&asset.Format,
		&asset.Width,
		&asset.Height,
		&asset.Bytes,
		&asset.Checksum,
		&asset.CreatedAt,
	); err != nil {
		if infra.IsNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &asset, nil
}

// ListByJobID returns all assets belonging to the job, oldest first.
func (r *AssetRepositoryPG) ListByJobID(ctx context.Context, jobID string) ([]domain.CardAsset, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListCardAssetsByJob, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []domain.CardAsset
	for rows.Next() {
		var asset domain.CardAsset
		if err := rows.Scan(
			&asset.ID,
			&asset.JobID,
			&asset.StorageKey,
			&asset.Format,
			&asset.Width,
			&asset.Height,
			&asset.Bytes,
			&asset.Checksum,
			&asset.CreatedAt,
		); err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return assets, nil
}
