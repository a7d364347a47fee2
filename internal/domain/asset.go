package domain

import "time"

// AssetFormat enumerates stored artifact encodings.
type AssetFormat string

const (
	AssetFormatPNG AssetFormat = "png"
)

// CardAsset is a finished card image persisted for a job.
type CardAsset struct {
	ID         string
	JobID      string
	StorageKey string
	Format     AssetFormat
	Width      int
	Height     int
	Bytes      int64
	Checksum   string
	CreatedAt  time.Time
}
