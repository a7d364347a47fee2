package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidImageData = errors.New("invalid image data")
	ErrUnknownVariant   = errors.New("unknown layout variant")
	ErrUnknownPreset    = errors.New("unknown preset")
	ErrAssetNotFound    = errors.New("asset not found")
	ErrProviderFailure  = errors.New("provider failure")
)
