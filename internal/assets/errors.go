package assets

import "errors"

var (
	ErrAssetNotFound    = errors.New("assets: asset not found")
	ErrInvalidAssetName = errors.New("assets: invalid asset name")
)
