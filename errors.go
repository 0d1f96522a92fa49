package vdds

import "github.com/nodebus/vdds/internal/fabric"

// Sentinel errors returned by the fabric's error-handling paths.
var (
	ErrTypeMismatch = fabric.ErrTypeMismatch
	ErrSizeMismatch = fabric.ErrSizeMismatch
)
