package terrainio

import "errors"

// Sentinel errors returned by this package's readers and writers.
var (
	// ErrDimensionMismatch indicates a reloaded matrix's shape does not
	// match the patch it is being read into.
	ErrDimensionMismatch = errors.New("terrainio: matrix dimensions do not match patch size")
)
