package relax

import "errors"

// ErrSizeMismatch indicates a patch whose Data length does not match
// Size*Size, surfaced before any pass touches the buffer.
var ErrSizeMismatch = errors.New("relax: patch data length does not match size*size")
