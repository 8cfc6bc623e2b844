package modifier

import "errors"

// ErrUnknownArtifact indicates an OutputOp.Artifact value outside the
// five named constants.
var ErrUnknownArtifact = errors.New("modifier: unknown output artifact")
