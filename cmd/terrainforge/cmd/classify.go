package cmd

import (
	"errors"
	"os"

	"github.com/terrainforge/terrainforge/astar"
	"github.com/terrainforge/terrainforge/config"
	"github.com/terrainforge/terrainforge/heightfield"
	"github.com/terrainforge/terrainforge/relax"
	"github.com/terrainforge/terrainforge/terrainio"
)

// classify maps any error this command can return to one of the four spec
// §7 error kinds, so Execute can pick an exit code without parsing error
// text. Unrecognized errors default to KindInvalidInput, matching the
// original generator's "anything unclassified is a bad invocation" stance.
func classify(err error) config.Kind {
	switch {
	case errors.Is(err, heightfield.ErrInvalidSize),
		errors.Is(err, heightfield.ErrSizeMismatch),
		errors.Is(err, heightfield.ErrOutOfBounds),
		errors.Is(err, relax.ErrSizeMismatch),
		errors.Is(err, astar.ErrSameEndpoint),
		errors.Is(err, astar.ErrOutOfBounds),
		errors.Is(err, astar.ErrNoPath),
		errors.Is(err, config.ErrUnreadableConfig):
		return config.KindInvalidInput

	case errors.Is(err, terrainio.ErrDimensionMismatch),
		errors.Is(err, os.ErrNotExist),
		errors.Is(err, os.ErrPermission):
		return config.KindIOFailure

	default:
		return config.KindInvalidInput
	}
}
