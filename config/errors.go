package config

import "errors"

// Kind classifies an error the way spec §7 enumerates them, so callers can
// map any error returned by this module (or by the packages that build on
// it) to an exit-code policy without parsing error strings.
type Kind int

const (
	// KindInvalidInput covers malformed sizes, unreachable goals, and bad
	// configuration values.
	KindInvalidInput Kind = iota
	// KindResourceExhaustion covers allocation failures for solver
	// buffers, A* node tables, and the min-heap.
	KindResourceExhaustion
	// KindIOFailure covers unreadable input files and unwritable output
	// files.
	KindIOFailure
	// KindNonconvergence covers a modifier finishing because it hit
	// MaxIterations rather than reaching a fixed point. Not fatal.
	KindNonconvergence
)

// String renders the Kind the way it is named in spec §7.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindResourceExhaustion:
		return "ResourceExhaustion"
	case KindIOFailure:
		return "IOFailure"
	case KindNonconvergence:
		return "Nonconvergence"
	default:
		return "Unknown"
	}
}

// ErrUnreadableConfig indicates the YAML file passed to Load could not be
// parsed by viper.
var ErrUnreadableConfig = errors.New("config: could not read override file")
