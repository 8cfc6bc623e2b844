package modifier

import "github.com/terrainforge/terrainforge/heightfield"

// Kind tags which of the seven operator variants an Operator is.
type Kind int

const (
	KindMPD Kind = iota
	KindFromFile
	KindSubdivide
	KindRelaxSlope1D
	KindRelax
	KindFlatten
	KindOutput
)

// String renders a Kind as the lowercase name used in progress logging.
func (k Kind) String() string {
	switch k {
	case KindMPD:
		return "mpd"
	case KindFromFile:
		return "from_file"
	case KindSubdivide:
		return "subdivide"
	case KindRelaxSlope1D:
		return "relax_slope_1d"
	case KindRelax:
		return "relax"
	case KindFlatten:
		return "flatten"
	case KindOutput:
		return "output"
	default:
		return "unknown"
	}
}

// Operator is one queued modifier: a state-carrying operator invoked
// repeatedly by Queue.Update, each invocation performing one bounded STEP
// of work (spec §1 "Patch").
type Operator interface {
	// Kind reports which of the seven variants this operator is.
	Kind() Kind
	// Step performs one bounded slice of work against patch and reports
	// whether it mutated any height, flag, or constraint.
	Step(patch *heightfield.Patch) (changed bool, err error)
	// Done reports whether this operator has finished all its work.
	Done() bool
}
