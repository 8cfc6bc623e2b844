package modifier

import (
	"github.com/terrainforge/terrainforge/config"
	"github.com/terrainforge/terrainforge/heightfield"
	"github.com/terrainforge/terrainforge/obslog"
	"github.com/terrainforge/terrainforge/stats"
	"github.com/terrainforge/terrainforge/terrainio"
)

// Artifact selects which of the six spec §6 output files an OutputOp
// writes.
type Artifact int

const (
	// ArtifactHeights writes terrain_out_l.json or terrain_out_h.json
	// (the caller picks the path; the pipeline stage, not this type,
	// distinguishes "low" pre-relaxation heights from final ones).
	ArtifactHeights Artifact = iota
	// ArtifactFlags writes terrain_out_f.json.
	ArtifactFlags
	// ArtifactConstraints writes terrain_out_c.json.
	ArtifactConstraints
	// ArtifactIterLog appends to iter_out.txt.
	ArtifactIterLog
	// ArtifactStats appends to stats_out.txt and logs the human-readable
	// summary via obslog.
	ArtifactStats
)

// OutputOp writes one output artifact in a single Step. Iterations,
// Params, and Scale are only consulted by ArtifactIterLog and
// ArtifactStats.
type OutputOp struct {
	Artifact   Artifact
	Path       string
	Iterations uint32
	Params     config.Params
	Scale      float64
	Log        obslog.Logger

	done bool
}

func (o *OutputOp) Kind() Kind { return KindOutput }
func (o *OutputOp) Done() bool { return o.done }

func (o *OutputOp) Step(patch *heightfield.Patch) (bool, error) {
	if o.done {
		return false, nil
	}

	var err error
	switch o.Artifact {
	case ArtifactHeights:
		err = terrainio.WriteHeights(o.Path, patch)
	case ArtifactFlags:
		err = terrainio.WriteFlags(o.Path, patch)
	case ArtifactConstraints:
		err = terrainio.WriteConstraints(o.Path, patch)
	case ArtifactIterLog:
		err = terrainio.AppendIterLog(o.Path, o.Iterations)
	case ArtifactStats:
		summary := stats.Compute(patch, o.Params, o.Scale)
		if err = terrainio.AppendStats(o.Path, summary); err == nil {
			if o.Log != nil {
				o.Log.Progress("%s", summary.String())
			}
		}
	default:
		err = ErrUnknownArtifact
	}
	if err != nil {
		return false, err
	}

	o.done = true
	return true, nil
}
