package cmd

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/terrainforge/terrainforge/astar"
	"github.com/terrainforge/terrainforge/config"
	"github.com/terrainforge/terrainforge/heightfield"
	"github.com/terrainforge/terrainforge/modifier"
	"github.com/terrainforge/terrainforge/obslog"
	"github.com/terrainforge/terrainforge/terrainio"
)

const (
	fileHeightsLo   = "terrain_out_l.json"
	fileHeightsHi   = "terrain_out_h.json"
	fileFlags       = "terrain_out_f.json"
	fileConstraints = "terrain_out_c.json"
	fileIterLog     = "iter_out.txt"
	fileStats       = "stats_out.txt"
)

func parseMode(s string) (heightfield.Mode, error) {
	switch s {
	case "f":
		return heightfield.ModeFromFile, nil
	case "s":
		return heightfield.ModeSequential, nil
	case "p":
		return heightfield.ModeParallel, nil
	case "g":
		return heightfield.ModeGPU, nil
	default:
		return 0, fmt.Errorf("%w: mode %q must be one of f,s,p,g", config.ErrUnreadableConfig, s)
	}
}

func runTerrainforge(command *cobra.Command, args []string) error {
	size, err := strconv.Atoi(args[0])
	if err != nil || size < 2 {
		return fmt.Errorf("patchSize %q must be an integer >= 2: %w", args[0], err)
	}
	mode, err := parseMode(args[1])
	if err != nil {
		return err
	}
	seed, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("seed %q must be a positive integer: %w", args[2], err)
	}
	auto := len(args) == 4

	p, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := obslog.New()

	patch, err := heightfield.New([3]int32{0, 0, 0}, size, mode)
	if err != nil {
		return err
	}

	queue := buildQueue(patch, mode, p, seed)

	for !queue.AllDone() {
		changed, err := queue.Update(patch)
		if err != nil {
			log.Errorf("modifier step failed: %v", err)
			return err
		}
		if changed {
			log.Progress("patch (%d,%d,%d): step applied", patch.Pos[0], patch.Pos[1], patch.Pos[2])
		}
	}

	log.Progress("patch (%d,%d,%d): all modifiers done", patch.Pos[0], patch.Pos[1], patch.Pos[2])

	if !auto {
		log.Progress("interactive mode requested but this build has no renderer; exiting after completion")
	}
	return nil
}

// buildQueue assembles the nine-stage modifier pipeline for one patch:
// generate (or replay), subdivide, snapshot pre-relax heights, relax, then
// emit the remaining five spec §6 output files.
func buildQueue(patch *heightfield.Patch, mode heightfield.Mode, p config.Params, seed int64) *modifier.Queue {
	scale := config.Scale(patch.Size)

	var gen modifier.Operator
	if mode == heightfield.ModeFromFile {
		gen = &modifier.FromFileOp{Path: fileHeightsHi}
	} else {
		gen = &modifier.MPDOp{RNG: rand.New(rand.NewSource(seed))}
	}

	subdivide := &modifier.SubdivideOp{
		Start:  astar.Node{Col: 0, Row: 0},
		Goal:   astar.Node{Col: patch.Size - 1, Row: patch.Size - 1},
		Params: p,
		Scale:  scale,
	}
	if p.AutoSurround {
		if n, e, s, w, err := modifier.PopulateAutoSurround(patch, mode); err == nil {
			subdivide.Neighbors[astar.CompassN] = n
			subdivide.Neighbors[astar.CompassE] = e
			subdivide.Neighbors[astar.CompassS] = s
			subdivide.Neighbors[astar.CompassW] = w
		}
	}

	relaxOp := &modifier.RelaxOp{Params: p}

	q := modifier.NewQueue(
		gen,
		subdivide,
		&modifier.OutputOp{Artifact: modifier.ArtifactHeights, Path: fileHeightsLo},
		relaxOp,
		&modifier.OutputOp{Artifact: modifier.ArtifactHeights, Path: fileHeightsHi},
		&modifier.OutputOp{Artifact: modifier.ArtifactFlags, Path: fileFlags},
		&modifier.OutputOp{Artifact: modifier.ArtifactConstraints, Path: fileConstraints},
		&iterLogOp{relax: relaxOp, path: fileIterLog},
		&modifier.OutputOp{Artifact: modifier.ArtifactStats, Path: fileStats, Params: p, Scale: scale, Log: obslog.New()},
	)
	return q
}

// iterLogOp appends relaxOp's final iteration count to path once relaxOp
// is done. It exists outside the modifier package because OutputOp's
// Iterations field is fixed at construction time, before relaxOp has
// actually run; this adapter reads the live counter instead.
type iterLogOp struct {
	relax *modifier.RelaxOp
	path  string
	done  bool
}

func (o *iterLogOp) Kind() modifier.Kind { return modifier.KindOutput }
func (o *iterLogOp) Done() bool          { return o.done }
func (o *iterLogOp) Step(patch *heightfield.Patch) (bool, error) {
	if o.done {
		return false, nil
	}
	if err := terrainio.AppendIterLog(o.path, o.relax.Iterations()); err != nil {
		return false, err
	}
	o.done = true
	return true, nil
}
