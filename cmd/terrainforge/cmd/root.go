package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/terrainforge/terrainforge/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "terrainforge patchSize mode seed [auto]",
	Short: "Synthesize a terrain patch via midpoint displacement, A* subdivision, and relaxation",
	Long: `terrainforge builds one heightfield patch and drives it through the
terrain-synthesis modifier queue: generate (or replay) a base field, carve a
path through it with A*, then relax the field toward its slope, roughness,
and position constraints.

  patchSize  patch side length, of the form 2^k+1 (e.g. 129)
  mode       f=read from file, s=sequential relax, p=parallel relax, g=reserved
  seed       RNG seed for the generator (positive integer)
  auto       any fourth argument enables headless mode: run to completion and exit`,
	Example: `  terrainforge 129 s 1
  terrainforge 129 p 42 auto
  terrainforge 129 f 1 auto --config overrides.yaml`,
	Args: cobra.RangeArgs(3, 4),
	RunE: runTerrainforge,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file overlaying default Params")
}

// Execute runs the root command and maps any returned error to a process
// exit code via classify, per spec §7 ("Exit 0 on success; non-zero on
// initialization failure or any fatal solver error").
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		kind := classify(err)
		fmt.Fprintf(os.Stderr, "ERROR -- %v\n", err)
		os.Exit(exitCode(kind))
	}
}

func exitCode(k config.Kind) int {
	switch k {
	case config.KindInvalidInput:
		return 2
	case config.KindResourceExhaustion:
		return 3
	case config.KindIOFailure:
		return 4
	default:
		return 1
	}
}
