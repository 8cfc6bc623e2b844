// Package config centralizes the tunable constants of the terrain-synthesis
// pipeline: scale-dependent thresholds, path-painting radii, A* cost
// coefficients, and the feature toggles that the original generator exposed
// as compile-time #defines.
//
// Params is constructed with Defaults() and may be overridden wholesale by
// loading a YAML file with Load(path), which overlays onto the defaults
// using github.com/spf13/viper. Nothing in the core solver packages imports
// viper directly; they only ever see a Params value.
package config
