package config

// DefPatchSize is the default patch side length, 2^7+1, matching the
// original generator's hardcoded DEF_PATCH_SIZE. Every scale-dependent
// constant below is expressed in "default patch units" and converted via
// Scale for any other patch size.
const DefPatchSize = 129

// Params holds every tunable constant of the synthesis pipeline. A zero
// Params is not usable; always obtain one via Defaults() or Load().
type Params struct {
	// MaxSlope is the gradient magnitude cap painted onto path-tube
	// vertices, in default-patch units.
	MaxSlope float64
	// MaxSlopeFalloff is the additional slope allowance added across the
	// directional-slope annulus as distance from the tube increases.
	MaxSlopeFalloff float64
	// PathRadius is the radius of the inner ellipse (disk) painted with
	// SLOPE around each A* path node, in default-patch units.
	PathRadius float64
	// PathInfluence is the additional radius of the outer ellipse used for
	// DIR_SLOPE painting when UseDirSlope is enabled.
	PathInfluence float64
	// CostLin is the linear coefficient (k) in the A* edge cost formula
	// dist * (1 + slope^CostPow * CostLin).
	CostLin float64
	// CostPow is the exponent (p) in the same formula.
	CostPow float64
	// SThreshold is the slope convergence tolerance used by every
	// relaxation operator that compares a slope magnitude against a cap.
	SThreshold float64
	// RThreshold is the roughness convergence tolerance.
	RThreshold float64
	// MaxIterations bounds the total number of passes a relax modifier
	// will run before declaring Nonconvergence and finishing anyway.
	MaxIterations uint32
	// StepSize is the number of passes a single modifier Step executes
	// before yielding back to the driver.
	StepSize uint32

	// UseDirSlope enables directional-slope painting in the outer annulus
	// around a path tube (USE_DIR_SLOPE in the original header).
	UseDirSlope bool
	// UseRoughness enables roughness-constraint seeding over the whole
	// field prior to relaxation (USE_ROUGHNESS).
	UseRoughness bool
	// UseBorderStitch enables POSITION stitching against the 3x3 neighbor
	// grid at subdivide time (USE_BORDER_STITCH).
	UseBorderStitch bool
	// UseBorderDeriv extends border stitching one ring deeper
	// (USE_BORDER_DERIV).
	UseBorderDeriv bool
	// AutoSurround, when enabled, makes patch population first create four
	// unconstrained neighbor patches before subdividing the center patch
	// (AUTO_SURROUND).
	AutoSurround bool
}

// Defaults returns the Params matching the original generator's
// constants.h: MAX_SLOPE=0.0035, MAX_SLOPE_FALLOFF=0.05, PATH_RADIUS=2.2,
// PATH_INFLUENCE=10.0, COST_LIN=10000, COST_POW=1.8, S_THRESHOLD=1e-5,
// R_THRESHOLD=0.04, MAX_ITERATIONS=100000, STEP_SIZE=10, with
// UseDirSlope and UseBorderStitch on and the rest off.
func Defaults() Params {
	return Params{
		MaxSlope:        0.0035,
		MaxSlopeFalloff: 0.05,
		PathRadius:      2.2,
		PathInfluence:   10.0,
		CostLin:         10000,
		CostPow:         1.8,
		SThreshold:      0.00001,
		RThreshold:      0.04,
		MaxIterations:   100000,
		StepSize:        10,

		UseDirSlope:     true,
		UseRoughness:    false,
		UseBorderStitch: true,
		UseBorderDeriv:  false,
		AutoSurround:    false,
	}
}

// Scale returns the ground distance between adjacent vertices for a patch
// of the given side length, relative to DefPatchSize. Every scale-dependent
// parameter above (radii, thresholds expressed as slopes) remains
// meaningful across patch sizes when divided/multiplied by Scale as the
// spec's §3 "Scale" section describes.
func Scale(size int) float64 {
	return float64(DefPatchSize-1) / float64(size-1)
}
