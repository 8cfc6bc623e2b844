package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load builds a Params by starting from Defaults() and overlaying any
// fields present in the YAML file at path. Fields absent from the file
// keep their default value — this is an overlay, not a replacement.
//
// Only path being empty is treated as "no override requested"; Defaults()
// is returned unchanged in that case. Any other error (missing file,
// malformed YAML) is wrapped in ErrUnreadableConfig.
func Load(path string) (Params, error) {
	p := Defaults()
	if path == "" {
		return p, nil
	}

	v := viper.New()
	v.SetConfigFile(path)

	// Seed viper with the defaults so fields the file omits keep their
	// zero-override (i.e. the Defaults() value) rather than a Go zero value.
	seedDefaults(v, p)

	if err := v.ReadInConfig(); err != nil {
		return Params{}, fmt.Errorf("%w: %s: %v", ErrUnreadableConfig, path, err)
	}

	if err := v.Unmarshal(&p); err != nil {
		return Params{}, fmt.Errorf("%w: %s: %v", ErrUnreadableConfig, path, err)
	}

	return p, nil
}

// seedDefaults registers every Params field as a viper default so that a
// partially-specified override file still yields a fully populated Params.
func seedDefaults(v *viper.Viper, p Params) {
	v.SetDefault("maxslope", p.MaxSlope)
	v.SetDefault("maxslopefalloff", p.MaxSlopeFalloff)
	v.SetDefault("pathradius", p.PathRadius)
	v.SetDefault("pathinfluence", p.PathInfluence)
	v.SetDefault("costlin", p.CostLin)
	v.SetDefault("costpow", p.CostPow)
	v.SetDefault("sthreshold", p.SThreshold)
	v.SetDefault("rthreshold", p.RThreshold)
	v.SetDefault("maxiterations", p.MaxIterations)
	v.SetDefault("stepsize", p.StepSize)
	v.SetDefault("usedirslope", p.UseDirSlope)
	v.SetDefault("useroughness", p.UseRoughness)
	v.SetDefault("useborderstitch", p.UseBorderStitch)
	v.SetDefault("useborderderiv", p.UseBorderDeriv)
	v.SetDefault("autosurround", p.AutoSurround)
}
