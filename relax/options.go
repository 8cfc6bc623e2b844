package relax

// Options configures a single Step call. The zero value selects the
// original generator's behavior: the proportional rescale form for SLOPE
// and DIR_SLOPE excess.
type Options struct {
	legacyRescale bool
}

// Option mutates an Options, following the same functional-options shape
// the teacher library's dijkstra and builder packages use.
type Option func(*Options)

// WithLegacyRescale selects the sqrt(s^2/g^2)*cap form of the axis-cap
// computation used by SLOPE and DIR_SLOPE instead of the default |s|*cap/g
// form. Both source variants compute the same quantity; this toggle exists
// because the spec's open question on this point asks implementations to
// preserve both rather than silently deleting one.
func WithLegacyRescale() Option {
	return func(o *Options) { o.legacyRescale = true }
}

func newOptions(opts []Option) Options {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
