// Package obslog provides the minimal structured-logging surface the
// terrain-synthesis core needs: a Progress line and an Errorf line, matching
// the "-- " / "ERROR -- " prefixed single-line-per-call output that the
// original generator's output()/throw_error() produced on stdout/stderr
// (spec §7).
//
// The modifier package (OutputOp's Log field) depends only on the Logger
// interface, never on the concrete zap-backed implementation, so tests can
// substitute Nop(). relax and astar do no logging.
package obslog
