// Package stats computes per-constraint-family satisfaction counts over a
// patch: how many vertices carry each constraint, how many currently
// satisfy it within the configured threshold, and the mean distance by
// which the unsatisfied ones miss it (spec §4.6).
package stats
