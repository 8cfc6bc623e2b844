// Package terrainio writes and reads the synthesis pipeline's persistent
// output files: the four JSON matrix artifacts (terrain_out_l.json,
// terrain_out_h.json, terrain_out_f.json, terrain_out_c.json), the
// free-form iteration log (iter_out.txt), and the per-run stats record
// (stats_out.txt) — and reads terrain_out_h.json back to drive
// heightfield.ModeFromFile patches (spec §6 "Persistent outputs").
//
// Every matrix is column-major: `[ [col0_row0, col0_row1, ...],
// [col1_row0, ...], ... ]`, mirroring the Patch's own column-major Data
// layout so no transposition is needed on either side of the round trip.
// Encoding uses the standard library's encoding/json — no third-party JSON
// codec appears as a direct dependency anywhere in the retrieval pack
// (json-iterator, gjson, easyjson, and sonic all surface only as indirect
// transitive dependencies of unrelated packages), so there is no ecosystem
// convention this module would otherwise be breaking.
package terrainio
