// Command terrainforge drives the terrain-synthesis core end to end: it
// builds one patch, populates it with the generator/subdivider/relaxation
// modifier queue, and steps that queue to completion, writing the six
// spec output files as each stage finishes.
package main

import "github.com/terrainforge/terrainforge/cmd/terrainforge/cmd"

func main() {
	cmd.Execute()
}
