package main

import (
	"keycapgen/cmd" // CLI commands and execution logic
)

// main is the program entry point. It delegates to cmd.Execute() which
// handles command line argument parsing and execution.
//
// keycapgen renders a whole keyboard's worth of keycap STLs:
//   - Builds one parameter set per keycap from the Riskeyboard 70 catalog,
//     where family layers (alphas, F-keys, size variants) stack their
//     defaults under any explicit per-cap overrides
//   - Serializes each parameter set into a single OpenSCAD command line and
//     shells out to render it, skipping STLs that already exist
//   - Optionally renders a second legends-only STL per keycap for
//     multi-material prints
//   - Installs the legend fonts the catalog references (fonts subcommand)
//
// Error handling strategy: a failed render logs the captured OpenSCAD output
// and the driver moves on to the next keycap, so one bad cap never blocks
// the rest of the batch.
func main() {
	cmd.Execute()
}
