package state

import (
	"encoding/json" // JSON encoding and decoding of the state file
	"os"

	"keycapgen/internal/logger"
)

// FontState records a legend font that was installed for the renderer.
type FontState struct {
	Name  string   `json:"name"`  // Font name (e.g., "Hack")
	URL   string   `json:"url"`   // Download URL used
	Files []string `json:"files"` // Installed font file paths
}

// RenderState records a successfully rendered STL. It is bookkeeping only:
// the batch driver's skip decision always comes from the STL on disk, never
// from this file.
type RenderState struct {
	Path string `json:"path"` // Where the STL was written
}

// State holds everything the tool has done on this machine: installed legend
// fonts keyed by name, and completed renders keyed by keycap name.
type State struct {
	Fonts   map[string]FontState   `json:"fonts"`
	Renders map[string]RenderState `json:"renders"`
}

// Load reads the saved state from a JSON file at the given path. If the file
// does not exist or cannot be read, it returns a new empty State. The maps
// are always non-nil.
func Load(path string) *State {
	file, err := os.ReadFile(path)
	if err != nil {
		return &State{
			Fonts:   make(map[string]FontState),
			Renders: make(map[string]RenderState),
		}
	}

	var st State
	_ = json.Unmarshal(file, &st)

	// Ensure maps are initialized if the JSON contained null for these fields
	if st.Fonts == nil {
		st.Fonts = make(map[string]FontState)
	}
	if st.Renders == nil {
		st.Renders = make(map[string]RenderState)
	}

	return &st
}

// Save writes the state to a JSON file at the given path, pretty-printed.
// Errors during marshalling or writing are logged but not propagated.
func Save(path string, st *State) {
	file, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		logger.Error("[ERROR] Failed to marshal state: %v\n", err)
		return
	}

	logger.Debug("[DEBUG] Writing state to %s:\n%s\n", path, string(file))

	if err := os.WriteFile(path, file, 0644); err != nil {
		logger.Error("[ERROR] Failed to write state file %s: %v\n", path, err)
	}
}
