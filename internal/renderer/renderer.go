// Package renderer walks a keycap catalog and shells out to OpenSCAD once per
// entry, skipping STLs that already exist. Everything runs sequentially; a
// render blocks until its process exits, and a failed render is reported and
// skipped, never retried.
package renderer

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"keycapgen/internal/keycap"
	"keycapgen/internal/logger"
	"keycapgen/internal/state"
)

// Renderer drives batch rendering into OutDir.
type Renderer struct {
	OutDir  string
	Force   bool // Re-render even when the STL already exists
	Legends bool // Also produce a separate <name>_legends.stl per keycap

	// Run executes a rendering command line and returns its exit code and
	// combined output. Left nil, it runs the command through the shell.
	// Tests inject their own.
	Run func(cmdline string) (int, string)

	// State, when non-nil, records successful renders. It is never consulted
	// for skipping; the on-disk STL is the only idempotency check.
	State *state.State
}

// runShell executes a command line via the shell, capturing stdout and stderr
// together. The command string contains quoting OpenSCAD needs intact, so it
// goes through `sh -c` rather than being split into argv here.
func runShell(cmdline string) (int, string) {
	cmd := exec.Command("sh", "-c", cmdline)
	output, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), string(output)
		}
		// The process never started (missing shell, bad binary); report the
		// error text as the output.
		return -1, err.Error()
	}
	return 0, string(output)
}

func (r *Renderer) run(cmdline string) (int, string) {
	if r.Run != nil {
		return r.Run(cmdline)
	}
	return runShell(cmdline)
}

// stlPath is where the keycap's output lands.
func (r *Renderer) stlPath(k *keycap.Keycap) string {
	return filepath.Join(r.OutDir, k.Name+".stl")
}

// Render renders a single keycap unless its STL already exists (and Force is
// off). It returns true when a render was attempted and succeeded. Failures
// are logged along with the captured renderer output; a nonzero exit may
// still leave a partial file behind, which is deliberately not cleaned up.
func (r *Renderer) Render(k *keycap.Keycap) bool {
	k.OutputPath = r.OutDir
	out := r.stlPath(k)
	if !r.Force {
		if _, err := os.Stat(out); err == nil {
			logger.Bright("%s exists; skipping...\n", out)
			return false
		}
	}
	logger.Bright("Rendering %s...\n", out)
	logger.Debug("%s\n", k.CommandLine())
	retcode, output := r.run(k.CommandLine())
	if output != "" {
		logger.Info("%s\n", output)
	}
	if retcode != 0 {
		logger.Error("Rendering %s failed (exit %d)\n", out, retcode)
		return false
	}
	logger.Info("%s rendered successfully\n", out)
	if r.State != nil {
		r.State.Renders[k.Name] = state.RenderState{Path: out}
	}
	return true
}

// renderLegendsOf renders the legends-only STL for a keycap. The copy keeps
// the catalog entry itself untouched for any later pass.
func (r *Renderer) renderLegendsOf(k *keycap.Keycap) {
	if len(k.Legends) == 1 && k.Legends[0] == "" {
		return // No actual legends
	}
	legends := *k
	legends.Name = k.Name + "_legends"
	legends.Render = []string{"legends"}
	r.Render(&legends)
}

// RenderAll walks the whole catalog in order. When Legends is set it makes a
// second pass producing the separate legend STLs for multi-material prints.
func (r *Renderer) RenderAll(caps []*keycap.Keycap) {
	for _, k := range caps {
		r.Render(k)
	}
	if r.Legends {
		for _, k := range caps {
			r.renderLegendsOf(k)
		}
	}
}

// RenderNamed renders only the catalog entries whose names match (case
// insensitively) one of the given names. Unknown names are reported after the
// walk.
func (r *Renderer) RenderNamed(caps []*keycap.Keycap, names []string) {
	for _, name := range names {
		matched := false
		for _, k := range caps {
			if !strings.EqualFold(k.Name, name) {
				continue
			}
			matched = true
			r.Render(k)
			if r.Legends {
				r.renderLegendsOf(k)
			}
		}
		if !matched {
			logger.Warn("Could not find a keycap named %s\n", name)
		}
	}
}
