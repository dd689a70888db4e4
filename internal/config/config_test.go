package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "openscad", cfg.OpenSCADPath)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
openscad_path: /usr/local/bin/openscad
playground_path: /opt/keycap_playground
fonts:
  - name: Hack
    source: github
    repo: source-foundry/Hack
    tag: v3.003
`), 0644))

	cfg := Load(path)
	assert.Equal(t, "/usr/local/bin/openscad", cfg.OpenSCADPath)
	assert.Equal(t, "/opt/keycap_playground", cfg.PlaygroundPath)
	// Unset fields keep their defaults
	assert.Equal(t, ".", cfg.OutputPath)
	require.Len(t, cfg.Fonts, 1)
	assert.Equal(t, Font{Name: "Hack", Source: "github", Repo: "source-foundry/Hack", Tag: "v3.003"}, cfg.Fonts[0])
}

func TestLoad_UnparsableFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fonts: ["), 0644))
	assert.Equal(t, Default(), Load(path))
}
