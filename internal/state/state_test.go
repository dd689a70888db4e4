package state

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsEmptyState(t *testing.T) {
	st := Load(filepath.Join(t.TempDir(), "state.json"))
	require.NotNil(t, st)
	assert.NotNil(t, st.Fonts)
	assert.NotNil(t, st.Renders)
	assert.Empty(t, st.Fonts)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	st := Load(path)
	st.Fonts["Hack"] = FontState{
		Name:  "Hack",
		URL:   "https://example.test/hack.zip",
		Files: []string{"/home/u/.local/share/fonts/Hack-Regular.ttf"},
	}
	st.Renders["enter"] = RenderState{Path: "/tmp/stls/2.6U_enter.stl"}
	Save(path, st)

	got := Load(path)
	assert.Equal(t, st.Fonts, got.Fonts)
	assert.Equal(t, st.Renders, got.Renders)
}
