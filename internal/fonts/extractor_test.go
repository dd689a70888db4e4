package fonts

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range entries {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
}

func TestExtractArchive_UnsupportedFormat(t *testing.T) {
	err := extractArchive("font.rar", t.TempDir())
	assert.ErrorContains(t, err, "unsupported archive format")
}

func TestExtractZip_AndCollectFontFiles(t *testing.T) {
	tmp := t.TempDir()
	archive := filepath.Join(tmp, "hack.zip")
	writeZip(t, archive, map[string]string{
		"ttf/Hack-Regular.ttf": "fontdata",
		"ttf/Hack-Bold.ttf":    "fontdata",
		"README.md":            "readme",
	})

	dest := filepath.Join(tmp, "extracted")
	require.NoError(t, extractArchive(archive, dest))

	files, err := collectFontFiles(dest)
	require.NoError(t, err)
	assert.Len(t, files, 2, "only font files are collected")
	for _, f := range files {
		assert.Equal(t, ".ttf", filepath.Ext(f))
	}
}

func TestSafeJoin_RejectsTraversal(t *testing.T) {
	_, err := safeJoin("/tmp/dest", "../../etc/passwd")
	assert.Error(t, err)

	target, err := safeJoin("/tmp/dest", "ttf/Hack-Regular.ttf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/dest", "ttf", "Hack-Regular.ttf"), target)
}
