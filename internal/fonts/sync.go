// Package fonts installs the legend fonts the keycap catalog references
// (Hack for the arrow glyphs, FontAwesome for icon caps, and so on). Without
// them OpenSCAD silently substitutes a default face and the legends come out
// wrong, so the renderer's font needs are treated as part of the setup.
package fonts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"keycapgen/internal/config"
	"keycapgen/internal/logger"
	"keycapgen/internal/state"
)

// DefaultDir returns the per-user font directory for this platform.
func DefaultDir() string {
	home, _ := os.UserHomeDir()
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Fonts")
	}
	return filepath.Join(home, ".local", "share", "fonts")
}

// Sync installs every configured font that isn't already recorded in the
// state, and records what it installed. Failures are logged and the next font
// is attempted; a partial sync is still progress.
func Sync(fontList []config.Font, st *state.State, dir string) {
	if dir == "" {
		dir = DefaultDir()
	}
	logger.Debug("[DEBUG] Syncing %d fonts into %s\n", len(fontList), dir)

	for _, font := range fontList {
		if _, ok := st.Fonts[font.Name]; ok {
			logger.Info("[INFO] Font %s already installed. Skipping.\n", font.Name)
			continue
		}
		if font.Source != "github" {
			logger.Warn("[WARN] Unknown font source %q for %s. Skipping.\n", font.Source, font.Name)
			continue
		}

		logger.Info("[INFO] Installing font %s from %s@%s...\n", font.Name, font.Repo, font.Tag)
		installed, url, err := install(font, dir)
		if err != nil {
			logger.Error("[ERROR] Failed to install font %s: %v\n", font.Name, err)
			continue
		}
		st.Fonts[font.Name] = state.FontState{
			Name:  font.Name,
			URL:   url,
			Files: installed,
		}
		logger.Info("[INFO] Installed font %s (%d files)\n", font.Name, len(installed))
	}
}

// install downloads the font's release asset, extracts it if it's an
// archive, and copies the font files into dir. It returns the installed file
// paths and the asset URL.
func install(font config.Font, dir string) ([]string, string, error) {
	assetName, url, err := resolveAsset(font.Repo, font.Tag)
	if err != nil {
		return nil, "", err
	}

	tmp, err := os.MkdirTemp("", "keycapgen-font-")
	if err != nil {
		return nil, "", err
	}
	defer os.RemoveAll(tmp)

	archive := filepath.Join(tmp, assetName)
	if err := downloadFile(url, archive); err != nil {
		return nil, "", err
	}

	var fontFiles []string
	switch filepath.Ext(assetName) {
	case ".ttf", ".otf":
		// Some releases ship bare font files
		fontFiles = []string{archive}
	default:
		extracted := filepath.Join(tmp, "extracted")
		if err := extractArchive(archive, extracted); err != nil {
			return nil, "", err
		}
		fontFiles, err = collectFontFiles(extracted)
		if err != nil {
			return nil, "", err
		}
	}
	if len(fontFiles) == 0 {
		return nil, "", fmt.Errorf("no font files in asset %s", assetName)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, "", err
	}
	var installed []string
	for _, src := range fontFiles {
		dst := filepath.Join(dir, filepath.Base(src))
		if err := copyFile(src, dst); err != nil {
			return nil, "", err
		}
		installed = append(installed, dst)
	}
	return installed, url, nil
}

// copyFile copies src to dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source failed: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create target failed: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close %s: %s\n", dst, cerr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy failed: %w", err)
	}
	return nil
}
