package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"keycapgen/internal/logger"
)

// Default returns the built-in configuration: openscad from PATH, the
// geometry script relative to the working directory, STLs into the working
// directory.
func Default() Config {
	return Config{
		OpenSCADPath:   "openscad",
		PlaygroundPath: ".",
		OutputPath:     ".",
	}
}

// Load reads the YAML config at the given path, layered over the defaults.
// The config file is optional: if it doesn't exist the defaults come back
// as-is. A file that exists but doesn't parse is reported and ignored rather
// than aborting the run.
func Load(path string) Config {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("[WARN] Could not read %s: %v\n", path, err)
		}
		return cfg
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		logger.Error("[ERROR] Failed to parse %s: %v\n", path, err)
		return Default()
	}

	// Empty fields in the file fall back to the defaults
	def := Default()
	if cfg.OpenSCADPath == "" {
		cfg.OpenSCADPath = def.OpenSCADPath
	}
	if cfg.PlaygroundPath == "" {
		cfg.PlaygroundPath = def.PlaygroundPath
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = def.OutputPath
	}
	return cfg
}
