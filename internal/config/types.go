package config

// Font describes a legend font to install so the renderer can produce the
// catalog's typography.
// - Name: font family name as the geometry script references it.
// - Source: only "github" is supported.
// - Repo: GitHub repo, e.g., source-foundry/Hack.
// - Tag: GitHub release tag, e.g., v3.003.
type Font struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Repo   string `yaml:"repo"`
	Tag    string `yaml:"tag"`
}

// Config is the tool's optional on-disk configuration. Every field has a
// built-in default; a missing config file is not an error.
type Config struct {
	// OpenSCADPath is the renderer binary; defaults to "openscad" on PATH.
	OpenSCADPath string `yaml:"openscad_path"`
	// PlaygroundPath is the directory holding scad/keycap_playground.scad.
	PlaygroundPath string `yaml:"playground_path"`
	// OutputPath is where STLs go unless --out overrides it.
	OutputPath string `yaml:"output_path"`
	// FontDir is where legend fonts get installed; empty means the platform
	// default user font directory.
	FontDir string `yaml:"font_dir"`
	// Fonts lists the legend fonts the catalog needs.
	Fonts []Font `yaml:"fonts"`
}
