package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"keycapgen/internal/catalog"
	"keycapgen/internal/config"
	"keycapgen/internal/keycap"
	"keycapgen/internal/logger"
	"keycapgen/internal/renderer"
	"keycapgen/internal/state"
)

// Command-line flags. Package-level so the subcommands share them.
var (
	debug       bool
	configPath  string
	outDir      string
	force       bool
	legends     bool
	listKeycaps bool
)

// statePath is the persistent record of installed fonts and finished renders.
var statePath = "state.json"

// rootCmd renders keycap STLs for all the Riskeyboard 70's switches, or just
// the ones named on the command line.
var rootCmd = &cobra.Command{
	Use:   "keycapgen [name...]",
	Short: "Render keycap STLs for the Riskeyboard 70",
	Long: `keycapgen builds OpenSCAD command lines for every keycap in the Riskeyboard 70
catalog and invokes the renderer once per cap, skipping STLs that already
exist. Name specific keycaps as arguments to render only those.`,

	// Initialize the logger before any subcommand runs.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},

	Run: func(cmd *cobra.Command, args []string) {
		if listKeycaps {
			printKeycaps()
			os.Exit(1)
		}

		cfg := config.Load(configPath)
		if outDir == "" {
			outDir = cfg.OutputPath
		}
		if _, err := os.Stat(outDir); err != nil {
			logger.Bright("Output path, '%s' does not exist; making it...\n", outDir)
			if err := os.MkdirAll(outDir, 0755); err != nil {
				logger.Error("[ERROR] Failed to create %s: %v\n", outDir, err)
				os.Exit(1)
			}
		}
		logger.Bright("Outputting to: %s\n", outDir)

		st := state.Load(statePath)
		caps := catalog.Keycaps(
			keycap.WithOpenSCADPath(cfg.OpenSCADPath),
			keycap.WithPlaygroundPath(cfg.PlaygroundPath),
		)
		r := &renderer.Renderer{
			OutDir:  outDir,
			Force:   force,
			Legends: legends,
			State:   st,
		}
		if len(args) > 0 {
			r.RenderNamed(caps, args)
		} else {
			r.RenderAll(caps)
		}
		state.Save(statePath, st)
	},
}

// printKeycaps prints the names of every keycap in the catalog.
func printKeycaps() {
	logger.Bright("Here's all the keycaps we can render:\n\n")
	names := catalog.Names(catalog.Keycaps())
	logger.Info("%s\n", strings.Join(names, ", "))
}

// Execute wires up flags and runs the CLI. A bare invocation prints help plus
// the catalog and exits 1, matching the listing-only exit convention.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to configuration file")
	rootCmd.Flags().StringVar(&outDir, "out", "", "Where the generated STL files will go")
	rootCmd.Flags().BoolVar(&force, "force", false, "Forcibly re-render STL files even if they already exist")
	rootCmd.Flags().BoolVar(&legends, "legends", false, "Generate a separate set of STLs for legends")
	rootCmd.Flags().BoolVar(&listKeycaps, "keycaps", false, "Print the names of all keycaps we can render")

	if len(os.Args) == 1 {
		_ = rootCmd.Help()
		logger.Init(false)
		printKeycaps()
		os.Exit(1)
	}

	_ = rootCmd.Execute()
}
