package cmd

import (
	"github.com/spf13/cobra"

	"keycapgen/internal/config"
	"keycapgen/internal/fonts"
	"keycapgen/internal/state"
)

// fontsCmd installs the legend fonts listed in the config so the renderer
// has them available. Already-installed fonts (per the state file) are
// skipped.
var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "Install the legend fonts the catalog needs",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load(configPath)
		st := state.Load(statePath)

		fonts.Sync(cfg.Fonts, st, cfg.FontDir)
		state.Save(statePath, st)
	},
}

func init() {
	rootCmd.AddCommand(fontsCmd)
}
