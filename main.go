// timegarden is a small tile-based garden sim: grow potato bushes,
// bend time with the forward/backward/stop machines and donate enough
// potatoes into the crate before the deadline runs out.
//
// Usage:
//
//	timegarden [flags]
//
// Flags:
//
//	--level <path>   - Level file to load (default: assets/levels/garden.level)
//	--rules <path>   - YAML rules file (default: built-in rules)
//	--assets <dir>   - Directory holding images/ and sounds/ (default: assets)
//	--mute           - Disable audio
//	--verbose        - Enable log output
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/feldgrau/timegarden/pkg/app"
)

var (
	flagLevel   string
	flagRules   string
	flagAssets  string
	flagMute    bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "timegarden",
	Short: "Time Garden - a potato garden against the clock",
	Long: `Time Garden is a tile-based garden sim. Walk the garden with the
arrow keys, work the bushes and the time machines with E, and get the
potato donation to its goal before the deadline runs out.

Controls:
  Arrow keys  - Walk (hold Shift to run)
  E           - Use the feature next to you
  P           - Pause
  O / I       - Save / load the counters`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp(app.Config{
			LevelPath: flagLevel,
			RulesPath: flagRules,
			AssetDir:  flagAssets,
			Mute:      flagMute,
			Verbose:   flagVerbose,
		})
		if err != nil {
			return err
		}
		return a.Run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagLevel, "level", "assets/levels/garden.level", "Level file to load")
	rootCmd.Flags().StringVar(&flagRules, "rules", "", "YAML rules file (empty = built-in rules)")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory holding images/ and sounds/")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable log output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
