// validate_level checks a level file without opening a window: it
// parses the file, builds the auto-tile render plan and prints a
// summary of the grid and its placed items. Content errors exit
// non-zero, so the tool works in CI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/feldgrau/timegarden/internal/tilemap"
	"github.com/feldgrau/timegarden/pkg/types"
)

var rootCmd = &cobra.Command{
	Use:          "validate_level <file>...",
	Short:        "Validate level files and print a placement summary",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := false
		for _, path := range args {
			if err := validate(path); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				failed = true
			}
		}
		if failed {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func validate(path string) error {
	level, err := tilemap.ParseFile(path)
	if err != nil {
		return err
	}

	plan := tilemap.BuildRenderPlan(level)

	fmt.Printf("%s: %dx%d cells, tileset %s, %d overlay cells\n",
		path, level.Width, level.Height, level.Tileset, len(plan.Overlays))

	features := 0
	for _, pos := range level.ItemOrder {
		attrs := level.Items[pos]
		tag := attrs.Name
		if attrs.IsPlayer {
			tag += " (player spawn)"
		} else if types.ParseFeatureType(attrs.Name) != types.FeatureUnknown {
			features++
		}
		fmt.Printf("  (%2d,%2d) %-10s sprite=%s\n", pos.X, pos.Y, tag, attrs.Sprite)
	}
	fmt.Printf("  %d items, %d interactive\n", len(level.Items), features)

	if !level.HasPlayer {
		return fmt.Errorf("level places no player")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
