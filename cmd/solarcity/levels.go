package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/solar-city/internal/games/solarcity"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the level table",
	Long: `Print the built-in levels: roster size, total consumption, the time
until the storm and the starting energy.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	fmt.Println("Levels:")
	fmt.Println()

	fmt.Printf("  %-5s  %-9s  %-8s  %-7s  %-6s  %s\n", "Level", "Buildings", "Drain/s", "Storm", "Energy", "Roster")
	fmt.Printf("  %-5s  %-9s  %-8s  %-7s  %-6s  %s\n", "-----", "---------", "-------", "-----", "------", "------")

	for level := 1; level <= solarcity.LevelCount(); level++ {
		cfg := solarcity.BuildConfig(level)
		names := make([]string, len(cfg.Buildings))
		for i, b := range cfg.Buildings {
			names[i] = b.Name
		}
		fmt.Printf("  %-5d  %-9d  %-8d  %-7s  %-6.0f  %s\n",
			cfg.Level,
			len(cfg.Buildings),
			cfg.TotalConsumption(),
			fmt.Sprintf("%.0fs", cfg.TargetTime),
			cfg.InitialEnergy,
			strings.Join(names, ", "),
		)
	}

	fmt.Println()
	fmt.Println("Run 'solarcity play' to start at level 1.")
}
