// solarcity is an arcade game about powering a city with solar panels.
//
// Usage:
//
//	solarcity play           - Play in the terminal
//	solarcity window         - Play in a desktop window
//	solarcity levels         - Print the level table
//	solarcity scores [level] - Show the run log
//
// Global flags:
//
//	--fps <rate>        - Set frame rate (default: from config, 60)
//	--seed <value>      - Set RNG seed for reproducible layouts and panels
//	--config <path>     - Use a custom config YAML
//	--db <path>         - Record finished levels in a SQLite run log
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
//	--mute              - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "solarcity",
	Short: "Cidade Solar Inteligente - power a city with solar panels",
	Long: `Solar City is a short arcade game: click the buildings of a city to
install solar panels before the deadline, keep the energy balance above
zero, and beat the storm that follows.

Available commands:
  play     - Play in the terminal (mouse or keys)
  window   - Play in a desktop window
  levels   - Print the level table
  scores   - View the run log

Examples:
  solarcity play
  solarcity window --seed 42
  solarcity play --db ~/.solarcity/runs.db
  solarcity scores 2 --db ~/.solarcity/runs.db`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the run log database (empty = from config, disabled by default)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
}
