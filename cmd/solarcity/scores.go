package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/solar-city/internal/games/solarcity"
	"github.com/vovakirdan/solar-city/internal/platform/tui"
	"github.com/vovakirdan/solar-city/internal/storage"
)

var (
	flagRunID  string
	flagClear  bool
	flagRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show the run log",
	Long: `Display recorded runs. Without a level on a terminal, opens the
interactive scoreboard (Tab switches level).

Examples:
  solarcity scores --db runs.db
  solarcity scores 2 --db runs.db
  solarcity scores --recent --db runs.db
  solarcity scores --run 6f1c... --db runs.db
  solarcity scores 3 --clear --db runs.db`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by its ID")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all runs of the level")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs of every level")
}

func runScores(cmd *cobra.Command, args []string) error {
	rt, err := setup(os.Stderr, false)
	if err != nil {
		return err
	}
	defer rt.Close()

	if rt.store == nil {
		if rt.cfg.Storage.Path != "" {
			return fmt.Errorf("cannot open run log %s", rt.cfg.Storage.Path)
		}
		return errors.New("the run log is disabled; pass --db <path>")
	}
	limit := rt.cfg.Storage.Top

	switch {
	case flagRunID != "":
		return printRun(rt.store, flagRunID)
	case flagRecent:
		runs, err := rt.store.RecentRuns(limit)
		if err != nil {
			return err
		}
		fmt.Println("Recent runs")
		fmt.Println()
		printRuns(runs, true)
		return nil
	}

	if len(args) == 0 {
		if flagClear {
			return errors.New("--clear needs a level")
		}
		fd := int(os.Stdout.Fd())
		if term.IsTerminal(fd) {
			width, height := 80, 24
			if w, h, termErr := term.GetSize(fd); termErr == nil {
				width, height = w, h
			}
			return tui.RunScoreboard(rt.store, width, height)
		}
		for level := 1; level <= solarcity.LevelCount(); level++ {
			if err := printLevel(rt.store, level, limit); err != nil {
				return err
			}
		}
		return nil
	}

	level, err := parseLevel(args[0])
	if err != nil {
		return err
	}
	if flagClear {
		if err := rt.store.ClearRuns(level); err != nil {
			return err
		}
		fmt.Printf("Cleared runs of level %d\n", level)
		return nil
	}
	return printLevel(rt.store, level, limit)
}

func parseLevel(arg string) (int, error) {
	level, err := strconv.Atoi(arg)
	if err != nil || level < 1 || level > solarcity.LevelCount() {
		return 0, fmt.Errorf("unknown level %q (1-%d)", arg, solarcity.LevelCount())
	}
	return level, nil
}

func printLevel(store *storage.Store, level, limit int) error {
	runs, err := store.TopRuns(level, limit)
	if err != nil {
		return err
	}

	fmt.Printf("Top runs - Level %d\n", level)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		return nil
	}

	printRuns(runs, false)

	stats, err := store.GetLevelStats(level)
	if err == nil {
		fmt.Printf("Best: %d  Runs: %d  Won: %.0f%%  CO2 avoided: %.0f kg\n",
			stats.BestScore, stats.Runs, stats.WinRate()*100, stats.TotalCO2)
	}
	fmt.Println()
	return nil
}

func printRuns(runs []storage.Run, withLevel bool) {
	if withLevel {
		fmt.Printf("  %-4s  %-5s  %-8s  %-6s  %-8s  %s\n", "Rank", "Level", "Points", "Panels", "Outcome", "Date")
		fmt.Printf("  %-4s  %-5s  %-8s  %-6s  %-8s  %s\n", "----", "-----", "------", "------", "-------", "----")
	} else {
		fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %s\n", "Rank", "Points", "Panels", "Outcome", "Date")
		fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %s\n", "----", "------", "------", "-------", "----")
	}

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		panels := fmt.Sprintf("%d/%d", r.Panels, r.Buildings)
		if withLevel {
			fmt.Printf("  %-4d  %-5d  %-8d  %-6s  %-8s  %s\n", i+1, r.Level, r.Points, panels, r.Outcome, dateStr)
		} else {
			fmt.Printf("  %-4d  %-8d  %-6s  %-8s  %s\n", i+1, r.Points, panels, r.Outcome, dateStr)
		}
	}
	fmt.Println()
}

func printRun(store *storage.Store, arg string) error {
	id, err := uuid.Parse(arg)
	if err != nil {
		return fmt.Errorf("invalid run ID %q: %w", arg, err)
	}

	r, err := store.RunByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("run %s not found", id)
	}

	fmt.Printf("Run %s\n", r.RunID)
	fmt.Println()
	fmt.Printf("  Level:       %d\n", r.Level)
	fmt.Printf("  Outcome:     %s\n", r.Outcome)
	fmt.Printf("  Points:      %d\n", r.Points)
	fmt.Printf("  Panels:      %d/%d\n", r.Panels, r.Buildings)
	fmt.Printf("  Generated:   %.1f\n", r.EnergyGenerated)
	fmt.Printf("  CO2 avoided: %.1f kg\n", r.CO2Avoided)
	fmt.Printf("  Played:      %.1fs\n", r.Elapsed)
	fmt.Printf("  Seed:        %d\n", r.Seed)
	fmt.Printf("  Date:        %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}
