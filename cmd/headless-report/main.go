package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"gridchase/internal/game"
)

func main() {
	var ticks int
	var window int
	var levelPath string
	var logPath string
	var verbose bool

	flag.IntVar(&ticks, "ticks", 18000, "maximum ticks per run (run ends early on win or game over)")
	flag.IntVar(&window, "window", 600, "report window size in ticks")
	flag.StringVar(&levelPath, "level", "", "level file (one row per line); built-in maze when empty")
	flag.StringVar(&logPath, "log", "headless-report.log", "rotating run log path")
	flag.BoolVar(&verbose, "verbose", false, "record per-tick player positions")
	flag.Parse()

	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if window <= 0 {
		fmt.Println("error: -window must be > 0")
		return
	}

	rows := game.DefaultLevel()
	if levelPath != "" {
		var err error
		rows, err = loadLevelFile(levelPath)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
	}

	logger := newRunLogger(logPath)
	defer logger.Sync() //nolint:errcheck

	ts := game.NewTestSim(
		game.WithGrid(rows...),
		game.WithVerbose(verbose),
		game.WithAutopilot(),
	)
	logger.Infow("run start",
		"grid_w", ts.State.Grid.Width(),
		"grid_h", ts.State.Grid.Height(),
		"pellets", ts.State.PelletsRemaining,
		"ghosts", len(ts.State.Ghosts),
		"max_ticks", ticks,
	)

	ts.RunTicks(ticks)

	for _, e := range ts.SimLog.Entries() {
		logger.Infow(e.Key,
			"tick", e.Tick,
			"actor", e.Actor,
			"category", e.Category,
			"value", e.Value,
			"num", e.NumVal,
		)
	}
	logger.Infow("run end",
		"ticks", ts.State.Tick,
		"score", ts.State.Score,
		"won", ts.State.Won,
		"game_over", ts.State.GameOver,
	)

	fmt.Println("=== Headless Chase Report ===")
	fmt.Print(ts.SimLog.Summary(ts.State))
	fmt.Print(game.BuildWindowReport(ts.SimLog, ts.State.Tick, window).Format())
}

// loadLevelFile reads level rows from a text file, one row per line. Blank
// trailing lines are dropped; row content is validated by the grid itself
// (unknown codes are inert, out-of-range cells are walls).
func loadLevelFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}
	rows := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("load level: %s is empty", path)
	}
	return rows, nil
}
