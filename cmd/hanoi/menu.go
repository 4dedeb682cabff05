package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/games/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/platform/tui"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a disk count from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to choose how many disks to play with.
After a puzzle, Esc returns to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play with the selected disk count
  A            - Watch the auto-solver
  Tab          - Show results
  Q            - Quit

Examples:
  hanoi menu
  hanoi menu --fps 30
  hanoi menu --db ./results.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	hanoiCfg := mustLoadConfig()

	logger, closeLog := fileLogger()
	defer closeLog()

	store := openStore()
	err := menuLoop(store, terminalConfig(), hanoiCfg, logger)

	// Cleanup
	if store != nil {
		store.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// menuLoop shows the menu until the user quits, running each picked puzzle
// or the scoreboard in between.
func menuLoop(store *storage.Store, cfg core.RuntimeConfig, hanoiCfg config.HanoiConfig, logger *log.Logger) error {
	lastDisks := hanoiCfg.Disks

	for {
		menuResult, err := tui.RunMenu(store, cfg, lastDisks)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, lastDisks)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		lastDisks = menuResult.Disks
		roundCfg := hanoiCfg
		roundCfg.Disks = menuResult.Disks

		game := hanoi.New(roundCfg, hanoi.WithLogger(logger))
		backToMenu, runErr := tui.Run(game, store, cfg, tui.WithAutoStart(menuResult.Auto))
		if runErr != nil {
			return runErr
		}
		if !backToMenu {
			return nil
		}
	}
}
