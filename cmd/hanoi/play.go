package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/games/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/platform/tui"
)

var flagAuto bool

var playCmd = &cobra.Command{
	Use:   "play [disks]",
	Short: "Play a puzzle",
	Long: `Start a Tower of Hanoi puzzle with the given number of disks (1-15).
Without an argument the disk count comes from --difficulty or the config.

Controls:
  1/2/3        - Activate a peg (select source, then destination)
  Left/Right   - Move the peg cursor
  Enter/Space  - Activate the peg under the cursor
  Mouse click  - Activate the clicked peg
  A            - Start/stop auto-solve
  R            - Restart
  +/-          - More/fewer disks
  Esc/B        - Back to menu
  Q/Ctrl+C     - Quit

Examples:
  hanoi play
  hanoi play 5
  hanoi play 7 --auto
  hanoi play --difficulty expert`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagAuto, "auto", false, "Start with the auto-solver playing")
}

func runPlay(_ *cobra.Command, args []string) {
	hanoiCfg := mustLoadConfig()
	if len(args) == 1 {
		hanoiCfg.Disks = config.ParseDiskCount(args[0])
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	store := openStore()
	cfg := terminalConfig()

	game := hanoi.New(hanoiCfg, hanoi.WithLogger(logger))
	backToMenu, runErr := tui.Run(game, store, cfg, tui.WithAutoStart(flagAuto))

	if runErr == nil && backToMenu {
		runErr = menuLoop(store, cfg, hanoiCfg, logger)
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
