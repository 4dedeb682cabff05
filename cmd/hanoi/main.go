// hanoi is the Tower of Hanoi puzzle for the terminal.
//
// Usage:
//
//	hanoi play [disks]         - Play a puzzle (--auto to watch the solver)
//	hanoi menu                 - Pick a disk count interactively
//	hanoi serve                - Start SSH server for remote play
//	hanoi scores [disks]       - Show best results
//	hanoi solve <disks>        - Print the optimal move sequence
//	hanoi mcp                  - Serve the puzzle as MCP tools over stdio
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.hanoi/results.db)
//	--config <path>       - Use a custom hanoi.yaml
//	--difficulty <name>   - Disk count preset: easy, normal, hard, expert
//	--log-file <path>     - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hanoi",
	Short: "Tower of Hanoi - move the tower in your terminal",
	Long: `Tower of Hanoi in the terminal. Move every disk from peg 1 to peg 3,
one at a time, never placing a larger disk on a smaller one.

Available commands:
  play     - Play a puzzle directly
  menu     - Interactive disk count picker
  serve    - Start SSH server for remote play
  scores   - View best results
  solve    - Print the optimal solution
  mcp      - Serve the puzzle to an MCP client over stdio

Examples:
  hanoi play 4
  hanoi play 6 --auto
  hanoi menu --difficulty hard
  hanoi serve --ssh :2222
  hanoi solve 3`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom hanoi.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: "+config.PresetNames())
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(mcpCmd)
}

// loadConfig reads the puzzle config and applies --difficulty on top.
func loadConfig() (config.HanoiConfig, error) {
	cfg, err := config.LoadHanoi(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return cfg, fmt.Errorf("unknown difficulty %q (want one of: %s)", flagDifficulty, config.PresetNames())
		}
		config.ApplyHanoiPreset(&cfg, preset)
	}
	return cfg, nil
}

// mustLoadConfig is loadConfig for commands that cannot continue without it.
func mustLoadConfig() config.HanoiConfig {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// fileLogger returns the engine logger. The TUI owns the terminal, so logs
// only go to --log-file; without it they are discarded.
func fileLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "hanoi",
	})
	return logger, func() { f.Close() }
}

// openStore opens the results database; failure is only a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - the puzzle still works
		return nil
	}
	return store
}

// terminalConfig builds the runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}
