package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/platform/mcpserver"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the puzzle as MCP tools over stdio",
	Long: `Run an MCP server on stdin/stdout so an assistant can play the puzzle.
Logs go to stderr; stdout carries the protocol.

Example client configuration:
  {"command": "hanoi", "args": ["mcp", "--difficulty", "normal"]}`,
	Run: runMCP,
}

func runMCP(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "hanoi-mcp",
	})

	hanoiCfg, err := loadConfig()
	if err != nil {
		logger.Error("could not load config", "error", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		store = nil
	}

	srv := mcpserver.New(hanoiCfg, store, logger)
	runErr := srv.Run()

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
