package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/games/hanoi"
)

var flagLimit int

var solveCmd = &cobra.Command{
	Use:   "solve <disks>",
	Short: "Print the optimal solution",
	Long: `Print the optimal move sequence for the given number of disks (1-15),
moving the tower from peg 1 to peg 3.

Examples:
  hanoi solve 3
  hanoi solve 10 --limit 20`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagLimit, "limit", 0, "Print at most this many moves (0 = all)")
}

func runSolve(_ *cobra.Command, args []string) {
	disks := config.ParseDiskCount(args[0])
	plan := hanoi.Solve(disks)

	fmt.Printf("Optimal solution for %d disks: %d moves\n", disks, len(plan))
	fmt.Println()

	for i, m := range plan {
		if flagLimit > 0 && i == flagLimit {
			fmt.Printf("... %d more\n", len(plan)-i)
			break
		}
		fmt.Printf("%5d. %s\n", i+1, m)
	}
}
