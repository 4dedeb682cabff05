package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [disks]",
	Short: "Show best results",
	Long: `Without an argument, show the best result for every disk count played.
With a disk count, show the top 10 results and statistics for it.
--clear deletes every result recorded for that disk count.

Examples:
  hanoi scores
  hanoi scores 5
  hanoi scores 5 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var flagClear bool

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the results for the given disk count")
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func runScores(_ *cobra.Command, args []string) {
	if flagClear && len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: --clear needs a disk count")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case len(args) == 0:
		err = printOverview(store)
	case flagClear:
		err = clearDiskResults(store, config.ParseDiskCount(args[0]))
	default:
		err = printDiskResults(store, config.ParseDiskCount(args[0]))
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error reading results database: %v\n", err)
		os.Exit(1)
	}
}

// clearDiskResults deletes the results for one disk count.
func clearDiskResults(store *storage.Store, disks int) error {
	if err := store.ClearResults(disks); err != nil {
		return err
	}
	fmt.Printf("Cleared results for %d disks.\n", disks)
	return nil
}

// printOverview prints one row per disk count with its best result.
func printOverview(store *storage.Store) error {
	counts, err := store.DiskCounts()
	if err != nil {
		return err
	}

	fmt.Println("Best Results - Tower of Hanoi")
	fmt.Println()

	if len(counts) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Println("Play 'hanoi play' to record the first one!")
		return nil
	}

	t := newTable("Disks", "Best", "Optimal", "Time", "Solves")
	for _, n := range counts {
		best, err := store.BestResult(n)
		if err != nil {
			return err
		}
		stats, err := store.Stats(n)
		if err != nil {
			return err
		}
		if best == nil {
			continue
		}
		t.Row(
			strconv.Itoa(n),
			strconv.Itoa(best.Moves),
			strconv.Itoa(best.Optimal),
			formatDuration(best.Duration),
			strconv.Itoa(stats.Solves),
		)
	}
	fmt.Println(t)
	return nil
}

// printDiskResults prints the leaderboard and stats for one disk count.
func printDiskResults(store *storage.Store, disks int) error {
	results, err := store.TopResults(disks, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Top Results - %d disks\n", disks)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'hanoi play %d' to record the first one!\n", disks)
		return nil
	}

	t := newTable("Rank", "Moves", "Time", "Mode", "Date")
	for i, r := range results {
		mode := "manual"
		if r.Auto {
			mode = "auto"
		}
		t.Row(
			strconv.Itoa(i+1),
			strconv.Itoa(r.Moves),
			formatDuration(r.Duration),
			mode,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(t)

	stats, err := store.Stats(disks)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Solves: %d (%d auto)  Perfect: %d  Best: %d  Average: %.1f  Optimal: %d\n",
		stats.Solves, stats.AutoSolves, stats.Perfect, stats.BestMoves, stats.AvgMoves, results[0].Optimal)
	return nil
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return d.Round(time.Second).String()
}
