package cli

import (
	"fmt"
	"io"
	"sort"

	"clipquiz/internal/domain"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-user, per-category, and label statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			service, logger, err := buildService()
			if err != nil {
				return err
			}
			defer logger.Sync()

			stats, err := service.ComputeStatistics(cmd.Context())
			if err != nil {
				return err
			}
			printStatistics(cmd.OutOrStdout(), stats)
			return nil
		},
	}
}

// printStatistics renders the aggregation. Sorting happens here; the engine
// hands back unordered maps.
func printStatistics(out io.Writer, stats domain.Statistics) {
	fmt.Fprintln(out, "Per-user accuracy:")
	for _, username := range sortedKeys(stats.UserStats) {
		writeTally(out, "  ", username, stats.UserStats[username])
	}

	fmt.Fprintln(out, "Per-category accuracy:")
	for _, category := range stats.Categories {
		if t, ok := stats.CategoryStats[category]; ok {
			writeTally(out, "  ", category, t)
		}
	}

	fmt.Fprintln(out, "Per-user per-category accuracy:")
	for _, username := range sortedKeys(stats.UserCategoryStats) {
		fmt.Fprintf(out, "  %s:\n", username)
		byCategory := stats.UserCategoryStats[username]
		for _, category := range stats.Categories {
			if t, ok := byCategory[category]; ok {
				writeTally(out, "    ", category, t)
			}
		}
	}

	fmt.Fprintln(out, "Label counts:")
	for _, category := range stats.Categories {
		fmt.Fprintf(out, "  %-45s %d\n", category, stats.LabelCounts[category])
	}
}

func writeTally(out io.Writer, indent, name string, t domain.Tally) {
	pct := 0.0
	if t.Total > 0 {
		pct = 100 * float64(t.Correct) / float64(t.Total)
	}
	fmt.Fprintf(out, "%s%-45s %d/%d (%.1f%%)\n", indent, name, t.Correct, t.Total, pct)
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
