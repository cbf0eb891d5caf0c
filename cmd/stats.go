package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/kmakise61/smartcards/internal/activity"
	"github.com/kmakise61/smartcards/internal/card"
	"github.com/kmakise61/smartcards/internal/mastery"
	"github.com/kmakise61/smartcards/internal/store"
	"github.com/spf13/cobra"
)

// heatmapWeeks is how many trailing weeks the stats heatmap renders.
const heatmapWeeks = 26

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		cards, err := st.ListCards(ctx)
		if err != nil {
			return fmt.Errorf("load cards: %w", err)
		}

		now := time.Now()
		since := now.AddDate(0, 0, -(activity.HeatmapWindowDays + 1))
		events, err := st.RecentEvents(ctx, since)
		if err != nil {
			return fmt.Errorf("load review events: %w", err)
		}

		printStats(out, cards, events, now)
		return nil
	},
}

func printStats(out io.Writer, cards []card.Card, events []activity.Event, now time.Time) {
	levels := mastery.Count(cards)
	dueToday := 0
	for i := range cards {
		if cards[i].IsDue(now) {
			dueToday++
		}
	}

	fmt.Fprintf(out, "Cards:    %d total (%d unseen, %d learning, %d mastered)\n",
		len(cards), levels.Unseen, levels.Learning, levels.Mastered)
	fmt.Fprintf(out, "Due now:  %d\n", dueToday)

	counts := activity.Heatmap(events, now)
	total := 0
	for _, n := range counts {
		total += n
	}
	fmt.Fprintf(out, "Reviews:  %d in the last year, %d active days\n", total, len(counts))
	fmt.Fprintf(out, "Streak:   %d day(s)\n\n", activity.Streak(events, now))

	renderHeatmap(out, counts, now)
	printStruggling(out, cards)
}

// renderHeatmap draws a GitHub-style activity grid: one column per week,
// one row per weekday, darker cells for heavier days.
func renderHeatmap(out io.Writer, counts map[string]int, now time.Time) {
	loc := now.Location()
	// Align the last column to the current week, ending on today.
	end := now
	start := end.AddDate(0, 0, -(heatmapWeeks*7 - 1))
	// Back up to the Monday on or before start.
	for start.Weekday() != time.Monday {
		start = start.AddDate(0, 0, -1)
	}

	cells := []rune{' ', '░', '▒', '▓', '█'}
	var b strings.Builder
	for row := 0; row < 7; row++ {
		b.WriteString("  ")
		for day := start.AddDate(0, 0, row); !day.After(end); day = day.AddDate(0, 0, 7) {
			n := counts[activity.DateKey(day, loc)]
			b.WriteRune(cells[heatLevel(n)])
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(out, "Activity (last %d weeks):\n%s\n", heatmapWeeks, b.String())
}

func heatLevel(n int) int {
	switch {
	case n == 0:
		return 0
	case n < 5:
		return 1
	case n < 15:
		return 2
	case n < 30:
		return 3
	default:
		return 4
	}
}

// printStruggling lists the cards with the roughest recent rating history.
func printStruggling(out io.Writer, cards []card.Card) {
	type struggling struct {
		front string
		score float64
	}
	var worst []struggling
	for i := range cards {
		if s := cards[i].StruggleScore(); s >= 0.5 && len(cards[i].History) >= 3 {
			worst = append(worst, struggling{front: cards[i].Front, score: s})
		}
	}
	if len(worst) == 0 {
		return
	}
	sort.Slice(worst, func(i, j int) bool { return worst[i].score > worst[j].score })
	if len(worst) > 5 {
		worst = worst[:5]
	}
	fmt.Fprintln(out, "Struggling cards:")
	for _, w := range worst {
		fmt.Fprintf(out, "  %3.0f%%  %s\n", w.score*100, w.front)
	}
}
