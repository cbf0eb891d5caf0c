package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kmakise61/smartcards/internal/activity"
	"github.com/kmakise61/smartcards/internal/card"
	"github.com/kmakise61/smartcards/internal/session"
	"github.com/kmakise61/smartcards/internal/spacedrep"
	"github.com/kmakise61/smartcards/internal/store"
	"github.com/spf13/cobra"
)

var (
	reviewDeck         string
	reviewIgnoreLimits bool
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Start a review session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReview(cmd)
	},
}

func init() {
	reviewCmd.Flags().StringVar(&reviewDeck, "deck", "", "Limit the session to one deck")
	reviewCmd.Flags().BoolVar(&reviewIgnoreLimits, "ignore-limits", false, "Review past the daily caps for this session")
}

// runReview builds the session queue and walks it interactively. Each
// answer is scheduled purely first, then persisted; quitting mid-session
// keeps updates that were already written.
func runReview(cmd *cobra.Command) error {
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

	prefs, err := loadPrefs(cmd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning:", err)
	}

	cards, err := st.ListCards(ctx)
	if err != nil {
		return fmt.Errorf("load cards: %w", err)
	}

	now := time.Now()
	dateKey := activity.DateKey(now, now.Location())
	prog, err := st.GetProgress(ctx, dateKey)
	if err != nil {
		return fmt.Errorf("load daily progress: %w", err)
	}
	prog = prog.ForDate(dateKey)

	scope := session.Scope{Deck: reviewDeck}
	queue, info := session.Build(cards, scope, prog, prefs, reviewIgnoreLimits, now)

	if queue.Len() == 0 {
		switch info.EmptyReason {
		case session.EmptyCapped:
			fmt.Fprintln(out, "Daily limit reached. Run again with --ignore-limits to keep going.")
		default:
			fmt.Fprintln(out, "Nothing to review. Add cards or come back when reviews are due.")
		}
		return nil
	}

	fmt.Fprintf(out, "Session: %d due, %d new\n\n", info.DueCount, info.NewCount)

	byID := make(map[string]card.Card, len(cards))
	for _, c := range cards {
		byID[c.ID] = c
	}

	sched := spacedrep.NewScheduler(prefs)
	reader := bufio.NewReader(cmd.InOrStdin())
	answered := 0

	for {
		id, ok := queue.Next()
		if !ok {
			break
		}
		c := byID[id]

		fmt.Fprintf(out, "Q: %s\n", c.Front)
		fmt.Fprint(out, "   [enter to reveal] ")
		if _, err := reader.ReadString('\n'); err != nil {
			break
		}
		fmt.Fprintf(out, "A: %s\n", c.Back)

		rating, quit := promptRating(out, reader)
		if quit {
			fmt.Fprintf(out, "\nSession ended early after %d answers.\n", answered)
			return nil
		}

		prev := c.Status
		updated := sched.Schedule(c, rating, time.Now())

		if err := st.UpdateScheduling(ctx, updated); err != nil {
			return fmt.Errorf("persist card: %w", err)
		}
		if err := st.AppendReviewEvent(ctx, store.ReviewEventData{
			CardID:       updated.ID,
			Rating:       rating,
			Timestamp:    time.Now(),
			PrevInterval: c.Interval,
			NewInterval:  updated.Interval,
		}); err != nil {
			return fmt.Errorf("append review event: %w", err)
		}
		prog.RecordAnswer(prev == card.StatusNew)
		if err := st.SaveProgress(ctx, prog); err != nil {
			return fmt.Errorf("save daily progress: %w", err)
		}

		byID[id] = updated
		queue.Answer(id, rating, prev)
		answered++
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Session complete: %d answers.\n", answered)
	return nil
}

// promptRating reads one rating keystroke line. Returns quit=true on q/EOF.
func promptRating(out io.Writer, reader *bufio.Reader) (card.Rating, bool) {
	for {
		fmt.Fprint(out, "   again(a) hard(h) good(g) easy(e) quit(q): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, true
		}
		switch strings.TrimSpace(strings.ToLower(line)) {
		case "a", "again":
			return card.Again, false
		case "h", "hard":
			return card.Hard, false
		case "g", "good", "":
			return card.Good, false
		case "e", "easy":
			return card.Easy, false
		case "q", "quit":
			return 0, true
		}
	}
}
