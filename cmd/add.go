package cmd

import (
	"fmt"
	"time"

	"github.com/kmakise61/smartcards/internal/card"
	"github.com/kmakise61/smartcards/internal/store"
	"github.com/spf13/cobra"
)

var (
	addDeck      string
	addHighYield bool
)

var addCmd = &cobra.Command{
	Use:   "add <front> <back>",
	Short: "Add a new card",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		c := card.New(args[0], args[1], addDeck, time.Now())
		c.HighYield = addHighYield
		if err := st.InsertCard(cmd.Context(), c); err != nil {
			return fmt.Errorf("add card: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added card %s\n", c.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addDeck, "deck", "", "Deck the card belongs to")
	addCmd.Flags().BoolVar(&addHighYield, "high-yield", false, "Mark the card as high-yield")
}
