package cmd

import (
	"fmt"

	"github.com/abhisek/angler/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print round history statistics",
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

		sum, err := st.RoundSummary(cmd.Context())
		if err != nil {
			return err
		}
		if sum.Rounds == 0 {
			fmt.Println("No rounds played yet.")
			return nil
		}

		fmt.Printf("Rounds played:  %d\n", sum.Rounds)
		fmt.Printf("Average score:  %.1f\n", sum.AvgScore)
		fmt.Printf("Best score:     %.1f\n", sum.BestScore)
		fmt.Printf("Average error:  %.1f°\n", sum.AvgError)
		return nil
	},
}
