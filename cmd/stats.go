package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/ledger"
	"github.com/quizdeck/quizdeck/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show stored progress and recent sessions",
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

		ctx := context.Background()

		blob, ok, err := st.Blobs().Get(ctx, store.LedgerKey)
		if err != nil {
			return fmt.Errorf("read answers: %w", err)
		}
		if !ok {
			fmt.Println("No stored progress yet.")
		} else {
			led, err := ledger.Decode(blob)
			if err != nil {
				return fmt.Errorf("stored answers are corrupt: %w", err)
			}
			var answered, correct, wrong int
			for _, rec := range led {
				if rec.Correct == nil {
					continue
				}
				answered++
				if *rec.Correct {
					correct++
				} else {
					wrong++
				}
			}
			fmt.Printf("Questions:  %d\n", len(led))
			fmt.Printf("Answered:   %d\n", answered)
			fmt.Printf("Correct:    %d\n", correct)
			fmt.Printf("Wrong:      %d\n", wrong)
		}

		sessions, err := st.SessionLog().Recent(ctx, 10)
		if err != nil {
			return fmt.Errorf("read session log: %w", err)
		}
		if len(sessions) > 0 {
			fmt.Println("\nRecent sessions:")
			for _, s := range sessions {
				fmt.Printf("  %s  answered %d  correct %d  score %.4g\n",
					s.FinishedAt.Format("2006-01-02 15:04"),
					s.Answered, s.Correct, s.TotalScore)
			}
		}
		return nil
	},
}
