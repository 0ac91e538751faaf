package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe all stored answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to wipe answers without --yes")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.Blobs().Remove(context.Background(), store.LedgerKey); err != nil {
			return fmt.Errorf("remove stored answers: %w", err)
		}
		fmt.Println("Stored answers wiped.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm wiping all stored answers")
}
