package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/selfupdate"
)

const (
	releaseOwner = "quizdeck"
	releaseRepo  = "quizdeck"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for a newer release",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := selfupdate.NewChecker(releaseOwner, releaseRepo)
		result, err := checker.Check(context.Background(), version)
		if errors.Is(err, selfupdate.ErrDevBuild) {
			fmt.Println("Development build; update check skipped.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}

		if result.UpdateAvailable {
			fmt.Printf("Update available: %s (current %s)\n",
				result.LatestVersion, result.CurrentVersion)
		} else {
			fmt.Printf("Already up to date (%s).\n", result.CurrentVersion)
		}
		return nil
	},
}
