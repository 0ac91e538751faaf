package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quizdeck/quizdeck/internal/app"
	"github.com/quizdeck/quizdeck/internal/catalog"
	"github.com/quizdeck/quizdeck/internal/session"
	"github.com/quizdeck/quizdeck/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start or resume the quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func runPlay(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	loader, err := resolveLoader(cmd)
	if err != nil {
		return err
	}

	// Log to a file next to the database; stderr belongs to the TUI.
	logger, closeLogger := newFileLogger(dbPath)
	defer closeLogger()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ses, err := session.Start(ctx, loader, session.Options{
		Blobs:      st.Blobs(),
		SessionLog: st.SessionLog(),
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	defer ses.Close(context.Background())

	return app.Run(ses)
}

// resolveLoader picks the catalog source: --questions flag, then the
// QUIZDECK_QUESTIONS env var. http(s) values get the HTTP loader.
func resolveLoader(cmd *cobra.Command) (catalog.Loader, error) {
	src, _ := cmd.Flags().GetString("questions")
	if src == "" {
		src = os.Getenv("QUIZDECK_QUESTIONS")
	}
	if src == "" {
		return nil, fmt.Errorf("no question catalog: pass --questions or set QUIZDECK_QUESTIONS")
	}
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return catalog.HTTPLoader{URL: src}, nil
	}
	return catalog.FileLoader{Path: src}, nil
}

// newFileLogger builds a zap logger writing beside the database file.
// On any setup failure the app runs with a no-op logger; losing log
// lines is never worth blocking play.
func newFileLogger(dbPath string) (*zap.Logger, func()) {
	logPath := filepath.Join(filepath.Dir(dbPath), "quizdeck.log")

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{logPath}
	cfg.ErrorOutputPaths = []string{logPath}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop(), func() {}
	}
	return logger, func() { _ = logger.Sync() }
}
