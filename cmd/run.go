package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/app"
	"github.com/abhisek/careerfit/internal/logger"
	"github.com/abhisek/careerfit/internal/report"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	log, err := logger.ForTUI(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	noSplash, _ := cmd.Flags().GetBool("no-splash")

	log.Info("starting",
		zap.String("catalog", cat.Title()),
		zap.String("catalog_version", cat.Version()),
		zap.Int("questions", cat.Len()))

	return app.Run(app.Options{
		Catalog:      cat,
		Logger:       log,
		ReportDir:    cfg.Output.Dir,
		ReportFormat: format,
		SkipSplash:   noSplash,
	})
}
