package main

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/golangast/standuptagger/internal/analyze"
	"github.com/golangast/standuptagger/internal/apperrors"
	"github.com/golangast/standuptagger/internal/report"
	"github.com/golangast/standuptagger/internal/sample"
	"github.com/golangast/standuptagger/internal/sqlite_db"
)

type analyzeOptions struct {
	format  string
	save    bool
	db      string
	workers int
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var opts analyzeOptions
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Report the projects mentioned in standup notes",
		Long: `Analyzes a standup notes file, or the built in sample when no file is
given. Files holding several days separated by --- lines, and the XML
documents written by split, are analyzed one day at a time and reported in
file order.`,
		Args: argsError(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAnalyze(cmd, args, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format (text, json, yaml)")
	cmd.Flags().BoolVar(&opts.save, "save", false, "save the results to the history database")
	cmd.Flags().StringVar(&opts.db, "db", "", "history database path")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "days analyzed in parallel")
	return cmd
}

func (a *app) runAnalyze(cmd *cobra.Command, args []string, opts analyzeOptions) error {
	format := a.cfg.Format
	if opts.format != "" {
		format = opts.format
	}
	if !slices.Contains(report.Formats, format) {
		return apperrors.NewConfigError("unknown format %q (want one of %v)", format, report.Formats)
	}
	workers := a.cfg.Workers
	if cmd.Flags().Changed("workers") {
		if opts.workers < 1 {
			return apperrors.NewConfigError("--workers must be at least 1, got %d", opts.workers)
		}
		workers = opts.workers
	}

	source, content := "sample", sample.Standup()
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read notes: %w", err)
		}
		source, content = args[0], string(data)
	}

	an := analyze.New(analyze.Options{
		Matcher: a.cfg.Matcher(),
		People:  a.cfg.People,
		Workers: workers,
		Logger:  a.logger,
	})
	days, err := an.Document(cmd.Context(), content)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", source, err)
	}

	results := make([]report.Result, len(days))
	for i, d := range days {
		results[i] = d.Result()
	}
	if err := report.RenderAll(a.stdout, format, results); err != nil {
		return err
	}

	if !opts.save {
		return nil
	}
	dbPath := a.cfg.DB
	if opts.db != "" {
		dbPath = opts.db
	}
	return a.saveRuns(cmd.Context(), dbPath, source, days)
}

func (a *app) saveRuns(ctx context.Context, dbPath, source string, days []analyze.DayResult) error {
	db, err := sqlite_db.InitDB(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, d := range days {
		run := sqlite_db.NewRun(source, d.Day.Date, d.Projects)
		if err := sqlite_db.SaveRun(ctx, db, run); err != nil {
			return err
		}
		a.logger.Info().Str("run", run.ID).Str("date", run.Date).Int("projects", run.Projects.Len()).Msg("saved run")
	}
	return nil
}
