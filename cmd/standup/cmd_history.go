package main

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/golangast/standuptagger/internal/apperrors"
	"github.com/golangast/standuptagger/internal/report"
	"github.com/golangast/standuptagger/internal/sqlite_db"
)

type historyOptions struct {
	db     string
	run    string
	limit  int
	format string
}

func newHistoryCmd(a *app) *cobra.Command {
	var opts historyOptions
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved runs or show one of them",
		Args:  argsError(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runHistory(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.db, "db", "", "history database path")
	cmd.Flags().StringVar(&opts.run, "run", "", "show the run with this id (a unique prefix is enough)")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 20, "number of runs listed")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format for --run (text, json, yaml)")
	return cmd
}

func (a *app) runHistory(cmd *cobra.Command, opts historyOptions) error {
	if opts.limit < 1 {
		return apperrors.NewConfigError("--limit must be at least 1, got %d", opts.limit)
	}
	format := a.cfg.Format
	if opts.format != "" {
		format = opts.format
	}
	if !slices.Contains(report.Formats, format) {
		return apperrors.NewConfigError("unknown format %q (want one of %v)", format, report.Formats)
	}
	dbPath := a.cfg.DB
	if opts.db != "" {
		dbPath = opts.db
	}

	db, err := sqlite_db.InitDB(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if opts.run != "" {
		run, err := sqlite_db.LoadRun(cmd.Context(), db, opts.run)
		if err != nil {
			return err
		}
		return report.Render(a.stdout, format, report.NewResult(run.Date, run.Projects))
	}

	runs, err := sqlite_db.ListRuns(cmd.Context(), db, opts.limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(a.stdout, "No saved runs found.")
		return nil
	}
	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSAVED\tDATE\tSOURCE")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", shortID(r.ID), r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Date, r.Source)
	}
	return tw.Flush()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
