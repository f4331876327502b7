package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/golangast/standuptagger/internal/standup"
)

type splitOptions struct {
	out      string
	combined string
}

func newSplitCmd(a *app) *cobra.Command {
	var opts splitOptions
	cmd := &cobra.Command{
		Use:   "split <file>",
		Short: "Split a notes file into per day XML documents",
		Long: `Splits a standup notes file on --- lines, or reads the days of a standup
XML document. With --out each day is written to <dir>/YYYYMMDD.xml; with
--combined all days go into one <response> document. Without either flag the
combined document is printed.`,
		Args: argsError(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSplit(args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "directory for the per day files")
	cmd.Flags().StringVar(&opts.combined, "combined", "", "file for the combined document")
	return cmd
}

func (a *app) runSplit(path string, opts splitOptions) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read notes: %w", err)
	}
	days, err := standup.ReadDays(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if len(days) == 0 {
		return fmt.Errorf("%s: %w", path, standup.ErrNoDays)
	}
	a.logger.Info().Str("file", path).Int("days", len(days)).Msg("split notes")

	if opts.out != "" {
		paths, err := standup.WriteDayFiles(opts.out, days)
		if err != nil {
			return err
		}
		for _, p := range paths {
			a.logger.Debug().Str("path", p).Msg("wrote day")
		}
	}
	if opts.combined != "" {
		if err := writeCombined(opts.combined, days); err != nil {
			return err
		}
		a.logger.Debug().Str("path", opts.combined).Msg("wrote combined document")
	}
	if opts.out == "" && opts.combined == "" {
		return standup.EncodeXML(a.stdout, days)
	}
	return nil
}

func writeCombined(path string, days []standup.Day) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := standup.EncodeXML(f, days); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
