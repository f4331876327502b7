package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/golangast/standuptagger/internal/apperrors"
	"github.com/golangast/standuptagger/internal/config"
	"github.com/golangast/standuptagger/internal/logging"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger zerolog.Logger

	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "standup",
		Short: "Find projects in daily standup notes",
		Long: `standup tags standup meeting notes, picks out the noun phrases that look
like projects and reports every mention with its owner and action.

Run "standup analyze" without a file to analyze the built in sample notes.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperrors.NewConfigError("%v", err)
	})

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, disabled)")

	rootCmd.AddCommand(
		newAnalyzeCmd(a),
		newSplitCmd(a),
		newHistoryCmd(a),
	)
	return rootCmd
}

// setup loads the config file and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	logger, err := logging.New(a.stderr, cfg.LogLevel)
	if err != nil {
		return apperrors.NewConfigError("log level: %v", err)
	}
	a.cfg = cfg
	a.logger = logger
	a.logger.Debug().Str("config", a.configPath).Msg("configuration loaded")
	return nil
}

// argsError turns cobra argument validation failures into config errors.
func argsError(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return apperrors.NewConfigError("%v", err)
		}
		return nil
	}
}
