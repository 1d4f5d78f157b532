package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/e11jah/rbt/ingredient"
	"github.com/e11jah/rbt/internal/logging"
)

type rootOptions struct {
	file      string
	logLevel  string
	logFormat string
	config    ingredient.Config
	configErr error
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	opts.config, opts.configErr = ingredient.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:           "ingredients",
		Short:         "Look up calories and substitutes in an ingredient data file",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.configErr != nil {
				return opts.configErr
			}
			if err := opts.config.Validate(); err != nil {
				return err
			}
			return setupLogging(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", "ingredients.csv", "ingredient data file")
	flags.StringVar(&opts.logLevel, "log-level", "info", "verbosity of logging (trace, debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "auto", "format of logs (auto, console, json)")
	flags.IntVar(&opts.config.CalorieWindow, "calorie-window", opts.config.CalorieWindow, "calories a substitute may have above the original")
	flags.IntVar(&opts.config.MaxSubstitutes, "max-substitutes", opts.config.MaxSubstitutes, "maximum number of substitutes listed")
	flags.BoolVar(&opts.config.HasHeader, "header", opts.config.HasHeader, "the data file starts with a header row")

	rootCmd.AddCommand(
		newStatsCmd(opts),
		newCaloriesCmd(opts),
		newSubstitutesCmd(opts),
		newMenuCmd(opts),
	)
	return rootCmd
}

func setupLogging(out io.Writer, level, format string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("unknown log level %q", level)
	}

	var logger zerolog.Logger
	switch strings.ToLower(format) {
	case "json":
		logger = zerolog.New(out)
	case "console":
		logger = zerolog.New(zerolog.ConsoleWriter{Out: out})
	case "auto":
		if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			logger = zerolog.New(zerolog.ConsoleWriter{Out: out})
		} else {
			logger = zerolog.New(out)
		}
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	logging.SetGlobalLogger(logger.Level(lvl).With().Timestamp().Logger())
	return nil
}

// loadBackend builds a backend from the configured data file.
func (o *rootOptions) loadBackend() (*ingredient.Backend, error) {
	backend := ingredient.NewBackend(o.config)
	if _, err := backend.LoadData(o.file); err != nil {
		return nil, err
	}
	return backend, nil
}
