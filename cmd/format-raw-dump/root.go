package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	sentsplit "github.com/jamesainslie/go-sentsplit"
	"github.com/jamesainslie/go-sentsplit/internal/artifact"
	"github.com/jamesainslie/go-sentsplit/internal/config"
	"github.com/jamesainslie/go-sentsplit/internal/logging"
	"github.com/jamesainslie/go-sentsplit/internal/rawdump"
)

// usageError marks failures detected before any I/O happens.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

type rootFlags struct {
	config    string
	format    string
	logLevel  string
	logFormat string
}

func newRootCommand(stdout io.Writer, stderr io.Writer) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           "format-raw-dump <path-to-raw-dump.txt>",
		Short:         "Reformat a raw transcript into one sentence per line",
		Long:          "Reads a raw transcript, splits it into sentences and writes raw-dump-formatted.txt\nnext to the input, one sentence per line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, flags, args[0], stdout, stderr)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	cmd.Flags().StringVarP(&flags.config, "config", "c", "", "Configuration file path (TOML)")
	cmd.Flags().StringVar(&flags.format, "format", "", "Output format: text, jsonl or protobuf (overrides config)")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides config)")
	cmd.Flags().StringVar(&flags.logFormat, "log-format", "", "Log format: auto, text or json (overrides config)")

	return cmd
}

func runFormat(cmd *cobra.Command, flags rootFlags, inputPath string, stdout, stderr io.Writer) error {
	cfg, cfgPath, err := config.Load(flags.config)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = flags.format
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = flags.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Logging.Format = flags.logFormat
	}

	format, err := artifact.ParseFormat(cfg.Output.Format)
	if err != nil {
		return &usageError{err: err}
	}

	logger, err := logging.New(stderr, logging.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	if err != nil {
		return &usageError{err: err}
	}
	logger = logger.With(slog.String(logging.FieldRunID, uuid.NewString()))
	if cfgPath != "" {
		logger.Debug("loaded config", slog.String("path", cfgPath))
	}

	seg := sentsplit.New(
		sentsplit.WithAbbreviations(cfg.EffectiveAbbreviations()),
		sentsplit.WithCompatFolding(cfg.Segmenter.CompatFolding),
		sentsplit.WithLogger(logging.NewComponentLogger(logger, "segmenter")),
	)

	res, err := rawdump.New(seg, logger).FormatFile(cmd.Context(), inputPath, rawdump.Options{
		Format:     format,
		OutputName: cfg.Output.Name,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Formatted %d sentences\n", res.Sentences)
	fmt.Fprintf(stdout, "Output: %s\n", res.OutputPath)
	return nil
}

// run executes the command and maps its outcome to an exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprint(stderr, cmd.UsageString())
		return exitUsage
	}
	if !errors.Is(err, context.Canceled) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return exitFailure
}
