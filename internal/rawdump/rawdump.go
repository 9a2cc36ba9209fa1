// Package rawdump turns a raw transcript file into a one-sentence-per-line
// artifact written next to it.
package rawdump

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	sentsplit "github.com/jamesainslie/go-sentsplit"
	"github.com/jamesainslie/go-sentsplit/internal/artifact"
	"github.com/jamesainslie/go-sentsplit/internal/config"
	"github.com/jamesainslie/go-sentsplit/internal/logging"
	"github.com/jamesainslie/go-sentsplit/textnorm"
)

// Options selects the artifact encoding and name.
type Options struct {
	Format artifact.Format
	// OutputName is a bare file name; empty means DefaultOutputBase plus the
	// format's extension.
	OutputName string
}

// Result describes a finished run.
type Result struct {
	Sentences  int
	OutputPath string
}

// Formatter runs the read, segment and write steps for one input file.
type Formatter struct {
	seg    *sentsplit.Segmenter
	logger *slog.Logger
}

// New creates a Formatter. A nil logger discards log output.
func New(seg *sentsplit.Segmenter, logger *slog.Logger) *Formatter {
	return &Formatter{
		seg:    seg,
		logger: logging.NewComponentLogger(logger, "rawdump"),
	}
}

// OutputPath returns where the artifact for inputPath is written: the
// input's directory joined with the configured or default name.
func OutputPath(inputPath string, opts Options) string {
	name := opts.OutputName
	if name == "" {
		format := opts.Format
		if format == "" {
			format = artifact.FormatText
		}
		name = config.DefaultOutputBase + format.Extension()
	}
	return filepath.Join(filepath.Dir(inputPath), name)
}

// FormatFile reads inputPath, segments it and writes the artifact. Any read
// or write failure aborts the run before an artifact is replaced.
func (f *Formatter) FormatFile(ctx context.Context, inputPath string, opts Options) (Result, error) {
	start := time.Now()

	format := opts.Format
	if format == "" {
		format = artifact.FormatText
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return Result{}, fmt.Errorf("reading input: %w", err)
	}

	text, err := textnorm.DecodeUTF8(data)
	if err != nil {
		return Result{}, fmt.Errorf("decoding %s: %w", inputPath, err)
	}

	sentences := f.seg.Segment(text)

	outputPath := OutputPath(inputPath, opts)
	err = artifact.WriteFile(ctx, outputPath, func(w io.Writer) error {
		return artifact.Encode(w, format, sentences)
	})
	if err != nil {
		return Result{}, fmt.Errorf("writing output: %w", err)
	}

	f.logger.Info("formatted raw dump",
		slog.String("input", inputPath),
		slog.String("output", outputPath),
		slog.String("format", string(format)),
		slog.Int("input_bytes", len(data)),
		slog.Int("sentences", len(sentences)),
		slog.Duration("elapsed", time.Since(start)),
	)

	return Result{Sentences: len(sentences), OutputPath: outputPath}, nil
}
