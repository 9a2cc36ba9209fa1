// Command sentsplit-bench scores the segmenter against a gold corpus of
// transcripts holding one sentence per line.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	sentsplit "github.com/jamesainslie/go-sentsplit"
	"github.com/jamesainslie/go-sentsplit/internal/bench"
	"github.com/jamesainslie/go-sentsplit/internal/config"
)

type benchFlags struct {
	corpus    string
	config    string
	tolerance int
	wp        float64
	wr        float64
	ablate    bool
	perTalk   bool
}

func main() {
	cmd := newBenchCommand(os.Stdout)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newBenchCommand(stdout io.Writer) *cobra.Command {
	var flags benchFlags

	cmd := &cobra.Command{
		Use:           "sentsplit-bench",
		Short:         "Score sentence segmentation against a gold corpus",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd, flags, stdout)
		},
	}

	cmd.Flags().StringVar(&flags.corpus, "corpus", "testdata/transcripts", "Directory containing gold transcript files")
	cmd.Flags().StringVarP(&flags.config, "config", "c", "", "Configuration file path (TOML)")
	cmd.Flags().IntVar(&flags.tolerance, "tolerance", 0, "Byte tolerance for boundary matching")
	cmd.Flags().Float64Var(&flags.wp, "wp", 1.0, "Precision weight")
	cmd.Flags().Float64Var(&flags.wr, "wr", 1.0, "Recall weight")
	cmd.Flags().BoolVar(&flags.ablate, "ablate", false, "Compare segmenter variants")
	cmd.Flags().BoolVar(&flags.perTalk, "per-talk", false, "Print one row per transcript")

	return cmd
}

func runBench(cmd *cobra.Command, flags benchFlags, stdout io.Writer) error {
	if flags.tolerance < 0 {
		return fmt.Errorf("tolerance must be non-negative, got %d", flags.tolerance)
	}

	appCfg, _, err := config.Load(flags.config)
	if err != nil {
		return err
	}
	base := []sentsplit.Option{
		sentsplit.WithAbbreviations(appCfg.EffectiveAbbreviations()),
		sentsplit.WithCompatFolding(appCfg.Segmenter.CompatFolding),
	}

	talks, err := bench.LoadCorpus(flags.corpus)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}
	fmt.Fprintf(stdout, "Loaded %d talks from %s\n\n", len(talks), flags.corpus)

	cfg := bench.Config{
		Tolerance:       flags.tolerance,
		PrecisionWeight: flags.wp,
		RecallWeight:    flags.wr,
	}

	switch {
	case flags.ablate:
		printAblation(stdout, bench.Ablate(talks, cfg, bench.DefaultVariants(), base...), cfg)
	case flags.perTalk:
		printPerTalk(stdout, sentsplit.New(base...), talks, cfg)
	default:
		printMetrics(stdout, bench.EvaluateCorpus(sentsplit.New(base...), talks, cfg))
	}
	return nil
}

func printMetrics(w io.Writer, m bench.Metrics) {
	fmt.Fprintf(w, "Precision: %.2f  Recall: %.2f  F1: %.2f  Weighted: %.2f\n",
		m.Precision, m.Recall, m.F1, m.WeightedScore)
	fmt.Fprintf(w, "(TP: %d, FP: %d, FN: %d)\n", m.TruePositives, m.FalsePositives, m.FalseNegatives)
}

func printAblation(w io.Writer, results []bench.AblationResult, cfg bench.Config) {
	fmt.Fprintf(w, "Variant Comparison (wp=%.1f, wr=%.1f)\n", cfg.PrecisionWeight, cfg.RecallWeight)

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, metricsRow(r.Variant, r.Metrics))
	}
	fmt.Fprintln(w, renderTable(metricsHeaders("Variant"), rows, metricsAligns()))

	if len(results) > 0 {
		fmt.Fprintf(w, "Best: %s (Weighted: %.2f)\n", results[0].Variant, results[0].Metrics.WeightedScore)
	}
}

func printPerTalk(w io.Writer, seg *sentsplit.Segmenter, talks []*bench.Talk, cfg bench.Config) {
	rows := make([][]string, 0, len(talks)+1)
	for _, talk := range talks {
		rows = append(rows, metricsRow(talk.ID, bench.EvaluateTalk(seg, talk, cfg)))
	}
	rows = append(rows, metricsRow("TOTAL", bench.EvaluateCorpus(seg, talks, cfg)))
	fmt.Fprintln(w, renderTable(metricsHeaders("Talk"), rows, metricsAligns()))
}

func metricsHeaders(first string) []string {
	return []string{first, "Prec", "Rec", "F1", "Weighted", "TP", "FP", "FN"}
}

func metricsAligns() []columnAlignment {
	return []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight}
}

func metricsRow(name string, m bench.Metrics) []string {
	return []string{
		name,
		strconv.FormatFloat(m.Precision, 'f', 2, 64),
		strconv.FormatFloat(m.Recall, 'f', 2, 64),
		strconv.FormatFloat(m.F1, 'f', 2, 64),
		strconv.FormatFloat(m.WeightedScore, 'f', 2, 64),
		strconv.Itoa(m.TruePositives),
		strconv.Itoa(m.FalsePositives),
		strconv.Itoa(m.FalseNegatives),
	}
}
