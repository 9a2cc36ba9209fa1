package bench

import (
	"sort"

	sentsplit "github.com/jamesainslie/go-sentsplit"
	"github.com/jamesainslie/go-sentsplit/shield"
)

// Variant is a named segmenter configuration.
type Variant struct {
	Name    string
	Options []sentsplit.Option
}

// AblationResult holds aggregate metrics for one variant.
type AblationResult struct {
	Variant string
	Metrics Metrics
}

// ExtendedAbbreviations adds common titles and reference abbreviations to
// the default set.
var ExtendedAbbreviations = append(append([]string(nil), shield.DefaultAbbreviations...),
	"Capt", "Col", "Gen", "Gov", "Lt", "Rep", "Sen", "Mt", "Fig", "approx", "dept", "est",
)

// DefaultVariants returns the variants compared by the bench command.
func DefaultVariants() []Variant {
	return []Variant{
		{Name: "default"},
		{Name: "no-abbreviations", Options: []sentsplit.Option{sentsplit.WithAbbreviations(nil)}},
		{Name: "extended-abbreviations", Options: []sentsplit.Option{sentsplit.WithAbbreviations(ExtendedAbbreviations)}},
	}
}

// Ablate evaluates each variant over all talks and returns results sorted
// by weighted score, best first. Ties keep the variants' order.
func Ablate(talks []*Talk, cfg Config, variants []Variant, opts ...sentsplit.Option) []AblationResult {
	results := make([]AblationResult, 0, len(variants))

	for _, v := range variants {
		seg := sentsplit.New(append(append([]sentsplit.Option(nil), opts...), v.Options...)...)
		results = append(results, AblationResult{
			Variant: v.Name,
			Metrics: EvaluateCorpus(seg, talks, cfg),
		})
	}

	// Sort by weighted score descending
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Metrics.WeightedScore > results[j].Metrics.WeightedScore
	})

	return results
}
