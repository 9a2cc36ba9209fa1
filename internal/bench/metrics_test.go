package bench

import (
	"math"
	"testing"

	sentsplit "github.com/jamesainslie/go-sentsplit"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		predicted []int
		truth     []int
		tolerance int
		wantTP    int
		wantFP    int
		wantFN    int
	}{
		{
			name:      "perfect match",
			predicted: []int{10, 20, 30},
			truth:     []int{10, 20, 30},
			tolerance: 0,
			wantTP:    3,
			wantFP:    0,
			wantFN:    0,
		},
		{
			name:      "within tolerance",
			predicted: []int{11, 19, 31},
			truth:     []int{10, 20, 30},
			tolerance: 2,
			wantTP:    3,
			wantFP:    0,
			wantFN:    0,
		},
		{
			name:      "false positive",
			predicted: []int{10, 15, 20},
			truth:     []int{10, 20},
			tolerance: 0,
			wantTP:    2,
			wantFP:    1,
			wantFN:    0,
		},
		{
			name:      "false negative",
			predicted: []int{10},
			truth:     []int{10, 20},
			tolerance: 0,
			wantTP:    1,
			wantFP:    0,
			wantFN:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Tolerance: tt.tolerance}
			got := Evaluate(tt.predicted, tt.truth, cfg)

			if got.TruePositives != tt.wantTP {
				t.Errorf("TruePositives = %d, want %d", got.TruePositives, tt.wantTP)
			}
			if got.FalsePositives != tt.wantFP {
				t.Errorf("FalsePositives = %d, want %d", got.FalsePositives, tt.wantFP)
			}
			if got.FalseNegatives != tt.wantFN {
				t.Errorf("FalseNegatives = %d, want %d", got.FalseNegatives, tt.wantFN)
			}
		})
	}
}

func TestScore(t *testing.T) {
	cfg := Config{PrecisionWeight: 2, RecallWeight: 1}
	got := Score(2, 0, 2, cfg)

	if got.Precision != 1 {
		t.Errorf("Precision = %v, want 1", got.Precision)
	}
	if got.Recall != 0.5 {
		t.Errorf("Recall = %v, want 0.5", got.Recall)
	}
	if math.Abs(got.F1-2.0/3.0) > 1e-9 {
		t.Errorf("F1 = %v, want 0.667", got.F1)
	}
	if math.Abs(got.WeightedScore-2.5/3.0) > 1e-9 {
		t.Errorf("WeightedScore = %v, want 0.833", got.WeightedScore)
	}
}

func TestScore_NoBoundaries(t *testing.T) {
	got := Score(0, 0, 0, DefaultConfig())
	if got.Precision != 0 || got.Recall != 0 || got.F1 != 0 || got.WeightedScore != 0 {
		t.Errorf("Score(0, 0, 0) = %+v, want zero metrics", got)
	}
}

func TestEvaluateTalk(t *testing.T) {
	seg := sentsplit.New()

	tests := []struct {
		name   string
		gold   string
		wantTP int
		wantFP int
		wantFN int
	}{
		{
			name:   "simple",
			gold:   "Hello world.\nHow are you?",
			wantTP: 2,
		},
		{
			name:   "abbreviation",
			gold:   "We met Dr. Smith.\nHe waved.",
			wantTP: 2,
		},
		{
			name:   "lowercase follower missed",
			gold:   "He said no.\nthen he left.",
			wantTP: 1,
			wantFN: 1,
		},
		{
			name:   "ellipsis",
			gold:   "Wait...\nWhat happened?",
			wantTP: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, sentences := ParseGold(tt.gold)
			talk := &Talk{ID: "test", RawText: raw, Sentences: sentences}

			got := EvaluateTalk(seg, talk, DefaultConfig())
			if got.TruePositives != tt.wantTP || got.FalsePositives != tt.wantFP || got.FalseNegatives != tt.wantFN {
				t.Errorf("EvaluateTalk() = TP %d FP %d FN %d, want TP %d FP %d FN %d",
					got.TruePositives, got.FalsePositives, got.FalseNegatives,
					tt.wantTP, tt.wantFP, tt.wantFN)
			}
		})
	}
}

func TestEvaluateCorpus(t *testing.T) {
	var talks []*Talk
	for _, gold := range []string{"Hello world.\nHow are you?", "He said no.\nthen he left."} {
		raw, sentences := ParseGold(gold)
		talks = append(talks, &Talk{RawText: raw, Sentences: sentences})
	}

	got := EvaluateCorpus(sentsplit.New(), talks, DefaultConfig())
	if got.TruePositives != 3 || got.FalsePositives != 0 || got.FalseNegatives != 1 {
		t.Errorf("EvaluateCorpus() = %+v", got)
	}
	if got.Precision != 1 || got.Recall != 0.75 {
		t.Errorf("Precision = %v, Recall = %v, want 1 and 0.75", got.Precision, got.Recall)
	}
}
