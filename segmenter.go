package sentsplit

import (
	"log/slog"
	"strings"
	"unicode"

	"github.com/jamesainslie/go-sentsplit/shield"
	"github.com/jamesainslie/go-sentsplit/textnorm"
)

// Segmenter splits text into sentences with punctuation heuristics.
// It is safe for concurrent use.
type Segmenter struct {
	shielder      *shield.Shielder
	compatFolding bool
	logger        *slog.Logger
}

// New creates a Segmenter.
func New(opts ...Option) *Segmenter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Segmenter{
		shielder:      shield.New(cfg.abbreviations),
		compatFolding: cfg.compatFolding,
		logger:        cfg.logger,
	}
}

// Abbreviations returns the effective abbreviation set.
func (s *Segmenter) Abbreviations() []string {
	return s.shielder.Abbreviations()
}

// Normalize returns text as the segmenter sees it before shielding: folded
// when compat folding is enabled, with whitespace collapsed.
func (s *Segmenter) Normalize(text string) string {
	if s.compatFolding {
		text = textnorm.FoldCompat(text)
	}
	return textnorm.Whitespace(text)
}

// Segment splits text into trimmed, non-empty sentences in source order.
// It returns nil when text holds nothing but whitespace.
func (s *Segmenter) Segment(text string) []string {
	sentences, _ := s.SegmentWithBoundaries(text)
	return sentences
}

// SegmentWithBoundaries splits text into sentences and returns boundary positions.
// Boundaries are byte offsets into Normalize(text) where each sentence ends.
func (s *Segmenter) SegmentWithBoundaries(text string) (sentences []string, boundaries []int) {
	normalized := s.Normalize(text)
	if normalized == "" {
		return nil, nil
	}

	parts := Split(s.shielder.Shield(normalized))

	var buf strings.Builder
	consumed := 0 // bytes of normalized text covered by emitted buffers

	flush := func() {
		restored := s.shielder.Unshield(buf.String())
		buf.Reset()

		end := consumed + len(strings.TrimRightFunc(restored, unicode.IsSpace))
		consumed += len(restored)

		sentence := strings.TrimSpace(restored)
		if sentence == "" {
			return
		}
		sentences = append(sentences, sentence)
		boundaries = append(boundaries, end)
	}

	for i, part := range parts {
		buf.WriteString(part.Text)
		if !part.Terminator {
			continue
		}

		exists := i+1 < len(parts)
		var next string
		if exists {
			next = parts[i+1].Text
		}

		if IsBoundary(next, exists) {
			flush()
		}
	}

	if strings.TrimSpace(buf.String()) != "" {
		flush()
	}

	s.logger.Debug("segmented text",
		slog.Int("input_bytes", len(text)),
		slog.Int("normalized_bytes", len(normalized)),
		slog.Int("partitions", len(parts)),
		slog.Int("sentences", len(sentences)),
	)

	return sentences, boundaries
}

// IsComplete reports whether text ends with a terminator run, i.e. whether a
// capitalised sentence appended to it would start a new sentence. A trailing
// abbreviation such as "Dr." does not complete a sentence.
func (s *Segmenter) IsComplete(text string) bool {
	normalized := s.Normalize(text)
	if normalized == "" {
		return false
	}

	parts := Split(s.shielder.Shield(normalized))
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i].Text == "" {
			continue
		}
		return parts[i].Terminator
	}
	return false
}
