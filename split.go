package sentsplit

import (
	"regexp"
	"strings"

	"github.com/jamesainslie/go-sentsplit/shield"
)

// terminatorRun matches a candidate sentence ending together with the
// whitespace that follows it. A shielded ellipsis takes part in the run, so
// "Wait... What" can end after the ellipsis while "Wait... what" cannot.
var terminatorRun = regexp.MustCompile(`(?:[.!?]|` + regexp.QuoteMeta(string(shield.Ellipsis)) + `)+\s*`)

// Partition is one piece of shielded text: either a run of terminators with
// its trailing whitespace, or the text between two such runs.
type Partition struct {
	Text       string
	Terminator bool
}

// Split partitions text into alternating text and terminator pieces. No byte
// of text is dropped: concatenating every Partition.Text yields text again.
// Text pieces may be empty, for example after a trailing terminator.
func Split(text string) []Partition {
	if text == "" {
		return nil
	}

	locs := terminatorRun.FindAllStringIndex(text, -1)
	parts := make([]Partition, 0, 2*len(locs)+1)
	prev := 0
	for _, loc := range locs {
		parts = append(parts,
			Partition{Text: text[prev:loc[0]]},
			Partition{Text: text[loc[0]:loc[1]], Terminator: true},
		)
		prev = loc[1]
	}
	parts = append(parts, Partition{Text: text[prev:]})

	return parts
}

// IsBoundary decides whether a terminator run ends a sentence, given the
// text that follows it. exists is false at the end of the input. An empty
// (or all-whitespace) follower counts as the end of the input; otherwise the
// follower must start with an ASCII capital letter.
func IsBoundary(next string, exists bool) bool {
	if !exists {
		return true
	}
	next = strings.TrimSpace(next)
	if next == "" {
		return true
	}
	return next[0] >= 'A' && next[0] <= 'Z'
}
