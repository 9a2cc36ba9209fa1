// Package shield masks punctuation that looks like a sentence terminator but
// is not one (abbreviations, decimals, ellipses), and restores it later.
package shield

import (
	"regexp"
	"sort"
	"strings"
)

// Marker is a reversible placeholder substituted for protected punctuation.
type Marker string

// The markers are framed by private-use runes so that they cannot collide
// with anything a transcript plausibly contains.
const (
	Abbr     Marker = "\ue000ABBR\ue001"
	Decimal  Marker = "\ue000DECIMAL\ue001"
	Ellipsis Marker = "\ue000ELLIPSIS\ue001"
)

// Literal returns the punctuation a marker stands for.
func (m Marker) Literal() string {
	if m == Ellipsis {
		return "..."
	}
	return "."
}

// DefaultAbbreviations are the tokens whose trailing period never ends a sentence.
var DefaultAbbreviations = []string{
	"Mr", "Mrs", "Ms", "Dr", "Prof", "Sr", "Jr", "vs", "etc",
	"e.g", "i.e", "a.m", "p.m", "U.S",
	"Inc", "Ltd", "Corp", "St", "Ave", "Blvd",
}

var restorer = strings.NewReplacer(
	string(Abbr), Abbr.Literal(),
	string(Decimal), Decimal.Literal(),
	string(Ellipsis), Ellipsis.Literal(),
)

// Shielder applies and reverts shield markers. It holds no mutable state and
// is safe for concurrent use.
type Shielder struct {
	abbrevs []string
	pattern *regexp.Regexp // nil when the abbreviation set is empty
}

// New returns a Shielder for the given abbreviation set. Entries are matched
// case-insensitively as whole words followed by a period; blank entries and
// a trailing period on an entry are ignored.
func New(abbreviations []string) *Shielder {
	seen := make(map[string]bool, len(abbreviations))
	var cleaned []string
	for _, a := range abbreviations {
		a = strings.TrimSuffix(strings.TrimSpace(a), ".")
		if a == "" || seen[strings.ToLower(a)] {
			continue
		}
		seen[strings.ToLower(a)] = true
		cleaned = append(cleaned, a)
	}

	s := &Shielder{abbrevs: cleaned}
	if len(cleaned) == 0 {
		return s
	}

	// Longest first, so "Mrs" is preferred over "Mr" at the same position.
	alts := make([]string, len(cleaned))
	for i, a := range cleaned {
		alts[i] = regexp.QuoteMeta(a)
	}
	sort.SliceStable(alts, func(i, j int) bool { return len(alts[i]) > len(alts[j]) })
	s.pattern = regexp.MustCompile(`(?i)\b(?:` + strings.Join(alts, "|") + `)\.`)
	return s
}

// Default returns a Shielder over DefaultAbbreviations.
func Default() *Shielder {
	return New(DefaultAbbreviations)
}

// Abbreviations returns a copy of the effective abbreviation set.
func (s *Shielder) Abbreviations() []string {
	out := make([]string, len(s.abbrevs))
	copy(out, s.abbrevs)
	return out
}

// Shield masks abbreviations, then decimals, then ellipses.
func (s *Shielder) Shield(text string) string {
	text = s.maskAbbreviations(text)
	text = maskDecimals(text)
	return maskEllipses(text)
}

// Unshield restores every marker in text to its literal punctuation.
func (s *Shielder) Unshield(text string) string {
	return Unshield(text)
}

// Unshield restores every marker in text to its literal punctuation.
func Unshield(text string) string {
	return restorer.Replace(text)
}

// ContainsMarker reports whether text still holds any shield marker.
func ContainsMarker(text string) bool {
	return strings.Contains(text, string(Abbr)) ||
		strings.Contains(text, string(Decimal)) ||
		strings.Contains(text, string(Ellipsis))
}

// maskAbbreviations replaces every period of a matched abbreviation, the
// inner ones of "U.S." included, keeping the abbreviation's own casing.
func (s *Shielder) maskAbbreviations(text string) string {
	if s.pattern == nil {
		return text
	}
	return s.pattern.ReplaceAllStringFunc(text, func(match string) string {
		return strings.ReplaceAll(match, ".", string(Abbr))
	})
}

// maskDecimals masks every period that sits between two ASCII digits.
// Neighbours are read from the unmodified input, so both periods of
// "3.14.15" are masked.
func maskDecimals(text string) string {
	if !strings.Contains(text, ".") {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '.' && i > 0 && i+1 < len(text) && isDigit(text[i-1]) && isDigit(text[i+1]) {
			b.WriteString(string(Decimal))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func maskEllipses(text string) string {
	text = strings.ReplaceAll(text, "...", string(Ellipsis))
	return strings.ReplaceAll(text, "…", string(Ellipsis))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
