// Package bench provides benchmarking utilities for sentence boundary detection.
package bench

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jamesainslie/go-sentsplit/textnorm"
)

// Header contains metadata parsed from transcript file header.
type Header struct {
	Source  string
	Speaker string
	Title   string
}

// ParseHeader extracts metadata from transcript header comments.
// Returns the header, remaining text after header, and any error.
func ParseHeader(text string) (Header, string, error) {
	var h Header
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), len(text)+1)
	bodyStart := len(text)
	lineEnd := 0

	for scanner.Scan() {
		line := scanner.Text()
		lineEnd += len(line) + 1 // +1 for newline

		if !strings.HasPrefix(line, "#") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			bodyStart = lineEnd - len(line) - 1
			break
		}

		line = strings.TrimPrefix(line, "# ")
		if value, ok := strings.CutPrefix(line, "Source:"); ok {
			h.Source = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Speaker:"); ok {
			h.Speaker = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Title:"); ok {
			h.Title = strings.TrimSpace(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return Header{}, "", fmt.Errorf("scan header: %w", err)
	}

	if h.Source == "" {
		return Header{}, "", errors.New("missing Source in header")
	}

	body := strings.TrimSpace(text[min(bodyStart, len(text)):])

	return h, body, nil
}

// Sentence represents a gold sentence with byte offsets into Talk.RawText.
type Sentence struct {
	Text  string
	Start int
	End   int
}

// ParseGold reads a body holding one gold sentence per line. Blank lines are
// skipped and whitespace inside a line is collapsed. It returns the sentences
// joined by single spaces, which is what a segmenter is scored on, together
// with each sentence's offsets in that text.
func ParseGold(body string) (string, []Sentence) {
	var (
		text      strings.Builder
		sentences []Sentence
	)

	for _, line := range strings.Split(body, "\n") {
		s := textnorm.Whitespace(line)
		if s == "" {
			continue
		}
		if text.Len() > 0 {
			text.WriteByte(' ')
		}
		start := text.Len()
		text.WriteString(s)
		sentences = append(sentences, Sentence{
			Text:  s,
			Start: start,
			End:   text.Len(),
		})
	}

	return text.String(), sentences
}

// Talk represents a loaded transcript with its gold sentences.
type Talk struct {
	ID        string // filename without extension
	Source    string
	Speaker   string
	Title     string
	RawText   string // gold sentences joined by single spaces
	Sentences []Sentence
}

// Boundaries returns the gold sentence end offsets.
func (t *Talk) Boundaries() []int {
	out := make([]int, len(t.Sentences))
	for i, s := range t.Sentences {
		out[i] = s.End
	}
	return out
}

// LoadTalk loads and parses a transcript file.
func LoadTalk(path string) (*Talk, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	content, err := textnorm.DecodeUTF8(data)
	if err != nil {
		return nil, err
	}

	header, body, err := ParseHeader(content)
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	base := filepath.Base(path)
	id := strings.TrimSuffix(base, filepath.Ext(base))
	raw, sentences := ParseGold(body)

	return &Talk{
		ID:        id,
		Source:    header.Source,
		Speaker:   header.Speaker,
		Title:     header.Title,
		RawText:   raw,
		Sentences: sentences,
	}, nil
}

// LoadCorpus loads all .txt transcript files from a directory.
func LoadCorpus(dir string) ([]*Talk, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var talks []*Talk
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != ".txt" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		talk, err := LoadTalk(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		talks = append(talks, talk)
	}

	return talks, nil
}
