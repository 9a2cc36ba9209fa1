//go:build ignore

// Process UD English Web Treebank CoNLL-U files into gold transcript files
// readable by sentsplit-bench: a comment header followed by one sentence per
// line.
// Usage: go run ./scripts/process-ud-ewt.go [-in dir] [-out dir] [-max n]
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	var (
		inDir  = flag.String("in", "testdata/ud-ewt", "Directory containing en_ewt-ud-*.conllu files")
		outDir = flag.String("out", "testdata/ud-ewt/gold", "Output directory for gold transcripts")
		max    = flag.Int("max", 0, "Maximum sentences per split (0 for all)")
	)
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", *outDir, err)
		os.Exit(1)
	}

	for _, split := range []string{"train", "dev", "test"} {
		inFile := filepath.Join(*inDir, fmt.Sprintf("en_ewt-ud-%s.conllu", split))
		outFile := filepath.Join(*outDir, split+".txt")

		fmt.Printf("Processing %s...\n", split)
		sentences, err := readSentences(inFile, *max)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inFile, err)
			continue
		}

		if err := writeGold(outFile, split, sentences); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outFile, err)
			continue
		}

		fmt.Printf("  -> %s (%d sentences)\n", outFile, len(sentences))
	}
}

// readSentences collects the "# text = ..." comment of every sentence block.
func readSentences(path string, max int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var sentences []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		text, ok := strings.CutPrefix(scanner.Text(), "# text = ")
		if !ok {
			continue
		}
		text = strings.Join(strings.Fields(text), " ")
		if text == "" {
			continue
		}
		sentences = append(sentences, text)
		if max > 0 && len(sentences) >= max {
			break
		}
	}

	return sentences, scanner.Err()
}

func writeGold(path, split string, sentences []string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "# Source: UD English EWT (%s)\n", split)
	fmt.Fprintf(w, "# Speaker: various\n")
	fmt.Fprintf(w, "# Title: en_ewt-ud-%s\n\n", split)
	for _, s := range sentences {
		fmt.Fprintln(w, s)
	}

	if err := w.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
