// Package sentsplit splits unstructured transcript text into sentences, one
// per element, using deterministic punctuation rules.
//
// # Quick Start
//
//	seg := sentsplit.New()
//	for _, s := range seg.Segment("Dr. Smith arrived. He paid $3.50... then left.") {
//	    fmt.Println(s)
//	}
//
// # Pipeline
//
// Segment runs three stages in order. Whitespace of every kind is collapsed
// to single spaces (package textnorm). Periods that belong to abbreviations,
// decimal numbers and ellipses are replaced by reversible markers (package
// shield). The shielded text is then partitioned at runs of '.', '!' and '?',
// and a run ends a sentence when it is the last thing in the text or the
// following text starts with an ASCII capital letter. Each sentence has its
// markers reverted independently before it is emitted.
//
// # Thread Safety
//
// Segmenter holds no mutable state after New and is safe for concurrent use.
package sentsplit
