// Package textnorm prepares raw transcript text for sentence segmentation.
//
// Whitespace collapses every run of Unicode whitespace, line breaks of any
// style included, to a single ASCII space and trims the ends. DecodeUTF8
// validates and decodes the bytes of an input artifact, and FoldCompat applies
// Unicode compatibility folding for callers that want it.
package textnorm
