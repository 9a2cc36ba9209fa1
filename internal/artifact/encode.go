// Package artifact encodes segmented sentences and writes them to disk.
package artifact

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Format names an artifact encoding.
type Format string

const (
	// FormatText writes one sentence per line, no trailing newline.
	FormatText Format = "text"
	// FormatJSONL writes one JSON string per line.
	FormatJSONL Format = "jsonl"
	// FormatProtobuf writes size-delimited google.protobuf.StringValue messages.
	FormatProtobuf Format = "protobuf"
)

// ErrUnknownFormat indicates an unsupported artifact format.
var ErrUnknownFormat = errors.New("artifact: unknown format")

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSONL, FormatProtobuf:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Extension returns the file extension, dot included, for the format.
func (f Format) Extension() string {
	switch f {
	case FormatJSONL:
		return ".jsonl"
	case FormatProtobuf:
		return ".pb"
	default:
		return ".txt"
	}
}

// Encode writes sentences to w in the given format.
func Encode(w io.Writer, format Format, sentences []string) error {
	bw := bufio.NewWriter(w)

	var err error
	switch format {
	case FormatText:
		_, err = io.WriteString(bw, strings.Join(sentences, "\n"))
	case FormatJSONL:
		err = encodeJSONL(bw, sentences)
	case FormatProtobuf:
		err = encodeProtobuf(bw, sentences)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}

func encodeJSONL(w io.Writer, sentences []string) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for i, s := range sentences {
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding sentence %d: %w", i, err)
		}
	}
	return nil
}

func encodeProtobuf(w io.Writer, sentences []string) error {
	for i, s := range sentences {
		if _, err := protodelim.MarshalTo(w, wrapperspb.String(s)); err != nil {
			return fmt.Errorf("encoding sentence %d: %w", i, err)
		}
	}
	return nil
}
