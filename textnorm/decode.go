package textnorm

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidUTF8 indicates the input bytes are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("textnorm: input is not valid UTF-8")

// DecodeUTF8 validates data as UTF-8 and returns it as a string with any
// leading byte order mark removed.
func DecodeUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w at byte %d", ErrInvalidUTF8, firstInvalid(data))
	}

	decoded, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decoding UTF-8: %w", err)
	}
	return string(decoded), nil
}

// FoldCompat applies Unicode NFKC normalization. Among other things it turns
// the ellipsis character into three periods and full-width letters into ASCII.
func FoldCompat(text string) string {
	return norm.NFKC.String(text)
}

func firstInvalid(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(data)
}
