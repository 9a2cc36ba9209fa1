package textnorm

import (
	"errors"
	"testing"
)

func TestDecodeUTF8(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    string
		wantErr bool
	}{
		{"plain", []byte("Hello world."), "Hello world.", false},
		{"bom stripped", []byte("\xef\xbb\xbfHello."), "Hello.", false},
		{"multibyte", []byte("Wait… what?"), "Wait… what?", false},
		{"empty", nil, "", false},
		{"invalid byte", []byte("bad \xff byte"), "", true},
		{"truncated sequence", []byte("caf\xc3"), "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeUTF8(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("DecodeUTF8(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidUTF8) {
					t.Errorf("expected ErrInvalidUTF8, got: %v", err)
				}
				return
			}
			if got != tc.want {
				t.Errorf("DecodeUTF8(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestFoldCompat(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Wait… what", "Wait... what"},
		{"ＡＢＣ", "ABC"},
		{"plain", "plain"},
	}

	for _, tc := range tests {
		if got := FoldCompat(tc.input); got != tc.want {
			t.Errorf("FoldCompat(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
