package shield

import (
	"strings"
	"testing"
)

func TestShield_Abbreviations(t *testing.T) {
	s := Default()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"title", "Dr. Smith", "Dr" + string(Abbr) + " Smith"},
		{"case insensitive keeps casing", "dr. smith", "dr" + string(Abbr) + " smith"},
		{"longer alternative wins", "Mrs. Jones", "Mrs" + string(Abbr) + " Jones"},
		{"inner periods masked", "the U.S. economy", "the U" + string(Abbr) + "S" + string(Abbr) + " economy"},
		{"not inside a word", "the first. Then", "the first. Then"},
		{"no period no mask", "Dr Smith", "Dr Smith"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Shield(tc.input)
			if got != tc.want {
				t.Errorf("Shield(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestShield_Decimals(t *testing.T) {
	s := New(nil)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "3.5", "3" + string(Decimal) + "5"},
		{"currency", "$500.00.", "$500" + string(Decimal) + "00."},
		{"adjacent run", "3.14.15", "3" + string(Decimal) + "14" + string(Decimal) + "15"},
		{"single digits run", "1.2.3", "1" + string(Decimal) + "2" + string(Decimal) + "3"},
		{"trailing period", "costs 5.", "costs 5."},
		{"leading period", ".5 percent", ".5 percent"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Shield(tc.input)
			if got != tc.want {
				t.Errorf("Shield(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestShield_Ellipses(t *testing.T) {
	s := New(nil)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"three dots", "Wait... What", "Wait" + string(Ellipsis) + " What"},
		{"unicode", "Wait… What", "Wait" + string(Ellipsis) + " What"},
		{"four dots", "Wait....", "Wait" + string(Ellipsis) + "."},
		{"two dots untouched", "Wait..", "Wait.."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Shield(tc.input)
			if got != tc.want {
				t.Errorf("Shield(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestShield_OrderAbbreviationBeforeEllipsis(t *testing.T) {
	s := Default()

	// "etc." consumes the first period, leaving two, which are not an ellipsis.
	got := s.Shield("apples etc...")
	want := "apples etc" + string(Abbr) + ".."
	if got != want {
		t.Errorf("Shield = %q, want %q", got, want)
	}
}

func TestUnshield_RoundTrip(t *testing.T) {
	s := Default()

	inputs := []string{
		"Dr. Smith paid $3.50 for the U.S. edition... then left.",
		"Wait… what? e.g. this, i.e. that, at 5 p.m. sharp.",
		"Version 1.2.3 ships at 9 a.m. on Main St. today.",
	}

	for _, in := range inputs {
		shielded := s.Shield(in)
		got := s.Unshield(shielded)
		want := strings.ReplaceAll(in, "…", "...")
		if got != want {
			t.Errorf("Unshield(Shield(%q)) = %q, want %q", in, got, want)
		}
		if ContainsMarker(got) {
			t.Errorf("marker leaked in %q", got)
		}
	}
}

func TestUnshield_LiteralMarkerTextUntouched(t *testing.T) {
	in := "the string <<ABBR>> and ABBR stay"
	if got := Unshield(in); got != in {
		t.Errorf("Unshield(%q) = %q", in, got)
	}
}

func TestNew_CleansEntries(t *testing.T) {
	s := New([]string{" Dr. ", "dr", "", "Approx"})

	got := s.Abbreviations()
	want := []string{"Dr", "Approx"}
	if len(got) != len(want) {
		t.Fatalf("Abbreviations() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Abbreviations()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if shielded := s.Shield("approx. five"); !ContainsMarker(shielded) {
		t.Errorf("custom abbreviation not masked: %q", shielded)
	}
}
