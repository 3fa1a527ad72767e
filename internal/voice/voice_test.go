package voice

import (
	"errors"
	"testing"
)

func TestParseKnownStyles(t *testing.T) {
	for _, info := range Styles() {
		got, err := Parse(info.Key)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", info.Key, err)
		}
		if string(got) != info.Key {
			t.Fatalf("Parse(%q) = %q", info.Key, got)
		}
	}
}

func TestParseNormalizes(t *testing.T) {
	cases := []struct {
		in   string
		want Style
	}{
		{"SUPPORTIVE", Supportive},
		{"  direct  ", Direct},
		{"Cool_Cousin", CoolCousin},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseUnknownStyle(t *testing.T) {
	for _, in := range []string{"", "sarcastic", "supportive coach"} {
		if _, err := Parse(in); !errors.Is(err, ErrUnknownStyle) {
			t.Fatalf("Parse(%q) error = %v, want ErrUnknownStyle", in, err)
		}
	}
}

func TestStylesHaveDescriptions(t *testing.T) {
	infos := Styles()
	if len(infos) != 10 {
		t.Fatalf("Styles() returned %d entries, want 10", len(infos))
	}
	for _, info := range infos {
		if info.Description == "" {
			t.Fatalf("style %q has no description", info.Key)
		}
	}
}

func TestDefaultStyleIsKnown(t *testing.T) {
	if _, err := Parse(string(DefaultStyle)); err != nil {
		t.Fatalf("default style does not parse: %v", err)
	}
}
