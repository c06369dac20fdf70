package css_test

import (
	"strconv"
	"testing"

	"themedstyler/css"
)

func TestResolveColorKeywords(t *testing.T) {
	tests := []struct{ in, current, want string }{
		{"black", "", "#000000"},
		{" white ", "", "#ffffff"},
		{"grey", "", "#808080"},
		{"gray", "", "#808080"},
		{"red", "", "#ff0000"},
		{"green", "", "#00ff00"},
		{"blue", "", "#0000ff"},
		{"transparent", "", "#00000000"},
		{"currentColor", "", "#000000"},
		{"currentColor", "#112233", "#112233"},
		{"#abcdef", "", "#abcdef"},
		{"rebeccapurple", "", "rebeccapurple"},
	}
	for _, tt := range tests {
		if got := css.ResolveColor(tt.in, tt.current); got != tt.want {
			t.Errorf("ResolveColor(%q, %q) = %q, want %q", tt.in, tt.current, got, tt.want)
		}
	}
}

func TestColorMix(t *testing.T) {
	tests := []struct {
		name, in, current, want string
	}{
		{"second weight", "color-mix(in srgb, #000000 0%, #ffffff 100%)", "", "#ffffff"},
		{"first weight only", "color-mix(in srgb, #000000 100%, #ffffff)", "", "#000000"},
		{"short hex", "color-mix(in srgb, #000 25%, #fff 75%)", "", "#bfbfbf"},
		{"keywords", "color-mix(in srgb, black, white 0%)", "", "#000000"},
		{"alpha kept", "color-mix(in srgb, #00000000 50%, #00000000 50%)", "", "#00000000"},
		{"current color", "color-mix(in srgb, currentColor 100%, white 0%)", "#336699", "#336699"},
		{"too few parts", "color-mix(in srgb, #fff)", "", "#000000"},
		{"unparseable terms", "color-mix(in srgb, foo, bar)", "", "#000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := css.ResolveColor(tt.in, tt.current); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColorMixHalfway(t *testing.T) {
	got := css.ResolveColor("color-mix(in srgb, #000000 50%, #ffffff 50%)", "")
	if len(got) != 7 {
		t.Fatalf("unexpected %q", got)
	}
	for i := 1; i < 7; i += 2 {
		v, err := strconv.ParseUint(got[i:i+2], 16, 8)
		if err != nil {
			t.Fatal(err)
		}
		if v < 0x7f || v > 0x81 {
			t.Errorf("channel %d = %#x, want 0x80 +/- 1", i/2, v)
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"#fff", "#ffffff", false},
		{"#ffff", "#ffffff", false},
		{"#88888870", "#88888870", false},
		{"2196F3", "#2196f3", false},
		{"#12345", "", true},
		{"#zzz", "", true},
	}
	for _, tt := range tests {
		c, err := css.ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseHex(%q) error = %v", tt.in, err)
		}
		if err == nil && c.Hex() != tt.want {
			t.Errorf("ParseHex(%q).Hex() = %q, want %q", tt.in, c.Hex(), tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	vars := varsOf("accent", "red", "mix", "color-mix(in srgb, #000000 0%, #ffffff 100%)")
	if got := css.Resolve("var(accent)", vars, ""); got != "#ff0000" {
		t.Errorf("got %q", got)
	}
	if got := css.Resolve("$mix", vars, ""); got != "#ffffff" {
		t.Errorf("got %q", got)
	}
}
