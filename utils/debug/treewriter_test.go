package debug

import (
	"testing"

	"themedstyler/style"
	"themedstyler/theme"
)

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{"no depth", 0, "test", nil, "test\n"},
		{"depth 2", 2, "double indent", nil, "    double indent\n"},
		{"with formatting", 1, "value: %d", []any{42}, "  value: 42\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		label string
		value string
		want  string
	}{
		{"empty value", 0, "field", "", "field: \n"},
		{"with value", 1, "content", "test", "  content: \"test\"\n"},
		{"with quotes", 0, "quoted", `he said "hello"`, "quoted: \"he said \\\"hello\\\"\"\n"},
		{"with newline", 0, "multiline", "line1\nline2", "multiline: \"line1\\nline2\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.TextBlock(tt.depth, tt.label, tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("TextBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Props(t *testing.T) {
	tw := NewTreeWriter()
	tw.Props(1, ".btn", style.PropsOf("color", "#fff", "flex", 1, "bold", true))
	want := "  .btn (3)\n" +
		"    color = \"#fff\"\n" +
		"    flex = 1\n" +
		"    bold = true\n"
	if got := tw.String(); got != want {
		t.Errorf("Props():\n%s\nwant:\n%s", got, want)
	}
}

func TestResolved(t *testing.T) {
	base := theme.NewEntry()
	base.Selectors.Set("h1, h2", style.PropsOf("margin", 0))
	base.Variables.Set("fg", "#000")
	dark := theme.NewEntry()
	dark.Inherits = "base"
	dark.Breakpoints.Set("md", "768px")

	s := theme.NewState()
	s.Themes.Set("base", base)
	s.Themes.Set("dark", dark)
	s.CurrentTheme = "dark"

	want := "chain: dark -> base\n" +
		"variables (1)\n" +
		"  fg: \"#000\"\n" +
		"breakpoints (1)\n" +
		"  md: \"768px\"\n" +
		"selectors (2)\n" +
		"  h1 (1)\n" +
		"    margin = 0\n" +
		"  h2 (1)\n" +
		"    margin = 0\n"
	if got := Resolved(s.Resolve()); got != want {
		t.Errorf("Resolved():\n%s\nwant:\n%s", got, want)
	}
}
