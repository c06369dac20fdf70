package css_test

import (
	"testing"

	"go.uber.org/zap"

	"themedstyler/css"
	"themedstyler/style"
)

func TestReader_Rules(t *testing.T) {
	input := []byte(`
:root { --primary: #3b82f6; --space: 8px; }
button { background-color: var(--primary); color: #ffffff; }
h1, h2 , h3 { color: #ff0000; }
.btn:hover { opacity: 0.5; flex: 1; }
`)
	sheet := css.NewReader(zap.NewNop()).Read(input, "inline")

	if v, _ := sheet.Variables.Get("primary"); v != "#3b82f6" {
		t.Errorf("primary = %q", v)
	}
	if v, _ := sheet.Variables.Get("space"); v != "8px" {
		t.Errorf("space = %q", v)
	}

	if len(sheet.Rules) != 3 {
		t.Fatalf("expected 3 rules, got %d: %+v", len(sheet.Rules), sheet.Rules)
	}
	if sheet.Rules[0].Selector != "button" {
		t.Errorf("first selector = %q", sheet.Rules[0].Selector)
	}
	if v, _ := sheet.Rules[0].Properties.Get("background-color"); !v.Equal(style.String("var(--primary)")) {
		t.Errorf("background-color = %v", v)
	}
	if got := sheet.Rules[1].Selector; got != "h1, h2, h3" {
		t.Errorf("group selector = %q", got)
	}
	if len(sheet.RulesBySelector("h2")) != 1 {
		t.Error("expected h2 in group")
	}

	hover := sheet.Rules[2]
	if hover.Selector != ".btn:hover" {
		t.Errorf("hover selector = %q", hover.Selector)
	}
	if v, _ := hover.Properties.Get("flex"); !v.Equal(style.Number(1)) {
		t.Errorf("flex = %v", v)
	}
}

func TestReader_FunctionValues(t *testing.T) {
	sheet := css.NewReader(nil).Read([]byte(`textarea { placeholder-color: color-mix(in srgb, currentColor 75%, grey); padding: 12px; }`))
	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(sheet.Rules))
	}
	v, _ := sheet.Rules[0].Properties.Get("placeholder-color")
	if s, _ := v.AsString(); s != "color-mix(in srgb, currentColor 75%, grey)" {
		t.Errorf("placeholder-color = %q", s)
	}
}

func TestReader_SkipsUnsupported(t *testing.T) {
	input := []byte(`
@media (min-width: 768px) { .x { color: red; } }
@import "other.css";
p { margin: 0 !important; }
`)
	sheet := css.NewReader(nil).Read(input)
	if len(sheet.Rules) != 1 || sheet.Rules[0].Selector != "p" {
		t.Fatalf("rules = %+v", sheet.Rules)
	}
	if v, _ := sheet.Rules[0].Properties.Get("margin"); !v.Equal(style.String("0")) {
		t.Errorf("margin = %v", v)
	}
	if len(sheet.Warnings) < 2 {
		t.Errorf("expected warnings for @media and !important, got %v", sheet.Warnings)
	}
}
