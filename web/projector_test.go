package web_test

import (
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"themedstyler/ordered"
	"themedstyler/style"
	"themedstyler/theme"
	"themedstyler/web"
)

func newState(kv ...any) (*theme.State, *theme.Entry) {
	e := theme.NewEntry()
	for i := 0; i+1 < len(kv); i += 2 {
		e.Selectors.Set(kv[i].(string), kv[i+1].(*style.Props))
	}
	s := theme.NewState()
	s.Themes.Set("default", e)
	s.CurrentTheme = "default"
	return s, e
}

func render(t *testing.T, s *theme.State) string {
	t.Helper()
	return web.NewProjector(zaptest.NewLogger(t)).Stylesheet(s)
}

func contains(t *testing.T, css string, parts ...string) {
	t.Helper()
	for _, p := range parts {
		if !strings.Contains(css, p) {
			t.Errorf("stylesheet lacks %q:\n%s", p, css)
		}
	}
}

func lacks(t *testing.T, css string, parts ...string) {
	t.Helper()
	for _, p := range parts {
		if strings.Contains(css, p) {
			t.Errorf("stylesheet has %q:\n%s", p, css)
		}
	}
}

func TestUtilityClasses(t *testing.T) {
	s := theme.NewState()
	s.RegisterClasses("p-2", "p-4", "no-such-utility")
	css := render(t, s)
	contains(t, css, ".p-2{", "padding:8px", ".p-4{padding:16px;}\n")
	lacks(t, css, "no-such-utility")
}

func TestObservedTagsOnly(t *testing.T) {
	s, _ := newState(
		"h1", style.PropsOf("color", "red"),
		"h2", style.PropsOf("color", "blue"),
		"section > p", style.PropsOf("margin", 0),
	)
	s.RegisterTags("h1", "section", "p")
	css := render(t, s)
	if css != "h1{color:red;}\n" {
		t.Errorf("stylesheet = %q", css)
	}
}

func TestGroupedSelectors(t *testing.T) {
	s, _ := newState("h1, h2, h3", style.PropsOf("font-weight", "bold"))
	s.RegisterTags("h1", "h3")
	css := render(t, s)
	contains(t, css, "h1{font-weight:bold;}", "h3{font-weight:bold;}")
	lacks(t, css, "h2")
}

func TestClassSelectors(t *testing.T) {
	s, _ := newState(
		".btn", style.PropsOf("padding", "10px"),
		".link", style.PropsOf("padding", "10px"),
		".other", style.PropsOf("padding", "1px"),
		"div.card", style.PropsOf("elevation", 2),
		"span.card", style.PropsOf("elevation", 3),
	)
	s.RegisterClasses("btn")
	s.RegisterTagClass("a", "link")
	s.RegisterTagClass("div", "card")
	css := render(t, s)
	contains(t, css, ".btn{padding:10px;}", ".link{padding:10px;}", "div.card{elevation:2;}")
	lacks(t, css, ".other", "span.card")
}

func TestBreakpoints(t *testing.T) {
	s, e := newState()
	e.Breakpoints.Set("md", "768px")
	s.RegisterClasses("p-2", "md:flex", "md:p-4", "lg:block")
	css := render(t, s)

	want := ".p-2{padding:8px;}\n" +
		".block{display:block;}\n" +
		"@media (min-width: 768px){.flex{display:flex;}.p-4{padding:16px;}}\n"
	if css != want {
		t.Errorf("stylesheet:\n%s\nwant:\n%s", css, want)
	}
}

func TestHover(t *testing.T) {
	s, _ := newState(".bg-primary:hover", style.PropsOf("background-color", "#1d4ed8"))
	s.RegisterClasses("hover:bg-primary", "hover:bg-red-500")
	css := render(t, s)
	contains(t, css,
		".bg-primary:hover{background-color:#1d4ed8;}",
		".bg-red-500:hover{background-color:#ef4444;}",
	)
}

func TestRawClassFallback(t *testing.T) {
	s, _ := newState("card", style.PropsOf("border-radius", "8px"))
	s.RegisterClasses("card")
	contains(t, render(t, s), ".card{border-radius:8px;}")
}

func TestValues(t *testing.T) {
	s, e := newState(
		".btn", style.PropsOf(
			"backgroundColor", "var(--primary)",
			"color", "var(--missing)",
			"flex", 1,
			"border", "1px solid red;",
			"visible", true,
		),
	)
	e.Variables.Set("primary", "#3b82f6")
	s.RegisterClasses("btn")
	contains(t, render(t, s),
		".btn{background-color:#3b82f6;color:var(--missing);flex:1;border:1px solid red;visible:true;}")
}

func TestDeclarationsKeepColors(t *testing.T) {
	vars := ordered.NewMap[string]()
	vars.Set("accent", "#ff0000")
	props := style.PropsOf(
		"color", "currentColor",
		"backgroundColor", "color-mix(in srgb, var(--accent) 50%, white)",
		"borderColor", "rebeccapurple",
	)
	want := "color:currentColor;background-color:color-mix(in srgb, #ff0000 50%, white);border-color:rebeccapurple;"
	if got := web.Declarations(props, vars); got != want {
		t.Errorf("Declarations() = %q, want %q", got, want)
	}
}

func TestInheritance(t *testing.T) {
	base := theme.NewEntry()
	base.Selectors.Set("body", style.PropsOf("color", "#000000", "margin", 0))
	base.Variables.Set("accent", "#ff0000")
	dark := theme.NewEntry()
	dark.Inherits = "base"
	dark.Selectors.Set("body", style.PropsOf("color", "#ffffff"))

	s := theme.NewState()
	s.Themes.Set("base", base)
	s.Themes.Set("dark", dark)
	s.DefaultTheme = "base"
	s.CurrentTheme = "dark"
	s.RegisterTags("body")
	s.RegisterClasses("text-accent")

	css := render(t, s)
	want := "body{color:#ffffff;margin:0;}\n.text-accent{color:#ff0000;}\n"
	if css != want {
		t.Errorf("stylesheet = %q, want %q", css, want)
	}
}

func TestIdempotent(t *testing.T) {
	s, e := newState("h1", style.PropsOf("font-size", "32px"), ".btn:hover", style.PropsOf("opacity", 0.8))
	e.Breakpoints.Set("sm", "640px")
	s.RegisterTags("h1")
	s.RegisterClasses("btn", "hover:btn", "sm:p-2", "flex")
	p := web.NewProjector(nil)
	if a, b := p.Stylesheet(s), p.Stylesheet(s); a != b {
		t.Errorf("outputs differ:\n%s\n%s", a, b)
	}
}

func TestEmptyState(t *testing.T) {
	if css := render(t, theme.NewState()); css != "" {
		t.Errorf("stylesheet = %q", css)
	}
}

func TestPostProcess(t *testing.T) {
	rules := []web.Rule{
		{Selector: "@media (min-width: 1px) {.a}", Properties: style.PropsOf("x", "1")},
		{Selector: "p", Properties: style.PropsOf("marginTop", "2px")},
		{Selector: "@media (min-width: 2px) {.b}", Properties: style.PropsOf("y", "2")},
		{Selector: "@media (min-width: 1px) {.c}", Properties: style.PropsOf("z", "3")},
		{Selector: "@mediaX {.d}", Properties: style.PropsOf("w", "4")},
	}
	want := "p{margin-top:2px;}\n" +
		"@mediaX {.d}{w:4;}\n" +
		"@media (min-width: 1px){.a{x:1;}.c{z:3;}}\n" +
		"@media (min-width: 2px){.b{y:2;}}\n"
	if got := web.PostProcess(rules, ordered.NewMap[string]()); got != want {
		t.Errorf("PostProcess() =\n%s\nwant:\n%s", got, want)
	}
}

func TestWrapMedia(t *testing.T) {
	bps := ordered.NewMap[string]()
	bps.Set("md", "768px")
	tests := []struct{ sel, bp, want string }{
		{".flex", "md", "@media (min-width: 768px) {.flex}"},
		{".flex", "xl", ".flex"},
		{".flex", "", ".flex"},
	}
	for _, tt := range tests {
		if got := web.WrapMedia(tt.sel, tt.bp, bps); got != tt.want {
			t.Errorf("WrapMedia(%q, %q) = %q, want %q", tt.sel, tt.bp, got, tt.want)
		}
	}
}

func TestElementCSS(t *testing.T) {
	s, e := newState(
		"button", style.PropsOf("background-color", "var(--primary)", "padding", "4px"),
		".wide", style.PropsOf("width", "100%"),
	)
	e.Variables.Set("primary", "#2196F3")
	got := web.NewProjector(nil).ElementCSS(s, "button", []string{"p-2", ".wide", "unknown"})
	want := "background-color: #2196F3; padding: 8px; width: 100%;"
	if got != want {
		t.Errorf("ElementCSS() = %q, want %q", got, want)
	}
	if got := web.NewProjector(nil).ElementCSS(theme.NewState(), "span", nil); got != "" {
		t.Errorf("ElementCSS() = %q, want empty", got)
	}
}
