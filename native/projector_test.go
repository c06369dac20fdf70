package native_test

import (
	"encoding/json"
	"math"
	"testing"

	"go.uber.org/zap/zaptest"

	"themedstyler/native"
	"themedstyler/style"
	"themedstyler/theme"
	"themedstyler/units"
)

// newState builds single theme "default" from selector, props pairs.
func newState(vars map[string]string, kv ...any) *theme.State {
	e := theme.NewEntry()
	e.Name = "default"
	for i := 0; i+1 < len(kv); i += 2 {
		e.Selectors.Set(kv[i].(string), kv[i+1].(*style.Props))
	}
	for k, v := range vars {
		e.Variables.Set(k, v)
	}
	s := theme.NewState()
	s.Themes.Set("default", e)
	s.CurrentTheme = "default"
	return s
}

func project(t *testing.T, s *theme.State, tag string, classes ...string) *style.Props {
	t.Helper()
	return native.NewProjector(zaptest.NewLogger(t)).StylesFor(s, tag, classes)
}

func expect(t *testing.T, props *style.Props, name string, want style.Value) {
	t.Helper()
	got, ok := props.Get(name)
	if !ok {
		t.Errorf("%s missing, want %v", name, want)
		return
	}
	if !got.Equal(want) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func absent(t *testing.T, props *style.Props, names ...string) {
	t.Helper()
	for _, name := range names {
		if v, ok := props.Get(name); ok {
			t.Errorf("%s = %v, want absent", name, v)
		}
	}
}

func TestThemeButton(t *testing.T) {
	s := newState(nil, "button", style.PropsOf("background-color", "#2196F3", "color", "#ffffff"))
	out := project(t, s, "button")
	expect(t, out, "backgroundColor", style.String("#2196F3"))
	expect(t, out, "color", style.String("#ffffff"))
}

func TestCamelThemeKeysPass(t *testing.T) {
	s := newState(nil, "button", style.PropsOf("backgroundColor", "#007bff"))
	expect(t, project(t, s, "button"), "backgroundColor", style.String("#007bff"))
}

func TestButtonDefaults(t *testing.T) {
	out := project(t, theme.NewState(), "button")
	expect(t, out, "backgroundColor", style.String("#2196F3"))
	expect(t, out, "color", style.String("#ffffff"))
	expect(t, out, "androidGravity", style.String("center"))
	expect(t, out, "paddingTop", style.Int(8))
	expect(t, out, "paddingLeft", style.Int(16))
	expect(t, out, "paddingHorizontal", style.Int(16))
	expect(t, out, "borderRadius", style.Int(4))
	expect(t, out, "borderBottomRightRadius", style.Int(4))
	absent(t, out, "flexDirection")
}

func TestInputDefaults(t *testing.T) {
	out := project(t, theme.NewState(), "input")
	expect(t, out, "placeholderColor", style.String("#88888870"))
	expect(t, out, "minHeight", style.Int(40))
	expect(t, out, "borderColor", style.String("#cccccc"))
	expect(t, out, "androidGravity", style.String("center_vertical"))

	out = project(t, theme.NewState(), "textarea")
	// color-mix of default black text with grey at 25%
	expect(t, out, "placeholderColor", style.String("#202020"))
	expect(t, out, "paddingVertical", style.Int(12))
	expect(t, out, "androidGravity", style.String("top"))

	out = project(t, theme.NewState(), "select")
	absent(t, out, "placeholderColor")
	expect(t, out, "minHeight", style.Int(40))
}

func TestButtonBackgroundOverride(t *testing.T) {
	s := newState(map[string]string{"color.bg": "#ffffff"}, "button", style.PropsOf("background-color", "#2563eb"))
	out := project(t, s, "button", "bg-bg", "p-4")
	expect(t, out, "backgroundColor", style.String("#ffffff"))
	expect(t, out, "paddingTop", style.Int(16))
	expect(t, out, "paddingVertical", style.Int(16))
}

func TestClassSelectorMatching(t *testing.T) {
	s := newState(nil, ".bg-primary", style.PropsOf("background-color", "#3b82f6"))
	for _, class := range []string{"bg-primary", ".bg-primary", "hover:bg-primary", "md:bg-primary"} {
		t.Run(class, func(t *testing.T) {
			expect(t, project(t, s, "div", class), "backgroundColor", style.String("#3b82f6"))
		})
	}
}

func TestFlexOrientation(t *testing.T) {
	s := theme.NewState()

	out := project(t, s, "div", "flex")
	expect(t, out, "androidOrientation", style.String("horizontal"))
	expect(t, out, "flexDirection", style.String("row"))

	out = project(t, s, "div")
	expect(t, out, "androidOrientation", style.String("vertical"))
	expect(t, out, "flexDirection", style.String("column"))

	out = project(t, s, "div", "flex-col")
	expect(t, out, "androidOrientation", style.String("vertical"))

	out = project(t, s, "span")
	expect(t, out, "androidOrientation", style.String("vertical"))
	absent(t, out, "flexDirection")

	out = project(t, s, "H1")
	expect(t, out, "flexDirection", style.String("column"))
	expect(t, out, "fontSize", style.Number(32))
}

func TestOrientationBeforeGap(t *testing.T) {
	for _, classes := range [][]string{
		{"gap-4", "flex"},
		{"flex", "gap-x-2", "gap-y-3"},
		{"gap-2", "flex-col"},
	} {
		s := theme.NewState()
		s.DisplayDensity = 2
		out := project(t, s, "div", classes...)
		o := out.IndexOf("androidOrientation")
		if o != 0 {
			t.Errorf("%v: orientation at %d, want 0", classes, o)
		}
		for _, gap := range []string{"gap", "rowGap", "columnGap"} {
			if i := out.IndexOf(gap); i >= 0 && i < o {
				t.Errorf("%v: %s at %d before orientation", classes, gap, i)
			}
		}
	}

	s := theme.NewState()
	s.DisplayDensity = 2
	expect(t, project(t, s, "div", "flex", "gap-4"), "gap", style.Int(32))
}

func TestGravity(t *testing.T) {
	tests := []struct {
		name    string
		classes []string
		gravity string
		layout  string
	}{
		{"row centered", []string{"flex", "items-center", "justify-center"}, "center", "center_horizontal"},
		{"column centered", []string{"flex-col", "items-center", "justify-center"}, "center", "center_horizontal"},
		{"column cross only", []string{"flex-col", "items-center"}, "center_horizontal", ""},
		{"row start end", []string{"flex-row", "items-start", "justify-end"}, "top|end", "end"},
		{"column start end", []string{"flex-col", "items-start", "justify-end"}, "start|bottom", "end"},
		{"row stretch", []string{"flex", "items-stretch"}, "fill_vertical", ""},
		{"between", []string{"flex", "justify-between"}, "", "space_between"},
		{"around", []string{"flex", "justify-around"}, "", "space_around"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := project(t, theme.NewState(), "div", tt.classes...)
			if tt.gravity == "" {
				absent(t, out, "androidGravity")
			} else {
				expect(t, out, "androidGravity", style.String(tt.gravity))
			}
			if tt.layout == "" {
				absent(t, out, "androidLayoutGravity")
			} else {
				expect(t, out, "androidLayoutGravity", style.String(tt.layout))
			}
		})
	}
}

func TestScrollHints(t *testing.T) {
	out := project(t, theme.NewState(), "div", "overflow-x-auto")
	expect(t, out, "androidScrollHorizontal", style.Bool(true))
	absent(t, out, "androidScrollVertical")

	out = project(t, theme.NewState(), "div", "overflow-y-scroll")
	expect(t, out, "androidScrollVertical", style.Bool(true))

	out = project(t, theme.NewState(), "div", "overflow-x-hidden")
	absent(t, out, "androidScrollHorizontal")
}

func TestMarginAuto(t *testing.T) {
	out := project(t, theme.NewState(), "div", "m-auto")
	for _, side := range []string{"margin", "marginTop", "marginBottom", "marginLeft", "marginRight", "marginHorizontal", "marginVertical"} {
		expect(t, out, side, style.String("auto"))
	}
	out = project(t, theme.NewState(), "div", "mx-auto", "mt-2")
	expect(t, out, "marginLeft", style.String("auto"))
	expect(t, out, "marginTop", style.Int(8))
}

func TestBorderShorthand(t *testing.T) {
	s := newState(nil, ".card", style.PropsOf("border", "2px solid #ff0000"))
	s.DisplayDensity = 2
	out := project(t, s, "div", "card")
	expect(t, out, "borderWidth", style.Int(4))
	expect(t, out, "borderColor", style.String("#ff0000"))
}

func TestShadowElevation(t *testing.T) {
	tests := []struct {
		class string
		want  int
	}{
		{"shadow-sm", 4},
		{"shadow-lg", 16},
		{"shadow-xl", 24},
		{"shadow-2xl", 4},
		{"shadow-none", 4},
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			expect(t, project(t, theme.NewState(), "div", tt.class), "elevation", style.Int(tt.want))
		})
	}
	s := theme.NewState()
	s.DisplayDensity = 3
	expect(t, project(t, s, "div", "shadow-md"), "elevation", style.Int(12))
}

func TestTextAndImageHints(t *testing.T) {
	s := newState(nil,
		".img", style.PropsOf("object-fit", "cover"),
		".fit", style.PropsOf("objectFit", "scale-down"),
		".heavy", style.PropsOf("font-weight", 600),
		".light", style.PropsOf("font-weight", 300),
	)
	tests := []struct {
		class, name string
		want        style.Value
	}{
		{"text-center", "androidTextGravity", style.String("center_horizontal")},
		{"text-right", "androidTextGravity", style.String("end")},
		{"text-left", "androidTextGravity", style.String("start")},
		{"img", "androidScaleType", style.String("center_crop")},
		{"fit", "androidScaleType", style.String("center_inside")},
		{"font-bold", "androidTypefaceStyle", style.String("bold")},
		{"font-medium", "androidTypefaceStyle", style.String("bold")},
		{"heavy", "androidTypefaceStyle", style.String("bold")},
		{"opacity-50", "androidAlpha", style.Number(0.5)},
		{"flex-wrap", "androidFlexWrap", style.Bool(true)},
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			expect(t, project(t, s, "span", tt.class), tt.name, tt.want)
		})
	}
	absent(t, project(t, s, "span", "font-normal"), "androidTypefaceStyle")
	absent(t, project(t, s, "span", "light"), "androidTypefaceStyle")
	expect(t, project(t, s, "h2"), "androidTypefaceStyle", style.String("bold"))
}

func TestSizing(t *testing.T) {
	s := newState(nil, ".half", style.PropsOf("width", "100%", "height", "100%"))
	out := project(t, s, "span", "half")
	expect(t, out, "width", style.String("match_parent"))
	expect(t, out, "height", style.String("match_parent"))

	out = project(t, s, "span", "w-1/2")
	expect(t, out, "width", style.String("50%"))

	out = project(t, s, "span", "flex-1")
	expect(t, out, "width", style.String("wrap_content"))
	expect(t, out, "height", style.String("wrap_content"))

	// div keeps its default width
	out = project(t, s, "div", "flex-1")
	expect(t, out, "width", style.String("match_parent"))
	expect(t, out, "height", style.String("wrap_content"))

	out = project(t, s, "span", "w-4", "h-full")
	expect(t, out, "width", style.Int(16))
	expect(t, out, "height", style.String("match_parent"))
}

func TestFontScaling(t *testing.T) {
	s := theme.NewState()
	s.DisplayDensity = 2
	s.ScaledDensity = 1.5
	out := project(t, s, "span", "text-lg")
	expect(t, out, "fontSize", style.Number(27))
	expect(t, out, "lineHeight", style.Int(56))
}

func TestVariablesAndColors(t *testing.T) {
	s := newState(map[string]string{"primary": "#abcdef", "fg": "#111111"},
		"button", style.PropsOf("background-color", "var(--primary)", "color", "$fg"),
		".tinted", style.PropsOf("border-color", "color-mix(in srgb, currentColor, white)", "color", "#000000"),
	)
	out := project(t, s, "button")
	expect(t, out, "backgroundColor", style.String("#abcdef"))
	expect(t, out, "color", style.String("#111111"))

	out = project(t, s, "span", "tinted")
	expect(t, out, "borderColor", style.String("#7f7f7f"))

	out = project(t, s, "span", "bg-[var(--primary)]")
	expect(t, out, "backgroundColor", style.String("#abcdef"))
}

func TestInheritedTheme(t *testing.T) {
	base := theme.NewEntry()
	base.Selectors.Set("button", style.PropsOf("background-color", "#000000", "border-radius", "2px"))
	child := theme.NewEntry()
	child.Inherits = "base"
	child.Selectors.Set("button", style.PropsOf("background-color", "#ff0000"))

	s := theme.NewState()
	s.Themes.Set("base", base)
	s.Themes.Set("child", child)
	if err := s.SetTheme("child"); err != nil {
		t.Fatal(err)
	}
	out := project(t, s, "button")
	expect(t, out, "backgroundColor", style.String("#ff0000"))
	expect(t, out, "borderRadius", style.Int(2))
}

func TestIdempotent(t *testing.T) {
	s := newState(map[string]string{"color.bg": "#ffffff"}, "button", style.PropsOf("background-color", "#2563eb"))
	p := native.NewProjector(nil)
	classes := []string{"flex", "gap-2", "items-center", "bg-bg", "shadow-lg", "text-sm"}
	a, err := json.Marshal(p.StylesFor(s, "button", classes))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := json.Marshal(p.StylesFor(s, "button", classes))
	if string(a) != string(b) {
		t.Errorf("outputs differ:\n%s\n%s", a, b)
	}
}

func TestBaseKeepsUnits(t *testing.T) {
	s := theme.NewState()
	r := s.Resolve()
	out := native.NewProjector(nil).Base(r, "div", []string{"p-2"})
	// Npx becomes a number but is not density converted yet
	expect(t, out, "paddingTop", style.Number(8))
	if out.IndexOf("androidOrientation") != 0 {
		t.Error("orientation is not first")
	}
	expect(t, native.NewProjector(nil).Styles(r, units.Metrics{Density: 2}, "div", []string{"p-2"}), "paddingTop", style.Int(16))
}

func TestNonFiniteValues(t *testing.T) {
	s := newState(nil,
		"span", style.PropsOf("width", "infpx", "height", "NaNpx"),
		".broken", style.PropsOf("flex", math.NaN(), "elevation", math.Inf(1)))
	out := project(t, s, "span", "p-4", "opacity-nan", "broken")

	expect(t, out, "paddingTop", style.Int(16))
	expect(t, out, "width", style.String("infpx"))
	expect(t, out, "height", style.String("NaNpx"))
	absent(t, out, "opacity", "flex", "elevation")
	if _, err := json.Marshal(out); err != nil {
		t.Errorf("Marshal() error = %v", err)
	}
}
