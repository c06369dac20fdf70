package theme

import (
	"encoding/json"
	"errors"
	"strings"

	"themedstyler/ordered"
	"themedstyler/style"
	"themedstyler/units"
)

// ErrThemeNotFound is matched by every *NotFoundError.
var ErrThemeNotFound = errors.New("theme not found")

// NotFoundError is returned when activating an unknown theme.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "theme not found: " + e.Name
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrThemeNotFound
}

// State is a render session: theme set, active theme, display metrics and
// observed usage. It is safe for concurrent reads, writers must be
// serialized by the caller (or work on a Clone).
type State struct {
	Themes         *ordered.Map[*Entry] `json:"themes"`
	DefaultTheme   string               `json:"default_theme"`
	CurrentTheme   string               `json:"current_theme"`
	DisplayDensity float64              `json:"display_density"`
	ScaledDensity  float64              `json:"scaled_density"`
	UsedClasses    *ordered.Set         `json:"used_classes"`
	UsedTags       *ordered.Set         `json:"used_tags"`
	// Observed tag and class pairs encoded as "tag|class".
	UsedTagClasses *ordered.Set `json:"used_tag_classes"`
}

// NewState returns empty state with unit densities.
func NewState() *State {
	return &State{
		Themes:         ordered.NewMap[*Entry](),
		DisplayDensity: 1,
		ScaledDensity:  1,
		UsedClasses:    ordered.NewSet(),
		UsedTags:       ordered.NewSet(),
		UsedTagClasses: ordered.NewSet(),
	}
}

func (s *State) normalize() {
	if s.Themes == nil {
		s.Themes = ordered.NewMap[*Entry]()
	}
	for name, e := range s.Themes.All() {
		if e == nil {
			s.Themes.Set(name, NewEntry())
		}
	}
	if s.UsedClasses == nil {
		s.UsedClasses = ordered.NewSet()
	}
	if s.UsedTags == nil {
		s.UsedTags = ordered.NewSet()
	}
	if s.UsedTagClasses == nil {
		s.UsedTagClasses = ordered.NewSet()
	}
}

// UnmarshalJSON is lenient: missing fields keep NewState defaults.
func (s *State) UnmarshalJSON(data []byte) error {
	type plain State
	p := plain(*NewState())
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = State(p)
	s.normalize()
	return nil
}

// ParseState decodes state JSON.
func ParseState(data []byte) (*State, error) {
	s := NewState()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// JSON encodes state in its wire form.
func (s *State) JSON() ([]byte, error) {
	s.normalize()
	return json.Marshal(s)
}

// Metrics returns display scalars for unit conversion.
func (s *State) Metrics() units.Metrics {
	return units.Metrics{Density: s.DisplayDensity, ScaledDensity: s.ScaledDensity}
}

// Clone makes deep copy suitable for copy-on-write render passes.
func (s *State) Clone() *State {
	c := *s
	c.Themes = ordered.NewMap[*Entry]()
	for name, e := range s.Themes.All() {
		if e == nil {
			e = NewEntry()
		}
		c.Themes.Set(name, e.Clone())
	}
	c.UsedClasses = s.UsedClasses.Clone()
	c.UsedTags = s.UsedTags.Clone()
	c.UsedTagClasses = s.UsedTagClasses.Clone()
	return &c
}

// SetTheme activates an existing theme. State is unchanged on error.
func (s *State) SetTheme(name string) error {
	if !s.Themes.Has(name) {
		return &NotFoundError{Name: name}
	}
	s.CurrentTheme = name
	return nil
}

func (s *State) SetDefaultTheme(name string) {
	s.DefaultTheme = name
}

func (s *State) entry(name string) *Entry {
	s.normalize()
	e, ok := s.Themes.Get(name)
	if !ok || e == nil {
		e = NewEntry()
		s.Themes.Set(name, e)
	}
	return e
}

// AddTheme merges selector property sets into theme name, creating it when
// necessary. Properties of an existing selector are overwritten one by one.
func (s *State) AddTheme(name string, selectors *Selectors) {
	e := s.entry(name)
	for sel, props := range selectors.All() {
		dst, ok := e.Selectors.Get(sel)
		if !ok || dst == nil {
			dst = style.NewProps()
			e.Selectors.Set(sel, dst)
		}
		dst.Merge(props)
	}
}

// SetVariables replaces variables of the current theme.
func (s *State) SetVariables(vars *ordered.Map[string]) {
	s.entry(s.CurrentTheme).Variables = vars.Clone()
}

// SetBreakpoints replaces breakpoints of the current theme.
func (s *State) SetBreakpoints(bps *ordered.Map[string]) {
	s.entry(s.CurrentTheme).Breakpoints = bps.Clone()
}

func (s *State) RegisterClasses(classes ...string) {
	s.normalize()
	s.UsedClasses.Add(classes...)
}

func (s *State) RegisterTags(tags ...string) {
	s.normalize()
	s.UsedTags.Add(tags...)
}

func (s *State) RegisterTagClass(tag, class string) {
	s.normalize()
	s.UsedTagClasses.Add(TagClassKey(tag, class))
}

func (s *State) ClearUsage() {
	s.UsedClasses = ordered.NewSet()
	s.UsedTags = ordered.NewSet()
	s.UsedTagClasses = ordered.NewSet()
}

// TagClassKey encodes observed tag and class pair.
func TagClassKey(tag, class string) string {
	return tag + "|" + class
}

// SplitTagClassKey decodes "tag|class", both parts must be non empty.
func SplitTagClassKey(key string) (tag, class string, ok bool) {
	tag, class, ok = strings.Cut(key, "|")
	if !ok || tag == "" || class == "" {
		return "", "", false
	}
	return tag, class, true
}

// ProcessStyles expands shorthands into missing longhands (specific
// horizontal and vertical forms first) and converts dimensions to device
// pixels, font size included.
func (s *State) ProcessStyles(props *style.Props) *style.Props {
	out := props.Clone()
	expand := func(from style.Property, to ...style.Property) {
		v, ok := out.Get(from.String())
		if !ok {
			return
		}
		for _, p := range to {
			out.SetMissing(p.String(), v)
		}
	}
	expand(style.PropertyPaddingHorizontal, style.PropertyPaddingLeft, style.PropertyPaddingRight)
	expand(style.PropertyPaddingVertical, style.PropertyPaddingTop, style.PropertyPaddingBottom)
	expand(style.PropertyPadding, style.PropertyPaddingTop, style.PropertyPaddingBottom, style.PropertyPaddingLeft, style.PropertyPaddingRight)
	expand(style.PropertyMarginHorizontal, style.PropertyMarginLeft, style.PropertyMarginRight)
	expand(style.PropertyMarginVertical, style.PropertyMarginTop, style.PropertyMarginBottom)
	expand(style.PropertyMargin, style.PropertyMarginTop, style.PropertyMarginBottom, style.PropertyMarginLeft, style.PropertyMarginRight)
	expand(style.PropertyBorderRadius, style.PropertyBorderRadius.Sides()...)

	m := s.Metrics()
	for name, v := range out.All() {
		if p := style.ParseProperty(name); name == p.String() && (p.IsDimension() || p == style.PropertyFontSize) {
			out.Set(name, m.Convert(v))
		}
	}
	return out
}
