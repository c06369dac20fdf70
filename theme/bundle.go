package theme

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"themedstyler/ordered"
)

// Bundle is a set of themes with optional active theme name as supplied by
// a host or a theme file.
type Bundle struct {
	Themes       *ordered.Map[*Entry]
	CurrentTheme string
}

func NewBundle() *Bundle {
	return &Bundle{Themes: ordered.NewMap[*Entry]()}
}

type bundleDoc struct {
	Themes       *ordered.Map[*Entry] `json:"themes" yaml:"themes"`
	CurrentTheme string               `json:"currentTheme" yaml:"currentTheme"`
	// snake case spelling is accepted as well
	CurrentThemeAlt string `json:"current_theme" yaml:"current_theme"`
}

func (b *Bundle) from(doc *bundleDoc) {
	*b = Bundle{Themes: doc.Themes, CurrentTheme: doc.CurrentTheme}
	if b.CurrentTheme == "" {
		b.CurrentTheme = doc.CurrentThemeAlt
	}
	if b.Themes == nil {
		b.Themes = ordered.NewMap[*Entry]()
	}
	for name, e := range b.Themes.All() {
		if e == nil {
			b.Themes.Set(name, NewEntry())
		}
	}
}

func (b *Bundle) UnmarshalJSON(data []byte) error {
	var doc bundleDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	b.from(&doc)
	return nil
}

func (b *Bundle) UnmarshalYAML(node *yaml.Node) error {
	var doc bundleDoc
	if err := node.Decode(&doc); err != nil {
		return err
	}
	b.from(&doc)
	return nil
}

func (b *Bundle) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Themes       *ordered.Map[*Entry] `json:"themes"`
		CurrentTheme string               `json:"currentTheme,omitempty"`
	}{b.Themes, b.CurrentTheme})
}

// Add stores entries of other bundle, later entries replace earlier ones
// with the same key. Non empty current theme of other wins.
func (b *Bundle) Add(other *Bundle) {
	for name, e := range other.Themes.All() {
		b.Themes.Set(name, e)
	}
	if other.CurrentTheme != "" {
		b.CurrentTheme = other.CurrentTheme
	}
}

// State builds a fresh render state. An empty bundle gives empty state.
// Current theme is taken when it names a loaded theme; default theme is the
// first one.
func (b *Bundle) State() *State {
	s := NewState()
	if b == nil || b.Themes.Len() == 0 {
		return s
	}
	for name, e := range b.Themes.All() {
		s.Themes.Set(name, e.Clone())
	}
	if s.Themes.Has(b.CurrentTheme) {
		s.CurrentTheme = b.CurrentTheme
	}
	s.DefaultTheme = s.Themes.Keys()[0]
	return s
}
