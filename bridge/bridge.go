// Package bridge exposes the styling engine through JSON string functions
// the way host runtimes call it. Malformed input never fails a call: it
// degrades to an empty or default result and is reported at Debug level.
package bridge

import (
	"bytes"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"themedstyler/misc"
	"themedstyler/native"
	"themedstyler/theme"
	"themedstyler/web"
)

const (
	emptyObject = "{}"
	emptyList   = "[]"
)

// Bridge holds projectors and a logger, it is safe for concurrent use.
type Bridge struct {
	log    *zap.Logger
	web    *web.Projector
	native *native.Projector
}

func New(log *zap.Logger) *Bridge {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bridge{
		log:    log.Named("bridge"),
		web:    web.NewProjector(log),
		native: native.NewProjector(log),
	}
}

// Usage is a legacy snapshot of observed usage. Selectors are taken as tag
// names.
type Usage struct {
	Selectors []string `json:"selectors"`
	Classes   []string `json:"classes"`
}

// ThemesInput is host supplied themes document. Densities are optional and
// only consulted by native projection.
type ThemesInput struct {
	*theme.Bundle
	DisplayDensity float64
	ScaledDensity  float64
}

func (in *ThemesInput) UnmarshalJSON(data []byte) error {
	b := theme.NewBundle()
	if err := json.Unmarshal(data, b); err != nil {
		return err
	}
	var d struct {
		DisplayDensity float64 `json:"displayDensity"`
		ScaledDensity  float64 `json:"scaledDensity"`
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	*in = ThemesInput{Bundle: b, DisplayDensity: d.DisplayDensity, ScaledDensity: d.ScaledDensity}
	return nil
}

// ParseThemesInput decodes {themes, currentTheme}. Malformed input gives an
// empty bundle.
func (b *Bridge) ParseThemesInput(data string) *ThemesInput {
	in := &ThemesInput{}
	if err := json.Unmarshal([]byte(data), in); err != nil {
		b.log.Debug("Malformed themes input, using empty set", zap.Error(err))
		return &ThemesInput{Bundle: theme.NewBundle()}
	}
	return in
}

// ParseUsage decodes {selectors, classes}. Malformed input gives empty usage.
func (b *Bridge) ParseUsage(data string) *Usage {
	u := &Usage{}
	if err := json.Unmarshal([]byte(data), u); err != nil {
		b.log.Debug("Malformed usage snapshot, ignoring", zap.Error(err))
		return &Usage{}
	}
	return u
}

func (b *Bridge) parseClasses(data string) []string {
	var classes []string
	if err := json.Unmarshal([]byte(data), &classes); err != nil {
		b.log.Debug("Malformed class list, ignoring", zap.Error(err))
		return nil
	}
	return classes
}

// BuildState makes render state out of themes and observed usage. Non
// positive densities leave defaults in place.
func BuildState(usage *Usage, in *ThemesInput) *theme.State {
	var s *theme.State
	if in == nil {
		s = theme.NewState()
	} else {
		s = in.Bundle.State()
		if in.DisplayDensity > 0 {
			s.DisplayDensity = in.DisplayDensity
		}
		if in.ScaledDensity > 0 {
			s.ScaledDensity = in.ScaledDensity
		}
	}
	usage.Register(s)
	return s
}

// Register adds snapshot to observed usage of the state. Leading dot of a
// class is dropped.
func (u *Usage) Register(s *theme.State) {
	if u == nil {
		return
	}
	s.RegisterTags(u.Selectors...)
	for _, c := range u.Classes {
		s.RegisterClasses(strings.TrimPrefix(c, "."))
	}
}

func (b *Bridge) parseState(stateJSON string) (*theme.State, bool) {
	s, err := theme.ParseState([]byte(stateJSON))
	if err != nil {
		b.log.Debug("Malformed state", zap.Error(err))
		return nil, false
	}
	return s, true
}

func (b *Bridge) stateJSON(s *theme.State) string {
	data, err := s.JSON()
	if err != nil {
		b.log.Debug("Unable to encode state", zap.Error(err))
		return emptyObject
	}
	return string(data)
}

// RenderCSS renders stylesheet for a serialized state, "" when state is
// malformed.
func (b *Bridge) RenderCSS(stateJSON string) string {
	s, ok := b.parseState(stateJSON)
	if !ok {
		return ""
	}
	return b.web.Stylesheet(s)
}

// RenderUsageCSS renders stylesheet for a usage snapshot and themes document.
func (b *Bridge) RenderUsageCSS(usageJSON, themesJSON string) string {
	return b.web.Stylesheet(BuildState(b.ParseUsage(usageJSON), b.ParseThemesInput(themesJSON)))
}

func (b *Bridge) nativeJSON(s *theme.State, selector string, classes []string) string {
	data, err := json.Marshal(b.native.StylesFor(s, selector, classes))
	if err != nil {
		b.log.Debug("Unable to encode native styles", zap.Error(err))
		return emptyObject
	}
	return string(data)
}

// NativeStyles returns native property map of one element as JSON object,
// "{}" when state is malformed. Malformed class list counts as empty.
func (b *Bridge) NativeStyles(stateJSON, selector, classesJSON string) string {
	classes := b.parseClasses(classesJSON)
	s, ok := b.parseState(stateJSON)
	if !ok {
		return emptyObject
	}
	return b.nativeJSON(s, selector, classes)
}

// NativeStylesForThemes is NativeStyles for a themes document carrying
// optional displayDensity and scaledDensity.
func (b *Bridge) NativeStylesForThemes(selector, classesJSON, themesJSON string) string {
	classes := b.parseClasses(classesJSON)
	return b.nativeJSON(BuildState(nil, b.ParseThemesInput(themesJSON)), selector, classes)
}

// RegisterThemeJSON stores {name, theme} into state replacing an entry with
// the same name. Unusable theme object leaves state as is. Returns updated
// state or "{}" when state or theme object is malformed.
func (b *Bridge) RegisterThemeJSON(stateJSON, themeJSON string) string {
	s, ok := b.parseState(stateJSON)
	if !ok {
		return emptyObject
	}
	var req struct {
		Name  any             `json:"name"`
		Theme json.RawMessage `json:"theme"`
	}
	if err := json.Unmarshal([]byte(themeJSON), &req); err != nil {
		b.log.Debug("Malformed theme registration", zap.Error(err))
		return emptyObject
	}

	name, _ := req.Name.(string)
	raw := bytes.TrimSpace(req.Theme)
	if name == "" || len(raw) == 0 || raw[0] != '{' {
		b.log.Debug("Theme registration ignored", zap.Any("name", req.Name))
		return b.stateJSON(s)
	}
	e := theme.NewEntry()
	if err := json.Unmarshal(raw, e); err != nil {
		b.log.Debug("Malformed theme entry, ignoring", zap.String("name", name), zap.Error(err))
		return b.stateJSON(s)
	}
	s.Themes.Set(name, e)
	return b.stateJSON(s)
}

// SetThemeJSON makes an existing theme both default and current. Unknown
// name leaves state unchanged.
func (b *Bridge) SetThemeJSON(stateJSON, name string) string {
	s, ok := b.parseState(stateJSON)
	if !ok {
		return emptyObject
	}
	if err := s.SetTheme(name); err != nil {
		b.log.Debug("Theme not switched", zap.Error(err))
	} else {
		s.SetDefaultTheme(name)
	}
	return b.stateJSON(s)
}

// ThemeInfo is an element of theme list.
type ThemeInfo struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// ThemeList returns themes in state order, display name falls back to key.
func ThemeList(s *theme.State) []ThemeInfo {
	list := make([]ThemeInfo, 0, s.Themes.Len())
	for key, e := range s.Themes.All() {
		list = append(list, ThemeInfo{Key: key, Name: e.DisplayName(key)})
	}
	return list
}

// ThemeListJSON returns [{key, name}], "[]" when state is malformed.
func (b *Bridge) ThemeListJSON(stateJSON string) string {
	s, ok := b.parseState(stateJSON)
	if !ok {
		return emptyList
	}
	data, err := json.Marshal(ThemeList(s))
	if err != nil {
		return emptyList
	}
	return string(data)
}

// DefaultStateJSON returns serialized empty state: no themes, unit
// densities, no observed usage.
func DefaultStateJSON() string {
	data, err := theme.NewState().JSON()
	if err != nil {
		return emptyObject
	}
	return string(data)
}

func Version() string {
	return misc.GetVersion()
}
