// Package theme holds theme data model, inheritance resolution and selector
// matching shared by web and native projections.
package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"themedstyler/ordered"
	"themedstyler/style"
)

// Selectors maps selector text to its property set. A key may be a comma
// separated group ("h1, h2").
type Selectors = ordered.Map[*style.Props]

// Entry is a single named theme.
type Entry struct {
	Name        string
	Inherits    string
	Selectors   *Selectors
	Variables   *ordered.Map[string]
	Breakpoints *ordered.Map[string]
}

func NewEntry() *Entry {
	return &Entry{
		Selectors:   ordered.NewMap[*style.Props](),
		Variables:   ordered.NewMap[string](),
		Breakpoints: ordered.NewMap[string](),
	}
}

func (e *Entry) normalize() {
	if e.Selectors == nil {
		e.Selectors = ordered.NewMap[*style.Props]()
	}
	for sel, props := range e.Selectors.All() {
		if props == nil {
			e.Selectors.Set(sel, style.NewProps())
		}
	}
	if e.Variables == nil {
		e.Variables = ordered.NewMap[string]()
	}
	if e.Breakpoints == nil {
		e.Breakpoints = ordered.NewMap[string]()
	}
}

// DisplayName returns Name or key when theme has no name.
func (e *Entry) DisplayName(key string) string {
	if e == nil || e.Name == "" {
		return key
	}
	return e.Name
}

// Clone makes deep copy of the entry.
func (e *Entry) Clone() *Entry {
	c := &Entry{
		Name:        e.Name,
		Inherits:    e.Inherits,
		Selectors:   ordered.NewMap[*style.Props](),
		Variables:   e.Variables.Clone(),
		Breakpoints: e.Breakpoints.Clone(),
	}
	for sel, props := range e.Selectors.All() {
		c.Selectors.Set(sel, props.Clone())
	}
	return c
}

type entryJSON struct {
	Name        *string         `json:"name"`
	Inherits    *string         `json:"inherits"`
	Selectors   *Selectors      `json:"selectors"`
	Variables   json.RawMessage `json:"variables,omitempty"`
	Breakpoints json.RawMessage `json:"breakpoints,omitempty"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (e *Entry) MarshalJSON() ([]byte, error) {
	e.normalize()
	vars, err := json.Marshal(e.Variables)
	if err != nil {
		return nil, err
	}
	bps, err := json.Marshal(e.Breakpoints)
	if err != nil {
		return nil, err
	}
	return json.Marshal(entryJSON{
		Name:        optional(e.Name),
		Inherits:    optional(e.Inherits),
		Selectors:   e.Selectors,
		Variables:   vars,
		Breakpoints: bps,
	})
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var aux entryJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*e = Entry{Selectors: aux.Selectors}
	if aux.Name != nil {
		e.Name = *aux.Name
	}
	if aux.Inherits != nil {
		e.Inherits = *aux.Inherits
	}
	var err error
	if e.Variables, err = FlattenJSON(aux.Variables); err != nil {
		return fmt.Errorf("variables: %w", err)
	}
	if e.Breakpoints, err = FlattenJSON(aux.Breakpoints); err != nil {
		return fmt.Errorf("breakpoints: %w", err)
	}
	e.normalize()
	return nil
}

type entryYAML struct {
	Name        string     `yaml:"name,omitempty"`
	Inherits    string     `yaml:"inherits,omitempty"`
	Selectors   *Selectors `yaml:"selectors,omitempty"`
	Variables   yaml.Node  `yaml:"variables,omitempty"`
	Breakpoints yaml.Node  `yaml:"breakpoints,omitempty"`
}

func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	var aux entryYAML
	if err := node.Decode(&aux); err != nil {
		return err
	}
	*e = Entry{
		Name:        aux.Name,
		Inherits:    aux.Inherits,
		Selectors:   aux.Selectors,
		Variables:   FlattenYAML(&aux.Variables),
		Breakpoints: FlattenYAML(&aux.Breakpoints),
	}
	e.normalize()
	return nil
}

func (e *Entry) MarshalYAML() (any, error) {
	e.normalize()
	return struct {
		Name        string               `yaml:"name,omitempty"`
		Inherits    string               `yaml:"inherits,omitempty"`
		Selectors   *Selectors           `yaml:"selectors"`
		Variables   *ordered.Map[string] `yaml:"variables,omitempty"`
		Breakpoints *ordered.Map[string] `yaml:"breakpoints,omitempty"`
	}{e.Name, e.Inherits, e.Selectors, e.Variables, e.Breakpoints}, nil
}

// FlattenJSON flattens nested JSON into dotted keys: objects contribute
// member names, arrays element indexes. Nulls are dropped, booleans and
// numbers kept in their textual form. A scalar document yields empty table.
func FlattenJSON(data []byte) (*ordered.Map[string], error) {
	out := ordered.NewMap[string]()
	if len(bytes.TrimSpace(data)) == 0 {
		return out, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := flattenTokens(dec, "", true, out); err != nil {
		return nil, err
	}
	return out, nil
}

func childKey(prefix string, root bool, name string) string {
	if root {
		return name
	}
	return prefix + "." + name
}

func flattenTokens(dec *json.Decoder, prefix string, root bool, out *ordered.Map[string]) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	switch t := tok.(type) {
	case json.Delim:
		if t == '{' {
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return err
				}
				if err := flattenTokens(dec, childKey(prefix, root, kt.(string)), false, out); err != nil {
					return err
				}
			}
		} else {
			for i := 0; dec.More(); i++ {
				if err := flattenTokens(dec, childKey(prefix, root, strconv.Itoa(i)), false, out); err != nil {
					return err
				}
			}
		}
		// closing delimiter
		_, err = dec.Token()
		return err
	case nil:
	case bool:
		if !root {
			out.Set(prefix, strconv.FormatBool(t))
		}
	case json.Number:
		if !root {
			out.Set(prefix, t.String())
		}
	case string:
		if !root {
			out.Set(prefix, t)
		}
	}
	return nil
}

// FlattenYAML is FlattenJSON for YAML nodes.
func FlattenYAML(node *yaml.Node) *ordered.Map[string] {
	out := ordered.NewMap[string]()
	flattenNode(node, "", true, out)
	return out
}

func flattenNode(node *yaml.Node, prefix string, root bool, out *ordered.Map[string]) {
	if node == nil {
		return
	}
	switch node.Kind {
	case yaml.DocumentNode:
		for _, n := range node.Content {
			flattenNode(n, prefix, root, out)
		}
	case yaml.AliasNode:
		flattenNode(node.Alias, prefix, root, out)
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			flattenNode(node.Content[i+1], childKey(prefix, root, node.Content[i].Value), false, out)
		}
	case yaml.SequenceNode:
		for i, n := range node.Content {
			flattenNode(n, childKey(prefix, root, strconv.Itoa(i)), false, out)
		}
	case yaml.ScalarNode:
		if root || node.ShortTag() == "!!null" {
			return
		}
		out.Set(prefix, node.Value)
	}
}
