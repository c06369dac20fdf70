// Package ordered provides insertion ordered containers used for property
// maps, selector tables and observed usage sets. Iteration order is always the
// order in which keys were first inserted unless explicitly repositioned.
package ordered

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	"gopkg.in/yaml.v3"
)

type entry[V any] struct {
	key   string
	value V
}

// Map is a string keyed map remembering insertion order. Zero value is ready
// to use.
type Map[V any] struct {
	entries []entry[V]
	index   map[string]int
}

func NewMap[V any]() *Map[V] {
	return &Map[V]{}
}

func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

func (m *Map[V]) Get(key string) (V, bool) {
	if m != nil {
		if i, ok := m.index[key]; ok {
			return m.entries[i].value, true
		}
	}
	var zero V
	return zero, false
}

func (m *Map[V]) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.index[key]
	return ok
}

// Set stores value under key. Existing key keeps its position.
func (m *Map[V]) Set(key string, value V) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[key]; ok {
		m.entries[i].value = value
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, entry[V]{key: key, value: value})
}

// SetMissing stores value only when key is not present yet.
func (m *Map[V]) SetMissing(key string, value V) bool {
	if m.Has(key) {
		return false
	}
	m.Set(key, value)
	return true
}

// InsertAt places key at position pos (clamped to [0, Len]) shifting
// following entries. If key already exists it is moved.
func (m *Map[V]) InsertAt(pos int, key string, value V) {
	m.Delete(key)
	if m.index == nil {
		m.index = make(map[string]int)
	}
	pos = max(0, min(pos, len(m.entries)))
	m.entries = append(m.entries, entry[V]{})
	copy(m.entries[pos+1:], m.entries[pos:])
	m.entries[pos] = entry[V]{key: key, value: value}
	m.reindex(pos)
}

func (m *Map[V]) Delete(key string) bool {
	if m == nil {
		return false
	}
	i, ok := m.index[key]
	if !ok {
		return false
	}
	delete(m.index, key)
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	m.reindex(i)
	return true
}

// IndexOf returns position of key or -1.
func (m *Map[V]) IndexOf(key string) int {
	if m == nil {
		return -1
	}
	if i, ok := m.index[key]; ok {
		return i
	}
	return -1
}

func (m *Map[V]) reindex(from int) {
	for i := from; i < len(m.entries); i++ {
		m.index[m.entries[i].key] = i
	}
}

func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.key
	}
	return keys
}

// All iterates over entries in order.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil {
			return
		}
		for _, e := range m.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Merge copies all entries of other into m using Set semantics.
func (m *Map[V]) Merge(other *Map[V]) {
	for k, v := range other.All() {
		m.Set(k, v)
	}
}

// Clone returns shallow copy of the map: values are copied by assignment.
func (m *Map[V]) Clone() *Map[V] {
	c := &Map[V]{}
	if m == nil || len(m.entries) == 0 {
		return c
	}
	c.entries = make([]entry[V], len(m.entries))
	copy(c.entries, m.entries)
	c.index = make(map[string]int, len(m.index))
	for k, i := range m.index {
		c.index[k] = i
	}
	return c
}

func (m *Map[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(e.value)
		if err != nil {
			return nil, fmt.Errorf("unable to marshal value of %q: %w", e.key, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *Map[V]) UnmarshalJSON(data []byte) error {
	*m = Map[V]{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		var v V
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("unable to decode value of %q: %w", key, err)
		}
		m.Set(key, v)
	}
	_, err = dec.Token()
	return err
}

func (m *Map[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range m.entries {
		var kn, vn yaml.Node
		if err := kn.Encode(e.key); err != nil {
			return nil, err
		}
		if err := vn.Encode(e.value); err != nil {
			return nil, fmt.Errorf("unable to encode value of %q: %w", e.key, err)
		}
		node.Content = append(node.Content, &kn, &vn)
	}
	return node, nil
}

func (m *Map[V]) UnmarshalYAML(node *yaml.Node) error {
	*m = Map[V]{}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return err
		}
		var v V
		if err := node.Content[i+1].Decode(&v); err != nil {
			return fmt.Errorf("line %d: unable to decode value of %q: %w", node.Content[i+1].Line, key, err)
		}
		m.Set(key, v)
	}
	return nil
}
