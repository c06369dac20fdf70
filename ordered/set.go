package ordered

import (
	"encoding/json"
	"iter"

	"gopkg.in/yaml.v3"
)

// Set is an insertion ordered set of strings, serialized as array.
type Set struct {
	m Map[struct{}]
}

func NewSet(values ...string) *Set {
	s := &Set{}
	s.Add(values...)
	return s
}

func (s *Set) Add(values ...string) {
	for _, v := range values {
		s.m.Set(v, struct{}{})
	}
}

func (s *Set) Has(value string) bool {
	if s == nil {
		return false
	}
	return s.m.Has(value)
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.m.Len()
}

func (s *Set) Values() []string {
	if s == nil {
		return nil
	}
	return s.m.Keys()
}

func (s *Set) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if s == nil {
			return
		}
		for k := range s.m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (s *Set) Clone() *Set {
	if s == nil {
		return &Set{}
	}
	return &Set{m: *s.m.Clone()}
}

func (s *Set) MarshalJSON() ([]byte, error) {
	values := s.Values()
	if values == nil {
		values = []string{}
	}
	return json.Marshal(values)
}

func (s *Set) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*s = Set{}
	s.Add(values...)
	return nil
}

func (s *Set) MarshalYAML() (any, error) {
	return s.Values(), nil
}

func (s *Set) UnmarshalYAML(node *yaml.Node) error {
	var values []string
	if err := node.Decode(&values); err != nil {
		return err
	}
	*s = Set{}
	s.Add(values...)
	return nil
}
