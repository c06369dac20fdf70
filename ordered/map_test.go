package ordered_test

import (
	"encoding/json"
	"slices"
	"testing"

	"gopkg.in/yaml.v3"

	"themedstyler/ordered"
)

func TestMapSetKeepsPosition(t *testing.T) {
	m := ordered.NewMap[int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)
	m.Set("a", 10)

	if got := m.Keys(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("keys = %v", got)
	}
	if v, _ := m.Get("a"); v != 10 {
		t.Errorf("a = %d, want 10", v)
	}
}

func TestMapInsertAt(t *testing.T) {
	tests := []struct {
		name string
		pos  int
		key  string
		want []string
	}{
		{"front", 0, "x", []string{"x", "a", "b", "c"}},
		{"middle", 1, "x", []string{"a", "x", "b", "c"}},
		{"past end", 10, "x", []string{"a", "b", "c", "x"}},
		{"negative", -3, "x", []string{"x", "a", "b", "c"}},
		{"move existing", 0, "c", []string{"c", "a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ordered.NewMap[int]()
			m.Set("a", 1)
			m.Set("b", 2)
			m.Set("c", 3)
			m.InsertAt(tt.pos, tt.key, 42)
			if got := m.Keys(); !slices.Equal(got, tt.want) {
				t.Fatalf("keys = %v, want %v", got, tt.want)
			}
			for i, k := range tt.want {
				if m.IndexOf(k) != i {
					t.Errorf("IndexOf(%q) = %d, want %d", k, m.IndexOf(k), i)
				}
			}
			if v, _ := m.Get(tt.key); v != 42 {
				t.Errorf("%s = %d, want 42", tt.key, v)
			}
		})
	}
}

func TestMapDelete(t *testing.T) {
	m := ordered.NewMap[string]()
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("c", "3")
	if !m.Delete("b") {
		t.Fatal("expected delete to report removal")
	}
	if m.Delete("b") {
		t.Fatal("second delete should be a no-op")
	}
	if m.IndexOf("c") != 1 {
		t.Errorf("c index = %d, want 1", m.IndexOf("c"))
	}
	if m.Len() != 2 {
		t.Errorf("len = %d, want 2", m.Len())
	}
}

func TestMapCloneIsIndependent(t *testing.T) {
	m := ordered.NewMap[int]()
	m.Set("a", 1)
	c := m.Clone()
	c.Set("b", 2)
	c.Set("a", 5)
	if m.Has("b") {
		t.Error("clone modified source")
	}
	if v, _ := m.Get("a"); v != 1 {
		t.Errorf("source a = %d, want 1", v)
	}
}

func TestMapNilReceiver(t *testing.T) {
	var m *ordered.Map[int]
	if m.Len() != 0 || m.Has("a") || m.Keys() != nil || m.IndexOf("a") != -1 {
		t.Fatal("nil map should behave as empty")
	}
	for range m.All() {
		t.Fatal("nil map should not iterate")
	}
}

func TestMapJSONPreservesOrder(t *testing.T) {
	src := `{"z":1,"a":2,"m":{"q":3}}`
	m := ordered.NewMap[json.RawMessage]()
	if err := json.Unmarshal([]byte(src), m); err != nil {
		t.Fatal(err)
	}
	if got := m.Keys(); !slices.Equal(got, []string{"z", "a", "m"}) {
		t.Fatalf("keys = %v", got)
	}
	out, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != src {
		t.Errorf("round trip = %s, want %s", out, src)
	}
}

func TestMapYAMLPreservesOrder(t *testing.T) {
	src := "zeta: 1\nalpha: 2\nmid: 3\n"
	m := ordered.NewMap[int]()
	if err := yaml.Unmarshal([]byte(src), m); err != nil {
		t.Fatal(err)
	}
	if got := m.Keys(); !slices.Equal(got, []string{"zeta", "alpha", "mid"}) {
		t.Fatalf("keys = %v", got)
	}
	out, err := yaml.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != src {
		t.Errorf("round trip = %q, want %q", out, src)
	}
}

func TestSet(t *testing.T) {
	s := ordered.NewSet("b", "a", "b")
	if got := s.Values(); !slices.Equal(got, []string{"b", "a"}) {
		t.Fatalf("values = %v", got)
	}
	out, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `["b","a"]` {
		t.Errorf("json = %s", out)
	}
	var back ordered.Set
	if err := json.Unmarshal([]byte(`["x","y","x"]`), &back); err != nil {
		t.Fatal(err)
	}
	if back.Len() != 2 || !back.Has("y") {
		t.Errorf("decoded = %v", back.Values())
	}
	empty, _ := json.Marshal(&ordered.Set{})
	if string(empty) != "[]" {
		t.Errorf("empty set json = %s", empty)
	}
}
