// Package style holds the scalar property value model shared by every stage
// of the resolution pipeline.
package style

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"themedstyler/ordered"
)

// Kind of the scalar stored in Value.
type Kind uint8

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindNull
	// KindRaw is any other JSON (object or array) kept verbatim.
	KindRaw
)

// Value is a JSON scalar property value.
type Value struct {
	kind Kind
	str  string
	num  float64
	flag bool
}

func String(s string) Value  { return Value{kind: KindString, str: s} }
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }
func Int(n int) Value        { return Value{kind: KindNumber, num: float64(n)} }
func Bool(b bool) Value      { return Value{kind: KindBool, flag: b} }
func Null() Value            { return Value{kind: KindNull} }
func Raw(text string) Value  { return Value{kind: KindRaw, str: text} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsString() bool { return v.kind == KindString }

func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == KindNumber
}

func (v Value) AsBool() (bool, bool) {
	return v.flag, v.kind == KindBool
}

// Text returns string content for strings and JSON text for everything else.
func (v Value) Text() string {
	switch v.kind {
	case KindString, KindRaw:
		return v.str
	case KindNumber:
		return FormatNumber(v.num)
	case KindBool:
		return strconv.FormatBool(v.flag)
	default:
		return "null"
	}
}

func (v Value) String() string {
	if v.kind == KindString {
		return strconv.Quote(v.str)
	}
	return v.Text()
}

// Equal compares kind and content.
func (v Value) Equal(o Value) bool {
	return v == o
}

// FormatNumber prints integral values without fraction.
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// ParseNumber is strconv.ParseFloat restricted to finite values.
func ParseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(f) {
		return 0, false
	}
	return f, true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsFinite reports false for NaN and infinite numbers, true for other kinds.
func (v Value) IsFinite() bool {
	return v.kind != KindNumber || isFinite(v.num)
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindRaw:
		return []byte(v.str), nil
	case KindNumber:
		if !isFinite(v.num) {
			return nil, fmt.Errorf("unsupported number %s", FormatNumber(v.num))
		}
		return []byte(FormatNumber(v.num)), nil
	default:
		return []byte(v.Text()), nil
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty JSON value")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = String(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Bool(b)
	case 'n':
		*v = Null()
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*v = Raw(buf.String())
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = Number(n)
	}
	return nil
}

func (v Value) MarshalYAML() (any, error) {
	switch v.kind {
	case KindString:
		return v.str, nil
	case KindNumber:
		return v.num, nil
	case KindBool:
		return v.flag, nil
	case KindRaw:
		var out any
		if err := json.Unmarshal([]byte(v.str), &out); err != nil {
			return nil, err
		}
		return out, nil
	default:
		return nil, nil
	}
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		var out any
		if err := node.Decode(&out); err != nil {
			return err
		}
		data, err := json.Marshal(out)
		if err != nil {
			return fmt.Errorf("line %d: unsupported property value: %w", node.Line, err)
		}
		*v = Raw(string(data))
		return nil
	}
	switch node.ShortTag() {
	case "!!int", "!!float":
		n, ok := ParseNumber(strings.ReplaceAll(node.Value, "_", ""))
		if !ok {
			// yaml accepts forms (0x, 0o) strconv float parsing does not
			var i int64
			if derr := node.Decode(&i); derr != nil {
				return fmt.Errorf("line %d: bad number %q: %w", node.Line, node.Value, derr)
			}
			n = float64(i)
		}
		*v = Number(n)
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		*v = Bool(b)
	case "!!null":
		*v = Null()
	default:
		*v = String(node.Value)
	}
	return nil
}

// Props is an ordered property name to value map.
type Props = ordered.Map[Value]

func NewProps() *Props {
	return ordered.NewMap[Value]()
}

// PropsOf builds property map from alternating name, value pairs.
func PropsOf(kv ...any) *Props {
	p := NewProps()
	for i := 0; i+1 < len(kv); i += 2 {
		name := kv[i].(string)
		switch v := kv[i+1].(type) {
		case Value:
			p.Set(name, v)
		case string:
			p.Set(name, String(v))
		case int:
			p.Set(name, Int(v))
		case float64:
			p.Set(name, Number(v))
		case bool:
			p.Set(name, Bool(v))
		default:
			panic(fmt.Sprintf("unsupported property value type %T", v))
		}
	}
	return p
}
