// Package css resolves variable references and color expressions in
// property values and reads theme rule sets from CSS text.
package css

import "strings"

// Vars is a flat variable table. *ordered.Map[string] satisfies it.
type Vars interface {
	Get(name string) (string, bool)
}

// VarRef is a single var() occurrence: Start and End delimit the whole
// expression in the source string.
type VarRef struct {
	Start int
	End   int
	Name  string
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '.' || c == '-'
}

// ParseVarReferences finds "var(name)" and "var(--name)" expressions,
// whitespace inside parentheses allowed. Incomplete expressions are ignored.
func ParseVarReferences(input string) []VarRef {
	var refs []VarRef
	for i := 0; i < len(input); {
		start := strings.Index(input[i:], "var(")
		if start < 0 {
			break
		}
		start += i
		j := start + 4
		for j < len(input) && isSpace(input[j]) {
			j++
		}
		if strings.HasPrefix(input[j:], "--") {
			j += 2
		}
		nameStart := j
		for j < len(input) && isNameByte(input[j]) {
			j++
		}
		nameEnd := j
		for j < len(input) && isSpace(input[j]) {
			j++
		}
		if nameEnd > nameStart && j < len(input) && input[j] == ')' {
			refs = append(refs, VarRef{Start: start, End: j + 1, Name: input[nameStart:nameEnd]})
			i = j + 1
			continue
		}
		i = start + 1
	}
	return refs
}

// ResolveVars substitutes known var() references and then, if the result is
// a "$name" reference to a known variable, replaces it entirely. Unknown
// references are left as written.
func ResolveVars(input string, vars Vars) string {
	out := input
	if refs := ParseVarReferences(input); len(refs) > 0 {
		// right to left keeps earlier offsets valid
		for i := len(refs) - 1; i >= 0; i-- {
			r := refs[i]
			if val, ok := vars.Get(r.Name); ok {
				out = out[:r.Start] + val + out[r.End:]
			}
		}
	}
	if name, ok := strings.CutPrefix(out, "$"); ok {
		if val, ok := vars.Get(name); ok {
			return val
		}
	}
	return out
}

// Resolve is ResolveVars followed by ResolveColor.
func Resolve(value string, vars Vars, currentColor string) string {
	return ResolveColor(ResolveVars(value, vars), currentColor)
}
