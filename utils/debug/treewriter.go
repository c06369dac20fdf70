// Package debug renders internal structures as indented text for logs and
// debug reports.
package debug

import (
	"fmt"
	"strconv"
	"strings"

	"themedstyler/ordered"
	"themedstyler/style"
	"themedstyler/theme"
)

type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{w: &strings.Builder{}}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes "label: value" with value quoted unless empty.
func (tw TreeWriter) TextBlock(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(quote(value))
	tw.w.WriteByte('\n')
}

// Props writes label followed by one property per line, values in their
// JSON form.
func (tw TreeWriter) Props(depth int, label string, props *style.Props) {
	tw.Line(depth, "%s (%d)", label, props.Len())
	for name, v := range props.All() {
		tw.Line(depth+1, "%s = %s", name, v)
	}
}

// Table writes label followed by key value lines in map order.
func (tw TreeWriter) Table(depth int, label string, m *ordered.Map[string]) {
	tw.Line(depth, "%s (%d)", label, m.Len())
	for k, v := range m.All() {
		tw.TextBlock(depth+1, k, v)
	}
}

// Resolved dumps effective theme content.
func Resolved(r *theme.Resolved) string {
	tw := NewTreeWriter()
	tw.Line(0, "chain: %s", strings.Join(r.Chain, " -> "))
	tw.Table(0, "variables", r.Variables)
	tw.Table(0, "breakpoints", r.Breakpoints)
	tw.Line(0, "selectors (%d)", r.Selectors.Len())
	for sel, props := range r.Selectors.All() {
		tw.Props(1, sel, props)
	}
	return tw.String()
}

func quote(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
