package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"github.com/xlab/treeprint"

	"themedstyler/config"
	"themedstyler/css"
	"themedstyler/theme"
)

// Themes lists loaded themes, either as a table or as inheritance forest.
func Themes(ctx context.Context, cmd *cli.Command) error {
	ss, err := prepare(ctx, cmd, "themes")
	if err != nil {
		return err
	}

	dst := ss.destination(cmd)
	var sb strings.Builder
	if cmd.Bool("tree") {
		writeTree(&sb, ss.s)
	} else {
		writeList(&sb, ss.s, len(dst) == 0 && config.EnableColorOutput(os.Stdout))
	}
	return ss.output(dst, "themes.txt", []byte(sb.String()))
}

func naturalOrder(a, b string) int {
	switch {
	case natural.Less(a, b):
		return -1
	case natural.Less(b, a):
		return 1
	}
	return 0
}

func sortedKeys(s *theme.State) []string {
	keys := s.Themes.Keys()
	slices.SortFunc(keys, naturalOrder)
	return keys
}

// writeList outputs one line per theme: current mark, key, display name and
// parent. With color swatches of color valued variables follow.
func writeList(w io.Writer, s *theme.State, color bool) {
	keys := sortedKeys(s)
	if len(keys) == 0 {
		fmt.Fprintln(w, "no themes loaded")
		return
	}

	current := ""
	if chain := s.Chain(); len(chain) > 0 {
		current = chain[0]
	}
	keyWidth, nameWidth := 0, 0
	for _, key := range keys {
		e, _ := s.Themes.Get(key)
		keyWidth = max(keyWidth, len(key))
		nameWidth = max(nameWidth, len(e.DisplayName(key)))
	}

	for _, key := range keys {
		e, _ := s.Themes.Get(key)
		mark := " "
		if key == current {
			mark = "*"
		}
		parent := e.Inherits
		if len(parent) == 0 {
			parent = "-"
		}
		fmt.Fprintf(w, "%s %-*s  %-*s  %s\n", mark, keyWidth, key, nameWidth, e.DisplayName(key), parent)
		if color {
			if sw := swatches(e); len(sw) > 0 {
				fmt.Fprintf(w, "    %s\n", sw)
			}
		}
	}
}

// swatches renders color variables of a theme entry.
func swatches(e *theme.Entry) string {
	var parts []string
	for name, value := range e.Variables.All() {
		hex, ok := colorOf(value, e)
		if !ok {
			continue
		}
		chip := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
		parts = append(parts, chip+" "+name)
	}
	return strings.Join(parts, "  ")
}

// colorOf returns opaque #rrggbb when value resolves to a color.
func colorOf(value string, e *theme.Entry) (string, bool) {
	resolved := css.Resolve(value, e.Variables, "")
	if !strings.HasPrefix(resolved, "#") {
		return "", false
	}
	c, err := css.ParseHex(resolved)
	if err != nil {
		return "", false
	}
	c.A = 1
	return c.Hex(), true
}

// writeTree outputs inheritance forest. Themes with missing parents are
// roots, themes caught in a cycle are attached at the top level once.
func writeTree(w io.Writer, s *theme.State) {
	children := make(map[string][]string)
	var roots []string
	for _, key := range sortedKeys(s) {
		e, _ := s.Themes.Get(key)
		if e.Inherits == "" || e.Inherits == key || !s.Themes.Has(e.Inherits) {
			roots = append(roots, key)
			continue
		}
		children[e.Inherits] = append(children[e.Inherits], key)
	}

	label := func(key string) string {
		e, _ := s.Themes.Get(key)
		if name := e.DisplayName(key); name != key {
			return fmt.Sprintf("%s (%s)", key, name)
		}
		return key
	}

	tree := treeprint.NewWithRoot(fmt.Sprintf("themes (%d)", s.Themes.Len()))
	visited := make(map[string]bool)
	var grow func(branch treeprint.Tree, key string)
	grow = func(branch treeprint.Tree, key string) {
		visited[key] = true
		for _, child := range children[key] {
			if !visited[child] {
				grow(branch.AddBranch(label(child)), child)
			}
		}
	}
	for _, key := range roots {
		grow(tree.AddBranch(label(key)), key)
	}
	for _, key := range sortedKeys(s) {
		if !visited[key] {
			grow(tree.AddMetaBranch("cycle", label(key)), key)
		}
	}
	fmt.Fprint(w, tree.String())
}
