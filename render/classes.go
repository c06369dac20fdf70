package render

import (
	"context"
	"errors"
	"slices"

	cli "github.com/urfave/cli/v3"

	"themedstyler/theme"
	"themedstyler/utils/debug"
	"themedstyler/web"
)

// Classes shows what properties class tokens contribute with the active
// theme: theme rule, utility expansion or nothing.
func Classes(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return errors.New("no classes have been specified")
	}
	ss, err := prepare(ctx, cmd, "classes")
	if err != nil {
		return err
	}
	text := expandClasses(ss.s.Resolve(), cmd.Args().Slice())
	return ss.output("", "classes.txt", []byte(text))
}

func expandClasses(r *theme.Resolved, classes []string) string {
	classes = slices.Clone(classes)
	slices.SortFunc(classes, naturalOrder)
	classes = slices.Compact(classes)

	tw := debug.NewTreeWriter()
	for _, class := range classes {
		ref := theme.ParseClass(class)
		sel := web.WrapMedia(ref.Selector(), ref.Breakpoint, r.Breakpoints)
		props, ok := r.ClassProps(class)
		if !ok {
			tw.Line(0, "%s (none)", sel)
			continue
		}
		tw.Props(0, sel, props)
	}
	return tw.String()
}
