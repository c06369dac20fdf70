package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"themedstyler/bridge"
	"themedstyler/config"
	"themedstyler/web"
)

// CSS renders stylesheet of the active theme for observed usage: tags and
// classes from command line and optional usage snapshot file.
func CSS(ctx context.Context, cmd *cli.Command) error {
	ss, err := prepare(ctx, cmd, "css")
	if err != nil {
		return err
	}

	if fname := cmd.String("usage"); len(fname) > 0 {
		data, err := os.ReadFile(fname)
		if err != nil {
			return fmt.Errorf("unable to read usage snapshot: %w", err)
		}
		ss.env.Rpt.Store(filepath.ToSlash(filepath.Join("input", filepath.Base(fname))), fname)
		bridge.New(ss.log).ParseUsage(string(data)).Register(ss.s)
	}
	ss.s.RegisterTags(cmd.StringSlice("tag")...)
	for _, c := range cmd.StringSlice("class") {
		ss.s.RegisterClasses(strings.TrimPrefix(c, "."))
	}

	sheet := web.NewProjector(ss.log).Stylesheet(ss.s)
	ss.log.Debug("Stylesheet rendered",
		zap.String("theme", ss.activeTheme()),
		zap.Int("tags", ss.s.UsedTags.Len()),
		zap.Int("classes", ss.s.UsedClasses.Len()))

	return ss.output(ss.destination(cmd), config.CleanFileName(ss.activeTheme())+".css", []byte(sheet))
}

// Element prints style of a single element for configured target: inline
// CSS text for web, property map JSON for native. --target overrides
// configuration.
func Element(ctx context.Context, cmd *cli.Command) error {
	tag := cmd.String("tag")
	if len(tag) == 0 {
		return errMissingTag
	}
	ss, err := prepare(ctx, cmd, "element")
	if err != nil {
		return err
	}

	target := ss.env.Target()
	if cmd.IsSet("target") {
		if target, err = config.ParseTarget(cmd.String("target")); err != nil {
			return fmt.Errorf("unable to select output target: %w", err)
		}
	}

	classes := cmd.StringSlice("class")
	if target == config.TargetNative {
		data, err := ss.nativeStyles(tag, classes)
		if err != nil {
			return err
		}
		return ss.output(ss.destination(cmd), config.CleanFileName(tag)+".json", data)
	}
	text := web.NewProjector(ss.log).ElementCSS(ss.s, tag, classes)
	return ss.output(ss.destination(cmd), config.CleanFileName(tag)+".txt", []byte(text+"\n"))
}
