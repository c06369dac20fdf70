// Package render implements program commands: themes are loaded according
// to configuration and command line, projected for the requested target and
// results are written to files or STDOUT.
package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"themedstyler/state"
	"themedstyler/theme"
	"themedstyler/utils/debug"
)

// session is a single command run.
type session struct {
	env *state.LocalEnv
	log *zap.Logger
	s   *theme.State
	// STDOUT replacement for tests
	stdout io.Writer
}

// prepare builds render state out of configured themes, --themes paths and
// --theme selection. Command line densities override configuration.
// Themes which failed to load are reported and skipped.
func prepare(ctx context.Context, cmd *cli.Command, name string) (*session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	env := state.EnvFromContext(ctx)
	log := env.SessionLog().Named(name)

	s, err := env.RenderState(cmd.String("theme"), cmd.StringSlice("themes")...)
	if s == nil {
		return nil, err
	}
	if err != nil {
		log.Warn("Some themes could not be loaded", zap.Error(err))
	}

	if cmd.IsSet("density") {
		if s.DisplayDensity = cmd.Float("density"); s.DisplayDensity <= 0 {
			return nil, fmt.Errorf("display density must be positive, got %v", s.DisplayDensity)
		}
	}
	if cmd.IsSet("scaled-density") {
		if s.ScaledDensity = cmd.Float("scaled-density"); s.ScaledDensity <= 0 {
			return nil, fmt.Errorf("scaled density must be positive, got %v", s.ScaledDensity)
		}
	}

	if env.Rpt != nil {
		env.Rpt.StoreData("output/resolved.txt", []byte(debug.Resolved(s.Resolve())))
	}
	return &session{env: env, log: log, s: s, stdout: os.Stdout}, nil
}

// destination returns the only positional argument, if any.
func (ss *session) destination(cmd *cli.Command) string {
	if cmd.Args().Len() > 1 {
		ss.log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}
	return cmd.Args().Get(0)
}

// activeTheme returns name of the theme rendering starts from.
func (ss *session) activeTheme() string {
	if chain := ss.s.Chain(); len(chain) > 0 {
		return chain[0]
	}
	return "default"
}

// output writes data to STDOUT when destination is empty, into a file
// called name when destination is an existing directory and to destination
// itself otherwise. Results are kept in debug report.
func (ss *session) output(dst, name string, data []byte) error {
	ss.env.Rpt.StoreData(filepath.ToSlash(filepath.Join("output", name)), data)

	if len(dst) == 0 {
		if _, err := ss.stdout.Write(data); err != nil {
			return fmt.Errorf("unable to write results: %w", err)
		}
		return nil
	}

	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		dst = filepath.Join(dst, name)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("unable to access destination: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("unable to write results: %w", err)
	}
	ss.log.Info("Results written", zap.String("file", dst), zap.Int("bytes", len(data)))
	return nil
}
