package state

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"themedstyler/theme"
)

func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start:   time.Now(),
		Session: uuid.New(),
	}
}

// RenderState loads configured theme files followed by extra paths and
// prepares render state: configured densities, configured default theme
// when it was loaded. Name overrides current theme when not empty. Themes
// which could not be loaded are reported in the returned error while
// everything else is still usable.
func (e *LocalEnv) RenderState(name string, extra ...string) (*theme.State, error) {
	log := e.SessionLog()

	var paths []string
	if e.Cfg != nil {
		paths = append(paths, e.Cfg.Render.Themes...)
	}
	paths = append(paths, extra...)

	for _, p := range paths {
		if err := e.Rpt.StoreCopy(filepath.Join("themes", filepath.Base(p)), p); err != nil {
			log.Debug("Unable to store theme in report", zap.String("path", p), zap.Error(err))
		}
	}

	bundle, errs := theme.NewLoader(log).Load(paths...)
	s := bundle.State()

	if e.Cfg != nil {
		if d := e.Cfg.Render.DisplayDensity; d > 0 {
			s.DisplayDensity = d
		}
		if d := e.Cfg.Render.ScaledDensity; d > 0 {
			s.ScaledDensity = d
		}
		if def := e.Cfg.Render.DefaultTheme; def != "" {
			if s.Themes.Has(def) {
				s.SetDefaultTheme(def)
			} else {
				log.Warn("Configured default theme was not loaded", zap.String("theme", def))
			}
		}
	}
	if name != "" {
		if err := s.SetTheme(name); err != nil {
			return nil, fmt.Errorf("unable to activate theme: %w", err)
		}
	}
	log.Debug("Render state prepared",
		zap.Strings("themes", s.Themes.Keys()),
		zap.Strings("chain", s.Chain()),
		zap.Float64("density", s.DisplayDensity),
		zap.Float64("scaled", s.ScaledDensity))
	return s, errs
}
