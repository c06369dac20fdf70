// Package state defines shared program state.
package state

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"themedstyler/config"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// identifies one program run in logs and debug report
	Session uuid.UUID

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

// Target returns configured render target, web when there is no
// configuration.
func (e *LocalEnv) Target() config.Target {
	if e.Cfg == nil {
		return config.TargetWeb
	}
	return e.Cfg.Render.Target
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// SessionLog returns program logger tagged with session id, never nil.
func (e *LocalEnv) SessionLog() *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log.With(zap.Stringer("session", e.Session))
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
