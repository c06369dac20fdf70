package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"themedstyler/config"
	"themedstyler/misc"
	"themedstyler/render"
	"themedstyler/state"
)

// initializeAppContext prepares application context before command execution
// but after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		if env.Rpt, err = env.Cfg.Reporting.Prepare(); err != nil {
			return ctx, fmt.Errorf("unable to prepare debug reporter: %w", err)
		}
		if len(configFile) > 0 {
			if data, err := config.Dump(env.Cfg); err == nil {
				env.Rpt.StoreData(fmt.Sprintf("config/%s", filepath.Base(configFile)), data)
			}
		}
	}
	if env.Log, err = env.Cfg.Logging.Prepare(env.Rpt); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.SessionLog().Debug("Program started",
		zap.Strings("args", os.Args),
		zap.String("ver", misc.GetVersion()),
		zap.String("runtime", runtime.Version()),
		zap.String("hash", misc.GetGitHash()))

	if env.Rpt != nil {
		env.Log.Info("Creating debug report", zap.String("location", env.Rpt.Name()))
	}
	if len(configFile) == 0 {
		env.Log.Info("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.SessionLog().Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}

	env.RestoreStdLog()

	// log is synced now, errors must be reported directly to stderr from now on
	if env.Rpt != nil {
		if er := env.Rpt.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close debug report: %w", er))
		}
	}
	// remove empty panic file if any
	if env.Cfg != nil && len(env.Cfg.Logging.FileLogger.Destination) > 0 {
		debug.SetCrashOutput(nil, debug.CrashOptions{})
		fname := env.Cfg.Logging.PanicLogName()
		if fi, er := os.Stat(fname); er == nil && fi.Size() == 0 {
			if er := os.Remove(fname); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to remove empty panic log file '%s': %w", fname, er))
			}
		}
	}
	return
}

// Subcommands return regular errors, they are logged once here and
// program exits with non zero status.
var errWasHandled bool

// called before appContext is destroyed, so error could still be logged
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.SessionLog().Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).SessionLog().Warn("Unknown command, nothing to do", zap.String("command", name))
}

// flags shared by render commands, every command gets its own instances
func themeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{Name: "themes", Aliases: []string{"t"},
			Usage: "load additional themes from `PATH` (file or directory, .json, .yaml or .css), may be repeated"},
		&cli.StringFlag{Name: "theme", Usage: "activate theme `NAME` instead of configured default"},
	}
}

func elementFlags() []cli.Flag {
	return append(themeFlags(),
		&cli.StringFlag{Name: "tag", Usage: "element `TAG` to style", Required: true},
		&cli.StringSliceFlag{Name: "class", Usage: "element `CLASS`, may be repeated, order matters"},
	)
}

const destinationHelp = `
DESTINATION:
    file or existing directory to write results to, if absent - STDOUT
`

func main() {

	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "themed style engine: projects theme rules and utility classes to CSS and native view properties",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "changes program behavior to help troubleshooting, produces report archive"},
		},
		Commands: []*cli.Command{
			{
				Name:         "css",
				Usage:        "Renders stylesheet for observed tags and classes",
				OnUsageError: usageErrorHandler,
				Action:       render.CSS,
				Flags: append(themeFlags(),
					&cli.StringFlag{Name: "usage", Usage: "read observed usage from `FILE` (JSON: {\"selectors\": [...], \"classes\": [...]})"},
					&cli.StringSliceFlag{Name: "tag", Usage: "observed element `TAG`, may be repeated"},
					&cli.StringSliceFlag{Name: "class", Usage: "observed `CLASS`, may be repeated"},
				),
				ArgsUsage: "[DESTINATION]",
				CustomHelpTemplate: fmt.Sprintf(`%s%s
When DESTINATION is a directory stylesheet is named after the active theme.
`, cli.CommandHelpTemplate, destinationHelp),
			},
			{
				Name:         "native",
				Usage:        "Outputs native view properties of a single element (JSON)",
				OnUsageError: usageErrorHandler,
				Action:       render.Native,
				Flags: append(elementFlags(),
					&cli.FloatFlag{Name: "density", Usage: "display density `FACTOR` (overrides configuration)"},
					&cli.FloatFlag{Name: "scaled-density", Usage: "font scaled density `FACTOR` (overrides configuration)"},
				),
				ArgsUsage:          "[DESTINATION]",
				CustomHelpTemplate: cli.CommandHelpTemplate + destinationHelp,
			},
			{
				Name:         "element",
				Usage:        "Outputs style of a single element for configured target (inline CSS or native JSON)",
				OnUsageError: usageErrorHandler,
				Action:       render.Element,
				Flags: append(elementFlags(),
					&cli.StringFlag{Name: "target",
						Usage: "output `TARGET` (supported targets: " + strings.Join(config.TargetNames(), ", ") + "), overrides configuration"},
					&cli.FloatFlag{Name: "density", Usage: "display density `FACTOR` (overrides configuration)"},
					&cli.FloatFlag{Name: "scaled-density", Usage: "font scaled density `FACTOR` (overrides configuration)"},
				),
				ArgsUsage:          "[DESTINATION]",
				CustomHelpTemplate: cli.CommandHelpTemplate + destinationHelp,
			},
			{
				Name:         "themes",
				Usage:        "Lists available themes",
				OnUsageError: usageErrorHandler,
				Action:       render.Themes,
				Flags: append(themeFlags(),
					&cli.BoolFlag{Name: "tree", Usage: "show inheritance tree"},
				),
				ArgsUsage:          "[DESTINATION]",
				CustomHelpTemplate: cli.CommandHelpTemplate + destinationHelp,
			},
			{
				Name:         "classes",
				Usage:        "Shows properties contributed by classes with the active theme",
				OnUsageError: usageErrorHandler,
				Action:       render.Classes,
				Flags:        themeFlags(),
				ArgsUsage:    "CLASS...",
				CustomHelpTemplate: cli.CommandHelpTemplate + `
CLASS:
    class token as used in markup, variant prefixes are allowed: p-4, md:flex, hover:bg-red-500
`,
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values which is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`, cli.CommandHelpTemplate),
			},
		},
	}

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deferred functions after that
	defer func() {
		stop()
		if err != nil {
			// log is either not set yet (argument parsing) or already closed
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	log := env.SessionLog()
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err   error
		data  []byte
		state string
	)

	out := os.Stdout
	if len(fname) > 0 {
		out, err = os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer out.Close()
	}

	if cmd.Bool("default") {
		state = "default"
		data, err = config.Prepare()
	} else {
		state = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	log.Info("Outputting configuration", zap.String("state", state), zap.String("file", fname))

	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
