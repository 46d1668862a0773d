package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/oklog/run"
	"github.com/sirupsen/logrus"

	"github.com/bartolsthoorn/gocopt/cmd/copt/commands"
	"github.com/bartolsthoorn/gocopt/internal/log"
	loglogrus "github.com/bartolsthoorn/gocopt/internal/log/logrus"
)

const (
	// Version is the application version (set via ldflags).
	Version = "dev"
)

// Run runs the main application.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	app := kingpin.New("copt", "COPT solver command line.")
	app.DefaultEnvars()
	rootCmd := commands.NewRootCommand(app)

	// Setup commands (registers flags).
	solveCmd := commands.NewSolveCommand(rootCmd, app)
	convertCmd := commands.NewConvertCommand(rootCmd, app)
	paramsCmd := commands.NewParamsCommand(rootCmd, app)
	bannerCmd := commands.NewBannerCommand(rootCmd, app)
	historyCmd := commands.NewHistoryCommand(rootCmd, app)

	cmds := map[string]commands.Command{
		solveCmd.Name():   solveCmd,
		convertCmd.Name(): convertCmd,
		paramsCmd.Name():  paramsCmd,
		bannerCmd.Name():  bannerCmd,
		historyCmd.Name(): historyCmd,
	}

	// Parse command.
	cmdName, err := app.Parse(args[1:])
	if err != nil {
		return fmt.Errorf("invalid command configuration: %w", err)
	}

	// Set standard input/output.
	rootCmd.Stdin = stdin
	rootCmd.Stdout = stdout
	rootCmd.Stderr = stderr

	// Table output stays clean unless debugging.
	printerCommands := map[string]bool{
		"params":  true,
		"history": true,
	}
	if printerCommands[cmdName] && !rootCmd.Debug {
		rootCmd.NoLog = true
	}

	// Set logger.
	rootCmd.Logger = getLogger(*rootCmd)

	signalCtx, signalCancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer signalCancel()

	return runCommand(ctx, signalCtx, rootCmd.Logger, cmdName, cmds[cmdName])
}

// runCommand runs cmd until it returns. When stop is done first the command's
// context is cancelled, which interrupts a running solve. The command's error
// is returned in both cases.
func runCommand(ctx, stop context.Context, logger log.Logger, name string, cmd commands.Command) error {
	var g run.Group

	// OS signals.
	{
		stop, cancel := context.WithCancel(stop)
		defer cancel()

		g.Add(
			func() error {
				<-stop.Done()
				logger.Debugf("Termination signal received")
				return nil
			},
			func(_ error) {
				cancel()
			},
		)
	}

	// Execute command.
	var cmdErr error
	{
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		g.Add(
			func() error {
				if err := cmd.Run(ctx); err != nil {
					cmdErr = fmt.Errorf("%q command failed: %w", name, err)
				}
				return cmdErr
			},
			func(_ error) {
				cancel()
			},
		)
	}

	if err := g.Run(); err != nil {
		return err
	}
	return cmdErr
}

// getLogger returns the application logger.
func getLogger(config commands.RootCommand) log.Logger {
	if config.NoLog {
		return log.Noop
	}

	logrusLog := logrus.New()
	logrusLog.Out = config.Stderr // Keep stdout for results.
	logrusLogEntry := logrus.NewEntry(logrusLog)

	if config.Debug {
		logrusLogEntry.Logger.SetLevel(logrus.DebugLevel)
	}

	switch config.LoggerType {
	case commands.LoggerTypeDefault:
		logrusLogEntry.Logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:   !config.NoColor,
			DisableColors: config.NoColor,
		})
	case commands.LoggerTypeJSON:
		logrusLogEntry.Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logger := loglogrus.NewLogrus(logrusLogEntry).WithValues(log.Kv{
		"version": Version,
	})

	logger.Debugf("Debug level is enabled")

	return logger
}

func main() {
	ctx := context.Background()
	err := Run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
