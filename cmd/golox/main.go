package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"golox/internal"
	"golox/internal/config"
)

// Exit codes, following sysexits.h
const (
	exitOK       = 0
	exitUsage    = 64
	exitDataErr  = 65
	exitSoftware = 70
	exitIOErr    = 74
	exitConfig   = 78
)

var (
	configFlag  = flag.String("config", "", "YAML config file")
	tokensFlag  = flag.Bool("tokens", false, "Print the token stream instead of executing")
	astFlag     = flag.Bool("ast", false, "Print the parsed tree instead of executing")
	watchFlag   = flag.Bool("watch", false, "Re-run the script every time it is written")
	verboseFlag = flag.Bool("v", false, "Debug logging")
	traceFlag   = flag.Bool("vv", false, "Trace logging")
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: golox [flags] [script]")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load(config.Resolve(*configFlag))
	if err != nil {
		fmt.Fprintln(os.Stderr, color.Red(err.Error()))
		os.Exit(exitConfig)
	}
	setupLogging(cfg)
	setupColor(cfg, os.Stderr)

	args := flag.Args()
	switch {
	case len(args) > 1:
		usage()
		os.Exit(exitUsage)
	case len(args) == 1 && *watchFlag:
		if err := watchFile(args[0], func() int { return runFile(args[0]) }); err != nil {
			logrus.WithError(err).Error("watch failed")
			os.Exit(exitIOErr)
		}
	case len(args) == 1:
		os.Exit(runFile(args[0]))
	case *watchFlag:
		logrus.Error("-watch needs a script")
		os.Exit(exitUsage)
	default:
		in := internal.NewInterpreter(internal.WriterPrinter(os.Stdout), internal.WithLogger(logrus.StandardLogger()))
		os.Exit(runPrompt(cfg, in))
	}
}

func setupLogging(cfg *config.Config) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	level := cfg.Level()
	if *verboseFlag {
		level = logrus.DebugLevel
	}
	if *traceFlag {
		level = logrus.TraceLevel
	}
	logrus.SetLevel(level)
}

func setupColor(cfg *config.Config, f *os.File) {
	switch cfg.Color {
	case config.ColorAlways:
		color.Enable()
	case config.ColorNever:
		color.Disable()
	default:
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			color.Enable()
		} else {
			color.Disable()
		}
	}
}

func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Error("cannot read script")
		return exitIOErr
	}
	logrus.WithField("path", path).Debug("running script")

	switch {
	case *tokensFlag:
		tokens, err := internal.Tokens(string(source))
		for _, tk := range tokens {
			fmt.Println(tk)
		}
		report(os.Stderr, err)
		return exitCode(err)
	case *astFlag:
		tree, err := internal.Tree(string(source))
		fmt.Print(tree)
		report(os.Stderr, err)
		return exitCode(err)
	}

	in := internal.NewInterpreter(internal.WriterPrinter(os.Stdout), internal.WithLogger(logrus.StandardLogger()))
	err = in.Run(string(source))
	report(os.Stderr, err)
	return exitCode(err)
}

// exitCode maps a run result to the process exit status
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var static internal.ErrorList
	if errors.As(err, &static) && static.Static() {
		return exitDataErr
	}
	return exitSoftware
}

// report prints every diagnostic carried by err, one per line
func report(w io.Writer, err error) {
	if err == nil {
		return
	}
	var list internal.ErrorList
	if errors.As(err, &list) {
		for _, e := range list {
			fmt.Fprintln(w, color.Red(e.Error()))
		}
		return
	}
	fmt.Fprintln(w, color.Red(err.Error()))
}
