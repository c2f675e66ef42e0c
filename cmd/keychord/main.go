// Package main is the entry point for keychord.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/keychord/internal/app"
	"github.com/dshills/keychord/internal/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type cliOptions struct {
	app.Options

	keys  string
	list  bool
	find  string
	limit int
}

func main() {
	os.Exit(run())
}

func run() int {
	cli := parseFlags()

	application, err := app.New(cli.Options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	switch {
	case cli.keys != "":
		return dispatchKeys(application, cli.keys)
	case cli.list:
		for _, e := range application.Bindings(application.Mode()) {
			fmt.Println(app.FormatBinding(e))
		}
		return 0
	case cli.find != "":
		for _, e := range application.FindBindings(application.Mode(), cli.find, cli.limit) {
			fmt.Println(app.FormatBinding(e))
		}
		return 0
	}

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		if _, ok := <-signals; ok {
			_ = application.Stop()
		}
	}()

	if err := application.Run(term); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func dispatchKeys(application *app.Application, spec string) int {
	results, err := application.DispatchKeys(spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid keys %q: %v\n", spec, err)
		return 1
	}
	for _, r := range results {
		fmt.Printf("%-8s %-7s %s\n", r.Key, r.Mode, r.Outcome)
	}
	return 0
}

func parseFlags() cliOptions {
	var cli cliOptions
	var showVersion bool
	var showHelp bool

	flag.StringVar(&cli.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&cli.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&cli.WorkspacePath, "workspace", "", "Workspace directory with a .keychord config")
	flag.StringVar(&cli.WorkspacePath, "w", "", "Workspace directory (shorthand)")
	flag.StringVar(&cli.Mode, "mode", "normal", "Starting mode (normal, select, insert)")
	flag.StringVar(&cli.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&cli.Watch, "watch", false, "Reload configuration when its files change")
	flag.BoolVar(&cli.IgnoreEnv, "no-env", false, "Ignore KEYCHORD_* environment variables")
	flag.StringVar(&cli.keys, "keys", "", "Dispatch a space-separated key sequence and print each outcome")
	flag.BoolVar(&cli.list, "list", false, "List the bindings of the starting mode")
	flag.StringVar(&cli.find, "find", "", "Fuzzy-search the bindings of the starting mode")
	flag.IntVar(&cli.limit, "limit", 10, "Maximum number of -find results")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "keychord - modal key binding dispatcher\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keychord [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  keychord                      Interactive session, C-q quits\n")
		fmt.Fprintf(os.Stderr, "  keychord -keys \"g g f x\"      Print the outcome of each key\n")
		fmt.Fprintf(os.Stderr, "  keychord -mode select -list   List select mode bindings\n")
		fmt.Fprintf(os.Stderr, "  keychord -find goto           Search bindings\n")
		fmt.Fprintf(os.Stderr, "  keychord -w . -watch          Live-reload workspace bindings\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("keychord %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch cli.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", cli.LogLevel)
		os.Exit(1)
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments: %v\n", flag.Args())
		flag.Usage()
		os.Exit(1)
	}

	return cli
}
