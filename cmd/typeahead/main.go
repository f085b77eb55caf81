// Copyright 2026 The Typeahead Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the typeahead completion server and CLI application.

Typeahead provides fast prefix-based completion over a caller-supplied
candidate set. It can operate as a MessagePack IPC server for integration
with text editors, or as a CLI application for testing and debugging.

The server mode loads candidate sources from a data directory, builds an
in-memory prefix index once, and answers completion requests from that
immutable index. Data changes are handled by reloading the sources into a
fresh index and swapping it in; live queries never see a half-built tree.

# Usage

Start the server with default settings:

	typeahead

Use a custom data directory and enable debug mode:

	typeahead -data /path/to/sources -d

Run in CLI mode for interactive testing:

	typeahead -c -limit 10 -prmin 2

The data directory holds plain text source files (one entry per line,
optional tab-separated display form) and/or msgpack snapshot files
previously exported from a candidate set. All sources are merged in
filename order on startup and on reload.

# Configuration

Runtime configuration is managed through a TOML file:

	[index]
	case_sensitive = false

	[server]
	max_limit = 64
	min_prefix = 1
	max_prefix = 60
	enable_filter = true
	blocked_prefixes = []

	[cli]
	default_limit = 10

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Completion
requests are processed synchronously with microsecond timing information
included in responses.

Send a completion request:

	{"id": "req1", "p": "hello", "l": 20}

Receive suggestions in discovery order:

	{"id": "req1", "s": [{"w": "hello", "r": 1}, {"w": "help", "r": 2}], "c": 2, "t": 145}

Control requests reload the candidate sources or report engine counters:

	{"id": "ctl1", "action": "reload"}
	{"id": "ctl2", "action": "stats"}

# Completion Engine

The core functionality is provided by the index and suggest packages:
a generic prefix tree with deterministic breadth-first retrieval, wrapped
by a completion engine that handles case folding, input gating and
atomic index swaps.

	completer := suggest.NewCompleter(false, 64)
	completer.RebuildWith(items)
	suggestions := completer.Complete("prefix", 20)

# Command Line Flags

The following flags control application behavior:

	-data string
	    Directory containing candidate source files (default "data/")
	-config string
	    Custom config file path
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Number of suggestions to return (default from config)
	-prmin int
	    Minimum prefix length for suggestions
	-prmax int
	    Maximum prefix length for suggestions
	-no-filter
	    Disable input filtering for debugging

The application automatically resolves data and config paths relative to the
executable location, supporting both development and production deployments.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bvik/typeahead/internal/cli"
	"github.com/bvik/typeahead/internal/utils"
	"github.com/bvik/typeahead/pkg/config"
	"github.com/bvik/typeahead/pkg/dictionary"
	"github.com/bvik/typeahead/pkg/server"
	"github.com/bvik/typeahead/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "typeahead"
	gh      = "https://github.com/bvik/typeahead"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dataDir := flag.String("data", "data/", "Directory containing candidate source files")
	configPathFlag := flag.String("config", "", "Custom config file path")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of suggestions to return")
	minPrefix := flag.Int("prmin", defaults.CLI.DefaultMinLen, "Minimum prefix length for suggestions (1 < n <= prmax)")
	maxPrefix := flag.Int("prmax", defaults.CLI.DefaultMaxLen, "Maximum prefix length for suggestions")
	noFilter := flag.Bool("no-filter", false, "Disable input filtering (DBG only) - shows all raw entries (numbers, symbols, etc)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	appConfig, configPath, err := config.LoadConfigWithPriority(*configPathFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(configPath))

	resolvedDataDir, err := pathResolver.GetDataDir(*dataDir)
	if err != nil {
		log.Fatalf("Failed to resolve data dir: (%v)", err)
	}
	log.Debugf("Using data dir at: %s", resolvedDataDir)

	completer := suggest.NewCompleter(appConfig.Index.CaseSensitive, appConfig.Server.MaxLimit)
	completer.SetNoFilter(*noFilter || !appConfig.Server.EnableFilter)
	completer.SetBlockedPrefixes(appConfig.Server.BlockedPrefixes)

	loader := dictionary.NewLoader(resolvedDataDir)
	entries, err := loader.Load()
	if err != nil {
		log.Warnf("No candidate sources loaded: %v. Starting with an empty index...", err)
	} else {
		items := make([]suggest.Suggestion, len(entries))
		for i, e := range entries {
			items[i] = suggest.Suggestion{Text: e.Text, Display: e.Display}
		}
		completer.RebuildWith(items)
		log.Debugf("Indexed %d entries", completer.Len())
	}

	// CLI is mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"minPrefix", *minPrefix,
			"maxPrefix", *maxPrefix,
			"limit", *limit,
			"noFilter", *noFilter)

		inputHandler := cli.NewInputHandler(completer, *minPrefix, *maxPrefix, *limit, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(completer, loader, appConfig)

	showStartupInfo(resolvedDataDir, completer.Len())

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// printVersion displays the version banner with lipgloss styling.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ Typeahead ] Serves really fast prefix completions!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dataDir string, indexed int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println(" Typeahead ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("indexed entries: %s", utils.FormatWithCommas(indexed))
	log.Infof("data dir: ( %s )", dataDir)
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
