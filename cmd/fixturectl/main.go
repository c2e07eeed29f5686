// Command fixturectl verifies and manages the bundled mth5 test-data
// package: run the integrity suite, extract datasets, clear the
// extraction cache, and list bundled archives.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"

	flag "github.com/spf13/pflag"

	mth5testdata "github.com/IAGA-DVI-DataStandards/mth5-test-data"
	"github.com/IAGA-DVI-DataStandards/mth5-test-data/internal/expect"
	"github.com/IAGA-DVI-DataStandards/mth5-test-data/internal/fixture"
	"github.com/IAGA-DVI-DataStandards/mth5-test-data/internal/log"
	"github.com/IAGA-DVI-DataStandards/mth5-test-data/internal/verify"
)

const usageText = `Usage: fixturectl <command> [flags]

Commands:
  verify    Run the package integrity suite
  extract   Extract one or all bundled datasets
  clean     Remove extraction targets from the cache
  list      List bundled archives
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'fixturectl <command> --help' for more information on a command.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	switch args[0] {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	case "verify":
		return runVerify(args[1:])
	case "extract":
		return runExtract(args[1:])
	case "clean":
		return runClean(args[1:])
	case "list":
		return runList(args[1:])
	case "version":
		printVersion()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "fixturectl: unknown command %q\n\n%s", args[0], usageText)
		return 2
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("fixturectl %s\n", version)
}

// rootFS resolves the data tree under test: the embedded tree by
// default, or a directory given with --root.
func rootFS(root string) fs.FS {
	if root == "" {
		return mth5testdata.Root()
	}
	return os.DirFS(root)
}

// runVerify implements the "verify" subcommand.
func runVerify(args []string) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	var (
		root       string
		expectPath string
		format     string
		cacheDir   string
		noColor    bool
		verbose    bool
	)
	fs.StringVar(&root, "root", "", "data tree to verify (default: the embedded tree)")
	fs.StringVar(&expectPath, "expect", "", "expectations yaml (default: built-in)")
	fs.StringVar(&format, "format", "text", "report format: text or json")
	fs.StringVar(&cacheDir, "cache", "", "extraction cache directory (default: a throwaway temp dir)")
	fs.BoolVar(&noColor, "no-color", false, "disable color in text output")
	fs.BoolVarP(&verbose, "verbose", "v", false, "list passing checks and log progress")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	doc, err := expect.Load(expectPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fixturectl: %v\n", err)
		return 2
	}

	// Extraction during verification is a side effect; default to an
	// isolated per-run cache so one run cannot mask what the next one
	// should catch.
	keepCache := cacheDir != ""
	if !keepCache {
		cacheDir, err = os.MkdirTemp("", "fixturectl-verify-")
		if err != nil {
			fmt.Fprintf(os.Stderr, "fixturectl: create verify cache: %v\n", err)
			return 2
		}
		defer func() { _ = os.RemoveAll(cacheDir) }()
	}

	logger := &log.Logger{Enabled: verbose, W: os.Stderr}
	data := rootFS(root)
	checker := &verify.Checker{
		Data:   data,
		Store:  &fixture.Store{Source: data, CacheDir: cacheDir, Log: logger},
		Expect: doc,
		Log:    logger,
	}
	report := checker.Run()

	var formatter verify.Formatter
	switch format {
	case "text":
		formatter = &verify.TextFormatter{Color: !noColor, Verbose: verbose}
	case "json":
		formatter = &verify.JSONFormatter{}
	default:
		fmt.Fprintf(os.Stderr, "fixturectl: unknown format %q\n", format)
		return 2
	}
	if err := formatter.Format(os.Stdout, report); err != nil {
		fmt.Fprintf(os.Stderr, "fixturectl: %v\n", err)
		return 2
	}
	if !report.OK() {
		return 1
	}
	return 0
}

// runExtract implements the "extract" subcommand.
func runExtract(args []string) int {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	var (
		key      string
		all      bool
		root     string
		cacheDir string
		verbose  bool
	)
	fs.StringVar(&key, "key", "", "instrument key to extract")
	fs.BoolVar(&all, "all", false, "extract every bundled dataset")
	fs.StringVar(&root, "root", "", "data tree to extract from (default: the embedded tree)")
	fs.StringVar(&cacheDir, "cache", "", "extraction cache directory (default: the user cache)")
	fs.BoolVarP(&verbose, "verbose", "v", false, "log extraction progress")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if (key == "" && !all) || (key != "" && all) {
		fmt.Fprintln(os.Stderr, "fixturectl: extract requires exactly one of --key or --all")
		return 2
	}

	store, code := newStore(root, cacheDir, verbose)
	if code != 0 {
		return code
	}

	keys := []fixture.Key{fixture.Key(key)}
	if all {
		keys = fixture.Keys()
	}
	for _, k := range keys {
		path, err := store.Path(k)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fixturectl: %v\n", err)
			return 2
		}
		fmt.Printf("%s\t%s\n", k, path)
	}
	return 0
}

// runClean implements the "clean" subcommand.
func runClean(args []string) int {
	fs := flag.NewFlagSet("clean", flag.ContinueOnError)
	var cacheDir string
	fs.StringVar(&cacheDir, "cache", "", "extraction cache directory (default: the user cache)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	store, code := newStore("", cacheDir, false)
	if code != 0 {
		return code
	}
	if err := store.ClearAll(); err != nil {
		fmt.Fprintf(os.Stderr, "fixturectl: %v\n", err)
		return 2
	}
	fmt.Printf("cleared %s\n", store.CacheDir)
	return 0
}

// runList implements the "list" subcommand.
func runList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	var root string
	fs.StringVar(&root, "root", "", "data tree to list (default: the embedded tree)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	data := rootFS(root)
	for _, arc := range fixture.Catalog() {
		info, err := fixture.Stat(data, arc.ZipPath)
		if err != nil {
			fmt.Printf("%-12s %s (%v)\n", arc.Key, arc.ZipPath, err)
			continue
		}
		fmt.Printf("%-12s %s %d bytes, %d entries\n", arc.Key, arc.ZipPath, info.Size, info.Entries)
	}
	return 0
}

// newStore builds a store over the chosen data tree and cache
// directory, defaulting the cache to the per-user location.
func newStore(root string, cacheDir string, verbose bool) (*fixture.Store, int) {
	if cacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "fixturectl: resolve user cache directory: %v\n", err)
			return nil, 2
		}
		cacheDir = filepath.Join(base, "mth5-test-data")
	}
	return &fixture.Store{
		Source:   rootFS(root),
		CacheDir: cacheDir,
		Log:      &log.Logger{Enabled: verbose, W: os.Stderr},
	}, 0
}
