// Package main implements jtypes, a command-line front end to the type
// environment.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
)

// Command flags
var (
	universeFile = flag.String("universe", "", "Universe YAML file (default: builtin declarations)")
	queriesFile  = flag.String("queries", "", "Run the queries in file, one per line")
	watch        = flag.Bool("watch", false, "Re-run the query file whenever it or the universe changes")
	cacheStats   = flag.Bool("cache-stats", false, "Print subtype cache statistics")
	cacheSize    = flag.Int("cache-size", 0, "Subtype cache capacity (default 1024)")
	astFormat    = flag.String("ast-format", "text", "Tree format for parse queries (text or json)")
	version      = flag.Bool("version", false, "Print version")
)

// Version information
const Version = "0.1.0-dev"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "jtypes %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: jtypes [options] <query> <type>...\n")
		fmt.Fprintf(os.Stderr, "       jtypes [options] -queries file\n\n")
		fmt.Fprintf(os.Stderr, "Queries:\n")
		for _, q := range queryList {
			fmt.Fprintf(os.Stderr, "  %-28s %s\n", q.usage, q.help)
		}
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("jtypes version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	conf := &config{
		universe:   *universeFile,
		cacheSize:  *cacheSize,
		cacheStats: *cacheStats,
		astFormat:  *astFormat,
	}

	if *queriesFile != "" {
		if *watch {
			os.Exit(runWatch(conf, *queriesFile))
		}
		os.Exit(runQueryFile(conf, *queriesFile))
	}
	if *watch {
		fmt.Fprintln(os.Stderr, "error: -watch needs -queries")
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: no query")
		fmt.Fprintln(os.Stderr, "usage: jtypes [options] <query> <type>...")
		os.Exit(1)
	}
	os.Exit(runQuery(conf, args))
}

// config carries the flag values the run functions need.
type config struct {
	universe   string
	cacheSize  int
	cacheStats bool
	astFormat  string
}

// runQuery answers the single query given on the command line.
func runQuery(conf *config, args []string) int {
	s, err := newSession(conf, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if err := s.run(args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	s.printStats()
	return 0
}

// runQueryFile answers every query in filename. A failing query is
// reported and the rest still run.
func runQueryFile(conf *config, filename string) int {
	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	s, err := newSession(conf, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	failed := s.runAll(filename, string(data), os.Stderr)
	s.printStats()
	if failed > 0 {
		return 1
	}
	return 0
}
