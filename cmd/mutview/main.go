// Command mutview previews a chart file in the terminal.
//
// Usage:
//
//	mutview chart.yaml
//	mutview points.csv
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nonnontrivial/mutpoint"
	"github.com/nonnontrivial/mutpoint/internal/chartfile"
	"github.com/nonnontrivial/mutpoint/internal/termview"
)

func main() {
	logFile := flag.String("log", "", "write debug logs to this file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-log file] chart.yaml|points.csv\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		mutpoint.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	c, err := chartfile.Load(path)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", path, err)
	}

	if _, err := tea.NewProgram(termview.New(path, c), tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
