// chessboard prints a chess board and answers square lookups read from stdin.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessboard-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessboard version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	board, err := cfg.StartingBoard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := runSession(cfg, board, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessboard [options]\n\n")
	fmt.Fprintf(os.Stderr, "Prints a chess board, then reads squares such as E2 from stdin\n")
	fmt.Fprintf(os.Stderr, "and reports what stands on each. Enter quit or exit to stop.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nBoard formats (-W):\n")
	fmt.Fprintf(os.Stderr, "  text       Boxed grid (default)\n")
	fmt.Fprintf(os.Stderr, "  json       JSON document\n")
	fmt.Fprintf(os.Stderr, "  placement  FEN piece-placement field\n")
}
