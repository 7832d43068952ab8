// chesscore is a tool for playing coordinate moves on a chess board,
// listing legal moves and counting move-tree nodes.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/fen"
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
		fmt.Printf("chesscore-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	err := run(cfg)
	closeFiles(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chesscore: %v\n", err)
		os.Exit(1)
	}
}

// run sets up the position, plays the requested moves and writes the
// requested reports to the output stream.
func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	board, color, err := loadPosition(cfg.StartFEN)
	if err != nil {
		return err
	}

	board, color, err = playMoves(cfg, board, color, cfg.Moves)
	if err != nil {
		return err
	}

	out := cfg.OutputFile
	renderBoard(out, board, cfg.Output)
	renderState(out, board, color)
	if cfg.Output.ShowFEN {
		fmt.Fprintf(out, "FEN: %s\n", fen.Encode(board, color))
	}
	if cfg.Output.ListMoves {
		renderMoveList(out, engine.LegalMoves(board, color))
	}

	if cfg.Perft.Enabled() {
		return runPerft(cfg, board, color)
	}
	return nil
}

// loadPosition returns the standard starting position when s is empty.
func loadPosition(s string) (*chess.Board, chess.Color, error) {
	if s == "" {
		return chess.Default(), chess.White, nil
	}
	return fen.Decode(s)
}

// runPerft counts nodes below the final position and reports the totals.
func runPerft(cfg *config.Config, board *chess.Board, color chess.Color) error {
	start := time.Now()
	depth := cfg.Perft.Depth

	var nodes uint64
	if cfg.Perft.Divide || cfg.Perft.Workers > 1 {
		entries, err := engine.ParallelDivide(board, color, depth, cfg.Perft.Workers)
		if err != nil {
			return err
		}
		if cfg.Perft.Divide {
			renderDivide(cfg.OutputFile, entries)
		}
		nodes = engine.TotalNodes(entries)
	} else {
		nodes = engine.Perft(board, color, depth)
	}

	fmt.Fprintf(cfg.OutputFile, "perft(%d) = %d\n", depth, nodes)
	cfg.Logf(1, "perft depth %d: %d nodes in %v using %d worker(s)\n",
		depth, nodes, time.Since(start).Round(time.Millisecond), cfg.Perft.Workers)
	return nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
		cfg.LogFilename = *appendLog
	}
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

// closeFiles syncs and closes the output and log files opened from flags.
// os.Exit skips deferred calls, so main calls this before exiting.
func closeFiles(cfg *config.Config) {
	for _, w := range []io.Writer{cfg.OutputFile, cfg.LogFile} {
		f, ok := w.(*os.File)
		if !ok || f == os.Stdout || f == os.Stderr {
			continue
		}
		if err := f.Sync(); err != nil {
			fmt.Fprintf(os.Stderr, "Error syncing %s: %v\n", f.Name(), err)
		}
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing %s: %v\n", f.Name(), err)
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chesscore [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays coordinate moves on a chess board and reports on the result.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove format (-moves):\n")
	fmt.Fprintf(os.Stderr, "  e2e4   source and target square\n")
	fmt.Fprintf(os.Stderr, "  e7e8q  promotion, with q, r, b or n\n")
	fmt.Fprintf(os.Stderr, "  e1g1   castling, given as the king's move\n")
}
