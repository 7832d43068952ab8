// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/config"
)

var (
	// Position options
	startFEN = flag.String("fen", "", "Starting position in FEN (default: standard start)")
	moveList = flag.String("moves", "", "Coordinate moves to play, e.g. \"e2e4 e7e5 g1f3\"")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	asciiBoard   = flag.Bool("ascii", false, "Draw pieces with letters instead of Unicode glyphs")
	noCoords     = flag.Bool("nocoords", false, "Don't print file and rank labels")
	showFEN      = flag.Bool("showfen", false, "Print the FEN of the final position")
	listMoves    = flag.Bool("list", false, "List the legal moves of the side to move")

	// Perft options
	perftDepth = flag.Int("perft", 0, "Count leaf nodes of the legal move tree to this depth")
	divide     = flag.Bool("divide", false, "Print the perft count below each root move")
	workers    = flag.Int("workers", 0, "Number of perft workers (0 = auto-detect based on CPU cores)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0=quiet, 1=summary, 2=per-move")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (same as -v 0)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPositionFlags(cfg)
	applyOutputFlags(cfg)
	applyPerftFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	cfg.OutputFilename = *outputFile
	cfg.LogFilename = *logFile
}

// applyPositionFlags sets the starting position and the moves to play.
func applyPositionFlags(cfg *config.Config) {
	cfg.StartFEN = strings.TrimSpace(*startFEN)
	cfg.Moves = parseMoveList(*moveList)
}

// applyOutputFlags configures board output settings.
func applyOutputFlags(cfg *config.Config) {
	if *asciiBoard {
		cfg.Output.Glyphs = config.ASCIIGlyphs
	} else {
		cfg.Output.Glyphs = config.UnicodeGlyphs
	}
	cfg.Output.ShowCoordinates = !*noCoords
	cfg.Output.ShowFEN = *showFEN
	cfg.Output.ListMoves = *listMoves
}

// applyPerftFlags configures node counting.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
}

// parseMoveList splits a move list on whitespace and commas.
func parseMoveList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
