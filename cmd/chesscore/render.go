package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

const emptySquare = "."

// renderBoard draws the board from White's side, rank 8 first.
func renderBoard(w io.Writer, board *chess.Board, opts *config.OutputConfig) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		cells := make([]string, 0, chess.BoardSize)
		for file := 0; file < chess.BoardSize; file++ {
			cells = append(cells, fieldSymbol(board.AtCoords(file, rank), opts.Glyphs))
		}
		line := strings.Join(cells, " ")
		if opts.ShowCoordinates {
			line = fmt.Sprintf("%d %s", rank+1, line)
		}
		fmt.Fprintln(w, line)
	}
	if opts.ShowCoordinates {
		fmt.Fprintln(w, "  a b c d e f g h")
	}
}

// fieldSymbol returns the symbol for one field in the given style.
func fieldSymbol(f chess.Field, style config.GlyphStyle) string {
	if f.Piece() == chess.NoPiece {
		return emptySquare
	}
	if style == config.ASCIIGlyphs {
		letter := f.Piece().Letter()
		if f.Color() == chess.Black {
			letter += 'a' - 'A'
		}
		return string(letter)
	}
	return engine.BehaviorFor(f).DisplayGlyph(f.Color())
}

// renderState prints side to move, castling rights, en passant target,
// check and game status.
func renderState(w io.Writer, board *chess.Board, color chess.Color) {
	fmt.Fprintf(w, "To move: %s\n", color)
	fmt.Fprintf(w, "Castling: %s\n", board.CastlingRights())
	if ep, ok := board.EnPassant(); ok {
		fmt.Fprintf(w, "En passant: %s\n", ep)
	} else {
		fmt.Fprintln(w, "En passant: -")
	}
	fmt.Fprintf(w, "Check: %t\n", board.IsCheck(color))
	fmt.Fprintf(w, "Status: %s\n", engine.PositionStatus(board, color))
}

// renderMoveList prints the moves sorted in coordinate notation.
func renderMoveList(w io.Writer, moves []chess.Move) {
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.String()
	}
	sort.Strings(texts)
	fmt.Fprintf(w, "Legal moves (%d): %s\n", len(texts), strings.Join(texts, " "))
}

// renderDivide prints one "move: nodes" line per root move.
func renderDivide(w io.Writer, entries []engine.DivideEntry) {
	for _, e := range entries {
		fmt.Fprintf(w, "%s: %d\n", e.Move, e.Nodes)
	}
}
