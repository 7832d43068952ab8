package testutil

import (
	"sort"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/fen"
)

// Standard test positions.
const (
	InitialFEN  = fen.Initial
	KiwipeteFEN = fen.Kiwipete
)

// BoardFromFEN builds a board from a FEN string and returns it together
// with the side to move. It fails the test if the FEN does not parse.
func BoardFromFEN(t testing.TB, s string) (*chess.Board, chess.Color) {
	t.Helper()
	b, color, err := fen.Decode(s)
	if err != nil {
		t.Fatalf("fen.Decode(%q): %v", s, err)
	}
	return b, color
}

// ReferenceLegalMoveCount returns the number of legal moves notnil/chess
// finds for the side to move.
func ReferenceLegalMoveCount(t testing.TB, s string) int {
	t.Helper()
	opt, err := notnil.FEN(s)
	if err != nil {
		t.Fatalf("notnil.FEN(%q): %v", s, err)
	}
	return len(notnil.NewGame(opt).ValidMoves())
}

// ReferenceInCheck reports whether dragontoothmg considers the side to
// move to be in check.
func ReferenceInCheck(s string) bool {
	b := dragontoothmg.ParseFen(s)
	return b.OurKingInCheck()
}

// ReferenceMoveCount returns the number of legal moves dragontoothmg
// generates for the side to move.
func ReferenceMoveCount(s string) int {
	b := dragontoothmg.ParseFen(s)
	return len(b.GenerateLegalMoves())
}

// ReferenceMoveStrings returns dragontoothmg's legal moves for the side to
// move in coordinate notation, sorted.
func ReferenceMoveStrings(s string) []string {
	b := dragontoothmg.ParseFen(s)
	moves := b.GenerateLegalMoves()
	out := make([]string, len(moves))
	for i := range moves {
		out[i] = strings.ToLower(moves[i].String())
	}
	sort.Strings(out)
	return out
}

// MoveStrings renders moves in coordinate notation, sorted.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}
