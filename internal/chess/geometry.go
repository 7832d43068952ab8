package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Square is a linear board index 0-63: file + rank*8, a1 = 0, h8 = 63.
type Square uint8

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'a'
	RankBase = '1'
)

// Frequently referenced squares.
const (
	A1 Square = 0
	E1 Square = 4
	H1 Square = 7
	A8 Square = 56
	E8 Square = 60
	H8 Square = 63
)

// Offset is a (file, rank) step.
type Offset struct {
	DX, DY int
}

var (
	knightDeltas = [8]Offset{
		{-1, -2}, {-2, -1}, {1, -2}, {-2, 1},
		{-1, 2}, {2, -1}, {1, 2}, {2, 1},
	}

	kingDeltas = [8]Offset{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
		{0, 1}, {1, -1}, {1, 0}, {1, 1},
	}

	// DiagonalDirections are the bishop rays.
	DiagonalDirections = [4]Offset{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

	// OrthogonalDirections are the rook rays.
	OrthogonalDirections = [4]Offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// ToSquare converts file and rank (each 0-7) to a square. No bounds check.
func ToSquare(file, rank int) Square {
	return Square(file + rank*BoardSize)
}

// SplitSquare converts a square back to file and rank.
func SplitSquare(sq Square) (file, rank int) {
	return int(sq) % BoardSize, int(sq) / BoardSize
}

// File returns the 0-based file of the square.
func (sq Square) File() int {
	return int(sq) % BoardSize
}

// Rank returns the 0-based rank of the square.
func (sq Square) Rank() int {
	return int(sq) / BoardSize
}

// Valid reports whether the square lies on the board.
func (sq Square) Valid() bool {
	return sq < NumSquares
}

// String returns algebraic coordinates, e.g. "e4".
func (sq Square) String() string {
	if !sq.Valid() {
		return fmt.Sprintf("Square(%d)", uint8(sq))
	}
	return string([]byte{byte(FileBase + sq.File()), byte(RankBase + sq.Rank())})
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return 0, errors.Wrapf(errors.ErrInvalidSquare, "parse %q", s)
	}
	file := int(s[0]) - FileBase
	rank := int(s[1]) - RankBase
	if !onBoard(file, rank) {
		return 0, errors.Wrapf(errors.ErrInvalidSquare, "parse %q", s)
	}
	return ToSquare(file, rank), nil
}

// onBoard reports whether file and rank are both within 0-7.
func onBoard(file, rank int) bool {
	return file >= 0 && file < BoardSize && rank >= 0 && rank < BoardSize
}

// KnightOffsets returns the squares a knight on sq can leap to.
func KnightOffsets(sq Square) []Square {
	return offsetTargets(sq, knightDeltas[:])
}

// KingOffsets returns the squares adjacent to sq.
func KingOffsets(sq Square) []Square {
	return offsetTargets(sq, kingDeltas[:])
}

// offsetTargets applies each delta to sq, dropping those that leave the board.
// The result keeps the order of deltas.
func offsetTargets(sq Square, deltas []Offset) []Square {
	file, rank := SplitSquare(sq)
	targets := make([]Square, 0, len(deltas))
	for _, d := range deltas {
		nf, nr := file+d.DX, rank+d.DY
		if onBoard(nf, nr) {
			targets = append(targets, ToSquare(nf, nr))
		}
	}
	return targets
}
