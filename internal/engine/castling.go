package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
)

const kingHomeFile = 4

// castleSide describes one castling option by file on the mover's home rank.
type castleSide struct {
	right       func(chess.Color) chess.CastlingRights
	rookFile    int
	kingTo      int
	mustBeEmpty []int
	mustBeSafe  []int
}

var castleSides = [2]castleSide{
	{
		right:       chess.KingsideRight,
		rookFile:    chess.BoardSize - 1,
		kingTo:      6,
		mustBeEmpty: []int{5, 6},
		mustBeSafe:  []int{kingHomeFile, 5, 6},
	},
	{
		right:       chess.QueensideRight,
		rookFile:    0,
		kingTo:      2,
		mustBeEmpty: []int{1, 2, 3},
		mustBeSafe:  []int{kingHomeFile, 3, 2},
	},
}

// castlingMoves returns the castle moves available to color. A castle is
// offered when the right is still held, king and rook stand on their home
// squares, every square between them is empty and the king neither starts
// on, passes over nor lands on an attacked square.
func castlingMoves(board *chess.Board, color chess.Color) []chess.Move {
	rights := board.CastlingRights()
	rank := color.HomeRank()
	kingSq := chess.ToSquare(kingHomeFile, rank)
	if !board.At(kingSq).Is(color, chess.King) {
		return nil
	}

	var moves []chess.Move
	for _, side := range castleSides {
		if !rights.Has(side.right(color)) {
			continue
		}
		if !board.AtCoords(side.rookFile, rank).Is(color, chess.Rook) {
			continue
		}
		if !allEmpty(board, rank, side.mustBeEmpty) || anyAttacked(board, color, rank, side.mustBeSafe) {
			continue
		}
		moves = append(moves, chess.NewMove(kingSq, chess.ToSquare(side.kingTo, rank), chess.KindCastle))
	}
	return moves
}

func allEmpty(board *chess.Board, rank int, files []int) bool {
	for _, f := range files {
		if !board.AtCoords(f, rank).IsEmpty() {
			return false
		}
	}
	return true
}

func anyAttacked(board *chess.Board, color chess.Color, rank int, files []int) bool {
	for _, f := range files {
		if board.IsUnderAttack(chess.ToSquare(f, rank), color) {
			return true
		}
	}
	return false
}
