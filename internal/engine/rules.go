package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
)

// Status classifies a position from the point of view of the side to move.
type Status int

const (
	// Ongoing means the side to move has a legal move and neither side
	// has been reduced to insufficient material.
	Ongoing Status = iota
	Checkmate
	Stalemate
	InsufficientMaterial
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	}
	return "unknown"
}

// PositionStatus reports whether color, to move, is mated or stalemated,
// or whether the position is a dead draw on material.
func PositionStatus(board *chess.Board, color chess.Color) Status {
	if !HasLegalMoves(board, color) {
		if board.IsCheck(color) {
			return Checkmate
		}
		return Stalemate
	}
	if HasInsufficientMaterial(board) {
		return InsufficientMaterial
	}
	return Ongoing
}

// IsCheckmate returns true if color is in check and has no legal move.
func IsCheckmate(board *chess.Board, color chess.Color) bool {
	return board.IsCheck(color) && !HasLegalMoves(board, color)
}

// IsStalemate returns true if color is not in check and has no legal move.
func IsStalemate(board *chess.Board, color chess.Color) bool {
	return !board.IsCheck(color) && !HasLegalMoves(board, color)
}

// HasInsufficientMaterial returns true if neither side can mate.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whiteMinors, blackMinors []chess.Piece
	var whiteBishopOnLight, blackBishopOnLight bool

	for sq, field := range board.Cells() {
		if field.IsEmpty() {
			continue
		}
		piece := field.Piece()
		switch piece {
		case chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		}

		light := isLightSquare(chess.Square(sq))
		if field.Color() == chess.White {
			whiteMinors = append(whiteMinors, piece)
			if piece == chess.Bishop {
				whiteBishopOnLight = light
			}
		} else {
			blackMinors = append(blackMinors, piece)
			if piece == chess.Bishop {
				blackBishopOnLight = light
			}
		}
	}

	switch {
	case len(whiteMinors) == 0 && len(blackMinors) == 0:
		return true
	case len(whiteMinors) == 0 && len(blackMinors) == 1:
		return true
	case len(blackMinors) == 0 && len(whiteMinors) == 1:
		return true
	case len(whiteMinors) == 1 && len(blackMinors) == 1:
		return whiteMinors[0] == chess.Bishop && blackMinors[0] == chess.Bishop &&
			whiteBishopOnLight == blackBishopOnLight
	}
	return false
}

// IsStandardMaterial reports whether the board carries exactly the
// starting material for both sides.
func IsStandardMaterial(board *chess.Board) bool {
	expected := map[chess.Piece]int{
		chess.Pawn:   8,
		chess.Rook:   2,
		chess.Knight: 2,
		chess.Bishop: 2,
		chess.Queen:  1,
		chess.King:   1,
	}
	for _, color := range [2]chess.Color{chess.White, chess.Black} {
		for piece, n := range expected {
			if board.Count(color, piece) != n {
				return false
			}
		}
	}
	return true
}

func isLightSquare(sq chess.Square) bool {
	return (sq.File()+sq.Rank())%2 == 1
}
