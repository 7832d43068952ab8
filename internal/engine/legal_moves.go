package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
)

// PseudoLegalMoves returns every move color can make without regard to the
// safety of its own king. It extends the behavior table with promotions,
// en-passant captures and castling.
func PseudoLegalMoves(board *chess.Board, color chess.Color) []chess.Move {
	var moves []chess.Move
	lastRank := color.Opposite().HomeRank()

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		field := board.At(sq)
		if field.IsEmpty() || field.Color() != color {
			continue
		}
		for _, m := range BehaviorFor(field).AttackedMoves(color, sq, board) {
			if field.Piece() == chess.Pawn && m.Target().Rank() == lastRank {
				for _, promo := range chess.Promotions {
					moves = append(moves, chess.NewPromotion(m.Source(), m.Target(), promo))
				}
				continue
			}
			moves = append(moves, m)
		}
	}

	moves = append(moves, enPassantMoves(board, color)...)
	return append(moves, castlingMoves(board, color)...)
}

// LegalMoves returns the pseudo-legal moves of color that do not leave its
// own king in check.
func LegalMoves(board *chess.Board, color chess.Color) []chess.Move {
	pseudo := PseudoLegalMoves(board, color)
	legal := pseudo[:0]
	for _, m := range pseudo {
		if !board.ApplyMove(m).IsCheck(color) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves reports whether color has at least one legal move.
func HasLegalMoves(board *chess.Board, color chess.Color) bool {
	for _, m := range PseudoLegalMoves(board, color) {
		if !board.ApplyMove(m).IsCheck(color) {
			return true
		}
	}
	return false
}

// IsLegal reports whether m is one of the legal moves of color. The
// comparison is on the packed value, so kind and promotion must match.
func IsLegal(board *chess.Board, color chess.Color, m chess.Move) bool {
	for _, legal := range LegalMoves(board, color) {
		if legal == m {
			return true
		}
	}
	return false
}

// enPassantMoves returns the captures onto the board's en-passant target.
// The target must lie on the rank color captures onto and be backed by an
// enemy pawn that has just passed it.
func enPassantMoves(board *chess.Board, color chess.Color) []chess.Move {
	ep, ok := board.EnPassant()
	if !ok {
		return nil
	}
	captureRank := color.Opposite().PawnRank() - color.Forward()
	if ep.Rank() != captureRank || !board.At(ep).IsEmpty() {
		return nil
	}
	fromRank := captureRank - color.Forward()
	if !board.AtCoords(ep.File(), fromRank).Is(color.Opposite(), chess.Pawn) {
		return nil
	}

	var moves []chess.Move
	for _, df := range [2]int{-1, 1} {
		f := ep.File() + df
		if f < 0 || f >= chess.BoardSize {
			continue
		}
		if board.AtCoords(f, fromRank).Is(color, chess.Pawn) {
			moves = append(moves, chess.NewMove(chess.ToSquare(f, fromRank), ep, chess.KindCapture))
		}
	}
	return moves
}
