// Package engine provides per-piece move generation, legal move filtering
// and perft node counting on top of the packed board.
package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
)

// Behavior generates the moves of one piece kind.
//
// AttackedMoves returns the piece's moves from sq without regard to the
// safety of its own king. Pawn moves onto the last rank are plain moves or
// captures here; promotion, en passant and castling are added by
// PseudoLegalMoves.
type Behavior interface {
	AttackedMoves(color chess.Color, sq chess.Square, board *chess.Board) []chess.Move
	DisplayGlyph(color chess.Color) string
}

// BehaviorFor returns the behavior of the piece on field. Empty or
// unrecognised fields get a behavior that produces no moves.
func BehaviorFor(field chess.Field) Behavior {
	switch field.Piece() {
	case chess.Pawn:
		return pawnBehavior{}
	case chess.Rook:
		return rookBehavior{}
	case chess.Bishop:
		return bishopBehavior{}
	case chess.Knight:
		return knightBehavior{}
	case chess.Queen:
		return queenBehavior{}
	case chess.King:
		return kingBehavior{}
	}
	return noBehavior{}
}

// glyph picks the white or black symbol. Anything that is not White is
// drawn as black.
func glyph(color chess.Color, white, black string) string {
	if color == chess.White {
		return white
	}
	return black
}

type noBehavior struct{}

func (noBehavior) AttackedMoves(chess.Color, chess.Square, *chess.Board) []chess.Move { return nil }
func (noBehavior) DisplayGlyph(chess.Color) string                                   { return "" }

type pawnBehavior struct{}

// AttackedMoves returns the single push, the double push from the pawn's
// starting rank when both squares are empty, and diagonal captures of
// enemy pieces.
func (pawnBehavior) AttackedMoves(color chess.Color, sq chess.Square, board *chess.Board) []chess.Move {
	file, rank := chess.SplitSquare(sq)
	dir := color.Forward()
	next := rank + dir
	if next < 0 || next >= chess.BoardSize {
		return nil
	}

	var moves []chess.Move
	if board.AtCoords(file, next).IsEmpty() {
		moves = append(moves, chess.NewMove(sq, chess.ToSquare(file, next), chess.KindMove))
		if rank == color.PawnRank() {
			if two := next + dir; board.AtCoords(file, two).IsEmpty() {
				moves = append(moves, chess.NewMove(sq, chess.ToSquare(file, two), chess.KindMove))
			}
		}
	}

	enemy := color.Opposite()
	for _, df := range [2]int{-1, 1} {
		f := file + df
		if f < 0 || f >= chess.BoardSize {
			continue
		}
		if target := board.AtCoords(f, next); !target.IsEmpty() && target.Color() == enemy {
			moves = append(moves, chess.NewMove(sq, chess.ToSquare(f, next), chess.KindCapture))
		}
	}
	return moves
}

func (pawnBehavior) DisplayGlyph(color chess.Color) string { return glyph(color, "♙", "♟") }

type knightBehavior struct{}

func (knightBehavior) AttackedMoves(color chess.Color, sq chess.Square, board *chess.Board) []chess.Move {
	return leaperMoves(color, sq, board, chess.KnightOffsets(sq))
}

func (knightBehavior) DisplayGlyph(color chess.Color) string { return glyph(color, "♘", "♞") }

type kingBehavior struct{}

// AttackedMoves does not include castling.
func (kingBehavior) AttackedMoves(color chess.Color, sq chess.Square, board *chess.Board) []chess.Move {
	return leaperMoves(color, sq, board, chess.KingOffsets(sq))
}

func (kingBehavior) DisplayGlyph(color chess.Color) string { return glyph(color, "♔", "♚") }

type rookBehavior struct{}

func (rookBehavior) AttackedMoves(color chess.Color, sq chess.Square, board *chess.Board) []chess.Move {
	return sliderMoves(color, sq, board, chess.OrthogonalDirections[:])
}

func (rookBehavior) DisplayGlyph(color chess.Color) string { return glyph(color, "♖", "♜") }

type bishopBehavior struct{}

func (bishopBehavior) AttackedMoves(color chess.Color, sq chess.Square, board *chess.Board) []chess.Move {
	return sliderMoves(color, sq, board, chess.DiagonalDirections[:])
}

func (bishopBehavior) DisplayGlyph(color chess.Color) string { return glyph(color, "♗", "♝") }

type queenBehavior struct{}

// AttackedMoves is the rook's moves followed by the bishop's.
func (queenBehavior) AttackedMoves(color chess.Color, sq chess.Square, board *chess.Board) []chess.Move {
	moves := sliderMoves(color, sq, board, chess.OrthogonalDirections[:])
	return append(moves, sliderMoves(color, sq, board, chess.DiagonalDirections[:])...)
}

func (queenBehavior) DisplayGlyph(color chess.Color) string { return glyph(color, "♕", "♛") }

// leaperMoves turns fixed target squares into moves: empty squares give
// quiet moves, squares holding a piece of another colour give captures.
func leaperMoves(color chess.Color, sq chess.Square, board *chess.Board, targets []chess.Square) []chess.Move {
	moves := make([]chess.Move, 0, len(targets))
	for _, to := range targets {
		f := board.At(to)
		switch {
		case f.IsEmpty():
			moves = append(moves, chess.NewMove(sq, to, chess.KindMove))
		case f.Color() != color:
			moves = append(moves, chess.NewMove(sq, to, chess.KindCapture))
		}
	}
	return moves
}

// sliderMoves walks each direction until the edge or the first occupied
// square, which is captured if it does not hold a piece of color.
func sliderMoves(color chess.Color, sq chess.Square, board *chess.Board, dirs []chess.Offset) []chess.Move {
	var moves []chess.Move
	file, rank := chess.SplitSquare(sq)
	for _, d := range dirs {
		for f, r := file+d.DX, rank+d.DY; f >= 0 && f < chess.BoardSize && r >= 0 && r < chess.BoardSize; f, r = f+d.DX, r+d.DY {
			to := chess.ToSquare(f, r)
			target := board.At(to)
			if target.IsEmpty() {
				moves = append(moves, chess.NewMove(sq, to, chess.KindMove))
				continue
			}
			if target.Color() != color {
				moves = append(moves, chess.NewMove(sq, to, chess.KindCapture))
			}
			break
		}
	}
	return moves
}
