package chess

import (
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Move is a packed move: source square in bits 24-31, target square in
// bits 16-23, promotion kind in bits 4-7 and move kind in bits 0-3.
type Move uint32

// MoveKind is a bitmask categorising a move.
type MoveKind uint8

const (
	KindMove      MoveKind = 0b0001
	KindCapture   MoveKind = 0b0010
	KindPromotion MoveKind = 0b0100
	KindCastle    MoveKind = 0b1000

	kindBits MoveKind = 0b1111
)

// Has reports whether every bit of k2 is set in k.
func (k MoveKind) Has(k2 MoveKind) bool {
	return k&k2 == k2
}

// String returns the name of a single move kind.
func (k MoveKind) String() string {
	switch k {
	case KindMove:
		return "Move"
	case KindCapture:
		return "Capture"
	case KindPromotion:
		return "Promotion"
	case KindCastle:
		return "Castle"
	}
	return "MoveKind(mixed)"
}

// PromotionKind names the piece a pawn promotes to. Only meaningful when
// the move kind is KindPromotion.
type PromotionKind uint8

const (
	PromotionNone   PromotionKind = 0
	PromotionQueen  PromotionKind = 0b0001 << 4
	PromotionRook   PromotionKind = 0b0010 << 4
	PromotionBishop PromotionKind = 0b0100 << 4
	PromotionKnight PromotionKind = 0b1000 << 4
)

// Promotions lists the promotion kinds in the order they are generated.
var Promotions = [4]PromotionKind{PromotionQueen, PromotionRook, PromotionBishop, PromotionKnight}

// Piece returns the piece kind a promotion produces, NoPiece for PromotionNone.
func (p PromotionKind) Piece() Piece {
	switch p {
	case PromotionQueen:
		return Queen
	case PromotionRook:
		return Rook
	case PromotionBishop:
		return Bishop
	case PromotionKnight:
		return Knight
	}
	return NoPiece
}

// valid reports whether p is one of the defined promotion kinds.
func (p PromotionKind) valid() bool {
	return p == PromotionNone || p.Piece() != NoPiece
}

// EncodeMove packs a move. It fails when a promotion kind is given for a
// non-promotion move, when either square is off the board, or when kind
// or promotion hold bits outside their ranges.
func EncodeMove(from, to Square, kind MoveKind, promotion PromotionKind) (Move, error) {
	if kind != KindPromotion && promotion != PromotionNone {
		return 0, errors.ErrPromotionWithoutPromotionMove
	}
	if !from.Valid() {
		return 0, &errors.SquareError{Err: errors.ErrInvalidSquare, Square: int(from), Value: -1, Role: "source"}
	}
	if !to.Valid() {
		return 0, &errors.SquareError{Err: errors.ErrInvalidSquare, Square: int(to), Value: -1, Role: "target"}
	}
	if kind == 0 || kind&^kindBits != 0 {
		return 0, errors.Wrapf(errors.ErrInvalidMoveKind, "kind %#x", uint8(kind))
	}
	if !promotion.valid() {
		return 0, errors.Wrapf(errors.ErrInvalidPromotion, "promotion %#x", uint8(promotion))
	}
	return pack(from, to, kind, promotion), nil
}

// MustEncodeMove is like EncodeMove but panics on error. It is meant for
// move literals in tests and tables.
func MustEncodeMove(from, to Square, kind MoveKind, promotion PromotionKind) Move {
	m, err := EncodeMove(from, to, kind, promotion)
	if err != nil {
		panic(err)
	}
	return m
}

// NewMove packs a move without validation. Generators that only produce
// on-board squares use it in place of EncodeMove.
func NewMove(from, to Square, kind MoveKind) Move {
	return pack(from, to, kind, PromotionNone)
}

// NewPromotion packs a promotion move without validation.
func NewPromotion(from, to Square, promotion PromotionKind) Move {
	return pack(from, to, KindPromotion, promotion)
}

// pack builds a move without validation; callers guarantee valid squares.
func pack(from, to Square, kind MoveKind, promotion PromotionKind) Move {
	return Move(uint32(from)<<24 | uint32(to)<<16 | uint32(promotion) | uint32(kind))
}

// Decode unpacks all fields of the move.
func (m Move) Decode() (from, to Square, kind MoveKind, promotion PromotionKind) {
	return m.Source(), m.Target(), m.Kind(), m.Promotion()
}

// Source returns the square the piece moves from.
func (m Move) Source() Square {
	return Square((m & 0xff000000) >> 24)
}

// Target returns the square the piece moves to.
func (m Move) Target() Square {
	return Square((m & 0x00ff0000) >> 16)
}

// Kind returns the move kind bits.
func (m Move) Kind() MoveKind {
	return MoveKind(m & 0x0000000f)
}

// Promotion returns the promotion kind bits.
func (m Move) Promotion() PromotionKind {
	return PromotionKind(m & 0x000000f0)
}

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.Source().String() + m.Target().String()
	if m.Kind() == KindPromotion {
		if p := m.Promotion().Piece(); p != NoPiece {
			s += string(p.Letter() + ('a' - 'A'))
		}
	}
	return s
}
