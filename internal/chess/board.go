package chess

import (
	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Board is an immutable chess position: 64 packed fields, the en-passant
// target left by the previous move and the remaining castling rights.
// A Board is never modified after construction, so it may be shared
// between goroutines and kept as history without copying.
type Board struct {
	cells [NumSquares]Field

	// Is an en-passant capture possible? If so then epSquare holds the
	// square a pawn may capture onto.
	hasEP    bool
	epSquare Square

	castling CastlingRights
}

// BoardOption configures a Board built by FromArray.
type BoardOption func(*boardSettings)

type boardSettings struct {
	castling CastlingRights
	hasEP    bool
	epSquare Square
}

// WithCastlingRights sets the castling rights of the new board.
func WithCastlingRights(r CastlingRights) BoardOption {
	return func(s *boardSettings) {
		s.castling = r & AllCastling
	}
}

// WithEnPassant sets the en-passant target of the new board.
func WithEnPassant(sq Square) BoardOption {
	return func(s *boardSettings) {
		s.hasEP = true
		s.epSquare = sq
	}
}

// Default returns the standard starting position with full castling rights
// and no en-passant target.
func Default() *Board {
	b := &Board{castling: AllCastling}
	backRank := [BoardSize]Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.cells[ToSquare(file, 0)] = W(backRank[file])
		b.cells[ToSquare(file, 1)] = W(Pawn)
		b.cells[ToSquare(file, 6)] = B(Pawn)
		b.cells[ToSquare(file, 7)] = B(backRank[file])
	}
	return b
}

// FromArray builds a board from 64 raw field bytes, indexed by square.
// Every byte above MaxField is reported; the returned error then holds one
// *errors.SquareError per offending square. The input is copied, so later
// changes to cells do not affect the board. Unless overridden by options
// the board has full castling rights and no en-passant target.
func FromArray(cells []byte, opts ...BoardOption) (*Board, error) {
	if len(cells) != NumSquares {
		return nil, errors.Wrapf(errors.ErrInvalidBoardSize, "got %d fields, want %d", len(cells), NumSquares)
	}

	var result *multierror.Error
	for i, v := range cells {
		if Field(v) > MaxField {
			result = multierror.Append(result, &errors.SquareError{
				Err:    errors.ErrInvalidFieldValue,
				Square: i,
				Value:  int(v),
			})
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	settings := boardSettings{castling: AllCastling}
	for _, opt := range opts {
		opt(&settings)
	}
	if settings.hasEP && !settings.epSquare.Valid() {
		return nil, &errors.SquareError{
			Err:    errors.ErrInvalidSquare,
			Square: int(settings.epSquare),
			Value:  -1,
			Role:   "en-passant",
		}
	}

	b := &Board{
		castling: settings.castling,
		hasEP:    settings.hasEP,
		epSquare: settings.epSquare,
	}
	for i, v := range cells {
		b.cells[i] = Field(v)
	}
	return b, nil
}

// At returns the field on the given square. The square must be valid.
func (b *Board) At(sq Square) Field {
	return b.cells[sq]
}

// AtCoords returns the field at file and rank (each 0-7).
func (b *Board) AtCoords(file, rank int) Field {
	return b.cells[ToSquare(file, rank)]
}

// EnPassant returns the en-passant target square, if any.
func (b *Board) EnPassant() (Square, bool) {
	return b.epSquare, b.hasEP
}

// CastlingRights returns the castling rights still held.
func (b *Board) CastlingRights() CastlingRights {
	return b.castling
}

// Cells returns a copy of the 64 fields.
func (b *Board) Cells() [NumSquares]Field {
	return b.cells
}

// Bytes returns the fields as a fresh byte slice suitable for FromArray.
func (b *Board) Bytes() []byte {
	out := make([]byte, NumSquares)
	for i, f := range b.cells {
		out[i] = byte(f)
	}
	return out
}

// FindKing returns the square of the king of the given colour.
func (b *Board) FindKing(color Color) (Square, bool) {
	king := MakeField(color, King)
	for i, f := range b.cells {
		if f&(PieceMask|ColorMask) == king {
			return Square(i), true
		}
	}
	return 0, false
}

// Count returns how many squares hold the given coloured piece.
func (b *Board) Count(color Color, piece Piece) int {
	want := MakeField(color, piece)
	n := 0
	for _, f := range b.cells {
		if f == want {
			n++
		}
	}
	return n
}
