// Package chess provides the packed board representation, the move codec
// and attack detection for a single chess position.
package chess

// Piece represents a chess piece kind. Each kind occupies its own bit so
// that several kinds can be matched with a single mask.
type Piece uint8

const (
	NoPiece Piece = 0
	Pawn    Piece = 0b00000001
	Rook    Piece = 0b00000010
	Bishop  Piece = 0b00000100
	Knight  Piece = 0b00001000
	Queen   Piece = 0b00010000
	King    Piece = 0b00100000
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	switch p {
	case Pawn:
		return "Pawn"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case NoPiece:
		return "None"
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	switch p {
	case Pawn:
		return 'P'
	case Rook:
		return 'R'
	case Bishop:
		return 'B'
	case Knight:
		return 'N'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	}
	return '?'
}

// Color represents the colour of a piece or player.
type Color uint8

const (
	NoColor Color = 0
	White   Color = 0b01000000
	Black   Color = 0b10000000
)

// String returns the string representation of a colour.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "None"
}

// Opposite returns the opposite colour.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Color) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the 0-based rank holding the colour's back pieces.
func (c Color) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the 0-based rank the colour's pawns start on.
func (c Color) PawnRank() int {
	if c == White {
		return 1
	}
	return BoardSize - 2
}

// Field is the packed occupant of one square: at most one piece bit OR-ed
// with at most one colour bit. Zero is an empty square.
type Field uint8

// Masks for extracting the two halves of a field value.
const (
	PieceMask Field = 0b00111111
	ColorMask Field = 0b11000000

	// MaxField is the largest byte a board may hold.
	MaxField = Field(King) | Field(Black)

	Empty Field = 0
)

// MakeField creates a coloured piece value.
func MakeField(color Color, piece Piece) Field {
	return Field(color) | Field(piece)
}

// W creates a white piece.
func W(piece Piece) Field {
	return MakeField(White, piece)
}

// B creates a black piece.
func B(piece Piece) Field {
	return MakeField(Black, piece)
}

// Piece extracts the piece kind bits.
func (f Field) Piece() Piece {
	return Piece(f & PieceMask)
}

// Color extracts the colour bits.
func (f Field) Color() Color {
	return Color(f & ColorMask)
}

// IsEmpty reports whether no piece occupies the square.
func (f Field) IsEmpty() bool {
	return f == Empty
}

// Is reports whether the field holds exactly the given coloured piece.
func (f Field) Is(color Color, piece Piece) bool {
	return f == MakeField(color, piece)
}

// CastlingRights is a 4-bit mask of the remaining castling options.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether every right in r is still held.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// Without returns c with the rights in r revoked.
func (c CastlingRights) Without(r CastlingRights) CastlingRights {
	return c &^ r
}

// String renders the rights the way FEN does ("KQkq", "-" when none).
func (c CastlingRights) String() string {
	var buf []byte
	if c.Has(WhiteKingside) {
		buf = append(buf, 'K')
	}
	if c.Has(WhiteQueenside) {
		buf = append(buf, 'Q')
	}
	if c.Has(BlackKingside) {
		buf = append(buf, 'k')
	}
	if c.Has(BlackQueenside) {
		buf = append(buf, 'q')
	}
	if len(buf) == 0 {
		return "-"
	}
	return string(buf)
}

// KingsideRight returns the kingside right for the colour.
func KingsideRight(color Color) CastlingRights {
	if color == White {
		return WhiteKingside
	}
	return BlackKingside
}

// QueensideRight returns the queenside right for the colour.
func QueensideRight(color Color) CastlingRights {
	if color == White {
		return WhiteQueenside
	}
	return BlackQueenside
}
