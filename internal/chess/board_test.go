package chess

import (
	stderrors "errors"
	"testing"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// boardWith builds a board holding only the given pieces.
func boardWith(t *testing.T, pieces map[Square]Field, opts ...BoardOption) *Board {
	t.Helper()
	cells := make([]byte, NumSquares)
	for sq, f := range pieces {
		cells[sq] = byte(f)
	}
	b, err := FromArray(cells, opts...)
	if err != nil {
		t.Fatalf("FromArray() failed: %v", err)
	}
	return b
}

func TestDefault(t *testing.T) {
	b := Default()

	t.Run("piece counts", func(t *testing.T) {
		var white, black, occupied int
		for sq := Square(0); sq < NumSquares; sq++ {
			f := b.At(sq)
			if f.IsEmpty() {
				continue
			}
			occupied++
			switch f.Color() {
			case White:
				white++
			case Black:
				black++
			}
		}
		if occupied != 32 {
			t.Errorf("occupied = %d; want 32", occupied)
		}
		if white != 16 || black != 16 {
			t.Errorf("white, black = %d, %d; want 16, 16", white, black)
		}
		for _, c := range []Color{White, Black} {
			if got := b.Count(c, Pawn); got != 8 {
				t.Errorf("Count(%v, Pawn) = %d; want 8", c, got)
			}
			if got := b.Count(c, King); got != 1 {
				t.Errorf("Count(%v, King) = %d; want 1", c, got)
			}
		}
	})

	t.Run("initial state", func(t *testing.T) {
		if got := b.CastlingRights(); got != AllCastling {
			t.Errorf("CastlingRights() = %v; want %v", got, AllCastling)
		}
		if _, ok := b.EnPassant(); ok {
			t.Error("EnPassant() reported a target; want none")
		}
	})

	t.Run("fresh array per call", func(t *testing.T) {
		moved := Default().ApplyMove(MustEncodeMove(12, 28, KindMove, PromotionNone))
		if moved.At(12) != Empty {
			t.Fatal("ApplyMove did not move the pawn")
		}
		if Default().At(12) != W(Pawn) {
			t.Error("Default() shares state between calls")
		}
	})
}

func TestDefaultSquares(t *testing.T) {
	b := Default()

	tests := []struct {
		name  string
		file  int
		rank  int
		field Field
	}{
		{"white rook a1", 0, 0, W(Rook)},
		{"white knight b1", 1, 0, W(Knight)},
		{"white bishop c1", 2, 0, W(Bishop)},
		{"white queen d1", 3, 0, W(Queen)},
		{"white king e1", 4, 0, W(King)},
		{"white rook h1", 7, 0, W(Rook)},
		{"white pawn e2", 4, 1, W(Pawn)},
		{"black pawn a7", 0, 6, B(Pawn)},
		{"black queen d8", 3, 7, B(Queen)},
		{"black king e8", 4, 7, B(King)},
		{"black knight g8", 6, 7, B(Knight)},
		{"empty e4", 4, 3, Empty},
		{"empty c6", 2, 5, Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.AtCoords(tt.file, tt.rank); got != tt.field {
				t.Errorf("AtCoords(%d, %d) = %#x; want %#x", tt.file, tt.rank, got, tt.field)
			}
			if got := b.At(ToSquare(tt.file, tt.rank)); got != tt.field {
				t.Errorf("At(%v) = %#x; want %#x", ToSquare(tt.file, tt.rank), got, tt.field)
			}
		})
	}
}

func TestFromArray(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		cells := make([]byte, NumSquares)
		for i := range cells {
			cells[i] = byte(i*7) % (byte(MaxField) + 1)
		}
		b, err := FromArray(cells)
		if err != nil {
			t.Fatalf("FromArray() error = %v", err)
		}
		for i, v := range cells {
			if got := b.At(Square(i)); got != Field(v) {
				t.Errorf("At(%d) = %d; want %d", i, got, v)
			}
		}
	})

	t.Run("max field accepted", func(t *testing.T) {
		cells := make([]byte, NumSquares)
		cells[5] = byte(MaxField)
		if _, err := FromArray(cells); err != nil {
			t.Errorf("FromArray() with MaxField error = %v; want nil", err)
		}
	})

	t.Run("copies input", func(t *testing.T) {
		cells := Default().Bytes()
		b, err := FromArray(cells)
		if err != nil {
			t.Fatalf("FromArray() error = %v", err)
		}
		cells[4] = 0
		if b.At(4) != W(King) {
			t.Error("board changed after caller mutated its array")
		}
	})

	t.Run("defaults", func(t *testing.T) {
		b, err := FromArray(make([]byte, NumSquares))
		if err != nil {
			t.Fatalf("FromArray() error = %v", err)
		}
		if b.CastlingRights() != AllCastling {
			t.Errorf("CastlingRights() = %v; want %v", b.CastlingRights(), AllCastling)
		}
		if _, ok := b.EnPassant(); ok {
			t.Error("EnPassant() reported a target; want none")
		}
	})

	t.Run("options", func(t *testing.T) {
		b, err := FromArray(make([]byte, NumSquares), WithCastlingRights(BlackKingside), WithEnPassant(44))
		if err != nil {
			t.Fatalf("FromArray() error = %v", err)
		}
		if b.CastlingRights() != BlackKingside {
			t.Errorf("CastlingRights() = %v; want k", b.CastlingRights())
		}
		if ep, ok := b.EnPassant(); !ok || ep != 44 {
			t.Errorf("EnPassant() = %v, %v; want 44, true", ep, ok)
		}
	})
}

func TestFromArray_Errors(t *testing.T) {
	tests := []struct {
		name  string
		cells []byte
		opts  []BoardOption
		want  error
	}{
		{"too short", make([]byte, 63), nil, errors.ErrInvalidBoardSize},
		{"too long", make([]byte, 65), nil, errors.ErrInvalidBoardSize},
		{"nil", nil, nil, errors.ErrInvalidBoardSize},
		{"value above max", func() []byte {
			c := make([]byte, NumSquares)
			c[10] = byte(MaxField) + 1
			return c
		}(), nil, errors.ErrInvalidFieldValue},
		{"en-passant off board", make([]byte, NumSquares), []BoardOption{WithEnPassant(64)}, errors.ErrInvalidSquare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := FromArray(tt.cells, tt.opts...)
			if !stderrors.Is(err, tt.want) {
				t.Errorf("FromArray() error = %v; want %v", err, tt.want)
			}
			if b != nil {
				t.Error("FromArray() returned a board alongside an error")
			}
		})
	}
}

func TestFromArray_ReportsEveryBadSquare(t *testing.T) {
	cells := make([]byte, NumSquares)
	cells[3] = 0xff
	cells[40] = 200

	_, err := FromArray(cells)
	var merr *multierror.Error
	if !stderrors.As(err, &merr) {
		t.Fatalf("error %v is not a *multierror.Error", err)
	}
	if len(merr.Errors) != 2 {
		t.Fatalf("got %d errors; want 2", len(merr.Errors))
	}

	var sqErr *errors.SquareError
	if !stderrors.As(merr.Errors[1], &sqErr) {
		t.Fatalf("errors[1] = %v; want *SquareError", merr.Errors[1])
	}
	if sqErr.Square != 40 || sqErr.Value != 200 {
		t.Errorf("SquareError = square %d value %d; want square 40 value 200", sqErr.Square, sqErr.Value)
	}
}

func TestFindKing(t *testing.T) {
	b := Default()
	if sq, ok := b.FindKing(White); !ok || sq != E1 {
		t.Errorf("FindKing(White) = %v, %v; want e1, true", sq, ok)
	}
	if sq, ok := b.FindKing(Black); !ok || sq != E8 {
		t.Errorf("FindKing(Black) = %v, %v; want e8, true", sq, ok)
	}

	empty := boardWith(t, nil)
	if _, ok := empty.FindKing(White); ok {
		t.Error("FindKing(White) on empty board = true; want false")
	}
}

func TestFieldMasks(t *testing.T) {
	f := B(Queen)
	if f.Piece() != Queen {
		t.Errorf("Piece() = %v; want Queen", f.Piece())
	}
	if f.Color() != Black {
		t.Errorf("Color() = %v; want Black", f.Color())
	}
	if Field(PieceMask)&ColorMask != 0 {
		t.Error("piece and colour masks overlap")
	}
	if MaxField != 160 {
		t.Errorf("MaxField = %d; want 160", MaxField)
	}
}

func TestCastlingRightsString(t *testing.T) {
	tests := []struct {
		rights CastlingRights
		want   string
	}{
		{AllCastling, "KQkq"},
		{NoCastling, "-"},
		{WhiteKingside | BlackQueenside, "Kq"},
		{BlackKingside, "k"},
	}
	for _, tt := range tests {
		if got := tt.rights.String(); got != tt.want {
			t.Errorf("CastlingRights(%d).String() = %q; want %q", tt.rights, got, tt.want)
		}
	}
}
