package chess

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

func TestToSquareSplitSquare_RoundTrip(t *testing.T) {
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			sq := ToSquare(file, rank)
			if int(sq) != file+rank*8 {
				t.Errorf("ToSquare(%d, %d) = %d; want %d", file, rank, sq, file+rank*8)
			}
			gf, gr := SplitSquare(sq)
			if gf != file || gr != rank {
				t.Errorf("SplitSquare(%d) = (%d, %d); want (%d, %d)", sq, gf, gr, file, rank)
			}
			if sq.File() != file || sq.Rank() != rank {
				t.Errorf("%d.File(), Rank() = %d, %d; want %d, %d", sq, sq.File(), sq.Rank(), file, rank)
			}
		}
	}
}

func TestSquareString(t *testing.T) {
	tests := []struct {
		sq   Square
		want string
	}{
		{A1, "a1"},
		{H1, "h1"},
		{12, "e2"},
		{28, "e4"},
		{H8, "h8"},
		{64, "Square(64)"},
	}
	for _, tt := range tests {
		if got := tt.sq.String(); got != tt.want {
			t.Errorf("Square(%d).String() = %q; want %q", uint8(tt.sq), got, tt.want)
		}
	}
}

func TestParseSquare(t *testing.T) {
	for sq := Square(0); sq < NumSquares; sq++ {
		got, err := ParseSquare(sq.String())
		if err != nil {
			t.Fatalf("ParseSquare(%q) error = %v", sq.String(), err)
		}
		if got != sq {
			t.Errorf("ParseSquare(%q) = %d; want %d", sq.String(), got, sq)
		}
	}

	for _, bad := range []string{"", "e", "e9", "i1", "e44", "E4"} {
		if _, err := ParseSquare(bad); !stderrors.Is(err, errors.ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", bad, err)
		}
	}
}

func TestKnightOffsets(t *testing.T) {
	tests := []struct {
		name string
		sq   Square
		want []Square
	}{
		// Order follows the fixed delta table.
		{"corner a1", A1, []Square{17, 10}},
		{"centre d4", 27, []Square{10, 17, 12, 33, 42, 21, 44, 37}},
		{"edge h8", H8, []Square{46, 53}},
		{"b1", 1, []Square{16, 18, 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KnightOffsets(tt.sq)
			if !equalSquares(got, tt.want) {
				t.Errorf("KnightOffsets(%v) = %v; want %v", tt.sq, got, tt.want)
			}
			again := KnightOffsets(tt.sq)
			if !equalSquares(got, again) {
				t.Errorf("KnightOffsets(%v) not deterministic: %v vs %v", tt.sq, got, again)
			}
		})
	}
}

func TestKingOffsets(t *testing.T) {
	tests := []struct {
		name string
		sq   Square
		want []Square
	}{
		{"corner a1", A1, []Square{8, 1, 9}},
		{"corner h8", H8, []Square{54, 62, 55}},
		{"centre d4", 27, []Square{18, 26, 34, 19, 35, 20, 28, 36}},
		{"edge e1", E1, []Square{3, 11, 12, 5, 13}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KingOffsets(tt.sq); !equalSquares(got, tt.want) {
				t.Errorf("KingOffsets(%v) = %v; want %v", tt.sq, got, tt.want)
			}
		})
	}
}

// A faulty delta table once listed (1,-1) twice and left out (1,1). Every
// interior square must see all eight distinct neighbours, including the
// one up and to the right.
func TestKingOffsets_EightDistinctNeighbours(t *testing.T) {
	for file := 1; file < BoardSize-1; file++ {
		for rank := 1; rank < BoardSize-1; rank++ {
			sq := ToSquare(file, rank)
			got := KingOffsets(sq)
			if len(got) != 8 {
				t.Fatalf("KingOffsets(%v) has %d squares; want 8", sq, len(got))
			}
			seen := make(map[Square]bool)
			for _, n := range got {
				if seen[n] {
					t.Errorf("KingOffsets(%v) repeats %v", sq, n)
				}
				seen[n] = true
				df, dr := n.File()-file, n.Rank()-rank
				if abs(df) > 1 || abs(dr) > 1 || (df == 0 && dr == 0) {
					t.Errorf("KingOffsets(%v) contains non-adjacent %v", sq, n)
				}
			}
			if upRight := ToSquare(file+1, rank+1); !seen[upRight] {
				t.Errorf("KingOffsets(%v) is missing %v", sq, upRight)
			}
		}
	}
}

func TestOffsets_StayOnBoard(t *testing.T) {
	for sq := Square(0); sq < NumSquares; sq++ {
		for _, n := range append(KnightOffsets(sq), KingOffsets(sq)...) {
			if !n.Valid() {
				t.Errorf("offset of %v left the board: %d", sq, n)
			}
		}
	}
}

func equalSquares(a, b []Square) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
