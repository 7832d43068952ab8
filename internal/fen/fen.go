// Package fen converts between FEN strings and packed boards. Parsing is
// delegated to github.com/notnil/chess, whose square numbering (a1 = 0,
// h8 = 63) matches the packed board.
package fen

import (
	"strings"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Common positions.
const (
	Initial  = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	Kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
)

var toPiece = map[notnil.PieceType]chess.Piece{
	notnil.Pawn:   chess.Pawn,
	notnil.Rook:   chess.Rook,
	notnil.Bishop: chess.Bishop,
	notnil.Knight: chess.Knight,
	notnil.Queen:  chess.Queen,
	notnil.King:   chess.King,
}

var fromPiece = map[chess.Piece]notnil.PieceType{
	chess.Pawn:   notnil.Pawn,
	chess.Rook:   notnil.Rook,
	chess.Bishop: notnil.Bishop,
	chess.Knight: notnil.Knight,
	chess.Queen:  notnil.Queen,
	chess.King:   notnil.King,
}

var castleFlags = []struct {
	color notnil.Color
	side  notnil.Side
	right chess.CastlingRights
}{
	{notnil.White, notnil.KingSide, chess.WhiteKingside},
	{notnil.White, notnil.QueenSide, chess.WhiteQueenside},
	{notnil.Black, notnil.KingSide, chess.BlackKingside},
	{notnil.Black, notnil.QueenSide, chess.BlackQueenside},
}

// Decode parses a FEN string into a board and the side to move. The
// halfmove and fullmove counters are validated but not kept.
func Decode(s string) (*chess.Board, chess.Color, error) {
	opt, err := notnil.FEN(s)
	if err != nil {
		return nil, chess.NoColor, errors.Wrapf(errors.ErrInvalidFEN, "%q: %v", s, err)
	}
	pos := notnil.NewGame(opt).Position()

	cells := make([]byte, chess.NumSquares)
	for sq, p := range pos.Board().SquareMap() {
		cells[int(sq)] = byte(chess.MakeField(toColor(p.Color()), toPiece[p.Type()]))
	}

	var rights chess.CastlingRights
	cr := pos.CastleRights()
	for _, f := range castleFlags {
		if cr.CanCastle(f.color, f.side) {
			rights |= f.right
		}
	}

	opts := []chess.BoardOption{chess.WithCastlingRights(rights)}
	if ep := pos.EnPassantSquare(); ep != notnil.NoSquare {
		opts = append(opts, chess.WithEnPassant(chess.Square(ep)))
	}

	b, err := chess.FromArray(cells, opts...)
	if err != nil {
		return nil, chess.NoColor, errors.Wrapf(err, "fen %q", s)
	}
	return b, toColor(pos.Turn()), nil
}

// Encode renders b as FEN with color to move. The move counters are not
// tracked by the board and are always written as "0 1".
//
// FEN names one coloured piece per square. FromArray also accepts fields
// with no piece bits (64), several piece bits (3) or no colour bits (8).
// Those are written as empty squares, so decoding the result does not
// give back such a board. Use Lossless to detect this.
func Encode(b *chess.Board, color chess.Color) string {
	squares := make(map[notnil.Square]notnil.Piece)
	for sq, f := range b.Cells() {
		if f.IsEmpty() {
			continue
		}
		kind, ok := fromPiece[f.Piece()]
		if !ok {
			continue
		}
		if c := f.Color(); c != chess.White && c != chess.Black {
			continue
		}
		squares[notnil.Square(sq)] = notnil.NewPiece(kind, fromColor(f.Color()))
	}

	var sb strings.Builder
	sb.WriteString(notnil.NewBoard(squares).String())
	sb.WriteByte(' ')
	if color == chess.Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	sb.WriteByte(' ')
	sb.WriteString(b.CastlingRights().String())
	sb.WriteByte(' ')
	if ep, ok := b.EnPassant(); ok {
		sb.WriteString(ep.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(" 0 1")
	return sb.String()
}

// Lossless reports whether every occupied field of b is a single known
// piece kind with a colour, so that Encode followed by Decode keeps it.
func Lossless(b *chess.Board) bool {
	for _, f := range b.Cells() {
		if f.IsEmpty() {
			continue
		}
		if _, ok := fromPiece[f.Piece()]; !ok {
			return false
		}
		if c := f.Color(); c != chess.White && c != chess.Black {
			return false
		}
	}
	return true
}

func toColor(c notnil.Color) chess.Color {
	if c == notnil.Black {
		return chess.Black
	}
	return chess.White
}

func fromColor(c chess.Color) notnil.Color {
	if c == chess.Black {
		return notnil.Black
	}
	return notnil.White
}
