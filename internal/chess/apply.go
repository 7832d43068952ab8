package chess

// cornerRights maps each rook home corner to the castling right it carries.
var cornerRights = map[Square]CastlingRights{
	A1: WhiteQueenside,
	H1: WhiteKingside,
	A8: BlackQueenside,
	H8: BlackKingside,
}

// ApplyMove returns the position after m. The receiver is not modified;
// the new board owns a fresh copy of the fields.
//
// The en-passant target is recomputed on every call: it is set only by a
// pawn advancing two ranks and cleared by everything else. Castling rights
// only ever shrink. A move whose squares are off the board leaves the
// position unchanged.
func (b *Board) ApplyMove(m Move) *Board {
	from, to, kind, promotion := m.Decode()
	if !from.Valid() || !to.Valid() {
		return b
	}

	next := &Board{
		cells:    b.cells,
		castling: b.castling,
	}

	moving := next.cells[from]
	colour := moving.Color()
	piece := moving.Piece()

	if kind.Has(KindCapture) {
		if b.hasEP && to == b.epSquare && piece == Pawn {
			// The captured pawn stands on the target file, one rank behind it.
			next.cells[ToSquare(to.File(), to.Rank()-colour.Forward())] = Empty
		} else {
			next.cells[to] = Empty
		}
	}

	next.castling = next.castling.Without(rightsLost(from, to, colour, piece, kind))

	if piece == Pawn && abs(to.Rank()-from.Rank()) > 1 {
		next.hasEP = true
		next.epSquare = ToSquare(from.File(), (from.Rank()+to.Rank())/2)
	}

	if kind.Has(KindCastle) {
		relocateCastlingRook(next, from, to)
	}

	if kind.Has(KindPromotion) && promotion.Piece() != NoPiece {
		next.cells[to] = MakeField(colour, promotion.Piece())
		next.cells[from] = Empty
		return next
	}

	next.cells[to] = moving
	next.cells[from] = Empty
	return next
}

// rightsLost returns the castling rights revoked by a move.
func rightsLost(from, to Square, colour Color, piece Piece, kind MoveKind) CastlingRights {
	var lost CastlingRights

	switch piece {
	case King:
		lost |= KingsideRight(colour) | QueensideRight(colour)
	case Rook:
		if from.Rank() == colour.HomeRank() {
			switch from.File() {
			case 0:
				lost |= QueensideRight(colour)
			case BoardSize - 1:
				lost |= KingsideRight(colour)
			}
		}
	}

	if kind.Has(KindCastle) {
		lost |= KingsideRight(colour) | QueensideRight(colour)
	}

	// Whatever lands on a rook's home corner removes that rook's right.
	lost |= cornerRights[to]

	return lost
}

// relocateCastlingRook moves the rook that belongs to a castling king move
// from its corner to the square the king passed over.
func relocateCastlingRook(next *Board, kingFrom, kingTo Square) {
	rank := kingFrom.Rank()
	var rookFrom, rookTo Square
	if kingTo.File() > kingFrom.File() {
		rookFrom = ToSquare(BoardSize-1, rank)
		rookTo = ToSquare(kingTo.File()-1, rank)
	} else {
		rookFrom = ToSquare(0, rank)
		rookTo = ToSquare(kingTo.File()+1, rank)
	}

	rook := next.cells[rookFrom]
	if rook.Piece() != Rook {
		return
	}
	next.cells[rookFrom] = Empty
	next.cells[rookTo] = rook
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
