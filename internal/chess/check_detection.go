package chess

// IsCheck returns true if the given colour's king is attacked. A board
// without such a king is never in check.
func (b *Board) IsCheck(color Color) bool {
	king, ok := b.FindKing(color)
	if !ok {
		return false
	}
	return b.IsUnderAttack(king, color)
}

// IsUnderAttack returns true if any piece of the opposite colour attacks
// sq, assuming a piece of the given colour stands there. The square does
// not have to hold that piece.
func (b *Board) IsUnderAttack(sq Square, color Color) bool {
	color = Field(color).Color()
	enemy := color.Opposite()

	knight := MakeField(enemy, Knight)
	for _, t := range KnightOffsets(sq) {
		if b.cells[t] == knight {
			return true
		}
	}

	king := MakeField(enemy, King)
	for _, t := range KingOffsets(sq) {
		if b.cells[t] == king {
			return true
		}
	}

	// Enemy pawns attack from the rank in front of sq, seen from our side.
	pawn := MakeField(enemy, Pawn)
	file, rank := SplitSquare(sq)
	pawnRank := rank + color.Forward()
	if pawnRank >= 0 && pawnRank < BoardSize {
		if file > 0 && b.AtCoords(file-1, pawnRank) == pawn {
			return true
		}
		if file < BoardSize-1 && b.AtCoords(file+1, pawnRank) == pawn {
			return true
		}
	}

	for _, d := range DiagonalDirections {
		if b.ScanDirForAttack(sq, d.DX, d.DY, Bishop|Queen, enemy) {
			return true
		}
	}
	for _, d := range OrthogonalDirections {
		if b.ScanDirForAttack(sq, d.DX, d.DY, Rook|Queen, enemy) {
			return true
		}
	}
	return false
}

// ScanDirForAttack walks from sq in steps of (dx, dy) until the board edge
// or the first occupied square. It returns true if that square holds a
// piece of colour enemy whose kind is in pieceMask.
func (b *Board) ScanDirForAttack(sq Square, dx, dy int, pieceMask Piece, enemy Color) bool {
	if dx == 0 && dy == 0 {
		return false
	}
	enemy = Field(enemy).Color()
	file, rank := SplitSquare(sq)

	for f, r := file+dx, rank+dy; onBoard(f, r); f, r = f+dx, r+dy {
		target := b.AtCoords(f, r)
		if target != Empty {
			return target.Color() == enemy && target.Piece()&pieceMask != 0
		}
	}
	return false
}
