// Package hashing provides position keys and a node-count cache for
// move-tree searches.
package hashing

import (
	"hash/fnv"
	"math/bits"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// zobristSeed fixes the key tables so hashes are stable between runs.
const zobristSeed = 0x2545F4914F6CDD1D

const pieceKinds = 6

// zobristKeys holds one random value per feature of a position.
type zobristKeys struct {
	pieces   [chess.NumSquares][2 * pieceKinds]uint64
	black    uint64
	castling [chess.AllCastling + 1]uint64
	epFile   [chess.BoardSize]uint64
}

var keys = newZobristKeys(zobristSeed)

func newZobristKeys(seed uint64) *zobristKeys {
	rng := splitMix{state: seed}
	k := &zobristKeys{}
	for sq := range k.pieces {
		for i := range k.pieces[sq] {
			k.pieces[sq][i] = rng.next()
		}
	}
	k.black = rng.next()
	for i := range k.castling {
		k.castling[i] = rng.next()
	}
	for i := range k.epFile {
		k.epFile[i] = rng.next()
	}
	return k
}

// splitMix is the SplitMix64 generator.
type splitMix struct {
	state uint64
}

func (s *splitMix) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// pieceIndex maps a field to 0-11, or -1 for an empty or malformed field.
func pieceIndex(f chess.Field) int {
	p := f.Piece()
	if p == chess.NoPiece || bits.OnesCount8(uint8(p)) != 1 {
		return -1
	}
	idx := bits.TrailingZeros8(uint8(p))
	if idx >= pieceKinds {
		return -1
	}
	if f.Color() == chess.Black {
		idx += pieceKinds
	}
	return idx
}

// GenerateZobristHash returns the Zobrist hash of the board with color to
// move. Castling rights and the en-passant file are part of the hash.
func GenerateZobristHash(board *chess.Board, color chess.Color) uint64 {
	var h uint64
	for sq, f := range board.Cells() {
		if idx := pieceIndex(f); idx >= 0 {
			h ^= keys.pieces[sq][idx]
		}
	}
	if color == chess.Black {
		h ^= keys.black
	}
	h ^= keys.castling[board.CastlingRights()&chess.AllCastling]
	if ep, ok := board.EnPassant(); ok {
		h ^= keys.epFile[ep.File()]
	}
	return h
}

// WeakHash is an FNV-1a hash of the raw board state, independent of the
// Zobrist tables. It is used to confirm a Zobrist match.
func WeakHash(board *chess.Board, color chess.Color) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(board.Bytes())
	extra := []byte{byte(color), byte(board.CastlingRights()), 0xFF}
	if ep, ok := board.EnPassant(); ok {
		extra[2] = byte(ep)
	}
	_, _ = h.Write(extra)
	return h.Sum64()
}

// Key identifies a position with the side to move.
type Key struct {
	Hash     uint64
	WeakHash uint64
}

// KeyOf returns the key of the board with color to move.
func KeyOf(board *chess.Board, color chess.Color) Key {
	return Key{
		Hash:     GenerateZobristHash(board, color),
		WeakHash: WeakHash(board, color),
	}
}
