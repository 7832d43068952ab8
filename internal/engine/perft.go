package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/hashing"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

// perftCacheCapacity bounds the subtree cache shared by ParallelDivide.
const perftCacheCapacity = 1 << 18

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Perft counts the leaf nodes of the legal move tree of the given depth
// with color to move. Depth 0 counts the position itself.
func Perft(board *chess.Board, color chess.Color, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(board, color)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += Perft(board.ApplyMove(m), color.Opposite(), depth-1)
	}
	return nodes
}

// PerftCached is Perft with subtree counts shared through cache. A nil
// cache counts without one.
func PerftCached(board *chess.Board, color chess.Color, depth int, cache *hashing.ThreadSafeTable) uint64 {
	if depth <= 1 || cache == nil {
		return Perft(board, color, depth)
	}
	key := hashing.KeyOf(board, color)
	if nodes, ok := cache.Lookup(key, depth); ok {
		return nodes
	}
	var nodes uint64
	for _, m := range LegalMoves(board, color) {
		nodes += PerftCached(board.ApplyMove(m), color.Opposite(), depth-1, cache)
	}
	cache.Store(hashing.Entry{Key: key, Depth: depth, Nodes: nodes})
	return nodes
}

// Divide returns the perft count below each legal root move, in move
// generation order. Depth must be at least 1.
func Divide(board *chess.Board, color chess.Color, depth int) []DivideEntry {
	if depth < 1 {
		return nil
	}
	moves := LegalMoves(board, color)
	entries := make([]DivideEntry, len(moves))
	for i, m := range moves {
		entries[i] = DivideEntry{Move: m, Nodes: Perft(board.ApplyMove(m), color.Opposite(), depth-1)}
	}
	return entries
}

// ParallelDivide computes the same result as Divide with the root moves
// spread across workers goroutines. The workers share one subtree cache,
// so a subtree reached from different root moves is searched once.
func ParallelDivide(board *chess.Board, color chess.Color, depth, workers int) ([]DivideEntry, error) {
	if depth < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d", depth)
	}

	moves := LegalMoves(board, color)
	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{Board: board, Color: color, Move: m, Depth: depth - 1, Index: i}
	}

	cache := hashing.NewThreadSafeTable(perftCacheCapacity)
	process := func(item worker.WorkItem) worker.ProcessResult {
		return countSubtree(item, cache)
	}
	pool := worker.NewPool(process, worker.WithWorkers(workers), worker.WithBufferSize(len(items)))
	results := pool.Run(items)

	entries := make([]DivideEntry, len(results))
	for i, res := range results {
		if res.Error != nil {
			return nil, res.Error
		}
		entries[i] = DivideEntry{Move: res.Move, Nodes: res.Nodes}
	}
	return entries, nil
}

// countSubtree is the worker function behind ParallelDivide.
func countSubtree(item worker.WorkItem, cache *hashing.ThreadSafeTable) worker.ProcessResult {
	if !IsLegal(item.Board, item.Color, item.Move) {
		return worker.ProcessResult{
			Move:  item.Move,
			Index: item.Index,
			Error: &errors.MoveError{Err: errors.ErrIllegalMove, PlyNum: 1, MoveText: item.Move.String()},
		}
	}
	next := item.Board.ApplyMove(item.Move)
	return worker.ProcessResult{
		Move:  item.Move,
		Index: item.Index,
		Nodes: PerftCached(next, item.Color.Opposite(), item.Depth, cache),
	}
}

// TotalNodes sums the node counts of a divide.
func TotalNodes(entries []DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}
