package main

import (
	stderrors "errors"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

var promotionLetters = map[byte]chess.PromotionKind{
	'q': chess.PromotionQueen,
	'r': chess.PromotionRook,
	'b': chess.PromotionBishop,
	'n': chess.PromotionKnight,
}

// playMoves applies moves in order, alternating sides from color. It
// stops at the first move that cannot be parsed or is not legal.
func playMoves(cfg *config.Config, board *chess.Board, color chess.Color, moves []string) (*chess.Board, chess.Color, error) {
	for i, text := range moves {
		m, err := parseMove(board, color, text)
		if err != nil {
			return nil, chess.NoColor, withPly(err, i+1)
		}
		board = board.ApplyMove(m)
		cfg.Logf(2, "%d. %s %s (%s)\n", i+1, color, m, m.Kind())
		color = color.Opposite()
	}
	return board, color, nil
}

// withPly records ply on the first MoveError in err's chain.
func withPly(err error, ply int) error {
	var me *errors.MoveError
	if stderrors.As(err, &me) {
		me.PlyNum = ply
	}
	return err
}

// parseMove resolves coordinate text such as "e2e4" or "a7a8n" against
// the legal moves of color. The move kind comes from the matched move, so
// captures, castling and en passant need no extra markup.
func parseMove(board *chess.Board, color chess.Color, text string) (chess.Move, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if len(s) != 4 && len(s) != 5 {
		return 0, &errors.MoveError{Err: errors.ErrInvalidMoveText, MoveText: text}
	}

	from, err := chess.ParseSquare(s[0:2])
	if err != nil {
		return 0, &errors.MoveError{Err: errors.ErrInvalidMoveText, MoveText: text}
	}
	to, err := chess.ParseSquare(s[2:4])
	if err != nil {
		return 0, &errors.MoveError{Err: errors.ErrInvalidMoveText, MoveText: text}
	}

	promotion := chess.PromotionNone
	if len(s) == 5 {
		p, ok := promotionLetters[s[4]]
		if !ok {
			return 0, &errors.MoveError{Err: errors.ErrInvalidMoveText, MoveText: text}
		}
		promotion = p
	}

	for _, m := range engine.LegalMoves(board, color) {
		if m.Source() != from || m.Target() != to {
			continue
		}
		if m.Kind() == chess.KindPromotion {
			if m.Promotion() == promotion {
				return m, nil
			}
			continue
		}
		if promotion == chess.PromotionNone {
			return m, nil
		}
	}
	return 0, &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: text}
}
