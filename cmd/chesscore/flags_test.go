package main

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

// saveRestoreBool sets a bool flag pointer and returns a restore func.
// Usage: defer saveRestoreBool(asciiBoard, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

// ---------------------------------------------------------------------------
// applyPositionFlags
// ---------------------------------------------------------------------------

func TestApplyPositionFlags(t *testing.T) {
	t.Run("defaults to the starting position", func(t *testing.T) {
		defer saveRestoreString(startFEN, "")()
		defer saveRestoreString(moveList, "")()
		cfg := config.NewConfig()
		applyPositionFlags(cfg)
		testutil.AssertEqual(t, cfg.StartFEN, "")
		if len(cfg.Moves) != 0 {
			t.Errorf("Moves = %v; want none", cfg.Moves)
		}
	})

	t.Run("fen is trimmed", func(t *testing.T) {
		defer saveRestoreString(startFEN, "  "+testutil.KiwipeteFEN+"\n")()
		cfg := config.NewConfig()
		applyPositionFlags(cfg)
		testutil.AssertEqual(t, cfg.StartFEN, testutil.KiwipeteFEN)
	})

	t.Run("moves are split", func(t *testing.T) {
		defer saveRestoreString(moveList, "e2e4 e7e5,g1f3")()
		cfg := config.NewConfig()
		applyPositionFlags(cfg)
		testutil.AssertEqual(t, cfg.Moves, []string{"e2e4", "e7e5", "g1f3"})
	})
}

func TestParseMoveList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"spaces", "e2e4 e7e5", []string{"e2e4", "e7e5"}},
		{"commas", "e2e4,e7e5", []string{"e2e4", "e7e5"}},
		{"mixed and repeated separators", " e2e4 ,\te7e5\n\ng1f3 ", []string{"e2e4", "e7e5", "g1f3"}},
		{"promotion suffix kept", "a7a8q", []string{"a7a8q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseMoveList(tt.in)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

// ---------------------------------------------------------------------------
// applyOutputFlags
// ---------------------------------------------------------------------------

func TestApplyOutputFlags(t *testing.T) {
	tests := []struct {
		name       string
		ascii      bool
		nocoords   bool
		showfen    bool
		list       bool
		wantGlyphs config.GlyphStyle
	}{
		{"defaults", false, false, false, false, config.UnicodeGlyphs},
		{"ascii", true, false, false, false, config.ASCIIGlyphs},
		{"no coordinates", false, true, false, false, config.UnicodeGlyphs},
		{"fen and list", false, false, true, true, config.UnicodeGlyphs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(asciiBoard, tt.ascii)()
			defer saveRestoreBool(noCoords, tt.nocoords)()
			defer saveRestoreBool(showFEN, tt.showfen)()
			defer saveRestoreBool(listMoves, tt.list)()

			cfg := config.NewConfig()
			applyOutputFlags(cfg)

			if cfg.Output.Glyphs != tt.wantGlyphs {
				t.Errorf("Glyphs = %d; want %d", cfg.Output.Glyphs, tt.wantGlyphs)
			}
			if cfg.Output.ShowCoordinates == tt.nocoords {
				t.Errorf("ShowCoordinates = %v; want %v", cfg.Output.ShowCoordinates, !tt.nocoords)
			}
			if cfg.Output.ShowFEN != tt.showfen {
				t.Errorf("ShowFEN = %v; want %v", cfg.Output.ShowFEN, tt.showfen)
			}
			if cfg.Output.ListMoves != tt.list {
				t.Errorf("ListMoves = %v; want %v", cfg.Output.ListMoves, tt.list)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// applyPerftFlags
// ---------------------------------------------------------------------------

func TestApplyPerftFlags(t *testing.T) {
	t.Run("depth and divide", func(t *testing.T) {
		defer saveRestoreInt(perftDepth, 3)()
		defer saveRestoreBool(divide, true)()
		defer saveRestoreInt(workers, 0)()
		cfg := config.NewConfig()
		defaultWorkers := cfg.Perft.Workers
		applyPerftFlags(cfg)
		if cfg.Perft.Depth != 3 || !cfg.Perft.Divide {
			t.Errorf("Perft = %+v; want depth 3 with divide", *cfg.Perft)
		}
		if cfg.Perft.Workers != defaultWorkers {
			t.Errorf("Workers = %d; want auto-detected %d", cfg.Perft.Workers, defaultWorkers)
		}
	})

	t.Run("explicit workers", func(t *testing.T) {
		defer saveRestoreInt(workers, 3)()
		cfg := config.NewConfig()
		applyPerftFlags(cfg)
		testutil.AssertEqual(t, cfg.Perft.Workers, 3)
	})
}

// ---------------------------------------------------------------------------
// applyFlags
// ---------------------------------------------------------------------------

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		quiet     bool
		want      int
	}{
		{"default", 1, false, 1},
		{"per-move", 2, false, 2},
		{"silent overrides", 2, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreInt(verbosity, tt.verbosity)()
			defer saveRestoreBool(quiet, tt.quiet)()
			cfg := config.NewConfig()
			applyFlags(cfg)
			testutil.AssertEqual(t, cfg.Verbosity, tt.want)
		})
	}
}

func TestApplyFlags_Filenames(t *testing.T) {
	defer saveRestoreString(outputFile, "board.txt")()
	defer saveRestoreString(logFile, "chesscore.log")()
	cfg := config.NewConfig()
	applyFlags(cfg)
	testutil.AssertEqual(t, cfg.OutputFilename, "board.txt")
	testutil.AssertEqual(t, cfg.LogFilename, "chesscore.log")
}
