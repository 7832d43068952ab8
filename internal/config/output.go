package config

// GlyphStyle selects how pieces are drawn.
type GlyphStyle int

const (
	UnicodeGlyphs GlyphStyle = iota // ♙♖♘♗♕♔ / ♟♜♞♝♛♚
	ASCIIGlyphs                     // PRNBQK / prnbqk
)

// OutputConfig holds settings related to position output.
type OutputConfig struct {
	// Glyphs selects Unicode or ASCII piece symbols
	Glyphs GlyphStyle

	// ShowCoordinates prints file letters and rank numbers around the board
	ShowCoordinates bool

	// ShowFEN prints the FEN of the final position
	ShowFEN bool

	// ListMoves prints the legal moves of the side to move
	ListMoves bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Glyphs:          UnicodeGlyphs,
		ShowCoordinates: true,
	}
}
