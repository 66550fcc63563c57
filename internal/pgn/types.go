// Package pgn provides the data model for a parsed PGN document:
// the game root, its move tree, and the variation blocks attached to moves.
package pgn

// Colour represents the colour of a player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the one-letter PGN colour ("w" or "b").
func (c Colour) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// Name returns the full colour name.
func (c Colour) Name() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Tag is a single PGN header pair. Tags keep their document order.
type Tag struct {
	Name  string
	Value string
}

// Comment represents a PGN brace comment.
type Comment struct {
	Text string
}

// Results that are valid PGN game terminators.
const (
	ResultWhiteWins = "1-0"
	ResultBlackWins = "0-1"
	ResultDraw      = "1/2-1/2"
	ResultUnknown   = "*"
)

// IsValidResult reports whether s is a valid PGN result marker.
func IsValidResult(s string) bool {
	switch s {
	case ResultWhiteWins, ResultBlackWins, ResultDraw, ResultUnknown:
		return true
	default:
		return false
	}
}
