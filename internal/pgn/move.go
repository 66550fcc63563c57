package pgn

// Move represents a single ply of notation. A Move owns its comments and
// any variation blocks offering alternatives to it; it does not know its
// own container or position, both of which are derived by the tree engine.
type Move struct {
	// The move text as written (e.g., "Nf3", "e4", "O-O").
	Text string

	// Full-move number, recorded only when the source carried an explicit
	// number token for this move (white moves, and black moves that open
	// a variation or resume after one). Zero means absent.
	Number int

	// Comments attached after this move.
	Comments []*Comment

	// Alternative continuations branching from the position before this move.
	Variations []*Variation
}

// Variation represents an alternative line (RAV). It branches from the
// position immediately preceding its anchor move; the anchor association
// itself lives in the tree engine's caches, not here.
type Variation struct {
	Moves []*Move

	// Terminating result inside the parentheses, if any.
	Result string
}

// NewMove creates a move with the given text.
func NewMove(text string) *Move {
	return &Move{Text: text}
}

// HasComments returns true if this move has any comments.
func (m *Move) HasComments() bool {
	return len(m.Comments) > 0
}

// HasVariations returns true if this move has any variations.
func (m *Move) HasVariations() bool {
	return len(m.Variations) > 0
}

// AppendComment adds a comment to this move.
func (m *Move) AppendComment(text string) {
	m.Comments = append(m.Comments, &Comment{Text: text})
}

// AppendVariation adds a variation block to this move.
func (m *Move) AppendVariation(v *Variation) {
	m.Variations = append(m.Variations, v)
}

// LastMove returns the final move of the variation, or nil if it is empty.
func (v *Variation) LastMove() *Move {
	if len(v.Moves) == 0 {
		return nil
	}
	return v.Moves[len(v.Moves)-1]
}

// AppendMove adds a move to the end of the variation.
func (v *Variation) AppendMove(m *Move) {
	v.Moves = append(v.Moves, m)
}
