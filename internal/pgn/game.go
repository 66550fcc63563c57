package pgn

// Game is the document root: ordered headers, free-text comments around
// them, the top-level move sequence, and the terminal result marker.
// The top-level move slice is the one container without an anchor.
type Game struct {
	// Tags in document order (e.g., Event, Site, Date, White, Black, Result).
	Tags []Tag

	// Comments appearing above the first tag.
	LeadingComments []*Comment

	// Comments between the tags and the first move.
	PrefixComments []*Comment

	// The top-level move sequence.
	Moves []*Move

	// Terminating result marker ("1-0", "0-1", "1/2-1/2", "*").
	Result string

	// Line numbers of the start and end of the game in the input.
	StartLine uint
	EndLine   uint
}

// NewGame creates a new empty game.
func NewGame() *Game {
	return &Game{}
}

// GetTag returns a tag value, or empty string if not present.
func (g *Game) GetTag(name string) string {
	for _, t := range g.Tags {
		if t.Name == name {
			return t.Value
		}
	}
	return ""
}

// SetTag sets a tag value, preserving the position of an existing tag.
func (g *Game) SetTag(name, value string) {
	for i := range g.Tags {
		if g.Tags[i].Name == name {
			g.Tags[i].Value = value
			return
		}
	}
	g.Tags = append(g.Tags, Tag{Name: name, Value: value})
}

// HasTag returns true if the tag is present.
func (g *Game) HasTag(name string) bool {
	for _, t := range g.Tags {
		if t.Name == name {
			return true
		}
	}
	return false
}

// White returns the White player name.
func (g *Game) White() string {
	return g.GetTag("White")
}

// Black returns the Black player name.
func (g *Game) Black() string {
	return g.GetTag("Black")
}

// Event returns the event name.
func (g *Game) Event() string {
	return g.GetTag("Event")
}

// FEN returns the starting position tag, if present.
func (g *Game) FEN() string {
	return g.GetTag("FEN")
}

// LastMove returns the last top-level move, or nil if there are none.
func (g *Game) LastMove() *Move {
	if len(g.Moves) == 0 {
		return nil
	}
	return g.Moves[len(g.Moves)-1]
}

// AppendMove adds a move to the end of the top-level sequence.
func (g *Game) AppendMove(m *Move) {
	g.Moves = append(g.Moves, m)
}

// AppendLeadingComment adds a comment above the headers.
func (g *Game) AppendLeadingComment(text string) {
	g.LeadingComments = append(g.LeadingComments, &Comment{Text: text})
}

// AppendPrefixComment adds a comment between the headers and the moves.
func (g *Game) AppendPrefixComment(text string) {
	g.PrefixComments = append(g.PrefixComments, &Comment{Text: text})
}
