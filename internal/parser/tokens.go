// Package parser provides PGN lexing and parsing. It turns raw document
// text into the tree the move-tree engine consumes: headers, comments,
// top-level moves, nested variation blocks, and the terminal result marker.
package parser

// TokenType represents the type of a lexical token.
type TokenType int

const (
	EOFToken TokenType = iota
	TagToken
	CommentToken
	NAGToken
	MoveNumber
	RAVStart
	RAVEnd
	MoveToken
	TerminatingResult
	ErrorToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:          "EOF",
	TagToken:          "TAG",
	CommentToken:      "COMMENT",
	NAGToken:          "NAG",
	MoveNumber:        "MOVE_NUMBER",
	RAVStart:          "RAV_START",
	RAVEnd:            "RAV_END",
	MoveToken:         "MOVE",
	TerminatingResult: "TERMINATING_RESULT",
	ErrorToken:        "ERROR_TOKEN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// Text holds move text, comment text, result strings, and NAGs.
	Text string

	// Name and Value are set for tag tokens.
	Name  string
	Value string

	// Number holds the value of a move-number token.
	Number int

	// Line for error reporting, 1-based.
	Line uint
}
