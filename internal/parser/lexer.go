package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// moveChars marks the bytes that may appear inside a move token.
var moveChars [256]bool

func init() {
	for c := byte('a'); c <= 'h'; c++ {
		moveChars[c] = true
	}
	for c := byte('1'); c <= '8'; c++ {
		moveChars[c] = true
	}
	for _, c := range []byte{
		'K', 'Q', 'R', 'N', 'B', 'P', // piece letters
		'x', 'X', ':', '-', '=', // capture, separator, promotion
		'O', 'o', '0', // castling
		'+', '#', // check and mate
	} {
		moveChars[c] = true
	}
}

func isMoveStart(c byte) bool {
	switch {
	case c >= 'a' && c <= 'h':
		return true
	case c == 'K' || c == 'Q' || c == 'R' || c == 'N' || c == 'B' || c == 'P':
		return true
	case c == 'O' || c == 'o':
		return true
	default:
		return false
	}
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// Lexer tokenizes PGN input. It reads line by line; only brace comments may
// span lines.
type Lexer struct {
	reader  *bufio.Reader
	line    string
	pos     int
	lineNum uint
	eof     bool
}

// NewLexer creates a lexer for the given reader.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{reader: bufio.NewReader(r)}
}

// LineNumber returns the current line number, 1-based.
func (l *Lexer) LineNumber() uint {
	return l.lineNum
}

// readLine loads the next input line, skipping "%" escape lines.
func (l *Lexer) readLine() bool {
	for {
		if l.eof {
			return false
		}
		line, err := l.reader.ReadString('\n')
		if err != nil {
			l.eof = true
			if line == "" {
				return false
			}
		}
		l.lineNum++
		if strings.HasPrefix(line, "%") {
			continue
		}
		l.line = line
		l.pos = 0
		return true
	}
}

// current returns the byte at the cursor, loading further lines as needed.
func (l *Lexer) current() (byte, bool) {
	for l.pos >= len(l.line) {
		if !l.readLine() {
			return 0, false
		}
	}
	return l.line[l.pos], true
}

func (l *Lexer) advance() {
	l.pos++
}

// NextToken scans and returns the next token, or an EOF token at the end of
// input.
func (l *Lexer) NextToken() *Token {
	for {
		c, ok := l.current()
		if !ok {
			return &Token{Type: EOFToken, Line: l.lineNum}
		}

		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.advance()
		case c == '[':
			return l.gatherTag()
		case c == '{':
			return l.gatherComment()
		case c == ';':
			// Rest-of-line comment.
			text := strings.TrimSpace(l.line[l.pos+1:])
			l.pos = len(l.line)
			return &Token{Type: CommentToken, Text: text, Line: l.lineNum}
		case c == '(':
			l.advance()
			return &Token{Type: RAVStart, Line: l.lineNum}
		case c == ')':
			l.advance()
			return &Token{Type: RAVEnd, Line: l.lineNum}
		case c == '$':
			return l.gatherNAG()
		case c == '*':
			l.advance()
			return &Token{Type: TerminatingResult, Text: "*", Line: l.lineNum}
		case c == '.' || c == ']' || c == '"':
			// Stray punctuation between tokens.
			l.advance()
		case c == '-':
			if l.pos+1 < len(l.line) && l.line[l.pos+1] == '-' {
				l.pos += 2
				return &Token{Type: MoveToken, Text: "--", Line: l.lineNum}
			}
			l.advance()
		case c >= '0' && c <= '9':
			return l.gatherNumeric()
		case isMoveStart(c):
			return l.gatherMove()
		default:
			l.advance()
		}
	}
}

// gatherTag reads a `[Name "Value"]` header. Tags do not span lines.
func (l *Lexer) gatherTag() *Token {
	tok := &Token{Type: TagToken, Line: l.lineNum}
	l.advance() // '['

	for l.pos < len(l.line) && (l.line[l.pos] == ' ' || l.line[l.pos] == '\t') {
		l.advance()
	}
	start := l.pos
	for l.pos < len(l.line) && (isAlnum(l.line[l.pos]) || l.line[l.pos] == '_') {
		l.advance()
	}
	tok.Name = l.line[start:l.pos]
	if tok.Name == "" {
		rest := strings.TrimSpace(l.line[l.pos:])
		l.pos = len(l.line)
		return &Token{Type: ErrorToken, Text: rest, Line: l.lineNum}
	}

	tok.Value = l.gatherTagValue()

	for l.pos < len(l.line) && l.line[l.pos] != ']' {
		l.advance()
	}
	if l.pos < len(l.line) {
		l.advance() // ']'
	}
	return tok
}

// gatherTagValue reads the quoted tag value, honouring backslash escapes.
func (l *Lexer) gatherTagValue() string {
	for l.pos < len(l.line) && l.line[l.pos] != '"' && l.line[l.pos] != ']' {
		l.advance()
	}
	if l.pos >= len(l.line) || l.line[l.pos] != '"' {
		return ""
	}
	l.advance() // opening quote

	var sb strings.Builder
	for l.pos < len(l.line) {
		c := l.line[l.pos]
		if c == '\\' && l.pos+1 < len(l.line) {
			sb.WriteByte(l.line[l.pos+1])
			l.pos += 2
			continue
		}
		if c == '"' {
			l.advance()
			break
		}
		sb.WriteByte(c)
		l.advance()
	}
	return sb.String()
}

// gatherComment reads a brace comment, which may span lines and nest.
func (l *Lexer) gatherComment() *Token {
	line := l.lineNum
	l.advance() // '{'
	depth := 1

	var sb strings.Builder
	for {
		c, ok := l.current()
		if !ok {
			break
		}
		if c == '{' {
			depth++
		} else if c == '}' {
			depth--
			if depth == 0 {
				l.advance()
				break
			}
		}
		sb.WriteByte(c)
		l.advance()
	}
	return &Token{
		Type: CommentToken,
		Text: strings.Join(strings.Fields(sb.String()), " "),
		Line: line,
	}
}

// gatherNAG reads a `$n` annotation glyph.
func (l *Lexer) gatherNAG() *Token {
	line := l.lineNum
	start := l.pos
	l.advance() // '$'
	for l.pos < len(l.line) && l.line[l.pos] >= '0' && l.line[l.pos] <= '9' {
		l.advance()
	}
	return &Token{Type: NAGToken, Text: l.line[start:l.pos], Line: line}
}

// gatherNumeric reads a token starting with a digit: a move number, a game
// result, or zero-style castling.
func (l *Lexer) gatherNumeric() *Token {
	line := l.lineNum
	start := l.pos
	for l.pos < len(l.line) && strings.IndexByte("0123456789-/", l.line[l.pos]) >= 0 {
		l.advance()
	}
	chunk := l.line[start:l.pos]

	switch chunk {
	case "1-0", "0-1", "1/2-1/2":
		return &Token{Type: TerminatingResult, Text: chunk, Line: line}
	case "1/2":
		return &Token{Type: TerminatingResult, Text: "1/2-1/2", Line: line}
	case "0-0":
		return l.finishCastle("O-O", line)
	case "0-0-0":
		return l.finishCastle("O-O-O", line)
	}

	if n, err := strconv.Atoi(chunk); err == nil && n > 0 {
		for l.pos < len(l.line) && l.line[l.pos] == '.' {
			l.advance()
		}
		return &Token{Type: MoveNumber, Number: n, Line: line}
	}
	return &Token{Type: ErrorToken, Text: chunk, Line: line}
}

// finishCastle normalizes zero-style castling and picks up a check suffix.
func (l *Lexer) finishCastle(text string, line uint) *Token {
	for l.pos < len(l.line) && (l.line[l.pos] == '+' || l.line[l.pos] == '#') {
		text += string(l.line[l.pos])
		l.advance()
	}
	return &Token{Type: MoveToken, Text: text, Line: line}
}

// gatherMove reads a move token, keeping check symbols and dropping "!?"
// annotation suffixes.
func (l *Lexer) gatherMove() *Token {
	line := l.lineNum
	start := l.pos
	for l.pos < len(l.line) && (moveChars[l.line[l.pos]] || l.line[l.pos] == '!' || l.line[l.pos] == '?') {
		l.advance()
	}
	text := strings.TrimRight(l.line[start:l.pos], "!?")
	if text == "" {
		return &Token{Type: ErrorToken, Text: l.line[start:l.pos], Line: line}
	}
	return &Token{Type: MoveToken, Text: text, Line: line}
}
