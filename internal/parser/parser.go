package parser

import (
	"fmt"
	"io"

	"github.com/hadron43/pgn-manager/internal/errors"
	"github.com/hadron43/pgn-manager/internal/pgn"
)

// Parser parses PGN input into game trees.
type Parser struct {
	lexer *Lexer
	tok   *Token
	err   error // first bad token of the current game
}

// NewParser creates a new parser for the given reader.
func NewParser(r io.Reader) *Parser {
	return &Parser{lexer: NewLexer(r)}
}

func (p *Parser) next() {
	p.tok = p.lexer.NextToken()
}

// ParseGame parses a single game from the input. It returns (nil, nil) when
// no further games are available. Input the lexer cannot tokenize is
// reported as a *errors.ParseError; the game is still parsed past the bad
// token and returned alongside the error.
func (p *Parser) ParseGame() (*pgn.Game, error) {
	if p.tok == nil {
		p.next()
	}
	p.err = nil

	game := pgn.NewGame()
	game.StartLine = p.tok.Line

	game.LeadingComments = p.collectComments()

	sawTags := false
	for p.tok.Type == TagToken {
		game.SetTag(p.tok.Name, p.tok.Value)
		sawTags = true
		p.next()
	}

	game.PrefixComments = p.collectComments()

	moves, result := p.parseSequence(0)
	game.Moves = moves
	game.Result = result
	if game.Result == "" {
		if r := game.GetTag("Result"); pgn.IsValidResult(r) {
			game.Result = r
		}
	}
	game.EndLine = p.lexer.LineNumber()

	if !sawTags && len(game.Moves) == 0 &&
		len(game.LeadingComments) == 0 && len(game.PrefixComments) == 0 &&
		p.tok.Type == EOFToken {
		return nil, nil
	}
	return game, p.err
}

// ParseAllGames parses every game in the input, stopping at the first game
// with a tokenization error.
func (p *Parser) ParseAllGames() ([]*pgn.Game, error) {
	var games []*pgn.Game
	for {
		game, err := p.ParseGame()
		if game != nil {
			games = append(games, game)
		}
		if err != nil {
			return games, err
		}
		if game == nil {
			return games, nil
		}
	}
}

// recordBadToken notes the first token the lexer could not classify.
func (p *Parser) recordBadToken() {
	if p.err == nil {
		p.err = &errors.ParseError{
			Err:  errors.ErrParseFailure,
			Line: int(p.tok.Line),
			Got:  fmt.Sprintf("%q", p.tok.Text),
		}
	}
}

// collectComments consumes consecutive comment tokens.
func (p *Parser) collectComments() []*pgn.Comment {
	var comments []*pgn.Comment
	for p.tok.Type == CommentToken {
		if p.tok.Text != "" {
			comments = append(comments, &pgn.Comment{Text: p.tok.Text})
		}
		p.next()
	}
	return comments
}

// parseSequence parses one move sequence. At depth 0 it ends at a result
// marker, a new game's tag section, or end of input; inside a variation it
// ends at the closing parenthesis. Comments and variation blocks that
// appear before any move of the sequence are carried forward onto the first
// move parsed after them.
func (p *Parser) parseSequence(depth int) (moves []*pgn.Move, result string) {
	var current *pgn.Move
	var pendingComments []*pgn.Comment
	var pendingVars []*pgn.Variation
	pendingNumber := 0

	for {
		switch p.tok.Type {
		case MoveNumber:
			pendingNumber = p.tok.Number
			p.next()

		case MoveToken:
			current = pgn.NewMove(p.tok.Text)
			current.Number = pendingNumber
			current.Comments = pendingComments
			current.Variations = pendingVars
			pendingNumber = 0
			pendingComments = nil
			pendingVars = nil
			moves = append(moves, current)
			p.next()

		case CommentToken:
			if p.tok.Text != "" {
				if current != nil {
					current.AppendComment(p.tok.Text)
				} else {
					pendingComments = append(pendingComments, &pgn.Comment{Text: p.tok.Text})
				}
			}
			p.next()

		case NAGToken:
			// Annotation glyphs are not part of the tree model.
			p.next()

		case RAVStart:
			p.next()
			v := p.parseVariation()
			if current != nil {
				current.AppendVariation(v)
			} else {
				pendingVars = append(pendingVars, v)
			}

		case RAVEnd:
			p.next()
			if depth > 0 {
				return moves, result
			}
			// Unbalanced close at the top level; skip it.

		case TerminatingResult:
			result = p.tok.Text
			p.next()
			if depth == 0 {
				return moves, result
			}
			// Inside a variation the result sits before the close; keep
			// scanning for it.

		case TagToken:
			// Start of the next game (or malformed variation); stop here
			// without consuming the tag.
			return moves, result

		case EOFToken:
			return moves, result

		case ErrorToken:
			p.recordBadToken()
			p.next()

		default:
			p.next()
		}
	}
}

// parseVariation parses a variation body through its closing parenthesis.
func (p *Parser) parseVariation() *pgn.Variation {
	moves, result := p.parseSequence(1)
	return &pgn.Variation{Moves: moves, Result: result}
}
