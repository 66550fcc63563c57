// Package tree implements the move-tree engine: it owns a parsed game,
// maintains a depth-first linear order over every move in the tree
// (mainline and variations), caches the board position reached after each
// move, and performs structural edits that keep those caches consistent.
package tree

import (
	"go.uber.org/zap"

	"github.com/hadron43/pgn-manager/internal/output"
	"github.com/hadron43/pgn-manager/internal/pgn"
	"github.com/hadron43/pgn-manager/internal/rules"
)

// positionEntry is the cached outcome of playing one move.
type positionEntry struct {
	// Position after the move. If the move text could not be applied this
	// holds the pre-move position instead.
	fen string

	// Side to move in fen.
	toMove pgn.Colour

	// Full-move number of the move itself.
	number int
}

// Engine manages a single game tree. It is the only writer of the tree and
// of the derived caches; all reads go through the caches, which are rebuilt
// in full after every mutation. Not safe for concurrent use.
type Engine struct {
	game *pgn.Game
	log  *zap.SugaredLogger

	startFEN   string
	strictOnly bool

	// Derived caches, replaced wholesale by every rebuild.
	order      []*pgn.Move
	index      map[*pgn.Move]int            // 0-based position in order
	slot       map[*pgn.Move]int            // index within the holding container
	containers map[*pgn.Move]*pgn.Variation // nil value = top-level container
	anchors    map[*pgn.Variation]*pgn.Move
	positions  map[*pgn.Move]positionEntry

	invalid  int // moves the rules engine rejected during the last rebuild
	rendered string
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used to report non-fatal data-quality
// conditions such as illegal moves in the source.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithStrictOnly disables the permissive notation fallback: moves must be
// written in standard algebraic notation to apply.
func WithStrictOnly() Option {
	return func(e *Engine) {
		e.strictOnly = true
	}
}

// New creates an engine over the given game and populates all caches.
// A nil game is treated as an empty one.
func New(game *pgn.Game, opts ...Option) *Engine {
	if game == nil {
		game = pgn.NewGame()
	}
	e := &Engine{
		game: game,
		log:  zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.rebuild()
	e.render()
	return e
}

// Game returns the underlying game. Callers must not mutate it directly;
// edits go through Insert and Delete so the caches stay consistent.
func (e *Engine) Game() *pgn.Game {
	return e.game
}

// PlyCount returns the total number of moves in the tree, variations
// included.
func (e *Engine) PlyCount() int {
	return len(e.order)
}

// InvalidMoveCount returns how many moves the rules engine rejected during
// the last linearization.
func (e *Engine) InvalidMoveCount() int {
	return e.invalid
}

// StartFEN returns the position the game starts from.
func (e *Engine) StartFEN() string {
	return e.startFEN
}

// PGN returns the textual rendering of the tree, kept current across
// mutations.
func (e *Engine) PGN() string {
	return e.rendered
}

// render regenerates the cached textual rendering.
func (e *Engine) render() {
	e.rendered = output.Render(e.game, func(m *pgn.Move) pgn.Colour {
		c, err := e.ColorOf(m)
		if err != nil {
			return pgn.White
		}
		return c
	})
}

// containerMoves returns the move sequence of a container; the nil
// container denotes the top-level sequence.
func (e *Engine) containerMoves(c *pgn.Variation) []*pgn.Move {
	if c == nil {
		return e.game.Moves
	}
	return c.Moves
}

// startPosition resolves the starting position: the FEN header if present
// and accepted by the rules engine, else the standard initial position.
func (e *Engine) startPosition() string {
	if fen := e.game.FEN(); fen != "" {
		if err := rules.Validate(fen); err == nil {
			return fen
		}
		e.log.Warnw("ignoring unusable FEN header", "fen", fen)
	}
	return rules.InitialFEN
}
