package output

import (
	"encoding/json"
	"io"

	"github.com/hadron43/pgn-manager/internal/pgn"
)

// GameDump is the JSON shape of a linearized game: the header tags plus
// one entry per move in depth-first order.
type GameDump struct {
	Tags         []pgn.Tag  `json:"tags,omitempty"`
	InitialFEN   string     `json:"initialFEN"`
	Result       string     `json:"result"`
	PlyCount     int        `json:"plyCount"`
	InvalidMoves int        `json:"invalidMoves,omitempty"`
	Moves        []MoveDump `json:"moves,omitempty"`
}

// MoveDump is one move of the depth-first order.
type MoveDump struct {
	Ply      int      `json:"ply"`
	Text     string   `json:"text"`
	Number   int      `json:"number,omitempty"`
	Color    string   `json:"color"` // "w" or "b"
	FEN      string   `json:"fen"`
	Mainline bool     `json:"mainline"`
	Anchor   string   `json:"anchor,omitempty"` // text of the holding variation's anchor
	Comments []string `json:"comments,omitempty"`
}

// GameCheck summarizes replaying one game through the rules engine.
type GameCheck struct {
	Game         int    `json:"game"` // 1-based position in the file
	White        string `json:"white,omitempty"`
	Black        string `json:"black,omitempty"`
	PlyCount     int    `json:"plyCount"`
	InvalidMoves int    `json:"invalidMoves"`
}

// CheckReport summarizes replaying every game of one file.
type CheckReport struct {
	File     string      `json:"file"`
	Games    int         `json:"games"`
	Rejected int         `json:"gamesWithRejectedMoves"`
	Results  []GameCheck `json:"results,omitempty"`
}

// WriteCheckReport writes a check report as indented JSON.
func WriteCheckReport(w io.Writer, r *CheckReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// dumpSet holds multiple games for array output.
type dumpSet struct {
	Games []*GameDump `json:"games"`
}

// WriteJSON writes a single dump as indented JSON.
func WriteJSON(w io.Writer, dump *GameDump) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dump)
}

// WriteJSONSet writes multiple dumps as a JSON array.
func WriteJSONSet(w io.Writer, dumps []*GameDump) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&dumpSet{Games: dumps})
}

// CommentTexts extracts the plain texts of a move's comments.
func CommentTexts(m *pgn.Move) []string {
	if len(m.Comments) == 0 {
		return nil
	}
	texts := make([]string, len(m.Comments))
	for i, c := range m.Comments {
		texts[i] = c.Text
	}
	return texts
}
