package pgn

import "testing"

func TestGame_TagsKeepOrder(t *testing.T) {
	g := NewGame()
	g.SetTag("Event", "Casual Game")
	g.SetTag("Site", "Berlin")
	g.SetTag("White", "Anderssen")
	g.SetTag("Event", "Evergreen Game") // update in place

	want := []Tag{
		{Name: "Event", Value: "Evergreen Game"},
		{Name: "Site", Value: "Berlin"},
		{Name: "White", Value: "Anderssen"},
	}
	if len(g.Tags) != len(want) {
		t.Fatalf("got %d tags, want %d", len(g.Tags), len(want))
	}
	for i, w := range want {
		if g.Tags[i] != w {
			t.Errorf("tag %d = %+v, want %+v", i, g.Tags[i], w)
		}
	}
}

func TestGame_TagLookups(t *testing.T) {
	g := NewGame()
	g.SetTag("White", "Morphy")
	g.SetTag("FEN", "8/8/8/8/8/8/8/8 w - - 0 1")

	if got := g.White(); got != "Morphy" {
		t.Errorf("White() = %q", got)
	}
	if got := g.Black(); got != "" {
		t.Errorf("Black() = %q, want empty", got)
	}
	if !g.HasTag("FEN") || g.FEN() == "" {
		t.Error("FEN tag not found")
	}
}

func TestGame_AppendMove(t *testing.T) {
	g := NewGame()
	if g.LastMove() != nil {
		t.Error("LastMove of empty game should be nil")
	}

	e4 := NewMove("e4")
	e5 := NewMove("e5")
	g.AppendMove(e4)
	g.AppendMove(e5)

	if got := g.LastMove(); got != e5 {
		t.Errorf("LastMove() = %v, want e5", got)
	}
	if len(g.Moves) != 2 {
		t.Errorf("len(Moves) = %d, want 2", len(g.Moves))
	}
}

func TestMove_Attachments(t *testing.T) {
	m := NewMove("Nf3")
	if m.HasComments() || m.HasVariations() {
		t.Error("new move should have no attachments")
	}

	m.AppendComment("a quiet developing move")
	v := &Variation{}
	v.AppendMove(NewMove("f4"))
	m.AppendVariation(v)

	if !m.HasComments() || !m.HasVariations() {
		t.Error("attachments not recorded")
	}
	if v.LastMove() == nil || v.LastMove().Text != "f4" {
		t.Errorf("variation last move = %v", v.LastMove())
	}
}

func TestColour(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite is wrong")
	}
	if White.String() != "w" || Black.String() != "b" {
		t.Error("String is wrong")
	}
	if White.Name() != "White" || Black.Name() != "Black" {
		t.Error("Name is wrong")
	}
}

func TestIsValidResult(t *testing.T) {
	for _, ok := range []string{"1-0", "0-1", "1/2-1/2", "*"} {
		if !IsValidResult(ok) {
			t.Errorf("IsValidResult(%q) = false", ok)
		}
	}
	for _, bad := range []string{"", "2-0", "draw", "1/2"} {
		if IsValidResult(bad) {
			t.Errorf("IsValidResult(%q) = true", bad)
		}
	}
}
