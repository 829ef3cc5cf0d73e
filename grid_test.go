package aoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseGridPads(t *testing.T) {
	g := ParseGrid([]string{"ab", "c", ""}, '.')
	want := Grid[byte]{
		[]byte("ab"),
		[]byte("c."),
		[]byte(".."),
	}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("ParseGrid mismatch (-want +got):\n%s", diff)
	}
	if got := g.String(); got != "ab\nc.\n..\n" {
		t.Errorf("String = %q", got)
	}
}

func TestCountNeighbors(t *testing.T) {
	g := ParseGrid([]string{
		"@@@",
		"@.@",
		"@@.",
	}, '.')
	isRoll := func(b byte) bool { return b == '@' }
	tests := []struct {
		p    Pt
		want int
	}{
		{Pt{1, 1}, 7},
		{Pt{0, 0}, 2},
		{Pt{2, 2}, 2},
		{Pt{2, 0}, 2},
	}
	for _, tt := range tests {
		if got := g.CountNeighbors(tt.p, isRoll); got != tt.want {
			t.Errorf("CountNeighbors(%v) = %d; want %d", tt.p, got, tt.want)
		}
	}
}

func TestGridHash(t *testing.T) {
	g := ParseGrid([]string{"#.", ".#"}, '.')
	h := g.Hash()
	if g.Hash() != h {
		t.Fatal("hash of unchanged grid differs")
	}
	g.Set(Pt{0, 0}, '.')
	if g.Hash() == h {
		t.Error("hash did not change after Set")
	}
}

func TestTranspose(t *testing.T) {
	g := ParseGrid([]string{"abc", "def"}, ' ')
	want := Grid[byte]{
		[]byte("ad"),
		[]byte("be"),
		[]byte("cf"),
	}
	if diff := cmp.Diff(want, g.Transpose()); diff != "" {
		t.Errorf("Transpose mismatch (-want +got):\n%s", diff)
	}
}

func TestAtOk(t *testing.T) {
	g := MakeGrid[int](2, 1)
	g.Set(Pt{1, 0}, 7)
	if v, ok := g.AtOk(Pt{1, 0}); !ok || v != 7 {
		t.Errorf("AtOk = %d, %v; want 7, true", v, ok)
	}
	for _, p := range []Pt{{-1, 0}, {2, 0}, {0, 1}} {
		if _, ok := g.AtOk(p); ok {
			t.Errorf("AtOk(%v) ok outside grid", p)
		}
	}
}

func TestRectArea(t *testing.T) {
	a, b := Pt{2, 5}, Pt{11, 1}
	if got := a.RectArea(b); got != 50 {
		t.Errorf("RectArea = %d; want 50", got)
	}
	if got := a.RectArea(a); got != 1 {
		t.Errorf("RectArea of a point = %d; want 1", got)
	}
}

func TestSqDist(t *testing.T) {
	a, b := Pt3Int{1, 2, 3}, Pt3Int{4, -2, 3}
	if got := a.SqDist(b); got != 25 {
		t.Errorf("SqDist = %d; want 25", got)
	}
	if a.SqDist(b) != b.SqDist(a) {
		t.Error("SqDist is not symmetric")
	}
	if got := a.String(); got != "1,2,3" {
		t.Errorf("String = %q", got)
	}
}
