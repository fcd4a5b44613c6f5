package rook

import (
	"fmt"
	"testing"
)

// mustLoc builds a Loc from a rank/file pair that the test knows is valid.
func mustLoc(t *testing.T, rank, file uint8) Loc {
	t.Helper()
	l, ok := NewLoc(rank, file)
	if !ok {
		t.Fatalf("NewLoc(%d, %d) unexpectedly failed", rank, file)
	}
	return l
}

func TestLocRoundTrip(t *testing.T) {
	for rank := uint8(0); rank < NumOfRanks; rank++ {
		for file := uint8(0); file < NumOfFiles; file++ {
			index := rank*NumOfFiles + file

			fromCoords := mustLoc(t, rank, file)
			fromIndex, ok := LocFromIndex(index)
			if !ok {
				t.Fatalf("LocFromIndex(%d) unexpectedly failed", index)
			}

			if fromCoords != fromIndex {
				t.Fatalf("rank %d file %d: NewLoc gave %s, LocFromIndex gave %s",
					rank, file, fromCoords, fromIndex)
			}
			if fromCoords.Index() != index {
				t.Fatalf("Index() of %s expected %d but got %d", fromCoords, index, fromCoords.Index())
			}

			r, f := fromIndex.RankFile()
			if r != rank || f != file {
				t.Fatalf("RankFile() of index %d expected (%d, %d) but got (%d, %d)",
					index, rank, file, r, f)
			}
		}
	}
}

func TestLocString(t *testing.T) {
	concrete := []struct {
		index uint8
		want  string
	}{
		{0, "A1"},
		{1, "B1"},
		{7, "H1"},
		{8, "A2"},
		{56, "A8"},
		{63, "H8"},
	}
	for _, c := range concrete {
		l, _ := LocFromIndex(c.index)
		if got := l.String(); got != c.want {
			t.Fatalf("String() of index %d expected %q but got %q", c.index, c.want, got)
		}
	}

	// Exhaustive check against the algebraic form.
	for index := uint8(0); index < NumOfSquaresInBoard; index++ {
		l, _ := LocFromIndex(index)
		want := fmt.Sprintf("%c%d", 'A'+index%NumOfFiles, 1+index/NumOfFiles)
		if got := l.String(); got != want {
			t.Fatalf("String() of index %d expected %q but got %q", index, want, got)
		}
	}
}

func TestLocOutOfRange(t *testing.T) {
	coordCases := []struct{ rank, file uint8 }{
		{8, 0},
		{0, 8},
		{8, 8},
		{255, 0},
		{3, 100},
	}
	for _, c := range coordCases {
		if _, ok := NewLoc(c.rank, c.file); ok {
			t.Fatalf("NewLoc(%d, %d) expected to fail but succeeded", c.rank, c.file)
		}
	}

	for _, index := range []uint8{64, 65, 128, 255} {
		if _, ok := LocFromIndex(index); ok {
			t.Fatalf("LocFromIndex(%d) expected to fail but succeeded", index)
		}
	}
}

func TestLocFlips(t *testing.T) {
	cases := []struct {
		name string
		flip func(Loc) Loc
		from string
		to   string
	}{
		{"vertical", FlipVertical, "A1", "A8"},
		{"vertical", FlipVertical, "E2", "E7"},
		{"horizontal", FlipHorizontal, "A1", "H1"},
		{"horizontal", FlipHorizontal, "C5", "F5"},
		{"diagonal", FlipDiagonal, "A2", "B1"},
		{"diagonal", FlipDiagonal, "H8", "H8"},
	}
	for _, c := range cases {
		from := locByName(t, c.from)
		if got := c.flip(from); got.String() != c.to {
			t.Fatalf("%s flip of %s expected %s but got %s", c.name, c.from, c.to, got)
		}
	}
}

// locByName resolves algebraic notation like "E5" for test readability.
func locByName(t *testing.T, name string) Loc {
	t.Helper()
	if len(name) != 2 {
		t.Fatalf("bad square name %q", name)
	}
	file := name[0] - 'A'
	rank := name[1] - '1'
	return mustLoc(t, rank, file)
}
