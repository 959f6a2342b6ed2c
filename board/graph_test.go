package board

import "testing"

func TestSlideFromRookCornerUnobstructed(t *testing.T) {
	g := NewGraph(Traditional8x8)
	// a1 = tile 0; sliding north along the a-file should reach every tile
	// up to a8 (tile 56), stepping by 8 each time.
	got := g.SlideFrom(0, 0, 0, BitBoard{})
	want := FromTiles(8, 16, 24, 32, 40, 48, 56)
	if !got.Equals(want) {
		t.Fatalf("SlideFrom(0, N) = %+v, want %+v", got, want)
	}
}

func TestSlideFromStopsAtObstruction(t *testing.T) {
	g := NewGraph(Traditional8x8)
	obstruction := FromTiles(24) // a4
	got := g.SlideFrom(0, 0, 0, obstruction)
	want := FromTiles(8, 16, 24)
	if !got.Equals(want) {
		t.Fatalf("SlideFrom with obstruction = %+v, want %+v", got, want)
	}
}

func TestSlideFromRespectsLimit(t *testing.T) {
	g := NewGraph(Traditional8x8)
	got := g.SlideFrom(0, 0, 1, BitBoard{})
	want := FromTiles(8)
	if !got.Equals(want) {
		t.Fatalf("SlideFrom with limit=1 = %+v, want %+v", got, want)
	}
}

func TestKingJumpsFromCorner(t *testing.T) {
	g := NewGraph(Traditional8x8)
	got := g.KingJumpsFrom(0)
	want := FromTiles(8, 9, 1) // N, NE, E from a1
	if !got.Equals(want) {
		t.Fatalf("KingJumpsFrom(a1) = %+v, want %+v", got, want)
	}
}

func TestKnightJumpsFromCorner(t *testing.T) {
	g := NewGraph(Traditional8x8)
	got := g.KnightJumpsFrom(0)
	want := FromTiles(17, 10) // b1->b3ish: from a1 knight reaches b3(17) and c2(10)
	if !got.Equals(want) {
		t.Fatalf("KnightJumpsFrom(a1) = %+v, want %+v", got, want)
	}
}

func TestForwardDirectionBlackIsOppositeWhite(t *testing.T) {
	g := NewGraph(Traditional8x8)
	white := g.ForwardDirection(8, White)
	black := g.ForwardDirection(8, Black)
	if white != 0 {
		t.Fatalf("white forward on traditional board should be direction 0 (N), got %d", white)
	}
	if black != 4 {
		t.Fatalf("black forward should be direction 4 (S), got %d", black)
	}
}

func TestIsOrthogonal(t *testing.T) {
	for d := Direction(0); d < 8; d++ {
		want := d%2 == 0
		if got := IsOrthogonal(d); got != want {
			t.Errorf("IsOrthogonal(%d) = %v, want %v", d, got, want)
		}
	}
}
