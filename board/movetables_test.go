package board

import "testing"

func buildTraditionalTables() *MoveTables {
	return BuildMoveTables(NewGraph(Traditional8x8))
}

func TestPawnSingleAndDoublePushFromStart(t *testing.T) {
	mt := buildTraditionalTables()
	src := TileIndex(8) // a2
	dest := mt.QueryPawn(White, src, BitBoard{}, BitBoard{}, nil)
	want := FromTiles(16, 24) // a3, a4
	if !dest.Equals(want) {
		t.Fatalf("QueryPawn(a2) = %+v, want %+v", dest, want)
	}
}

func TestPawnDoublePushBlockedByIntermediate(t *testing.T) {
	mt := buildTraditionalTables()
	src := TileIndex(8) // a2
	occupied := FromTiles(16) // a3 occupied
	dest := mt.QueryPawn(White, src, BitBoard{}, occupied, nil)
	if !dest.IsEmpty() {
		t.Fatalf("expected no pawn moves when a3 is blocked, got %+v", dest)
	}
}

func TestPawnDoublePushBlockedByOccupiedDestination(t *testing.T) {
	mt := buildTraditionalTables()
	src := TileIndex(8) // a2
	occupied := FromTiles(24) // a4 occupied, a3 clear
	dest := mt.QueryPawn(White, src, BitBoard{}, occupied, nil)
	if dest.Test(24) {
		t.Fatalf("expected no double push onto occupied a4, got %+v", dest)
	}
	want := FromTiles(16) // a3 single push still legal
	if !dest.Equals(want) {
		t.Fatalf("QueryPawn(a2) with a4 occupied = %+v, want %+v", dest, want)
	}
}

func TestPawnCaptureIncludesEnPassant(t *testing.T) {
	mt := buildTraditionalTables()
	src := TileIndex(28) // e4
	ep := &EnPassantData{SourceTile: 27, PassedTile: 35, OccupiedTile: 11}
	enemies := BitBoard{}
	dest := mt.QueryPawn(White, src, enemies, BitBoard{}, ep)
	if !dest.Test(35) {
		t.Fatalf("expected capture-via-en-passant to include the passed tile 35, got %+v", dest)
	}
}

func TestCheckEnPassantableOnlyFromPawnStartTiles(t *testing.T) {
	mt := buildTraditionalTables()
	if _, ok := mt.CheckEnPassantable(White, 8); !ok {
		t.Fatalf("expected a2 to be en-passantable")
	}
	if _, ok := mt.CheckEnPassantable(White, 16); ok {
		t.Fatalf("a3 is not a pawn-start tile, should not be en-passantable")
	}
}

func TestCheckPromotableOnTerminalRank(t *testing.T) {
	mt := buildTraditionalTables()
	src := TileIndex(48) // a7
	dest := mt.QueryPawn(White, src, BitBoard{}, BitBoard{}, nil)
	promo := mt.CheckPromotable(White, src, dest)
	if len(promo) != 1 || promo[0] != 56 {
		t.Fatalf("expected promotion only on a8 (56), got %+v", promo)
	}
}

func TestReverseKnightMatchesForwardKnight(t *testing.T) {
	mt := buildTraditionalTables()
	for src := 0; src < mt.Graph.NumTiles(); src++ {
		for cur := mt.Knight[src]; !cur.IsEmpty(); cur = cur.ClearLowestOne() {
			dst, _ := cur.LowestOne()
			if !mt.reverseKnight[dst].Test(TileIndex(src)) {
				t.Fatalf("reverseKnight[%d] missing source %d", dst, src)
			}
		}
	}
}

func TestSlideTableQueryMatchesDirectSlide(t *testing.T) {
	g := NewGraph(Traditional8x8)
	st := buildSlideTables(g)
	occupied := FromTiles(24) // a4
	got := st.Orthogonal(0, occupied)
	direct := g.SlideFrom(0, 0, 0, occupied).Or(g.SlideFrom(0, 6, 0, occupied))
	if !got.Equals(direct) {
		t.Fatalf("Orthogonal(0) = %+v, want %+v", got, direct)
	}
}
