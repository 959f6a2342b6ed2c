package engine

import (
	"testing"

	"github.com/AndyWilliams682/aperiodic-chess-sub000/board"
)

func TestStoreRetrieveExact(t *testing.T) {
	tt := NewTranspositionTable(1024)
	tt.Store(42, 100, 5, Exact, board.Move{Source: 1, Destination: 2}, true)

	score, ok := tt.Retrieve(42, 5, -1000, 1000)
	if !ok || score != 100 {
		t.Fatalf("expected Exact hit with score 100, got score=%d ok=%v", score, ok)
	}
}

func TestRetrieveMissesOnInsufficientDepth(t *testing.T) {
	tt := NewTranspositionTable(1024)
	tt.Store(42, 100, 3, Exact, board.Move{}, false)
	if _, ok := tt.Retrieve(42, 5, -1000, 1000); ok {
		t.Fatalf("a depth-3 entry should not satisfy a depth-5 probe")
	}
}

func TestLowerBoundOnlyUsableAboveBeta(t *testing.T) {
	tt := NewTranspositionTable(1024)
	tt.Store(7, 50, 4, LowerBound, board.Move{}, false)
	if _, ok := tt.Retrieve(7, 4, -1000, 60); ok {
		t.Fatalf("a lower bound of 50 should not resolve a window with beta=60")
	}
	if score, ok := tt.Retrieve(7, 4, -1000, 40); !ok || score != 50 {
		t.Fatalf("a lower bound of 50 should resolve beta=40, got score=%d ok=%v", score, ok)
	}
}

func TestUpperBoundOnlyUsableBelowAlpha(t *testing.T) {
	tt := NewTranspositionTable(1024)
	tt.Store(7, 50, 4, UpperBound, board.Move{}, false)
	if _, ok := tt.Retrieve(7, 4, 40, 1000); ok {
		t.Fatalf("an upper bound of 50 should not resolve a window with alpha=40")
	}
	if score, ok := tt.Retrieve(7, 4, 60, 1000); !ok || score != 50 {
		t.Fatalf("an upper bound of 50 should resolve alpha=60, got score=%d ok=%v", score, ok)
	}
}

func TestStoreCollisionDepthPreferredReplacement(t *testing.T) {
	size := 1000000
	tt := NewTranspositionTable(size)
	// Keys 1 and 1000001 collide under key % size.
	tt.Store(1, 10, 8, Exact, board.Move{}, false)
	tt.Store(1000001, 20, 3, Exact, board.Move{}, false)

	// The shallower entry must not have replaced the deeper one.
	if score, ok := tt.Retrieve(1, 8, -1000, 1000); !ok || score != 10 {
		t.Fatalf("shallower collision should not evict a deeper entry, got score=%d ok=%v", score, ok)
	}
	if _, ok := tt.Retrieve(1000001, 3, -1000, 1000); ok {
		t.Fatalf("the colliding key should have been rejected, not stored")
	}
}

func TestStoreReplacesOnEqualOrDeeperDepth(t *testing.T) {
	size := 1000000
	tt := NewTranspositionTable(size)
	tt.Store(1, 10, 3, Exact, board.Move{}, false)
	tt.Store(1000001, 20, 6, Exact, board.Move{}, false)

	if score, ok := tt.Retrieve(1000001, 6, -1000, 1000); !ok || score != 20 {
		t.Fatalf("a deeper collision should replace a shallower entry, got score=%d ok=%v", score, ok)
	}
}

func TestBestMoveReturnsStoredMove(t *testing.T) {
	tt := NewTranspositionTable(1024)
	want := board.Move{Source: 3, Destination: 4}
	tt.Store(99, 0, 1, Exact, want, true)

	got, ok := tt.BestMove(99)
	if !ok || got != want {
		t.Fatalf("expected stored move %+v, got %+v ok=%v", want, got, ok)
	}
}

func TestClearEmptiesTable(t *testing.T) {
	tt := NewTranspositionTable(1024)
	tt.Store(1, 1, 1, Exact, board.Move{}, false)
	tt.Clear()
	if _, ok := tt.Retrieve(1, 1, -1000, 1000); ok {
		t.Fatalf("expected no entries after Clear")
	}
}
