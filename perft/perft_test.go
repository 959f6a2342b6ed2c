package main

import (
	"testing"

	"github.com/AndyWilliams682/aperiodic-chess-sub000/board"
	"github.com/AndyWilliams682/aperiodic-chess-sub000/notation"
)

func newStartpos(t *testing.T) (*board.Position, *board.MoveGenerator) {
	t.Helper()
	tables := board.BuildMoveTables(board.NewGraph(board.Traditional8x8))
	pos, err := notation.Decode(startposString, tables)
	if err != nil {
		t.Fatalf("cannot decode startpos: %v", err)
	}
	return pos, board.NewMoveGenerator()
}

func TestPerftInitial(t *testing.T) {
	pos, gen := newStartpos(t)
	limit := len(startposExpected)
	if testing.Short() {
		limit = 5
	}
	for d := 0; d < limit; d++ {
		actual := perft(pos, gen, d, hashTable)
		if actual != startposExpected[d] {
			t.Errorf("at depth %d expected %+v got %+v", d, startposExpected[d], actual)
		}
	}
}

func BenchmarkPerftInitial(b *testing.B) {
	tables := board.BuildMoveTables(board.NewGraph(board.Traditional8x8))
	pos, _ := notation.Decode(startposString, tables)
	gen := board.NewMoveGenerator()
	for i := 0; i < b.N; i++ {
		perft(pos, gen, 4, nil)
	}
}
