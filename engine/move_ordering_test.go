package engine

import (
	"testing"

	"github.com/AndyWilliams682/aperiodic-chess-sub000/board"
)

func TestOrderMovesPutsHashMoveFirst(t *testing.T) {
	tables := traditionalTables()
	pos := board.NewTraditionalInitialPosition(tables)
	gen := board.NewMoveGenerator()
	moves := gen.LegalMoves(pos)

	hashMove := moves[len(moves)-1]
	ordered := orderMoves(pos, moves, hashMove, true)
	if ordered[0] != hashMove {
		t.Fatalf("expected hash move %+v first, got %+v", hashMove, ordered[0])
	}
	if len(ordered) != len(moves) {
		t.Fatalf("orderMoves must not drop or add moves")
	}
}

func TestOrderMovesRecognizesHashMoveFromIndependentGeneration(t *testing.T) {
	tables := traditionalTables()
	pos := board.NewTraditionalInitialPosition(tables)
	gen := board.NewMoveGenerator()

	// hashMove is a double push, so it carries a freshly allocated
	// EnPassant pointer distinct from any later regeneration's.
	var hashMove board.Move
	found := false
	for _, m := range gen.LegalMoves(pos) {
		if m.EnPassant != nil {
			hashMove = m
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected at least one double-push move in the starting position")
	}

	// A second, independent LegalMoves call allocates a new *EnPassantData
	// for the logically identical move.
	moves := gen.LegalMoves(pos)
	ordered := orderMoves(pos, moves, hashMove, true)
	if !sameMove(ordered[0], hashMove) {
		t.Fatalf("expected the regenerated hash move %+v first, got %+v", hashMove, ordered[0])
	}
	if ordered[0] == hashMove {
		t.Fatalf("test is not exercising the cross-call case: pointers unexpectedly match")
	}
}

func TestOrderMovesSortsCapturesBeforeQuietMoves(t *testing.T) {
	tables := traditionalTables()
	pos := board.NewEmptyPosition(tables)
	// A white rook that can either capture a black queen on tile 8 or
	// make a quiet move to tile 16.
	*pos.Pieces[board.White].Board(board.Rook) = pos.Pieces[board.White].Board(board.Rook).Set(0)
	*pos.Pieces[board.Black].Board(board.Queen) = pos.Pieces[board.Black].Board(board.Queen).Set(8)
	pos.Pieces[board.White].UpdateOccupied()
	pos.Pieces[board.Black].UpdateOccupied()

	quiet := board.Move{Source: 0, Destination: 16}
	capture := board.Move{Source: 0, Destination: 8}
	moves := []board.Move{quiet, capture}

	ordered := orderMoves(pos, moves, board.Move{}, false)
	if ordered[0] != capture {
		t.Fatalf("expected the queen capture to sort first, got %+v then %+v", ordered[0], ordered[1])
	}
}
