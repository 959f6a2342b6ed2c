package engine

import (
	"testing"

	"github.com/AndyWilliams682/aperiodic-chess-sub000/board"
)

func traditionalTables() *board.MoveTables {
	return board.BuildMoveTables(board.NewGraph(board.Traditional8x8))
}

func TestEvaluateInitialPositionIsBalanced(t *testing.T) {
	tables := traditionalTables()
	pos := board.NewTraditionalInitialPosition(tables)
	eval := NewMobilityEvaluator(tables)

	if score := eval.Evaluate(pos); score != 0 {
		t.Fatalf("expected a symmetric initial position to evaluate to 0, got %d", score)
	}
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	tables := traditionalTables()
	pos := board.NewEmptyPosition(tables)
	*pos.Pieces[board.White].Board(board.Queen) = pos.Pieces[board.White].Board(board.Queen).Set(4)
	pos.Pieces[board.White].UpdateOccupied()

	eval := NewMobilityEvaluator(tables)
	if score := eval.Evaluate(pos); score <= 0 {
		t.Fatalf("a lone white queen should score positive for White to move, got %d", score)
	}
}
