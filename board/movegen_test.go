package board

import "testing"

func TestPseudoLegalMovesFirstMoveAtStartIsKnightMove(t *testing.T) {
	pos, _ := newTraditionalStart()
	gen := NewMoveGenerator()
	// The king cannot move at all from the initial position (every
	// adjacent tile is occupied), so the first emitted moves come from
	// the next piece in pieceOrder with a legal move: the knights
	// (queen/rook/bishop are also blocked at the start).
	moves := gen.PseudoLegalMoves(pos)
	if len(moves) == 0 {
		t.Fatal("expected pseudo-legal moves from the initial position")
	}
	firstPT, ok := pos.Pieces[White].PieceAt(moves[0].Source)
	if !ok {
		t.Fatalf("first move source has no piece")
	}
	if firstPT != Knight {
		t.Fatalf("expected the first generated move to be a Knight move (king/queen/rook/bishop are blocked at start), got %v", firstPT)
	}
}

func TestIsPlayableMoveRejectsIllegalMove(t *testing.T) {
	pos, _ := newTraditionalStart()
	gen := NewMoveGenerator()
	// King cannot move from e1 at the start.
	if gen.IsPlayableMove(pos, Move{Source: 4, Destination: 12}) {
		t.Fatalf("king move from e1 to e2 should not be playable: e2 is occupied by a pawn")
	}
}

func TestIsPlayableMoveAcceptsLegalMove(t *testing.T) {
	pos, _ := newTraditionalStart()
	gen := NewMoveGenerator()
	m := Move{Source: 8, Destination: 16} // a2-a3
	if !gen.IsPlayableMove(pos, m) {
		t.Fatalf("a2-a3 should be a playable opening move")
	}
}

func TestIsPlayableMoveRequiresPromotionField(t *testing.T) {
	tables := BuildMoveTables(NewGraph(Traditional8x8))
	pos := NewEmptyPosition(tables)
	gen := NewMoveGenerator()
	// An isolated white pawn one step from the terminal rank.
	*pos.Pieces[White].Board(Pawn) = pos.Pieces[White].Board(Pawn).Set(55) // h7
	pos.Pieces[White].UpdateOccupied()
	pos.current().Zobrist = pos.fullZobrist()

	m := Move{Source: 55, Destination: 63}
	if gen.IsPlayableMove(pos, m) {
		t.Fatalf("pawn reaching the terminal rank without a promotion field should not be playable")
	}
	m.HasPromotion = true
	m.Promotion = Queen
	if !gen.IsPlayableMove(pos, m) {
		t.Fatalf("pawn reaching the terminal rank with a promotion field should be playable")
	}
}
