package board

// pieceOrder is the deterministic piece-type iteration order move
// generation uses: King, Queen, Rook, Bishop, Knight, Pawn.
var pieceOrder = [NumPieceTypes]PieceType{King, Queen, Rook, Bishop, Knight, Pawn}

// promotionOrder is the order promotion moves are emitted in.
var promotionOrder = [4]PieceType{Knight, Bishop, Rook, Queen}

// MoveGenerator enumerates pseudo-legal and legal moves for a Position,
// using its MoveTables for all attack queries.
type MoveGenerator struct{}

// NewMoveGenerator returns a stateless generator; kept as a type (rather
// than free functions) to mirror the source's object shape and leave room
// for future per-generator state (e.g. move ordering hints) without an API
// break.
func NewMoveGenerator() *MoveGenerator { return &MoveGenerator{} }

// PseudoLegalMoves enumerates every move obeying piece movement and capture
// rules, without filtering for check. Iteration order is deterministic:
// piece type in pieceOrder, then lowest-bit-first source, then
// lowest-bit-first destination; promotions are emitted Knight, Bishop,
// Rook, Queen.
func (g *MoveGenerator) PseudoLegalMoves(p *Position) []Move {
	var moves []Move
	a := p.Active
	mt := p.Tables
	occupied := p.Occupied()
	allied := p.Pieces[a].Occupied
	enemies := p.Pieces[a.Opponent()].Occupied
	ep := p.CurrentEnPassant()

	for _, pt := range pieceOrder {
		for srcBB := p.Pieces[a].PieceBoards[pt]; !srcBB.IsEmpty(); srcBB = srcBB.ClearLowestOne() {
			src, _ := srcBB.LowestOne()

			if pt == Pawn {
				moves = append(moves, g.pawnMoves(p, a, src, enemies, occupied, ep)...)
				continue
			}

			attacks := mt.QueryPiece(pt, src, occupied).AndNot(allied)
			for destBB := attacks; !destBB.IsEmpty(); destBB = destBB.ClearLowestOne() {
				dst, _ := destBB.LowestOne()
				moves = append(moves, Move{Source: src, Destination: dst})
			}
		}
	}
	return moves
}

func (g *MoveGenerator) pawnMoves(p *Position, a Color, src TileIndex, enemies, occupied BitBoard, ep *EnPassantData) []Move {
	mt := p.Tables
	destinations := mt.QueryPawn(a, src, enemies, occupied, ep)
	var newEP *EnPassantData
	if rec, ok := mt.CheckEnPassantable(a, src); ok {
		newEP = &rec
	}
	promotable := mt.CheckPromotable(a, src, destinations)
	isPromotion := map[TileIndex]bool{}
	for _, t := range promotable {
		isPromotion[t] = true
	}

	var moves []Move
	for destBB := destinations; !destBB.IsEmpty(); destBB = destBB.ClearLowestOne() {
		dst, _ := destBB.LowestOne()

		var attachedEP *EnPassantData
		if newEP != nil && dst == newEP.OccupiedTile {
			attachedEP = newEP
		}

		if isPromotion[dst] {
			for _, promo := range promotionOrder {
				moves = append(moves, Move{
					Source: src, Destination: dst,
					Promotion: promo, HasPromotion: true,
					EnPassant: attachedEP,
				})
			}
			continue
		}
		moves = append(moves, Move{Source: src, Destination: dst, EnPassant: attachedEP})
	}
	return moves
}

// LegalMoves filters PseudoLegalMoves by make/IsInCheck/unmake.
func (g *MoveGenerator) LegalMoves(p *Position) []Move {
	mover := p.Active
	pseudo := g.PseudoLegalMoves(p)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		p.MakeMove(m)
		inCheck := p.IsInCheck(mover)
		p.UnmakeMove(m)
		if !inCheck {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsPlayableMove implements the boundary legality check from the
// error-handling design: source must hold a piece of the active color,
// destination must be in that piece's generated move set, the resulting
// position must not leave the mover in check, and a pawn reaching a
// promotion tile must carry a promotion field.
func (g *MoveGenerator) IsPlayableMove(p *Position, m Move) bool {
	if pt, ok := p.Pieces[p.Active].PieceAt(m.Source); !ok {
		return false
	} else if pt == Pawn {
		promotable := p.Tables.CheckPromotable(p.Active, m.Source, m.Destination.Bit())
		if len(promotable) > 0 && !m.HasPromotion {
			return false
		}
	}
	for _, legal := range g.LegalMoves(p) {
		if legal.Source == m.Source && legal.Destination == m.Destination &&
			legal.HasPromotion == m.HasPromotion && legal.Promotion == m.Promotion {
			return true
		}
	}
	return false
}
