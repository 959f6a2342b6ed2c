package board

import "fmt"

// FiftyMoveThreshold is the ply count at which FiftyMoveDraw triggers.
// Preserved at 50 (not promoted to FIDE's 100-ply rule) per the design
// notes: no fixture in the source material requires the stricter count.
const FiftyMoveThreshold = 50

// PositionRecord is one immutable snapshot of the history chain. Rather
// than the source's reference-counted linked list, it lives in an explicit
// stack inside Position (see the design notes: this sidesteps reference
// cycles, avoids allocator traffic during deep search, and matches
// single-threaded access).
type PositionRecord struct {
	EnPassant         *EnPassantData
	HasCaptured       bool
	CapturedPieceType PieceType
	CapturedAt        TileIndex
	CapturedEnPassant bool
	Zobrist           uint64
	FiftyMoveCounter  uint32
}

// Position is side-to-move plus two PieceSets plus the history stack.
// Invariant: the two PieceSets' Occupied bitboards are disjoint.
type Position struct {
	Tables  *MoveTables
	Active  Color
	Pieces  [NumColors]PieceSet
	records []PositionRecord
}

// NewEmptyPosition builds a Position with no pieces, White to move, sharing
// tables (immutable, process-wide) by reference.
func NewEmptyPosition(tables *MoveTables) *Position {
	p := &Position{Tables: tables, Active: White}
	p.records = []PositionRecord{{}}
	p.current().Zobrist = p.fullZobrist()
	return p
}

func (p *Position) current() *PositionRecord { return &p.records[len(p.records)-1] }

// Zobrist returns the current position's incrementally-maintained hash.
func (p *Position) Zobrist() uint64 { return p.current().Zobrist }

// FiftyMoveCounter returns the current ply count since the last pawn move
// or capture.
func (p *Position) FiftyMoveCounter() uint32 { return p.current().FiftyMoveCounter }

// CurrentEnPassant returns the en-passant state created by the last move,
// if any.
func (p *Position) CurrentEnPassant() *EnPassantData { return p.current().EnPassant }

// Occupied returns the union of both colors' occupancy.
func (p *Position) Occupied() BitBoard { return p.Pieces[White].Occupied.Or(p.Pieces[Black].Occupied) }

func (p *Position) fullZobrist() uint64 {
	var hash uint64
	for c := 0; c < NumColors; c++ {
		for pt := 0; pt < NumPieceTypes; pt++ {
			for cur := p.Pieces[c].PieceBoards[pt]; !cur.IsEmpty(); cur = cur.ClearLowestOne() {
				t, _ := cur.LowestOne()
				hash ^= DefaultZobrist.Pieces[c][pt][t]
			}
		}
	}
	if ep := p.current().EnPassant; ep != nil {
		hash ^= DefaultZobrist.EnPassant[ep.PassedTile]
	}
	if p.Active == Black {
		hash ^= DefaultZobrist.BlackToMove
	}
	return hash
}

// NewTraditionalInitialPosition builds the standard chess starting
// position on a traditional 8x8 board: back rank R N B Q K B N R, pawns on
// the second rank, mirrored for Black.
func NewTraditionalInitialPosition(tables *MoveTables) *Position {
	p := &Position{Tables: tables, Active: White}
	backRank := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		*p.Pieces[White].Board(backRank[file]) = p.Pieces[White].Board(backRank[file]).Set(TileIndex(file))
		*p.Pieces[White].Board(Pawn) = p.Pieces[White].Board(Pawn).Set(TileIndex(8 + file))
		*p.Pieces[Black].Board(backRank[file]) = p.Pieces[Black].Board(backRank[file]).Set(TileIndex(56 + file))
		*p.Pieces[Black].Board(Pawn) = p.Pieces[Black].Board(Pawn).Set(TileIndex(48 + file))
	}
	p.Pieces[White].UpdateOccupied()
	p.Pieces[Black].UpdateOccupied()
	p.records = []PositionRecord{{}}
	p.current().Zobrist = p.fullZobrist()
	return p
}

// SetEnPassantForDecode installs en-passant state on the current record.
// Exposed for the notation package, which must set ep state before
// recomputing the initial Zobrist hash during decode.
func (p *Position) SetEnPassantForDecode(ep *EnPassantData) {
	p.current().EnPassant = ep
}

// RecomputeZobristForDecode rebuilds the current record's hash from piece
// placement, side to move, and en-passant state. Exposed for the notation
// package to call once decoding finishes populating those.
func (p *Position) RecomputeZobristForDecode() {
	p.current().Zobrist = p.fullZobrist()
}

// MakeMove applies m, pushing a new PositionRecord. Panics if source holds
// no piece of the active color: a programmer error, not a reportable input
// error (callers at the boundary must validate with IsPlayableMove first).
func (p *Position) MakeMove(m Move) {
	a := p.Active
	b := a.Opponent()
	cur := p.current()
	hash := cur.Zobrist

	movingPiece, ok := p.Pieces[a].PieceAt(m.Source)
	if !ok {
		panic(fmt.Sprintf("board: MakeMove: no %s piece at tile %d", a, m.Source))
	}
	hash ^= DefaultZobrist.Pieces[a][movingPiece][m.Source]
	hash ^= DefaultZobrist.Pieces[a][movingPiece][m.Destination]
	p.Pieces[a].MovePiece(m.Source, m.Destination)

	rec := PositionRecord{EnPassant: m.EnPassant}

	if capt, ok := p.Pieces[b].PieceAt(m.Destination); ok {
		hash ^= DefaultZobrist.Pieces[b][capt][m.Destination]
		p.Pieces[b].CapturePiece(m.Destination)
		rec.HasCaptured = true
		rec.CapturedPieceType = capt
		rec.CapturedAt = m.Destination
	}

	if m.HasPromotion {
		hash ^= DefaultZobrist.Pieces[a][Pawn][m.Destination]
		hash ^= DefaultZobrist.Pieces[a][m.Promotion][m.Destination]
		p.Pieces[a].PromotePiece(m.Destination, m.Promotion)
	}

	isPawnMove := movingPiece == Pawn
	if isPawnMove && cur.EnPassant != nil && cur.EnPassant.PassedTile == m.Destination {
		capturedPawnTile := cur.EnPassant.OccupiedTile
		hash ^= DefaultZobrist.Pieces[b][Pawn][capturedPawnTile]
		p.Pieces[b].CapturePiece(capturedPawnTile)
		rec.HasCaptured = true
		rec.CapturedPieceType = Pawn
		rec.CapturedAt = capturedPawnTile
		rec.CapturedEnPassant = true
	}

	// En-passant Zobrist key is standardized on passed_tile throughout (see
	// DESIGN.md): the source material XORs by source_tile here but by
	// passed_tile in its full-rebuild hash, an inconsistency we resolve by
	// always using passed_tile, matching the array it actually indexes.
	if cur.EnPassant != nil {
		hash ^= DefaultZobrist.EnPassant[cur.EnPassant.PassedTile]
	}
	if m.EnPassant != nil {
		hash ^= DefaultZobrist.EnPassant[m.EnPassant.PassedTile]
	}

	hash ^= DefaultZobrist.BlackToMove

	if rec.HasCaptured || isPawnMove {
		rec.FiftyMoveCounter = 0
	} else {
		rec.FiftyMoveCounter = cur.FiftyMoveCounter + 1
	}
	rec.Zobrist = hash

	p.Pieces[White].UpdateOccupied()
	p.Pieces[Black].UpdateOccupied()
	p.records = append(p.records, rec)
	p.Active = b
}

// UnmakeMove reverses the effect of the matching MakeMove(m) call. Panics if
// called below the root record: a programmer error (popping history below
// root).
func (p *Position) UnmakeMove(m Move) {
	if len(p.records) <= 1 {
		panic("board: UnmakeMove: cannot pop below root")
	}
	p.Active = p.Active.Opponent()
	a := p.Active
	b := a.Opponent()
	rec := p.current()

	if m.HasPromotion {
		p.Pieces[a].DemotePiece(m.Destination)
	}
	p.Pieces[a].MovePiece(m.Destination, m.Source)

	if rec.HasCaptured {
		p.Pieces[b].ReturnPiece(rec.CapturedAt, rec.CapturedPieceType)
	}

	p.Pieces[White].UpdateOccupied()
	p.Pieces[Black].UpdateOccupied()
	p.records = p.records[:len(p.records)-1]
}

// IsInCheck reports whether c's king is attacked, using reverse tables as
// attacker-candidate generators: candidates are re-queried against the
// forward slide table with full occupancy before being trusted, since a
// reversed slide table is blocker-unaware by construction (see the design
// notes on reverse-table asymmetry).
func (p *Position) IsInCheck(c Color) bool {
	kingTile, ok := p.Pieces[c].PieceBoards[King].LowestOne()
	if !ok {
		return false
	}
	enemy := c.Opponent()
	occupied := p.Occupied()
	mt := p.Tables

	rookQueen := p.Pieces[enemy].PieceBoards[Rook].Or(p.Pieces[enemy].PieceBoards[Queen])
	bishopQueen := p.Pieces[enemy].PieceBoards[Bishop].Or(p.Pieces[enemy].PieceBoards[Queen])
	for d, table := range mt.Slides.byDirection {
		var attackers BitBoard
		if IsOrthogonal(Direction(d)) {
			attackers = rookQueen
		} else {
			attackers = bishopQueen
		}
		candidates := mt.reverseSlideCandidates[d][kingTile].And(attackers)
		for cur := candidates; !cur.IsEmpty(); cur = cur.ClearLowestOne() {
			src, _ := cur.LowestOne()
			if table.Query(src, occupied).Test(kingTile) {
				return true
			}
		}
	}

	if !mt.reverseKnight[kingTile].And(p.Pieces[enemy].PieceBoards[Knight]).IsEmpty() {
		return true
	}
	if !mt.reversePawnAttack[enemy][kingTile].And(p.Pieces[enemy].PieceBoards[Pawn]).IsEmpty() {
		return true
	}
	return false
}

// Outcome classifies the current position as ongoing or terminal.
type Outcome int

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
	FiftyMoveDraw
)

func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case FiftyMoveDraw:
		return "fifty-move draw"
	default:
		return "ongoing"
	}
}

// GameOver describes a terminal condition. Winner is only meaningful when
// HasWinner is true (checkmate): the winner is the opponent of the side
// that was checkmated.
type GameOver struct {
	Outcome   Outcome
	Winner    Color
	HasWinner bool
}

// Result classifies the position using gen's legal move generation. Legal
// move emptiness combined with check status distinguishes checkmate from
// stalemate; the fifty-move draw is checked first since it can coexist with
// either.
func (p *Position) Result(gen *MoveGenerator) GameOver {
	if p.current().FiftyMoveCounter >= FiftyMoveThreshold {
		return GameOver{Outcome: FiftyMoveDraw}
	}
	if len(gen.LegalMoves(p)) > 0 {
		return GameOver{Outcome: Ongoing}
	}
	if p.IsInCheck(p.Active) {
		return GameOver{Outcome: Checkmate, Winner: p.Active.Opponent(), HasWinner: true}
	}
	return GameOver{Outcome: Stalemate}
}
