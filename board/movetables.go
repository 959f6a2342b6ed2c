package board

// JumpTable is a per-source-tile attack set for unblockable movement
// (king, knight, and the reverse of any table used only as a candidate
// generator).
type JumpTable []BitBoard

func newJumpTable(n int) JumpTable { return make(JumpTable, n) }

// reverseJumpTable transposes a source->destinations relation into a
// destination->sources relation.
func reverseJumpTable(fwd JumpTable) JumpTable {
	rev := newJumpTable(len(fwd))
	for src, destinations := range fwd {
		for cur := destinations; !cur.IsEmpty(); cur = cur.ClearLowestOne() {
			dst, _ := cur.LowestOne()
			rev[dst] = rev[dst].Set(TileIndex(src))
		}
	}
	return rev
}

// DirectionalSlideTable is the "perfect hash" blocker-aware attack table for
// one slide direction: per source tile, occupancy-subset (restricted to the
// tile's ray in that direction) maps to the resulting attack set. The
// unobstructed ray itself is stored under the empty-occupancy key.
type DirectionalSlideTable struct {
	byTile []map[BitBoard]BitBoard
}

func buildDirectionalSlideTable(g *Graph, dir Direction) *DirectionalSlideTable {
	n := g.NumTiles()
	dst := &DirectionalSlideTable{byTile: make([]map[BitBoard]BitBoard, n)}
	for i := 0; i < n; i++ {
		tile := TileIndex(i)
		unobstructed := g.SlideFrom(tile, dir, 0, BitBoard{})
		m := map[BitBoard]BitBoard{{}: unobstructed}
		for _, subset := range Subsets(unobstructed) {
			m[subset] = g.SlideFrom(tile, dir, 0, subset)
		}
		dst.byTile[i] = m
	}
	return dst
}

// Unobstructed returns the ray from tile with no blockers, i.e. the key
// space every occupancy is masked against before lookup.
func (d *DirectionalSlideTable) Unobstructed(tile TileIndex) BitBoard {
	return d.byTile[tile][BitBoard{}]
}

// Query returns the blocker-aware attack set from tile given occupied.
func (d *DirectionalSlideTable) Query(tile TileIndex, occupied BitBoard) BitBoard {
	key := occupied.And(d.Unobstructed(tile))
	return d.byTile[tile][key]
}

// reverseCandidates builds a JumpTable of destination->source where source
// could reach destination along this direction if the ray were completely
// unobstructed. It is NOT blocker-aware; callers must re-query Query on each
// candidate with real occupancy before trusting it as an attacker.
func (d *DirectionalSlideTable) reverseCandidates(n int) JumpTable {
	rev := newJumpTable(n)
	for src := 0; src < n; src++ {
		unobstructed := d.Unobstructed(TileIndex(src))
		for cur := unobstructed; !cur.IsEmpty(); cur = cur.ClearLowestOne() {
			dst, _ := cur.LowestOne()
			rev[dst] = rev[dst].Set(TileIndex(src))
		}
	}
	return rev
}

// SlideTables packages one DirectionalSlideTable per direction and the
// orthogonal/diagonal query helpers used by Rook/Bishop/Queen.
type SlideTables struct {
	byDirection []*DirectionalSlideTable
}

func buildSlideTables(g *Graph) *SlideTables {
	e := g.NumDirections()
	st := &SlideTables{byDirection: make([]*DirectionalSlideTable, e)}
	for d := 0; d < e; d++ {
		st.byDirection[d] = buildDirectionalSlideTable(g, Direction(d))
	}
	return st
}

// Orthogonal returns the union of attacks along every orthogonal direction.
func (st *SlideTables) Orthogonal(tile TileIndex, occupied BitBoard) BitBoard {
	var result BitBoard
	for d, table := range st.byDirection {
		if IsOrthogonal(Direction(d)) {
			result = result.Or(table.Query(tile, occupied))
		}
	}
	return result
}

// Diagonal returns the union of attacks along every diagonal direction.
func (st *SlideTables) Diagonal(tile TileIndex, occupied BitBoard) BitBoard {
	var result BitBoard
	for d, table := range st.byDirection {
		if !IsOrthogonal(Direction(d)) {
			result = result.Or(table.Query(tile, occupied))
		}
	}
	return result
}

// PawnTables holds one color's pawn movement tables: single push, attacks,
// the double push (only defined on pawn-start tiles), and the promotion
// board (tiles with no further single-step, i.e. the terminal rank).
type PawnTables struct {
	Single        JumpTable
	Attack        JumpTable
	doubleDest    map[TileIndex]TileIndex
	doubleBlocker map[TileIndex]BitBoard
	Promotion     BitBoard
}

// Double returns the double-push destination from tile given occupied, or
// the empty board if tile has no double push, the intermediate square is
// blocked, or the destination square itself is occupied.
func (pt *PawnTables) Double(tile TileIndex, occupied BitBoard) BitBoard {
	blocker, ok := pt.doubleBlocker[tile]
	if !ok {
		return BitBoard{}
	}
	if !occupied.And(blocker).IsEmpty() {
		return BitBoard{}
	}
	return pt.doubleDest[tile].Bit().AndNot(occupied)
}

func buildPawnTables(g *Graph, c Color) *PawnTables {
	n := g.NumTiles()
	pt := &PawnTables{
		Single:        newJumpTable(n),
		Attack:        newJumpTable(n),
		doubleDest:    map[TileIndex]TileIndex{},
		doubleBlocker: map[TileIndex]BitBoard{},
	}
	e := g.NumDirections()
	for i := 0; i < n; i++ {
		tile := TileIndex(i)
		forward := g.ForwardDirection(tile, c)
		pt.Single[i] = g.SlideFrom(tile, forward, 1, BitBoard{})
		left, right := adjacent(forward, e)
		pt.Attack[i] = g.SlideFrom(tile, left, 1, BitBoard{}).Or(g.SlideFrom(tile, right, 1, BitBoard{}))

		if pt.Single[i].IsEmpty() {
			pt.Promotion = pt.Promotion.Set(tile)
		}

		if g.TileAt(tile).HasPawnStart && g.TileAt(tile).PawnStart == c {
			intermediate, ok := pt.Single[i].LowestOne()
			if !ok {
				continue
			}
			interForward := g.ForwardDirection(intermediate, c)
			double := g.SlideFrom(intermediate, interForward, 1, BitBoard{})
			if dest, ok := double.LowestOne(); ok {
				pt.doubleDest[tile] = dest
				pt.doubleBlocker[tile] = pt.Single[i]
			}
		}
	}
	return pt
}

// MoveTables aggregates every precomputed jump/slide/pawn table plus the
// reverse tables used for check detection.
type MoveTables struct {
	Graph  *Graph
	King   JumpTable
	Knight JumpTable
	Slides *SlideTables
	Pawns  [NumColors]*PawnTables

	reverseKnight       JumpTable
	reverseSlideCandidates []JumpTable // indexed by direction
	reversePawnAttack   [NumColors]JumpTable
}

// BuildMoveTables precomputes every table from a constructed graph. This
// runs once at startup; the result is immutable and safe to share by
// reference thereafter.
func BuildMoveTables(g *Graph) *MoveTables {
	n := g.NumTiles()
	mt := &MoveTables{
		Graph:  g,
		King:   newJumpTable(n),
		Knight: newJumpTable(n),
		Slides: buildSlideTables(g),
	}
	for i := 0; i < n; i++ {
		tile := TileIndex(i)
		mt.King[i] = g.KingJumpsFrom(tile)
		mt.Knight[i] = g.KnightJumpsFrom(tile)
	}
	mt.Pawns[White] = buildPawnTables(g, White)
	mt.Pawns[Black] = buildPawnTables(g, Black)

	mt.reverseKnight = reverseJumpTable(mt.Knight)
	mt.reverseSlideCandidates = make([]JumpTable, g.NumDirections())
	for d, table := range mt.Slides.byDirection {
		mt.reverseSlideCandidates[d] = table.reverseCandidates(n)
	}
	mt.reversePawnAttack[White] = reverseJumpTable(mt.Pawns[White].Attack)
	mt.reversePawnAttack[Black] = reverseJumpTable(mt.Pawns[Black].Attack)
	return mt
}

// QueryPiece answers "which tiles does a piece of type pt at src attack
// given occupied?" for every non-pawn piece type. Panics on Pawn (callers
// must use QueryPawn) and on any other unreachable piece selection, guarding
// the path the source left unreachable-but-unchecked.
func (mt *MoveTables) QueryPiece(pt PieceType, src TileIndex, occupied BitBoard) BitBoard {
	switch pt {
	case King:
		return mt.King[src]
	case Knight:
		return mt.Knight[src]
	case Rook:
		return mt.Slides.Orthogonal(src, occupied)
	case Bishop:
		return mt.Slides.Diagonal(src, occupied)
	case Queen:
		return mt.Slides.Orthogonal(src, occupied).Or(mt.Slides.Diagonal(src, occupied))
	default:
		panic("board: QueryPiece: pawn must use QueryPawn")
	}
}

// QueryPawn answers the same question for a pawn of color c at src, given
// the enemy occupancy, total occupancy, and the current en-passant state
// (nil if none).
func (mt *MoveTables) QueryPawn(c Color, src TileIndex, enemies, occupied BitBoard, currentEP *EnPassantData) BitBoard {
	tables := mt.Pawns[c]
	singles := tables.Single[src].AndNot(occupied)
	var doubles BitBoard
	if !singles.IsEmpty() {
		doubles = tables.Double(src, occupied)
	}
	captureTargets := enemies
	if currentEP != nil {
		captureTargets = captureTargets.Set(currentEP.PassedTile)
	}
	captures := tables.Attack[src].And(captureTargets)
	return singles.Or(doubles).Or(captures)
}

// CheckEnPassantable builds the en-passant record that would result from a
// double push starting at src, if src is in fact a pawn-start tile for c.
func (mt *MoveTables) CheckEnPassantable(c Color, src TileIndex) (EnPassantData, bool) {
	tables := mt.Pawns[c]
	passed, ok := tables.Single[src].LowestOne()
	if !ok {
		return EnPassantData{}, false
	}
	dest, ok := tables.doubleDest[src]
	if !ok {
		return EnPassantData{}, false
	}
	return EnPassantData{SourceTile: src, PassedTile: passed, OccupiedTile: dest}, true
}

// CheckPromotable reports the destinations a pawn of color c at src could
// land on with no further single step available, i.e. the terminal rank.
// The source's equivalent loop never advanced (it reset its scan every
// iteration); this walks the candidate set with an explicit clear-lowest-bit
// iteration instead.
func (mt *MoveTables) CheckPromotable(c Color, src TileIndex, totalMoves BitBoard) []TileIndex {
	var out []TileIndex
	promotion := mt.Pawns[c].Promotion
	for cur := totalMoves.And(promotion); !cur.IsEmpty(); cur = cur.ClearLowestOne() {
		t, _ := cur.LowestOne()
		out = append(out, t)
	}
	return out
}
