package board

import "fmt"

// Color represents a side.
type Color uint8

const (
	White Color = iota
	Black

	NumColors = int(iota)
)

// Opponent returns the other color. Opponent is involutive.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// PieceType enumerates the six figures, fixed at indices 0..5 per the
// core's data model.
type PieceType uint8

const (
	King PieceType = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn

	NumPieceTypes = int(iota)
)

var pieceTypeChar = [NumPieceTypes]byte{'K', 'Q', 'R', 'B', 'N', 'P'}

// PieceTypeFromChar parses a case-insensitive figure letter (k/q/r/b/n/p).
// Any unrecognized letter maps to Pawn, matching the source notation's
// fallback behavior for the default arm of its match.
func PieceTypeFromChar(c byte) PieceType {
	switch c | 0x20 { // lowercase
	case 'k':
		return King
	case 'q':
		return Queen
	case 'r':
		return Rook
	case 'b':
		return Bishop
	case 'n':
		return Knight
	default:
		return Pawn
	}
}

// Char returns the uppercase figure letter for pt.
func (pt PieceType) Char() byte { return pieceTypeChar[pt] }

// Piece is a figure owned by one side.
type Piece struct {
	Type  PieceType
	Color Color
}

// Char returns the notation character for the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Char() byte {
	c := p.Type.Char()
	if p.Color == Black {
		c |= 0x20
	}
	return c
}

// PieceSet holds one color's piece-location bitboards plus their union.
// Invariant: Occupied equals the OR of every entry in PieceBoards, and any
// tile is set in at most one PieceBoards entry.
type PieceSet struct {
	PieceBoards [NumPieceTypes]BitBoard
	Occupied    BitBoard
}

// UpdateOccupied recomputes Occupied from PieceBoards.
func (ps *PieceSet) UpdateOccupied() {
	var occ BitBoard
	for _, b := range ps.PieceBoards {
		occ = occ.Or(b)
	}
	ps.Occupied = occ
}

// PieceAt returns the figure occupying tile, if any.
func (ps *PieceSet) PieceAt(tile TileIndex) (PieceType, bool) {
	for pt := 0; pt < NumPieceTypes; pt++ {
		if ps.PieceBoards[pt].Test(tile) {
			return PieceType(pt), true
		}
	}
	return 0, false
}

// Board returns a pointer to the bitboard for pt, for in-place mutation.
func (ps *PieceSet) Board(pt PieceType) *BitBoard { return &ps.PieceBoards[pt] }

// MovePiece relocates the piece at source to destination. Panics if source
// holds no piece: this is a programmer error per the error-handling design,
// not a reportable input error.
func (ps *PieceSet) MovePiece(source, destination TileIndex) {
	pt, ok := ps.PieceAt(source)
	if !ok {
		panic(fmt.Sprintf("board: MovePiece: no piece at tile %d", source))
	}
	b := ps.Board(pt)
	*b = b.Flip(source).Flip(destination)
}

// CapturePiece removes whatever piece sits at tile. Panics if empty.
func (ps *PieceSet) CapturePiece(tile TileIndex) PieceType {
	pt, ok := ps.PieceAt(tile)
	if !ok {
		panic(fmt.Sprintf("board: CapturePiece: no piece at tile %d", tile))
	}
	ps.Board(pt).andNotInPlace(tile)
	return pt
}

// andNotInPlace clears tile from *b.
func (b *BitBoard) andNotInPlace(tile TileIndex) { *b = b.Clear(tile) }

// ReturnPiece re-spawns a previously captured piece at tile. Inverse of
// CapturePiece.
func (ps *PieceSet) ReturnPiece(tile TileIndex, pt PieceType) {
	b := ps.Board(pt)
	*b = b.Set(tile)
}

// PromotePiece converts the pawn at tile into target. The move must already
// have been applied (the pawn bit at tile set) before calling this.
func (ps *PieceSet) PromotePiece(tile TileIndex, target PieceType) {
	ps.Board(Pawn).andNotInPlace(tile)
	b := ps.Board(target)
	*b = b.Set(tile)
}

// DemotePiece is the inverse of PromotePiece.
func (ps *PieceSet) DemotePiece(tile TileIndex) {
	pt, ok := ps.PieceAt(tile)
	if !ok {
		panic(fmt.Sprintf("board: DemotePiece: no piece at tile %d", tile))
	}
	ps.Board(pt).andNotInPlace(tile)
	b := ps.Board(Pawn)
	*b = b.Set(tile)
}
