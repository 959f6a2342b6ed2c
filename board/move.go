package board

// EnPassantData describes one double pawn push: the pawn's origin, the
// square it skipped over (capturable en passant), and the square it landed
// on.
type EnPassantData struct {
	SourceTile   TileIndex
	PassedTile   TileIndex
	OccupiedTile TileIndex
}

// Move is a single ply. EnPassantData, when present, is the NEW en-passant
// state this move creates (a double pawn push) - not the consumption of an
// existing one.
type Move struct {
	Source      TileIndex
	Destination TileIndex
	Promotion   PieceType
	HasPromotion bool
	EnPassant   *EnPassantData
}
