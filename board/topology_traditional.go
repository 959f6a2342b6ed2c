package board

// Traditional8x8 is the standard 8x8 square board: 64 tiles, 8 directions
// (0=N, counter-clockwise), pawn starts on ranks 1 (White) and 6 (Black).
var Traditional8x8 = Topology{
	NumTiles:        64,
	NumDirections:   8,
	NumOrientations: 1,
	Tile:            traditionalTile,
	ValidDirections: traditionalValidDirections,
	Shift:           traditionalShift,
}

func traditionalTile(t TileIndex) Tile {
	rank := int(t) / 8
	switch rank {
	case 1:
		return Tile{Orientation: 0, PawnStart: White, HasPawnStart: true}
	case 6:
		return Tile{Orientation: 0, PawnStart: Black, HasPawnStart: true}
	default:
		return Tile{Orientation: 0}
	}
}

// traditionalShift gives the tile-index delta for each of the 8 directions:
// N=+8, NW=+7, W=-1, SW=-9, S=-8, SE=-7, E=+1, NE=+9.
func traditionalShift(_ TileIndex, dir Direction) int {
	switch dir {
	case 0:
		return 8
	case 1:
		return 7
	case 2:
		return -1
	case 3:
		return -9
	case 4:
		return -8
	case 5:
		return -7
	case 6:
		return 1
	case 7:
		return 9
	}
	return 0
}

func traditionalValidDirections(t TileIndex) []Direction {
	file := int(t) % 8
	rank := int(t) / 8
	all := []Direction{0, 1, 2, 3, 4, 5, 6, 7}
	invalid := map[Direction]bool{}
	if rank == 7 {
		invalid[0], invalid[1], invalid[7] = true, true, true
	}
	if rank == 0 {
		invalid[3], invalid[4], invalid[5] = true, true, true
	}
	if file == 0 {
		invalid[1], invalid[2], invalid[3] = true, true, true
	}
	if file == 7 {
		invalid[5], invalid[6], invalid[7] = true, true, true
	}
	out := make([]Direction, 0, 8)
	for _, d := range all {
		if !invalid[d] {
			out = append(out, d)
		}
	}
	return out
}
