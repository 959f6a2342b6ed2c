package board

// Triangular55 is the uniform triangle board: 55 tiles, 6 directions.
var Triangular55 = Topology{
	NumTiles:        55,
	NumDirections:   6,
	NumOrientations: 1,
	Tile:            triangularTile,
	ValidDirections: triangularValidDirections,
	Shift:           triangularShift,
}

func triRowLength(n int) int {
	switch {
	case n <= 9:
		return 10
	case n <= 18:
		return 9
	case n <= 26:
		return 8
	case n <= 33:
		return 7
	case n <= 39:
		return 6
	case n <= 44:
		return 5
	case n <= 48:
		return 4
	case n <= 51:
		return 3
	case n <= 53:
		return 2
	case n == 54:
		return 1
	default:
		return 0
	}
}

func triangularTile(t TileIndex) Tile {
	switch int(t) {
	case 3, 12, 20, 27:
		return Tile{Orientation: 0, PawnStart: White, HasPawnStart: true}
	case 6, 16, 25, 33:
		return Tile{Orientation: 0, PawnStart: Black, HasPawnStart: true}
	default:
		return Tile{Orientation: 0}
	}
}

func triangularValidDirections(t TileIndex) []Direction {
	n := int(t)
	invalid := map[Direction]bool{}

	if n <= 9 {
		invalid[4], invalid[5] = true, true
	}
	switch n {
	case 0, 10, 19, 27, 34, 40, 45, 49, 52, 54:
		invalid[2], invalid[3] = true, true
	}
	switch n {
	case 9, 18, 26, 33, 39, 44, 48, 51, 53, 54:
		invalid[0], invalid[1] = true, true
	}

	out := make([]Direction, 0, 6)
	for d := Direction(0); d < 6; d++ {
		if !invalid[d] {
			out = append(out, d)
		}
	}
	return out
}

func triangularShift(source TileIndex, dir Direction) int {
	row := triRowLength(int(source))
	switch dir {
	case 0:
		return 1
	case 1:
		return row
	case 2:
		return row - 1
	case 3:
		return -1
	case 4:
		return -row - 1
	case 5:
		return -row
	}
	return 0
}
