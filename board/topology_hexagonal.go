package board

// Hexagonal91 is the Glinski hexagonal board: 91 tiles arranged in an
// 11-row diamond, 12 directions.
var Hexagonal91 = Topology{
	NumTiles:        91,
	NumDirections:   12,
	NumOrientations: 1,
	Tile:            hexagonalTile,
	ValidDirections: hexagonalValidDirections,
	Shift:           hexagonalShift,
}

func hexRowLength(n int) int {
	switch {
	case n <= 5 || n >= 85:
		return 6
	case n <= 12 || n >= 78:
		return 7
	case n <= 20 || n >= 70:
		return 8
	case n <= 29 || n >= 61:
		return 9
	case n <= 39 || n >= 51:
		return 10
	default:
		return 11
	}
}

func hexagonalTile(t TileIndex) Tile {
	n := int(t)
	switch {
	case n == 4 || n == 10 || n == 17 || n == 25 || (n >= 30 && n <= 34):
		return Tile{Orientation: 0, PawnStart: White, HasPawnStart: true}
	case (n >= 56 && n <= 60) || n == 65 || n == 73 || n == 80 || n == 86:
		return Tile{Orientation: 0, PawnStart: Black, HasPawnStart: true}
	default:
		return Tile{Orientation: 0}
	}
}

func hexagonalValidDirections(t TileIndex) []Direction {
	n := int(t)
	invalid := map[Direction]bool{}

	mark := func(ds ...Direction) {
		for _, d := range ds {
			invalid[d] = true
		}
	}

	switch {
	case n >= 0 && n <= 5:
		mark(5, 6, 7, 8, 9)
	case n == 50 || n == 60 || n == 69 || n == 77 || n == 84 || n == 90:
		mark(9, 10, 11, 0, 1)
	case n == 40 || n == 51 || n == 61 || n == 70 || n == 78 || n == 85:
		mark(1, 2, 3, 4, 5)
	case n >= 7 && n <= 11:
		mark(7)
	case n == 49 || n == 59 || n == 68 || n == 76 || n == 83:
		mark(11)
	case n == 41 || n == 52 || n == 62 || n == 71 || n == 79:
		mark(3)
	}

	switch {
	case n == 5 || n == 12 || n == 20 || n == 29 || n == 39 || n == 50:
		mark(7, 8, 9, 10, 11)
	case n >= 85 && n <= 90:
		mark(11, 0, 1, 2, 3)
	case n == 0 || n == 6 || n == 13 || n == 21 || n == 30 || n == 40:
		mark(3, 4, 5, 6, 7)
	case n >= 79 && n <= 83:
		mark(1)
	case n == 7 || n == 14 || n == 22 || n == 31 || n == 41:
		mark(5)
	case n == 11 || n == 19 || n == 28 || n == 38 || n == 49:
		mark(9)
	}

	out := make([]Direction, 0, 12)
	for d := Direction(0); d < 12; d++ {
		if !invalid[d] {
			out = append(out, d)
		}
	}
	return out
}

func hexagonalShift(source TileIndex, dir Direction) int {
	n := int(source)
	row := hexRowLength(n)
	switch dir {
	case 0:
		if n <= 40 {
			return row + 1
		}
		return row
	case 1:
		switch {
		case n <= 30:
			return 2*row + 2
		case n >= 41:
			return 2*row - 2
		default:
			return 2*row + 1
		}
	case 2:
		if n <= 40 {
			return row
		}
		return row - 1
	case 3:
		if n <= 40 {
			return row - 1
		}
		return row - 2
	case 4:
		return -1
	case 5:
		if n <= 51 {
			return -row - 1
		}
		return -row - 2
	case 6:
		if n <= 51 {
			return -row
		}
		return -row - 1
	case 7:
		switch {
		case n >= 62:
			return -2*row - 2
		case n <= 41:
			return -2*row + 2
		default:
			return -2*row - 1
		}
	case 8:
		if n <= 51 {
			return -row + 1
		}
		return -row
	case 9:
		if n <= 51 {
			return -row + 2
		}
		return -row + 1
	case 10:
		return 1
	case 11:
		if n <= 40 {
			return row + 2
		}
		return row + 1
	}
	return 0
}
