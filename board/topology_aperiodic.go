package board

// Aperiodic122 is the aperiodic-tiling board: 122 tiles, 10 directions, 6
// orientation values. Orientation is a per-tile rotation applied to the
// pawn's forward direction, and also drives the edge-shift derivation
// below (see aperiodicShift).
var Aperiodic122 = Topology{
	NumTiles:        122,
	NumDirections:   10,
	NumOrientations: 6,
	Tile:            aperiodicTile,
	ValidDirections: aperiodicValidDirections,
	Shift:           aperiodicShift,
}

// aperiodicOrientation is the per-tile rotation value, taken verbatim from
// the source tiling's generated layout.
var aperiodicOrientation = [122]int{
	0, 4, 5, 0, 5, 0, 5, 0, 5, 1, 0, 5, 0, 2, 0, 2, 0, 4, 1, 0, // 20
	2, 0, 4, 1, 1, 1, 3, 1, 1, 1, 3, 2, 3, 0, 5, 2, 3, 1, 3, 0, // 40
	5, 2, 1, 2, 1, 0, 4, 0, 0, 2, 1, 0, 2, 0, 4, 5, 1, 4, 5, 4, // 60
	2, 0, 4, 5, 1, 1, 1, 3, 3, 3, 1, 1, 3, 3, 0, 5, 4, 5, 3, 2, // 80
	3, 2, 1, 5, 3, 2, 3, 2, 1, 0, 5, 2, 1, 4, 0, 4, 2, 1, 4, 1, // 100
	0, 2, 3, 2, 1, 0, 3, 5, 1, 5, 3, 2, 3, 0, 5, 1, 4, 5, 2, 1, // 120
	4, 2, // 122
}

var aperiodicWhiteStart = map[int]bool{6: true, 16: true, 26: true, 35: true, 57: true, 80: true, 93: true, 103: true, 104: true}
var aperiodicBlackStart = map[int]bool{70: true, 71: true, 72: true, 85: true, 95: true, 106: true, 107: true, 110: true, 121: true}

func aperiodicTile(t TileIndex) Tile {
	n := int(t)
	tile := Tile{Orientation: aperiodicOrientation[n]}
	if aperiodicWhiteStart[n] {
		tile.PawnStart, tile.HasPawnStart = White, true
	} else if aperiodicBlackStart[n] {
		tile.PawnStart, tile.HasPawnStart = Black, true
	}
	return tile
}

var aperiodicInvalidSets = []struct {
	tiles []int
	dirs  []Direction
}{
	{[]int{9, 17, 18, 27, 36, 46, 47, 48, 69, 71, 83, 95, 107, 114, 117}, []Direction{0}},
	{[]int{0, 8, 9, 10, 18, 19, 27, 35, 36, 47, 48, 59, 61, 69, 71, 81, 82, 95, 106, 107, 109, 116, 117}, []Direction{1}},
	{[]int{0, 5, 7, 18, 19, 59, 61, 82, 109, 116}, []Direction{2}},
	{[]int{0, 2, 3, 4, 5, 6, 7, 14, 16, 18, 59, 82, 84, 94, 102, 103, 104, 118}, []Direction{3}},
	{[]int{0, 2, 4, 6, 7, 37, 38, 59, 84, 94, 96, 104, 115, 118, 119}, []Direction{4}},
	{[]int{1, 2, 4, 6, 7, 16, 17, 37, 38, 60, 62, 72, 84, 91, 92, 94, 96, 104, 105, 106, 110, 115, 118, 119, 121}, []Direction{5}},
	{[]int{1, 4, 6, 7, 38, 60, 83, 84, 94, 96, 104, 115, 118, 119}, []Direction{6}},
	{[]int{1, 7, 17, 27, 38, 46, 48, 49, 58, 60, 71, 83, 84, 94, 96, 97, 100, 104, 107, 113, 114, 115, 119}, []Direction{7}},
	{[]int{9, 17, 27, 36, 46, 47, 48, 69, 71, 83, 95, 107, 114, 117}, []Direction{8}},
	{[]int{9, 13, 15, 17, 18, 20, 27, 28, 36, 46, 47, 48, 69, 71, 80, 83, 90, 95, 107, 114, 117}, []Direction{9}},
}

func aperiodicValidDirections(t TileIndex) []Direction {
	n := int(t)
	invalid := map[Direction]bool{}
	for _, set := range aperiodicInvalidSets {
		for _, x := range set.tiles {
			if x == n {
				for _, d := range set.dirs {
					invalid[d] = true
				}
				break
			}
		}
	}
	out := make([]Direction, 0, 10)
	for d := Direction(0); d < 10; d++ {
		if !invalid[d] {
			out = append(out, d)
		}
	}
	return out
}

// aperiodicBaseOffset gives the tile-index delta for a direction class in a
// hypothetical "untwisted" tiling, modeled on the same two-ring pattern the
// hexagonal board uses for its 12 directions, trimmed to 10. The source
// code this package is ported from calls a get_tile_index_shift function
// for this topology that is never defined anywhere in the source tree; this
// offset table is an invented, internally-consistent replacement (see
// DESIGN.md), not a recovered original.
var aperiodicBaseOffset = [10]int{11, 10, 1, -9, -10, -11, -10, -1, 9, 10}

// aperiodicShift derives a per-tile, per-direction shift by rotating the
// direction class by the tile's orientation (scaled into the 10-direction
// space exactly as pawn forward-direction rotation is computed) before
// indexing the base offset table, then wraps the destination into
// [0, NumTiles) so construction can never index out of range.
func aperiodicShift(source TileIndex, dir Direction) int {
	n := int(source)
	rot := mapToOther(aperiodicOrientation[n], 6, 10)
	idx := (int(dir) + rot) % 10
	delta := aperiodicBaseOffset[idx]
	dest := ((n+delta)%122 + 122) % 122
	return dest - n
}
