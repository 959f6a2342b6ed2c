package board

import "testing"

// Every topology's edges must stay within [0, NumTiles) - the invariant
// NewGraph silently relies on (an out-of-range Shift result would index
// tiles/edges out of bounds elsewhere).
func assertEdgesInBounds(t *testing.T, name string, top Topology) {
	t.Helper()
	g := NewGraph(top)
	for i := 0; i < top.NumTiles; i++ {
		tile := TileIndex(i)
		for _, dir := range top.ValidDirections(tile) {
			delta := top.Shift(tile, dir)
			dest := int(tile) + delta
			if dest < 0 || dest >= top.NumTiles {
				t.Fatalf("%s: tile %d direction %d shifts to out-of-bounds tile %d", name, i, dir, dest)
			}
		}
		_ = g
	}
}

func TestTraditionalEdgesInBounds(t *testing.T) {
	assertEdgesInBounds(t, "traditional", Traditional8x8)
}

func TestHexagonalEdgesInBounds(t *testing.T) {
	assertEdgesInBounds(t, "hexagonal", Hexagonal91)
}

func TestTriangularEdgesInBounds(t *testing.T) {
	assertEdgesInBounds(t, "triangular", Triangular55)
}

func TestAperiodicEdgesInBounds(t *testing.T) {
	assertEdgesInBounds(t, "aperiodic", Aperiodic122)
}

func TestEveryTopologyBuildsMoveTablesWithoutPanicking(t *testing.T) {
	for name, top := range map[string]Topology{
		"traditional": Traditional8x8,
		"hexagonal":   Hexagonal91,
		"triangular":  Triangular55,
		"aperiodic":   Aperiodic122,
	} {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("%s: BuildMoveTables panicked: %v", name, r)
				}
			}()
			BuildMoveTables(NewGraph(top))
		}()
	}
}
