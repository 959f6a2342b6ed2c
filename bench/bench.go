// Tool bench benchmarks the engine package.
//
// The benchmark replays several historical games on the traditional 8x8
// topology and reports the number of search nodes and nodes per second.
// Node counts should stay constant across non-functional changes; a
// difference usually means move ordering or search behavior changed.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/AndyWilliams682/aperiodic-chess-sub000/board"
	"github.com/AndyWilliams682/aperiodic-chess-sub000/engine"
	"github.com/AndyWilliams682/aperiodic-chess-sub000/notation"
)

var (
	// Several games downloaded from http://www.chessgames.com/, each cut
	// off before its first castling move: move generation has no castling.
	games = []gameInfo{
		{
			"Garry Kasparov - Veselin Topalov Hoogovens A Tournament Wijk aan Zee NED 1999.01.20",
			strings.Fields("e2e4 d7d6 d2d4 g8f6 b1c3 g7g6 c1e3 f8g7 d1d2 c7c6 f2f3 b7b5 g1e2 b8d7 e3h6 g7h6 d2h6 c8b7 a2a3 e7e5"),
		},
		{
			"Vladimir Kramnik - Alexey Shirov Linares Linares, ESP 1994.??.??",
			strings.Fields("g1f3 d7d5 d2d4 c8f5 c2c4 e7e6 b1c3 c7c6 d1b3 d8b6 c4c5 b6c7 c1f4 c7c8 e2e3 g8f6 b3a4 b8d7 b2b4 a7a6"),
		},
		{
			"Mikhail Tal - Boris Spassky Leningrad tt Leningrad tt 1954.??.??",
			strings.Fields("c2c4 g8f6 b1c3 e7e6 d2d4 c7c5 d4d5 e6d5 c4d5 g7g6 g1f3 f8g7 c1f4 d7d6 h2h3"),
		},
	}

	depth = flag.Int("depth", 4, "depth to search to")
)

type gameInfo struct {
	description string
	moves       []string // algebraic source-destination pairs, e.g. "e2e4"
}

// squareToTile converts an algebraic square (file a-h, rank 1-8) to a
// Traditional8x8 tile index.
func squareToTile(sq string) board.TileIndex {
	file := int(sq[0] - 'a')
	rank := int(sq[1] - '1')
	return board.TileIndex(rank*8 + file)
}

// findMove looks up the legal move matching a "e2e4"-style algebraic pair.
func findMove(gen *board.MoveGenerator, pos *board.Position, alg string) (board.Move, bool) {
	src := squareToTile(alg[0:2])
	dst := squareToTile(alg[2:4])
	for _, m := range gen.LegalMoves(pos) {
		if m.Source == src && m.Destination == dst {
			return m, true
		}
	}
	return board.Move{}, false
}

// eval replays g's moves, searching to depth after each, and returns the
// total nodes searched.
func (g *gameInfo) eval(depth int) uint64 {
	tables := board.BuildMoveTables(board.NewGraph(board.Traditional8x8))
	pos, err := notation.Decode(startposString, tables)
	if err != nil {
		log.Fatalf("cannot decode startpos: %v", err)
	}
	gen := board.NewMoveGenerator()
	table := engine.NewTranspositionTable(engine.DefaultTableSize)
	evaluator := engine.NewMobilityEvaluator(tables)
	searcher := engine.NewSearcher(table, evaluator)

	var nodes uint64
	for _, alg := range g.moves {
		result := searcher.GetBestMove(pos, depth)
		nodes += result.Stats.Nodes

		m, ok := findMove(gen, pos, alg)
		if !ok {
			log.Fatalf("move %s is not legal in this position", alg)
		}
		pos.MakeMove(m)
	}
	return nodes
}

// evalAll evaluates every game, returning total nodes and nodes/second.
func evalAll(depth int) (uint64, float64) {
	start := time.Now()
	var nodes uint64
	for i := range games {
		n := games[i].eval(depth)
		nodes += n
		log.Printf("#%d %d %s\n", i, n, games[i].description)
	}
	elapsed := time.Since(start)
	return nodes, float64(nodes) / elapsed.Seconds()
}

// startposString is the standard initial position string Encode would
// produce for board.NewTraditionalInitialPosition.
const startposString = "RNBQKBNRPPPPPPPP32pppppppprnbqkbnr w -"

func main() {
	flag.Parse()
	nodes, nps := evalAll(*depth)
	fmt.Printf("nodes %d\n", nodes)
	fmt.Printf("  nps %.0f\n", nps)
}
