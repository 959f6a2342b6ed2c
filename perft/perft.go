// Perft is a perft tool.
//
// Perft's purpose is to test, debug and benchmark move generation: it
// counts nodes, captures, en passant captures and promotions reachable
// from a position to a given depth, optionally splitting by root move.
//
// For background see:
//      https://www.chessprogramming.org/Perft
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/AndyWilliams682/aperiodic-chess-sub000/board"
	"github.com/AndyWilliams682/aperiodic-chess-sub000/notation"
)

var (
	position   = flag.String("position", "startpos", "position string to search, or \"startpos\"")
	minDepth   = flag.Int("min_depth", 1, "minimum depth to search (inclusive)")
	maxDepth   = flag.Int("max_depth", 5, "maximum depth to search (inclusive)")
	depth      = flag.Int("depth", 0, "if non zero, searches only this depth")
	splitDepth = flag.Int("split", 0, "split depth")

	splitMoves []string
)

// counters tallies leaves reached after backtracking to a given depth.
type counters struct {
	nodes      uint64
	captures   uint64
	enpassant  uint64
	promotions uint64
}

func (co *counters) add(ot counters) {
	co.nodes += ot.nodes
	co.captures += ot.captures
	co.enpassant += ot.enpassant
	co.promotions += ot.promotions
}

type hashEntry struct {
	zobrist  uint64
	counters counters
	depth    int
}

// startpos is the standard initial position string, as Encode would
// produce it for board.NewTraditionalInitialPosition.
var (
	startposString = "RNBQKBNRPPPPPPPP32pppppppprnbqkbnr w -"

	// hashSize fixes the perft transposition table's entry count.
	hashSize  = 1 << 20
	hashTable = make([]hashEntry, hashSize)

	// known expected leaf counts for the traditional 8x8 start position,
	// indexed by depth.
	startposExpected = []counters{
		{1, 0, 0, 0},
		{20, 0, 0, 0},
		{400, 0, 0, 0},
		{8902, 34, 0, 0},
		{197281, 1576, 0, 0},
		{4865609, 82719, 258, 0},
		{119060324, 2812008, 5248, 0},
	}
)

func perft(pos *board.Position, gen *board.MoveGenerator, d int, ht []hashEntry) counters {
	if d == 0 {
		return counters{nodes: 1}
	}

	if ht != nil {
		idx := pos.Zobrist() % uint64(len(ht))
		if ht[idx].depth == d && ht[idx].zobrist == pos.Zobrist() {
			return ht[idx].counters
		}
	}

	r := counters{}
	for _, m := range gen.LegalMoves(pos) {
		if d == 1 {
			enemy := pos.Active.Opponent()
			if _, ok := pos.Pieces[enemy].PieceAt(m.Destination); ok {
				r.captures++
			}
			if pt, ok := pos.Pieces[pos.Active].PieceAt(m.Source); ok && pt == board.Pawn {
				if ep := pos.CurrentEnPassant(); ep != nil && ep.PassedTile == m.Destination {
					r.enpassant++
					r.captures++
				}
			}
			if m.HasPromotion {
				r.promotions++
			}
		}

		pos.MakeMove(m)
		r.add(perft(pos, gen, d-1, ht))
		pos.UnmakeMove(m)
	}

	if ht != nil {
		idx := pos.Zobrist() % uint64(len(ht))
		ht[idx] = hashEntry{zobrist: pos.Zobrist(), counters: r, depth: d}
	}
	return r
}

func split(pos *board.Position, gen *board.MoveGenerator, d, sd int) counters {
	r := counters{}
	if d == 0 || sd == 0 {
		r = perft(pos, gen, d, hashTable)
	} else {
		for _, m := range gen.LegalMoves(pos) {
			pos.MakeMove(m)
			splitMoves = append(splitMoves, strconv.Itoa(int(m.Source))+strconv.Itoa(int(m.Destination)))
			r.add(split(pos, gen, d-1, sd-1))
			splitMoves = splitMoves[:len(splitMoves)-1]
			pos.UnmakeMove(m)
		}
	}

	if len(splitMoves) != 0 {
		fmt.Printf("   %2d %12d %10d %9d split %s\n",
			d, r.nodes, r.captures, r.enpassant, strings.Join(splitMoves, " "))
	}
	return r
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	if *depth != 0 {
		*minDepth = *depth
		*maxDepth = *depth
	}

	posString := *position
	var expected []counters
	if posString == "startpos" {
		posString = startposString
		expected = startposExpected
	}

	fmt.Printf("Searching position %q\n", posString)
	top := board.Traditional8x8
	tables := board.BuildMoveTables(board.NewGraph(top))
	pos, err := notation.Decode(posString, tables)
	if err != nil {
		log.Fatalln("cannot parse --position:", err)
	}
	gen := board.NewMoveGenerator()

	fmt.Printf("depth        nodes   captures enpassant promotions  KNps   elapsed\n")
	fmt.Printf("-----+------------+----------+---------+----------+------+-------\n")

	for d := *minDepth; d <= *maxDepth; d++ {
		start := time.Now()
		c := split(pos, gen, d, *splitDepth)
		elapsed := time.Since(start)

		ok := ""
		if d < len(expected) {
			if c == expected[d] {
				ok = "good"
			} else {
				ok = "bad"
			}
		}

		fmt.Printf("   %2d %12d %10d %9d %10d %6.f %v %s\n",
			d, c.nodes, c.captures, c.enpassant, c.promotions,
			float64(c.nodes)/elapsed.Seconds()/1e3, elapsed, ok)

		if ok == "bad" {
			e := expected[d]
			fmt.Printf("   %2d %12d %10d %9d %10d expected\n",
				d, e.nodes, e.captures, e.enpassant, e.promotions)
			break
		}
	}
}
