// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// evaluator.go implements static position evaluation. The core only
// specifies the evaluator as a pluggable interface (Position -> centipawn
// score); the exact formula is explicitly out of scope, so this file
// implements a primitive mobility-weighted evaluator rather than porting
// the source's incomplete ScoreTable (which indexes into a zero-length
// slice - not reproduced here).
package engine

import "github.com/AndyWilliams682/aperiodic-chess-sub000/board"

// Centipawn constants, fixed by the external evaluator contract.
const (
	KingValue       int32 = 9999
	QueenValue      int32 = 900
	RookValue       int32 = 500
	BishopValue     int32 = 350
	KnightValue     int32 = 300
	PawnValue       int32 = 100
	CheckmatedScore int32 = -99999
)

var pieceValue = [board.NumPieceTypes]int32{
	board.King:   KingValue,
	board.Queen:  QueenValue,
	board.Rook:   RookValue,
	board.Bishop: BishopValue,
	board.Knight: KnightValue,
	board.Pawn:   PawnValue,
}

// Evaluator is a pure function from Position to a centipawn score, always
// relative to the side to move (positive favors the mover).
type Evaluator interface {
	Evaluate(p *board.Position) int32
}

// MobilityEvaluator scores material plus per-piece mobility on an empty
// board, weighted lightly so material dominates. Mobility is precomputed
// once per tile/piece-type pair since MoveTables never change after
// construction.
type MobilityEvaluator struct {
	tables      *board.MoveTables
	mobility    [board.NumPieceTypes][]int32
	mobilityWeight int32
}

// NewMobilityEvaluator precomputes empty-board mobility counts for queens,
// rooks, bishops and knights on every tile. Kings and pawns get no mobility
// term.
func NewMobilityEvaluator(tables *board.MoveTables) *MobilityEvaluator {
	e := &MobilityEvaluator{tables: tables, mobilityWeight: 2}
	n := tables.Graph.NumTiles()
	for _, pt := range []board.PieceType{board.Queen, board.Rook, board.Bishop, board.Knight} {
		counts := make([]int32, n)
		for t := 0; t < n; t++ {
			counts[t] = int32(tables.QueryPiece(pt, board.TileIndex(t), board.BitBoard{}).PopCount())
		}
		e.mobility[pt] = counts
	}
	return e
}

// Evaluate returns material plus weighted mobility, from the mover's
// perspective, matching the negamax convention the Searcher expects.
func (e *MobilityEvaluator) Evaluate(p *board.Position) int32 {
	var score int32
	mover := p.Active
	for c := board.Color(0); int(c) < board.NumColors; c++ {
		sign := int32(1)
		if c != mover {
			sign = -1
		}
		for pt := 0; pt < board.NumPieceTypes; pt++ {
			bb := p.Pieces[c].PieceBoards[pt]
			count := int32(bb.PopCount())
			score += sign * count * pieceValue[pt]

			if table := e.mobility[board.PieceType(pt)]; table != nil {
				for cur := bb; !cur.IsEmpty(); cur = cur.ClearLowestOne() {
					t, _ := cur.LowestOne()
					score += sign * e.mobilityWeight * table[t]
				}
			}
		}
	}
	return score
}
