// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// move_ordering.go orders moves before search to improve alpha-beta
// cutoff rates: the transposition table's best move (if any) first,
// captures sorted by victim value (a simplified MVV-LVA), then the rest in
// generation order.

package engine

import (
	"sort"

	"github.com/AndyWilliams682/aperiodic-chess-sub000/board"
)

// sameMove compares two moves by value rather than by struct identity:
// Move.EnPassant is a *EnPassantData, freshly allocated on every generation
// call, so a hash move retrieved from an earlier search node never shares a
// pointer with the logically identical move regenerated later.
func sameMove(a, b board.Move) bool {
	if a.Source != b.Source || a.Destination != b.Destination ||
		a.HasPromotion != b.HasPromotion || a.Promotion != b.Promotion {
		return false
	}
	if (a.EnPassant == nil) != (b.EnPassant == nil) {
		return false
	}
	return a.EnPassant == nil || *a.EnPassant == *b.EnPassant
}

func orderMoves(p *board.Position, moves []board.Move, hashMove board.Move, hasHashMove bool) []board.Move {
	ordered := make([]board.Move, len(moves))
	copy(ordered, moves)

	victimValue := func(m board.Move) int32 {
		enemy := p.Active.Opponent()
		if pt, ok := p.Pieces[enemy].PieceAt(m.Destination); ok {
			return pieceValue[pt]
		}
		return -1 // not a capture, sorts after every capture
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if hasHashMove {
			iHash := sameMove(ordered[i], hashMove)
			jHash := sameMove(ordered[j], hashMove)
			if iHash != jHash {
				return iHash
			}
		}
		return victimValue(ordered[i]) > victimValue(ordered[j])
	})
	return ordered
}
