// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// transposition.go implements a fixed-capacity transposition table.

package engine

import "github.com/AndyWilliams682/aperiodic-chess-sub000/board"

// DefaultTableSize is the table's fixed entry count.
const DefaultTableSize = 1000000

// Flag classifies the kind of bound a stored score represents.
type Flag uint8

const (
	Exact Flag = iota
	LowerBound
	UpperBound
)

// Entry is one slot's contents.
type Entry struct {
	Key      uint64
	Score    int32
	Depth    uint8
	Flag     Flag
	BestMove board.Move
	HasMove  bool
}

// TranspositionTable is a fixed-capacity hash table with depth-preferred
// replacement, indexed by zobrist key modulo its size. It is not required
// to be thread-safe (see the concurrency design): search is single-threaded
// cooperative.
type TranspositionTable struct {
	entries []Entry
	used    []bool
}

// NewTranspositionTable builds a table with size slots.
func NewTranspositionTable(size int) *TranspositionTable {
	if size <= 0 {
		size = DefaultTableSize
	}
	return &TranspositionTable{
		entries: make([]Entry, size),
		used:    make([]bool, size),
	}
}

func (tt *TranspositionTable) index(key uint64) int {
	return int(key % uint64(len(tt.entries)))
}

// Retrieve returns a usable score for key at depth against (alpha, beta), or
// ok=false if no entry matches, the stored depth is insufficient, or the
// bound doesn't apply at this window.
func (tt *TranspositionTable) Retrieve(key uint64, depth uint8, alpha, beta int32) (score int32, ok bool) {
	idx := tt.index(key)
	if !tt.used[idx] {
		return 0, false
	}
	e := tt.entries[idx]
	if e.Key != key || e.Depth < depth {
		return 0, false
	}
	switch e.Flag {
	case Exact:
		return e.Score, true
	case LowerBound:
		if e.Score >= beta {
			return e.Score, true
		}
	case UpperBound:
		if e.Score <= alpha {
			return e.Score, true
		}
	}
	return 0, false
}

// BestMove returns the best move recorded for key, if any entry matches,
// regardless of whether its score is currently usable. Used for move
// ordering (see move_ordering.go).
func (tt *TranspositionTable) BestMove(key uint64) (board.Move, bool) {
	idx := tt.index(key)
	if !tt.used[idx] || tt.entries[idx].Key != key || !tt.entries[idx].HasMove {
		return board.Move{}, false
	}
	return tt.entries[idx].BestMove, true
}

// Store saves an entry iff the slot is empty, holds the same key, or the
// new entry searched at least as deep as the one it would replace.
func (tt *TranspositionTable) Store(key uint64, score int32, depth uint8, flag Flag, best board.Move, hasMove bool) {
	idx := tt.index(key)
	entry := Entry{Key: key, Score: score, Depth: depth, Flag: flag, BestMove: best, HasMove: hasMove}
	if !tt.used[idx] || tt.entries[idx].Key == key || depth >= tt.entries[idx].Depth {
		tt.entries[idx] = entry
		tt.used[idx] = true
	}
}

// Clear empties every slot.
func (tt *TranspositionTable) Clear() {
	for i := range tt.used {
		tt.used[i] = false
	}
}
