// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine implements transposition-table-backed negamax alpha-beta
// search and static evaluation over a board.Position. It has no notion of
// castling, opening books, tablebases, time management, or UCI - none of
// those are implemented by this package, matching the core's non-goals.
package engine

import (
	"math"

	"github.com/AndyWilliams682/aperiodic-chess-sub000/board"
)

const (
	minScore = math.MinInt32 + 1
	maxScore = math.MaxInt32
)

// Stats accumulates counters over one search. No time-based fields: this
// package has no time management.
type Stats struct {
	Nodes     uint64
	CacheHits uint64
}

// SearchResult is the outcome of a root search.
type SearchResult struct {
	Move    board.Move
	HasMove bool
	Score   int32
	Stats   Stats
}

// Searcher runs negamax alpha-beta search over a Position, probing and
// storing into a TranspositionTable and scoring leaves with an Evaluator.
type Searcher struct {
	Table     *TranspositionTable
	Evaluator Evaluator
	Generator *board.MoveGenerator

	stats Stats
}

// NewSearcher wires together a transposition table, evaluator, and move
// generator. All three are safe to reuse across searches.
func NewSearcher(table *TranspositionTable, evaluator Evaluator) *Searcher {
	return &Searcher{
		Table:     table,
		Evaluator: evaluator,
		Generator: board.NewMoveGenerator(),
	}
}

// GetBestMove runs alphaBeta at the root for maxDepth plies and returns the
// best move found, with first-encountered-wins tie-breaking on equal
// scores.
func (s *Searcher) GetBestMove(p *board.Position, maxDepth int) SearchResult {
	s.stats = Stats{}
	legal := s.Generator.LegalMoves(p)

	best := SearchResult{Score: minScore}
	for _, m := range legal {
		p.MakeMove(m)
		score := -s.alphaBeta(p, minScore+1, maxScore, maxDepth-1)
		p.UnmakeMove(m)

		if !best.HasMove || score > best.Score {
			best.Move = m
			best.HasMove = true
			best.Score = score
		}
	}
	best.Stats = s.stats
	return best
}

// alphaBeta is the recursive negamax alpha-beta search with transposition
// table probing/storing and mate-distance scoring (shallower mates score
// higher in absolute value, preferring the quickest mate).
func (s *Searcher) alphaBeta(p *board.Position, alpha, beta int32, depth int) int32 {
	s.stats.Nodes++

	if depth <= 0 {
		return s.Evaluator.Evaluate(p)
	}

	key := p.Zobrist()
	alphaOriginal := alpha
	if score, ok := s.Table.Retrieve(key, uint8(depth), alpha, beta); ok {
		s.stats.CacheHits++
		return score
	}

	legal := s.Generator.LegalMoves(p)
	if len(legal) == 0 {
		if p.IsInCheck(p.Active) {
			return CheckmatedScore - int32(depth)
		}
		return 0
	}

	hashMove, hasHashMove := s.Table.BestMove(key)
	ordered := orderMoves(p, legal, hashMove, hasHashMove)

	best := int32(minScore)
	var bestMove board.Move
	for _, m := range ordered {
		p.MakeMove(m)
		score := -s.alphaBeta(p, -beta, -alpha, depth-1)
		p.UnmakeMove(m)

		if score > best {
			best = score
			bestMove = m
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}

	var flag Flag
	switch {
	case best <= alphaOriginal:
		flag = UpperBound
	case best >= beta:
		flag = LowerBound
	default:
		flag = Exact
	}
	s.Table.Store(key, best, uint8(depth), flag, bestMove, true)

	return best
}
