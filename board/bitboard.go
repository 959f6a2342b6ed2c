// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// bitboard.go implements the 128-bit tile set used by every move table.

package board

import "math/bits"

// MaxTiles is the largest board this package supports. It must fit in a
// single BitBoard (two 64-bit limbs).
const MaxTiles = 128

// TileIndex identifies a node in the board graph and a bit position in a
// BitBoard. Valid range is [0, MaxTiles).
type TileIndex uint8

// Bit returns the singleton BitBoard containing only t.
func (t TileIndex) Bit() BitBoard {
	if t < 64 {
		return BitBoard{lo: 1 << uint(t)}
	}
	return BitBoard{hi: 1 << uint(t-64)}
}

// BitBoard is a fixed-width bitset over tile indices 0..MaxTiles.
// Bit i is set iff tile i is a member of the set.
type BitBoard struct {
	lo, hi uint64
}

// Empty is the zero-value BitBoard; kept as a named constructor for
// readability at call sites.
func Empty() BitBoard { return BitBoard{} }

// FromTiles builds a BitBoard containing exactly the given tiles.
func FromTiles(tiles ...TileIndex) BitBoard {
	var b BitBoard
	for _, t := range tiles {
		b = b.Or(t.Bit())
	}
	return b
}

// And returns the intersection of b and o.
func (b BitBoard) And(o BitBoard) BitBoard { return BitBoard{b.lo & o.lo, b.hi & o.hi} }

// Or returns the union of b and o.
func (b BitBoard) Or(o BitBoard) BitBoard { return BitBoard{b.lo | o.lo, b.hi | o.hi} }

// Xor returns the symmetric difference of b and o.
func (b BitBoard) Xor(o BitBoard) BitBoard { return BitBoard{b.lo ^ o.lo, b.hi ^ o.hi} }

// Not returns the 128-bit complement of b (not masked to a board size).
func (b BitBoard) Not() BitBoard { return BitBoard{^b.lo, ^b.hi} }

// AndNot returns b with every bit of o cleared.
func (b BitBoard) AndNot(o BitBoard) BitBoard { return b.And(o.Not()) }

// IsEmpty reports whether no bit is set.
func (b BitBoard) IsEmpty() bool { return b.lo == 0 && b.hi == 0 }

// Equals reports whether b and o have the same members.
func (b BitBoard) Equals(o BitBoard) bool { return b.lo == o.lo && b.hi == o.hi }

// Test reports whether tile t is a member of b.
func (b BitBoard) Test(t TileIndex) bool { return !b.And(t.Bit()).IsEmpty() }

// Set returns b with tile t added.
func (b BitBoard) Set(t TileIndex) BitBoard { return b.Or(t.Bit()) }

// Clear returns b with tile t removed.
func (b BitBoard) Clear(t TileIndex) BitBoard { return b.AndNot(t.Bit()) }

// Flip returns b with tile t's membership toggled.
func (b BitBoard) Flip(t TileIndex) BitBoard { return b.Xor(t.Bit()) }

// PopCount returns the number of set bits.
func (b BitBoard) PopCount() int { return bits.OnesCount64(b.lo) + bits.OnesCount64(b.hi) }

// LowestOne returns the index of the least-significant set bit, or ok=false
// if b is empty.
func (b BitBoard) LowestOne() (t TileIndex, ok bool) {
	if b.lo != 0 {
		return TileIndex(bits.TrailingZeros64(b.lo)), true
	}
	if b.hi != 0 {
		return TileIndex(64 + bits.TrailingZeros64(b.hi)), true
	}
	return 0, false
}

// ClearLowestOne returns b with its least-significant set bit removed. It is
// a no-op on an empty board.
func (b BitBoard) ClearLowestOne() BitBoard {
	t, ok := b.LowestOne()
	if !ok {
		return b
	}
	return b.Clear(t)
}

// Tiles returns every set tile in ascending order. Callers iterating
// move-generation hot paths should prefer LowestOne/ClearLowestOne to avoid
// the allocation here.
func (b BitBoard) Tiles() []TileIndex {
	var out []TileIndex
	for cur := b; !cur.IsEmpty(); cur = cur.ClearLowestOne() {
		t, _ := cur.LowestOne()
		out = append(out, t)
	}
	return out
}

// add1 adds one to the 128-bit value, propagating carry from lo into hi.
// Used only by nextSubsetStep below.
func (b BitBoard) add1() BitBoard {
	lo := b.lo + 1
	hi := b.hi
	if lo == 0 { // overflow, carry into hi
		hi++
	}
	return BitBoard{lo, hi}
}

// nextSubsetStep implements the Carry-Rippler decrement described in the
// design notes: (a | ~mask) + 1, restricted back to mask. This is a named
// method rather than an operator overload because it is not arithmetic
// subtraction - it only behaves as "subtract mask" when b is already a
// subset of mask, which is the only way CarryRippler ever calls it.
func (b BitBoard) nextSubsetStep(mask BitBoard) BitBoard {
	return b.Or(mask.Not()).add1().And(mask)
}

// CarryRippler enumerates every nonempty subset of mask exactly once,
// terminating when the enumerated subset equals mask.
type CarryRippler struct {
	mask BitBoard
	cur  BitBoard
	done bool
}

// NewCarryRippler starts an enumeration over mask. The first call to Next
// returns the smallest nonempty subset.
func NewCarryRippler(mask BitBoard) *CarryRippler {
	return &CarryRippler{mask: mask, cur: BitBoard{}, done: mask.IsEmpty()}
}

// Next returns the next subset and true, or a zero BitBoard and false once
// every subset (including mask itself) has been produced.
func (c *CarryRippler) Next() (BitBoard, bool) {
	if c.done {
		return BitBoard{}, false
	}
	c.cur = c.cur.nextSubsetStep(c.mask)
	if c.cur.Equals(c.mask) {
		c.done = true
	}
	return c.cur, true
}

// Subsets materializes every nonempty subset of mask, including mask itself.
func Subsets(mask BitBoard) []BitBoard {
	if mask.IsEmpty() {
		return nil
	}
	out := make([]BitBoard, 0, 1<<uint(mask.PopCount())-1)
	r := NewCarryRippler(mask)
	for {
		s, ok := r.Next()
		if !ok {
			break
		}
		out = append(out, s)
	}
	return out
}
