// Package notation implements a custom FEN-like position string: not
// standard FEN, since board sizes and topologies vary. A small hand-rolled
// scanner, not a regexp- or grammar-based parser.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AndyWilliams682/aperiodic-chess-sub000/board"
)

// Encode renders p as "<pieces> <active> <ep>". <pieces> walks tile indices
// 0..numTiles in ascending order, emitting a piece letter per occupied tile
// and a decimal run-length for consecutive empty tiles.
func Encode(p *board.Position, numTiles int) string {
	var sb strings.Builder
	empties := 0
	flush := func() {
		if empties > 0 {
			sb.WriteString(strconv.Itoa(empties))
			empties = 0
		}
	}
	for i := 0; i < numTiles; i++ {
		tile := board.TileIndex(i)
		placed := false
		for _, c := range [board.NumColors]board.Color{board.White, board.Black} {
			if pt, ok := p.Pieces[c].PieceAt(tile); ok {
				flush()
				sb.WriteByte(board.Piece{Type: pt, Color: c}.Char())
				placed = true
				break
			}
		}
		if !placed {
			empties++
		}
	}
	flush()

	sb.WriteByte(' ')
	if p.Active == board.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if ep := p.CurrentEnPassant(); ep != nil {
		fmt.Fprintf(&sb, "%d,%d,%d", ep.SourceTile, ep.PassedTile, ep.OccupiedTile)
	} else {
		sb.WriteByte('-')
	}
	return sb.String()
}

// Decode parses a position string produced by Encode (or any conforming
// input) against tables, returning board.ErrMalformedNotation wrapped with
// context on any rejection. Core state is never partially constructed on
// error: the caller's existing Position, if any, is untouched.
func Decode(s string, tables *board.MoveTables) (*board.Position, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: expected 3 fields, got %d", board.ErrMalformedNotation, len(fields))
	}
	piecesField, activeField, epField := fields[0], fields[1], fields[2]

	numTiles := tables.Graph.NumTiles()
	p := board.NewEmptyPosition(tables)

	tile := 0
	i := 0
	for i < len(piecesField) {
		c := piecesField[i]
		switch {
		case c >= '0' && c <= '9':
			j := i
			for j < len(piecesField) && piecesField[j] >= '0' && piecesField[j] <= '9' {
				j++
			}
			n, err := strconv.Atoi(piecesField[i:j])
			if err != nil {
				return nil, fmt.Errorf("%w: bad run-length %q", board.ErrMalformedNotation, piecesField[i:j])
			}
			tile += n
			i = j
		default:
			color := board.White
			if c >= 'a' && c <= 'z' {
				color = board.Black
			}
			pt := board.PieceTypeFromChar(c)
			if tile >= numTiles {
				return nil, fmt.Errorf("%w: piece run exceeds board size", board.ErrMalformedNotation)
			}
			b := p.Pieces[color].Board(pt)
			*b = b.Set(board.TileIndex(tile))
			tile++
			i++
		}
	}
	p.Pieces[board.White].UpdateOccupied()
	p.Pieces[board.Black].UpdateOccupied()

	switch activeField {
	case "w":
		p.Active = board.White
	case "b":
		p.Active = board.Black
	default:
		return nil, fmt.Errorf("%w: active color must be w or b, got %q", board.ErrMalformedNotation, activeField)
	}

	if epField != "-" {
		parts := strings.Split(epField, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: ep field must be '-' or 'src,passed,occupied'", board.ErrMalformedNotation)
		}
		var nums [3]int
		for k, part := range parts {
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("%w: ep tile %q is not numeric", board.ErrMalformedNotation, part)
			}
			nums[k] = n
		}
		// rebuilt below, after the record exists.
		ep := board.EnPassantData{
			SourceTile:   board.TileIndex(nums[0]),
			PassedTile:   board.TileIndex(nums[1]),
			OccupiedTile: board.TileIndex(nums[2]),
		}
		p.SetEnPassantForDecode(&ep)
	}

	p.RecomputeZobristForDecode()
	return p, nil
}
