// Package board implements the 3x3 sliding-tile board: an immutable
// permutation of the tiles 0-8, where 0 marks the blank square.
package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash"
)

const (
	// Dim is the width and height of the board.
	Dim = 3
	// NumTiles is the total number of squares, blank included.
	NumTiles = Dim * Dim
	// BlankTile marks the empty square.
	BlankTile = 0
)

var (
	ErrInvalidBoard = errors.New("board must be a 3x3 permutation of the tiles 0-8")
	ErrInvalidMove  = errors.New("slide cells must be adjacent and one must hold the blank")
)

// A Board is a single 8-puzzle position. Boards are immutable values;
// every slide produces a new Board. Two boards with the same tiles are
// the same state no matter how they were reached, so equality and Key
// are defined purely by contents.
type Board struct {
	tiles [NumTiles]uint8
}

// Goal returns the canonical goal position: tiles in ascending row-major
// order with the blank in the bottom-right corner. It is a constant for
// a run and is only ever read.
func Goal() Board {
	return Board{tiles: [NumTiles]uint8{1, 2, 3, 4, 5, 6, 7, 8, BlankTile}}
}

// FromTiles builds a Board from a row-major list of nine tile values.
func FromTiles(tiles []int) (Board, error) {
	if len(tiles) != NumTiles {
		return Board{}, fmt.Errorf("%w: got %d tiles", ErrInvalidBoard, len(tiles))
	}
	var b Board
	var seen [NumTiles]bool
	for i, t := range tiles {
		if t < 0 || t >= NumTiles || seen[t] {
			return Board{}, fmt.Errorf("%w: bad tile %d", ErrInvalidBoard, t)
		}
		seen[t] = true
		b.tiles[i] = uint8(t)
	}
	return b, nil
}

// FromRows builds a Board from three rows of three tile values each.
func FromRows(rows [][]int) (Board, error) {
	if len(rows) != Dim {
		return Board{}, fmt.Errorf("%w: got %d rows", ErrInvalidBoard, len(rows))
	}
	flat := make([]int, 0, NumTiles)
	for _, row := range rows {
		if len(row) != Dim {
			return Board{}, fmt.Errorf("%w: got a row of length %d", ErrInvalidBoard, len(row))
		}
		flat = append(flat, row...)
	}
	return FromTiles(flat)
}

// Parse reads nine whitespace- or comma-separated tile values in
// row-major order.
func Parse(s string) (Board, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	tiles := make([]int, 0, NumTiles)
	for _, f := range fields {
		t, err := strconv.Atoi(f)
		if err != nil {
			return Board{}, fmt.Errorf("%w: %q is not a tile", ErrInvalidBoard, f)
		}
		tiles = append(tiles, t)
	}
	return FromTiles(tiles)
}

// Blank returns the row and column of the blank square.
func (b Board) Blank() (int, int) {
	for i, t := range b.tiles {
		if t == BlankTile {
			return i / Dim, i % Dim
		}
	}
	// Boards constructed through this package always contain a blank.
	panic("board has no blank square")
}

// Tile returns the value at the given row and column.
func (b Board) Tile(row, col int) int {
	return int(b.tiles[row*Dim+col])
}

// Equals compares by tile contents.
func (b Board) Equals(o Board) bool {
	return b.tiles == o.tiles
}

// Key returns a stable content hash of the position, usable as an
// explored-set or cost-table key.
func (b Board) Key() uint64 {
	return xxhash.Sum64(b.tiles[:])
}

// ApplySlide returns a new Board with the two given cells exchanged. The
// cells must be orthogonally adjacent and one of them must hold the
// blank; anything else is caller misuse, never a user-reachable
// condition, since move generation only produces legal slides.
func (b Board) ApplySlide(fromRow, fromCol, toRow, toCol int) (Board, error) {
	if !inBounds(fromRow, fromCol) || !inBounds(toRow, toCol) {
		return Board{}, ErrInvalidMove
	}
	from := fromRow*Dim + fromCol
	to := toRow*Dim + toCol
	if abs(fromRow-toRow)+abs(fromCol-toCol) != 1 {
		return Board{}, ErrInvalidMove
	}
	if b.tiles[from] != BlankTile && b.tiles[to] != BlankTile {
		return Board{}, ErrInvalidMove
	}
	next := b
	next.tiles[from], next.tiles[to] = next.tiles[to], next.tiles[from]
	return next, nil
}

// ToDisplayText renders the board one row per line, with an underscore
// for the blank.
func (b Board) ToDisplayText() string {
	var sb strings.Builder
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if t := b.Tile(r, c); t == BlankTile {
				sb.WriteByte('_')
			} else {
				sb.WriteString(strconv.Itoa(t))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String serializes the position on one line, rows separated by pipes.
func (b Board) String() string {
	var sb strings.Builder
	for i, t := range b.tiles {
		if t == BlankTile {
			sb.WriteByte('_')
		} else {
			sb.WriteString(strconv.Itoa(int(t)))
		}
		if i%Dim == Dim-1 && i != NumTiles-1 {
			sb.WriteByte('|')
		} else if i != NumTiles-1 {
			sb.WriteByte(',')
		}
	}
	return sb.String()
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Dim && col >= 0 && col < Dim
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
