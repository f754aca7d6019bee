// Package movegen generates the search nodes reachable from a position
// by a single blank slide.
package movegen

import (
	"fmt"

	"github.com/taquinlab/taquin/board"
)

// A Node is one position in a search, together with how the search got
// there: the parent it was generated from, the move that produced it and
// the number of moves from the root. Parents are always created before
// their children and never reference them back, so the node pool forms a
// tree with no cycles. Nodes are never mutated after creation.
type Node struct {
	Board  board.Board
	Parent *Node
	Move   string
	Cost   int
}

// NewRoot wraps a start position with no parent, no move and cost zero.
func NewRoot(b board.Board) *Node {
	return &Node{Board: b}
}

// The four candidate blank offsets, tried in a fixed order so that BFS
// tie-breaking is reproducible from run to run. The displaced tile moves
// in the opposite direction of the blank, and the move label names the
// tile, not the blank.
var blankOffsets = [4]struct {
	dr, dc  int
	tileDir string
}{
	{1, 0, "up"},
	{-1, 0, "down"},
	{0, 1, "left"},
	{0, -1, "right"},
}

// Neighbors returns the nodes reachable from n by one slide: two when
// the blank is in a corner, three on an edge, four in the center.
func Neighbors(n *Node) []*Node {
	row, col := n.Board.Blank()
	out := make([]*Node, 0, 4)
	for _, off := range blankOffsets {
		tr, tc := row+off.dr, col+off.dc
		if tr < 0 || tr >= board.Dim || tc < 0 || tc >= board.Dim {
			continue
		}
		tile := n.Board.Tile(tr, tc)
		next, err := n.Board.ApplySlide(row, col, tr, tc)
		if err != nil {
			// Only possible through a bug in the offset table.
			panic(err)
		}
		out = append(out, &Node{
			Board:  next,
			Parent: n,
			Move:   fmt.Sprintf("move %d %s", tile, off.tileDir),
			Cost:   n.Cost + 1,
		})
	}
	return out
}
