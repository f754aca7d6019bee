package movegen

import (
	"testing"

	"github.com/matryer/is"

	"github.com/taquinlab/taquin/board"
)

func mustBoard(t *testing.T, tiles []int) board.Board {
	t.Helper()
	b, err := board.FromTiles(tiles)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestNewRoot(t *testing.T) {
	is := is.New(t)
	root := NewRoot(board.Goal())
	is.Equal(root.Parent, nil)
	is.Equal(root.Move, "")
	is.Equal(root.Cost, 0)
}

func TestNeighborCounts(t *testing.T) {
	is := is.New(t)
	corner := board.Goal() // blank bottom-right
	is.Equal(len(Neighbors(NewRoot(corner))), 2)

	edge := mustBoard(t, []int{1, 2, 3, 0, 4, 5, 6, 7, 8})
	is.Equal(len(Neighbors(NewRoot(edge))), 3)

	center := mustBoard(t, []int{1, 2, 3, 4, 0, 5, 6, 7, 8})
	is.Equal(len(Neighbors(NewRoot(center))), 4)
}

func TestNeighborOrderAndLabels(t *testing.T) {
	is := is.New(t)
	// Goal board: blank in the bottom-right corner. The blank can move up
	// (tile 6 slides down) or left (tile 8 slides right), in that order.
	nbs := Neighbors(NewRoot(board.Goal()))
	is.Equal(len(nbs), 2)
	is.Equal(nbs[0].Move, "move 6 down")
	is.Equal(nbs[1].Move, "move 8 right")

	is.True(nbs[0].Board.Equals(mustBoard(t, []int{1, 2, 3, 4, 5, 0, 7, 8, 6})))
	is.True(nbs[1].Board.Equals(mustBoard(t, []int{1, 2, 3, 4, 5, 6, 7, 0, 8})))
}

func TestNeighborLineage(t *testing.T) {
	is := is.New(t)
	root := NewRoot(mustBoard(t, []int{1, 8, 2, 0, 4, 3, 7, 6, 5}))
	for _, nb := range Neighbors(root) {
		is.Equal(nb.Parent, root)
		is.Equal(nb.Cost, 1)
		for _, grandchild := range Neighbors(nb) {
			is.Equal(grandchild.Parent, nb)
			is.Equal(grandchild.Cost, 2)
		}
	}
	// The root is untouched by generation.
	is.Equal(root.Cost, 0)
	is.Equal(root.Move, "")
}
