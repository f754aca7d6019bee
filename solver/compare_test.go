package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taquinlab/taquin/board"
)

func TestCompare(t *testing.T) {
	start, err := board.FromRows([][]int{{1, 8, 2}, {0, 4, 3}, {7, 6, 5}})
	require.NoError(t, err)

	res, err := Compare(start, board.Goal(), 0)
	require.NoError(t, err)

	assert.Equal(t, len(res.BFSPath), len(res.AStarPath))
	assert.Equal(t, res.Moves(), len(res.BFSPath)-1)
	assert.Greater(t, res.Moves(), 0)
	assert.Greater(t, res.BFSExpanded, 0)
	checkPath(t, res.BFSPath, start, board.Goal())
	checkPath(t, res.AStarPath, start, board.Goal())
}

func TestCompareTrivial(t *testing.T) {
	res, err := Compare(board.Goal(), board.Goal(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Moves())
	assert.Len(t, res.BFSPath, 1)
	assert.Len(t, res.AStarPath, 1)
}

func TestCompareUnsolvableExhausts(t *testing.T) {
	start, err := board.FromRows([][]int{{1, 2, 3}, {4, 5, 6}, {8, 7, 0}})
	require.NoError(t, err)

	_, err = Compare(start, board.Goal(), 0)
	assert.ErrorIs(t, err, ErrNoSolution)
}
