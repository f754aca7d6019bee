package board

import "github.com/samber/lo"

// ManhattanDistance sums, over the eight non-blank tiles, the grid
// distance between each tile's square in b and its square in goal. It
// never overestimates the true remaining move count and is consistent,
// which is what A* needs for its optimality guarantee.
func ManhattanDistance(b, goal Board) int {
	var goalIndex [NumTiles]int
	for i, t := range goal.tiles {
		goalIndex[t] = i
	}
	return lo.SumBy(lo.Range(NumTiles), func(i int) int {
		t := b.tiles[i]
		if t == BlankTile {
			return 0
		}
		gi := goalIndex[t]
		return abs(i/Dim-gi/Dim) + abs(i%Dim-gi%Dim)
	})
}
