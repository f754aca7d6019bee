package solver

import (
	"golang.org/x/sync/errgroup"

	"github.com/taquinlab/taquin/board"
)

// CompareResult holds the outcome of running both strategies on one
// start position.
type CompareResult struct {
	BFSPath       []Step
	BFSExpanded   int
	AStarPath     []Step
	AStarFrontier int
}

// Moves returns the move count of the solution. Both strategies return
// optimal paths, so either one serves.
func (r CompareResult) Moves() int {
	return len(r.AStarPath) - 1
}

// Compare runs BFS and A* concurrently on the same start position. Each
// solver owns its frontier, explored set and node pool, and the goal
// board is read-only, so the two searches share nothing mutable. A node
// budget of zero means unlimited.
func Compare(start, goal board.Board, nodeBudget int) (CompareResult, error) {
	var res CompareResult
	g := errgroup.Group{}
	g.Go(func() error {
		s := NewBFSSolver(goal)
		s.SetNodeBudget(nodeBudget)
		path, expanded, err := s.Solve(start)
		res.BFSPath, res.BFSExpanded = path, expanded
		return err
	})
	g.Go(func() error {
		s := NewAStarSolver(goal)
		s.SetNodeBudget(nodeBudget)
		path, frontier, err := s.Solve(start)
		res.AStarPath, res.AStarFrontier = path, frontier
		return err
	})
	if err := g.Wait(); err != nil {
		return CompareResult{}, err
	}
	return res, nil
}
