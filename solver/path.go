// Package solver contains the two search strategies over 8-puzzle
// positions: uninformed breadth-first search and A* guided by the
// Manhattan-distance heuristic. Both return optimal paths.
package solver

import (
	"errors"

	"github.com/samber/lo"

	"github.com/taquinlab/taquin/board"
	"github.com/taquinlab/taquin/movegen"
)

var (
	// ErrNoSolution is the normal result when a frontier empties without
	// reaching the goal. The state space is finite, so this outcome is
	// definitive, not transient.
	ErrNoSolution = errors.New("no solution found")
	// ErrBudgetExceeded is returned when a node budget runs out before
	// the search terminates either way.
	ErrBudgetExceeded = errors.New("node budget exceeded")
)

// A Step is one position along a solution, together with the move that
// produced it. The first step is the start board and has an empty Move.
type Step struct {
	Board board.Board
	Move  string
}

// reconstructPath walks parent links from the terminal node back to the
// root, then reverses so the steps run start to goal.
func reconstructPath(terminal *movegen.Node) []Step {
	steps := make([]Step, 0, terminal.Cost+1)
	for n := terminal; n != nil; n = n.Parent {
		steps = append(steps, Step{Board: n.Board, Move: n.Move})
	}
	return lo.Reverse(steps)
}
