package solver

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/taquinlab/taquin/board"
	"github.com/taquinlab/taquin/movegen"
)

// BFSSolver runs an uninformed breadth-first search over positions. Each
// call to Solve owns its frontier, explored set and node pool; the goal
// board is only read, so solvers can run concurrently with anything.
type BFSSolver struct {
	goal       board.Board
	nodeBudget int
}

func NewBFSSolver(goal board.Board) *BFSSolver {
	return &BFSSolver{goal: goal}
}

// SetNodeBudget caps the number of dequeued states. Zero means
// unlimited, which is the default.
func (s *BFSSolver) SetNodeBudget(n int) {
	s.nodeBudget = n
}

// Solve searches from start and returns the optimal path together with
// the number of dequeued (expanded) states.
//
// The explored set is marked at dequeue time, not enqueue time, so a
// position reached along two routes can sit in the queue twice before
// its key is marked. That costs some frontier memory but never
// correctness, and it keeps expansion counts comparable across runs.
func (s *BFSSolver) Solve(start board.Board) ([]Step, int, error) {
	tick := time.Now()
	frontier := []*movegen.Node{movegen.NewRoot(start)}
	explored := map[uint64]bool{}
	expanded := 0

	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		expanded++
		explored[cur.Board.Key()] = true

		if cur.Board.Equals(s.goal) {
			log.Debug().Int("expanded", expanded).Int("moves", cur.Cost).
				Dur("elapsed", time.Since(tick)).Msg("bfs-solved")
			return reconstructPath(cur), expanded, nil
		}
		if s.nodeBudget > 0 && expanded >= s.nodeBudget {
			return nil, expanded, ErrBudgetExceeded
		}
		for _, nb := range movegen.Neighbors(cur) {
			if !explored[nb.Board.Key()] {
				frontier = append(frontier, nb)
			}
		}
	}
	log.Debug().Int("expanded", expanded).Dur("elapsed", time.Since(tick)).
		Msg("bfs-exhausted")
	return nil, expanded, ErrNoSolution
}
